package fork

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Process is a command that runs to completion with captured output.
type Process struct {
	cmd    *exec.Cmd
	stdout *buffer
	stderr *buffer
}

// NewProcess returns new unstarted process instance.
func NewProcess(ctx context.Context, command string, opts ...ProcessOpt) *Process {
	p := &Process{
		cmd:    exec.CommandContext(ctx, command),
		stdout: new(buffer),
		stderr: new(buffer),
	}

	for _, opt := range opts {
		opt(p)
	}

	p.cmd.Stdout = p.stdout
	p.cmd.Stderr = p.stderr
	return p
}

// Run starts the process and waits for it to exit.
// A non-zero exit code is not an error; err is set only when the process
// could not be started or waited for.
func (p *Process) Run() (exitCode int, err error) {
	err = p.cmd.Run()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return -1, fmt.Errorf("cannot run %s: %w", p, err)
	}
	return 0, nil
}

// Stdout returns everything the process has written to stdout so far.
func (p *Process) Stdout() []byte {
	return p.stdout.Bytes()
}

// Stderr returns everything the process has written to stderr so far.
func (p *Process) Stderr() []byte {
	return p.stderr.Bytes()
}

// String returns a human-readable representation of process command.
func (p *Process) String() string {
	return p.cmd.String()
}
