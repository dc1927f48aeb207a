package fork

import (
	"io"
	"os"
)

type ProcessOpt = func(p *Process)

// WithEnv добавляет переменные окружения вида KEY=VALUE к окружению текущего процесса
func WithEnv(env ...string) ProcessOpt {
	return func(p *Process) {
		if p.cmd.Env == nil {
			p.cmd.Env = os.Environ()
		}
		p.cmd.Env = append(p.cmd.Env, env...)
	}
}

// WithArgs добавляет процессу аргументы командной строки
func WithArgs(args ...string) ProcessOpt {
	return func(p *Process) {
		p.cmd.Args = append(p.cmd.Args, args...)
	}
}

// WithStdin подключает r к стандартному вводу процесса
func WithStdin(r io.Reader) ProcessOpt {
	return func(p *Process) {
		p.cmd.Stdin = r
	}
}
