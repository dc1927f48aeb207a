package ftracker_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/rekby/fixenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
	"gopkg.in/yaml.v3"

	"github.com/Yandex-Practicum/go-ftracker/internal/fork"
	"github.com/Yandex-Practicum/go-ftracker/internal/random"
)

const runProcessTimeout = time.Second * 10

type Env struct {
	fixenv.EnvT
	assert.Assertions
	Require *require.Assertions
	Ctx     context.Context

	t testing.TB
}

func New(t testing.TB) *Env {
	ctx, ctxCancel := context.WithCancel(context.Background())
	t.Cleanup(ctxCancel)

	res := Env{
		EnvT:       *fixenv.NewEnv(t),
		Assertions: *assert.New(t),
		Require:    require.New(t),
		t:          t,
		Ctx:        ctx,
	}
	return &res
}

func (e *Env) Fatalf(format string, args ...any) {
	e.t.Fatalf(format, args...)
}

func (e *Env) Logf(format string, args ...any) {
	e.t.Logf(format, args...)
}

// sensorPackage mirrors a record of the ftracker packages file
type sensorPackage struct {
	ID   string    `yaml:"id,omitempty"`
	Type string    `yaml:"type"`
	Data []float64 `yaml:"data,flow"`
}

type runResult struct {
	ExitCode int
	Stdout   []string
	Stderr   string
}

func ExistPath(e *Env, filePath string) string {
	return fixenv.Cache(&e.EnvT, filePath, nil, func() (string, error) {
		e.Logf("Проверяю наличие файла: %q", filePath)
		_, err := os.Stat(filePath)
		if err != nil {
			return "", err
		}
		return filePath, nil
	})
}

func TrackerPath(e *Env) string {
	return ExistPath(e, flagTargetBinaryPath)
}

// RandomPackages returns count valid packages, each tagged with a session id
func RandomPackages(count int) []sensorPackage {
	res := make([]sensorPackage, 0, count)
	for i := 0; i < count; i++ {
		code := random.WorkoutCode()
		res = append(res, sensorPackage{
			ID:   uuid.Must(uuid.NewV4()).String(),
			Type: code,
			Data: random.Package(code),
		})
	}
	return res
}

// PackagesFile writes packages to a temporary YAML file removed after the test
func PackagesFile(e *Env, packages []sensorPackage) string {
	content, err := yaml.Marshal(packages)
	if err != nil {
		e.Fatalf("Не удалось сериализовать пакеты: %+v", err)
	}

	return fixenv.CacheWithCleanup(e, string(content), nil, func() (string, fixenv.FixtureCleanupFunc, error) {
		path := filepath.Join(os.TempDir(), "ftracker-"+uuid.Must(uuid.NewV4()).String()+".yaml")
		e.Logf("Записываю %d пакетов в %q", len(packages), path)
		if err := os.WriteFile(path, content, 0o600); err != nil {
			return "", nil, err
		}

		cleanup := func() {
			_ = os.Remove(path)
		}
		return path, cleanup, nil
	})
}

// RunTracker runs ftracker to completion, it does not touch e so it is safe to call from goroutines
func RunTracker(ctx context.Context, binary string, args ...string) (runResult, error) {
	ctx, cancel := context.WithTimeout(ctx, runProcessTimeout)
	defer cancel()

	p := fork.NewProcess(ctx, binary, fork.WithArgs(args...))
	exitCode, err := p.Run()
	if err != nil {
		return runResult{}, err
	}

	res := runResult{ExitCode: exitCode, Stderr: string(p.Stderr())}
	if out := strings.TrimRight(string(p.Stdout()), "\n"); out != "" {
		res.Stdout = strings.Split(out, "\n")
	}
	return res, nil
}

func expectedLines(packages []sensorPackage) []string {
	res := make([]string, 0, len(packages))
	for _, p := range packages {
		res = append(res, expectedLine(p.Type, p.Data))
	}
	return res
}

func describe(packages []sensorPackage) string {
	var sb strings.Builder
	for _, p := range packages {
		fmt.Fprintf(&sb, "%s %v\n", p.Type, p.Data)
	}
	return sb.String()
}
