package ftracker_test

import (
	"fmt"

	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"

	"github.com/Yandex-Practicum/go-ftracker/internal/random"
)

// TrackerSuite runs the ftracker binary as a black box
type TrackerSuite struct {
	suite.Suite
}

// SetupSuite skips the suite when no binary is given
func (suite *TrackerSuite) SetupSuite() {
	if flagTargetBinaryPath == "" {
		suite.T().Skip("-binary-path flag required")
	}
}

func (suite *TrackerSuite) TestDefaultPackages() {
	e := New(suite.T())

	res, err := RunTracker(e.Ctx, TrackerPath(e))
	e.Require.NoError(err, "Не удалось запустить ftracker")
	e.Equal(0, res.ExitCode, "ftracker должен завершаться с кодом 0, stderr:\n%s", res.Stderr)

	expected := []string{
		expectedLine("SWM", []float64{720, 1, 80, 25, 40}),
		expectedLine("RUN", []float64{15000, 1, 75}),
		expectedLine("WLK", []float64{9000, 1, 75, 180}),
	}
	e.Equal(expected, res.Stdout, "Результат работы ftracker не совпадает с ожидаемым")
}

func (suite *TrackerSuite) TestRandomPackages() {
	e := New(suite.T())

	packages := RandomPackages(30)
	path := PackagesFile(e, packages)

	res, err := RunTracker(e.Ctx, TrackerPath(e), "-packages", path)
	e.Require.NoError(err, "Не удалось запустить ftracker")
	e.Equal(0, res.ExitCode, "ftracker должен завершаться с кодом 0, stderr:\n%s", res.Stderr)
	e.Equal(expectedLines(packages), res.Stdout, "Неверный результат для пакетов:\n%s", describe(packages))
}

func (suite *TrackerSuite) TestWalkingFloorDivision() {
	e := New(suite.T())

	packages := []sensorPackage{{Type: "WLK", Data: []float64{10000, 0.25, 75, 0.1}}}
	path := PackagesFile(e, packages)

	res, err := RunTracker(e.Ctx, TrackerPath(e), "-packages", path)
	e.Require.NoError(err, "Не удалось запустить ftracker")
	e.Equal(0, res.ExitCode, "ftracker должен завершаться с кодом 0, stderr:\n%s", res.Stderr)
	e.Equal(expectedLines(packages), res.Stdout)
	e.Require.Len(res.Stdout, 1)
	e.Contains(res.Stdout[0], "Потрачено ккал: 220551.750.")
}

func (suite *TrackerSuite) TestUnknownWorkoutType() {
	e := New(suite.T())

	packages := RandomPackages(2)
	packages = append(packages, sensorPackage{Type: random.UnknownCode(), Data: []float64{1000, 1, 75}})
	packages = append(packages, RandomPackages(1)...)
	path := PackagesFile(e, packages)

	res, err := RunTracker(e.Ctx, TrackerPath(e), "-packages", path)
	e.Require.NoError(err, "Не удалось запустить ftracker")
	e.NotEqual(0, res.ExitCode, "Для неизвестного типа тренировки ftracker должен завершаться с ошибкой")
	e.Equal(expectedLines(packages[:2]), res.Stdout, "Пакеты после ошибочного не должны обрабатываться")
	e.Contains(res.Stderr, "неверный тип тренировки")
}

func (suite *TrackerSuite) TestMalformedPackage() {
	e := New(suite.T())

	path := PackagesFile(e, []sensorPackage{{Type: "WLK", Data: []float64{9000, 1, 75}}})

	res, err := RunTracker(e.Ctx, TrackerPath(e), "-packages", path)
	e.Require.NoError(err, "Не удалось запустить ftracker")
	e.NotEqual(0, res.ExitCode, "Для неполного пакета ftracker должен завершаться с ошибкой")
	e.Empty(res.Stdout)
}

func (suite *TrackerSuite) TestParallelRuns() {
	e := New(suite.T())
	binary := TrackerPath(e)

	const runs = 8
	batches := make([][]sensorPackage, runs)
	paths := make([]string, runs)
	for i := range batches {
		batches[i] = RandomPackages(10)
		paths[i] = PackagesFile(e, batches[i])
	}

	results := make([]runResult, runs)
	g, ctx := errgroup.WithContext(e.Ctx)
	for i := range paths {
		i := i
		g.Go(func() error {
			res, err := RunTracker(ctx, binary, "-packages", paths[i])
			if err != nil {
				return fmt.Errorf("run #%d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	e.Require.NoError(g.Wait(), "Не удалось запустить ftracker")

	for i, res := range results {
		e.Equal(0, res.ExitCode, "запуск #%d, stderr:\n%s", i, res.Stderr)
		e.Equal(expectedLines(batches[i]), res.Stdout, "запуск #%d:\n%s", i, describe(batches[i]))
	}
}
