package main

import (
	"flag"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Yandex-Practicum/go-ftracker/internal/random"
	"github.com/Yandex-Practicum/go-ftracker/internal/training"
)

var packageFlags = flag.NewFlagSet("package", flag.ExitOnError)

var (
	flagPackageType  = packageFlags.String("type", "", "workout code: RUN, WLK or SWM (random if empty)")
	flagPackageCount = packageFlags.Int("count", 1, "number of packages to generate")
)

var packageCmd = cmd{
	name:      "package",
	shortHelp: "generates YAML list of valid sensor packages",
	do:        generatePackages,
	flags:     packageFlags,
}

type sensorPackage struct {
	Type string    `yaml:"type"`
	Data []float64 `yaml:"data,flow"`
}

func generatePackages(w io.Writer) error {
	return writePackages(w, *flagPackageType, *flagPackageCount)
}

func writePackages(w io.Writer, code string, count int) error {
	if code != "" {
		if _, ok := training.KindByCode(code); !ok {
			return fmt.Errorf("%w: %q", training.ErrInvalidWorkoutType, code)
		}
	}

	if count < 0 {
		return fmt.Errorf("count must not be negative, got %d", count)
	}

	packages := make([]sensorPackage, 0, count)
	for i := 0; i < count; i++ {
		c := code
		if c == "" {
			c = random.WorkoutCode()
		}
		packages = append(packages, sensorPackage{Type: c, Data: random.Package(c)})
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(packages)
}
