package main

//go:generate go build -o=../../bin/ftracker

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Yandex-Practicum/go-ftracker/internal/log"
	"github.com/Yandex-Practicum/go-ftracker/internal/training"
)

func main() {
	flag.Parse()
	cfg := loadConfig()

	if err := log.Init(cfg.Debug); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "ftracker: %s\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, os.Stdout); err != nil {
		log.Errorw("не удалось обработать пакеты", "error", err)
		log.Sync()
		os.Exit(1)
	}
}

// run prints one summary line per sensor package and stops at the first broken one
func run(cfg config, out io.Writer) error {
	packages := defaultPackages()
	if cfg.PackagesPath != "" {
		var err error
		packages, err = loadPackages(cfg.PackagesPath)
		if err != nil {
			return err
		}
		log.Infow("пакеты загружены", "path", cfg.PackagesPath, "count", len(packages))
	}

	for _, p := range packages {
		t, err := training.ReadPackage(p.Type, p.Data)
		if err != nil {
			return fmt.Errorf("package %s: %w", p.ID, err)
		}

		info := training.ShowTrainingInfo(t)
		log.Debugw("пакет обработан",
			"id", p.ID.String(),
			"type", p.Type,
			"distance", info.Distance,
			"calories", info.Calories,
		)

		if _, err := fmt.Fprintln(out, info.Message()); err != nil {
			return fmt.Errorf("cannot write report: %w", err)
		}
	}
	return nil
}
