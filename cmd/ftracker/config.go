package main

import (
	"flag"
	"os"
	"strconv"
)

type config struct {
	PackagesPath string
	Debug        bool
}

// loadConfig reads environment first, explicitly set flags win
func loadConfig() config {
	cfg := config{
		PackagesPath: os.Getenv("FTRACKER_PACKAGES"),
		Debug: func() bool {
			val, err := strconv.ParseBool(os.Getenv("FTRACKER_DEBUG"))
			return err == nil && val
		}(),
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "packages":
			cfg.PackagesPath = flagPackagesPath
		case "debug":
			cfg.Debug = flagDebug
		}
	})
	return cfg
}
