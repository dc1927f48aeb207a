package main

import (
	"flag"
)

var (
	flagPackagesPath string
	flagDebug        bool
)

func init() {
	flag.StringVar(&flagPackagesPath, "packages", "", "path to YAML file with sensor packages")
	flag.BoolVar(&flagDebug, "debug", false, "enable development logging")
}
