package main

import (
	"fmt"
	"os"

	"github.com/gofrs/uuid"
	"gopkg.in/yaml.v3"
)

// sensorPackage is a single record received from a tracker
type sensorPackage struct {
	RawID string    `yaml:"id,omitempty"`
	Type  string    `yaml:"type"`
	Data  []float64 `yaml:"data"`

	ID uuid.UUID `yaml:"-"`
}

func defaultPackages() []sensorPackage {
	packages := []sensorPackage{
		{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Type: "RUN", Data: []float64{15000, 1, 75}},
		{Type: "WLK", Data: []float64{9000, 1, 75, 180}},
	}
	for i := range packages {
		packages[i].ID = uuid.Must(uuid.NewV4())
	}
	return packages
}

// loadPackages decodes a YAML list of packages and assigns missing session ids
func loadPackages(path string) ([]sensorPackage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read packages file: %w", err)
	}

	var packages []sensorPackage
	if err := yaml.Unmarshal(data, &packages); err != nil {
		return nil, fmt.Errorf("cannot parse packages file %s: %w", path, err)
	}

	for i := range packages {
		p := &packages[i]
		if p.RawID == "" {
			p.ID, err = uuid.NewV4()
			if err != nil {
				return nil, fmt.Errorf("cannot generate package id: %w", err)
			}
			continue
		}
		p.ID, err = uuid.FromString(p.RawID)
		if err != nil {
			return nil, fmt.Errorf("package #%d has invalid id %q: %w", i+1, p.RawID, err)
		}
	}
	return packages, nil
}
