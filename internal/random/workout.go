package random

import (
	"math"

	"github.com/Yandex-Practicum/go-ftracker/internal/training"
)

// Actions returns steps or strokes count
func Actions() int {
	return source.intn(1000, 10000)
}

// Duration returns duration in hours, rounded to minutes and never zero
func Duration() float64 {
	hours := float64(source.intn(0, 3)) + source.float64()
	return math.Max(math.Round(hours*training.MinInH), 1) / training.MinInH
}

func Weight() float64 {
	return float64(source.intn(50, 140))
}

func Height() float64 {
	return float64(source.intn(150, 220))
}

func LengthPool() float64 {
	return float64(source.intn(10, 50))
}

func CountPool() int {
	return source.intn(1, 10)
}

// Package returns a valid raw sensor package for the given code.
// Nil is returned for an unknown code.
func Package(code string) []float64 {
	kind, ok := training.KindByCode(code)
	if !ok {
		return nil
	}

	data := []float64{float64(Actions()), Duration(), Weight()}
	switch kind {
	case training.KindWalking:
		data = append(data, Height())
	case training.KindSwimming:
		data = append(data, LengthPool(), float64(CountPool()))
	}
	return data
}
