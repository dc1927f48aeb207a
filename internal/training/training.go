// Package training computes distance, mean speed and spent calories
// for running, sports walking and swimming sessions.
package training

import (
	"go.uber.org/multierr"
)

// Training is implemented by every workout variant.
type Training interface {
	Kind() Kind
	// Distance returns covered distance in kilometers
	Distance() float64
	// MeanSpeed returns mean speed in km/h
	MeanSpeed() float64
	// SpentCalories returns spent energy in kcal
	SpentCalories() float64
	// TrainingDuration returns session duration in hours
	TrainingDuration() float64
}

// Base holds measurements shared by all workouts.
type Base struct {
	Action   int     // количество шагов или гребков
	Duration float64 // длительность в часах
	Weight   float64 // вес спортсмена в килограммах
}

func newBase(action int, duration, weight float64) (Base, error) {
	var err error
	if action < 0 {
		err = multierr.Append(err, fieldError("action", "не может быть отрицательным"))
	}
	if duration <= 0 {
		err = multierr.Append(err, fieldError("duration", "должна быть больше нуля"))
	}
	if weight <= 0 {
		err = multierr.Append(err, fieldError("weight", "должен быть больше нуля"))
	}
	return Base{Action: action, Duration: duration, Weight: weight}, err
}

func distance(action int, lenStep float64) float64 {
	return float64(action) * lenStep / MInKm
}

// Distance returns steps multiplied by LenStep, in kilometers.
func (b Base) Distance() float64 {
	return distance(b.Action, LenStep)
}

// MeanSpeed returns zero for a non-positive duration.
func (b Base) MeanSpeed() float64 {
	if b.Duration <= 0 {
		return 0
	}
	return b.Distance() / b.Duration
}

// SpentCalories is the default estimate; every variant overrides it.
func (b Base) SpentCalories() float64 {
	return 1 * b.Weight * b.Duration
}

func (b Base) TrainingDuration() float64 {
	return b.Duration
}

// ShowTrainingInfo collects the session summary through t's own formulas.
func ShowTrainingInfo(t Training) InfoMessage {
	return InfoMessage{
		TrainingType: t.Kind().String(),
		Duration:     t.TrainingDuration(),
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}
