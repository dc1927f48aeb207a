package training

import (
	"math"

	"go.uber.org/multierr"
)

// SportsWalking is a sports walking session.
type SportsWalking struct {
	Base
	Height float64 // рост в сантиметрах
}

// NewSportsWalking validates measurements and returns a walking session.
func NewSportsWalking(action int, duration, weight, height float64) (*SportsWalking, error) {
	base, err := newBase(action, duration, weight)
	if height <= 0 {
		err = multierr.Append(err, fieldError("height", "должен быть больше нуля"))
	}
	if err != nil {
		return nil, malformed(KindWalking, err)
	}
	return &SportsWalking{Base: base, Height: height}, nil
}

func (w *SportsWalking) Kind() Kind {
	return KindWalking
}

// SpentCalories keeps the floor division of speed² by height.
func (w *SportsWalking) SpentCalories() float64 {
	speed := w.MeanSpeed()
	return (walkingCaloriesWeightMultiplier*w.Weight +
		floorDiv(speed*speed, w.Height)*walkingSpeedHeightMultiplier*w.Weight) *
		(w.Duration * MinInH)
}

// floorDiv floors (a - a mod b) / b rather than a / b: the latter may
// already be rounded up to the next whole number.
func floorDiv(a, b float64) float64 {
	mod := math.Mod(a, b)
	div := (a - mod) / b
	if mod != 0 && (b < 0) != (mod < 0) {
		div--
	}
	if div == 0 {
		return math.Copysign(0, a/b)
	}
	floor := math.Floor(div)
	if div-floor > 0.5 {
		floor++
	}
	return floor
}
