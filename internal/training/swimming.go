package training

import (
	"go.uber.org/multierr"
)

// Swimming is a pool swimming session.
type Swimming struct {
	Base
	LengthPool float64 // длина бассейна в метрах
	CountPool  int     // сколько раз проплыт бассейн
}

// NewSwimming validates measurements and returns a swimming session.
func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) (*Swimming, error) {
	base, err := newBase(action, duration, weight)
	if lengthPool <= 0 {
		err = multierr.Append(err, fieldError("length_pool", "должна быть больше нуля"))
	}
	if countPool < 0 {
		err = multierr.Append(err, fieldError("count_pool", "не может быть отрицательным"))
	}
	if err != nil {
		return nil, malformed(KindSwimming, err)
	}
	return &Swimming{Base: base, LengthPool: lengthPool, CountPool: countPool}, nil
}

func (s *Swimming) Kind() Kind {
	return KindSwimming
}

// Distance counts strokes of SwimmingLenStep.
func (s *Swimming) Distance() float64 {
	return distance(s.Action, SwimmingLenStep)
}

// MeanSpeed is derived from pool geometry, not from strokes.
func (s *Swimming) MeanSpeed() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return s.LengthPool * float64(s.CountPool) / MInKm / s.Duration
}

func (s *Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * s.Weight
}
