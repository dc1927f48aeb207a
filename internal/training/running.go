package training

// Running is a running session.
type Running struct {
	Base
}

// NewRunning validates measurements and returns a running session.
func NewRunning(action int, duration, weight float64) (*Running, error) {
	base, err := newBase(action, duration, weight)
	if err != nil {
		return nil, malformed(KindRunning, err)
	}
	return &Running{Base: base}, nil
}

func (r *Running) Kind() Kind {
	return KindRunning
}

// SpentCalories = (18 * speed - 20) * weight / 1000 * minutes
func (r *Running) SpentCalories() float64 {
	speed := r.MeanSpeed()
	return (runningCaloriesMeanSpeedMultiplier*speed - runningCaloriesMeanSpeedShift) *
		r.Weight / MInKm * (r.Duration * MinInH)
}
