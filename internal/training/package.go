package training

import (
	"fmt"
	"math"
)

type constructor func(data []float64) (Training, error)

var constructors = map[string]constructor{
	KindSwimming.Code(): readSwimming,
	KindRunning.Code():  readRunning,
	KindWalking.Code():  readWalking,
}

// ReadPackage builds a workout from a sensor package.
// data is bound positionally to the constructor of the variant selected by workoutType.
func ReadPackage(workoutType string, data []float64) (Training, error) {
	read, ok := constructors[workoutType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidWorkoutType, workoutType)
	}
	return read(data)
}

func readRunning(data []float64) (Training, error) {
	if err := checkArity(KindRunning, data, 3); err != nil {
		return nil, err
	}
	action, err := integral(KindRunning, "action", data[0])
	if err != nil {
		return nil, err
	}
	r, err := NewRunning(action, data[1], data[2])
	if err != nil {
		return nil, err
	}
	return r, nil
}

func readWalking(data []float64) (Training, error) {
	if err := checkArity(KindWalking, data, 4); err != nil {
		return nil, err
	}
	action, err := integral(KindWalking, "action", data[0])
	if err != nil {
		return nil, err
	}
	w, err := NewSportsWalking(action, data[1], data[2], data[3])
	if err != nil {
		return nil, err
	}
	return w, nil
}

func readSwimming(data []float64) (Training, error) {
	if err := checkArity(KindSwimming, data, 5); err != nil {
		return nil, err
	}
	action, err := integral(KindSwimming, "action", data[0])
	if err != nil {
		return nil, err
	}
	countPool, err := integral(KindSwimming, "count_pool", data[4])
	if err != nil {
		return nil, err
	}
	s, err := NewSwimming(action, data[1], data[2], data[3], countPool)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func checkArity(kind Kind, data []float64, want int) error {
	if len(data) != want {
		return malformed(kind, fmt.Errorf("ожидается %d значений, получено %d", want, len(data)))
	}
	return nil
}

func integral(kind Kind, field string, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Trunc(v) != v {
		return 0, malformed(kind, fieldError(field, "должно быть целым числом"))
	}
	return int(v), nil
}
