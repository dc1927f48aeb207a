package training

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWorkoutType is returned for an unrecognised discriminator code
	ErrInvalidWorkoutType = errors.New("выбран неверный тип тренировки")
	// ErrMalformedArguments indicates raw values that do not fit the variant's constructor
	ErrMalformedArguments = errors.New("неверные данные пакета")
)

func fieldError(field, reason string) error {
	return fmt.Errorf("%s %s", field, reason)
}

func malformed(kind Kind, err error) error {
	return fmt.Errorf("%s: %w: %w", kind.Code(), ErrMalformedArguments, err)
}
