package training

import (
	"fmt"
)

// InfoMessage is the computed summary of a single session.
type InfoMessage struct {
	TrainingType string
	Duration     float64 // ч.
	Distance     float64 // км
	Speed        float64 // км/ч
	Calories     float64 // ккал
}

// Message renders the summary; every float is rounded to 3 decimals.
func (m InfoMessage) Message() string {
	return fmt.Sprintf(
		"Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f.",
		m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories,
	)
}
