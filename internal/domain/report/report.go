// Package report renders workout results as human-readable lines.
package report

import "fmt"

const template = "Тип тренировки: %s; " +
	"Длительность: %.3f ч.; " +
	"Дистанция: %.3f км; " +
	"Ср. скорость: %.3f км/ч; " +
	"Потрачено ккал: %.3f."

// Message is the summary of one workout.
type Message struct {
	TrainingType string
	Duration     float64 // hours
	Distance     float64 // km
	Speed        float64 // km/h
	Calories     float64 // kcal
}

// String renders the message with three decimals per value.
func (m Message) String() string {
	return fmt.Sprintf(template, m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}
