// Package training computes distance, speed and calories for a single
// workout read from sensor data.
package training

import (
	"fmt"
	"math"

	"github.com/okian/fittrack/internal/domain/report"
)

// Formula constants.
const (
	stepLength     = 0.65 // metres per step, running and walking
	strokeLength   = 1.38 // metres per stroke, swimming
	metersInKm     = 1000
	minutesInHour  = 60
	runSpeedFactor = 18
	runSpeedShift  = 20
	walkWeightRate = 0.035
	walkSpeedRate  = 0.029
	swimSpeedShift = 1.1
	swimWeightRate = 2
)

// Training holds one workout's sensor readings. Fields that do not apply to
// the kind are zero.
type Training struct {
	Kind       Kind
	Action     int     // steps or strokes; Read truncates fractional counts and out-of-range values wrap
	Duration   float64 // hours
	Weight     float64 // kg
	Height     float64 // cm, sports walking only
	PoolLength float64 // m, swimming only
	PoolCount  float64 // laps, swimming only
}

// Metrics are the values derived from a Training.
type Metrics struct {
	Distance float64 // km
	Speed    float64 // km/h
	Calories float64 // kcal
}

// Distance returns the covered distance in km.
func (t Training) Distance() float64 {
	step := stepLength
	if t.Kind == KindSwimming {
		step = strokeLength
	}
	return float64(t.Action) * step / metersInKm
}

// MeanSpeed returns the average speed in km/h.
func (t Training) MeanSpeed() float64 {
	if t.Kind == KindSwimming {
		return t.PoolLength * t.PoolCount / metersInKm / t.Duration
	}
	return t.Distance() / t.Duration
}

// SpentCalories returns the kcal burned. The base kind has no formula.
//
// Products feeding an addition are converted explicitly so the compiler
// cannot fuse them into FMA instructions; results must match the reference
// values bit for bit on every architecture.
func (t Training) SpentCalories() (float64, error) {
	minutes := t.Duration * minutesInHour
	switch t.Kind {
	case KindRunning:
		return (float64(runSpeedFactor*t.MeanSpeed()) - runSpeedShift) * t.Weight / metersInKm * minutes, nil
	case KindSportsWalking:
		speed := t.MeanSpeed()
		ratio := floorDiv(float64(speed*speed), t.Height)
		return (float64(walkWeightRate*t.Weight) + float64(ratio*walkSpeedRate*t.Weight)) * minutes, nil
	case KindSwimming:
		return (t.MeanSpeed() + swimSpeedShift) * swimWeightRate * t.Weight, nil
	default:
		return 0, fmt.Errorf("%s: %w", t.Kind, ErrNotImplemented)
	}
}

// Metrics computes distance, speed and calories together.
func (t Training) Metrics() (Metrics, error) {
	calories, err := t.SpentCalories()
	if err != nil {
		return Metrics{}, err
	}
	return Metrics{
		Distance: t.Distance(),
		Speed:    t.MeanSpeed(),
		Calories: calories,
	}, nil
}

// Info builds the report message for the workout.
func (t Training) Info() (report.Message, error) {
	m, err := t.Metrics()
	if err != nil {
		return report.Message{}, err
	}
	return report.Message{
		TrainingType: t.Kind.String(),
		Duration:     t.Duration,
		Distance:     m.Distance,
		Speed:        m.Speed,
		Calories:     m.Calories,
	}, nil
}

// floorDiv is floor division on floats, rounding the quotient the same way
// the reference walking formula does: derive it from the remainder, not x/y.
func floorDiv(x, y float64) float64 {
	mod := math.Mod(x, y)
	div := (x - mod) / y
	if mod != 0 && (y < 0) != (mod < 0) {
		div--
	}
	if div == 0 {
		return math.Copysign(0, x/y)
	}
	floor := math.Floor(div)
	if div-floor > 0.5 {
		floor++
	}
	return floor
}
