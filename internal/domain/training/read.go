package training

import "fmt"

// Package is a raw sensor batch entry: an activity code and its positional
// values.
type Package struct {
	Code string
	Data []float64
}

// Read dispatches a sensor package to the matching Training.
//
// Data layout per code:
//
//	RUN: action, duration, weight
//	WLK: action, duration, weight, height
//	SWM: action, duration, weight, pool length, pool count
func Read(code string, data []float64) (Training, error) {
	kind, ok := ParseKind(code)
	if !ok {
		return Training{}, fmt.Errorf("%q: %w", code, ErrUnknownType)
	}
	if len(data) != kind.Arity() {
		return Training{}, fmt.Errorf("%s expects %d values, got %d: %w",
			kind.Code(), kind.Arity(), len(data), ErrArgCount)
	}

	t := Training{
		Kind:     kind,
		Action:   int(data[0]),
		Duration: data[1],
		Weight:   data[2],
	}
	switch kind {
	case KindSportsWalking:
		t.Height = data[3]
	case KindSwimming:
		t.PoolLength = data[3]
		t.PoolCount = data[4]
	}
	return t, nil
}

// ReadPackage is Read for a Package value.
func ReadPackage(p Package) (Training, error) {
	return Read(p.Code, p.Data)
}
