package training

import "strings"

// Kind identifies one of the supported activity variants.
// The zero value is the base kind, which has no calorie formula.
type Kind int

// Supported kinds.
const (
	KindUnknown Kind = iota
	KindRunning
	KindSportsWalking
	KindSwimming
)

// Sensor codes for each kind.
const (
	CodeRunning       = "RUN"
	CodeSportsWalking = "WLK"
	CodeSwimming      = "SWM"
)

var kindCodes = map[string]Kind{
	CodeRunning:       KindRunning,
	CodeSportsWalking: KindSportsWalking,
	CodeSwimming:      KindSwimming,
}

// ParseKind maps a sensor code to its Kind.
func ParseKind(code string) (Kind, bool) {
	k, ok := kindCodes[strings.TrimSpace(code)]
	return k, ok
}

// Code returns the sensor code for k, or "" for KindUnknown.
func (k Kind) Code() string {
	switch k {
	case KindRunning:
		return CodeRunning
	case KindSportsWalking:
		return CodeSportsWalking
	case KindSwimming:
		return CodeSwimming
	default:
		return ""
	}
}

// String returns the label used in reports.
func (k Kind) String() string {
	switch k {
	case KindRunning:
		return "Running"
	case KindSportsWalking:
		return "SportsWalking"
	case KindSwimming:
		return "Swimming"
	default:
		return "Training"
	}
}

// Arity is the number of positional sensor values the kind expects.
func (k Kind) Arity() int {
	switch k {
	case KindRunning:
		return 3 // action, duration, weight
	case KindSportsWalking:
		return 4 // + height
	case KindSwimming:
		return 5 // + pool length, pool count
	default:
		return 3
	}
}
