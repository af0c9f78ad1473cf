package training

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrUnknownType    = errors.New("unrecognized activity type")
	ErrArgCount       = errors.New("invalid argument count")
	ErrNotImplemented = errors.New("calorie formula not implemented")
)
