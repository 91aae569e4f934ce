package engine

import "fmt"

// LoadError reports a non-positive span length, load magnitude or
// elastic modulus, or arithmetic that overflowed to a non-finite value.
type LoadError struct {
	msg string
}

func (e *LoadError) Error() string { return e.msg }

func loadErrorf(format string, args ...any) *LoadError {
	return &LoadError{msg: fmt.Sprintf(format, args...)}
}

// PositionError reports a point-load position outside [0, L].
type PositionError struct {
	msg string
}

func (e *PositionError) Error() string { return e.msg }

func positionErrorf(format string, args ...any) *PositionError {
	return &PositionError{msg: fmt.Sprintf(format, args...)}
}
