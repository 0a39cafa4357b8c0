package model

import "github.com/pkg/errors"

var (
	// ErrInvalidSize is returned when a grid is constructed with a non-positive size
	ErrInvalidSize = errors.New("invalid grid size")
	// ErrOutOfBounds is returned when a row or column falls outside [0, size)
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrUnknownPattern is returned when a pattern name is not registered
	ErrUnknownPattern = errors.New("unknown pattern")
)
