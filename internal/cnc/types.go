package cnc

import (
	"errors"

	"cnc-reformat/internal/textutil"
)

var (
	// ErrFileAccess marks failures to open, read, create or write a program file.
	ErrFileAccess = errors.New("cannot open/read file")
	// ErrMalformedNumber means a substring accepted by the coordinate pattern
	// did not parse as a float. It indicates a bug, not bad input.
	ErrMalformedNumber = errors.New("malformed coordinate number")
)

// Coordinate is an X/Y position taken from a program line.
type Coordinate struct {
	X float64
	Y float64
}

// String formats the coordinate the way it is written to CNC output.
func (c Coordinate) String() string {
	return FormatCoordinate(c.X, c.Y)
}

// FormatCoordinate returns "X<x>Y<y>" with three decimals per value.
func FormatCoordinate(x, y float64) string {
	return "X" + textutil.FormatFixed(x) + "Y" + textutil.FormatFixed(y)
}
