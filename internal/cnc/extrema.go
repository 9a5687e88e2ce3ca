package cnc

import (
	"math"
	"strings"

	"cnc-reformat/internal/textutil"
)

// Extrema tracks the bounding box of the coordinates seen so far.
type Extrema struct {
	XMin float64
	XMax float64
	YMin float64
	YMax float64
}

// NewExtrema returns an empty bounding box: minima at +Inf, maxima at -Inf.
func NewExtrema() Extrema {
	return Extrema{
		XMin: math.Inf(1),
		XMax: math.Inf(-1),
		YMin: math.Inf(1),
		YMax: math.Inf(-1),
	}
}

// Observe widens the box to include c.
func (e *Extrema) Observe(c Coordinate) {
	e.XMin = math.Min(e.XMin, c.X)
	e.XMax = math.Max(e.XMax, c.X)
	e.YMin = math.Min(e.YMin, c.Y)
	e.YMax = math.Max(e.YMax, c.Y)
}

// Empty reports whether no coordinate has been observed.
func (e Extrema) Empty() bool {
	return math.IsInf(e.XMin, 1)
}

// String renders "xmin/xmax/ymin/ymax" with three decimals per value.
func (e Extrema) String() string {
	return strings.Join([]string{
		textutil.FormatFixed(e.XMin),
		textutil.FormatFixed(e.XMax),
		textutil.FormatFixed(e.YMin),
		textutil.FormatFixed(e.YMax),
	}, "/")
}
