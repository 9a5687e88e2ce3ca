package cnc

import (
	"fmt"
	"regexp"
	"strconv"
)

// coordinatePattern matches an X/Y pair with three decimals each, optionally
// followed by a tool definition such as T01.
var coordinatePattern = regexp.MustCompile(`X(-?[0-9]+\.[0-9]{3})Y(-?[0-9]+\.[0-9]{3})(T[0-9]{2,})?`)

// Match holds the raw substrings found on a coordinate line.
type Match struct {
	X    string
	Y    string
	Tool string // empty when the line carries no tool definition
}

// HasTool reports whether the line carried a tool definition.
func (m Match) HasTool() bool {
	return m.Tool != ""
}

// Coordinate parses the X and Y substrings.
func (m Match) Coordinate() (Coordinate, error) {
	x, err := strconv.ParseFloat(m.X, 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: x %q", ErrMalformedNumber, m.X)
	}
	y, err := strconv.ParseFloat(m.Y, 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: y %q", ErrMalformedNumber, m.Y)
	}
	return Coordinate{X: x, Y: y}, nil
}

// Classify searches line for a coordinate pair. The match may sit anywhere in
// the line; text around it is ignored.
func Classify(line string) (Match, bool) {
	sub := coordinatePattern.FindStringSubmatch(line)
	if sub == nil {
		return Match{}, false
	}
	return Match{X: sub[1], Y: sub[2], Tool: sub[3]}, true
}
