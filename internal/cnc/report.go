package cnc

import (
	"fmt"

	"cnc-reformat/internal/linereader"

	"github.com/rs/zerolog/log"
)

// Scan computes the extrema of the first tool block region in lines.
//
// The region starts at the first coordinate line carrying a tool definition
// and ends at the next line without coordinates; scanning stops there.
// Coordinates are taken as written, without the rewrite offset.
func Scan(lines []string) (Extrema, error) {
	ext := NewExtrema()
	inBlock := false

	for i, line := range lines {
		m, ok := Classify(line)
		if !ok {
			if inBlock {
				log.Debug().Int("line", i+1).Msg("Block region ended, scan stopped")
				break
			}
			continue
		}

		if !inBlock {
			inBlock = m.HasTool()
		}
		if !inBlock {
			continue
		}

		c, err := m.Coordinate()
		if err != nil {
			return ext, fmt.Errorf("line %d: %w", i+1, err)
		}
		ext.Observe(c)
	}

	return ext, nil
}

// ReportFile scans the program at path. When the file cannot be read the
// empty extrema are returned together with an ErrFileAccess error so callers
// can still print the summary.
func ReportFile(path string) (Extrema, error) {
	lines, err := linereader.ReadFile(path)
	if err != nil {
		return NewExtrema(), fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	return Scan(lines)
}
