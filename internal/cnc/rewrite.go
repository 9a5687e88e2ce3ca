package cnc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"cnc-reformat/internal/linereader"
	"cnc-reformat/internal/textutil"

	"github.com/rs/zerolog/log"
)

const (
	// OffsetThreshold is the X value above which Y gets OffsetY added.
	OffsetThreshold = 50.0
	// OffsetY compensates the tool offset on the far side of the table.
	OffsetY = 10.0
)

// RewriteStats summarises a rewrite pass.
type RewriteStats struct {
	Lines       int // input lines processed
	Verbatim    int // non-coordinate lines copied unchanged
	Direct      int // coordinates written outside any tool block
	Flushed     int // coordinates written from tool blocks
	Blocks      int // block regions flushed
	Dropped     int // coordinates buffered when input ended without a terminating line
	DroppedTool string
}

// Rewriter sorts tool blocks of a CNC program and applies the Y offset.
type Rewriter struct {
	out    io.Writer
	blocks *BlockMap
	stats  RewriteStats
}

// NewRewriter creates a Rewriter writing to out.
func NewRewriter(out io.Writer) *Rewriter {
	return &Rewriter{
		out:    out,
		blocks: NewBlockMap(),
	}
}

// Step processes one line. tool is the tool definition active before the
// line ("" for none); the returned value is the one active after it.
func (r *Rewriter) Step(line, tool string) (string, error) {
	r.stats.Lines++

	m, ok := Classify(line)
	if !ok {
		if tool != "" {
			n, err := r.blocks.Flush(r.out)
			r.stats.Flushed += n
			if err != nil {
				return tool, fmt.Errorf("%w: write block: %w", ErrFileAccess, err)
			}
			r.stats.Blocks++
			log.Debug().Str("terminator", lineForLog(line)).Int("coordinates", n).Msg("Flushed tool block")
		}
		if err := r.writeString(line); err != nil {
			return "", err
		}
		r.stats.Verbatim++
		return "", nil
	}

	if m.HasTool() {
		tool = m.Tool
	}

	c, err := m.Coordinate()
	if err != nil {
		return tool, err
	}
	c = applyOffset(c)

	if tool != "" {
		r.blocks.Add(tool, c)
		return tool, nil
	}

	if err := r.writeString(c.String() + "\n"); err != nil {
		return tool, err
	}
	r.stats.Direct++
	return tool, nil
}

// Finish ends the pass. A block still open at end of input is never written;
// its size is recorded in the returned stats.
func (r *Rewriter) Finish(tool string) RewriteStats {
	if tool != "" {
		r.stats.Dropped = r.blocks.Len()
		r.stats.DroppedTool = tool
	}
	return r.stats
}

func (r *Rewriter) writeString(s string) error {
	if _, err := io.WriteString(r.out, s); err != nil {
		return fmt.Errorf("%w: write line: %w", ErrFileAccess, err)
	}
	return nil
}

func applyOffset(c Coordinate) Coordinate {
	if c.X > OffsetThreshold {
		c.Y += OffsetY
	}
	return c
}

// Rewrite runs the rewrite pass over lines and writes the result to out.
func Rewrite(lines []string, out io.Writer) (RewriteStats, error) {
	r := NewRewriter(out)
	tool := ""

	for i, line := range lines {
		next, err := r.Step(line, tool)
		if err != nil {
			return r.stats, fmt.Errorf("line %d: %w", i+1, err)
		}
		tool = next
	}

	return r.Finish(tool), nil
}

// RewriteFile rewrites the program at inPath into outPath. The output file is
// only created once the input has been read completely.
func RewriteFile(inPath, outPath string) (RewriteStats, error) {
	lines, err := linereader.ReadFile(inPath)
	if err != nil {
		return RewriteStats{}, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}

	file, err := os.Create(outPath)
	if err != nil {
		return RewriteStats{}, fmt.Errorf("%w: create output file: %w", ErrFileAccess, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	stats, err := Rewrite(lines, w)
	if err != nil {
		return stats, err
	}
	if err := w.Flush(); err != nil {
		return stats, fmt.Errorf("%w: flush output file: %w", ErrFileAccess, err)
	}
	if err := file.Close(); err != nil {
		return stats, fmt.Errorf("%w: close output file: %w", ErrFileAccess, err)
	}

	if stats.Dropped > 0 {
		log.Warn().
			Str("tool", stats.DroppedTool).
			Int("coordinates", stats.Dropped).
			Msg("Input ended inside a tool block, block not written")
	}

	return stats, nil
}

func lineForLog(line string) string {
	return textutil.Truncate(strings.TrimRight(line, "\r\n"), 40)
}
