package cnc

import (
	"fmt"
	"io"
	"sort"
)

// BlockMap buffers coordinates per tool definition until the block region ends.
type BlockMap struct {
	groups map[string][]Coordinate
}

// NewBlockMap creates an empty accumulator.
func NewBlockMap() *BlockMap {
	return &BlockMap{groups: make(map[string][]Coordinate)}
}

// Add appends c to the group of tool.
func (b *BlockMap) Add(tool string, c Coordinate) {
	b.groups[tool] = append(b.groups[tool], c)
}

// Tools returns the buffered tool definitions in ascending order.
func (b *BlockMap) Tools() []string {
	tools := make([]string, 0, len(b.groups))
	for t := range b.groups {
		tools = append(tools, t)
	}
	sort.Strings(tools)
	return tools
}

// Coordinates returns the buffered coordinates of tool in input order.
func (b *BlockMap) Coordinates(tool string) []Coordinate {
	return b.groups[tool]
}

// Len is the number of buffered coordinates across all tools.
func (b *BlockMap) Len() int {
	n := 0
	for _, cs := range b.groups {
		n += len(cs)
	}
	return n
}

// Flush writes every group sorted by tool definition and empties the map.
// Only the first line of each group carries the tool label.
func (b *BlockMap) Flush(w io.Writer) (int, error) {
	written := 0
	for _, tool := range b.Tools() {
		for i, c := range b.groups[tool] {
			line := c.String()
			if i == 0 {
				line += tool
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return written, err
			}
			written++
		}
	}
	clear(b.groups)
	return written, nil
}
