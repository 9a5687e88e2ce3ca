package linereader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// ReadFile loads every line of the file at path into memory.
// Line terminators are kept so that lines can be written back verbatim.
func ReadFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer file.Close()

	lines, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}
	return lines, nil
}

// Read splits r into lines, each including its trailing "\n" (or "\r\n").
// The final line has no terminator if the input does not end with one.
func Read(r io.Reader) ([]string, error) {
	var lines []string
	br := bufio.NewReaderSize(r, 64*1024)

	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
