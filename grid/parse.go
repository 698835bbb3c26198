package grid

import (
	"bytes"
	"fmt"
	"io"
)

// Parse builds a Grid from digit text: one row per line, one ASCII digit per
// cell. A single trailing line break is stripped and "\r\n" endings are
// accepted. Any other character yields ErrBadCharacter with its row and
// column; rows of unequal length yield ErrNonRectangular.
func Parse(data []byte) (*Grid, error) {
	data = bytes.TrimSuffix(data, []byte("\n"))
	data = bytes.TrimSuffix(data, []byte("\r"))
	if len(data) == 0 {
		return nil, ErrEmptyGrid
	}

	lines := bytes.Split(data, []byte("\n"))
	values := make([][]int64, len(lines))
	for y, line := range lines {
		line = bytes.TrimSuffix(line, []byte("\r"))
		row := make([]int64, len(line))
		for x, b := range line {
			if b < '0' || b > '9' {
				return nil, fmt.Errorf("%w: %q at row %d column %d", ErrBadCharacter, b, y, x)
			}
			row[x] = int64(b - '0')
		}
		values[y] = row
	}

	return New(values)
}

// Read consumes r fully and parses it with Parse.
func Read(r io.Reader) (*Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("grid: read input: %w", err)
	}

	return Parse(data)
}
