package grid_test

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/grid"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name          string
		input         string
		height, width int
	}{
		{"TrailingNewline", "123\n456\n", 2, 3},
		{"NoTrailingNewline", "123\n456", 2, 3},
		{"CRLF", "12\r\n34\r\n", 2, 2},
		{"SingleColumn", "1\n1\n1\n1", 4, 1},
		{"SingleCell", "0\n", 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.Parse([]byte(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.height, g.Height())
			assert.Equal(t, tc.width, g.Width())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "", grid.ErrEmptyGrid},
		{"OnlyNewline", "\n", grid.ErrEmptyGrid},
		{"Ragged", "123\n45\n", grid.ErrNonRectangular},
		{"Letter", "12a\n456\n", grid.ErrBadCharacter},
		{"InnerSpace", "1 3\n456\n", grid.ErrBadCharacter},
		{"TwoTrailingNewlines", "12\n34\n\n", grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Parse([]byte(tc.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.err)
			assert.ErrorIs(t, err, grid.ErrMalformedGrid)
		})
	}
}

// TestParse_BadCharacterContext checks that the failing cell is named.
func TestParse_BadCharacterContext(t *testing.T) {
	_, err := grid.Parse([]byte("111\n1x1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1 column 1")
}

func TestParse_RoundTrip(t *testing.T) {
	const text = "2413\n3215\n3255\n"
	g, err := grid.Parse([]byte(text))
	require.NoError(t, err)
	assert.Equal(t, text, g.String())
}

func TestRead(t *testing.T) {
	g, err := grid.Read(strings.NewReader("19\n91\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(9), g.Cost(grid.Pos{Row: 1, Col: 0}))

	_, err = grid.Read(iotest.ErrReader(errors.New("boom")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}
