package render

import (
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/gruppe-adler/hillmap/internal/grid"
	"github.com/gruppe-adler/hillmap/internal/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, input string) *grid.Grid {
	t.Helper()

	g, err := grid.Parse(strings.NewReader(input))
	require.NoError(t, err)

	return g
}

func TestRows(t *testing.T) {
	rows, err := Rows(parse(t, "aan\nzzn\n"))
	require.NoError(t, err)

	assert.Equal(t, [][]byte{
		{0, 0, 0, 0, 0, 0, 27, 27, 27},
		{52, 52, 52, 52, 52, 52, 27, 27, 27},
	}, rows)
}

func TestRowsMarkers(t *testing.T) {
	rows, err := Rows(parse(t, "SaE\n"))
	require.NoError(t, err)

	assert.Equal(t, [][]byte{{255, 0, 0, 0, 0, 0, 0, 255, 0}}, rows)
}

func TestRowsUnmappedValue(t *testing.T) {
	g := &grid.Grid{Ncols: 2, Nrows: 1, Data: [][]int{{0, -3}}}

	_, err := Rows(g)
	assert.True(t, errors.Is(err, palette.ErrUnmappedValue))
}

func TestImage(t *testing.T) {
	img, err := Image(parse(t, "aan\nzzn\n"))
	require.NoError(t, err)

	assert.Equal(t, 3, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())

	want := [][]color.RGBA{
		{{0, 0, 0, 255}, {0, 0, 0, 255}, {27, 27, 27, 255}},
		{{52, 52, 52, 255}, {52, 52, 52, 255}, {27, 27, 27, 255}},
	}
	for y, row := range want {
		for x, c := range row {
			assert.Equal(t, c, img.RGBAAt(x, y), "pixel (%d, %d)", x, y)
		}
	}
	assert.True(t, img.Opaque())
}

func TestImageAllLowest(t *testing.T) {
	const w, h = 7, 4

	input := strings.Repeat(strings.Repeat("a", w)+"\n", h)
	img, err := Image(parse(t, input))
	require.NoError(t, err)

	assert.Equal(t, w, img.Bounds().Dx())
	assert.Equal(t, h, img.Bounds().Dy())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(x, y))
		}
	}
}

func TestNewImageRowLength(t *testing.T) {
	tests := []struct {
		name string
		rows [][]byte
	}{
		{"short row", [][]byte{{1, 2, 3, 4, 5, 6}, {1, 2, 3}}},
		{"long row", [][]byte{{1, 2, 3, 4, 5, 6}, {1, 2, 3, 4, 5, 6, 7}}},
		{"missing row", [][]byte{{1, 2, 3, 4, 5, 6}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewImage(2, 2, tt.rows)
			assert.True(t, errors.Is(err, ErrRowLength))
		})
	}
}
