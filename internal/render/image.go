package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/gruppe-adler/hillmap/internal/grid"
	"github.com/gruppe-adler/hillmap/internal/palette"
)

// ErrRowLength is returned when the image buffer doesn't match the image size.
var ErrRowLength = errors.New("row length doesn't match image width")

// Rows builds the image buffer of the grid: one flat R,G,B,R,G,B,... byte
// slice per row, top to bottom.
func Rows(g *grid.Grid) ([][]byte, error) {
	w, h := g.Dims()

	rows := make([][]byte, h)

	for row := 0; row < h; row++ {
		buf := make([]byte, 0, w*3)
		for col := 0; col < w; col++ {
			color, err := palette.Color(g.Z(col, row))
			if err != nil {
				return nil, fmt.Errorf("cell (%d, %d): %w", col, row, err)
			}
			buf = append(buf, color.R, color.G, color.B)
		}
		rows[row] = buf
	}

	return rows, nil
}

// NewImage creates an opaque image of given size from the image buffer
func NewImage(w, h int, rows [][]byte) (*image.RGBA, error) {
	if len(rows) != h {
		return nil, fmt.Errorf("got %d rows for height %d: %w", len(rows), h, ErrRowLength)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))

	for y, row := range rows {
		if len(row) != w*3 {
			return nil, fmt.Errorf("row %d has %d bytes, want %d: %w", y, len(row), w*3, ErrRowLength)
		}

		pix := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			pix[x*4+0] = row[x*3+0]
			pix[x*4+1] = row[x*3+1]
			pix[x*4+2] = row[x*3+2]
			pix[x*4+3] = 255
		}
	}

	return img, nil
}

// Image renders the grid
func Image(g *grid.Grid) (*image.RGBA, error) {
	rows, err := Rows(g)
	if err != nil {
		return nil, err
	}

	w, h := g.Dims()

	return NewImage(w, h, rows)
}
