package palette

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/gruppe-adler/hillmap/internal/grid"
)

/*
	Height cells are drawn in grayscale with

	level = min(v * 255 / Divisor, 255)

	Divisor is the code point of 'z' and not the height range (25), so the
	highest cell ('z') ends up at level 52 and the map stays rather dark.
	Changing it changes the shade of every rendered map.
*/

// Divisor scales cell values to gray levels
const Divisor = 'z'

// ErrUnmappedValue is returned for negative values other than the markers.
var ErrUnmappedValue = errors.New("no color for cell value")

// Kind tells what a cell represents
type Kind int

const (
	Height Kind = iota
	Start
	End
)

func (k Kind) String() string {
	switch k {
	case Start:
		return "start"
	case End:
		return "end"
	default:
		return "height"
	}
}

// Cell is a classified cell value. Level is only meaningful for Height cells.
type Cell struct {
	Kind  Kind
	Level uint8
}

// Classify maps a cell value to its Cell
func Classify(v int) (Cell, error) {
	switch {
	case v == grid.Start:
		return Cell{Kind: Start}, nil
	case v == grid.End:
		return Cell{Kind: End}, nil
	case v >= 0:
		level := v * 255 / Divisor
		if level > 255 {
			level = 255
		}
		return Cell{Kind: Height, Level: uint8(level)}, nil
	}

	return Cell{}, fmt.Errorf("%d: %w", v, ErrUnmappedValue)
}

// RGBA returns the opaque color of the cell
func (c Cell) RGBA() color.RGBA {
	switch c.Kind {
	case Start:
		return color.RGBA{R: 255, A: 255}
	case End:
		return color.RGBA{G: 255, A: 255}
	}

	return color.RGBA{
		R: c.Level,
		G: c.Level,
		B: c.Level,
		A: 255,
	}
}

// Color calculates the color of a cell value
func Color(v int) (color.RGBA, error) {
	cell, err := Classify(v)
	if err != nil {
		return color.RGBA{}, err
	}

	return cell.RGBA(), nil
}
