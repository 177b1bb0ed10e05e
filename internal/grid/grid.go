package grid

// Grid represents a parsed height map. Rows are ordered top to bottom and
// all rows have the same length.
type Grid struct {
	Ncols, Nrows int
	Data         [][]int
}

// Dims returns the dimensions of the grid.
func (g *Grid) Dims() (w, h int) {
	return g.Ncols, g.Nrows
}

// Z returns the value of a grid cell at (c, r).
// It will panic if c or r are out of bounds for the grid.
func (g *Grid) Z(c, r int) int {
	return g.Data[r][c]
}

// Find returns the position of the first cell holding value, scanning
// rows top to bottom and columns left to right.
func (g *Grid) Find(value int) (c, r int, ok bool) {
	for row := range g.Data {
		for col, v := range g.Data[row] {
			if v == value {
				return col, row, true
			}
		}
	}
	return 0, 0, false
}
