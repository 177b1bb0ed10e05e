package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Cell values of the two terrain markers.
const (
	Start int = 'S' - 'a'
	End   int = 'E' - 'a'
)

var (
	// ErrEmptyGrid is returned when the input holds no rows.
	ErrEmptyGrid = errors.New("grid has no rows")
	// ErrRaggedRow is returned when a row's length differs from the first row.
	ErrRaggedRow = errors.New("row length differs from first row")
	// ErrInvalidCharacter is returned for anything but 'a'-'z', 'S' and 'E'.
	ErrInvalidCharacter = errors.New("invalid character")
)

const maxLineLength = 1024 * 1024

// Convert returns the cell value of c, its offset from 'a'.
func Convert(c rune) int {
	return int(c - 'a')
}

func valid(c rune) bool {
	return (c >= 'a' && c <= 'z') || c == 'S' || c == 'E'
}

// Parse reads a grid from reader, one row per line
func Parse(reader io.Reader) (*Grid, error) {
	var lines []string

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	for scanner.Scan() {
		lines = append(lines, strings.TrimRightFunc(scanner.Text(), unicode.IsSpace))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// a trailing newline or blank lines at the end are not rows
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	g := &Grid{
		Nrows: len(lines),
		Data:  make([][]int, len(lines)),
	}

	for rowIndex, line := range lines {
		row, err := parseLine(line, rowIndex)
		if err != nil {
			return nil, err
		}

		if rowIndex == 0 {
			g.Ncols = len(row)
		} else if len(row) != g.Ncols {
			return nil, fmt.Errorf("line %d has %d cells, want %d: %w", rowIndex+1, len(row), g.Ncols, ErrRaggedRow)
		}

		g.Data[rowIndex] = row
	}

	return g, nil
}

func parseLine(line string, rowIndex int) ([]int, error) {
	row := make([]int, 0, len(line))

	col := 0
	for _, c := range line {
		col++
		if !valid(c) {
			return nil, fmt.Errorf("line %d column %d %q: %w", rowIndex+1, col, c, ErrInvalidCharacter)
		}
		row = append(row, Convert(c))
	}

	return row, nil
}
