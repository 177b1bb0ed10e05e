package features

import (
	"sort"

	"github.com/gruppe-adler/hillmap/internal/grid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Kinds of exported features
const (
	KindStart = "start"
	KindEnd   = "end"
	KindPeak  = "peak"
)

// Collect builds a feature collection holding the start and end markers of
// the grid followed by its peaks, highest first. The markers get the
// elevation of the lowest and the highest level.
func Collect(g *grid.Grid) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	if c, r, ok := g.Find(grid.Start); ok {
		fc.Append(newFeature(KindStart, c, r, grid.Convert('a')))
	}
	if c, r, ok := g.Find(grid.End); ok {
		fc.Append(newFeature(KindEnd, c, r, grid.Convert('z')))
	}

	for _, peak := range buildPeaks(g) {
		fc.Append(peak)
	}

	return fc
}

func newFeature(kind string, col, row, elevation int) *geojson.Feature {
	feature := geojson.NewFeature(orb.Point{float64(col), float64(row)})
	feature.Properties["kind"] = kind
	feature.Properties["elevation"] = elevation
	feature.Properties["col"] = col
	feature.Properties["row"] = row

	return feature
}

// buildPeaks finds all cells (except edges) that are higher than all of
// their direct neighbours
func buildPeaks(g *grid.Grid) []*geojson.Feature {
	var peaks []*geojson.Feature
	var elevations []int

	w, h := g.Dims()

	for row := 1; row < h-1; row++ {
		for col := 1; col < w-1; col++ {
			elevation := g.Z(col, row)

			// markers and the lowest level are never peaks
			if elevation <= 0 {
				continue
			}

			if isPeak(g, col, row, elevation) {
				peaks = append(peaks, newFeature(KindPeak, col, row, elevation))
				elevations = append(elevations, elevation)
			}
		}
	}

	sort.Stable(byElevation{peaks, elevations})

	return peaks
}

// isPeak compares a cell with all direct neighbours. A neighbour of the same
// height means the cell is part of a plateau, not a peak.
func isPeak(g *grid.Grid, col, row, elevation int) bool {
	for compareRow := row - 1; compareRow <= row+1; compareRow++ {
		for compareCol := col - 1; compareCol <= col+1; compareCol++ {
			if compareRow == row && compareCol == col {
				continue
			}
			if g.Z(compareCol, compareRow) >= elevation {
				return false
			}
		}
	}

	return true
}

type byElevation struct {
	features   []*geojson.Feature
	elevations []int
}

func (b byElevation) Len() int           { return len(b.features) }
func (b byElevation) Less(i, j int) bool { return b.elevations[i] > b.elevations[j] }
func (b byElevation) Swap(i, j int) {
	b.features[i], b.features[j] = b.features[j], b.features[i]
	b.elevations[i], b.elevations[j] = b.elevations[j], b.elevations[i]
}
