package mapjson

import (
	"encoding/json"
	"io"
	"path"

	"github.com/gruppe-adler/hillmap/internal/grid"
	"github.com/gruppe-adler/hillmap/internal/palette"
	"github.com/gruppe-adler/hillmap/internal/utils"
)

// FileName of the map metadata in the output directory
const FileName = "map.json"

// Image describes one rendered image
type Image struct {
	File   string `json:"file"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// MapJSON represents the structure of map.json
type MapJSON struct {
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Start   *[2]int `json:"start"`
	End     *[2]int `json:"end"`
	Divisor int     `json:"divisor"`
	Images  []Image `json:"images"`
}

// New describes given grid and its rendered images
func New(g *grid.Grid, images []Image) MapJSON {
	w, h := g.Dims()

	return MapJSON{
		Width:   w,
		Height:  h,
		Start:   position(g, grid.Start),
		End:     position(g, grid.End),
		Divisor: palette.Divisor,
		Images:  images,
	}
}

func position(g *grid.Grid, value int) *[2]int {
	c, r, ok := g.Find(value)
	if !ok {
		return nil
	}
	return &[2]int{c, r}
}

// Write a map.json into outputDirectory
func Write(outputDirectory string, meta MapJSON) error {
	bytes, err := json.MarshalIndent(meta, "", "    ")
	if err != nil {
		return err
	}

	return utils.WriteFileAtomic(path.Join(outputDirectory, FileName), func(w io.Writer) error {
		_, err := w.Write(bytes)
		return err
	})
}
