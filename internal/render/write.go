package render

import (
	"image"
	"image/png"
	"io"

	"github.com/gruppe-adler/hillmap/internal/utils"
)

// WritePNG encodes img as PNG to path. Nothing is left at path if encoding fails.
func WritePNG(path string, img image.Image) error {
	return utils.WriteFileAtomic(path, func(w io.Writer) error {
		return png.Encode(w, img)
	})
}
