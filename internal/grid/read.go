package grid

import (
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// Read a grid from given path. Paths ending in .gz are decompressed first.
func Read(path string) (*Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var reader io.Reader = file

	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, err
		}
		defer gz.Close()

		reader = gz
	}

	return Parse(reader)
}
