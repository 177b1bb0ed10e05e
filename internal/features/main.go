package features

import (
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/gruppe-adler/hillmap/internal/grid"
	"github.com/gruppe-adler/hillmap/internal/render"
	"github.com/gruppe-adler/hillmap/internal/utils"
	"github.com/gruppe-adler/hillmap/internal/validate"
)

// DefaultOutput is written relative to the working directory
const DefaultOutput = "features.geojson"

// Run is the program's entrypoint
func Run(flagSet *flag.FlagSet, args []string) {
	inputPtr := flagSet.String("in", render.DefaultInput, "Path to input grid")
	outputPtr := flagSet.String("out", DefaultOutput, "Path to output GeoJSON")

	flagSet.Parse(args)

	n, err := Export(*inputPtr, *outputPtr)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("✔️  Wrote %d features to %s\n", n, *outputPtr)
}

// Export writes the features of the grid at inputPath as GeoJSON to
// outputPath and returns the number of features written.
func Export(inputPath, outputPath string) (int, error) {
	if err := validate.InputFile(inputPath); err != nil {
		return 0, err
	}
	if err := validate.OutputFile(outputPath); err != nil {
		return 0, err
	}

	g, err := grid.Read(inputPath)
	if err != nil {
		return 0, err
	}

	fc := Collect(g)

	bytes, err := fc.MarshalJSON()
	if err != nil {
		return 0, err
	}

	err = utils.WriteFileAtomic(outputPath, func(w io.Writer) error {
		_, err := w.Write(bytes)
		return err
	})
	if err != nil {
		return 0, err
	}

	return len(fc.Features), nil
}
