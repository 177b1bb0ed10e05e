package render

import (
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"time"

	"github.com/gruppe-adler/hillmap/internal/grid"
	"github.com/gruppe-adler/hillmap/internal/validate"
	"github.com/nfnt/resize"
)

// Default paths relative to the working directory
const (
	DefaultInput  = "input.txt"
	DefaultOutput = "map.png"
)

// Options configure a Render run
type Options struct {
	Input   string
	Output  string
	Scale   uint
	Verbose bool
	Stdout  io.Writer
}

// Run is the program's entrypoint
func Run(flagSet *flag.FlagSet, args []string) {
	opts := Options{Stdout: os.Stdout}

	flagSet.StringVar(&opts.Input, "in", DefaultInput, "Path to input grid")
	flagSet.StringVar(&opts.Output, "out", DefaultOutput, "Path to output png")
	flagSet.UintVar(&opts.Scale, "scale", 1, "Pixels per grid cell")
	flagSet.BoolVar(&opts.Verbose, "v", false, "Print progress")

	flagSet.Parse(args)

	if err := Render(opts); err != nil {
		log.Fatal(err)
	}
}

// Render reads the grid from opts.Input and writes it as png to opts.Output
func Render(opts Options) error {
	var timer time.Time
	start := time.Now()

	out := opts.Stdout
	if out == nil {
		out = io.Discard
	}
	progress := func(a ...interface{}) {
		if opts.Verbose {
			fmt.Fprintln(out, a...)
		}
	}

	if err := validate.InputFile(opts.Input); err != nil {
		return err
	}
	if err := validate.OutputFile(opts.Output); err != nil {
		return err
	}

	// load grid
	timer = time.Now()
	progress("▶️  Loading grid")
	g, err := grid.Read(opts.Input)
	if err != nil {
		return err
	}
	progress("✔️  Loaded grid in", time.Since(timer).String())

	w, h := g.Dims()
	fmt.Fprintf(out, "width=%d height=%d\n", w, h)

	// calculating image
	timer = time.Now()
	progress("▶️  Calculating image from grid")
	var img image.Image
	img, err = Image(g)
	if err != nil {
		return err
	}
	if opts.Scale > 1 {
		img = resize.Resize(uint(w)*opts.Scale, uint(h)*opts.Scale, img, resize.NearestNeighbor)
	}
	progress("✔️  Calculated image in", time.Since(timer).String())

	// write png
	timer = time.Now()
	progress("▶️  Writing", opts.Output)
	if err := WritePNG(opts.Output, img); err != nil {
		return err
	}
	progress("✔️  Wrote image in", time.Since(timer).String())

	progress(fmt.Sprintf("\n    🎉  Finished in %s", time.Since(start).String()))

	return nil
}
