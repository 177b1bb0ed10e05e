package preview

import (
	"context"
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/gruppe-adler/hillmap/internal/grid"
	"github.com/gruppe-adler/hillmap/internal/mapjson"
	"github.com/gruppe-adler/hillmap/internal/render"
	"github.com/gruppe-adler/hillmap/internal/validate"
	"github.com/nfnt/resize"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Sizes are the heights of the preview images
var Sizes = []uint{128, 256, 512, 1024}

// Options configure a Preview run
type Options struct {
	Input     string
	OutputDir string
	Sizes     []uint
	Stdout    io.Writer
}

// Run is the program's entrypoint
func Run(flagSet *flag.FlagSet, args []string) {
	opts := Options{Sizes: Sizes, Stdout: os.Stdout}

	flagSet.StringVar(&opts.Input, "in", render.DefaultInput, "Path to input grid")
	flagSet.StringVar(&opts.OutputDir, "out", "", "Path to output directory")

	flagSet.Parse(args)

	if opts.OutputDir == "" {
		flagSet.PrintDefaults()
		os.Exit(1)
	}

	if err := Preview(context.Background(), opts); err != nil {
		log.Fatal(err)
	}
}

// Preview renders the grid and writes it into opts.OutputDir once in its
// original size and once per preview size, followed by a map.json.
func Preview(ctx context.Context, opts Options) error {
	var timer time.Time
	start := time.Now()

	out := opts.Stdout
	if out == nil {
		out = io.Discard
	}

	if err := validate.InputFile(opts.Input); err != nil {
		return err
	}
	if err := validate.OutputDirectory(opts.OutputDir); err != nil {
		return err
	}

	fmt.Fprintln(out, "✔️  Validated input and output paths")

	timer = time.Now()
	fmt.Fprintln(out, "▶️  Loading grid")
	g, err := grid.Read(opts.Input)
	if err != nil {
		return err
	}
	w, h := g.Dims()
	fmt.Fprintf(out, "✔️  Loaded %dx%d grid in %s\n", w, h, time.Since(timer).String())

	img, err := render.Image(g)
	if err != nil {
		return err
	}

	timer = time.Now()
	fmt.Fprintln(out, "▶️  Writing original map image to output")
	if err := render.WritePNG(path.Join(opts.OutputDir, render.DefaultOutput), img); err != nil {
		return err
	}
	fmt.Fprintln(out, "✔️  Wrote original map image in", time.Since(timer).String())

	images := make([]mapjson.Image, len(opts.Sizes)+1)
	images[0] = mapjson.Image{File: render.DefaultOutput, Width: w, Height: h}

	timer = time.Now()
	fmt.Fprintf(out, "▶️  Building %d preview images\n", len(opts.Sizes))

	sem := semaphore.NewWeighted(int64(runtime.NumCPU()))
	group, ctx := errgroup.WithContext(ctx)

	for i, size := range opts.Sizes {
		i, size := i, size
		group.Go(func() error {
			if err := sem.Acquire(ctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)

			built, err := buildPreview(img, size, opts.OutputDir)
			if err != nil {
				return err
			}
			images[i+1] = built

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}
	fmt.Fprintln(out, "✔️  Built preview images in", time.Since(timer).String())

	if err := mapjson.Write(opts.OutputDir, mapjson.New(g, images)); err != nil {
		return err
	}
	fmt.Fprintln(out, "✔️  Created", mapjson.FileName)

	fmt.Fprintf(out, "\n    🎉  Finished in %s\n", time.Since(start).String())

	return nil
}

func buildPreview(img image.Image, size uint, outputDir string) (mapjson.Image, error) {
	resized := resize.Resize(0, size, img, resize.NearestNeighbor)
	name := fmt.Sprintf("preview_%d.png", size)

	if err := render.WritePNG(path.Join(outputDir, name), resized); err != nil {
		return mapjson.Image{}, err
	}

	return mapjson.Image{
		File:   name,
		Width:  resized.Bounds().Dx(),
		Height: resized.Bounds().Dy(),
	}, nil
}
