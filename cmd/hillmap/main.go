package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gruppe-adler/hillmap/internal/features"
	"github.com/gruppe-adler/hillmap/internal/preview"
	"github.com/gruppe-adler/hillmap/internal/render"
)

type command struct {
	name        string
	description string
	run         func(*flag.FlagSet, []string)
}

var subCommands []command

func init() {
	subCommands = []command{
		{"render", "Render input.txt to map.png (default).", render.Run},
		{"preview", "Build map image and resized previews into a directory.", preview.Run},
		{"features", "Export start, end and peaks as GeoJSON.", features.Run},
		{"help", "Print this message.", func(*flag.FlagSet, []string) { printUsage() }},
	}
}

func printUsage() {
	fmt.Printf("USAGE:\n    %s [SUBCOMMAND] [SUBCOMMAND FLAGS]\n\n", os.Args[0])
	fmt.Print("SUBCOMMANDS: \n")

	for i := 0; i < len(subCommands); i++ {
		name := subCommands[i].name

		fmt.Printf("%12s    %s\n", name, subCommands[i].description)
	}

	fmt.Printf("\nUse -h as SUBCOMMAND FLAG to print help for each subcommand.\n\n")
}

func main() {

	// without a subcommand we just render with the default paths
	if len(os.Args) < 2 {
		render.Run(flag.NewFlagSet("render", flag.ExitOnError), nil)
		return
	}

	cmd := os.Args[1]

	for i := 0; i < len(subCommands); i++ {
		if subCommands[i].name == cmd {
			set := flag.NewFlagSet(cmd, flag.ExitOnError)
			subCommands[i].run(set, os.Args[2:])
			return
		}
	}

	fmt.Printf("\nERROR: Subcommand '%s' was not found.\n\n", cmd)
	printUsage()
	os.Exit(1)
}
