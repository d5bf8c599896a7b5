// terraintool is a CLI utility for inspecting and exporting the terrain
// geometry built from heightmap images.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/franky-adl/synthwave-scene/internal/assets"
	"github.com/franky-adl/synthwave-scene/internal/config"
	"github.com/franky-adl/synthwave-scene/internal/engine/terrain"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "preview":
		cmdPreview(args)
	case "obj":
		cmdOBJ(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`terraintool - heightmap terrain inspection utility

Usage:
  terraintool <command> [options]

Commands:
  info [options]               Show terrain statistics for a heightmap
  preview [options] <out.png>  Render a top-down elevation preview
  obj [options] <out.obj>      Export the terrain mesh and wireframe path

Options (all commands):
  -heightmap path   Heightmap image (default: embedded)
  -cells n          Grid cells per side (default 30)
  -scale f          Displacement scale (default 5)
  -mirror           Build the mirrored grid variant

Examples:
  terraintool info -heightmap hills.png
  terraintool preview -cells 60 out.png
  terraintool obj -mirror tile.obj`)
}

type buildOptions struct {
	heightmap string
	cells     int
	scale     float64
	mirror    bool
}

func parseBuildFlags(name string, args []string) (*buildOptions, []string) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	opts := &buildOptions{}
	fs.StringVar(&opts.heightmap, "heightmap", "", "heightmap image path (default: embedded)")
	fs.IntVar(&opts.cells, "cells", 30, "grid cells per side")
	fs.Float64Var(&opts.scale, "scale", float64(terrain.DefaultDisplacementScale), "displacement scale")
	fs.BoolVar(&opts.mirror, "mirror", false, "build the mirrored grid variant")
	fs.Parse(args)
	return opts, fs.Args()
}

func buildGrid(opts *buildOptions) (*terrain.Grid, error) {
	def := config.Default().Terrain

	var (
		heights *terrain.HeightImage
		err     error
	)
	if opts.heightmap != "" {
		heights, err = assets.LoadHeightImageFile(opts.heightmap, def.RasterWidth, def.RasterHeight)
	} else {
		heights, err = assets.LoadHeightImage(assets.DefaultHeightmap(), def.RasterWidth, def.RasterHeight)
	}
	if err != nil {
		return nil, err
	}

	return terrain.BuildGrid(heights, opts.mirror, opts.cells, opts.cells, float32(opts.scale)), nil
}

func cmdInfo(args []string) {
	opts, _ := parseBuildFlags("info", args)

	grid, err := buildGrid(opts)
	if err != nil {
		fatal(err)
	}

	min, max := elevationRange(grid)
	path := terrain.BuildPath(grid)

	source := opts.heightmap
	if source == "" {
		source = "(embedded default)"
	}

	fmt.Printf("Heightmap:     %s\n", source)
	fmt.Printf("Grid:          %dx%d cells, %d vertices\n", grid.CellsX, grid.CellsY, grid.VertexCount())
	fmt.Printf("Triangles:     %d\n", len(grid.TriangleIndices())/3)
	fmt.Printf("Path points:   %d\n", path.Len())
	fmt.Printf("Elevation:     %.3f to %.3f\n", min, max)
	fmt.Printf("Mirrored:      %v\n", opts.mirror)
}

func cmdPreview(args []string) {
	opts, rest := parseBuildFlags("preview", args)
	if len(rest) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: terraintool preview [options] <out.png>")
		os.Exit(1)
	}

	grid, err := buildGrid(opts)
	if err != nil {
		fatal(err)
	}

	if err := writePreviewPNG(grid, rest[0]); err != nil {
		fatal(err)
	}
	fmt.Printf("Wrote %s\n", rest[0])
}

func cmdOBJ(args []string) {
	opts, rest := parseBuildFlags("obj", args)
	if len(rest) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: terraintool obj [options] <out.obj>")
		os.Exit(1)
	}

	grid, err := buildGrid(opts)
	if err != nil {
		fatal(err)
	}

	path := terrain.BuildPath(grid)
	if err := writeOBJ(grid, path, rest[0]); err != nil {
		fatal(err)
	}
	fmt.Printf("Wrote %s\n", rest[0])
}

func elevationRange(g *terrain.Grid) (min, max float32) {
	min, max = g.Elevation(0, 0), g.Elevation(0, 0)
	for row := 0; row <= g.CellsY; row++ {
		for col := 0; col <= g.CellsX; col++ {
			e := g.Elevation(row, col)
			if e < min {
				min = e
			}
			if e > max {
				max = e
			}
		}
	}
	return min, max
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
