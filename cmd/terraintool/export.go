package main

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/franky-adl/synthwave-scene/internal/engine/terrain"
)

// writePreviewPNG renders a top-down elevation map, one pixel per grid
// vertex, shaded from dark purple (low) to bright pink (high).
func writePreviewPNG(g *terrain.Grid, path string) error {
	min, max := elevationRange(g)
	span := max - min
	if span <= 0 {
		span = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, g.CellsX+1, g.CellsY+1))
	for row := 0; row <= g.CellsY; row++ {
		for col := 0; col <= g.CellsX; col++ {
			t := (g.Elevation(row, col) - min) / span
			img.Set(col, row, color.RGBA{
				R: uint8(40 + t*215),
				G: uint8(10 + t*40),
				B: uint8(70 + t*130),
				A: 255,
			})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}

// writeOBJ exports the grid as a triangle mesh plus the wireframe path
// as an OBJ polyline, both in the grid's build-space coordinates.
func writeOBJ(g *terrain.Grid, p *terrain.Path, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "# terrain mesh with wireframe path")

	fmt.Fprintln(w, "o terrain")
	for _, v := range g.Positions {
		fmt.Fprintf(w, "v %g %g %g\n", v[0], v[1], v[2])
	}
	indices := g.TriangleIndices()
	for i := 0; i+2 < len(indices); i += 3 {
		// OBJ indices are 1-based
		fmt.Fprintf(w, "f %d %d %d\n", indices[i]+1, indices[i+1]+1, indices[i+2]+1)
	}

	fmt.Fprintln(w, "o path")
	base := len(g.Positions)
	for _, pt := range p.Points {
		fmt.Fprintf(w, "v %g %g %g\n", pt[0], pt[1], pt[2])
	}
	fmt.Fprint(w, "l")
	for i := 0; i < p.Len(); i++ {
		fmt.Fprintf(w, " %d", base+i+1)
	}
	fmt.Fprintln(w)

	return w.Flush()
}
