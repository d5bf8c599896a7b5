package terrain

import (
	gomath "math"
	"testing"
)

func constantImage(size int, val uint8) *HeightImage {
	rows := make([]uint8, size)
	for i := range rows {
		rows[i] = val
	}
	return NewHeightImage(grayImage(size, rows))
}

// rampImage brightens left to right so mirroring is observable.
func rampImage(size int) *HeightImage {
	h := &HeightImage{Pix: make([]uint8, size*size), Width: size, Height: size}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			h.Pix[y*size+x] = uint8(x * 255 / (size - 1))
		}
	}
	return h
}

func TestBuildGridDimensions(t *testing.T) {
	img := constantImage(8, 128)

	cases := []struct{ cellsX, cellsY int }{
		{1, 1}, {2, 2}, {4, 7}, {30, 30},
	}
	for _, tc := range cases {
		g := BuildGrid(img, false, tc.cellsX, tc.cellsY, DefaultDisplacementScale)
		want := (tc.cellsX + 1) * (tc.cellsY + 1)
		if g.VertexCount() != want {
			t.Errorf("%dx%d: vertex count %d, want %d", tc.cellsX, tc.cellsY, g.VertexCount(), want)
		}
		if len(g.Positions) != want || len(g.UVs) != want {
			t.Errorf("%dx%d: buffer lengths %d/%d, want %d", tc.cellsX, tc.cellsY, len(g.Positions), len(g.UVs), want)
		}
		for i, uv := range g.UVs {
			if uv[0] < 0 || uv[0] > 1 || uv[1] < 0 || uv[1] > 1 {
				t.Errorf("%dx%d: UV %d = %v outside [0,1]", tc.cellsX, tc.cellsY, i, uv)
				break
			}
		}
	}
}

func TestBuildGridConstantWhite(t *testing.T) {
	// 3x3 all-white heightmap, 2x2 cells: every elevation is exactly
	// 255/255*5 = 5 for both the plain and the mirrored build, and
	// stitching them is a no-op.
	img := constantImage(3, 255)

	plain := BuildGrid(img, false, 2, 2, 5)
	mirrored := BuildGrid(img, true, 2, 2, 5)

	for _, g := range []*Grid{plain, mirrored} {
		for row := 0; row <= 2; row++ {
			for col := 0; col <= 2; col++ {
				if z := g.Elevation(row, col); z != 5 {
					t.Errorf("elevation(%d,%d) = %f, want 5", row, col, z)
				}
			}
		}
	}

	before := append([][3]float32(nil), plain.Positions...)
	Stitch(plain, mirrored)
	for i, p := range plain.Positions {
		if p != before[i] {
			t.Errorf("stitch changed matching grid at vertex %d: %v -> %v", i, before[i], p)
		}
	}
}

func TestBuildGridMirrorLaw(t *testing.T) {
	img := rampImage(16)
	cellsX, cellsY := 6, 4

	plain := BuildGrid(img, false, cellsX, cellsY, DefaultDisplacementScale)
	mirrored := BuildGrid(img, true, cellsX, cellsY, DefaultDisplacementScale)

	for row := 0; row <= cellsY; row++ {
		for col := 0; col <= cellsX; col++ {
			got := mirrored.Elevation(row, col)
			want := plain.Elevation(row, cellsX-col)
			if got != want {
				t.Errorf("mirror law broken at (%d,%d): got %f, want %f", row, col, got, want)
			}
		}
	}
}

func TestBuildGridShear(t *testing.T) {
	img := constantImage(4, 0)
	g := BuildGrid(img, false, 4, 4, 5)

	// Vertex (row 0, col 0) sits at unsheared (-2, 2); the shear moves
	// x by ShearFactor*y.
	p := g.At(0, 0)
	wantX := float32(-2) + ShearFactor*2
	if p[0] != wantX || p[1] != 2 {
		t.Errorf("sheared corner: got (%f, %f), want (%f, 2)", p[0], p[1], wantX)
	}

	// The center row (y=0) is unaffected by shear.
	mid := g.At(2, 2)
	if mid[0] != 0 || mid[1] != 0 {
		t.Errorf("center vertex moved by shear: got (%f, %f)", mid[0], mid[1])
	}
}

func TestBuildGridDeterministic(t *testing.T) {
	img := rampImage(8)

	a := BuildGrid(img, true, 5, 3, DefaultDisplacementScale)
	b := BuildGrid(img, true, 5, 3, DefaultDisplacementScale)

	for i := range a.Positions {
		if a.Positions[i] != b.Positions[i] {
			t.Fatalf("non-deterministic build at vertex %d: %v vs %v", i, a.Positions[i], b.Positions[i])
		}
	}
}

func TestTriangleIndices(t *testing.T) {
	img := constantImage(4, 0)
	g := BuildGrid(img, false, 3, 2, 5)

	idx := g.TriangleIndices()
	if len(idx) != 3*2*6 {
		t.Fatalf("index count: got %d, want %d", len(idx), 3*2*6)
	}
	max := uint32(g.VertexCount() - 1)
	for _, i := range idx {
		if i > max {
			t.Errorf("index %d out of range (max %d)", i, max)
		}
	}
}

func TestGridElevationNonNegative(t *testing.T) {
	img := rampImage(32)
	g := BuildGrid(img, false, 10, 10, DefaultDisplacementScale)

	for i, p := range g.Positions {
		if p[2] < 0 || float64(p[2]) > DefaultDisplacementScale+1e-6 {
			t.Errorf("vertex %d elevation %f outside [0, %f]", i, p[2], float32(DefaultDisplacementScale))
		}
		if gomath.IsNaN(float64(p[2])) {
			t.Errorf("vertex %d elevation is NaN", i)
		}
	}
}
