package terrain

import "testing"

func TestBuildPathLength(t *testing.T) {
	img := constantImage(8, 128)

	cases := []struct{ cellsX, cellsY int }{
		{1, 1}, {2, 2}, {3, 5}, {7, 2}, {30, 30},
	}
	for _, tc := range cases {
		g := BuildGrid(img, false, tc.cellsX, tc.cellsY, 5)
		p := BuildPath(g)
		want := tc.cellsX * tc.cellsY * 4
		if p.Len() != want {
			t.Errorf("%dx%d: path length %d, want %d", tc.cellsX, tc.cellsY, p.Len(), want)
		}
		if len(p.Flatten()) != want*3 {
			t.Errorf("%dx%d: flat length %d, want %d", tc.cellsX, tc.cellsY, len(p.Flatten()), want*3)
		}
	}
}

// pathIndices recovers the grid vertex index of every path point by
// exact position match. Positions are copies of grid vertices, so
// float equality is reliable here.
func pathIndices(t *testing.T, g *Grid, p *Path) []int {
	t.Helper()
	lookup := make(map[[3]float32]int, len(g.Positions))
	for i, pos := range g.Positions {
		lookup[pos] = i
	}

	out := make([]int, len(p.Points))
	for i, pt := range p.Points {
		idx, ok := lookup[pt]
		if !ok {
			t.Fatalf("path point %d (%v) is not a grid vertex", i, pt)
		}
		out[i] = idx
	}
	return out
}

func TestBuildPathAdjacency(t *testing.T) {
	// Consecutive points must never be more than one cell apart in row
	// or column, otherwise the strip renders a spurious diagonal.
	img := rampImage(16)
	g := BuildGrid(img, false, 6, 5, 5)
	p := BuildPath(g)

	indices := pathIndices(t, g, p)
	stride := g.CellsX + 1
	for i := 1; i < len(indices); i++ {
		r0, c0 := indices[i-1]/stride, indices[i-1]%stride
		r1, c1 := indices[i]/stride, indices[i]%stride
		if absInt(r1-r0) > 1 || absInt(c1-c0) > 1 {
			t.Fatalf("jump between path points %d and %d: (%d,%d) -> (%d,%d)", i-1, i, r0, c0, r1, c1)
		}
	}
}

func TestBuildPathCellCorners(t *testing.T) {
	// First cell of an even row must trace near-left, near-right,
	// far-left, far-right.
	img := constantImage(4, 0)
	g := BuildGrid(img, false, 3, 2, 5)
	p := BuildPath(g)

	indices := pathIndices(t, g, p)
	stride := g.CellsX + 1
	want := []int{0, 1, stride, stride + 1}
	for i, w := range want {
		if indices[i] != w {
			t.Errorf("even-row corner %d: vertex %d, want %d", i, indices[i], w)
		}
	}

	// The first cell visited on the following odd row starts at the
	// right edge with the corner order reversed.
	oddStart := g.CellsX * 4
	r := indices[oddStart] / stride
	if r != 2 {
		t.Errorf("odd row should start on its far row: got row %d, want 2", r)
	}
	c := indices[oddStart] % stride
	if c != g.CellsX {
		t.Errorf("odd row should start at the right edge: got col %d, want %d", c, g.CellsX)
	}
}

func TestBuildPathCoversEveryCell(t *testing.T) {
	img := rampImage(8)
	g := BuildGrid(img, false, 4, 3, 5)
	p := BuildPath(g)

	indices := pathIndices(t, g, p)
	stride := g.CellsX + 1

	// Each cell contributes its four corners as one consecutive group.
	seen := make(map[[2]int]bool)
	for i := 0; i+3 < len(indices); i += 4 {
		minIdx := indices[i]
		for _, idx := range indices[i+1 : i+4] {
			if idx < minIdx {
				minIdx = idx
			}
		}
		seen[[2]int{minIdx / stride, minIdx % stride}] = true
	}

	for row := 0; row < g.CellsY; row++ {
		for col := 0; col < g.CellsX; col++ {
			if !seen[[2]int{row, col}] {
				t.Errorf("cell (%d,%d) never visited", row, col)
			}
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
