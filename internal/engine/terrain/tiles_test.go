package terrain

import "testing"

func buildPair(t *testing.T, cellsX, cellsY int) (*Grid, *Grid, *Path, *Path) {
	t.Helper()
	img := rampImage(16)
	a := BuildGrid(img, false, cellsX, cellsY, DefaultDisplacementScale)
	b := BuildGrid(img, true, cellsX, cellsY, DefaultDisplacementScale)
	Stitch(a, b)
	return a, b, BuildPath(a), BuildPath(b)
}

func TestNewTileSetParity(t *testing.T) {
	a, b, pa, pb := buildPair(t, 4, 4)

	ts, err := NewTileSet(a, b, pa, pb, 6)
	if err != nil {
		t.Fatalf("NewTileSet: %v", err)
	}
	if len(ts.Tiles) != 6 {
		t.Fatalf("tile count: got %d, want 6", len(ts.Tiles))
	}

	for i, tile := range ts.Tiles {
		wantGrid, wantPath := a, pa
		if i%2 == 1 {
			wantGrid, wantPath = b, pb
		}
		if tile.Grid != wantGrid || tile.Path != wantPath {
			t.Errorf("tile %d bound to wrong grid/path pair", i)
		}
		if tile.Z != -float32(i)*ts.Depth() {
			t.Errorf("tile %d initial z: got %f, want %f", i, tile.Z, -float32(i)*ts.Depth())
		}
	}
}

func TestNewTileSetRejectsOddCount(t *testing.T) {
	a, b, pa, pb := buildPair(t, 2, 2)

	for _, count := range []int{-2, 0, 1, 5} {
		if _, err := NewTileSet(a, b, pa, pb, count); err == nil {
			t.Errorf("count %d: expected error, got nil", count)
		}
	}
}

func TestAdvanceWraparound(t *testing.T) {
	// speed=1, interval=1, cellsY=30, 6 tiles: after 30 ticks the lead
	// tile has wrapped exactly once and sits at start - span + 30.
	a, b, pa, pb := buildPair(t, 4, 30)

	ts, err := NewTileSet(a, b, pa, pb, 6)
	if err != nil {
		t.Fatalf("NewTileSet: %v", err)
	}

	start := ts.Tiles[0].Z
	for tick := 0; tick < 30; tick++ {
		ts.Advance(1, 1)
	}

	want := start - ts.Span() + 30
	if ts.Tiles[0].Z != want {
		t.Errorf("lead tile after 30 ticks: got %f, want %f", ts.Tiles[0].Z, want)
	}

	// No tile ever scrolls past one tile depth.
	for tick := 0; tick < 500; tick++ {
		ts.Advance(0.37, 2.1)
		for i, tile := range ts.Tiles {
			if tile.Z >= ts.Depth() {
				t.Fatalf("tile %d escaped at tick %d: z=%f", i, tick, tile.Z)
			}
		}
	}
}

func TestAdvanceKeepsSpacing(t *testing.T) {
	a, b, pa, pb := buildPair(t, 4, 10)

	ts, err := NewTileSet(a, b, pa, pb, 4)
	if err != nil {
		t.Fatalf("NewTileSet: %v", err)
	}

	for tick := 0; tick < 100; tick++ {
		ts.Advance(1, 0.9)

		// Modulo the full span, tiles stay exactly one depth apart.
		for i := 1; i < len(ts.Tiles); i++ {
			gap := ts.Tiles[i-1].Z - ts.Tiles[i].Z
			for gap < 0 {
				gap += ts.Span()
			}
			for gap >= ts.Span() {
				gap -= ts.Span()
			}
			if diff := gap - ts.Depth(); diff > 1e-3 || diff < -1e-3 {
				t.Fatalf("tick %d: gap between tiles %d and %d is %f, want %f", tick, i-1, i, gap, ts.Depth())
			}
		}
	}
}
