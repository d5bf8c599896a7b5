package terrain

import "fmt"

// Tile is one placed terrain instance. The grid and path are shared
// between instances; only the depth offset is per tile.
type Tile struct {
	Grid *Grid
	Path *Path
	Z    float32
}

// TileSet holds the tiles scrolling through the scene. Instances
// alternate between two shared grid/path pairs by index parity, so the
// set size must be even. Tiles are placed end to end along -z and
// recycled by position wraparound, never destroyed.
type TileSet struct {
	Tiles []*Tile

	depth float32 // world depth of one tile (cellsY units)
	span  float32 // total depth covered by all tiles
}

// NewTileSet places count tiles bound alternately to the (a, pathA) and
// (b, pathB) pairs, tile i starting at z = -i*depth.
func NewTileSet(a, b *Grid, pathA, pathB *Path, count int) (*TileSet, error) {
	if count <= 0 || count%2 != 0 {
		return nil, fmt.Errorf("tile count must be positive and even, got %d", count)
	}
	if a.CellsY != b.CellsY {
		return nil, fmt.Errorf("grid depth mismatch: %d vs %d cells", a.CellsY, b.CellsY)
	}

	depth := float32(a.CellsY)
	ts := &TileSet{
		depth: depth,
		span:  depth * float32(count),
	}

	for i := 0; i < count; i++ {
		t := &Tile{Grid: a, Path: pathA, Z: -float32(i) * depth}
		if i%2 == 1 {
			t.Grid = b
			t.Path = pathB
		}
		ts.Tiles = append(ts.Tiles, t)
	}

	return ts, nil
}

// Advance moves every tile forward by interval*speed and wraps tiles
// that have scrolled past one tile depth back to the rear of the set,
// producing the infinite looping scroll.
func (ts *TileSet) Advance(interval, speed float32) {
	step := interval * speed
	for _, t := range ts.Tiles {
		t.Z += step
		if t.Z >= ts.depth {
			t.Z -= ts.span
		}
	}
}

// Depth returns the world depth of a single tile.
func (ts *TileSet) Depth() float32 {
	return ts.depth
}

// Span returns the total world depth covered by the whole set.
func (ts *TileSet) Span() float32 {
	return ts.span
}
