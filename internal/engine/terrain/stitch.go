package terrain

// Stitch reconciles the shared boundary rows of two adjacent grids so
// elevations match exactly at the seam: a's top row elevations are
// copied into b's bottom row and b's top row into a's bottom row.
//
// Both copies read from snapshots taken before any write, so the result
// is independent of copy order even when a and b are the same grid.
// Must run after displacement and before BuildPath, which bakes final
// vertex positions into the wireframe.
func Stitch(a, b *Grid) {
	if a.CellsX != b.CellsX || a.CellsY != b.CellsY {
		return
	}

	cols := a.CellsX + 1
	bottom := cols * a.CellsY

	aTop := make([]float32, cols)
	bTop := make([]float32, cols)
	for i := 0; i < cols; i++ {
		aTop[i] = a.Positions[i][2]
		bTop[i] = b.Positions[i][2]
	}

	for i := 0; i < cols; i++ {
		b.Positions[bottom+i][2] = aTop[i]
		a.Positions[bottom+i][2] = bTop[i]
	}
}
