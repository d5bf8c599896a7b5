package terrain

import "testing"

func TestStitchReciprocal(t *testing.T) {
	img := rampImage(16)
	cellsX, cellsY := 5, 4

	a := BuildGrid(img, false, cellsX, cellsY, DefaultDisplacementScale)
	b := BuildGrid(img, true, cellsX, cellsY, DefaultDisplacementScale)

	// Snapshot the pre-stitch boundary rows.
	aTop := make([]float32, cellsX+1)
	bTop := make([]float32, cellsX+1)
	for col := 0; col <= cellsX; col++ {
		aTop[col] = a.Elevation(0, col)
		bTop[col] = b.Elevation(0, col)
	}

	Stitch(a, b)

	for col := 0; col <= cellsX; col++ {
		if got := b.Elevation(cellsY, col); got != aTop[col] {
			t.Errorf("b bottom[%d] = %f, want a's original top %f", col, got, aTop[col])
		}
		if got := a.Elevation(cellsY, col); got != bTop[col] {
			t.Errorf("a bottom[%d] = %f, want b's original top %f", col, got, bTop[col])
		}
		// Top rows are sources, never written.
		if a.Elevation(0, col) != aTop[col] || b.Elevation(0, col) != bTop[col] {
			t.Errorf("stitch modified a top row at column %d", col)
		}
	}
}

func TestStitchOrderIndependent(t *testing.T) {
	img := rampImage(16)

	a1 := BuildGrid(img, false, 4, 4, 5)
	b1 := BuildGrid(img, true, 4, 4, 5)
	a2 := BuildGrid(img, false, 4, 4, 5)
	b2 := BuildGrid(img, true, 4, 4, 5)

	Stitch(a1, b1)
	Stitch(b2, a2)

	// Swapping the argument order must produce the same seam values.
	for col := 0; col <= 4; col++ {
		if a1.Elevation(4, col) != a2.Elevation(4, col) {
			t.Errorf("a bottom[%d] depends on stitch order: %f vs %f",
				col, a1.Elevation(4, col), a2.Elevation(4, col))
		}
		if b1.Elevation(4, col) != b2.Elevation(4, col) {
			t.Errorf("b bottom[%d] depends on stitch order: %f vs %f",
				col, b1.Elevation(4, col), b2.Elevation(4, col))
		}
	}
}

func TestStitchOnlyTouchesElevation(t *testing.T) {
	img := rampImage(8)

	a := BuildGrid(img, false, 3, 3, 5)
	b := BuildGrid(img, true, 3, 3, 5)

	beforeA := append([][3]float32(nil), a.Positions...)
	Stitch(a, b)

	for i, p := range a.Positions {
		if p[0] != beforeA[i][0] || p[1] != beforeA[i][1] {
			t.Errorf("stitch moved vertex %d in x/y: %v -> %v", i, beforeA[i], p)
		}
	}
}

func TestStitchSizeMismatchIgnored(t *testing.T) {
	img := rampImage(8)

	a := BuildGrid(img, false, 3, 3, 5)
	b := BuildGrid(img, false, 4, 4, 5)

	before := append([][3]float32(nil), a.Positions...)
	Stitch(a, b)

	for i, p := range a.Positions {
		if p != before[i] {
			t.Fatalf("mismatched stitch modified grid at vertex %d", i)
		}
	}
}
