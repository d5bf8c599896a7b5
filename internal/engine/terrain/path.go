package terrain

// Path is an ordered polyline visiting grid vertices, used to render the
// wireframe as one continuous line strip.
type Path struct {
	Points [][3]float32
}

// BuildPath derives the wireframe polyline for a grid. Rows are walked
// in a serpentine order (even rows left to right, odd rows right to
// left) and each cell contributes four points tracing its near and far
// edges, so consecutive points are always spatially adjacent and the
// strip never jumps across the mesh. Point order is reversed along with
// the column direction on odd rows to keep the strip continuous.
//
// The emitted point for cell (row, col) and corner p maps to vertex
// rowOffset+col+p for the near edge (p < 2) and
// rowOffset+col+p+cellsX-1 for the far edge, i.e. the same two columns
// one grid row further. Total length is exactly cellsX*cellsY*4 points.
func BuildPath(g *Grid) *Path {
	cellsX, cellsY := g.CellsX, g.CellsY
	points := make([][3]float32, 0, cellsX*cellsY*4)

	for row := 0; row < cellsY; row++ {
		rowOffset := row * (cellsX + 1)
		if row%2 == 0 {
			for col := 0; col < cellsX; col++ {
				for p := 0; p < 4; p++ {
					points = append(points, g.Positions[cellPointIndex(rowOffset, col, p, cellsX)])
				}
			}
		} else {
			for col := cellsX - 1; col >= 0; col-- {
				for p := 3; p >= 0; p-- {
					points = append(points, g.Positions[cellPointIndex(rowOffset, col, p, cellsX)])
				}
			}
		}
	}

	return &Path{Points: points}
}

// cellPointIndex maps a cell corner to its vertex index. Corners 0,1 are
// the cell's near-left/near-right vertices on the current row; corners
// 2,3 are far-left/far-right on the next row, reached by the cellsX-1
// offset on top of the corner number.
func cellPointIndex(rowOffset, col, p, cellsX int) int {
	if p < 2 {
		return rowOffset + col + p
	}
	return rowOffset + col + p + cellsX - 1
}

// Len returns the number of points in the path.
func (p *Path) Len() int {
	return len(p.Points)
}

// Flatten returns the path as a flat float32 slice (3 scalars per
// point) ready for line-geometry upload.
func (p *Path) Flatten() []float32 {
	out := make([]float32, 0, len(p.Points)*3)
	for _, pt := range p.Points {
		out = append(out, pt[0], pt[1], pt[2])
	}
	return out
}
