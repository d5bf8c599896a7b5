package terrain

import (
	"github.com/franky-adl/synthwave-scene/pkg/math"
)

// ShearFactor skews every grid sideways by the same amount so adjacent
// tiles line up. x is sheared proportionally to y.
const ShearFactor = -0.5

// Grid is a displaced terrain mesh: (CellsX+1)*(CellsY+1) vertices in
// row-major order with matching UV coordinates. Each cell is one world
// unit square before displacement, centered on the origin in x/y with
// elevation stored in z.
type Grid struct {
	CellsX, CellsY int
	Positions      [][3]float32
	UVs            [][2]float32
}

// BuildGrid builds a flat grid, displaces each vertex elevation from the
// heightmap and applies the shear skew. With mirror set, u is sampled as
// 1-u, producing the horizontally mirrored companion tile. Deterministic:
// identical inputs always yield an identical vertex buffer.
func BuildGrid(img *HeightImage, mirror bool, cellsX, cellsY int, scale float32) *Grid {
	g := &Grid{
		CellsX:    cellsX,
		CellsY:    cellsY,
		Positions: make([][3]float32, (cellsX+1)*(cellsY+1)),
		UVs:       make([][2]float32, (cellsX+1)*(cellsY+1)),
	}

	halfW := float32(cellsX) / 2
	halfH := float32(cellsY) / 2
	shear := math.ShearX(ShearFactor)

	for row := 0; row <= cellsY; row++ {
		v := 1 - float32(row)/float32(cellsY)
		for col := 0; col <= cellsX; col++ {
			u := float32(col) / float32(cellsX)

			su := u
			if mirror {
				su = 1 - u
			}

			pos := [3]float32{
				float32(col) - halfW,
				halfH - float32(row),
				img.Sample(su, v, scale),
			}

			i := row*(cellsX+1) + col
			g.Positions[i] = shear.TransformPoint(pos)
			g.UVs[i] = [2]float32{u, v}
		}
	}

	return g
}

// VertexCount returns the number of vertices in the grid.
func (g *Grid) VertexCount() int {
	return (g.CellsX + 1) * (g.CellsY + 1)
}

// At returns the vertex position at the given row and column.
func (g *Grid) At(row, col int) [3]float32 {
	return g.Positions[row*(g.CellsX+1)+col]
}

// Elevation returns the displaced elevation at the given row and column.
func (g *Grid) Elevation(row, col int) float32 {
	return g.Positions[row*(g.CellsX+1)+col][2]
}

// FlattenPositions returns the vertex positions as a flat float32 slice
// (3 scalars per vertex) for GPU upload.
func (g *Grid) FlattenPositions() []float32 {
	out := make([]float32, 0, len(g.Positions)*3)
	for _, p := range g.Positions {
		out = append(out, p[0], p[1], p[2])
	}
	return out
}

// TriangleIndices returns an index buffer triangulating every cell with
// two counter-clockwise triangles.
func (g *Grid) TriangleIndices() []uint32 {
	out := make([]uint32, 0, g.CellsX*g.CellsY*6)
	stride := uint32(g.CellsX + 1)
	for row := 0; row < g.CellsY; row++ {
		for col := 0; col < g.CellsX; col++ {
			a := uint32(row)*stride + uint32(col)
			b := a + 1
			c := a + stride
			d := c + 1
			out = append(out, a, c, b, b, c, d)
		}
	}
	return out
}
