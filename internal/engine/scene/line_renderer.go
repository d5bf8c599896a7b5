package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/franky-adl/synthwave-scene/internal/config"
	"github.com/franky-adl/synthwave-scene/internal/engine/scene/shaders"
	"github.com/franky-adl/synthwave-scene/internal/engine/shader"
	"github.com/franky-adl/synthwave-scene/internal/engine/terrain"
	"github.com/franky-adl/synthwave-scene/pkg/math"
)

// lineMesh is one wireframe path uploaded as a GPU line strip.
type lineMesh struct {
	vao        uint32
	vbo        uint32
	pointCount int32
}

// LineRenderer draws the boustrophedon wireframe of every tile as a
// single continuous line strip per tile.
type LineRenderer struct {
	program uint32

	locModel    int32
	locViewProj int32
	locColor    int32

	meshes map[*terrain.Path]*lineMesh
}

// NewLineRenderer compiles the line shader and uploads both path
// variants of the tile set.
func NewLineRenderer(ts *terrain.TileSet) (*LineRenderer, error) {
	lr := &LineRenderer{
		meshes: make(map[*terrain.Path]*lineMesh),
	}

	program, err := shader.CompileProgram(shaders.LineVertexShader, shaders.LineFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("line shader: %w", err)
	}
	lr.program = program

	lr.locModel = shader.GetUniform(program, "uModel")
	lr.locViewProj = shader.GetUniform(program, "uViewProj")
	lr.locColor = shader.GetUniform(program, "uLineColor")

	for i := range ts.Tiles {
		p := ts.Tiles[i].Path
		if _, ok := lr.meshes[p]; !ok {
			lr.meshes[p] = uploadPathMesh(p)
		}
	}

	return lr, nil
}

func uploadPathMesh(p *terrain.Path) *lineMesh {
	points := p.Flatten()

	m := &lineMesh{pointCount: int32(p.Len())}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(points)*4, unsafe.Pointer(&points[0]), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)

	gl.BindVertexArray(0)

	return m
}

// Render draws the wireframe path of every tile in the set.
func (lr *LineRenderer) Render(ts *terrain.TileSet, viewProj math.Mat4, line *config.LineParams) {
	gl.UseProgram(lr.program)
	gl.UniformMatrix4fv(lr.locViewProj, 1, false, viewProj.Ptr())
	gl.Uniform3f(lr.locColor, line.Color[0], line.Color[1], line.Color[2])

	// Core profile clamps wide lines on some drivers; still honor the param.
	gl.LineWidth(line.Width)

	for _, tile := range ts.Tiles {
		mesh, ok := lr.meshes[tile.Path]
		if !ok {
			continue
		}

		model := tileModelMatrix(tile.Z)
		gl.UniformMatrix4fv(lr.locModel, 1, false, model.Ptr())

		gl.BindVertexArray(mesh.vao)
		gl.DrawArrays(gl.LINE_STRIP, 0, mesh.pointCount)
	}

	gl.BindVertexArray(0)
	gl.LineWidth(1)
}

// Destroy releases GPU resources.
func (lr *LineRenderer) Destroy() {
	for _, m := range lr.meshes {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
	}
	lr.meshes = nil
	if lr.program != 0 {
		gl.DeleteProgram(lr.program)
		lr.program = 0
	}
}
