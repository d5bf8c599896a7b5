package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/franky-adl/synthwave-scene/internal/config"
	"github.com/franky-adl/synthwave-scene/internal/engine/scene/shaders"
	"github.com/franky-adl/synthwave-scene/internal/engine/shader"
	"github.com/franky-adl/synthwave-scene/pkg/math"
)

// SunRenderer draws the gradient sun disc on a world-space quad behind
// the terrain.
type SunRenderer struct {
	program uint32

	locModel    int32
	locViewProj int32
	locTopColor int32
	locBotColor int32

	vao   uint32
	vbo   uint32
	model math.Mat4
}

// NewSunRenderer compiles the sun shader and builds its quad. The quad is
// centered above the horizon, past the farthest terrain tile.
func NewSunRenderer(terrainDepth float32) (*SunRenderer, error) {
	sr := &SunRenderer{}

	program, err := shader.CompileProgram(shaders.SunVertexShader, shaders.SunFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("sun shader: %w", err)
	}
	sr.program = program

	sr.locModel = shader.GetUniform(program, "uModel")
	sr.locViewProj = shader.GetUniform(program, "uViewProj")
	sr.locTopColor = shader.GetUniform(program, "uTopColor")
	sr.locBotColor = shader.GetUniform(program, "uBottomColor")

	// unit quad in xy, scaled and placed by the model matrix
	quad := []float32{
		-1, -1,
		1, -1,
		-1, 1,
		1, -1,
		1, 1,
		-1, 1,
	}

	gl.GenVertexArrays(1, &sr.vao)
	gl.BindVertexArray(sr.vao)
	gl.GenBuffers(1, &sr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, sr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, unsafe.Pointer(&quad[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.BindVertexArray(0)

	const radius = 55.0
	z := -terrainDepth - 10
	sr.model = math.Translate(0, radius*0.4, z).Mul(math.Scale(radius, radius, 1))

	return sr, nil
}

// Render draws the sun. Call with depth writes off, before the terrain.
func (sr *SunRenderer) Render(viewProj math.Mat4, sun *config.SunParams) {
	gl.UseProgram(sr.program)
	gl.UniformMatrix4fv(sr.locModel, 1, false, sr.model.Ptr())
	gl.UniformMatrix4fv(sr.locViewProj, 1, false, viewProj.Ptr())
	gl.Uniform3f(sr.locTopColor, sun.TopColor[0], sun.TopColor[1], sun.TopColor[2])
	gl.Uniform3f(sr.locBotColor, sun.BottomColor[0], sun.BottomColor[1], sun.BottomColor[2])

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BindVertexArray(sr.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
}

// Destroy releases GPU resources.
func (sr *SunRenderer) Destroy() {
	if sr.vao != 0 {
		gl.DeleteVertexArrays(1, &sr.vao)
		sr.vao = 0
	}
	if sr.vbo != 0 {
		gl.DeleteBuffers(1, &sr.vbo)
		sr.vbo = 0
	}
	if sr.program != 0 {
		gl.DeleteProgram(sr.program)
		sr.program = 0
	}
}
