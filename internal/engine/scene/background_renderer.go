package scene

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/franky-adl/synthwave-scene/internal/engine/scene/shaders"
	"github.com/franky-adl/synthwave-scene/internal/engine/shader"
)

// BackgroundRenderer draws the starfield backdrop as a fullscreen
// triangle pinned to the far plane.
type BackgroundRenderer struct {
	program uint32

	locStars      int32
	locBackground int32

	vao      uint32
	starsTex uint32
}

// NewBackgroundRenderer compiles the background shader and uploads the
// starfield texture.
func NewBackgroundRenderer(stars *image.RGBA) (*BackgroundRenderer, error) {
	br := &BackgroundRenderer{}

	program, err := shader.CompileProgram(shaders.BackgroundVertexShader, shaders.BackgroundFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("background shader: %w", err)
	}
	br.program = program

	br.locStars = shader.GetUniform(program, "uStars")
	br.locBackground = shader.GetUniform(program, "uBackground")

	// the vertex shader generates its own triangle; the VAO stays empty
	gl.GenVertexArrays(1, &br.vao)

	gl.GenTextures(1, &br.starsTex)
	gl.BindTexture(gl.TEXTURE_2D, br.starsTex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(stars.Bounds().Dx()), int32(stars.Bounds().Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&stars.Pix[0]))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	return br, nil
}

// Render draws the backdrop. Call first, with depth writes off.
func (br *BackgroundRenderer) Render(background [3]float32) {
	gl.UseProgram(br.program)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, br.starsTex)
	gl.Uniform1i(br.locStars, 0)
	gl.Uniform3f(br.locBackground, background[0], background[1], background[2])

	gl.BindVertexArray(br.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
}

// Destroy releases GPU resources.
func (br *BackgroundRenderer) Destroy() {
	if br.vao != 0 {
		gl.DeleteVertexArrays(1, &br.vao)
		br.vao = 0
	}
	if br.starsTex != 0 {
		gl.DeleteTextures(1, &br.starsTex)
		br.starsTex = 0
	}
	if br.program != 0 {
		gl.DeleteProgram(br.program)
		br.program = 0
	}
}
