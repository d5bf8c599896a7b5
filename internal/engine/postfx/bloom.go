// Package postfx implements the bloom post-processing chain: a bright
// pass, a separable Gaussian blur at half resolution, and a composite
// back onto the scene image.
package postfx

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/franky-adl/synthwave-scene/internal/config"
	"github.com/franky-adl/synthwave-scene/internal/engine/framebuffer"
	"github.com/franky-adl/synthwave-scene/internal/engine/shader"
)

const fullscreenVertexShader = `#version 410 core
out vec2 vUV;

void main() {
    vec2 pos = vec2(float((gl_VertexID << 1) & 2), float(gl_VertexID & 2)) * 2.0 - 1.0;
    vUV = pos * 0.5 + 0.5;
    gl_Position = vec4(pos, 0.0, 1.0);
}
`

const brightPassFragmentShader = `#version 410 core
in vec2 vUV;

uniform sampler2D uScene;
uniform float uThreshold;

out vec4 FragColor;

void main() {
    vec4 c = texture(uScene, vUV);
    float luma = dot(c.rgb, vec3(0.2126, 0.7152, 0.0722));
    float pass = smoothstep(uThreshold, uThreshold + 0.1, luma);
    FragColor = vec4(c.rgb * pass, 1.0);
}
`

const blurFragmentShader = `#version 410 core
in vec2 vUV;

uniform sampler2D uSource;
uniform vec2 uDirection; // texel step scaled by radius

out vec4 FragColor;

void main() {
    // 9-tap Gaussian, weights sum to 1
    float weights[5] = float[](0.227027, 0.1945946, 0.1216216, 0.054054, 0.016216);

    vec3 result = texture(uSource, vUV).rgb * weights[0];
    for (int i = 1; i < 5; i++) {
        vec2 off = uDirection * float(i);
        result += texture(uSource, vUV + off).rgb * weights[i];
        result += texture(uSource, vUV - off).rgb * weights[i];
    }
    FragColor = vec4(result, 1.0);
}
`

const compositeFragmentShader = `#version 410 core
in vec2 vUV;

uniform sampler2D uScene;
uniform sampler2D uBloom;
uniform float uStrength;

out vec4 FragColor;

void main() {
    vec3 scene = texture(uScene, vUV).rgb;
    vec3 bloom = texture(uBloom, vUV).rgb;
    FragColor = vec4(scene + bloom * uStrength, 1.0);
}
`

// Bloom runs the bloom chain. The blur works on half-resolution
// half-float buffers; the composite writes into the caller's target.
type Bloom struct {
	brightProgram    uint32
	blurProgram      uint32
	compositeProgram uint32

	locBrightScene     int32
	locBrightThreshold int32
	locBlurSource      int32
	locBlurDirection   int32
	locCompScene       int32
	locCompBloom       int32
	locCompStrength    int32

	brightFB *framebuffer.Framebuffer
	pingFB   *framebuffer.Framebuffer
	pongFB   *framebuffer.Framebuffer

	vao    uint32
	width  int32
	height int32
}

// New creates the bloom chain for a scene of the given size.
func New(width, height int32) (*Bloom, error) {
	b := &Bloom{width: width, height: height}

	var err error
	if b.brightProgram, err = shader.CompileProgram(fullscreenVertexShader, brightPassFragmentShader); err != nil {
		return nil, fmt.Errorf("bright pass shader: %w", err)
	}
	if b.blurProgram, err = shader.CompileProgram(fullscreenVertexShader, blurFragmentShader); err != nil {
		return nil, fmt.Errorf("blur shader: %w", err)
	}
	if b.compositeProgram, err = shader.CompileProgram(fullscreenVertexShader, compositeFragmentShader); err != nil {
		return nil, fmt.Errorf("composite shader: %w", err)
	}

	b.locBrightScene = shader.GetUniform(b.brightProgram, "uScene")
	b.locBrightThreshold = shader.GetUniform(b.brightProgram, "uThreshold")
	b.locBlurSource = shader.GetUniform(b.blurProgram, "uSource")
	b.locBlurDirection = shader.GetUniform(b.blurProgram, "uDirection")
	b.locCompScene = shader.GetUniform(b.compositeProgram, "uScene")
	b.locCompBloom = shader.GetUniform(b.compositeProgram, "uBloom")
	b.locCompStrength = shader.GetUniform(b.compositeProgram, "uStrength")

	hw, hh := half(width), half(height)
	if b.brightFB, err = framebuffer.NewWithFormat(hw, hh, framebuffer.RGBA16F, false); err != nil {
		return nil, err
	}
	if b.pingFB, err = framebuffer.NewWithFormat(hw, hh, framebuffer.RGBA16F, false); err != nil {
		return nil, err
	}
	if b.pongFB, err = framebuffer.NewWithFormat(hw, hh, framebuffer.RGBA16F, false); err != nil {
		return nil, err
	}

	// the vertex shader generates its own triangle; the VAO stays empty
	gl.GenVertexArrays(1, &b.vao)

	return b, nil
}

func half(v int32) int32 {
	if v < 2 {
		return 1
	}
	return v / 2
}

// Resize adjusts the internal buffers to a new scene size.
func (b *Bloom) Resize(width, height int32) {
	if width == b.width && height == b.height {
		return
	}
	b.width = width
	b.height = height
	b.brightFB.Resize(half(width), half(height))
	b.pingFB.Resize(half(width), half(height))
	b.pongFB.Resize(half(width), half(height))
}

// Render runs the chain on sceneTex and writes the composited result into
// target. When bloom is disabled the scene passes through unchanged.
func (b *Bloom) Render(sceneTex uint32, target *framebuffer.Framebuffer, p *config.BloomParams) {
	gl.BindVertexArray(b.vao)
	gl.Disable(gl.DEPTH_TEST)

	strength := p.Strength
	bloomTex := b.pongFB.ColorTexture()

	if p.Enabled {
		// bright pass into the half-res buffer
		restore := b.brightFB.BindWithViewport()
		gl.UseProgram(b.brightProgram)
		bindTexture(0, sceneTex, b.locBrightScene)
		gl.Uniform1f(b.locBrightThreshold, p.Threshold)
		gl.DrawArrays(gl.TRIANGLES, 0, 3)
		restore()

		// separable blur, horizontal then vertical
		hw, hh := b.brightFB.Size()
		stepX := p.Radius / float32(hw)
		stepY := p.Radius / float32(hh)

		restore = b.pingFB.BindWithViewport()
		gl.UseProgram(b.blurProgram)
		bindTexture(0, b.brightFB.ColorTexture(), b.locBlurSource)
		gl.Uniform2f(b.locBlurDirection, stepX, 0)
		gl.DrawArrays(gl.TRIANGLES, 0, 3)
		restore()

		restore = b.pongFB.BindWithViewport()
		bindTexture(0, b.pingFB.ColorTexture(), b.locBlurSource)
		gl.Uniform2f(b.locBlurDirection, 0, stepY)
		gl.DrawArrays(gl.TRIANGLES, 0, 3)
		restore()
	} else {
		strength = 0
	}

	// composite into the target
	restoreTarget := target.BindWithViewport()
	gl.UseProgram(b.compositeProgram)
	bindTexture(0, sceneTex, b.locCompScene)
	bindTexture(1, bloomTex, b.locCompBloom)
	gl.Uniform1f(b.locCompStrength, strength)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	restoreTarget()

	gl.Enable(gl.DEPTH_TEST)
	gl.BindVertexArray(0)
}

func bindTexture(unit uint32, tex uint32, loc int32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.Uniform1i(loc, int32(unit))
}

// Destroy releases GPU resources.
func (b *Bloom) Destroy() {
	for _, p := range []uint32{b.brightProgram, b.blurProgram, b.compositeProgram} {
		if p != 0 {
			gl.DeleteProgram(p)
		}
	}
	b.brightProgram, b.blurProgram, b.compositeProgram = 0, 0, 0

	for _, fb := range []*framebuffer.Framebuffer{b.brightFB, b.pingFB, b.pongFB} {
		if fb != nil {
			fb.Destroy()
		}
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
}
