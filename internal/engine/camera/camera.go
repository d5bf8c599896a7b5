// Package camera provides the fixed perspective camera for the demo scene.
package camera

import (
	gomath "math"

	"github.com/franky-adl/synthwave-scene/pkg/math"
)

// Camera is a perspective camera with a fixed eye and target.
// The demo never moves the camera; only the aspect ratio changes on resize.
type Camera struct {
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3

	FOVDegrees float32
	Near       float32
	Far        float32

	aspect float32
}

// New creates a camera with the given aspect ratio, placed low above the
// terrain near its front edge, looking toward the horizon.
func New(aspect float32) *Camera {
	return &Camera{
		Position:   math.Vec3{X: 0, Y: 2.2, Z: 17.0},
		Target:     math.Vec3{X: 0, Y: 1.0, Z: 0},
		Up:         math.Vec3{X: 0, Y: 1, Z: 0},
		FOVDegrees: 60,
		Near:       0.1,
		Far:        250,
		aspect:     aspect,
	}
}

// Resize updates the aspect ratio from a new viewport size.
func (c *Camera) Resize(width, height int) {
	if height < 1 {
		height = 1
	}
	c.aspect = float32(width) / float32(height)
}

// Aspect returns the current aspect ratio.
func (c *Camera) Aspect() float32 {
	return c.aspect
}

// ViewMatrix returns the view matrix for this camera.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Target, c.Up)
}

// ProjectionMatrix returns the perspective projection matrix.
func (c *Camera) ProjectionMatrix() math.Mat4 {
	fovRad := c.FOVDegrees * gomath.Pi / 180
	return math.Perspective(fovRad, c.aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view, ready for shader upload.
func (c *Camera) ViewProjection() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}
