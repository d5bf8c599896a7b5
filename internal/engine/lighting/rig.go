// Package lighting provides the light rig for the demo scene.
package lighting

import (
	gomath "math"

	"github.com/franky-adl/synthwave-scene/internal/config"
)

// Directional is a direction-only light for GPU upload.
type Directional struct {
	Direction [3]float32 // normalized, pointing from the light toward the scene
	Color     [3]float32
	Intensity float32
}

// Spot is a cone light aimed at a target point.
type Spot struct {
	Position  [3]float32
	Target    [3]float32
	Color     [3]float32
	Intensity float32
	// Cosine of the cone half-angle; fragments outside fall to zero.
	CosCutoff float32
	Penumbra  float32
}

// Rig holds the fixed light geometry of the scene. Positions never move;
// colors and intensities are re-read from Params every frame via Apply.
type Rig struct {
	Dir   Directional
	SpotA Spot
	SpotB Spot
}

// NewRig builds the stock rig for a terrain spanning cellsX by cellsY:
// a dim white directional from above-behind the camera, and two colored
// spotlights flanking the road, crossing over it.
func NewRig(cellsX, cellsY int) *Rig {
	halfW := float32(cellsX) / 2
	halfD := float32(cellsY) / 2
	cutoff := float32(gomath.Cos(gomath.Pi / 5))

	return &Rig{
		Dir: Directional{
			Direction: normalize3(0, -1, -0.5),
		},
		SpotA: Spot{
			Position:  [3]float32{-halfW, 8, halfD + 6},
			Target:    [3]float32{halfW / 2, 0, 0},
			CosCutoff: cutoff,
			Penumbra:  0.25,
		},
		SpotB: Spot{
			Position:  [3]float32{halfW, 8, halfD + 6},
			Target:    [3]float32{-halfW / 2, 0, 0},
			CosCutoff: cutoff,
			Penumbra:  0.25,
		},
	}
}

// Apply copies the live color and intensity parameters onto the rig.
func (r *Rig) Apply(p *config.Params) {
	r.Dir.Color = p.DirLight.Color
	r.Dir.Intensity = p.DirLight.Intensity
	r.SpotA.Color = p.SpotlightA.Color
	r.SpotA.Intensity = p.SpotlightA.Intensity
	r.SpotB.Color = p.SpotlightB.Color
	r.SpotB.Intensity = p.SpotlightB.Intensity
}

// AimDirection returns the normalized direction from the spot's position
// to its target.
func (s *Spot) AimDirection() [3]float32 {
	return normalize3(
		s.Target[0]-s.Position[0],
		s.Target[1]-s.Position[1],
		s.Target[2]-s.Position[2],
	)
}

func normalize3(x, y, z float32) [3]float32 {
	l := float32(gomath.Sqrt(float64(x*x + y*y + z*z)))
	if l == 0 {
		return [3]float32{0, 0, 0}
	}
	return [3]float32{x / l, y / l, z / l}
}
