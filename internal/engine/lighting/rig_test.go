package lighting

import (
	gomath "math"
	"testing"

	"github.com/franky-adl/synthwave-scene/internal/config"
)

func length3(v [3]float32) float64 {
	return gomath.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2]))
}

func TestNewRigSpotsFlankTheRoad(t *testing.T) {
	rig := NewRig(30, 30)

	if rig.SpotA.Position[0] != -15 || rig.SpotB.Position[0] != 15 {
		t.Errorf("spot x positions = %v, %v, want -15, 15",
			rig.SpotA.Position[0], rig.SpotB.Position[0])
	}
	// each spot aims across the road toward the opposite side
	if rig.SpotA.Target[0] <= 0 {
		t.Errorf("spot A target x = %v, want positive", rig.SpotA.Target[0])
	}
	if rig.SpotB.Target[0] >= 0 {
		t.Errorf("spot B target x = %v, want negative", rig.SpotB.Target[0])
	}
}

func TestAimDirectionNormalized(t *testing.T) {
	rig := NewRig(30, 30)
	for _, s := range []*Spot{&rig.SpotA, &rig.SpotB} {
		d := s.AimDirection()
		if l := length3(d); gomath.Abs(l-1) > 1e-5 {
			t.Errorf("aim direction length = %v, want 1", l)
		}
		if d[1] >= 0 {
			t.Errorf("aim direction y = %v, want negative (aimed downward)", d[1])
		}
	}
}

func TestApplyCopiesLiveParams(t *testing.T) {
	rig := NewRig(30, 30)
	p := &config.Default().Params
	p.SpotlightA.Intensity = 42
	p.DirLight.Color = [3]float32{0.5, 0.25, 0.125}

	rig.Apply(p)

	if rig.SpotA.Intensity != 42 {
		t.Errorf("spot A intensity = %v, want 42", rig.SpotA.Intensity)
	}
	if rig.Dir.Color != p.DirLight.Color {
		t.Errorf("dir color = %v, want %v", rig.Dir.Color, p.DirLight.Color)
	}
	// geometry untouched
	if rig.SpotA.Position != [3]float32{-15, 8, 21} {
		t.Errorf("spot A position changed by Apply: %v", rig.SpotA.Position)
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	if got := normalize3(0, 0, 0); got != [3]float32{0, 0, 0} {
		t.Errorf("normalize3(0,0,0) = %v, want zero", got)
	}
}
