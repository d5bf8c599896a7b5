// Package terrain builds the scrolling synthwave terrain: heightmap
// sampling, displaced grid meshes, seam stitching between tiles, and the
// serpentine wireframe path used for line rendering.
package terrain

import (
	"image"
	"math"
)

// DefaultDisplacementScale is the maximum elevation produced by a fully
// white heightmap pixel.
const DefaultDisplacementScale = 5.0

// HeightImage is an immutable greyscale raster used as the elevation
// source. Values are in [0,255].
type HeightImage struct {
	Pix    []uint8
	Width  int
	Height int
}

// NewHeightImage converts a decoded image into a greyscale raster.
// The red channel is used; for greyscale sources all channels are equal.
func NewHeightImage(img image.Image) *HeightImage {
	b := img.Bounds()
	h := &HeightImage{
		Pix:    make([]uint8, b.Dx()*b.Dy()),
		Width:  b.Dx(),
		Height: b.Dy(),
	}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			r, _, _, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			h.Pix[y*b.Dx()+x] = uint8(r >> 8)
		}
	}
	return h
}

// Sample returns the elevation for normalized texture coordinates u,v.
// v is inverted: texture-space v grows upward while raster rows grow
// downward, so v=1 reads the first pixel row and v=0 the last. Pixel
// indices are clamped, making the function total over its inputs.
func (h *HeightImage) Sample(u, v float32, scale float32) float32 {
	x := int(math.Round(float64(u) * float64(h.Width-1)))
	y := int(math.Round(float64(1-v) * float64(h.Height-1)))
	x = clampi(x, 0, h.Width-1)
	y = clampi(y, 0, h.Height-1)
	return float32(h.Pix[y*h.Width+x]) / 255.0 * scale
}

func clampi(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
