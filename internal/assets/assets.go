// Package assets handles loading and decoding of the demo's image assets.
package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	_ "golang.org/x/image/bmp" // BMP decoder registration
	xdraw "golang.org/x/image/draw"

	"github.com/franky-adl/synthwave-scene/internal/engine/terrain"
)

//go:embed textures/stars.png textures/heightmap.png
var embedded embed.FS

// DefaultStarfield returns the embedded starfield background texture.
func DefaultStarfield() []byte {
	data, _ := embedded.ReadFile("textures/stars.png")
	return data
}

// DefaultHeightmap returns the embedded noise heightmap.
func DefaultHeightmap() []byte {
	data, _ := embedded.ReadFile("textures/heightmap.png")
	return data
}

// DecodeImage decodes PNG, JPEG or BMP image data.
func DecodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}

// DecodeRGBA decodes image data into RGBA pixels ready for GL upload.
// flipY flips the image vertically since OpenGL texture origin is at
// the bottom-left.
func DecodeRGBA(data []byte, flipY bool) (*image.RGBA, error) {
	img, err := DecodeImage(data)
	if err != nil {
		return nil, err
	}
	return ToRGBA(img, flipY), nil
}

// ToRGBA converts any decoded image to RGBA, optionally flipping it
// vertically.
func ToRGBA(img image.Image, flipY bool) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		dstY := y
		if flipY {
			dstY = b.Dy() - 1 - y
		}
		for x := 0; x < b.Dx(); x++ {
			out.Set(x, dstY, img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return out
}

// LoadHeightImage decodes heightmap data and rasterizes it onto a
// rasterW x rasterH canvas with bilinear filtering. The returned raster
// dimensions, not the source image's native size, are what the terrain
// sampler sees.
func LoadHeightImage(data []byte, rasterW, rasterH int) (*terrain.HeightImage, error) {
	img, err := DecodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("heightmap: %w", err)
	}

	if b := img.Bounds(); b.Dx() != rasterW || b.Dy() != rasterH {
		scaled := image.NewRGBA(image.Rect(0, 0, rasterW, rasterH))
		xdraw.BiLinear.Scale(scaled, scaled.Bounds(), img, b, xdraw.Src, nil)
		img = scaled
	}

	return terrain.NewHeightImage(img), nil
}

// LoadHeightImageFile is LoadHeightImage reading from a file path.
func LoadHeightImageFile(path string, rasterW, rasterH int) (*terrain.HeightImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading heightmap %s: %w", path, err)
	}
	return LoadHeightImage(data, rasterW, rasterH)
}
