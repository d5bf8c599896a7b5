package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedAssetsDecode(t *testing.T) {
	for _, tc := range []struct {
		name string
		data []byte
	}{
		{"starfield", DefaultStarfield()},
		{"heightmap", DefaultHeightmap()},
	} {
		if len(tc.data) == 0 {
			t.Fatalf("%s: embedded asset is empty", tc.name)
		}
		img, err := DecodeImage(tc.data)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
			t.Errorf("%s: degenerate bounds %v", tc.name, img.Bounds())
		}
	}
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test PNG: %v", err)
	}
	return buf.Bytes()
}

func TestLoadHeightImageRasterSize(t *testing.T) {
	// An 8x8 source rasterized onto 16x4 must report the raster size,
	// which is what the sampler contract is built on.
	src := image.NewGray(image.Rect(0, 0, 8, 8))
	for i := range src.Pix {
		src.Pix[i] = 128
	}

	h, err := LoadHeightImage(encodePNG(t, src), 16, 4)
	if err != nil {
		t.Fatalf("LoadHeightImage: %v", err)
	}
	if h.Width != 16 || h.Height != 4 {
		t.Errorf("raster size: got %dx%d, want 16x4", h.Width, h.Height)
	}

	// A uniform source stays uniform through the rescale.
	for i, p := range h.Pix {
		if p < 126 || p > 130 {
			t.Errorf("pixel %d drifted during rescale: %d", i, p)
			break
		}
	}
}

func TestLoadHeightImageNoRescale(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 4))
	src.SetGray(2, 1, color.Gray{Y: 200})

	h, err := LoadHeightImage(encodePNG(t, src), 4, 4)
	if err != nil {
		t.Fatalf("LoadHeightImage: %v", err)
	}
	if h.Pix[1*4+2] != 200 {
		t.Errorf("expected untouched pixel value 200, got %d", h.Pix[1*4+2])
	}
}

func TestLoadHeightImageFileMissing(t *testing.T) {
	if _, err := LoadHeightImageFile(filepath.Join(t.TempDir(), "nope.png"), 8, 8); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadHeightImageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hm.png")
	src := image.NewGray(image.Rect(0, 0, 3, 3))
	if err := os.WriteFile(path, encodePNG(t, src), 0644); err != nil {
		t.Fatalf("writing temp heightmap: %v", err)
	}

	h, err := LoadHeightImageFile(path, 3, 3)
	if err != nil {
		t.Fatalf("LoadHeightImageFile: %v", err)
	}
	if h.Width != 3 || h.Height != 3 {
		t.Errorf("got %dx%d, want 3x3", h.Width, h.Height)
	}
}

func TestToRGBAFlip(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 2))
	src.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	src.SetRGBA(0, 1, color.RGBA{B: 255, A: 255})

	flipped := ToRGBA(src, true)
	top := flipped.RGBAAt(0, 0)
	if top.B != 255 || top.R != 0 {
		t.Errorf("flip: expected blue pixel on top, got %+v", top)
	}

	straight := ToRGBA(src, false)
	if straight.RGBAAt(0, 0).R != 255 {
		t.Errorf("no-flip: expected red pixel on top, got %+v", straight.RGBAAt(0, 0))
	}
}
