// Package scene composes the synthwave terrain scene: scrolling wireframe
// terrain, gradient sun, starfield backdrop, and the bloom chain.
package scene

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/franky-adl/synthwave-scene/internal/config"
	"github.com/franky-adl/synthwave-scene/internal/engine/camera"
	"github.com/franky-adl/synthwave-scene/internal/engine/framebuffer"
	"github.com/franky-adl/synthwave-scene/internal/engine/lighting"
	"github.com/franky-adl/synthwave-scene/internal/engine/postfx"
	"github.com/franky-adl/synthwave-scene/internal/engine/terrain"
)

// Scene owns the full render pipeline. It draws into an offscreen HDR
// buffer, runs bloom, and exposes the final image as a texture so the
// caller can either blit it to the screen or hand it to the UI layer.
type Scene struct {
	cfg    *config.Config
	camera *camera.Camera
	rig    *lighting.Rig
	tiles  *terrain.TileSet

	terrainR    *TerrainRenderer
	lineR       *LineRenderer
	sunR        *SunRenderer
	backgroundR *BackgroundRenderer
	bloom       *postfx.Bloom

	hdrFB *framebuffer.Framebuffer
	outFB *framebuffer.Framebuffer
}

// New builds the scene from a height image and the starfield texture.
// Terrain settings are read once; Params are re-read every frame.
func New(cfg *config.Config, heights *terrain.HeightImage, stars *image.RGBA, width, height int) (*Scene, error) {
	tc := cfg.Terrain

	gridA := terrain.BuildGrid(heights, false, tc.CellsX, tc.CellsY, tc.DisplacementScale)
	gridB := terrain.BuildGrid(heights, true, tc.CellsX, tc.CellsY, tc.DisplacementScale)
	terrain.Stitch(gridA, gridB)

	pathA := terrain.BuildPath(gridA)
	pathB := terrain.BuildPath(gridB)

	tiles, err := terrain.NewTileSet(gridA, gridB, pathA, pathB, tc.MeshSets)
	if err != nil {
		return nil, fmt.Errorf("building tile set: %w", err)
	}

	s := &Scene{
		cfg:    cfg,
		camera: camera.New(float32(width) / float32(height)),
		rig:    lighting.NewRig(tc.CellsX, tc.CellsY),
		tiles:  tiles,
	}

	if s.terrainR, err = NewTerrainRenderer(tiles); err != nil {
		return nil, err
	}
	if s.lineR, err = NewLineRenderer(tiles); err != nil {
		return nil, err
	}
	if s.sunR, err = NewSunRenderer(tiles.Span()); err != nil {
		return nil, err
	}
	if s.backgroundR, err = NewBackgroundRenderer(stars); err != nil {
		return nil, err
	}

	w, h := int32(width), int32(height)
	if s.hdrFB, err = framebuffer.NewWithFormat(w, h, framebuffer.RGBA16F, true); err != nil {
		return nil, err
	}
	if s.outFB, err = framebuffer.NewWithFormat(w, h, framebuffer.RGBA8, false); err != nil {
		return nil, err
	}
	if s.bloom, err = postfx.New(w, h); err != nil {
		return nil, err
	}

	return s, nil
}

// Update advances the scroll animation by dt seconds.
func (s *Scene) Update(dt float32) {
	s.tiles.Advance(dt, s.cfg.Params.Speed)
}

// Render draws one frame and returns the final color texture.
func (s *Scene) Render() uint32 {
	p := &s.cfg.Params
	s.rig.Apply(p)

	restore := s.hdrFB.BindWithViewport()
	s.hdrFB.Clear(p.Background[0], p.Background[1], p.Background[2], 1)

	viewProj := s.camera.ViewProjection()

	gl.Disable(gl.DEPTH_TEST)
	gl.DepthMask(false)
	s.backgroundR.Render(p.Background)
	s.sunR.Render(viewProj, &p.Sun)
	gl.DepthMask(true)
	gl.Enable(gl.DEPTH_TEST)

	camPos := [3]float32{s.camera.Position.X, s.camera.Position.Y, s.camera.Position.Z}
	s.terrainR.Render(s.tiles, viewProj, camPos, s.rig, &p.Material)
	s.lineR.Render(s.tiles, viewProj, &p.Line)

	restore()

	s.bloom.Render(s.hdrFB.ColorTexture(), s.outFB, &p.Bloom)

	return s.outFB.ColorTexture()
}

// Resize adjusts the camera and all offscreen buffers.
func (s *Scene) Resize(width, height int) {
	s.camera.Resize(width, height)
	s.hdrFB.Resize(int32(width), int32(height))
	s.outFB.Resize(int32(width), int32(height))
	s.bloom.Resize(int32(width), int32(height))
}

// BlitToScreen copies the final image onto the default framebuffer.
func (s *Scene) BlitToScreen(width, height int) {
	w, h := s.outFB.Size()
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, s.outFB.FBO())
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	gl.BlitFramebuffer(0, 0, w, h, 0, 0, int32(width), int32(height),
		gl.COLOR_BUFFER_BIT, gl.LINEAR)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// Output returns the framebuffer holding the final image.
func (s *Scene) Output() *framebuffer.Framebuffer {
	return s.outFB
}

// Camera returns the scene camera.
func (s *Scene) Camera() *camera.Camera {
	return s.camera
}

// Tiles returns the animated tile set.
func (s *Scene) Tiles() *terrain.TileSet {
	return s.tiles
}

// Destroy releases all GPU resources.
func (s *Scene) Destroy() {
	if s.terrainR != nil {
		s.terrainR.Destroy()
	}
	if s.lineR != nil {
		s.lineR.Destroy()
	}
	if s.sunR != nil {
		s.sunR.Destroy()
	}
	if s.backgroundR != nil {
		s.backgroundR.Destroy()
	}
	if s.bloom != nil {
		s.bloom.Destroy()
	}
	if s.hdrFB != nil {
		s.hdrFB.Destroy()
	}
	if s.outFB != nil {
		s.outFB.Destroy()
	}
}
