// Package demo runs the scene in a plain SDL window without the debug
// UI, for unattended display use.
package demo

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/franky-adl/synthwave-scene/internal/assets"
	"github.com/franky-adl/synthwave-scene/internal/config"
	"github.com/franky-adl/synthwave-scene/internal/engine/input"
	"github.com/franky-adl/synthwave-scene/internal/engine/scene"
	"github.com/franky-adl/synthwave-scene/internal/engine/terrain"
	"github.com/franky-adl/synthwave-scene/internal/engine/window"
	"github.com/franky-adl/synthwave-scene/internal/logger"
)

// Demo owns the window, the scene, and the frame loop.
type Demo struct {
	cfg     *config.Config
	window  *window.Window
	input   *input.Input
	scene   *scene.Scene
	running bool
}

// New creates the window, the GL context, and the scene.
func New(cfg *config.Config) (*Demo, error) {
	d := &Demo{cfg: cfg}

	var err error
	d.window, err = window.New(window.Config{
		Title:      "Synthwave Scene",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	if err := gl.Init(); err != nil {
		d.window.Close()
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	heights, err := loadHeightmap(&cfg.Terrain)
	if err != nil {
		d.window.Close()
		return nil, err
	}
	stars, err := assets.DecodeRGBA(assets.DefaultStarfield(), true)
	if err != nil {
		d.window.Close()
		return nil, fmt.Errorf("decoding starfield: %w", err)
	}

	w, h := d.window.GetDrawableSize()
	d.scene, err = scene.New(cfg, heights, stars, w, h)
	if err != nil {
		d.window.Close()
		return nil, fmt.Errorf("building scene: %w", err)
	}

	d.input = input.New()
	return d, nil
}

// loadHeightmap loads the configured heightmap file, or the embedded
// default when no path is set.
func loadHeightmap(tc *config.TerrainConfig) (*terrain.HeightImage, error) {
	if tc.HeightmapPath != "" {
		return assets.LoadHeightImageFile(tc.HeightmapPath, tc.RasterWidth, tc.RasterHeight)
	}
	return assets.LoadHeightImage(assets.DefaultHeightmap(), tc.RasterWidth, tc.RasterHeight)
}

// Run drives the frame loop until quit is requested.
func (d *Demo) Run() error {
	d.running = true
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting demo loop")

	for d.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if d.input.Update() {
			d.running = false
			break
		}

		if _, _, ok := d.input.Resized(); ok {
			dw, dh := d.window.GetDrawableSize()
			d.scene.Resize(dw, dh)
		}
		if d.input.IsKeyPressed(sdl.SCANCODE_F11) {
			d.window.ToggleFullscreen()
		}

		d.scene.Update(dt)
		d.scene.Render()

		w, h := d.window.GetDrawableSize()
		d.scene.BlitToScreen(w, h)
		d.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float32("dt_ms", dt*1000),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close releases the scene and the window.
func (d *Demo) Close() {
	logger.Info("closing demo")
	if d.scene != nil {
		d.scene.Destroy()
	}
	if d.window != nil {
		d.window.Close()
	}
}
