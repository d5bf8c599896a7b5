package main

import (
	"fmt"
	"os"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/franky-adl/synthwave-scene/internal/assets"
	"github.com/franky-adl/synthwave-scene/internal/config"
	"github.com/franky-adl/synthwave-scene/internal/engine/audio"
	"github.com/franky-adl/synthwave-scene/internal/engine/debug"
	"github.com/franky-adl/synthwave-scene/internal/engine/scene"
	"github.com/franky-adl/synthwave-scene/internal/engine/terrain"
	"github.com/franky-adl/synthwave-scene/internal/engine/ui"
	"github.com/franky-adl/synthwave-scene/internal/logger"
)

// App holds the demo window, the scene, and the debug panel state.
type App struct {
	cfg     *config.Config
	backend *ui.Backend
	scene   *scene.Scene
	player  *audio.Player
	stats   *debug.FrameStats

	screenshots         *debug.ScreenshotCapture
	screenshotRequested bool
	lastScreenshotMsg   string
	screenshotMsgTime   time.Time

	// Path picked in the file dialog goroutine, applied on the main
	// thread inside render().
	pendingHeightmap string

	showPanel bool
	paused    bool
	lastTime  time.Time

	sceneW int
	sceneH int
}

// NewApp creates the window, scene, and audio player.
func NewApp(cfg *config.Config) (*App, error) {
	app := &App{
		cfg:       cfg,
		stats:     debug.NewFrameStats(120),
		showPanel: true,
		lastTime:  time.Now(),
		sceneW:    cfg.Graphics.Width,
		sceneH:    cfg.Graphics.Height,
	}

	var err error
	app.backend, err = ui.NewBackend("Synthwave Scene", int32(cfg.Graphics.Width), int32(cfg.Graphics.Height))
	if err != nil {
		return nil, fmt.Errorf("creating backend: %w", err)
	}

	heights, err := loadHeightmap(&cfg.Terrain)
	if err != nil {
		return nil, err
	}
	stars, err := assets.DecodeRGBA(assets.DefaultStarfield(), true)
	if err != nil {
		return nil, fmt.Errorf("decoding starfield: %w", err)
	}

	app.scene, err = scene.New(cfg, heights, stars, app.sceneW, app.sceneH)
	if err != nil {
		return nil, fmt.Errorf("building scene: %w", err)
	}

	app.screenshots = debug.NewScreenshotCapture(screenshotDir(), "synthwave")

	app.player = audio.New(float64(cfg.Audio.Volume))
	if cfg.Audio.Enabled {
		if err := app.player.Init(); err != nil {
			logger.Warn("audio unavailable", zap.Error(err))
		} else if cfg.Audio.TrackPath != "" {
			if err := app.player.Play(cfg.Audio.TrackPath); err != nil {
				logger.Warn("could not play track", zap.Error(err))
			}
		}
	}

	return app, nil
}

func screenshotDir() string {
	if dir := config.ConfigDir(); dir != "" {
		return dir + string(os.PathSeparator) + "screenshots"
	}
	return "screenshots"
}

func loadHeightmap(tc *config.TerrainConfig) (*terrain.HeightImage, error) {
	if tc.HeightmapPath != "" {
		return assets.LoadHeightImageFile(tc.HeightmapPath, tc.RasterWidth, tc.RasterHeight)
	}
	return assets.LoadHeightImage(assets.DefaultHeightmap(), tc.RasterWidth, tc.RasterHeight)
}

// Run starts the main loop. Blocks until the window closes.
func (app *App) Run() {
	app.backend.Run(app.render)
}

// render draws one frame: scene first, then the debug panel on top.
func (app *App) render() {
	now := time.Now()
	dt := float32(now.Sub(app.lastTime).Seconds())
	app.lastTime = now
	app.stats.Record(dt)

	// Capture at the start of the frame so the previous frame's
	// content is what lands in the file.
	if app.screenshotRequested {
		app.screenshotRequested = false
		app.captureScreenshot()
	}

	if app.pendingHeightmap != "" {
		path := app.pendingHeightmap
		app.pendingHeightmap = ""
		app.reloadHeightmap(path)
	}

	if ui.IsKeyPressed(imgui.KeyF12) {
		app.screenshotRequested = true
	}
	if ui.IsKeyPressed(imgui.KeyF1) {
		app.showPanel = !app.showPanel
	}
	if ui.IsKeyPressed(imgui.KeySpace) && !imgui.IsAnyItemActive() {
		app.paused = !app.paused
	}

	_, _, viewW, viewH := app.backend.GetViewport()
	app.resizeScene(int(viewW), int(viewH))

	if !app.paused {
		app.scene.Update(dt)
	}
	tex := app.scene.Render()

	app.drawSceneWindow(tex, viewW, viewH)

	if app.showPanel {
		app.drawPanel()
	}

	app.drawNotification()
}

// drawSceneWindow fills the whole viewport with the rendered scene.
func (app *App) drawSceneWindow(tex uint32, viewW, viewH float32) {
	viewport := imgui.MainViewport()
	imgui.SetNextWindowPos(viewport.WorkPos())
	imgui.SetNextWindowSize(viewport.WorkSize())

	flags := imgui.WindowFlagsNoDecoration | imgui.WindowFlagsNoMove |
		imgui.WindowFlagsNoBringToFrontOnFocus | imgui.WindowFlagsNoNavFocus
	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0))
	if imgui.BeginV("Scene", nil, flags) {
		texRef := imgui.NewTextureRefTextureID(imgui.TextureID(tex))
		imgui.ImageWithBgV(
			*texRef,
			imgui.NewVec2(viewW, viewH),
			imgui.NewVec2(0, 1), // UV flipped for OpenGL
			imgui.NewVec2(1, 0),
			imgui.NewVec4(0, 0, 0, 1),
			imgui.NewVec4(1, 1, 1, 1),
		)
	}
	imgui.End()
	imgui.PopStyleVar()
}

func (app *App) resizeScene(w, h int) {
	if w < 1 || h < 1 || (w == app.sceneW && h == app.sceneH) {
		return
	}
	app.sceneW = w
	app.sceneH = h
	app.scene.Resize(w, h)
}

// openHeightmapDialog shows a native file dialog. The result is applied
// on the main thread next frame.
func (app *App) openHeightmapDialog() {
	go func() {
		filename, err := dialog.File().
			Filter("Images", "png", "jpg", "jpeg", "bmp").
			Filter("All Files", "*").
			Title("Open Heightmap").
			Load()
		if err != nil {
			if err != dialog.ErrCancelled {
				logger.Error("file dialog error", zap.Error(err))
			}
			return
		}
		app.pendingHeightmap = filename
	}()
}

// reloadHeightmap rebuilds the scene around a new heightmap file. The
// current scene keeps running if the file cannot be loaded.
func (app *App) reloadHeightmap(path string) {
	tc := app.cfg.Terrain
	heights, err := assets.LoadHeightImageFile(path, tc.RasterWidth, tc.RasterHeight)
	if err != nil {
		logger.Error("loading heightmap", zap.String("path", path), zap.Error(err))
		app.notify("Could not load " + path)
		return
	}

	stars, err := assets.DecodeRGBA(assets.DefaultStarfield(), true)
	if err != nil {
		logger.Error("decoding starfield", zap.Error(err))
		return
	}

	newScene, err := scene.New(app.cfg, heights, stars, app.sceneW, app.sceneH)
	if err != nil {
		logger.Error("rebuilding scene", zap.Error(err))
		app.notify("Could not rebuild scene")
		return
	}

	app.scene.Destroy()
	app.scene = newScene
	app.cfg.Terrain.HeightmapPath = path
	app.notify("Loaded " + path)
	logger.Info("heightmap reloaded", zap.String("path", path))
}

func (app *App) captureScreenshot() {
	out := app.scene.Output()
	w, h := out.Size()
	pixels := out.ReadPixels()

	filename, err := app.screenshots.CaptureFromPixels(pixels, int(w), int(h))
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		app.notify("Screenshot failed")
		return
	}
	logger.Info("screenshot saved", zap.String("file", filename))
	app.notify("Saved " + filename)
}

func (app *App) notify(msg string) {
	app.lastScreenshotMsg = msg
	app.screenshotMsgTime = time.Now()
}

func (app *App) drawNotification() {
	if app.lastScreenshotMsg == "" || time.Since(app.screenshotMsgTime) > 3*time.Second {
		return
	}
	viewport := imgui.MainViewport()
	pos := viewport.WorkPos()
	imgui.SetNextWindowPos(imgui.NewVec2(pos.X+10, pos.Y+10))
	flags := imgui.WindowFlagsNoDecoration | imgui.WindowFlagsNoMove |
		imgui.WindowFlagsAlwaysAutoResize | imgui.WindowFlagsNoFocusOnAppearing
	if imgui.BeginV("##notify", nil, flags) {
		imgui.Text(app.lastScreenshotMsg)
	}
	imgui.End()
}

// Close releases the scene and audio resources.
func (app *App) Close() {
	if app.player != nil {
		app.player.Close()
	}
	if app.scene != nil {
		app.scene.Destroy()
	}
}
