package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/franky-adl/synthwave-scene/internal/logger"
)

// drawPanel renders the parameter panel. Every widget writes straight
// into the shared Params struct; the scene picks the values up on its
// next frame.
func (app *App) drawPanel() {
	imgui.SetNextWindowSizeV(imgui.NewVec2(340, 560), imgui.CondFirstUseEver)
	if !imgui.BeginV("Parameters", &app.showPanel, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	p := &app.cfg.Params

	imgui.Text(fmt.Sprintf("%.1f fps (%.2f ms)", app.stats.FPS(), app.stats.AverageFrameTime()*1000))
	imgui.Separator()

	imgui.SliderFloatV("Speed", &p.Speed, 0, 10, "%.2f", imgui.SliderFlagsNone)
	imgui.Checkbox("Paused", &app.paused)

	if imgui.CollapsingHeaderTreeNodeFlagsV("Lights", imgui.TreeNodeFlagsDefaultOpen) {
		imgui.Text("Directional")
		imgui.ColorEdit3("Color##dir", &p.DirLight.Color)
		imgui.SliderFloatV("Intensity##dir", &p.DirLight.Intensity, 0, 2, "%.2f", imgui.SliderFlagsNone)

		imgui.Text("Spotlight A")
		imgui.ColorEdit3("Color##spotA", &p.SpotlightA.Color)
		imgui.SliderFloatV("Intensity##spotA", &p.SpotlightA.Intensity, 0, 50, "%.1f", imgui.SliderFlagsNone)

		imgui.Text("Spotlight B")
		imgui.ColorEdit3("Color##spotB", &p.SpotlightB.Color)
		imgui.SliderFloatV("Intensity##spotB", &p.SpotlightB.Intensity, 0, 50, "%.1f", imgui.SliderFlagsNone)
	}

	if imgui.CollapsingHeaderTreeNodeFlagsV("Bloom", imgui.TreeNodeFlagsNone) {
		imgui.Checkbox("Enabled", &p.Bloom.Enabled)
		imgui.SliderFloatV("Strength", &p.Bloom.Strength, 0, 3, "%.2f", imgui.SliderFlagsNone)
		imgui.SliderFloatV("Radius", &p.Bloom.Radius, 0, 2, "%.2f", imgui.SliderFlagsNone)
		imgui.SliderFloatV("Threshold", &p.Bloom.Threshold, 0, 1, "%.2f", imgui.SliderFlagsNone)
	}

	if imgui.CollapsingHeaderTreeNodeFlagsV("Material", imgui.TreeNodeFlagsNone) {
		imgui.ColorEdit3("Surface##mat", &p.Material.Color)
		imgui.SliderFloatV("Metalness", &p.Material.Metalness, 0, 1, "%.2f", imgui.SliderFlagsNone)
		imgui.SliderFloatV("Roughness", &p.Material.Roughness, 0, 1, "%.2f", imgui.SliderFlagsNone)
		imgui.ColorEdit3("Wireframe##line", &p.Line.Color)
		imgui.SliderFloatV("Line Width", &p.Line.Width, 0.5, 5, "%.1f", imgui.SliderFlagsNone)
	}

	if imgui.CollapsingHeaderTreeNodeFlagsV("Sky", imgui.TreeNodeFlagsNone) {
		imgui.ColorEdit3("Sun Top", &p.Sun.TopColor)
		imgui.ColorEdit3("Sun Bottom", &p.Sun.BottomColor)
		imgui.ColorEdit3("Background", &p.Background)
	}

	if imgui.CollapsingHeaderTreeNodeFlagsV("Audio", imgui.TreeNodeFlagsNone) {
		if app.player.Playing() {
			imgui.Text("Track: " + app.player.Track())
			vol := float32(app.player.Volume())
			if imgui.SliderFloatV("Volume", &vol, 0, 1, "%.2f", imgui.SliderFlagsNone) {
				app.player.SetVolume(float64(vol))
				app.cfg.Audio.Volume = vol
			}
		} else {
			imgui.Text("No track playing")
		}
	}

	imgui.Separator()

	if imgui.Button("Open Heightmap...") {
		app.openHeightmapDialog()
	}
	imgui.SameLine()
	if imgui.Button("Screenshot (F12)") {
		app.screenshotRequested = true
	}

	if imgui.Button("Save Config") {
		if err := app.cfg.Save(); err != nil {
			logger.Error("saving config", zap.Error(err))
			app.notify("Could not save config")
		} else {
			app.notify("Config saved")
		}
	}

	imgui.End()
}
