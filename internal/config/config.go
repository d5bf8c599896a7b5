// Package config handles demo configuration loading and management.
package config

// Config holds all demo settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Params   Params         `yaml:"params"`
	Audio    AudioConfig    `yaml:"audio"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// TerrainConfig holds terrain construction settings. These are read once
// at scene build time, unlike Params which take effect every frame.
type TerrainConfig struct {
	CellsX            int     `yaml:"cells_x"`
	CellsY            int     `yaml:"cells_y"`
	MeshSets          int     `yaml:"mesh_sets"` // tile instances in flight, must be even
	DisplacementScale float32 `yaml:"displacement_scale"`
	RasterWidth       int     `yaml:"raster_width"`   // heightmap raster size used for sampling;
	RasterHeight      int     `yaml:"raster_height"`  // the source image is rescaled onto it
	HeightmapPath     string  `yaml:"heightmap_path"` // empty = embedded default
}

// Params is the flat set of live-tunable visual parameters. One instance
// is shared by reference between the scene (which reads it every frame)
// and the debug panel (whose widgets mutate it). There is no other
// channel between the two.
type Params struct {
	Speed float32 `yaml:"speed"`

	DirLight   LightParams `yaml:"dir_light"`
	SpotlightA LightParams `yaml:"spotlight_a"`
	SpotlightB LightParams `yaml:"spotlight_b"`

	Bloom    BloomParams    `yaml:"bloom"`
	Material MaterialParams `yaml:"material"`
	Line     LineParams     `yaml:"line"`
	Sun      SunParams      `yaml:"sun"`

	Background [3]float32 `yaml:"background"`
}

// LightParams holds a single light's tunables.
type LightParams struct {
	Color     [3]float32 `yaml:"color"`
	Intensity float32    `yaml:"intensity"`
}

// BloomParams holds bloom post-processing tunables.
type BloomParams struct {
	Enabled   bool    `yaml:"enabled"`
	Strength  float32 `yaml:"strength"`
	Radius    float32 `yaml:"radius"`
	Threshold float32 `yaml:"threshold"`
}

// MaterialParams holds terrain surface material tunables.
type MaterialParams struct {
	Metalness float32    `yaml:"metalness"`
	Roughness float32    `yaml:"roughness"`
	Color     [3]float32 `yaml:"color"`
}

// LineParams holds wireframe line tunables.
type LineParams struct {
	Width float32    `yaml:"width"`
	Color [3]float32 `yaml:"color"`
}

// SunParams holds the sun gradient tunables.
type SunParams struct {
	TopColor    [3]float32 `yaml:"top_color"`
	BottomColor [3]float32 `yaml:"bottom_color"`
}

// AudioConfig holds background music settings.
type AudioConfig struct {
	Enabled   bool    `yaml:"enabled"`
	TrackPath string  `yaml:"track_path"`
	Volume    float32 `yaml:"volume"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the stock synthwave look.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Terrain: TerrainConfig{
			CellsX:            30,
			CellsY:            30,
			MeshSets:          6,
			DisplacementScale: 5,
			RasterWidth:       256,
			RasterHeight:      256,
		},
		Params: Params{
			Speed: 2.0,
			DirLight: LightParams{
				Color:     [3]float32{1, 1, 1},
				Intensity: 0.15,
			},
			SpotlightA: LightParams{
				Color:     [3]float32{0.84, 0.24, 0.24},
				Intensity: 20,
			},
			SpotlightB: LightParams{
				Color:     [3]float32{0.84, 0.24, 0.24},
				Intensity: 20,
			},
			Bloom: BloomParams{
				Enabled:   true,
				Strength:  1.2,
				Radius:    0.6,
				Threshold: 0,
			},
			Material: MaterialParams{
				Metalness: 0.96,
				Roughness: 0.5,
				Color:     [3]float32{0.08, 0.03, 0.16},
			},
			Line: LineParams{
				Width: 1.5,
				Color: [3]float32{0.09, 0.89, 0.96},
			},
			Sun: SunParams{
				TopColor:    [3]float32{0.90, 0.16, 0.62},
				BottomColor: [3]float32{1.0, 0.78, 0.19},
			},
			Background: [3]float32{0.02, 0.01, 0.05},
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.7,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
