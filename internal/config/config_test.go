package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test graphics defaults
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	// Test terrain defaults
	if cfg.Terrain.CellsX != 30 || cfg.Terrain.CellsY != 30 {
		t.Errorf("expected 30x30 terrain cells, got %dx%d", cfg.Terrain.CellsX, cfg.Terrain.CellsY)
	}
	if cfg.Terrain.MeshSets != 6 {
		t.Errorf("expected 6 mesh sets, got %d", cfg.Terrain.MeshSets)
	}
	if cfg.Terrain.DisplacementScale != 5 {
		t.Errorf("expected displacement scale 5, got %f", cfg.Terrain.DisplacementScale)
	}

	// Test params defaults
	if cfg.Params.Speed != 2.0 {
		t.Errorf("expected speed 2.0, got %f", cfg.Params.Speed)
	}
	if !cfg.Params.Bloom.Enabled {
		t.Error("expected bloom enabled by default")
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

terrain:
  cells_x: 40
  cells_y: 20
  mesh_sets: 8
  displacement_scale: 7.5
  heightmap_path: "dunes.png"

params:
  speed: 3.5
  bloom:
    enabled: false
    strength: 0.4
    radius: 0.2
    threshold: 0.1
  line:
    width: 2.0
    color: [1, 0, 0.5]
  sun:
    top_color: [1, 0, 1]
    bottom_color: [1, 1, 0]

audio:
  enabled: true
  track_path: "bgm.wav"
  volume: 0.5

logging:
  level: "debug"
  log_file: "demo.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}

	if cfg.Terrain.CellsX != 40 || cfg.Terrain.CellsY != 20 {
		t.Errorf("expected 40x20 terrain cells, got %dx%d", cfg.Terrain.CellsX, cfg.Terrain.CellsY)
	}
	if cfg.Terrain.MeshSets != 8 {
		t.Errorf("expected 8 mesh sets, got %d", cfg.Terrain.MeshSets)
	}
	if cfg.Terrain.DisplacementScale != 7.5 {
		t.Errorf("expected displacement scale 7.5, got %f", cfg.Terrain.DisplacementScale)
	}
	if cfg.Terrain.HeightmapPath != "dunes.png" {
		t.Errorf("expected heightmap path 'dunes.png', got %s", cfg.Terrain.HeightmapPath)
	}

	if cfg.Params.Speed != 3.5 {
		t.Errorf("expected speed 3.5, got %f", cfg.Params.Speed)
	}
	if cfg.Params.Bloom.Enabled {
		t.Error("expected bloom disabled")
	}
	if cfg.Params.Line.Color != [3]float32{1, 0, 0.5} {
		t.Errorf("expected line color [1 0 0.5], got %v", cfg.Params.Line.Color)
	}
	if cfg.Params.Sun.TopColor != [3]float32{1, 0, 1} {
		t.Errorf("expected sun top color [1 0 1], got %v", cfg.Params.Sun.TopColor)
	}

	// Unset keys keep their defaults
	if cfg.Params.Material.Metalness != 0.96 {
		t.Errorf("expected default metalness 0.96, got %f", cfg.Params.Material.Metalness)
	}

	if !cfg.Audio.Enabled || cfg.Audio.TrackPath != "bgm.wav" || cfg.Audio.Volume != 0.5 {
		t.Errorf("audio config not loaded: %+v", cfg.Audio)
	}

	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "demo.log" {
		t.Errorf("logging config not loaded: %+v", cfg.Logging)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"odd mesh sets", func(c *Config) { c.Terrain.MeshSets = 5 }},
		{"zero mesh sets", func(c *Config) { c.Terrain.MeshSets = 0 }},
		{"negative mesh sets", func(c *Config) { c.Terrain.MeshSets = -2 }},
		{"zero cells", func(c *Config) { c.Terrain.CellsX = 0 }},
		{"zero raster", func(c *Config) { c.Terrain.RasterHeight = 0 }},
	}

	for _, tc := range cases {
		cfg := Default()
		tc.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error, got nil", tc.name)
		}
	}
}

func TestSaveAndReload(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Params.Speed = 9
	cfg.Params.Sun.TopColor = [3]float32{0.5, 0.25, 0.125}

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}

	if loaded.Params.Speed != 9 {
		t.Errorf("speed did not round-trip: got %f", loaded.Params.Speed)
	}
	if loaded.Params.Sun.TopColor != cfg.Params.Sun.TopColor {
		t.Errorf("sun color did not round-trip: got %v", loaded.Params.Sun.TopColor)
	}
}
