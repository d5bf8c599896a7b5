package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks settings the scene cannot recover from at build time.
func (c *Config) Validate() error {
	if c.Terrain.MeshSets <= 0 || c.Terrain.MeshSets%2 != 0 {
		return fmt.Errorf("terrain.mesh_sets must be positive and even, got %d", c.Terrain.MeshSets)
	}
	if c.Terrain.CellsX < 1 || c.Terrain.CellsY < 1 {
		return fmt.Errorf("terrain resolution must be at least 1x1, got %dx%d", c.Terrain.CellsX, c.Terrain.CellsY)
	}
	if c.Terrain.RasterWidth < 1 || c.Terrain.RasterHeight < 1 {
		return fmt.Errorf("heightmap raster size must be at least 1x1, got %dx%d", c.Terrain.RasterWidth, c.Terrain.RasterHeight)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "SynthwaveScene")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "SynthwaveScene")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "synthwave-scene")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "synthwave-scene")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
