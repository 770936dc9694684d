// Package config holds tool configuration for the navigation viewer and CLI.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Grid    GridConfig    `toml:"grid"`
	Viewer  ViewerConfig  `toml:"viewer"`
	Inspect InspectConfig `toml:"inspect"`
	Logging LoggingConfig `toml:"logging"`
}

// GridConfig supplies rasterization defaults for scenes that do not set
// their own.
type GridConfig struct {
	CellSize    float64 `toml:"cell_size"`    // world units per grid cell
	AgentRadius float64 `toml:"agent_radius"` // erosion radius for the agent footprint
}

type ViewerConfig struct {
	WindowWidth  int  `toml:"window_width"`
	WindowHeight int  `toml:"window_height"`
	ShowGrid     bool `toml:"show_grid"`     // grid overlay visible at startup
	ShowHotspots bool `toml:"show_hotspots"` // hotspot overlay visible at startup
}

type InspectConfig struct {
	BindAddress string `toml:"bind_address"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads a config file, layering it over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			CellSize:    10, // world units, matches nav.DefaultCellSize
			AgentRadius: 6,
		},
		Viewer: ViewerConfig{
			WindowWidth:  1280,
			WindowHeight: 800,
			ShowGrid:     true,
			ShowHotspots: true,
		},
		Inspect: InspectConfig{
			BindAddress: "127.0.0.1:7777",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// NewLogger builds a zap logger from the logging section.
func NewLogger(lc LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, fmt.Errorf("logging level %q: %w", lc.Level, err)
	}
	var zc zap.Config
	if lc.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
