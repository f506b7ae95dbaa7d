package config

import (
	"log/slog"

	"github.com/OCharnyshevich/isometric-world/pkg/world/gen"
)

// Config holds the world generation settings of the command line tools.
type Config struct {
	Width             int     `yaml:"width" json:"width"`
	Height            int     `yaml:"height" json:"height"`
	HeightSeed        int64   `yaml:"height_seed" json:"height_seed"`
	MountainSeed      int64   `yaml:"mountain_seed" json:"mountain_seed"`
	TerrainNoisiness  float64 `yaml:"terrain_noisiness" json:"terrain_noisiness"`
	MountainNoisiness float64 `yaml:"mountain_noisiness" json:"mountain_noisiness"`
	TerrainMaxHeight  int     `yaml:"terrain_max_height" json:"terrain_max_height"`
	MountainMaxHeight int     `yaml:"mountain_max_height" json:"mountain_max_height"` // 0 disables mountains
	BaseLevel         int     `yaml:"base_level" json:"base_level"`
	WaterLevel        int     `yaml:"water_level" json:"water_level"`
	TreeProbability   int     `yaml:"tree_probability" json:"tree_probability"`   // 1 in N grass columns
	PlantProbability  int     `yaml:"plant_probability" json:"plant_probability"` // 1 in N surface columns
	LogLevel          string  `yaml:"log_level" json:"log_level"`                 // "debug", "info", "warn" or "error"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	p := gen.DefaultParams()
	return &Config{
		Width:             p.Width,
		Height:            p.Height,
		TerrainNoisiness:  p.TerrainNoisiness,
		MountainNoisiness: p.MountainNoisiness,
		TerrainMaxHeight:  p.TerrainMaxHeight,
		MountainMaxHeight: p.MountainMaxHeight,
		BaseLevel:         p.BaseLevel,
		WaterLevel:        p.WaterLevel,
		TreeProbability:   p.TreeProbability,
		PlantProbability:  p.PlantProbability,
		LogLevel:          "info",
	}
}

// Params converts the configuration into generation parameters.
func (c *Config) Params() gen.Params {
	return gen.Params{
		Width:             c.Width,
		Height:            c.Height,
		HeightSeed:        c.HeightSeed,
		MountainSeed:      c.MountainSeed,
		TerrainNoisiness:  c.TerrainNoisiness,
		MountainNoisiness: c.MountainNoisiness,
		TerrainMaxHeight:  c.TerrainMaxHeight,
		MountainMaxHeight: c.MountainMaxHeight,
		BaseLevel:         c.BaseLevel,
		WaterLevel:        c.WaterLevel,
		TreeProbability:   c.TreeProbability,
		PlantProbability:  c.PlantProbability,
	}
}

// Level parses LogLevel, falling back to info for unknown values.
func (c *Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["width"] {
		cfg.Width = fromFile.Width
	}
	if !explicitFlags["height"] {
		cfg.Height = fromFile.Height
	}
	if !explicitFlags["height-seed"] {
		cfg.HeightSeed = fromFile.HeightSeed
	}
	if !explicitFlags["mountain-seed"] {
		cfg.MountainSeed = fromFile.MountainSeed
	}
	if !explicitFlags["terrain-noisiness"] {
		cfg.TerrainNoisiness = fromFile.TerrainNoisiness
	}
	if !explicitFlags["mountain-noisiness"] {
		cfg.MountainNoisiness = fromFile.MountainNoisiness
	}
	if !explicitFlags["terrain-max-height"] {
		cfg.TerrainMaxHeight = fromFile.TerrainMaxHeight
	}
	if !explicitFlags["mountain-max-height"] {
		cfg.MountainMaxHeight = fromFile.MountainMaxHeight
	}
	if !explicitFlags["base-level"] {
		cfg.BaseLevel = fromFile.BaseLevel
	}
	if !explicitFlags["water-level"] {
		cfg.WaterLevel = fromFile.WaterLevel
	}
	if !explicitFlags["tree-probability"] {
		cfg.TreeProbability = fromFile.TreeProbability
	}
	if !explicitFlags["plant-probability"] {
		cfg.PlantProbability = fromFile.PlantProbability
	}
	if !explicitFlags["log-level"] {
		cfg.LogLevel = fromFile.LogLevel
	}
}
