package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OCharnyshevich/isometric-world/pkg/world/gen"
)

func TestDefaultConfigMatchesDefaultParams(t *testing.T) {
	if got, want := DefaultConfig().Params(), gen.DefaultParams(); got != want {
		t.Errorf("DefaultConfig().Params() = %+v, want %+v", got, want)
	}
}

func TestDecodePartialPreset(t *testing.T) {
	preset := `
width: 64
height: 32
water_level: 3
mountain_max_height: 0
log_level: debug
`
	cfg, err := Decode(strings.NewReader(preset))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if cfg.Width != 64 || cfg.Height != 32 {
		t.Errorf("size = %dx%d, want 64x32", cfg.Width, cfg.Height)
	}
	if cfg.WaterLevel != 3 || cfg.MountainMaxHeight != 0 {
		t.Errorf("levels = water %d mountain %d, want 3 and 0", cfg.WaterLevel, cfg.MountainMaxHeight)
	}
	if cfg.TreeProbability != 200 {
		t.Errorf("TreeProbability = %d, want default 200", cfg.TreeProbability)
	}
	if cfg.Level() != slog.LevelDebug {
		t.Errorf("Level() = %v, want debug", cfg.Level())
	}
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	if _, err := Decode(strings.NewReader("widht: 10\n")); err == nil {
		t.Error("Decode should reject misspelled keys")
	}
}

func TestDecodeEmpty(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Decode(empty): %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("Decode(empty) = %+v, want defaults", cfg)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HeightSeed = 42
	cfg.MountainSeed = 7
	cfg.BaseLevel = -2

	var buf bytes.Buffer
	if err := Encode(&buf, cfg); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if *got != *cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")
	if err := os.WriteFile(path, []byte("tree_probability: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TreeProbability != 5 {
		t.Errorf("TreeProbability = %d, want 5", cfg.TreeProbability)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of a missing file should fail")
	}
}

func TestMergeKeepsExplicitFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 300
	cfg.WaterLevel = 1

	fromFile := DefaultConfig()
	fromFile.Width = 80
	fromFile.WaterLevel = 9
	fromFile.PlantProbability = 3

	Merge(cfg, fromFile, map[string]bool{"width": true})

	if cfg.Width != 300 {
		t.Errorf("Width = %d, want flag value 300", cfg.Width)
	}
	if cfg.WaterLevel != 9 {
		t.Errorf("WaterLevel = %d, want file value 9", cfg.WaterLevel)
	}
	if cfg.PlantProbability != 3 {
		t.Errorf("PlantProbability = %d, want file value 3", cfg.PlantProbability)
	}
}

func TestLevelFallback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "loud"
	if cfg.Level() != slog.LevelInfo {
		t.Errorf("Level() = %v, want info fallback", cfg.Level())
	}
}
