package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/OCharnyshevich/isometric-world/internal/config"
	"github.com/OCharnyshevich/isometric-world/internal/preset"
	"github.com/OCharnyshevich/isometric-world/internal/world"
	"github.com/OCharnyshevich/isometric-world/pkg/world/field"
	"github.com/OCharnyshevich/isometric-world/pkg/world/tile"
)

func main() {
	cfg := config.DefaultConfig()

	flag.IntVar(&cfg.Width, "width", cfg.Width, "world width in columns")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "world depth in columns")
	flag.Int64Var(&cfg.HeightSeed, "height-seed", cfg.HeightSeed, "terrain noise seed")
	flag.Int64Var(&cfg.MountainSeed, "mountain-seed", cfg.MountainSeed, "mountain noise seed")
	flag.Float64Var(&cfg.TerrainNoisiness, "terrain-noisiness", cfg.TerrainNoisiness, "terrain noise frequency")
	flag.Float64Var(&cfg.MountainNoisiness, "mountain-noisiness", cfg.MountainNoisiness, "mountain noise frequency")
	flag.IntVar(&cfg.TerrainMaxHeight, "terrain-max-height", cfg.TerrainMaxHeight, "terrain amplitude")
	flag.IntVar(&cfg.MountainMaxHeight, "mountain-max-height", cfg.MountainMaxHeight, "mountain amplitude (0 disables mountains)")
	flag.IntVar(&cfg.BaseLevel, "base-level", cfg.BaseLevel, "terrain height offset")
	flag.IntVar(&cfg.WaterLevel, "water-level", cfg.WaterLevel, "water surface elevation")
	flag.IntVar(&cfg.TreeProbability, "tree-probability", cfg.TreeProbability, "one tree per N grass columns")
	flag.IntVar(&cfg.PlantProbability, "plant-probability", cfg.PlantProbability, "one plant per N surface columns")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	presetSrc := flag.String("preset", "", "preset file or go-getter URL")
	reseed := flag.Bool("reseed", false, "draw new seeds before generating")
	dig := flag.String("dig", "", "dig at x,y,z after generating")
	overview := flag.Bool("overview", false, "print an ASCII top view of the world")
	dump := flag.Bool("dump-preset", false, "print the effective preset as YAML and exit")
	flag.Parse()

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Level()}))

	if *presetSrc != "" {
		fromFile, err := preset.Fetch(ctx, *presetSrc, log)
		if err != nil {
			log.Error("load preset", "error", err)
			os.Exit(1)
		}
		config.Merge(cfg, fromFile, explicit)
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Level()}))
	}

	if *dump {
		if err := config.Encode(os.Stdout, cfg); err != nil {
			log.Error("dump preset", "error", err)
			os.Exit(1)
		}
		return
	}

	w, err := world.New(cfg.Params(), log)
	if err != nil {
		log.Error("create world", "error", err)
		os.Exit(1)
	}

	if *reseed {
		hs, ms, err := w.Reseed()
		if err != nil {
			log.Error("reseed world", "error", err)
			os.Exit(1)
		}
		log.Info("reseeded", "height_seed", hs, "mountain_seed", ms)
	}

	if *dig != "" {
		x, y, z, err := parseCoords(*dig)
		if err != nil {
			log.Error("parse dig target", "error", err)
			os.Exit(1)
		}
		if t, ok := w.Dig(x, y, z); ok {
			log.Info("dug voxel", "x", x, "y", y, "type", t)
		} else {
			log.Warn("nothing diggable", "x", x, "y", y, "z", z)
		}
	}

	cx, cy := w.Params().Width/2, w.Params().Height/2
	if h, ok := w.SpawnHeight(cx, cy); ok {
		log.Info("spawn point", "x", cx, "y", cy, "z", h)
	}

	stats := w.Stats()
	for t := 0; t < tile.Count(); t++ {
		if n := stats.ByType[tile.Type(t)]; n > 0 {
			log.Debug("voxel count", "type", tile.Type(t), "count", n)
		}
	}

	if *overview {
		w.View(func(f *field.Field) { err = renderOverview(os.Stdout, f) })
		if err != nil {
			log.Error("render overview", "error", err)
			os.Exit(1)
		}
	}
}

// parseCoords parses "x,y,z".
func parseCoords(s string) (x, y, z int, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("coordinates %q: want x,y,z", s)
	}
	var v [3]int
	for i, p := range parts {
		v[i], err = strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, 0, 0, fmt.Errorf("coordinates %q: %w", s, err)
		}
	}
	return v[0], v[1], v[2], nil
}
