// Package preset fetches world generation presets from local paths or remote
// sources and decodes them into a config.Config.
package preset

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	getter "github.com/hashicorp/go-getter"

	"github.com/OCharnyshevich/isometric-world/internal/config"
)

const fileName = "preset.yaml"

// Fetch downloads the preset at src into a temporary directory and decodes it.
// src is anything go-getter understands: a local path, an https URL, or a
// forced source such as "git::https://host/repo.git//presets/island.yaml".
// Relative local paths resolve against the working directory.
func Fetch(ctx context.Context, src string, log *slog.Logger) (*config.Config, error) {
	dir, err := os.MkdirTemp("", "worldgen-preset-")
	if err != nil {
		return nil, fmt.Errorf("create preset dir: %w", err)
	}
	defer os.RemoveAll(dir)

	pwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working dir: %w", err)
	}

	dst := filepath.Join(dir, fileName)
	log.Debug("fetching preset", "src", src, "dst", dst)

	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Pwd:  pwd,
		Mode: getter.ClientModeFile,
	}
	if err := client.Get(); err != nil {
		return nil, fmt.Errorf("fetch preset %s: %w", src, err)
	}

	cfg, err := config.Load(dst)
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", src, err)
	}
	log.Info("preset loaded", "src", src, "width", cfg.Width, "height", cfg.Height)
	return cfg, nil
}
