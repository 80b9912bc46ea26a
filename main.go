package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/guibou/gort/pkg/core"
	"github.com/guibou/gort/pkg/renderer"
	"github.com/guibou/gort/pkg/scene"
)

func main() {
	scenePath := flag.String("scene", "cornell", "Scene: 'cornell' or a path to a YAML scene file")
	width := flag.Int("width", 0, "Image width (overrides scene file)")
	height := flag.Int("height", 0, "Image height (overrides scene file)")
	spp := flag.Int("spp", 0, "Samples per pixel (overrides scene file)")
	depth := flag.Int("depth", 0, "Maximum bounce depth (overrides scene file)")
	seed := flag.Uint64("seed", 42, "Base random seed")
	workers := flag.Int("workers", 0, "Render workers (0 = number of CPUs)")
	output := flag.String("o", "output.ppm", "Output file (.ppm or .png)")
	verbose := flag.Bool("v", false, "Enable debug logging")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("gort - a small Monte Carlo path tracer")
		fmt.Println("Usage: gort [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger, *scenePath, *width, *height, *spp, *depth, *seed, *workers, *output); err != nil {
		logger.Error("render failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, scenePath string, width, height, spp, depth int, seed uint64, workers int, output string) error {
	world, cameraCfg, renderCfg, err := loadScene(scenePath)
	if err != nil {
		return err
	}

	// Command-line flags win over scene file settings.
	if width > 0 {
		renderCfg.Width = width
	}
	if height > 0 {
		renderCfg.Height = height
	}
	if spp > 0 {
		renderCfg.SamplesPerPixel = spp
	}
	if depth > 0 {
		renderCfg.MaxDepth = depth
	}
	renderCfg.Seed = seed
	renderCfg.Workers = workers

	camera := renderer.NewCamera(cameraCfg, renderCfg.Width, renderCfg.Height)
	r := renderer.NewRenderer(world, camera, renderCfg, logger)

	img, stats, err := r.Render(context.Background())
	if err != nil {
		return err
	}

	logger.Info("render complete",
		"elapsed", stats.Elapsed,
		"pixels", stats.TotalPixels,
		"samplesPerPixel", stats.SamplesPerPixel())

	if err := img.WriteFile(output); err != nil {
		return err
	}
	logger.Info("image written", "path", output)
	return nil
}

// loadScene resolves the -scene flag into a scene plus camera and
// render configuration, overlaying scene-file settings on defaults.
func loadScene(scenePath string) (*scene.Scene, renderer.CameraConfig, renderer.RenderConfig, error) {
	cameraCfg := renderer.DefaultCameraConfig()
	renderCfg := renderer.DefaultRenderConfig()

	if scenePath == "cornell" {
		return scene.NewCornellScene(), cameraCfg, renderCfg, nil
	}

	file, err := scene.Load(scenePath)
	if err != nil {
		return nil, cameraCfg, renderCfg, err
	}

	if c := file.Camera; c != nil {
		cameraCfg = applyCameraSettings(cameraCfg, c)
	}
	if r := file.Render; r != nil {
		if r.Width > 0 {
			renderCfg.Width = r.Width
		}
		if r.Height > 0 {
			renderCfg.Height = r.Height
		}
		if r.SamplesPerPixel > 0 {
			renderCfg.SamplesPerPixel = r.SamplesPerPixel
		}
		if r.MaxDepth > 0 {
			renderCfg.MaxDepth = r.MaxDepth
		}
	}

	return file.Scene, cameraCfg, renderCfg, nil
}

// applyCameraSettings overlays the non-zero scene-file camera fields
func applyCameraSettings(cfg renderer.CameraConfig, c *scene.CameraSettings) renderer.CameraConfig {
	if c.Offset != [3]float64{} {
		cfg.Offset = core.NewVec3(c.Offset[0], c.Offset[1], c.Offset[2])
	}
	if c.FilmZ != 0 {
		cfg.FilmZ = c.FilmZ
	}
	if c.FocalZ != 0 {
		cfg.FocalZ = c.FocalZ
	}
	if c.Scale != 0 {
		cfg.Scale = c.Scale
	}
	if c.Spread != 0 {
		cfg.Spread = c.Spread
	}
	return cfg
}
