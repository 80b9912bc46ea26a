// Package renderer drives the per-pixel render loop: camera ray
// generation, parallel tile scheduling, image accumulation and output.
package renderer

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guibou/gort/pkg/core"
	"github.com/guibou/gort/pkg/integrator"
	"github.com/guibou/gort/pkg/scene"
)

// RenderConfig contains the render parameters
type RenderConfig struct {
	Width           int    // image width in pixels
	Height          int    // image height in pixels
	SamplesPerPixel int    // primary rays averaged per pixel
	MaxDepth        int    // bounce cap for the integrator
	Seed            uint64 // base seed for per-pixel samplers
	Workers         int    // concurrent tile workers, NumCPU when <= 0
	TileSize        int    // rows per tile
}

// DefaultRenderConfig returns the reference render parameters
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:           768,
		Height:          768,
		SamplesPerPixel: 10,
		MaxDepth:        integrator.DefaultMaxDepth,
		Seed:            42,
		Workers:         0,
		TileSize:        32,
	}
}

// Renderer renders a scene into an Image. Pixels are independent pure
// functions of the immutable scene and their coordinates, so tiles can
// run on any number of workers without changing the result.
type Renderer struct {
	scene  *scene.Scene
	camera *Camera
	tracer *integrator.PathTracer
	config RenderConfig
	logger *slog.Logger
}

// NewRenderer creates a renderer for the given scene and camera
func NewRenderer(s *scene.Scene, camera *Camera, config RenderConfig, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	tracer := integrator.NewPathTracer()
	if config.MaxDepth > 0 {
		tracer.MaxDepth = config.MaxDepth
	}
	return &Renderer{
		scene:  s,
		camera: camera,
		tracer: tracer,
		config: config,
		logger: logger,
	}
}

// tile is a contiguous range of image rows
type tile struct {
	index  int
	y0, y1 int
}

func (r *Renderer) tiles() []tile {
	size := r.config.TileSize
	if size <= 0 {
		size = 32
	}

	var result []tile
	for y := 0; y < r.config.Height; y += size {
		y1 := min(y+size, r.config.Height)
		result = append(result, tile{index: len(result), y0: y, y1: y1})
	}
	return result
}

// Render renders every pixel and returns the accumulated image.
// Each pixel gets its own sampler seeded from the base seed and the
// pixel index, so output is bit-identical for a fixed seed regardless
// of worker count, tile size or evaluation order.
func (r *Renderer) Render(ctx context.Context) (*Image, RenderStats, error) {
	start := time.Now()

	workers := r.config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	img := NewImage(r.config.Width, r.config.Height)
	tiles := r.tiles()
	tileStats := make([]RenderStats, len(tiles))

	r.logger.Info("render started",
		"width", r.config.Width, "height", r.config.Height,
		"spp", r.config.SamplesPerPixel, "maxDepth", r.tracer.MaxDepth,
		"workers", workers, "tiles", len(tiles))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, tl := range tiles {
		tl := tl
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tileStats[tl.index] = r.renderTile(img, tl)
			r.logger.Debug("tile rendered", "tile", tl.index, "rows", tl.y1-tl.y0)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, RenderStats{}, err
	}

	var stats RenderStats
	for _, ts := range tileStats {
		stats.merge(ts)
	}
	stats.Elapsed = time.Since(start)

	return img, stats, nil
}

// renderTile renders the rows of one tile into the shared image.
// Tiles cover disjoint rows, so writes never overlap.
func (r *Renderer) renderTile(img *Image, tl tile) RenderStats {
	var stats RenderStats
	for y := tl.y0; y < tl.y1; y++ {
		for x := 0; x < r.config.Width; x++ {
			img.Set(x, y, r.renderPixel(x, y))
			stats.TotalPixels++
			stats.TotalSamples += r.config.SamplesPerPixel
		}
	}
	return stats
}

// renderPixel averages SamplesPerPixel radiance estimates for one pixel
func (r *Renderer) renderPixel(x, y int) core.Vec3 {
	pixelIndex := uint64(y)*uint64(r.config.Width) + uint64(x)
	sampler := core.NewRandomSampler(r.config.Seed, pixelIndex)

	ray := r.camera.Ray(x, y)

	var sum core.Vec3
	for s := 0; s < r.config.SamplesPerPixel; s++ {
		sum = sum.Add(r.tracer.Radiance(r.scene, ray, 0, sampler))
	}
	return sum.Multiply(1.0 / float64(r.config.SamplesPerPixel))
}
