package renderer

import (
	"github.com/guibou/gort/pkg/core"
)

// CameraConfig holds the pinhole-style ray generation parameters.
// A pixel maps to a point on the film plane at z=FilmZ and a spread
// point on the focal plane at z=FocalZ; the primary ray runs from the
// film point through the focal point. FilmZ must differ from FocalZ or
// ray directions for the center pixel degenerate to the zero vector.
type CameraConfig struct {
	Offset core.Vec3 // world-space translation of the film origin
	FilmZ  float64   // z of the film plane
	FocalZ float64   // z of the focal plane
	Scale  float64   // raster extent in world units
	Spread float64   // magnification between film and focal plane
}

// DefaultCameraConfig returns the reference camera for the Cornell scene
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Offset: core.NewVec3(50, 40, 0),
		FilmZ:  150,
		FocalZ: 0,
		Scale:  100,
		Spread: 1.3,
	}
}

// Camera generates one primary ray per pixel
type Camera struct {
	config CameraConfig
	width  int
	height int
}

// NewCamera creates a camera for the given image dimensions
func NewCamera(config CameraConfig, width, height int) *Camera {
	return &Camera{config: config, width: width, height: height}
}

// Ray generates the primary ray for pixel (x, y), with y=0 the top row
func (c *Camera) Ray(x, y int) core.Ray {
	rasterX := c.config.Scale * (float64(x)/float64(c.width) - 0.5)
	rasterY := c.config.Scale * (float64(c.height-y)/float64(c.height) - 0.5)

	filmPoint := core.NewVec3(rasterX, rasterY, c.config.FilmZ)
	focalPoint := core.NewVec3(c.config.Spread*rasterX, c.config.Spread*rasterY, c.config.FocalZ)
	direction := focalPoint.Subtract(filmPoint).Normalize()

	return core.NewRay(filmPoint.Add(c.config.Offset), direction)
}
