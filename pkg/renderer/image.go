package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/guibou/gort/pkg/core"
)

// Image is a width×height grid of accumulated linear colors, row-major
// with index = x + y·width.
type Image struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewImage creates a black image
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// NewImageFrom builds an image by evaluating pixelFn for every pixel
// with up to parallelism concurrent workers (NumCPU when <= 0).
// pixelFn must be a pure function of its coordinates: rows are
// evaluated in arbitrary order and the result must not depend on it.
func NewImageFrom(width, height, parallelism int, pixelFn func(x, y int) core.Vec3) *Image {
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}

	img := NewImage(width, height)

	var g errgroup.Group
	g.SetLimit(parallelism)
	for y := 0; y < height; y++ {
		y := y
		row := img.Pixels[y*width : (y+1)*width]
		g.Go(func() error {
			for x := 0; x < width; x++ {
				row[x] = pixelFn(x, y)
			}
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	return img
}

// Set stores the color for pixel (x, y)
func (im *Image) Set(x, y int, c core.Vec3) {
	im.Pixels[x+y*im.Width] = c
}

// Get returns the color of pixel (x, y)
func (im *Image) Get(x, y int) core.Vec3 {
	return im.Pixels[x+y*im.Width]
}

// Tonemap converts a linear channel value to a displayable integer:
// clamp to [0,1], then gamma 2.2 scaled to 255 and truncated toward
// zero. Total over all inputs; NaN clamps to 0 instead of propagating.
func Tonemap(x float64) int {
	if math.IsNaN(x) || x <= 0 {
		return 0
	}
	if x >= 1 {
		return 255
	}
	return int(math.Pow(x, 1.0/2.2) * 255.0)
}

// WritePPM serializes the image as plain-text PPM (P3): a three-line
// header followed by tonemapped RGB triples in row-major order.
func (im *Image) WritePPM(w io.Writer) error {
	buf := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(buf, "P3\n%d %d\n255\n", im.Width, im.Height); err != nil {
		return errors.Wrap(err, "writing ppm header")
	}

	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			c := im.Get(x, y)
			if _, err := fmt.Fprintf(buf, "%d %d %d ", Tonemap(c.X), Tonemap(c.Y), Tonemap(c.Z)); err != nil {
				return errors.Wrapf(err, "writing pixel (%d,%d)", x, y)
			}
		}
	}

	return errors.Wrap(buf.Flush(), "flushing ppm output")
}

// WritePNG serializes the image as PNG using the same tonemap
func (im *Image) WritePNG(w io.Writer) error {
	rgba := image.NewRGBA(image.Rect(0, 0, im.Width, im.Height))
	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			c := im.Get(x, y)
			rgba.SetRGBA(x, y, color.RGBA{
				R: uint8(Tonemap(c.X)),
				G: uint8(Tonemap(c.Y)),
				B: uint8(Tonemap(c.Z)),
				A: 255,
			})
		}
	}
	return errors.Wrap(png.Encode(w, rgba), "encoding png")
}

// WriteFile writes the image to path, picking the format from the file
// extension (.png for PNG, anything else PPM). Any failure is fatal for
// the render; there is no partial-success mode.
func (im *Image) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}

	var writeErr error
	if filepath.Ext(path) == ".png" {
		writeErr = im.WritePNG(f)
	} else {
		writeErr = im.WritePPM(f)
	}

	if closeErr := f.Close(); writeErr == nil && closeErr != nil {
		writeErr = errors.Wrapf(closeErr, "closing %s", path)
	}
	return writeErr
}
