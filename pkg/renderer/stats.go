package renderer

import "time"

// RenderStats summarizes a completed render
type RenderStats struct {
	TotalPixels  int           // number of pixels rendered
	TotalSamples int           // primary samples taken across all pixels
	Elapsed      time.Duration // wall-clock render time
}

// SamplesPerPixel returns the average number of samples per pixel
func (rs RenderStats) SamplesPerPixel() float64 {
	if rs.TotalPixels == 0 {
		return 0
	}
	return float64(rs.TotalSamples) / float64(rs.TotalPixels)
}

// merge accumulates per-tile statistics into the total
func (rs *RenderStats) merge(other RenderStats) {
	rs.TotalPixels += other.TotalPixels
	rs.TotalSamples += other.TotalSamples
}
