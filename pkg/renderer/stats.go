package renderer

import (
	"math"
	"time"

	"github.com/df07/go-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int           // Image width in pixels
	Height          int           // Image height in pixels
	TotalPixels     int           // Number of pixels written
	TotalSamples    int           // Number of samples taken
	SamplesPerPixel int           // Configured samples per pixel
	MaxDepth        int           // Configured bounce budget
	Workers         int           // Rows rendered in parallel
	MeanVariance    float64       // Average variance of the per-pixel luminance estimate
	RenderTime      time.Duration // Wall time from header to last pixel
}

func newRenderStats(camera *Camera, workers int) RenderStats {
	return RenderStats{
		Width:           camera.ImageWidth(),
		Height:          camera.ImageHeight(),
		SamplesPerPixel: camera.SamplesPerPixel(),
		MaxDepth:        camera.MaxDepth(),
		Workers:         workers,
	}
}

func (s *RenderStats) addRow(row RowResult) {
	s.TotalPixels += len(row.Pixels)
	s.TotalSamples += row.Samples
	s.MeanVariance += row.Variance
}

func (s *RenderStats) finalize(elapsed time.Duration) {
	s.RenderTime = elapsed
	if s.TotalPixels > 0 {
		s.MeanVariance /= float64(s.TotalPixels)
	}
}

// SamplesPerSecond returns the sampling throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.RenderTime <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.RenderTime.Seconds()
}

// PixelStats tracks sampling statistics for a single pixel
type PixelStats struct {
	ColorAccum       core.Vec3 // RGB accumulator for final result
	LuminanceAccum   float64   // Luminance accumulator
	LuminanceSqAccum float64   // Luminance squared for variance
	SampleCount      int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	luminance := color.Luminance()
	ps.LuminanceAccum += luminance
	ps.LuminanceSqAccum += luminance * luminance
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// Variance returns the luminance variance of individual samples
func (ps *PixelStats) Variance() float64 {
	if ps.SampleCount == 0 {
		return 0
	}
	mean := ps.LuminanceAccum / float64(ps.SampleCount)
	meanSq := ps.LuminanceSqAccum / float64(ps.SampleCount)
	return math.Max(0, meanSq-mean*mean)
}

// MeanVariance returns the variance of the averaged pixel luminance
func (ps *PixelStats) MeanVariance() float64 {
	if ps.SampleCount == 0 {
		return 0
	}
	return ps.Variance() / float64(ps.SampleCount)
}
