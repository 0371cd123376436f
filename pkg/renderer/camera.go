package renderer

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/df07/go-raytracer/pkg/core"
)

// CameraConfig contains the static camera and sampling settings
type CameraConfig struct {
	AspectRatio     float64 `json:"aspectRatio,omitempty"`     // Nominal width/height ratio
	ImageWidth      float64 `json:"imageWidth,omitempty"`      // Image width in pixels
	SamplesPerPixel int     `json:"samplesPerPixel,omitempty"` // Jittered rays averaged per pixel
	MaxDepth        int     `json:"maxDepth,omitempty"`        // Bounce budget for RayColor
}

// DefaultCameraConfig returns the reference settings
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      400,
		SamplesPerPixel: 100,
		MaxDepth:        10,
	}
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.ImageWidth != 0 {
		result.ImageWidth = override.ImageWidth
	}
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	return result
}

// Validate checks the config can produce a camera
func (c CameraConfig) Validate() error {
	if !(c.ImageWidth >= 1) || math.IsInf(c.ImageWidth, 1) {
		return fmt.Errorf("%w: got %g", ErrInvalidImageWidth, c.ImageWidth)
	}
	if !(c.AspectRatio > 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidAspectRatio, c.AspectRatio)
	}
	if c.SamplesPerPixel < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSamples, c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDepth, c.MaxDepth)
	}
	return nil
}

// Camera sits at the origin looking down -Z and generates rays through a
// viewport one unit in front of it. Row 0 is the top of the image.
type Camera struct {
	config            CameraConfig
	imageWidth        int
	imageHeight       int
	center            core.Point3
	pixel00Loc        core.Point3
	pixelDeltaU       core.Vec3
	pixelDeltaV       core.Vec3
	pixelSamplesScale float64
}

// NewCamera computes the viewport geometry for config
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	imageWidth := math.Floor(config.ImageWidth)
	imageHeight := math.Max(1, math.Floor(imageWidth/config.AspectRatio))

	focalLength := 1.0
	viewportHeight := 2.0
	// Use the real pixel ratio, not the nominal one, so viewport and pixels agree
	viewportWidth := viewportHeight * (imageWidth / imageHeight)
	center := core.NewVec3(0, 0, 0)

	// Horizontal and vertical viewport edges; V points down
	viewportU := core.NewVec3(viewportWidth, 0, 0)
	viewportV := core.NewVec3(0, -viewportHeight, 0)

	pixelDeltaU := viewportU.Divide(imageWidth)
	pixelDeltaV := viewportV.Divide(imageHeight)

	viewportUpperLeft := center.
		Subtract(core.NewVec3(0, 0, focalLength)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	pixel00Loc := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	return &Camera{
		config:            config,
		imageWidth:        int(imageWidth),
		imageHeight:       int(imageHeight),
		center:            center,
		pixel00Loc:        pixel00Loc,
		pixelDeltaU:       pixelDeltaU,
		pixelDeltaV:       pixelDeltaV,
		pixelSamplesScale: 1.0 / float64(config.SamplesPerPixel),
	}, nil
}

// GetRay returns a ray from the camera center through a random point of
// pixel (i, j), offset from the pixel anchor by a sample in [0,1)x[0,1)
func (c *Camera) GetRay(i, j int, random *rand.Rand) core.Ray {
	offset := core.SampleSquare(random)
	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y))

	return core.NewRay(c.center, pixelSample.Subtract(c.center))
}

// PixelCenterRay returns the unjittered ray through the center of pixel (i, j)
func (c *Camera) PixelCenterRay(i, j int) core.Ray {
	pixelCenter := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i))).
		Add(c.pixelDeltaV.Multiply(float64(j)))

	return core.NewRay(c.center, pixelCenter.Subtract(c.center))
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig { return c.config }

// ImageWidth returns the image width in whole pixels
func (c *Camera) ImageWidth() int { return c.imageWidth }

// ImageHeight returns the image height, at least 1
func (c *Camera) ImageHeight() int { return c.imageHeight }

// SamplesPerPixel returns the number of jittered rays per pixel
func (c *Camera) SamplesPerPixel() int { return c.config.SamplesPerPixel }

// MaxDepth returns the bounce budget passed to RayColor
func (c *Camera) MaxDepth() int { return c.config.MaxDepth }

// Center returns the camera position
func (c *Camera) Center() core.Point3 { return c.center }

// Pixel00Loc returns the center of the top-left pixel
func (c *Camera) Pixel00Loc() core.Point3 { return c.pixel00Loc }

// PixelDeltaU returns the offset from one pixel to the next on the right
func (c *Camera) PixelDeltaU() core.Vec3 { return c.pixelDeltaU }

// PixelDeltaV returns the offset from one pixel to the next below
func (c *Camera) PixelDeltaV() core.Vec3 { return c.pixelDeltaV }

// PixelSamplesScale returns 1/SamplesPerPixel, the weight of each sample
func (c *Camera) PixelSamplesScale() float64 { return c.pixelSamplesScale }
