package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/log"
	"github.com/df07/go-raytracer/pkg/renderer"
)

var logger = log.New("scene")

// FileConfig is the on-disk JSON scene format
type FileConfig struct {
	Name        string                `json:"name,omitempty"`
	Description string                `json:"description,omitempty"`
	Camera      CameraFileConfig `json:"camera"`
	Spheres     []SphereConfig   `json:"spheres"`
}

// CameraFileConfig holds the camera settings of a scene file. Absent fields
// keep the base value; present fields apply even when zero.
type CameraFileConfig struct {
	AspectRatio     *float64 `json:"aspectRatio,omitempty"`
	ImageWidth      *float64 `json:"imageWidth,omitempty"`
	SamplesPerPixel *int     `json:"samplesPerPixel,omitempty"`
	MaxDepth        *int     `json:"maxDepth,omitempty"`
}

// Apply returns base with every field present in the file set
func (c CameraFileConfig) Apply(base renderer.CameraConfig) renderer.CameraConfig {
	result := base
	if c.AspectRatio != nil {
		result.AspectRatio = *c.AspectRatio
	}
	if c.ImageWidth != nil {
		result.ImageWidth = *c.ImageWidth
	}
	if c.SamplesPerPixel != nil {
		result.SamplesPerPixel = *c.SamplesPerPixel
	}
	if c.MaxDepth != nil {
		result.MaxDepth = *c.MaxDepth
	}
	return result
}

type SphereConfig struct {
	Center [3]float64 `json:"center"`
	Radius float64    `json:"radius"`
}

// Descriptors validates the sphere list and converts it to descriptors
func (c *FileConfig) Descriptors() ([]SphereDescriptor, error) {
	spheres := make([]SphereDescriptor, 0, len(c.Spheres))
	for i, s := range c.Spheres {
		if s.Radius < 0 || math.IsNaN(s.Radius) {
			return nil, fmt.Errorf("sphere %d: %w: got %g", i, ErrInvalidRadius, s.Radius)
		}
		spheres = append(spheres, SphereDescriptor{
			Center: core.NewVec3(s.Center[0], s.Center[1], s.Center[2]),
			Radius: s.Radius,
		})
	}
	return spheres, nil
}

// DecodeConfig reads a JSON scene description
func DecodeConfig(r io.Reader) (*FileConfig, error) {
	var cfg FileConfig
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("scene: decode: %w", err)
	}
	return &cfg, nil
}

// LoadFile loads a JSON scene. Camera settings from the file override the
// defaults, and cameraOverrides override the file.
func LoadFile(path string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	spheres, err := cfg.Descriptors()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	name := cfg.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	cameraConfig := cfg.Camera.Apply(renderer.DefaultCameraConfig())
	s := &Scene{
		Name:         name,
		World:        Build(spheres),
		CameraConfig: applyOverrides(cameraConfig, cameraOverrides),
	}

	logger.Debugf("loaded scene %q from %s: %d spheres", s.Name, path, s.World.Len())
	return s, nil
}
