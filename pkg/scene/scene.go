package scene

import (
	"errors"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/renderer"
)

var (
	ErrUnknownScene  = errors.New("scene: unknown scene")
	ErrInvalidRadius = errors.New("scene: sphere radius must not be negative")
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	World        *geometry.HittableList // Objects in the scene
	CameraConfig renderer.CameraConfig
}

// SphereDescriptor describes a sphere before it becomes part of a world
type SphereDescriptor struct {
	Center core.Point3
	Radius float64
}

// Build assembles sphere descriptors into a scene aggregate, in order
func Build(spheres []SphereDescriptor) *geometry.HittableList {
	world := geometry.NewHittableList()
	for _, s := range spheres {
		world.Add(geometry.NewSphere(s.Center, s.Radius))
	}
	return world
}

// NewCamera creates the camera described by the scene's config
func (s *Scene) NewCamera() (*renderer.Camera, error) {
	return renderer.NewCamera(s.CameraConfig)
}

// applyOverrides merges the first override, if any, onto defaults
func applyOverrides(defaults renderer.CameraConfig, overrides []renderer.CameraConfig) renderer.CameraConfig {
	if len(overrides) > 0 {
		return renderer.MergeCameraConfig(defaults, overrides[0])
	}
	return defaults
}
