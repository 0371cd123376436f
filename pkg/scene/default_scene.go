package scene

import (
	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/renderer"
)

// DefaultSpheres returns a small sphere resting on a very large ground sphere
func DefaultSpheres() []SphereDescriptor {
	return []SphereDescriptor{
		{Center: core.NewVec3(0, 0, -1), Radius: 0.5},
		{Center: core.NewVec3(0, -100.5, -1), Radius: 100},
	}
}

// NewDefaultScene creates the two-sphere scene with the reference camera
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	return &Scene{
		Name:         "default",
		World:        Build(DefaultSpheres()),
		CameraConfig: applyOverrides(renderer.DefaultCameraConfig(), cameraOverrides),
	}
}
