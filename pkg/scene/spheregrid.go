package scene

import (
	"math"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/renderer"
)

var (
	groundCenter = core.NewVec3(0, -100.5, -1)
	groundRadius = 100.0
)

// groundHeight returns the height of the ground sphere's top surface at (x, z)
func groundHeight(x, z float64) float64 {
	dx := x - groundCenter.X
	dz := z - groundCenter.Z
	return groundCenter.Y + math.Sqrt(groundRadius*groundRadius-dx*dx-dz*dz)
}

// SphereGridSpheres returns the ground sphere followed by a gridSize x gridSize
// grid of small spheres sitting on it in front of the camera
func SphereGridSpheres(gridSize int) []SphereDescriptor {
	spheres := []SphereDescriptor{{Center: groundCenter, Radius: groundRadius}}
	if gridSize < 1 {
		return spheres
	}

	// Grid spans x in [-2, 2] and z in [-4, -1.5], shrinking spheres as it gets denser
	width, depth := 4.0, 2.5
	spacing := width
	if gridSize > 1 {
		spacing = width / float64(gridSize-1)
	}
	sphereRadius := math.Max(0.02, math.Min(0.3, spacing*0.35))

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := -width / 2
			z := -1.5
			if gridSize > 1 {
				x += float64(i) * spacing
				z -= float64(j) * depth / float64(gridSize-1)
			}
			y := groundHeight(x, z) + sphereRadius
			spheres = append(spheres, SphereDescriptor{Center: core.NewVec3(x, y, z), Radius: sphereRadius})
		}
	}

	return spheres
}

// NewSphereGridScene creates a scene with a 5x5 grid of spheres
func NewSphereGridScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.DefaultCameraConfig()
	defaultCameraConfig.SamplesPerPixel = 50 // Many small spheres converge quickly

	return &Scene{
		Name:         "spheregrid",
		World:        Build(SphereGridSpheres(5)),
		CameraConfig: applyOverrides(defaultCameraConfig, cameraOverrides),
	}
}
