package renderer

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-raytracer/pkg/core"
)

func TestNewCamera_ImageHeight(t *testing.T) {
	tests := []struct {
		name           string
		aspectRatio    float64
		imageWidth     float64
		expectedWidth  int
		expectedHeight int
	}{
		{"16:9 reference", 16.0 / 9.0, 400, 400, 225},
		{"square", 1.0, 100, 100, 100},
		{"height clamps to 1", 16.0 / 9.0, 1, 1, 1},
		{"very wide", 1000, 10, 10, 1},
		{"fractional width floors", 1.0, 10.7, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera, err := NewCamera(CameraConfig{
				AspectRatio:     tt.aspectRatio,
				ImageWidth:      tt.imageWidth,
				SamplesPerPixel: 1,
			})
			if err != nil {
				t.Fatalf("NewCamera: %v", err)
			}
			if camera.ImageWidth() != tt.expectedWidth || camera.ImageHeight() != tt.expectedHeight {
				t.Errorf("Expected %dx%d, got %dx%d", tt.expectedWidth, tt.expectedHeight,
					camera.ImageWidth(), camera.ImageHeight())
			}
		})
	}
}

func TestNewCamera_ViewportGeometry(t *testing.T) {
	camera, err := NewCamera(DefaultCameraConfig())
	if err != nil {
		t.Fatalf("NewCamera: %v", err)
	}

	viewportWidth := 2.0 * 400.0 / 225.0
	du := core.NewVec3(viewportWidth/400, 0, 0)
	dv := core.NewVec3(0, -2.0/225, 0)
	pixel00 := core.NewVec3(-viewportWidth/2, 1, -1).Add(du.Add(dv).Multiply(0.5))

	const tolerance = 1e-12
	checks := []struct {
		name     string
		got      core.Vec3
		expected core.Vec3
	}{
		{"center", camera.Center(), core.NewVec3(0, 0, 0)},
		{"pixel delta u", camera.PixelDeltaU(), du},
		{"pixel delta v", camera.PixelDeltaV(), dv},
		{"pixel00", camera.Pixel00Loc(), pixel00},
	}
	for _, c := range checks {
		if c.got.Subtract(c.expected).Length() > tolerance {
			t.Errorf("%s: expected %v, got %v", c.name, c.expected, c.got)
		}
	}

	if camera.PixelSamplesScale() != 1.0/100 {
		t.Errorf("Expected samples scale 0.01, got %g", camera.PixelSamplesScale())
	}
}

func TestCamera_GetRayStaysInsidePixel(t *testing.T) {
	camera, _ := NewCamera(DefaultCameraConfig())
	random := rand.New(rand.NewSource(42))
	du, dv := camera.PixelDeltaU(), camera.PixelDeltaV()

	for _, pixel := range [][2]int{{0, 0}, {200, 112}, {399, 224}} {
		i, j := pixel[0], pixel[1]
		anchor := camera.Pixel00Loc().Add(du.Multiply(float64(i))).Add(dv.Multiply(float64(j)))

		for s := 0; s < 100; s++ {
			ray := camera.GetRay(i, j, random)
			if ray.Origin != camera.Center() {
				t.Fatalf("Expected ray from camera center, got %v", ray.Origin)
			}
			// Direction ends on the viewport plane z = -1
			offsetX := (ray.Direction.X - anchor.X) / du.X
			offsetY := (ray.Direction.Y - anchor.Y) / dv.Y
			if offsetX < -1e-9 || offsetX > 1+1e-9 || offsetY < -1e-9 || offsetY > 1+1e-9 || ray.Direction.Z != -1 {
				t.Fatalf("Pixel (%d,%d) sample offset (%f,%f) outside [0,1)", i, j, offsetX, offsetY)
			}
		}
	}
}

func TestCamera_PixelCenterRay(t *testing.T) {
	camera, _ := NewCamera(DefaultCameraConfig())

	ray := camera.PixelCenterRay(0, 0)
	if ray.Direction != camera.Pixel00Loc() {
		t.Errorf("Expected direction to pixel00 %v, got %v", camera.Pixel00Loc(), ray.Direction)
	}

	// Rays in the same row share direction.y
	a := camera.PixelCenterRay(10, 5)
	b := camera.PixelCenterRay(300, 5)
	if math.Abs(a.Direction.Y-b.Direction.Y) > 1e-12 {
		t.Errorf("Expected equal y in the same row, got %f and %f", a.Direction.Y, b.Direction.Y)
	}
}

func TestCameraConfig_Validate(t *testing.T) {
	base := DefaultCameraConfig()

	tests := []struct {
		name     string
		mutate   func(c *CameraConfig)
		expected error
	}{
		{"zero width", func(c *CameraConfig) { c.ImageWidth = 0 }, ErrInvalidImageWidth},
		{"infinite width", func(c *CameraConfig) { c.ImageWidth = math.Inf(1) }, ErrInvalidImageWidth},
		{"nan width", func(c *CameraConfig) { c.ImageWidth = math.NaN() }, ErrInvalidImageWidth},
		{"negative aspect", func(c *CameraConfig) { c.AspectRatio = -1 }, ErrInvalidAspectRatio},
		{"nan aspect", func(c *CameraConfig) { c.AspectRatio = math.NaN() }, ErrInvalidAspectRatio},
		{"no samples", func(c *CameraConfig) { c.SamplesPerPixel = 0 }, ErrInvalidSamples},
		{"negative depth", func(c *CameraConfig) { c.MaxDepth = -1 }, ErrInvalidDepth},
		{"zero depth is valid", func(c *CameraConfig) { c.MaxDepth = 0 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := base
			tt.mutate(&config)
			_, err := NewCamera(config)
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestMergeCameraConfig(t *testing.T) {
	merged := MergeCameraConfig(DefaultCameraConfig(), CameraConfig{ImageWidth: 200, SamplesPerPixel: 4})

	expected := CameraConfig{AspectRatio: 16.0 / 9.0, ImageWidth: 200, SamplesPerPixel: 4, MaxDepth: 10}
	if merged != expected {
		t.Errorf("Expected %+v, got %+v", expected, merged)
	}
}
