package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-raytracer/pkg/core"
)

var defaultRange = core.NewInterval(0.001, 1000.0)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, defaultRange)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "unnormalized direction",
			rayOrigin:      core.NewVec3(0, 0, 5),
			rayDirection:   core.NewVec3(0, 0, -2),
			expectedT:      2.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, defaultRange)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}

			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}

			tolerance := 1e-9
			if math.Abs(hit.Normal.X-tt.expectedNormal.X) > tolerance ||
				math.Abs(hit.Normal.Y-tt.expectedNormal.Y) > tolerance ||
				math.Abs(hit.Normal.Z-tt.expectedNormal.Z) > tolerance {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_DistanceToSurface(t *testing.T) {
	center := core.NewVec3(0, 0, -10)
	radius := 2.0
	sphere := NewSphere(center, radius)
	origin := core.NewVec3(0, 0, 0)
	direction := center.Subtract(origin).UnitVector()

	hit, isHit := sphere.Hit(core.NewRay(origin, direction), core.NewInterval(0, math.Inf(1)))
	if !isHit {
		t.Fatal("Expected hit for ray aimed at the center")
	}
	if !hit.FrontFace {
		t.Error("Expected front face hit from outside")
	}
	expected := center.Subtract(origin).Length() - radius
	if math.Abs(hit.T-expected) > 1e-9 {
		t.Errorf("Expected t=%f, got t=%f", expected, hit.T)
	}
	if math.Abs(hit.Normal.Length()-1) > 1e-9 {
		t.Errorf("Expected unit normal, got length %f", hit.Normal.Length())
	}
}

func TestSphere_Hit_BehindOrigin(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 5), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if hit, isHit := sphere.Hit(ray, core.NewInterval(0, math.Inf(1))); isHit {
		t.Errorf("Expected miss for sphere behind the origin, got t=%f", hit.T)
	}
}

func TestSphere_Hit_GlancingHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, defaultRange)
	if !isHit {
		t.Fatal("Expected glancing hit, but got miss")
	}

	expectedPoint := core.NewVec3(1, 0, 0)
	tolerance := 1e-9
	if math.Abs(hit.Point.X-expectedPoint.X) > tolerance ||
		math.Abs(hit.Point.Y-expectedPoint.Y) > tolerance ||
		math.Abs(hit.Point.Z-expectedPoint.Z) > tolerance {
		t.Errorf("Expected hit point %v, got %v", expectedPoint, hit.Point)
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	// Test tMax bound
	hit, isHit := sphere.Hit(ray, core.NewInterval(0.001, 0.5))
	if isHit {
		t.Errorf("Expected miss due to tMax bound, but got hit at t=%f", hit.T)
	}

	// Test tMin bound
	hit, isHit = sphere.Hit(ray, core.NewInterval(3.5, 1000.0))
	if isHit {
		t.Errorf("Expected miss due to tMin bound, but got hit at t=%f", hit.T)
	}

	// Bounds are exclusive: a root exactly at tMax is rejected
	hit, isHit = sphere.Hit(ray, core.NewInterval(0.001, 1.0))
	if isHit {
		t.Errorf("Expected miss for root on the open bound, but got hit at t=%f", hit.T)
	}

	// Near root excluded, far root accepted
	hit, isHit = sphere.Hit(ray, core.NewInterval(1.0, 1000.0))
	if !isHit || math.Abs(hit.T-3.0) > 1e-9 {
		t.Errorf("Expected far root t=3, got hit=%t", isHit)
	}
}

func TestSphere_Hit_ZeroRadius(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0.3, 0.1, -1))

	if _, isHit := sphere.Hit(ray, defaultRange); isHit {
		t.Error("Expected zero radius sphere to be missed by an off-center ray")
	}
}
