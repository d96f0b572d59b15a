package scene

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestScene_FindClosestIntersection_Nearest(t *testing.T) {
	s := NewScene("test", core.Gray(0))
	far := s.AddSphere(core.NewVec3(0, 0, 10), 1, core.Gray(1))
	near := s.AddSphere(core.NewVec3(0, 0, 5), 1, core.Gray(1))

	hit := s.FindClosestIntersection(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)))
	if !hit.Hit() {
		t.Fatal("Expected hit, but got miss")
	}
	if hit.Object != near {
		t.Errorf("Expected nearer sphere, got %v", hit.Object)
	}
	if hit.Object == far {
		t.Error("Farther sphere should not win")
	}
	if math.Abs(hit.Distance-4.0) > 1e-9 {
		t.Errorf("Expected distance 4, got %f", hit.Distance)
	}
}

func TestScene_FindClosestIntersection_NoHit(t *testing.T) {
	s := NewScene("test", core.Gray(0))
	s.AddSphere(core.NewVec3(0, 0, 5), 1, core.Gray(1))
	s.AddSphere(core.NewVec3(0, 0, -5), 1, core.Gray(1))

	hit := s.FindClosestIntersection(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)))
	if hit.Hit() {
		t.Errorf("Expected miss, got hit at %f", hit.Distance)
	}
	if !math.IsInf(hit.Distance, 1) || hit.Object != nil {
		t.Errorf("Expected no-hit sentinel, got %+v", hit)
	}

	empty := NewScene("empty", core.Gray(0))
	if hit := empty.FindClosestIntersection(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))); hit.Hit() {
		t.Error("Expected miss in empty scene")
	}
}

func TestScene_FindClosestIntersection_IgnoresObjectsBehind(t *testing.T) {
	s := NewScene("test", core.Gray(0))
	s.AddSphere(core.NewVec3(0, 0, -2), 1, core.Gray(1))
	front := s.AddSphere(core.NewVec3(0, 0, 8), 1, core.Gray(1))

	hit := s.FindClosestIntersection(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)))
	if hit.Object != front {
		t.Errorf("Expected the sphere in front of the ray, got %+v", hit)
	}
}

func TestScene_FindClosestIntersection_TieBreak(t *testing.T) {
	s := NewScene("test", core.Gray(0))
	first := s.AddSphere(core.NewVec3(0, 0, 5), 1, core.NewColorRGB(1, 0, 0))
	s.AddSphere(core.NewVec3(0, 0, 5), 1, core.NewColorRGB(0, 1, 0))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	for i := 0; i < 3; i++ {
		if hit := s.FindClosestIntersection(ray); hit.Object != first {
			t.Fatalf("Expected first of the tied objects, got %v", hit.Object)
		}
	}
}

func TestScene_Accessors(t *testing.T) {
	ambient := core.Gray(0.1)
	s := NewScene("test", ambient)
	light := s.AddPointLight(core.NewVec3(1, 1, 1), core.Gray(1), 10)
	s.AddPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), core.Gray(1))

	if s.AmbientLighting() != ambient {
		t.Errorf("Expected ambient %v, got %v", ambient, s.AmbientLighting())
	}
	if len(s.PointLights()) != 1 || s.PointLights()[0] != light {
		t.Errorf("Expected the added light, got %v", s.PointLights())
	}
	if s.GetPrimitiveCount() != 1 {
		t.Errorf("Expected 1 primitive, got %d", s.GetPrimitiveCount())
	}
	if s.RenderSettings != DefaultRenderSettings() {
		t.Errorf("Expected default render settings, got %+v", s.RenderSettings)
	}
}
