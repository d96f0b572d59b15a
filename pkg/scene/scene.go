package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Scene contains all the elements needed for rendering.
// A scene is built once and must not be modified while it is being rendered.
type Scene struct {
	Name           string
	Objects        []geometry.Shape // Objects in the scene, in intersection order
	Lights         []lights.Light   // Point lights in the scene
	Ambient        core.ColorRGB    // Ambient light intensity
	RenderSettings RenderSettings   // Recommended output settings
}

// RenderSettings contains the scene's recommended output configuration
type RenderSettings struct {
	Width   int // Image width
	Height  int // Image height
	Bounces int // Reflection bounce budget
}

// DefaultRenderSettings returns sensible default values
func DefaultRenderSettings() RenderSettings {
	return RenderSettings{
		Width:   800,
		Height:  600,
		Bounces: 2,
	}
}

// NewScene creates an empty scene with the given ambient light
func NewScene(name string, ambient core.ColorRGB) *Scene {
	return &Scene{
		Name:           name,
		Objects:        make([]geometry.Shape, 0),
		Lights:         make([]lights.Light, 0),
		Ambient:        ambient,
		RenderSettings: DefaultRenderSettings(),
	}
}

// FindClosestIntersection returns the nearest hit in front of the ray origin
// across all objects, or geometry.NoHit. On an exact tie the object that
// comes first in Objects wins.
func (s *Scene) FindClosestIntersection(ray core.Ray) geometry.RaycastHit {
	closest := geometry.NoHit()

	for _, object := range s.Objects {
		hit := object.IntersectionWith(ray)
		if hit.Hit() && hit.Distance >= 0 && hit.Distance < closest.Distance {
			closest = hit
		}
	}

	return closest
}

// AmbientLighting returns the scene's ambient light
func (s *Scene) AmbientLighting() core.ColorRGB {
	return s.Ambient
}

// PointLights returns the lights in the scene
func (s *Scene) PointLights() []lights.Light {
	return s.Lights
}

// AddSphere adds a sphere with the default sphere coefficients
func (s *Scene) AddSphere(center core.Vec3, radius float64, colour core.ColorRGB) *geometry.Sphere {
	sphere := geometry.NewSphere(center, radius, colour)
	s.Objects = append(s.Objects, sphere)
	return sphere
}

// AddPlane adds a plane with the default plane coefficients
func (s *Scene) AddPlane(point, normal core.Vec3, colour core.ColorRGB) *geometry.Plane {
	plane := geometry.NewPlane(point, normal, colour)
	s.Objects = append(s.Objects, plane)
	return plane
}

// AddPointLight adds a point light to the scene
func (s *Scene) AddPointLight(position core.Vec3, colour core.ColorRGB, intensity float64) *lights.PointLight {
	light := lights.NewPointLight(position, colour, intensity)
	s.Lights = append(s.Lights, light)
	return light
}

// GetPrimitiveCount returns the total number of objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Objects)
}
