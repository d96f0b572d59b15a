package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// NewDefaultScene creates three coloured spheres resting above a floor plane,
// lit by two point lights. The red sphere's front face sits on the default
// depth-of-field focal plane.
func NewDefaultScene() *Scene {
	s := NewScene("default", core.Gray(0.05))
	s.RenderSettings = RenderSettings{Width: 800, Height: 600, Bounces: 2}

	s.AddPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), core.NewColorRGB(0.6, 0.6, 0.6))

	s.AddSphere(core.NewVec3(-1.0, 0, 4.51805), 1.0, core.NewColorRGB(1.0, 0.15, 0.1))
	s.AddSphere(core.NewVec3(1.3, -0.3, 6.0), 0.7, core.NewColorRGB(0.1, 0.8, 0.2))
	s.AddSphere(core.NewVec3(0.4, 0.9, 9.0), 1.5, core.NewColorRGB(0.15, 0.3, 1.0))

	s.AddPointLight(core.NewVec3(2, 3, 1), core.Gray(1), 100)
	s.AddPointLight(core.NewVec3(-3, 2, 3), core.NewColorRGB(1.0, 0.9, 0.8), 40)

	return s
}

// NewMirrorScene creates a row of highly reflective spheres between two
// mirror-like spheres, for exercising deep bounce budgets.
func NewMirrorScene() *Scene {
	s := NewScene("mirrors", core.Gray(0.05))
	s.RenderSettings = RenderSettings{Width: 800, Height: 600, Bounces: 6}

	s.Objects = append(s.Objects,
		geometry.NewPlaneWithSurface(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), geometry.Surface{
			Colour:       core.NewColorRGB(0.8, 0.8, 0.7),
			KD:           0.6,
			Reflectivity: 0.25,
		}),
		geometry.NewSphereWithSurface(core.NewVec3(-2.2, 0.2, 7), 1.2, geometry.Surface{
			Colour: core.Gray(0.9), KD: 0.2, KS: 1.5, Alpha: 50, Reflectivity: 0.9,
		}),
		geometry.NewSphereWithSurface(core.NewVec3(2.2, 0.2, 7), 1.2, geometry.Surface{
			Colour: core.Gray(0.9), KD: 0.2, KS: 1.5, Alpha: 50, Reflectivity: 0.9,
		}),
	)

	colours := []core.ColorRGB{
		core.NewColorRGB(1.0, 0.3, 0.2),
		core.NewColorRGB(1.0, 0.8, 0.2),
		core.NewColorRGB(0.2, 0.9, 0.4),
	}
	for i, colour := range colours {
		s.AddSphere(core.NewVec3(-0.8+0.8*float64(i), -0.65, 5.0+0.6*float64(i)), 0.35, colour)
	}

	s.AddPointLight(core.NewVec3(0, 4, 3), core.Gray(1), 150)

	return s
}

// NewShadowScene creates a small occluder floating between a light and a
// floor, for comparing hard and soft shadows.
func NewShadowScene() *Scene {
	s := NewScene("shadows", core.Gray(0.05))
	s.RenderSettings = RenderSettings{Width: 640, Height: 480, Bounces: 1}

	s.AddPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), core.Gray(0.8))
	s.Objects = append(s.Objects,
		geometry.NewSphereWithSurface(core.NewVec3(0, 0.2, 5), 0.6, geometry.Surface{
			Colour: core.NewColorRGB(0.9, 0.5, 0.1), KD: 0.8, KS: 0.5, Alpha: 20,
		}),
	)

	s.AddPointLight(core.NewVec3(0, 3.5, 5), core.Gray(1), 120)

	return s
}
