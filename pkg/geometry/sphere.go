package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Default Phong coefficients for spheres
const (
	SphereKD           = 0.8
	SphereKS           = 1.2
	SphereAlpha        = 10
	SphereReflectivity = 0.3
)

// Sphere represents a sphere shape
type Sphere struct {
	Center  core.Vec3
	Radius  float64
	surface Surface
}

// NewSphere creates a sphere with the default sphere coefficients
func NewSphere(center core.Vec3, radius float64, colour core.ColorRGB) *Sphere {
	return NewSphereWithSurface(center, radius, Surface{
		Colour:       colour,
		KD:           SphereKD,
		KS:           SphereKS,
		Alpha:        SphereAlpha,
		Reflectivity: SphereReflectivity,
	})
}

// NewSphereWithSurface creates a sphere with explicit shading properties
func NewSphereWithSurface(center core.Vec3, radius float64, surface Surface) *Sphere {
	return &Sphere{
		Center:  center,
		Radius:  radius,
		surface: surface,
	}
}

// IntersectionWith solves |O + sD - C|² = r² for the nearer root s.
// A negative nearer root is reported as a miss even when the farther root
// is in front of the origin, so rays starting inside the sphere never hit it.
func (s *Sphere) IntersectionWith(ray core.Ray) RaycastHit {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: as² + bs + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return NoHit()
	}

	sqrtD := math.Sqrt(discriminant)
	s1 := (-b + sqrtD) / (2 * a)
	s2 := (-b - sqrtD) / (2 * a)

	root := math.Min(s1, s2)
	if root < 0 {
		return NoHit()
	}

	location := ray.At(root)
	return RaycastHit{
		Object:   s,
		Distance: root,
		Location: location,
		Normal:   s.NormalAt(location),
	}
}

// NormalAt returns the outward normal at a point on the sphere
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// Surface returns the sphere's shading properties
func (s *Sphere) Surface() Surface {
	return s.surface
}
