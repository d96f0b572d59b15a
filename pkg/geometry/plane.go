package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Default Phong coefficients for planes
const (
	PlaneKD           = 0.6
	PlaneKS           = 0.0
	PlaneAlpha        = 0.0
	PlaneReflectivity = 0.1
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point   core.Vec3 // A point on the plane
	Normal  core.Vec3 // Unit normal
	surface Surface
}

// NewPlane creates a plane with the default plane coefficients
func NewPlane(point, normal core.Vec3, colour core.ColorRGB) *Plane {
	return NewPlaneWithSurface(point, normal, Surface{
		Colour:       colour,
		KD:           PlaneKD,
		KS:           PlaneKS,
		Alpha:        PlaneAlpha,
		Reflectivity: PlaneReflectivity,
	})
}

// NewPlaneWithSurface creates a plane with explicit shading properties
func NewPlaneWithSurface(point, normal core.Vec3, surface Surface) *Plane {
	return &Plane{
		Point:   point,
		Normal:  normal.Normalize(), // Ensure normal is normalized
		surface: surface,
	}
}

// IntersectionWith tests if a ray intersects with the plane
func (p *Plane) IntersectionWith(ray core.Ray) RaycastHit {
	// Calculate denominator: dot product of ray direction and plane normal
	denominator := ray.Direction.Dot(p.Normal)

	// If denominator is close to zero, ray is parallel to plane (no intersection)
	if math.Abs(denominator) < 1e-8 {
		return NoHit()
	}

	// s = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	s := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if s < 0 {
		return NoHit()
	}

	location := ray.At(s)
	return RaycastHit{
		Object:   p,
		Distance: s,
		Location: location,
		Normal:   p.Normal,
	}
}

// NormalAt returns the plane normal, which is the same everywhere
func (p *Plane) NormalAt(point core.Vec3) core.Vec3 {
	return p.Normal
}

// Surface returns the plane's shading properties
func (p *Plane) Surface() Surface {
	return p.surface
}
