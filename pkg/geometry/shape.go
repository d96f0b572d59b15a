package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Shape is an object that can be placed in a scene. The set of shapes is
// closed: *Sphere and *Plane are the only implementations.
type Shape interface {
	// IntersectionWith returns the nearest hit in front of the ray origin, or NoHit
	IntersectionWith(ray core.Ray) RaycastHit
	// NormalAt returns the unit surface normal at a point on the shape
	NormalAt(point core.Vec3) core.Vec3
	// Surface returns the shading properties of the shape
	Surface() Surface
}

// Surface holds the Phong material of a shape
type Surface struct {
	Colour       core.ColorRGB // Diffuse colour
	KD           float64       // Diffuse coefficient
	KS           float64       // Specular coefficient
	Alpha        float64       // Specular exponent
	Reflectivity float64       // Mirror weight in [0, 1]
}

// RaycastHit describes the closest intersection of a ray with a shape.
// A miss has a nil Object and an infinite Distance.
type RaycastHit struct {
	Object   Shape     // Shape that was hit
	Distance float64   // Distance along the ray, >= 0
	Location core.Vec3 // World-space hit point
	Normal   core.Vec3 // Unit surface normal at the hit point
}

// NoHit returns the miss sentinel
func NoHit() RaycastHit {
	return RaycastHit{Distance: math.Inf(1)}
}

// Hit reports whether the ray struck anything
func (h RaycastHit) Hit() bool {
	return h.Object != nil
}
