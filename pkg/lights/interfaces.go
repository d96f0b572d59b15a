package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Light is a light source that can be evaluated for direct illumination
type Light interface {
	// Position returns the world-space position of the light
	Position() core.Vec3

	// Colour returns the base colour used for specular highlights
	Colour() core.ColorRGB

	// IlluminationAt returns the light's intensity after travelling the given distance
	IlluminationAt(distance float64) core.ColorRGB
}
