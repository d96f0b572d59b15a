package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PointLight emits equally in all directions from a single point
type PointLight struct {
	position  core.Vec3
	colour    core.ColorRGB
	intensity float64
}

// NewPointLight creates a point light
func NewPointLight(position core.Vec3, colour core.ColorRGB, intensity float64) *PointLight {
	return &PointLight{
		position:  position,
		colour:    colour,
		intensity: intensity,
	}
}

// Position returns the light position
func (pl *PointLight) Position() core.Vec3 {
	return pl.position
}

// Colour returns the light colour
func (pl *PointLight) Colour() core.ColorRGB {
	return pl.colour
}

// Intensity returns the radiant intensity of the light
func (pl *PointLight) Intensity() float64 {
	return pl.intensity
}

// IlluminationAt applies the inverse-square law: colour * intensity / (4π d²)
func (pl *PointLight) IlluminationAt(distance float64) core.ColorRGB {
	return pl.colour.Scale(pl.intensity / (4 * math.Pi * distance * distance))
}
