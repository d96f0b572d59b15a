package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ToneMapper compresses linear radiance into [0, 1] with a sigmoidal curve
// followed by gamma encoding
type ToneMapper struct {
	Brightness float64 // a: higher values brighten mid-tones
	Contrast   float64 // b: steepness of the curve
	Gamma      float64 // display gamma
}

// DefaultToneMapper returns sensible default values
func DefaultToneMapper() ToneMapper {
	return ToneMapper{
		Brightness: 2.0,
		Contrast:   1.3,
		Gamma:      2.2,
	}
}

// Map applies x^b / (x^b + (0.5/a)^b) to every channel, then raises the
// result to 1/gamma. Zero maps to zero and the output approaches one as
// the input grows.
func (tm ToneMapper) Map(linear core.ColorRGB) core.ColorRGB {
	midpoint := math.Pow(0.5/tm.Brightness, tm.Contrast)

	// Negative radiance has no real power; treat it as black
	p := linear.Clamp(0, math.Inf(1)).Power(tm.Contrast)

	// p/(p+m) written as 1/(1 + m/p): p = 0 gives 0 and p = +Inf gives 1
	display := p.Inv().Scale(midpoint).AddScalar(1).Inv()

	return display.Power(1 / tm.Gamma)
}
