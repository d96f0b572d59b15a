package core

import (
	"image/color"
	"math"
)

// ColorRGB is a linear radiance value. Channels are non-negative and
// unbounded above; nothing is clamped until the color is quantized.
type ColorRGB struct {
	R, G, B float64
}

// NewColorRGB creates a new ColorRGB
func NewColorRGB(r, g, b float64) ColorRGB {
	return ColorRGB{R: r, G: g, B: b}
}

// Gray returns a color with all three channels set to v
func Gray(v float64) ColorRGB {
	return ColorRGB{R: v, G: v, B: v}
}

// Add returns the channel-wise sum of two colors
func (c ColorRGB) Add(other ColorRGB) ColorRGB {
	return ColorRGB{c.R + other.R, c.G + other.G, c.B + other.B}
}

// AddScalar adds s to every channel
func (c ColorRGB) AddScalar(s float64) ColorRGB {
	return ColorRGB{c.R + s, c.G + s, c.B + s}
}

// Scale returns the color multiplied by a scalar
func (c ColorRGB) Scale(s float64) ColorRGB {
	return ColorRGB{c.R * s, c.G * s, c.B * s}
}

// MultiplyColor returns the channel-wise product of two colors
func (c ColorRGB) MultiplyColor(other ColorRGB) ColorRGB {
	return ColorRGB{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Power raises every channel to the power p
func (c ColorRGB) Power(p float64) ColorRGB {
	return ColorRGB{math.Pow(c.R, p), math.Pow(c.G, p), math.Pow(c.B, p)}
}

// Inv returns the channel-wise reciprocal
func (c ColorRGB) Inv() ColorRGB {
	return ColorRGB{1 / c.R, 1 / c.G, 1 / c.B}
}

// Clamp returns a color with channels clamped to [minVal, maxVal]
func (c ColorRGB) Clamp(minVal, maxVal float64) ColorRGB {
	return ColorRGB{
		R: max(minVal, min(maxVal, c.R)),
		G: max(minVal, min(maxVal, c.G)),
		B: max(minVal, min(maxVal, c.B)),
	}
}

// ToRGBA quantizes the color to 8 bits per channel after clamping to [0, 1]
func (c ColorRGB) ToRGBA() color.RGBA {
	clamped := c.Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255 * clamped.R),
		G: uint8(255 * clamped.G),
		B: uint8(255 * clamped.B),
		A: 255,
	}
}

// Packed returns the quantized color as 0xRRGGBB
func (c ColorRGB) Packed() uint32 {
	rgba := c.ToRGBA()
	return uint32(rgba.R)<<16 | uint32(rgba.G)<<8 | uint32(rgba.B)
}
