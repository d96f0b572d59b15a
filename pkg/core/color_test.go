package core

import (
	"image/color"
	"math"
	"testing"
)

func colorsClose(a, b ColorRGB, tolerance float64) bool {
	return math.Abs(a.R-b.R) <= tolerance &&
		math.Abs(a.G-b.G) <= tolerance &&
		math.Abs(a.B-b.B) <= tolerance
}

func TestColorRGB_Operations(t *testing.T) {
	c := NewColorRGB(0.5, 1, 2)

	if got := c.Add(Gray(1)); got != NewColorRGB(1.5, 2, 3) {
		t.Errorf("Add: got %v", got)
	}
	if got := c.AddScalar(0.5); got != NewColorRGB(1, 1.5, 2.5) {
		t.Errorf("AddScalar: got %v", got)
	}
	if got := c.Scale(2); got != NewColorRGB(1, 2, 4) {
		t.Errorf("Scale: got %v", got)
	}
	if got := c.MultiplyColor(NewColorRGB(2, 0, 0.5)); got != NewColorRGB(1, 0, 1) {
		t.Errorf("MultiplyColor: got %v", got)
	}
	if got := c.Power(2); !colorsClose(got, NewColorRGB(0.25, 1, 4), 1e-12) {
		t.Errorf("Power: got %v", got)
	}
	if got := c.Inv(); !colorsClose(got, NewColorRGB(2, 1, 0.5), 1e-12) {
		t.Errorf("Inv: got %v", got)
	}
}

func TestColorRGB_Unclamped(t *testing.T) {
	// Linear radiance is allowed to exceed 1 until quantization
	c := Gray(0.8).Add(Gray(0.8))
	if c.R <= 1.0 {
		t.Errorf("Expected unclamped channel above 1, got %f", c.R)
	}
}

func TestColorRGB_ToRGBA(t *testing.T) {
	tests := []struct {
		name     string
		color    ColorRGB
		expected color.RGBA
	}{
		{"black", Gray(0), color.RGBA{0, 0, 0, 255}},
		{"white", Gray(1), color.RGBA{255, 255, 255, 255}},
		{"overexposed clamps", NewColorRGB(3, 0.5, -1), color.RGBA{255, 127, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.ToRGBA(); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestColorRGB_Packed(t *testing.T) {
	if got := NewColorRGB(1, 0, 1).Packed(); got != 0xFF00FF {
		t.Errorf("Expected 0xFF00FF, got %#06x", got)
	}
}
