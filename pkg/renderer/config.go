package renderer

import "github.com/df07/go-whitted-raytracer/pkg/core"

// ShadowMode selects how light visibility is tested
type ShadowMode int

const (
	// HardShadows casts a single shadow ray per light
	HardShadows ShadowMode = iota
	// SoftShadows treats each light as a small sphere and averages several shadow rays
	SoftShadows
)

// String returns the flag name of the shadow mode
func (m ShadowMode) String() string {
	switch m {
	case HardShadows:
		return "hard"
	case SoftShadows:
		return "soft"
	default:
		return "unknown"
	}
}

// ParseShadowMode converts "hard" or "soft" to a ShadowMode
func ParseShadowMode(s string) (ShadowMode, bool) {
	switch s {
	case "hard":
		return HardShadows, true
	case "soft":
		return SoftShadows, true
	default:
		return HardShadows, false
	}
}

// DepthOfFieldConfig controls the synthetic aperture
type DepthOfFieldConfig struct {
	Enabled       bool
	RayCount      int     // Rays averaged per pixel
	FocalDistance float64 // Distance of the focal plane along the camera forward axis
	Amount        float64 // Half-width of the square aperture
}

// Config contains rendering configuration
type Config struct {
	Bounces    int           // Reflection bounce budget for primary rays
	Epsilon    float64       // Offset along the normal for spawned rays
	Background core.ColorRGB // Radiance of rays that escape the scene
	ViewOrigin core.Vec3     // Eye position used for specular highlights

	Shadows        ShadowMode
	ShadowRayCount int     // Shadow rays per light in soft shadow mode
	LightRadius    float64 // Radius of the sphere a soft-shadowed light is spread over

	DepthOfField DepthOfFieldConfig
	ToneMapper   ToneMapper

	TileSize   int   // Size of each square tile
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
	Seed       int64 // Base seed for the per-tile random streams
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Bounces:        2,
		Epsilon:        1e-4,
		Background:     core.Gray(0.001),
		ViewOrigin:     core.NewVec3(0, 0, 0),
		Shadows:        HardShadows,
		ShadowRayCount: 10,
		LightRadius:    0.4,
		DepthOfField: DepthOfFieldConfig{
			Enabled:       false,
			RayCount:      50,
			FocalDistance: 3.51805,
			Amount:        0.2,
		},
		ToneMapper: DefaultToneMapper(),
		TileSize:   64,
		NumWorkers: 0,
		Seed:       42,
	}
}
