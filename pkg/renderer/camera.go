package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// DefaultFOV is the horizontal field of view in degrees
const DefaultFOV = 45.0

// Camera is a pinhole camera at the world origin looking down +Z.
// The image plane sits at z = 1.
type Camera struct {
	width, height int
	origin        core.Vec3
	forward       core.Vec3
	planeWidth    float64
	planeHeight   float64
	xStep, yStep  float64
}

// NewCamera creates a camera for a width x height image
func NewCamera(width, height int) *Camera {
	aspectRatio := float64(width) / float64(height)
	planeWidth := 2 * math.Tan(DefaultFOV*math.Pi/180.0/2)
	planeHeight := planeWidth / aspectRatio

	return &Camera{
		width:       width,
		height:      height,
		origin:      core.NewVec3(0, 0, 0),
		forward:     core.NewVec3(0, 0, 1),
		planeWidth:  planeWidth,
		planeHeight: planeHeight,
		xStep:       planeWidth / float64(width),
		yStep:       planeHeight / float64(height),
	}
}

// CastRay returns the primary ray through the centre of pixel (x, y).
// Pixel (0, 0) is the top-left corner of the image.
func (c *Camera) CastRay(x, y int) core.Ray {
	xPos := (c.xStep-c.planeWidth)/2 + float64(x)*c.xStep
	yPos := (c.planeHeight-c.yStep)/2 - float64(y)*c.yStep

	direction := core.NewVec3(xPos, yPos, 1).Normalize()
	return core.NewRay(c.origin, direction)
}

// Origin returns the camera position
func (c *Camera) Origin() core.Vec3 {
	return c.origin
}

// Forward returns the viewing direction
func (c *Camera) Forward() core.Vec3 {
	return c.forward
}
