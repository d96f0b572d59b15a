package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Scene interface to avoid circular imports
type Scene interface {
	FindClosestIntersection(ray core.Ray) geometry.RaycastHit
	AmbientLighting() core.ColorRGB
	PointLights() []lights.Light
}

// Tracer resolves the colour carried back along a ray. It holds no mutable
// state, so one Tracer can be shared by any number of goroutines as long as
// each passes its own Sampler.
type Tracer struct {
	scene  Scene
	config Config
}

// NewTracer creates a tracer for the scene
func NewTracer(scene Scene, config Config) *Tracer {
	return &Tracer{
		scene:  scene,
		config: config,
	}
}

// Trace returns the linear radiance arriving along ray. Surfaces with a
// non-zero reflectivity spawn a mirror ray while bouncesLeft > 0, and the
// two contributions are blended as direct*(1-k) + reflected*k.
func (t *Tracer) Trace(ray core.Ray, bouncesLeft int, sampler core.Sampler) core.ColorRGB {
	hit := t.scene.FindClosestIntersection(ray)
	if !hit.Hit() {
		return t.config.Background
	}

	direct := t.Illuminate(hit.Object, hit.Location, hit.Normal, sampler)

	reflectivity := hit.Object.Surface().Reflectivity
	if bouncesLeft <= 0 || reflectivity == 0 {
		return direct
	}

	reflectedRay := t.ReflectedRay(ray, hit)
	reflected := t.Trace(reflectedRay, bouncesLeft-1, sampler)

	return direct.Scale(1.0 - reflectivity).Add(reflected.Scale(reflectivity))
}

// ReflectedRay returns the mirror bounce of ray at hit, offset off the surface
func (t *Tracer) ReflectedRay(ray core.Ray, hit geometry.RaycastHit) core.Ray {
	// ReflectIn expects a vector pointing away from the surface
	direction := ray.Direction.Negate().ReflectIn(hit.Normal).Normalize()
	return core.NewRay(t.offsetOrigin(hit.Location, hit.Normal), direction)
}

// Illuminate computes the Phong shading of object at point p with normal n:
// ambient plus, for every light, diffuse and specular terms weighted by the
// fraction of shadow rays that reach the light.
func (t *Tracer) Illuminate(object geometry.Shape, p, n core.Vec3, sampler core.Sampler) core.ColorRGB {
	surface := object.Surface()

	// Ambient term is added unconditionally
	colour := surface.Colour.MultiplyColor(t.scene.AmbientLighting())

	view := t.config.ViewOrigin.Subtract(p).Normalize()

	for _, light := range t.scene.PointLights() {
		toLight := light.Position().Subtract(p)
		distanceToLight := toLight.Length()
		l := toLight.Normalize()
		r := l.ReflectIn(n).Normalize()

		intensity := light.IlluminationAt(distanceToLight)

		diffuse := surface.Colour.
			Scale(surface.KD * math.Max(0, n.Dot(l))).
			MultiplyColor(intensity)
		specular := light.Colour().
			Scale(surface.KS * math.Pow(math.Max(0, r.Dot(view)), surface.Alpha)).
			MultiplyColor(intensity)

		visibility := t.lightVisibility(light, p, n, l, distanceToLight, sampler)
		if visibility == 0 {
			continue
		}

		colour = colour.Add(diffuse.Add(specular).Scale(visibility))
	}

	return colour
}

// lightVisibility returns the fraction of shadow rays from p that reach the light
func (t *Tracer) lightVisibility(light lights.Light, p, n, l core.Vec3, distanceToLight float64, sampler core.Sampler) float64 {
	origin := t.offsetOrigin(p, n)

	if t.config.Shadows != SoftShadows {
		if t.unoccluded(core.NewRay(origin, l), distanceToLight) {
			return 1
		}
		return 0
	}

	count := max(1, t.config.ShadowRayCount)
	toLight := light.Position().Subtract(p)

	unoccluded := 0
	for i := 0; i < count; i++ {
		// Jitter the light position over a sphere of LightRadius
		offset := core.SamplePointInUnitSphere(sampler.Get3D()).Multiply(t.config.LightRadius)
		direction := toLight.Add(offset).Normalize()

		if t.unoccluded(core.NewRay(origin, direction), distanceToLight) {
			unoccluded++
		}
	}

	return float64(unoccluded) / float64(count)
}

// unoccluded reports whether nothing lies along the shadow ray before the light
func (t *Tracer) unoccluded(shadowRay core.Ray, distanceToLight float64) bool {
	hit := t.scene.FindClosestIntersection(shadowRay)
	return math.IsInf(hit.Distance, 1) || hit.Distance > distanceToLight
}

// offsetOrigin moves p off the surface to stop rays re-hitting it
func (t *Tracer) offsetOrigin(p, n core.Vec3) core.Vec3 {
	return p.Add(n.Multiply(t.config.Epsilon))
}
