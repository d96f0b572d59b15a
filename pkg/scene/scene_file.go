package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// SceneFile is the JSON representation of a scene
type SceneFile struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Group       string       `json:"group,omitempty"`
	Width       int          `json:"width,omitempty"`
	Height      int          `json:"height,omitempty"`
	Bounces     *int         `json:"bounces,omitempty"`
	Ambient     [3]float64   `json:"ambientLight"`
	Objects     []ObjectSpec `json:"objects"`
	Lights      []LightSpec  `json:"lights"`
}

// ObjectSpec describes a sphere or a plane. Phong coefficients that are
// left out take the shape's defaults.
type ObjectSpec struct {
	Type         string     `json:"type"` // "sphere" or "plane"
	Position     [3]float64 `json:"position"`
	Radius       float64    `json:"radius,omitempty"`
	Normal       [3]float64 `json:"normal,omitempty"`
	Colour       [3]float64 `json:"colour"`
	KD           *float64   `json:"kD,omitempty"`
	KS           *float64   `json:"kS,omitempty"`
	Alpha        *float64   `json:"alpha,omitempty"`
	Reflectivity *float64   `json:"reflectivity,omitempty"`
}

// LightSpec describes a point light
type LightSpec struct {
	Position  [3]float64 `json:"position"`
	Colour    [3]float64 `json:"colour"`
	Intensity float64    `json:"intensity"`
}

// LoadSceneFile reads and builds a scene from a JSON file
func LoadSceneFile(filename string) (*Scene, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	s, err := ReadScene(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", filename, err)
	}

	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return s, nil
}

// ReadScene decodes a JSON scene description and builds the scene
func ReadScene(r io.Reader) (*Scene, error) {
	var sf SceneFile
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&sf); err != nil {
		return nil, fmt.Errorf("invalid scene JSON: %w", err)
	}
	return sf.Build()
}

// Build validates the description and constructs the scene
func (sf SceneFile) Build() (*Scene, error) {
	s := NewScene(sf.Name, toColor(sf.Ambient))

	if sf.Width < 0 || sf.Height < 0 {
		return nil, fmt.Errorf("image size must be positive, got %dx%d", sf.Width, sf.Height)
	}
	if sf.Width > 0 {
		s.RenderSettings.Width = sf.Width
	}
	if sf.Height > 0 {
		s.RenderSettings.Height = sf.Height
	}
	if sf.Bounces != nil {
		if *sf.Bounces < 0 {
			return nil, fmt.Errorf("bounces must not be negative, got %d", *sf.Bounces)
		}
		s.RenderSettings.Bounces = *sf.Bounces
	}

	for i, obj := range sf.Objects {
		shape, err := obj.build()
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		s.Objects = append(s.Objects, shape)
	}

	for i, light := range sf.Lights {
		if light.Intensity < 0 {
			return nil, fmt.Errorf("light %d: intensity must not be negative, got %f", i, light.Intensity)
		}
		s.AddPointLight(toVec(light.Position), toColor(light.Colour), light.Intensity)
	}

	return s, nil
}

func (o ObjectSpec) build() (geometry.Shape, error) {
	switch strings.ToLower(o.Type) {
	case "sphere":
		if o.Radius <= 0 {
			return nil, fmt.Errorf("sphere radius must be positive, got %f", o.Radius)
		}
		surface := o.surface(geometry.Surface{
			KD:           geometry.SphereKD,
			KS:           geometry.SphereKS,
			Alpha:        geometry.SphereAlpha,
			Reflectivity: geometry.SphereReflectivity,
		})
		return geometry.NewSphereWithSurface(toVec(o.Position), o.Radius, surface), nil
	case "plane":
		normal := toVec(o.Normal)
		if normal.LengthSquared() == 0 {
			return nil, fmt.Errorf("plane normal must not be zero")
		}
		surface := o.surface(geometry.Surface{
			KD:           geometry.PlaneKD,
			KS:           geometry.PlaneKS,
			Alpha:        geometry.PlaneAlpha,
			Reflectivity: geometry.PlaneReflectivity,
		})
		return geometry.NewPlaneWithSurface(toVec(o.Position), normal, surface), nil
	default:
		return nil, fmt.Errorf("unknown object type %q", o.Type)
	}
}

// surface fills in the explicitly given coefficients over the defaults
func (o ObjectSpec) surface(defaults geometry.Surface) geometry.Surface {
	surface := defaults
	surface.Colour = toColor(o.Colour)
	if o.KD != nil {
		surface.KD = *o.KD
	}
	if o.KS != nil {
		surface.KS = *o.KS
	}
	if o.Alpha != nil {
		surface.Alpha = *o.Alpha
	}
	if o.Reflectivity != nil {
		surface.Reflectivity = max(0, min(1, *o.Reflectivity))
	}
	return surface
}

func toVec(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

func toColor(c [3]float64) core.ColorRGB {
	return core.NewColorRGB(c[0], c[1], c[2])
}
