package server

import (
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType,omitempty"`
	ObjectIndex  int                    `json:"objectIndex"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Surface      map[string]interface{} `json:"surface,omitempty"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
	Radiance     [3]float64             `json:"radiance"` // Linear colour before tone mapping
	Display      [3]float64             `json:"display"`  // Tone-mapped colour
}

// InspectResult contains information about the object hit by an inspection ray
type InspectResult struct {
	Hit         geometry.RaycastHit
	ObjectIndex int // Position of the hit object in the scene, -1 on a miss
	Radiance    core.ColorRGB
	Display     core.ColorRGB
}

// inspectPixel casts the primary ray through a pixel centre and reports the
// first object hit along with the pixel's rendered colour
func inspectPixel(sceneObj *scene.Scene, req *RenderRequest, pixelX, pixelY int) InspectResult {
	raytracer := renderer.NewRaytracer(sceneObj, req.Width, req.Height, req.Config, nil)

	ray := raytracer.Camera().CastRay(pixelX, pixelY)
	hit := sceneObj.FindClosestIntersection(ray)

	// Same value the full render writes for this pixel
	radiance := raytracer.ReplayPixel(pixelX, pixelY)

	result := InspectResult{
		Hit:         hit,
		ObjectIndex: -1,
		Radiance:    radiance,
		Display:     req.Config.ToneMapper.Map(radiance),
	}
	for i, object := range sceneObj.Objects {
		if object == hit.Object {
			result.ObjectIndex = i
			break
		}
	}
	return result
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = vecArray(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.Plane:
		properties["point"] = vecArray(geom.Point)
		properties["normal"] = vecArray(geom.Normal)
		return "plane", properties

	default:
		return "unknown", properties
	}
}

// extractSurfaceInfo reports the Phong coefficients of a surface
func extractSurfaceInfo(surface geometry.Surface) map[string]interface{} {
	return map[string]interface{}{
		"colour":       colorArray(surface.Colour),
		"kD":           surface.KD,
		"kS":           surface.KS,
		"alpha":        surface.Alpha,
		"reflectivity": surface.Reflectivity,
	}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	sceneObj, req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	// Parse pixel coordinates
	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	// Validate pixel coordinates
	if pixelX < 0 || pixelX >= req.Width || pixelY < 0 || pixelY >= req.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	result := inspectPixel(sceneObj, req, pixelX, pixelY)

	response := InspectResponse{
		Hit:         result.Hit.Hit(),
		ObjectIndex: result.ObjectIndex,
		Radiance:    colorArray(result.Radiance),
		Display:     colorArray(result.Display),
	}
	if response.Hit {
		response.GeometryType, response.Properties = extractGeometryInfo(result.Hit.Object)
		response.Surface = extractSurfaceInfo(result.Hit.Object.Surface())
		response.Point = vecArray(result.Hit.Location)
		response.Normal = vecArray(result.Hit.Normal)
		response.Distance = result.Hit.Distance
	}

	writeJSON(w, http.StatusOK, response)
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func colorArray(c core.ColorRGB) [3]float64 {
	return [3]float64{c.R, c.G, c.B}
}
