package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Size limits for web renders
const (
	minImageSize = 1
	maxImageSize = 4000
	maxBounces   = 50
	maxRayCount  = 1000
)

// Server handles web requests for the raytracer
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene  string          // Scene name (built-in or scenes/<name>.json)
	Width  int             // Image width
	Height int             // Image height
	Config renderer.Config // Renderer configuration built from the query
}

// Stats represents render statistics
type Stats struct {
	TotalPixels      int     `json:"totalPixels"`
	TotalSamples     int     `json:"totalSamples"`
	AverageSamples   float64 `json:"averageSamples"`
	TilesRendered    int     `json:"tilesRendered"`
	ElapsedMs        int64   `json:"elapsedMs"`
	AverageLuminance float64 `json:"averageLuminance"` // Mean Rec. 709 luminance of the 8-bit output
}

func newStats(stats renderer.RenderStats, img *image.RGBA) Stats {
	return Stats{
		TotalPixels:      stats.TotalPixels,
		TotalSamples:     stats.TotalSamples,
		AverageSamples:   stats.AverageSamples,
		TilesRendered:    stats.TilesRendered,
		ElapsedMs:        stats.Elapsed.Milliseconds(),
		AverageLuminance: renderer.CalculateAverageLuminance(img),
	}
}

// Handler returns the HTTP handler serving the API
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/render-stream", s.handleRenderStream)
	mux.HandleFunc("/api/inspect", s.handleInspect)

	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in and file scenes grouped for the scene picker
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	response, err := scene.ListAllScenes()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// handleRender renders a full frame and responds with the PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	sceneObj, req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	raytracer := renderer.NewRaytracer(sceneObj, req.Width, req.Height, req.Config, nil)
	img, stats, err := raytracer.Render(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Render error: %v", err))
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// parseRenderRequest loads the requested scene and builds the render
// configuration. Parameters that are left out take the scene's settings or
// the renderer defaults.
func (s *Server) parseRenderRequest(r *http.Request) (*scene.Scene, *RenderRequest, error) {
	values := r.URL.Query()

	sceneObj, err := s.createScene(values.Get("scene"))
	if err != nil {
		return nil, nil, err
	}

	req := &RenderRequest{Scene: sceneObj.Name, Config: renderer.DefaultConfig()}
	config := &req.Config
	settings := sceneObj.RenderSettings

	// Parse and validate all parameters using helper functions
	if req.Width, err = parseIntParam(values, "width", settings.Width, minImageSize, maxImageSize); err != nil {
		return nil, nil, err
	}
	if req.Height, err = parseIntParam(values, "height", settings.Height, minImageSize, maxImageSize); err != nil {
		return nil, nil, err
	}
	if config.Bounces, err = parseIntParam(values, "bounces", settings.Bounces, 0, maxBounces); err != nil {
		return nil, nil, err
	}

	if value := values.Get("shadows"); value != "" {
		mode, ok := renderer.ParseShadowMode(value)
		if !ok {
			return nil, nil, fmt.Errorf("invalid shadows: %s", value)
		}
		config.Shadows = mode
	}
	if config.ShadowRayCount, err = parseIntParam(values, "shadowRays", config.ShadowRayCount, 1, maxRayCount); err != nil {
		return nil, nil, err
	}
	if config.LightRadius, err = parseFloatParam(values, "lightRadius", config.LightRadius, 0, 10); err != nil {
		return nil, nil, err
	}

	if value := values.Get("dof"); value != "" {
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid dof: %s", value)
		}
		config.DepthOfField.Enabled = enabled
	}
	if config.DepthOfField.RayCount, err = parseIntParam(values, "dofRays", config.DepthOfField.RayCount, 1, maxRayCount); err != nil {
		return nil, nil, err
	}
	if config.DepthOfField.FocalDistance, err = parseFloatParam(values, "focal", config.DepthOfField.FocalDistance, 0.01, 1000); err != nil {
		return nil, nil, err
	}
	if config.DepthOfField.Amount, err = parseFloatParam(values, "dofAmount", config.DepthOfField.Amount, 0, 10); err != nil {
		return nil, nil, err
	}

	seed, err := parseIntParam(values, "seed", int(config.Seed), 0, 1<<31-1)
	if err != nil {
		return nil, nil, err
	}
	config.Seed = int64(seed)

	// Performance warning
	rays := req.Width * req.Height
	if config.DepthOfField.Enabled {
		rays *= config.DepthOfField.RayCount
	}
	if rays > 50_000_000 {
		log.Printf("Render warning: %d camera rays may render slowly", rays)
	}

	return sceneObj, req, nil
}

// createScene resolves a built-in scene or a file in the scenes directory.
// Direct file paths are not accepted from the web.
func (s *Server) createScene(name string) (*scene.Scene, error) {
	if name == "" {
		name = "default"
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") || strings.HasSuffix(name, ".json") {
		return nil, fmt.Errorf("invalid scene name: %s", name)
	}
	return scene.Load(name)
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %f and %f, got: %f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
