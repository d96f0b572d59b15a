package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// options holds the parsed command line flags
type options struct {
	sceneName   string
	width       int
	height      int
	bounces     int
	shadows     string
	shadowRays  int
	lightRadius float64
	dof         bool
	dofRays     int
	focal       float64
	dofAmount   float64
	workers     int
	seed        int64
	output      string
}

func main() {
	defaults := renderer.DefaultConfig()

	var opts options
	flag.StringVar(&opts.sceneName, "scene", "default", "Scene name ("+strings.Join(scene.BuiltInSceneNames(), ", ")+") or path to a .json scene file")
	flag.IntVar(&opts.width, "width", 0, "Image width (0 = scene default)")
	flag.IntVar(&opts.height, "height", 0, "Image height (0 = scene default)")
	flag.IntVar(&opts.bounces, "bounces", -1, "Reflection bounces (-1 = scene default)")
	flag.StringVar(&opts.shadows, "shadows", "hard", "Shadow mode: 'hard' or 'soft'")
	flag.IntVar(&opts.shadowRays, "shadow-rays", defaults.ShadowRayCount, "Shadow rays per light for soft shadows")
	flag.Float64Var(&opts.lightRadius, "light-radius", defaults.LightRadius, "Light radius for soft shadows")
	flag.BoolVar(&opts.dof, "dof", false, "Enable depth of field")
	flag.IntVar(&opts.dofRays, "dof-rays", defaults.DepthOfField.RayCount, "Rays per pixel for depth of field")
	flag.Float64Var(&opts.focal, "focal", defaults.DepthOfField.FocalDistance, "Focal plane distance")
	flag.Float64Var(&opts.dofAmount, "dof-amount", defaults.DepthOfField.Amount, "Aperture half-width")
	flag.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.Int64Var(&opts.seed, "seed", defaults.Seed, "Random seed for soft shadows and depth of field")
	flag.StringVar(&opts.output, "output", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Whitted Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Built-in scenes:")
	for _, name := range scene.BuiltInSceneNames() {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println()
	fmt.Println("Scene files are loaded from scenes/<name>.json or a direct .json path.")
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
}

func run(opts options) error {
	fmt.Println("Starting Whitted Raytracer...")

	s, err := createScene(opts.sceneName)
	if err != nil {
		return err
	}

	fmt.Printf("Loaded scene %s: %d primitives, %d lights\n", s.Name, s.GetPrimitiveCount(), len(s.Lights))

	width, height, config, err := buildConfig(opts, s.RenderSettings)
	if err != nil {
		return err
	}

	raytracer := renderer.NewRaytracer(s, width, height, config, renderer.NewDefaultLogger())
	img, _, err := raytracer.Render(context.Background())
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	fmt.Printf("Average luminance: %.3f\n", renderer.CalculateAverageLuminance(img))

	filename := opts.output
	if filename == "" {
		filename = outputPath(s.Name, time.Now())
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("error saving PNG: %w", err)
	}

	fmt.Printf("Render saved as %s\n", filename)
	return nil
}

// createScene loads a built-in scene or a JSON scene file
func createScene(name string) (*scene.Scene, error) {
	s, err := scene.Load(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene %q: %w", name, err)
	}
	return s, nil
}

// buildConfig merges the scene's render settings with command line overrides
func buildConfig(opts options, settings scene.RenderSettings) (int, int, renderer.Config, error) {
	config := renderer.DefaultConfig()

	width, height := settings.Width, settings.Height
	if opts.width > 0 {
		width = opts.width
	}
	if opts.height > 0 {
		height = opts.height
	}
	if width <= 0 || height <= 0 {
		return 0, 0, config, fmt.Errorf("image size must be positive, got %dx%d", width, height)
	}

	config.Bounces = settings.Bounces
	if opts.bounces >= 0 {
		config.Bounces = opts.bounces
	}

	shadows, ok := renderer.ParseShadowMode(opts.shadows)
	if !ok {
		return 0, 0, config, fmt.Errorf("unknown shadow mode %q (expected 'hard' or 'soft')", opts.shadows)
	}
	config.Shadows = shadows
	config.ShadowRayCount = opts.shadowRays
	config.LightRadius = opts.lightRadius

	config.DepthOfField.Enabled = opts.dof
	config.DepthOfField.RayCount = opts.dofRays
	config.DepthOfField.FocalDistance = opts.focal
	config.DepthOfField.Amount = opts.dofAmount

	config.NumWorkers = opts.workers
	config.Seed = opts.seed

	return width, height, config, nil
}

// outputPath returns the timestamped PNG path for a scene
func outputPath(sceneName string, now time.Time) string {
	dir := strings.ReplaceAll(sceneName, string(filepath.Separator), "_")
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", dir, fmt.Sprintf("render_%s.png", timestamp))
}
