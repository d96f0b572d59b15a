package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Raytracer renders whole frames of a scene
type Raytracer struct {
	scene  Scene
	tracer *Tracer
	camera *Camera
	width  int
	height int
	config Config
	logger core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, width, height int, config Config, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Raytracer{
		scene:  scene,
		tracer: NewTracer(scene, config),
		camera: NewCamera(width, height),
		width:  width,
		height: height,
		config: config,
		logger: logger,
	}
}

// Tracer returns the tracer used for every camera ray
func (rt *Raytracer) Tracer() *Tracer {
	return rt.tracer
}

// Camera returns the camera generating primary rays
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// raysPerPixel returns how many camera rays each pixel traces
func (rt *Raytracer) raysPerPixel() int {
	if rt.config.DepthOfField.Enabled {
		return max(1, rt.config.DepthOfField.RayCount)
	}
	return 1
}

// RenderPixel returns the linear, un-tonemapped colour of pixel (x, y)
func (rt *Raytracer) RenderPixel(x, y int, sampler core.Sampler) core.ColorRGB {
	ray := rt.camera.CastRay(x, y)
	if !rt.config.DepthOfField.Enabled {
		return rt.tracer.Trace(ray, rt.config.Bounces, sampler)
	}
	return rt.depthOfField(ray, sampler)
}

// ReplayPixel returns the linear colour Render produces for pixel (x, y).
// Soft shadows and depth of field draw from the tile's random stream, so
// the pixels before (x, y) in its tile are traced again to reach the same
// position in that stream.
func (rt *Raytracer) ReplayPixel(x, y int) core.ColorRGB {
	p := image.Pt(x, y)
	for _, tile := range NewTileGrid(rt.width, rt.height, rt.config.TileSize, rt.config.Seed) {
		if !p.In(tile.Bounds) {
			continue
		}
		for ty := tile.Bounds.Min.Y; ty < tile.Bounds.Max.Y; ty++ {
			for tx := tile.Bounds.Min.X; tx < tile.Bounds.Max.X; tx++ {
				colour := rt.RenderPixel(tx, ty, tile.Sampler)
				if tx == x && ty == y {
					return colour
				}
			}
		}
	}
	// Outside the image: no tile stream to follow
	return rt.RenderPixel(x, y, core.NewSeededSampler(rt.config.Seed))
}

// depthOfField averages rays from random aperture points that all pass
// through the point where the primary ray meets the focal plane
func (rt *Raytracer) depthOfField(primary core.Ray, sampler core.Sampler) core.ColorRGB {
	dof := rt.config.DepthOfField

	s := dof.FocalDistance / rt.camera.Forward().Dot(primary.Direction)
	focalPoint := primary.At(s)

	count := rt.raysPerPixel()
	colorAccum := core.NewColorRGB(0, 0, 0)
	for i := 0; i < count; i++ {
		aperture := rt.camera.Origin().Add(core.SamplePointInSquare(sampler.Get2D(), dof.Amount))
		ray := core.NewRay(aperture, focalPoint.Subtract(aperture).Normalize())
		colorAccum = colorAccum.Add(rt.tracer.Trace(ray, rt.config.Bounces, sampler))
	}

	return colorAccum.Scale(1.0 / float64(count))
}

// RenderBounds renders pixels within the specified bounds into img
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, img *image.RGBA, sampler core.Sampler) RenderStats {
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			linear := rt.RenderPixel(x, y, sampler)
			img.SetRGBA(x, y, rt.config.ToneMapper.Map(linear).ToRGBA())
		}
	}

	pixels := bounds.Dx() * bounds.Dy()
	stats := RenderStats{
		TotalPixels:   pixels,
		TotalSamples:  pixels * rt.raysPerPixel(),
		TilesRendered: 1,
	}
	stats.finalize()
	return stats
}

// Render renders the full frame using the worker pool.
// Pixels are written row-major with (0, 0) at the top-left.
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	startTime := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))

	tiles := NewTileGrid(rt.width, rt.height, rt.config.TileSize, rt.config.Seed)
	if len(tiles) == 0 {
		return img, RenderStats{}, nil
	}

	workerPool := NewWorkerPool(rt, rt.config.NumWorkers, len(tiles))
	workerPool.Start()
	defer workerPool.Stop()

	rt.logger.Printf("Rendering %dx%d with %d bounces, %s shadows (%d tiles, %d workers)...\n",
		rt.width, rt.height, rt.config.Bounces, rt.config.Shadows, len(tiles), workerPool.GetNumWorkers())

	for taskID, tile := range tiles {
		workerPool.SubmitTask(TileTask{
			Ctx:    ctx,
			Tile:   tile,
			TaskID: taskID,
			Image:  img,
		})
	}

	var stats RenderStats
	nextReport := 10
	for i := 0; i < len(tiles); i++ {
		result, ok := workerPool.GetResult()
		if !ok {
			return nil, RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Error != nil {
			return nil, RenderStats{}, fmt.Errorf("tile %d: %w", result.TaskID, result.Error)
		}
		stats.Merge(result.Stats)

		percent := 100 * (i + 1) / len(tiles)
		if percent >= nextReport || i == len(tiles)-1 {
			rt.logger.Printf("%.2f%% completed\n", 100*float64(i+1)/float64(len(tiles)))
			nextReport = percent/10*10 + 10
		}
	}

	stats.Elapsed = time.Since(startTime)
	rt.logger.Printf("Render completed in %v (%.1f rays/pixel)\n", stats.Elapsed, stats.AverageSamples)

	return img, stats, nil
}
