package renderer

import (
	"image"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of camera rays traced
	AverageSamples float64       // Average camera rays per pixel
	TilesRendered  int           // Number of tiles completed
	Elapsed        time.Duration // Wall-clock time of the render
}

// Merge adds the counts from another set of statistics
func (rs *RenderStats) Merge(other RenderStats) {
	rs.TotalPixels += other.TotalPixels
	rs.TotalSamples += other.TotalSamples
	rs.TilesRendered += other.TilesRendered
	rs.finalize()
}

// finalize recalculates derived statistics
func (rs *RenderStats) finalize() {
	if rs.TotalPixels == 0 {
		rs.AverageSamples = 0
		return
	}
	rs.AverageSamples = float64(rs.TotalSamples) / float64(rs.TotalPixels)
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an
// 8-bit image, with channels scaled to [0, 1]
func CalculateAverageLuminance(img *image.RGBA) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			total += 0.2126*float64(c.R)/255 + 0.7152*float64(c.G)/255 + 0.0722*float64(c.B)/255
		}
	}

	return total / float64(pixels)
}
