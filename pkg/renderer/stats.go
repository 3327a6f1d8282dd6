package renderer

import (
	"image"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/integrator"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	HitPixels        int           // Pixels whose ray hit at least one surface
	EscapedPixels    int           // Pixels whose ray left the scene
	TotalSteps       int           // March steps over all pixels
	AverageSteps     float64       // Average march steps per pixel
	MaxStepsUsed     int           // Most steps taken by any pixel
	TotalBounces     int           // Surface hits over all pixels
	AverageLuminance float64       // Mean relative luminance of the output, in [0,1]
	Duration         time.Duration // Wall-clock render time
}

// addPixel folds one pixel's march into the stats
func (rs *RenderStats) addPixel(ms integrator.MarchStats) {
	rs.TotalPixels++
	rs.TotalSteps += ms.Steps
	rs.TotalBounces += ms.Bounces
	if ms.Hit {
		rs.HitPixels++
	}
	if ms.Escaped {
		rs.EscapedPixels++
	}
	if ms.Steps > rs.MaxStepsUsed {
		rs.MaxStepsUsed = ms.Steps
	}
}

// merge adds other's counters into rs
func (rs *RenderStats) merge(other RenderStats) {
	rs.TotalPixels += other.TotalPixels
	rs.HitPixels += other.HitPixels
	rs.EscapedPixels += other.EscapedPixels
	rs.TotalSteps += other.TotalSteps
	rs.TotalBounces += other.TotalBounces
	if other.MaxStepsUsed > rs.MaxStepsUsed {
		rs.MaxStepsUsed = other.MaxStepsUsed
	}
}

// finalize computes the derived averages
func (rs *RenderStats) finalize(img image.Image, elapsed time.Duration) {
	if rs.TotalPixels > 0 {
		rs.AverageSteps = float64(rs.TotalSteps) / float64(rs.TotalPixels)
	}
	rs.AverageLuminance = CalculateAverageLuminance(img)
	rs.Duration = elapsed
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of img
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	count := bounds.Dx() * bounds.Dy()
	if count == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 0xffff
		}
	}

	return total / float64(count)
}
