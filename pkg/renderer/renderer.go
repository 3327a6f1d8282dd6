package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/imageio"
	"github.com/df07/go-sphere-tracer/pkg/integrator"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Renderer turns a scene seen through a pinhole camera into a framebuffer
type Renderer struct {
	scene      core.Scene
	camera     *geometry.Pinhole
	integrator integrator.Integrator
	config     core.TraceConfig
	logger     core.Logger
}

// NewRenderer creates a renderer that marches one ray per pixel
func NewRenderer(scene core.Scene, camera *geometry.Pinhole, config core.TraceConfig, logger core.Logger) *Renderer {
	marcher := integrator.NewSphereMarcher(config)
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Renderer{
		scene:      scene,
		camera:     camera,
		integrator: marcher,
		config:     marcher.Config(),
		logger:     logger,
	}
}

// PixelUV maps a pixel to sensor coordinates. Both axes are flipped because
// the pinhole inverts the image on the sensor.
func PixelUV(row, col, rows, cols int) (u, v float64) {
	u = 1 - (float64(col)+0.5)/float64(cols)
	v = 1 - (float64(row)+0.5)/float64(rows)
	return u, v
}

// TracePixel computes the colour of one pixel. It reads only shared
// immutable state and can run on any goroutine.
func (r *Renderer) TracePixel(row, col int) (core.Vec3, integrator.MarchStats) {
	sensor := r.camera.Sensor
	u, v := PixelUV(row, col, sensor.Rows, sensor.Cols)
	return r.integrator.RayColor(r.camera.Ray(u, v), r.scene)
}

// renderRow traces every pixel of one row into dst
func (r *Renderer) renderRow(row int, dst []imageio.RGB8, stats *RenderStats) {
	for col := range dst {
		color, ms := r.TracePixel(row, col)
		dst[col] = vec3ToRGB8(color)
		stats.addPixel(ms)
	}
}

// Render traces every pixel of the camera's sensor. Cancelling ctx stops the
// render between rows and returns the context's error.
func (r *Renderer) Render(ctx context.Context) (*imageio.Framebuffer, RenderStats, error) {
	tracer := otel.Tracer("go-sphere-tracer/renderer")
	var span trace.Span
	ctx, span = tracer.Start(ctx, "Renderer.Render")
	defer span.End()

	sensor := r.camera.Sensor
	span.SetAttributes(
		attribute.Int("rows", sensor.Rows),
		attribute.Int("cols", sensor.Cols),
		attribute.Int("max_steps", r.config.MaxSteps),
	)

	start := time.Now()
	fb := imageio.NewFramebuffer(sensor.Rows, sensor.Cols)
	rowStats := make([]RenderStats, sensor.Rows)

	pool := NewRowPool(r.config.Workers)
	r.logger.Printf("Rendering %dx%d with %d workers...\n", sensor.Cols, sensor.Rows, pool.Workers())

	err := pool.Run(ctx, sensor.Rows, func(row int) {
		r.renderRow(row, fb.Row(row), &rowStats[row])
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render cancelled")
		return nil, RenderStats{}, fmt.Errorf("while rendering rows: %w", err)
	}

	var stats RenderStats
	for _, rs := range rowStats {
		stats.merge(rs)
	}
	stats.finalize(fb, time.Since(start))

	span.SetAttributes(
		attribute.Int("hit_pixels", stats.HitPixels),
		attribute.Int("total_steps", stats.TotalSteps),
	)
	r.logger.Printf("Render completed in %v (%d/%d pixels hit, %.1f avg steps, %d max)\n",
		stats.Duration, stats.HitPixels, stats.TotalPixels, stats.AverageSteps, stats.MaxStepsUsed)

	return fb, stats, nil
}

// vec3ToRGB8 scales a linear colour to 8 bits per channel, clamping to [0, 255]
func vec3ToRGB8(colorVec core.Vec3) imageio.RGB8 {
	colorVec = core.Clamp(colorVec, 0.0, 1.0)

	return imageio.RGB8{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
	}
}
