package renderer

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/integrator"
	"github.com/df07/go-raycaster/pkg/scene"
)

// ProgressFunc is called after every finished row with the number of rows done so far
type ProgressFunc func(rowsDone, totalRows int)

// Raytracer handles the rendering process
type Raytracer struct {
	scene      *scene.Scene
	camera     *geometry.Camera
	integrator integrator.Integrator
	width      int
	height     int
	workers    int
	logger     core.Logger
	progress   ProgressFunc
}

// NewRaytracer creates a new raytracer. The camera aspect ratio follows the image size.
func NewRaytracer(s *scene.Scene, width, height int) *Raytracer {
	cameraConfig := geometry.MergeCameraConfig(s.CameraConfig, geometry.CameraConfig{
		AspectRatio: float64(width) / float64(height),
	})

	return &Raytracer{
		scene:      s,
		camera:     geometry.NewCamera(cameraConfig),
		integrator: integrator.NewWhittedIntegrator(integrator.DefaultConfig()),
		width:      width,
		height:     height,
		workers:    runtime.NumCPU(),
		logger:     core.NopLogger{},
	}
}

// SetWorkers sets the number of parallel workers; 1 renders rows sequentially
func (rt *Raytracer) SetWorkers(workers int) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	rt.workers = workers
}

// SetIntegrator replaces the integrator used for every pixel
func (rt *Raytracer) SetIntegrator(integ integrator.Integrator) {
	rt.integrator = integ
}

// SetLogger sets the logger for render start and completion messages
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

// SetProgressCallback registers a function called once per finished row
func (rt *Raytracer) SetProgressCallback(fn ProgressFunc) {
	rt.progress = fn
}

// Camera returns the camera used for primary rays
func (rt *Raytracer) Camera() *geometry.Camera {
	return rt.camera
}

// PixelRay maps pixel (x,y) to normalized device coordinates and builds its primary ray.
// Row 0 maps to the bottom of the view.
func (rt *Raytracer) PixelRay(x, y int) core.Ray {
	ndc := core.NewVec2(
		float64(x)/float64(rt.width)*2-1,
		float64(y)/float64(rt.height)*2-1,
	)
	return rt.camera.CreateRay(ndc)
}

// RenderPixel returns the final color of pixel (x,y)
func (rt *Raytracer) RenderPixel(x, y int) core.Vec3 {
	return rt.integrator.RayColor(rt.PixelRay(x, y), rt.scene)
}

// RenderRow renders row y into pixels, which must hold exactly width entries
func (rt *Raytracer) RenderRow(y int, pixels []core.Vec3) RowStats {
	stats := RowStats{Pixels: len(pixels)}
	for x := range pixels {
		color, hit := rt.integrator.ShadeRay(rt.PixelRay(x, y), rt.scene)
		if hit {
			stats.PrimaryHits++
		}
		pixels[x] = color
	}
	return stats
}

// Render produces the full frame. Cancelling ctx stops the render between rows.
func (rt *Raytracer) Render(ctx context.Context) (*core.Framebuffer, RenderStats, error) {
	if rt.width <= 0 || rt.height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("invalid image size %dx%d", rt.width, rt.height)
	}

	fb := core.NewFramebuffer(rt.width, rt.height)
	stats := RenderStats{Workers: rt.workers}
	start := time.Now()

	rt.logger.Printf("Rendering %q at %dx%d with %d workers\n", rt.scene.Name, rt.width, rt.height, rt.workers)

	var err error
	if rt.workers == 1 {
		err = rt.renderSequential(ctx, fb, &stats)
	} else {
		err = rt.renderParallel(ctx, fb, &stats)
	}
	stats.Duration = time.Since(start)
	if err != nil {
		rt.logger.Printf("Render cancelled after %d/%d rows: %v\n", stats.Rows, rt.height, err)
		return nil, stats, err
	}

	rt.logger.Printf("Render completed: %s\n", stats)
	return fb, stats, nil
}

// renderSequential renders rows in order on the calling goroutine
func (rt *Raytracer) renderSequential(ctx context.Context, fb *core.Framebuffer, stats *RenderStats) error {
	for y := 0; y < rt.height; y++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		stats.add(rt.RenderRow(y, fb.Row(y)))
		rt.reportProgress(stats.Rows)
	}
	return nil
}

// renderParallel hands every row to the worker pool and collects the results
func (rt *Raytracer) renderParallel(ctx context.Context, fb *core.Framebuffer, stats *RenderStats) error {
	pool := NewWorkerPool(rt, rt.workers, rt.height)
	pool.Start(ctx)

	for y := 0; y < rt.height; y++ {
		pool.SubmitTask(RowTask{Y: y, Pixels: fb.Row(y)})
	}

	var firstErr error
	for i := 0; i < rt.height; i++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			continue
		}
		stats.add(result.Stats)
		rt.reportProgress(stats.Rows)
	}
	pool.Stop()

	return firstErr
}

func (rt *Raytracer) reportProgress(rowsDone int) {
	if rt.progress != nil {
		rt.progress(rowsDone, rt.height)
	}
}
