package renderer

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"time"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/log"
)

const (
	// Lower bound for secondary hits, avoids self-intersection (shadow acne)
	shadowAcneEpsilon = 0.001

	// Flat fraction of light kept on every bounce
	bounceAttenuation = 0.1
)

var (
	skyWhite = core.NewVec3(1.0, 1.0, 1.0)
	skyBlue  = core.NewVec3(0.5, 0.7, 1.0)
)

var logger = log.New("renderer")

// ImageSink receives the rendered image: a header, then width*height
// pixels in row-major order from the top-left corner
type ImageSink interface {
	WriteHeader(width, height int) error
	WritePixel(px core.RGB) error
}

// RenderOptions controls how a render is scheduled
type RenderOptions struct {
	Workers int   // Rows rendered in parallel (0 = use CPU count, 1 = sequential)
	Seed    int64 // Base seed; every row derives its own generator from it
}

// DefaultRenderOptions returns sensible default values
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Workers: 0,
		Seed:    42,
	}
}

// RayColor estimates the light arriving along ray. On a hit it scatters a
// new ray from the hit point and keeps 10% of what that ray gathers; on a
// miss it returns the sky gradient. A negative depth returns black.
func RayColor(ray core.Ray, depth int, world geometry.Hittable, random *rand.Rand) core.Color {
	if depth < 0 {
		return core.Color{}
	}

	if hit, isHit := world.Hit(ray, core.NewInterval(shadowAcneEpsilon, math.Inf(1))); isHit {
		direction := core.RandomOnHemisphere(hit.Normal, random).Add(core.RandomUnitVector(random))
		scattered := core.NewRay(hit.Point, direction)
		return RayColor(scattered, depth-1, world, random).Multiply(bounceAttenuation)
	}

	return BackgroundColor(ray)
}

// BackgroundColor blends white (looking down) into sky blue (looking up)
func BackgroundColor(ray core.Ray) core.Color {
	unitDirection := ray.Direction.UnitVector()
	a := 0.5 * (unitDirection.Y + 1.0)
	return skyWhite.Lerp(skyBlue, a)
}

// Raytracer renders a world through a camera
type Raytracer struct {
	camera  *Camera
	world   geometry.Hittable
	options RenderOptions
}

// NewRaytracer creates a new raytracer
func NewRaytracer(camera *Camera, world geometry.Hittable, options RenderOptions) *Raytracer {
	return &Raytracer{
		camera:  camera,
		world:   world,
		options: options,
	}
}

// Camera returns the camera used for rendering
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// SamplePixel traces SamplesPerPixel jittered rays through pixel (i, j)
func (rt *Raytracer) SamplePixel(i, j int, random *rand.Rand) PixelStats {
	var ps PixelStats
	for sample := 0; sample < rt.camera.SamplesPerPixel(); sample++ {
		ray := rt.camera.GetRay(i, j, random)
		ps.AddSample(RayColor(ray, rt.camera.MaxDepth(), rt.world, random))
	}
	return ps
}

// RenderRow renders row j using a generator seeded from (Seed, j), so the
// result does not depend on which worker renders it
func (rt *Raytracer) RenderRow(j int) RowResult {
	random := rand.New(rand.NewSource(rowSeed(rt.options.Seed, j)))
	width := rt.camera.ImageWidth()

	result := RowResult{
		Row:    j,
		Pixels: make([]core.RGB, width),
	}
	for i := 0; i < width; i++ {
		ps := rt.SamplePixel(i, j, random)
		result.Pixels[i] = core.ToRGB(ps.ColorAccum.Multiply(rt.camera.PixelSamplesScale()))
		result.Samples += ps.SampleCount
		result.Variance += ps.MeanVariance()
	}
	return result
}

// Render traces every pixel and streams the image to sink in row-major
// order. Rows may be computed in parallel but are always written in order.
// A sink error aborts the render.
func (rt *Raytracer) Render(ctx context.Context, sink ImageSink, progress Progress) (RenderStats, error) {
	if sink == nil {
		return RenderStats{}, ErrNilSink
	}
	if progress == nil {
		progress = NopProgress{}
	}

	width, height := rt.camera.ImageWidth(), rt.camera.ImageHeight()
	workers := rt.numWorkers()
	stats := newRenderStats(rt.camera, workers)

	logger.Infof("rendering %dx%d, %d samples per pixel, max depth %d, %d workers",
		width, height, rt.camera.SamplesPerPixel(), rt.camera.MaxDepth(), workers)

	startTime := time.Now()
	if err := sink.WriteHeader(width, height); err != nil {
		return stats, fmt.Errorf("renderer: write header: %w", err)
	}
	progress.Start(width * height)

	emit := func(row RowResult) error {
		for _, px := range row.Pixels {
			if err := sink.WritePixel(px); err != nil {
				return fmt.Errorf("renderer: write pixel in row %d: %w", row.Row, err)
			}
			progress.Increment()
		}
		stats.addRow(row)
		logger.Debugf("row %d/%d written", row.Row+1, height)
		return nil
	}

	var err error
	if workers == 1 {
		err = rt.renderSequential(ctx, emit)
	} else {
		err = rt.renderParallel(ctx, workers, emit)
	}
	if err != nil {
		return stats, err
	}

	stats.finalize(time.Since(startTime))
	progress.Finish("Image created")
	return stats, nil
}

func (rt *Raytracer) renderSequential(ctx context.Context, emit func(RowResult) error) error {
	for j := 0; j < rt.camera.ImageHeight(); j++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := emit(rt.RenderRow(j)); err != nil {
			return err
		}
	}
	return nil
}

func (rt *Raytracer) renderParallel(ctx context.Context, workers int, emit func(RowResult) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	height := rt.camera.ImageHeight()
	pool := NewWorkerPool(rt, height, workers)
	pool.Start(ctx)
	logger.Debugf("worker pool started with %d workers", pool.GetNumWorkers())
	for j := 0; j < height; j++ {
		pool.SubmitTask(RowTask{Row: j})
	}
	pool.Stop()

	// Rows finish out of order; hold them until every earlier row is written
	pending := make(map[int]RowResult)
	next := 0
	var renderErr error
	for result, ok := pool.GetResult(); ok; result, ok = pool.GetResult() {
		if renderErr != nil {
			continue
		}
		if result.Err != nil {
			renderErr = result.Err
			cancel()
			continue
		}

		pending[result.Row] = result
		for row, found := pending[next]; found; row, found = pending[next] {
			delete(pending, next)
			if err := emit(row); err != nil {
				renderErr = err
				cancel()
				break
			}
			next++
		}
	}

	return renderErr
}

func (rt *Raytracer) numWorkers() int {
	workers := rt.options.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return min(workers, rt.camera.ImageHeight())
}

// rowSeed mixes the base seed with the row index
func rowSeed(seed int64, row int) int64 {
	return int64(uint64(seed) ^ (uint64(row)+1)*0x9E3779B97F4A7C15)
}
