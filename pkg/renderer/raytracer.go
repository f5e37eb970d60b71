package renderer

import (
	"errors"
	"fmt"
	"image"
	"runtime"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// ErrInvalidConfig is returned for render settings that cannot produce an image
var ErrInvalidConfig = errors.New("invalid render config")

// Config contains rendering configuration
type Config struct {
	Width           int                       // Image width in pixels
	Height          int                       // Image height in pixels
	SamplesPerPixel int                       // Number of rays averaged per pixel
	MaxDepth        int                       // Maximum ray bounce depth
	NumWorkers      int                       // Number of parallel workers (0 = use CPU count)
	Seed            int64                     // Base seed; each row draws from its own stream
	Background      integrator.Background     // Radiance for rays that escape the scene
	Policy          integrator.EmissionPolicy // How emitting surfaces combine emission and scattering
	Logger          core.Logger               // Logger for rendering output (nil = silent)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		NumWorkers:      0, // Auto-detect CPU count
		Seed:            42,
		Background:      integrator.NewSkyGradient(),
		Policy:          integrator.EmissionTerminates,
		Logger:          NewDefaultLogger(),
	}
}

// Validate reports the first setting that cannot be rendered
func (c Config) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidConfig, c.Width)
	case c.Height <= 0:
		return fmt.Errorf("%w: height must be positive, got %d", ErrInvalidConfig, c.Height)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples per pixel must be positive, got %d", ErrInvalidConfig, c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: max depth must not be negative, got %d", ErrInvalidConfig, c.MaxDepth)
	case c.NumWorkers < 0:
		return fmt.Errorf("%w: worker count must not be negative, got %d", ErrInvalidConfig, c.NumWorkers)
	}
	return nil
}

// workers returns the configured worker count, defaulting to the CPU count
func (c Config) workers() int {
	if c.NumWorkers <= 0 {
		return runtime.NumCPU()
	}
	return c.NumWorkers
}

// Raytracer renders a world through a camera.
// The world and camera are shared read-only by all workers.
type Raytracer struct {
	config     Config
	camera     *Camera
	world      integrator.World
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer validates the configuration and creates a raytracer
func NewRaytracer(config Config, camera *Camera, world integrator.World) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if camera == nil {
		return nil, fmt.Errorf("%w: camera is required", ErrInvalidCamera)
	}
	if world == nil {
		return nil, fmt.Errorf("%w: world is required", ErrInvalidConfig)
	}

	logger := config.Logger
	if logger == nil {
		logger = core.NopLogger{}
	}

	return &Raytracer{
		config:     config,
		camera:     camera,
		world:      world,
		integrator: integrator.NewPathTracer(config.Background, config.Policy),
		logger:     logger,
	}, nil
}

// Render renders the full image and returns row-major RGB triples, top row first
func (rt *Raytracer) Render() ([]byte, RenderStats) {
	start := time.Now()

	bands := Bands(rt.config.Height, rt.config.workers())
	stats := RenderStats{
		Width:           rt.config.Width,
		Height:          rt.config.Height,
		Bands:           len(bands),
		Workers:         len(bands),
		SamplesPerPixel: rt.config.SamplesPerPixel,
		MaxDepth:        rt.config.MaxDepth,
	}
	rt.logger.Printf("Rendering %dx%d at %d spp in %d bands\n",
		stats.Width, stats.Height, stats.SamplesPerPixel, stats.Bands)

	pool := NewWorkerPool(rt, stats.Workers, len(bands))
	pool.Start()
	for _, band := range bands {
		pool.SubmitTask(BandTask{Band: band, TaskID: band.Index})
	}
	pool.Stop()

	// Workers finish in any order; reassemble by band index
	results := make([][]byte, len(bands))
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		results[result.TaskID] = result.Pixels
	}

	pixels := make([]byte, 0, 3*rt.config.Width*rt.config.Height)
	for _, bandPixels := range results {
		pixels = append(pixels, bandPixels...)
	}

	stats.Duration = time.Since(start)
	rt.logger.Printf("Render complete: %s\n", stats)

	return pixels, stats
}

// RenderBand renders the rows of one band
func (rt *Raytracer) RenderBand(band Band) []byte {
	pixels := make([]byte, 0, 3*rt.config.Width*band.Rows())
	for row := band.StartRow; row < band.EndRow; row++ {
		pixels = rt.renderRow(row, pixels)
	}
	return pixels
}

// renderRow appends one row of pixels. Every row has its own random stream,
// so the result does not depend on how rows are grouped into bands.
func (rt *Raytracer) renderRow(row int, pixels []byte) []byte {
	sampler := core.NewSeededSampler(rt.config.Seed, int64(row))
	for i := 0; i < rt.config.Width; i++ {
		r, g, b := ColorToBytes(rt.RenderPixel(i, row, sampler))
		pixels = append(pixels, r, g, b)
	}
	return pixels
}

// RenderPixel returns the averaged linear color of pixel (i, j), with j = 0 the top row
func (rt *Raytracer) RenderPixel(i, j int, sampler core.Sampler) core.Vec3 {
	width := float64(rt.config.Width)
	height := float64(rt.config.Height)
	flipped := float64(rt.config.Height - 1 - j)

	colorAccum := core.Vec3{}
	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		// Jitter within the pixel
		s := (float64(i) + sampler.Get1D()) / width
		t := (flipped + sampler.Get1D()) / height

		ray := rt.camera.GetRay(s, t, sampler)
		colorAccum = colorAccum.Add(rt.integrator.Resolve(ray, rt.world, rt.config.MaxDepth, sampler))
	}

	return colorAccum.Multiply(1.0 / float64(rt.config.SamplesPerPixel))
}

// Render renders world through camera and returns width·height RGB triples, row-major, top row first.
// It only fails on invalid settings, before any work starts.
func Render(config Config, camera *Camera, world integrator.World) ([]byte, error) {
	rt, err := NewRaytracer(config, camera, world)
	if err != nil {
		return nil, err
	}
	pixels, _ := rt.Render()
	return pixels, nil
}

// RenderImage renders like Render and wraps the result in an image
func RenderImage(config Config, camera *Camera, world integrator.World) (*image.RGBA, error) {
	pixels, err := Render(config, camera, world)
	if err != nil {
		return nil, err
	}
	return PixelsToImage(config.Width, config.Height, pixels), nil
}
