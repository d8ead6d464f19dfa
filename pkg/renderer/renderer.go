package renderer

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync"

	"github.com/pmellor/go-pathtracer/pkg/core"
	"github.com/pmellor/go-pathtracer/pkg/geometry"
)

// Config contains rendering configuration
type Config struct {
	Width           int     // Image width in pixels
	AspectRatio     float64 // Width / height; the height is derived
	SamplesPerPixel int     // Number of rays per pixel
	MaxDepth        int     // Maximum ray bounce depth
	NumWorkers      int     // Number of parallel workers (0 = use CPU count)
	Seed            int64   // Base random seed; worker k uses Seed + k
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           400,
		AspectRatio:     16.0 / 9.0,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		NumWorkers:      0,
		Seed:            42,
	}
}

// ImageHeight derives the image height from the width and aspect ratio
func (c Config) ImageHeight() int {
	height := int(float64(c.Width) / c.AspectRatio)
	if height < 1 {
		height = 1
	}
	return height
}

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Renderer partitions the image across a fixed worker pool and aggregates
// samples per pixel into a pixel buffer
type Renderer struct {
	scene    Scene
	camera   *geometry.Camera
	config   Config
	progress *Progress
	logger   core.Logger
}

// NewRenderer creates a renderer for the given scene and camera
func NewRenderer(scene Scene, camera *geometry.Camera, config Config, logger core.Logger) *Renderer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Renderer{
		scene:    scene,
		camera:   camera,
		config:   config,
		progress: NewProgress(config.Width * config.ImageHeight()),
		logger:   logger,
	}
}

// Progress returns the progress tracker. Safe to poll while Render runs.
func (r *Renderer) Progress() *Progress {
	return r.progress
}

// Render runs the full render to completion and returns the pixel buffer.
// The image is split into one contiguous band of rows per worker, assigned
// statically at dispatch; each worker owns its band of the buffer outright
// and uses its own deterministically seeded random stream.
func (r *Renderer) Render() *PixelBuffer {
	width := r.config.Width
	height := r.config.ImageHeight()
	buffer := NewPixelBuffer(width, height)

	numWorkers := r.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > height {
		numWorkers = height
	}

	r.progress.begin()
	r.logger.Printf("Rendering %dx%d at %d samples/pixel with %d workers...\n",
		width, height, r.config.SamplesPerPixel, numWorkers)

	var wg sync.WaitGroup
	for workerID := 0; workerID < numWorkers; workerID++ {
		rowStart := workerID * height / numWorkers
		rowEnd := (workerID + 1) * height / numWorkers

		wg.Add(1)
		go func(workerID, rowStart, rowEnd int) {
			defer wg.Done()
			random := rand.New(rand.NewSource(r.config.Seed + int64(workerID)))
			r.renderRows(buffer, rowStart, rowEnd, random)
		}(workerID, rowStart, rowEnd)
	}
	wg.Wait()

	r.logger.Printf("Rendered %d pixels (%d samples) in %v\n",
		r.progress.Completed(),
		r.progress.Completed()*r.config.SamplesPerPixel,
		r.progress.Elapsed())

	return buffer
}

// renderRows renders the half-open row range [rowStart, rowEnd) into the
// worker's exclusive region of the buffer
func (r *Renderer) renderRows(buffer *PixelBuffer, rowStart, rowEnd int, random *rand.Rand) {
	raytracer := NewRaytracer(r.scene)
	width := buffer.Width
	height := buffer.Height
	invSamples := 1.0 / float64(r.config.SamplesPerPixel)

	for j := rowStart; j < rowEnd; j++ {
		for i := 0; i < width; i++ {
			colorAccum := core.Vec3{}

			for sample := 0; sample < r.config.SamplesPerPixel; sample++ {
				// Jitter within the pixel footprint; t=1 is the top of the
				// viewport while row 0 is the top of the image
				s := (float64(i) + random.Float64()) / float64(width)
				t := (float64(height-1-j) + random.Float64()) / float64(height)

				ray := r.camera.GetRay(s, t, random)
				colorAccum = colorAccum.Add(raytracer.RayColor(ray, r.config.MaxDepth, random))
			}

			red, green, blue := quantizeColor(colorAccum.Multiply(invSamples))
			buffer.SetRGB(i, j, red, green, blue)
			r.progress.increment()
		}
	}
}
