package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/pmellor/go-pathtracer/pkg/geometry"
	"github.com/pmellor/go-pathtracer/pkg/renderer"
	"github.com/pmellor/go-pathtracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "cover", "Scene type: 'cover' or 'wide'")
	sceneFile := flag.String("scene-file", "", "Load a JSON scene description instead of a built-in scene")
	width := flag.Int("width", 400, "Image width in pixels")
	aspectRatio := flag.Float64("aspect", 16.0/9.0, "Aspect ratio (width/height)")
	samples := flag.Int("samples", 100, "Samples per pixel")
	maxDepth := flag.Int("depth", 50, "Maximum ray bounce depth")
	numWorkers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	seed := flag.Int64("seed", 42, "Base random seed")
	output := flag.String("out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Path Tracer")
		fmt.Println("Usage: pathtracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  cover - Three feature spheres over a field of random small spheres")
		fmt.Println("  wide  - Two spheres filling a 90 degree viewport")
		return
	}

	config := renderer.DefaultConfig()
	config.Width = *width
	config.AspectRatio = *aspectRatio
	config.SamplesPerPixel = *samples
	config.MaxDepth = *maxDepth
	config.NumWorkers = *numWorkers
	config.Seed = *seed

	selectedScene, sceneName, err := buildScene(*sceneType, *sceneFile, config.AspectRatio, config.Seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	camera := geometry.NewCamera(selectedScene.CameraConfig)
	r := renderer.NewRenderer(selectedScene, camera, config, renderer.NewDefaultLogger())

	// Poll the progress counter on a ticker and redraw a status line
	stopProgress := startProgressDisplay(r.Progress())
	buffer := r.Render()
	stopProgress()

	outputPath := *output
	if outputPath == "" {
		outputDir := filepath.Join("output", sceneName)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
			os.Exit(1)
		}
		timestamp := time.Now().Format("20060102_150405")
		outputPath = filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	}

	if err := writePNG(outputPath, buffer); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", outputPath)
}

// buildScene selects a built-in scene or loads one from a JSON description
func buildScene(sceneType, sceneFile string, aspectRatio float64, seed int64) (*scene.Scene, string, error) {
	if sceneFile != "" {
		desc, err := scene.Load(sceneFile)
		if err != nil {
			return nil, "", err
		}
		s, err := desc.Build(aspectRatio)
		if err != nil {
			return nil, "", fmt.Errorf("build scene %s: %w", sceneFile, err)
		}
		name := filepath.Base(sceneFile)
		return s, name[:len(name)-len(filepath.Ext(name))], nil
	}

	switch sceneType {
	case "cover":
		return scene.NewCoverScene(aspectRatio, seed), "cover", nil
	case "wide":
		return scene.NewWideAngleScene(aspectRatio), "wide", nil
	default:
		return nil, "", fmt.Errorf("unknown scene type %q", sceneType)
	}
}

// startProgressDisplay redraws a single status line twice a second until the
// returned stop function is called
func startProgressDisplay(progress *renderer.Progress) func() {
	ticker := time.NewTicker(500 * time.Millisecond)
	done := make(chan struct{})

	printLine := func() {
		completed := progress.Completed()
		total := progress.Total()
		percent := 100.0 * float64(completed) / float64(total)
		fmt.Printf("\r%8s  %d / %d pixels (%.1f%%)",
			progress.Elapsed().Round(time.Second), completed, total, percent)
	}

	go func() {
		for {
			select {
			case <-ticker.C:
				printLine()
			case <-done:
				return
			}
		}
	}()

	return func() {
		ticker.Stop()
		close(done)
		printLine()
		fmt.Println()
	}
}

func writePNG(path string, buffer *renderer.PixelBuffer) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, buffer.ToImage()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
