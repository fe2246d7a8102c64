package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang/glog"
	"golang.org/x/xerrors"

	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/renderer"
	"github.com/df07/go-raytracer-core/pkg/scene"
)

// glogLogger routes renderer progress to glog
type glogLogger struct{}

func (glogLogger) Printf(format string, args ...interface{}) {
	glog.InfoDepth(1, fmt.Sprintf(format, args...))
}

// options holds everything a render needs from the command line
type options struct {
	sceneType string
	width     int
	samples   int
	depth     int
	format    string
	out       string
	seed      int64
}

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene to render (see -help)")
	width := flag.Int("width", 0, "Image width in pixels, 0 for the scene default")
	samples := flag.Int("samples", 0, "Samples per pixel, 0 for the scene default")
	depth := flag.Int("depth", 0, "Maximum ray bounce depth, 0 for the scene default")
	format := flag.String("format", renderer.FormatPNG, "Output format: png or ppm")
	out := flag.String("out", "", "Output file, defaults to output/<scene>/render_<timestamp>.<format>")
	seed := flag.Int64("seed", 42, "Random seed")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()
	defer glog.Flush()

	if *help {
		printHelp()
		return
	}

	opts := options{
		sceneType: *sceneType,
		width:     *width,
		samples:   *samples,
		depth:     *depth,
		format:    *format,
		out:       *out,
		seed:      *seed,
	}

	if err := run(opts, glogLogger{}, time.Now()); err != nil {
		glog.Errorf("Render failed: %v", err)
		glog.Flush()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-8s - %s\n", info.Name, info.Description)
	}
}

// run renders the selected scene and writes it to disk
func run(opts options, logger core.Logger, now time.Time) error {
	s, err := createScene(opts)
	if err != nil {
		return err
	}

	camera := s.Camera
	imageWidth, imageHeight := camera.ImageSize()

	logger.Printf("Rendering scene %q at %dx%d", opts.sceneType, imageWidth, imageHeight)
	s.LogObjects(logger)

	raytracer := renderer.NewRaytracer(s, imageWidth, imageHeight)
	raytracer.SetSamplingConfig(s.SamplingConfig)
	raytracer.SetSampler(core.NewSeededSampler(opts.seed))
	raytracer.SetLogger(logger)

	startTime := time.Now()
	img, stats := raytracer.RenderPass()
	logger.Printf("Render completed in %v (%d samples)", time.Since(startTime), stats.TotalSamples)

	path := opts.out
	if path == "" {
		path = outputPath(opts.sceneType, opts.format, now)
	}
	if err := renderer.SaveImage(path, opts.format, img); err != nil {
		return xerrors.Errorf("writing render: %w", err)
	}

	logger.Printf("Render saved as %s", path)
	return nil
}

// createScene builds the named scene and applies command line overrides
func createScene(opts options) (*scene.Scene, error) {
	s, err := scene.ByName(opts.sceneType)
	if err != nil {
		return nil, err
	}

	if opts.width > 0 {
		s.CameraConfig.Width = opts.width
		s.Camera = renderer.NewCamera(s.CameraConfig)
	}
	if opts.samples > 0 {
		s.SamplingConfig.SamplesPerPixel = opts.samples
	}
	if opts.depth > 0 {
		s.SamplingConfig.MaxDepth = opts.depth
	}

	return s, nil
}

// outputPath returns output/<scene>/render_<timestamp>.<format>
func outputPath(sceneType, format string, now time.Time) string {
	filename := fmt.Sprintf("render_%s.%s", now.Format("20060102_150405"), format)
	return filepath.Join("output", sceneType, filename)
}
