package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/df07/go-raycaster/pkg/config"
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/output"
	"github.com/df07/go-raycaster/pkg/publish"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
)

// options are the resolved settings for one CLI render
type options struct {
	scene       string
	width       int
	height      int
	output      string
	workers     int
	preview     string
	previewSize int
	upload      bool
	s3          publish.Config
}

func main() {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Error loading configuration: %v", err)
	}

	// Parse command line flags; the environment supplies the defaults
	sceneType := flag.String("scene", cfg.Scene, "Scene name (default, mirror-hall, single-sphere) or path to a .json scene file")
	width := flag.Int("width", cfg.Width, "Image width in pixels (0 uses the scene's size)")
	height := flag.Int("height", cfg.Height, "Image height in pixels (0 uses the scene's size)")
	out := flag.String("out", cfg.Output, "Output file (.ppm, .ppm.gz, .ppm.zst or .ppm.sz)")
	workers := flag.Int("workers", cfg.Workers, "Number of parallel workers (0 = auto-detect CPU count, 1 = sequential)")
	preview := flag.String("preview", cfg.Preview, "Optional preview thumbnail path (.png or .jpg)")
	previewSize := flag.Int("preview-size", cfg.PreviewSize, "Longest edge of the preview thumbnail in pixels")
	upload := flag.Bool("upload", false, "Upload the rendered file to the configured S3 bucket")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	opts := options{
		scene:       *sceneType,
		width:       *width,
		height:      *height,
		output:      *out,
		workers:     *workers,
		preview:     *preview,
		previewSize: *previewSize,
		upload:      *upload,
		s3: publish.Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			Prefix:    cfg.S3Prefix,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, logger); err != nil {
		logger.Printf("Error: %v", err)
		stop()
		os.Exit(1)
	}
}

func showHelp() {
	fmt.Println("Ray Caster")
	fmt.Println("Usage: raycaster [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.Builtins() {
		fmt.Printf("  %-14s - %s\n", info.ID, info.Description)
	}
	fmt.Println("  <file>.json    - Scene description file")
	fmt.Println()
	fmt.Println("Settings can also come from RAYCAST_* environment variables or a .env file.")
}

// createScene resolves a scene name or .json path
func createScene(sceneType string) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("no scene given")
	}
	s, err := scene.Create(sceneType)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene %q: %w", sceneType, err)
	}
	return s, nil
}

// resolveSize applies explicit dimensions over the scene's recommended size
func resolveSize(s *scene.Scene, width, height int) (int, int) {
	if width <= 0 {
		width = s.RenderConfig.Width
	}
	if height <= 0 {
		height = s.RenderConfig.Height
	}
	return width, height
}

// run renders one image and writes, previews and uploads it as requested
func run(ctx context.Context, opts options, logger core.Logger) error {
	selectedScene, err := createScene(opts.scene)
	if err != nil {
		return err
	}
	width, height := resolveSize(selectedScene, opts.width, opts.height)

	var uploader *publish.Uploader
	if opts.upload {
		uploader, err = publish.NewUploader(opts.s3, logger)
		if err != nil {
			return err
		}
	}

	logger.Printf("Using %s scene (%d primitives, %d lights)\n",
		selectedScene.Name, selectedScene.GetPrimitiveCount(), len(selectedScene.Lights))

	raytracer := renderer.NewRaytracer(selectedScene, width, height)
	raytracer.SetWorkers(opts.workers)
	raytracer.SetLogger(logger)

	fb, _, err := raytracer.Render(ctx)
	if err != nil {
		return err
	}

	if err := output.WriteFile(opts.output, fb); err != nil {
		return err
	}
	logger.Printf("Render saved as %s (%s compression)\n", opts.output, output.CompressionFor(opts.output))

	if opts.preview != "" {
		if err := output.WritePreview(opts.preview, fb, opts.previewSize); err != nil {
			return err
		}
		logger.Printf("Preview saved as %s\n", opts.preview)
	}

	if uploader != nil {
		if _, err := uploader.UploadFile(ctx, opts.output); err != nil {
			return err
		}
	}
	return nil
}
