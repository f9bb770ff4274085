package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"planet-renderer/internal/backdrop"
	"planet-renderer/internal/batch"
	"planet-renderer/internal/config"
	"planet-renderer/internal/noise"
	"planet-renderer/internal/objfile"
	"planet-renderer/internal/shader"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	model := flag.String("model", "", "Path to OBJ model (required unless set in config)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	surfaceName := flag.String("shader", "", fmt.Sprintf("Surface shader: %s (default: earth)", strings.Join(shader.Names(), ", ")))
	frames := flag.Int("frames", 0, "Number of turntable frames (default: 36)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	seed := flag.Int64("seed", 0, "Noise seed")
	background := flag.String("background", "", "Optional backdrop image (png/jpeg/tga)")
	wireframe := flag.Bool("wireframe", false, "Render wireframe edges instead of filled triangles")
	pngOut := flag.String("png", "", "Render a single frame to this PNG file instead of a sequence")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	cfg.Resolve(config.Flags{
		ModelPath:  *model,
		OutputDir:  *outputDir,
		Background: *background,
		Shader:     *surfaceName,
		Frames:     *frames,
		Workers:    *workers,
		NoiseSeed:  *seed,
		Wireframe:  *wireframe,
	})

	if cfg.ModelPath == "" {
		fmt.Fprintln(os.Stderr, "Error: no model. Use -model or set \"model\" in config.json.")
		os.Exit(1)
	}

	verts, err := objfile.Load(cfg.ModelPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading model: %v\n", err)
		os.Exit(1)
	}
	if len(verts) == 0 {
		fmt.Fprintln(os.Stderr, "Error: model has no faces.")
		os.Exit(1)
	}

	surface, err := shader.Lookup(cfg.Shader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var bg *image.NRGBA
	if cfg.Background != "" {
		bg, err = backdrop.Load(cfg.Background, cfg.Width, cfg.Height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	batchCfg := batch.Config{
		OutputDir:  cfg.OutputDir,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Frames:     cfg.Frames,
		OrbitTurns: cfg.OrbitTurn,
		Workers:    cfg.Workers,
		Wireframe:  cfg.Wireframe,
		Surface:    surface,
		Verts:      verts,
		Noise:      noise.NewSimplex(cfg.NoiseSeed),
		Backdrop:   bg,
	}

	if *pngOut != "" {
		if err := renderSingle(batchCfg, *pngOut); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *pngOut)
		return
	}

	fmt.Printf("Planet renderer → WebP sequence\n")
	fmt.Printf("Model: %s (%d triangles), Shader: %s\n", cfg.ModelPath, len(verts)/3, cfg.Shader)
	fmt.Printf("Frames: %d, Workers: %d\n", cfg.Frames, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	results := batch.Run(batchCfg)
	elapsed := time.Since(start)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	success, failed := 0, 0
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			fmt.Fprintf(os.Stderr, "  frame %d: %s\n", r.Frame, r.Error)
		}
	}
	fmt.Printf("Rendered: %d/%d\n", success, cfg.Frames)

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, cfg.Shader, batchCfg, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// renderSingle renders frame 0 in-process and writes it as PNG.
func renderSingle(cfg batch.Config, path string) error {
	fb := batch.RenderOne(cfg, 0)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, fb.NRGBA())
}
