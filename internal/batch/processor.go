// Package batch renders a turntable frame sequence with a worker pool.
// Each worker owns a whole framebuffer, so the closer-wins depth contract
// holds without any locking.
package batch

import (
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/go-gl/mathgl/mgl32"

	"planet-renderer/internal/camera"
	"planet-renderer/internal/geometry"
	"planet-renderer/internal/mathutil"
	"planet-renderer/internal/noise"
	"planet-renderer/internal/raster"
	"planet-renderer/internal/render"
	"planet-renderer/internal/shader"
)

// Config holds all shared resources for a batch run. Everything here is
// read-only once Run starts.
type Config struct {
	OutputDir  string
	Width      int
	Height     int
	Frames     int
	OrbitTurns float64
	Workers    int
	Wireframe  bool
	Surface    shader.Surface
	Verts      []geometry.Vertex
	Noise      noise.Source
	Backdrop   *image.NRGBA
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int     `json:"frame"`
	File    string  `json:"file"`
	Yaw     float64 `json:"yaw"`
	Success bool    `json:"-"`
	Error   string  `json:"-"`
}

// Run renders all frames using a worker pool and returns one result per
// frame, in frame order.
func Run(cfg Config) []Result {
	total := cfg.Frames
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for frame := range frameChan {
				results[frame] = renderFrame(cfg, frame)
				processed.Add(1)
			}
		}()
	}

	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

// RenderOne renders a single frame of the turntable into a fresh
// framebuffer, without encoding it.
func RenderOne(cfg Config, frame int) *raster.Framebuffer {
	yaw := 2 * math.Pi * cfg.OrbitTurns * float64(frame) / float64(cfg.Frames)

	cam := camera.New(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	cam.Orbit(float32(yaw), 0)

	aspect := float32(cfg.Width) / float32(cfg.Height)
	uniforms := &shader.Uniforms{
		Model:      mathutil.ModelMatrix(mgl32.Vec3{}, 1, mgl32.Vec3{}),
		View:       cam.ViewMatrix(),
		Projection: mathutil.ProjectionMatrix(mgl32.DegToRad(45), aspect, 0.1, 100),
		Viewport:   mathutil.ViewportMatrix(float32(cfg.Width), float32(cfg.Height)),
		Time:       float32(frame),
		Noise:      cfg.Noise,
	}

	fb := raster.NewFramebuffer(cfg.Width, cfg.Height)
	if cfg.Backdrop != nil {
		fb.Fill(cfg.Backdrop)
	}

	if cfg.Wireframe {
		render.Wireframe(fb, cfg.Verts, uniforms)
	} else {
		render.Frame(fb, cfg.Verts, uniforms, cfg.Surface)
	}
	return fb
}

func renderFrame(cfg Config, frame int) Result {
	yaw := 2 * math.Pi * cfg.OrbitTurns * float64(frame) / float64(cfg.Frames)
	fb := RenderOne(cfg, frame)

	name := fmt.Sprintf("frame_%04d.webp", frame)
	outPath := filepath.Join(cfg.OutputDir, name)
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return Result{Frame: frame, Yaw: yaw, Error: err.Error()}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return Result{Frame: frame, Yaw: yaw, Error: err.Error()}
	}
	defer f.Close()

	if err := nativewebp.Encode(f, fb.NRGBA(), nil); err != nil {
		return Result{Frame: frame, Yaw: yaw, Error: fmt.Sprintf("WebP encode: %v", err)}
	}

	return Result{Frame: frame, File: name, Yaw: yaw, Success: true}
}
