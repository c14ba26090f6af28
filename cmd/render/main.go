package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"time"

	"deferred-surface/internal/config"
	"deferred-surface/internal/debugview"
	"deferred-surface/internal/gbuffer"
	"deferred-surface/internal/gbufio"
	"deferred-surface/internal/mathutil"
	"deferred-surface/internal/pass"
	"deferred-surface/internal/postprocess"
	"deferred-surface/internal/scene"
	"deferred-surface/internal/surface"

	"github.com/HugoSmits86/nativewebp"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	size := flag.Int("size", 0, "Output image size in pixels (default: 512)")
	view := flag.String("view", "", "Debug view: color, position, normal, depth, diffuse, specular, power")
	orbit := flag.Float64("orbit", 0, "Camera orbit around the Y axis, degrees")
	output := flag.String("output", "", "Output WebP path (default: surface.webp)")
	quality := flag.Int("quality", 0, "WebP quality 1-100 (default: 90)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	dumpDir := flag.String("dump", "", "Also dump the raw G-buffer layers to this directory")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		OutputPath: *output,
		DumpDir:    *dumpDir,
		Size:       *size,
		DebugView:  *view,
		Quality:    *quality,
		Workers:    *workers,
	})

	viewType, err := debugview.Parse(cfg.DebugView)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	renderSize := cfg.RenderSize * cfg.Supersample

	fmt.Printf("Deferred surface preview → WebP (%s view)\n", viewType)
	fmt.Printf("Size: %d (x%d supersample), Workers: %d\n", cfg.RenderSize, cfg.Supersample, cfg.Workers)

	start := time.Now()

	// Geometry pass: fill the G-buffer from the demo scene
	vp := demoCamera(cfg.FOV, *orbit)
	gb := gbuffer.NewTextureArray(renderSize, renderSize, gbuffer.LayerCount)
	depth := gbuffer.NewDepthArray(renderSize, renderSize, 1)
	scene.Demo().FillGBuffer(gb, depth, vp)

	// Full-screen decode pass
	dec := &surface.Decoder{
		GBuffer:               gb,
		DepthMap:              depth,
		ViewProjectionInverse: vp.Inverse(),
	}
	dv := debugview.View{Type: viewType, PositionScale: 10}

	var shader pass.Shader
	if viewType == debugview.Color {
		shader = dec.ColorAt
	} else {
		shader = func(uv mathutil.Vec2) (mathutil.Vec4, float64, bool) {
			s, d, ok := dec.SurfaceAt(uv)
			if !ok {
				return mathutil.Vec4{}, d, false
			}
			return dv.Shade(s, d), d, true
		}
	}

	target := pass.NewTarget(renderSize, renderSize)
	pass.Run(target, shader, cfg.Workers)

	covered := 0
	for _, c := range target.Covered {
		if c {
			covered++
		}
	}

	img := &image.NRGBA{
		Pix:    target.Color,
		Stride: renderSize * 4,
		Rect:   image.Rect(0, 0, renderSize, renderSize),
	}
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.RenderSize)
	}
	img = postprocess.FlipVertical(img)

	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := nativewebp.Encode(f, img, nil); err != nil {
		f.Close()
		fmt.Fprintf(os.Stderr, "Error: WebP encode: %v\n", err)
		os.Exit(1)
	}
	f.Close()

	fmt.Printf("Covered: %d/%d pixels (%.1f%%)\n", covered, len(target.Covered),
		100*float64(covered)/float64(len(target.Covered)))
	fmt.Printf("Done in %.2fs → %s\n", time.Since(start).Seconds(), cfg.OutputPath)

	if cfg.DumpDir != "" {
		if err := gbufio.Dump(cfg.DumpDir, gb, depth); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: G-buffer dump failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("G-buffer dump: %s\n", cfg.DumpDir)
	}
}

// demoCamera builds the view-projection matrix the demo scene is framed
// for: a camera 8.5 units out, orbited around Y, looking at the sphere
// row. Square aspect.
func demoCamera(fovDeg, orbitDeg float64) mathutil.Mat4 {
	eye := mathutil.RotY(mathutil.Deg2Rad(orbitDeg)).MulPoint(mathutil.Vec3{4.5, 3.5, 6.5})
	viewM := mathutil.LookAt(eye, mathutil.Vec3{0, 1, 0}, mathutil.Vec3{0, 1, 0})
	proj := mathutil.Perspective(mathutil.Deg2Rad(fovDeg), 1, 0.1, 100)
	return mathutil.Mat4Mul(proj, viewM)
}
