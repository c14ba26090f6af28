package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"deferred-surface/internal/gbufio"
	"deferred-surface/internal/mathutil"
	"deferred-surface/internal/surface"
)

// inspect loads a G-buffer dump produced by `render -dump`, prints
// per-layer statistics, and optionally decodes one pixel. World
// positions are only meaningful when -fov/-orbit match the flags the
// dump was rendered with.
func main() {
	dir := flag.String("dir", "", "G-buffer dump directory (required)")
	px := flag.Int("x", -1, "Pixel x to decode")
	py := flag.Int("y", -1, "Pixel y to decode (requires -x)")
	fov := flag.Float64("fov", 60, "Camera FOV the dump was rendered with, degrees")
	orbit := flag.Float64("orbit", 0, "Camera orbit the dump was rendered with, degrees")
	flag.Parse()

	if *dir == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect -dir <dump> [-x N -y N]")
		os.Exit(1)
	}

	gb, depth, err := gbufio.Load(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("G-buffer: %dx%d, %d layers + depth\n", gb.Width, gb.Height, len(gb.Layers))

	// Coverage and depth range
	covered := 0
	dMin, dMax := math.Inf(1), math.Inf(-1)
	for _, d := range depth.Layers[0] {
		dd := float64(d)
		if dd > surface.FarDepth {
			continue
		}
		covered++
		if dd < dMin {
			dMin = dd
		}
		if dd > dMax {
			dMax = dd
		}
	}
	total := gb.Width * gb.Height
	fmt.Printf("Covered: %d/%d texels (%.1f%%)\n", covered, total, 100*float64(covered)/float64(total))
	if covered > 0 {
		fmt.Printf("Depth range: [%.6f, %.6f]\n", dMin, dMax)
	}

	if *px < 0 || *py < 0 {
		return
	}
	if *px >= gb.Width || *py >= gb.Height {
		fmt.Fprintf(os.Stderr, "Error: pixel (%d,%d) outside %dx%d\n", *px, *py, gb.Width, gb.Height)
		os.Exit(1)
	}

	eye := mathutil.RotY(mathutil.Deg2Rad(*orbit)).MulPoint(mathutil.Vec3{4.5, 3.5, 6.5})
	viewM := mathutil.LookAt(eye, mathutil.Vec3{0, 1, 0}, mathutil.Vec3{0, 1, 0})
	proj := mathutil.Perspective(mathutil.Deg2Rad(*fov), 1, 0.1, 100)
	vp := mathutil.Mat4Mul(proj, viewM)

	dec := &surface.Decoder{
		GBuffer:               gb,
		DepthMap:              depth,
		ViewProjectionInverse: vp.Inverse(),
	}

	uv := mathutil.Vec2{
		(float64(*px) + 0.5) / float64(gb.Width),
		(float64(*py) + 0.5) / float64(gb.Height),
	}

	r0, g0, b0, a0 := gb.Texel(0, *px, *py)
	r1, g1, b1, a1 := gb.Texel(1, *px, *py)
	fmt.Printf("\nPixel (%d,%d):\n", *px, *py)
	fmt.Printf("  Layer 0 (albedo+diffuse):  [%3d %3d %3d %3d]\n", r0, g0, b0, a0)
	fmt.Printf("  Layer 1 (normal+specular): [%3d %3d %3d %3d]\n", r1, g1, b1, a1)
	fmt.Printf("  Device depth: %.6f\n", depth.At(0, *px, *py))

	s, d, ok := dec.SurfaceAt(uv)
	if !ok {
		fmt.Printf("  Discarded (depth %.6f > %.5f, no geometry)\n", d, surface.FarDepth)
		return
	}
	fmt.Printf("  Position:  (%.4f, %.4f, %.4f)\n", s.Position[0], s.Position[1], s.Position[2])
	fmt.Printf("  Normal:    (%.4f, %.4f, %.4f)\n", s.Normal[0], s.Normal[1], s.Normal[2])
	fmt.Printf("  Color:     (%.4f, %.4f, %.4f, %.1f)\n", s.Color[0], s.Color[1], s.Color[2], s.Color[3])
	fmt.Printf("  Diffuse:   %.4f\n", s.DiffuseIntensity)
	fmt.Printf("  Specular:  intensity %.4f, power %.0f (packed 0x%02X)\n",
		s.SpecularIntensity, s.SpecularPower, a1)
}
