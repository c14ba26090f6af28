package pass

import (
	"runtime"
	"sync"

	"deferred-surface/internal/mathutil"
)

// Target holds a full-screen pass's output as flat slices for cache
// locality. Discarded pixels keep the cleared color/depth and are
// marked false in Covered.
type Target struct {
	Width   int
	Height  int
	Color   []uint8   // RGBA interleaved, len = W*H*4
	Depth   []float32 // output depth per pixel, cleared to 1
	Covered []bool    // false where the invocation discarded
}

// NewTarget allocates a target cleared to transparent black and far depth.
func NewTarget(w, h int) *Target {
	n := w * h
	depth := make([]float32, n)
	for i := range depth {
		depth[i] = 1
	}
	return &Target{
		Width:   w,
		Height:  h,
		Color:   make([]uint8, n*4),
		Depth:   depth,
		Covered: make([]bool, n),
	}
}

// Shader is one pass invocation: given the pixel's uv it returns a
// color in [0,1] per channel, the pixel's output depth, and ok=false to
// discard (no output is written for that pixel). Invocations run
// concurrently and must not share mutable state.
type Shader func(uv mathutil.Vec2) (color mathutil.Vec4, depth float64, ok bool)

// Run executes the shader once per pixel of the target, uv sampled at
// pixel centers. Rows are distributed over a worker pool; the result is
// identical for any worker count. workers <= 0 means NumCPU.
func Run(t *Target, shader Shader, workers int) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > t.Height {
		workers = t.Height
	}

	rows := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				shadeRow(t, shader, y)
			}
		}()
	}

	for y := 0; y < t.Height; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()
}

func shadeRow(t *Target, shader Shader, y int) {
	v := (float64(y) + 0.5) / float64(t.Height)
	for x := 0; x < t.Width; x++ {
		u := (float64(x) + 0.5) / float64(t.Width)
		color, depth, ok := shader(mathutil.Vec2{u, v})
		if !ok {
			continue
		}
		i := y*t.Width + x
		t.Color[i*4] = clamp8(color[0])
		t.Color[i*4+1] = clamp8(color[1])
		t.Color[i*4+2] = clamp8(color[2])
		t.Color[i*4+3] = clamp8(color[3])
		t.Depth[i] = float32(depth)
		t.Covered[i] = true
	}
}

func clamp8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
