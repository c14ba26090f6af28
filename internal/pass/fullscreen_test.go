package pass

import (
	"bytes"
	"testing"

	"deferred-surface/internal/mathutil"
)

// gradientShader discards the left half and shades the right half by uv.
func gradientShader(uv mathutil.Vec2) (mathutil.Vec4, float64, bool) {
	if uv[0] < 0.5 {
		return mathutil.Vec4{}, 1, false
	}
	return mathutil.Vec4{uv[0], uv[1], 0.25, 1}, uv[1], true
}

func TestRun_DiscardLeavesSlotEmpty(t *testing.T) {
	target := NewTarget(8, 8)
	Run(target, gradientShader, 1)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			i := y*8 + x
			covered := target.Covered[i]
			if x < 4 {
				if covered {
					t.Fatalf("(%d,%d) covered, want discarded", x, y)
				}
				if target.Depth[i] != 1 {
					t.Fatalf("(%d,%d) depth = %v, want cleared 1", x, y, target.Depth[i])
				}
				if target.Color[i*4+3] != 0 {
					t.Fatalf("(%d,%d) alpha written on discard", x, y)
				}
			} else {
				if !covered {
					t.Fatalf("(%d,%d) not covered", x, y)
				}
				if target.Color[i*4+3] != 255 {
					t.Fatalf("(%d,%d) alpha = %d, want 255", x, y, target.Color[i*4+3])
				}
			}
		}
	}
}

func TestRun_UVAtPixelCenters(t *testing.T) {
	var got mathutil.Vec2
	target := NewTarget(4, 4)
	Run(target, func(uv mathutil.Vec2) (mathutil.Vec4, float64, bool) {
		if uv == (mathutil.Vec2{0.125, 0.625}) { // pixel (0, 2)
			got = uv
		}
		return mathutil.Vec4{}, 0, true
	}, 1)

	if got == (mathutil.Vec2{}) {
		t.Error("pixel (0,2) never sampled at its center (0.125, 0.625)")
	}
}

func TestRun_DeterministicAcrossWorkerCounts(t *testing.T) {
	base := NewTarget(16, 16)
	Run(base, gradientShader, 1)

	for _, workers := range []int{2, 3, 8, 64} {
		target := NewTarget(16, 16)
		Run(target, gradientShader, workers)
		if !bytes.Equal(target.Color, base.Color) {
			t.Fatalf("workers=%d: color differs from serial run", workers)
		}
		for i := range target.Depth {
			if target.Depth[i] != base.Depth[i] || target.Covered[i] != base.Covered[i] {
				t.Fatalf("workers=%d: depth/coverage differs at %d", workers, i)
			}
		}
	}
}

func TestRun_DepthOverrideWritten(t *testing.T) {
	target := NewTarget(2, 2)
	Run(target, func(uv mathutil.Vec2) (mathutil.Vec4, float64, bool) {
		return mathutil.Vec4{0, 0, 0, 1}, 0.25, true
	}, 2)
	for i, d := range target.Depth {
		if d != 0.25 {
			t.Fatalf("pixel %d depth = %v, want 0.25", i, d)
		}
	}
}
