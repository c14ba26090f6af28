package surface

import (
	"math"

	"deferred-surface/internal/gbuffer"
	"deferred-surface/internal/mathutil"
)

// FarDepth is the discard threshold: a sampled device depth above this
// value means no geometry was rendered at that pixel (the depth buffer
// still holds its far clear value).
const FarDepth = 0.99999

// Decoder reconstructs surfaces from a packed geometry buffer and its
// depth buffer. All fields are read-only during decoding, so one
// Decoder is safe to share across concurrent invocations.
type Decoder struct {
	GBuffer  *gbuffer.TextureArray
	DepthMap *gbuffer.DepthArray
	// ViewProjectionInverse is the inverse of the matrix that produced
	// the depth buffer.
	ViewProjectionInverse mathutil.Mat4
}

// ReconstructWorldPosition unprojects a screen-space uv and device
// depth back to world space: remap both from [0,1] to [-1,1] clip
// space, apply the inverse view-projection, then the perspective
// divide. A degenerate matrix yielding w == 0 is not guarded: the
// divide propagates non-finite components to the result.
func ReconstructWorldPosition(depth float64, uv mathutil.Vec2, viewProjectionInverse mathutil.Mat4) mathutil.Vec3 {
	clip := mathutil.Vec4{uv[0]*2 - 1, uv[1]*2 - 1, depth*2 - 1, 1}
	return viewProjectionInverse.MulVec4(clip).PerspectiveDivide()
}

// SampleDepth reads layer 0 of the depth buffer at uv. ok is false when
// the depth exceeds FarDepth, meaning the invocation must discard:
// produce no output for this pixel and skip all remaining work.
// Otherwise the returned depth is the invocation's output depth,
// overriding any interpolated default.
func (d *Decoder) SampleDepth(uv mathutil.Vec2) (depth float64, ok bool) {
	depth = d.DepthMap.Sample(0, uv[0], uv[1])
	if depth > FarDepth {
		return depth, false
	}
	return depth, true
}

// ColorAt is the short path for passes that only need albedo: it runs
// the depth discard check, then returns the layer-0 color with alpha
// forced to 1. The sampled depth is returned so the caller can forward
// it as the pixel's output depth.
func (d *Decoder) ColorAt(uv mathutil.Vec2) (color mathutil.Vec4, depth float64, ok bool) {
	depth, ok = d.SampleDepth(uv)
	if !ok {
		return mathutil.Vec4{}, depth, false
	}
	c := d.GBuffer.Sample(gbuffer.LayerAlbedo, uv[0], uv[1])
	return mathutil.Vec4{c[0], c[1], c[2], 1}, depth, true
}

// SurfaceAt performs the full reconstruction at uv. ok is false when
// the pixel holds no geometry (discard); the Surface is then the zero
// value and must not be used.
func (d *Decoder) SurfaceAt(uv mathutil.Vec2) (s Surface, depth float64, ok bool) {
	depth, ok = d.SampleDepth(uv)
	if !ok {
		return Surface{}, depth, false
	}

	albedo := d.GBuffer.Sample(gbuffer.LayerAlbedo, uv[0], uv[1])
	s.Color = mathutil.Vec4{albedo[0], albedo[1], albedo[2], 1}
	s.DiffuseIntensity = albedo[3]

	s.Position = ReconstructWorldPosition(depth, uv, d.ViewProjectionInverse)

	packed := d.GBuffer.Sample(gbuffer.LayerNormal, uv[0], uv[1])
	s.Normal = gbuffer.DecodeNormal(packed.XYZ())

	t := uint8(math.Floor(packed[3] * 255))
	s.SpecularIntensity, s.SpecularPower = gbuffer.UnpackSpecular(t)

	return s, depth, true
}
