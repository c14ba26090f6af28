package surface

import "deferred-surface/internal/mathutil"

// Surface is the per-pixel reconstruction of the geometry pass output:
// everything a lighting stage needs to shade one pixel. Values are
// produced fresh per invocation and never persisted.
type Surface struct {
	Position mathutil.Vec3 // world space
	Normal   mathutil.Vec3 // unit length
	Color    mathutil.Vec4 // albedo RGB, alpha fixed to 1

	DiffuseIntensity float64 // [0,1]
	// SpecularIntensity and SpecularPower share one packed byte in the
	// geometry buffer: 16 levels over [0,1] and 16 levels over [0,30].
	SpecularIntensity float64
	SpecularPower     float64
}
