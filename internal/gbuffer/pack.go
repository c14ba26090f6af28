package gbuffer

import "deferred-surface/internal/mathutil"

// The specular parameters share one byte of the normal layer's alpha
// channel: low nibble = intensity in 16 steps over [0,1], high nibble =
// power in 16 steps over [0,30] (step 2). Any encoder of this format
// must preserve this exact layout.

// PackSpecular packs intensity in [0,1] and power in [0,30] into one byte.
// Out-of-range values clamp to the nearest representable level.
func PackSpecular(intensity, power float64) uint8 {
	lo := int(intensity*15 + 0.5)
	if lo < 0 {
		lo = 0
	} else if lo > 15 {
		lo = 15
	}
	hi := int(power/2 + 0.5)
	if hi < 0 {
		hi = 0
	} else if hi > 15 {
		hi = 15
	}
	return uint8(hi<<4 | lo)
}

// UnpackSpecular splits a packed specular byte into intensity in
// {0, 1/15, ..., 1} and power in {0, 2, ..., 30}.
func UnpackSpecular(t uint8) (intensity, power float64) {
	intensity = float64(t&15) / 15
	power = 2 * float64((t&240)>>4)
	return intensity, power
}

// EncodeNormal maps a unit vector from [-1,1]³ to [0,1]³ for RGBA8 storage.
func EncodeNormal(n mathutil.Vec3) mathutil.Vec3 {
	return mathutil.Vec3{n[0]*0.5 + 0.5, n[1]*0.5 + 0.5, n[2]*0.5 + 0.5}
}

// DecodeNormal undoes the [0,1] encoding and renormalizes to absorb
// quantization error. The midpoint (0.5, 0.5, 0.5) is degenerate and
// decodes to the zero vector.
func DecodeNormal(v mathutil.Vec3) mathutil.Vec3 {
	return mathutil.Vec3{v[0]*2 - 1, v[1]*2 - 1, v[2]*2 - 1}.Normalize()
}
