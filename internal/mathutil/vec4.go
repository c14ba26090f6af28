package mathutil

// Vec4 is a 4-component vector. Used both as a homogeneous point
// (perspective divide via XYZ) and as an RGBA color in [0,1].
type Vec4 [4]float64

func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// XYZ drops the w component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// PerspectiveDivide returns xyz/w. The caller is responsible for the
// w==0 case: the division is performed as-is and non-finite components
// propagate to the result.
func (v Vec4) PerspectiveDivide() Vec3 {
	return Vec3{v[0] / v[3], v[1] / v[3], v[2] / v[3]}
}
