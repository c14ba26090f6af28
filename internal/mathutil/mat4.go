package mathutil

import "math"

// Mat4 is a 4×4 matrix stored row-major: [r0c0, r0c1, ..., r3c3].
// Used for view, projection and their inverses.
type Mat4 [16]float64

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Mul returns a × b.
func Mat4Mul(a, b Mat4) Mat4 {
	var m Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r*4+c] = a[r*4+0]*b[0*4+c] + a[r*4+1]*b[1*4+c] +
				a[r*4+2]*b[2*4+c] + a[r*4+3]*b[3*4+c]
		}
	}
	return m
}

// MulVec4 returns M × v for a homogeneous 4-vector.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3]*v[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7]*v[3],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11]*v[3],
		m[12]*v[0] + m[13]*v[1] + m[14]*v[2] + m[15]*v[3],
	}
}

// MulPoint transforms a 3D point (w=1) and applies the perspective divide.
func (m Mat4) MulPoint(v Vec3) Vec3 {
	return m.MulVec4(Vec4{v[0], v[1], v[2], 1}).PerspectiveDivide()
}

// Inverse computes the general 4×4 inverse via cofactor expansion.
// Returns the identity for singular matrices (|det| < 1e-12).
func (m Mat4) Inverse() Mat4 {
	// 2×2 sub-determinants of the lower two rows
	s0 := m[8]*m[13] - m[9]*m[12]
	s1 := m[8]*m[14] - m[10]*m[12]
	s2 := m[8]*m[15] - m[11]*m[12]
	s3 := m[9]*m[14] - m[10]*m[13]
	s4 := m[9]*m[15] - m[11]*m[13]
	s5 := m[10]*m[15] - m[11]*m[14]

	c0 := m[4]*s3 - m[5]*s1 + m[6]*s0
	c1 := m[4]*s4 - m[5]*s2 + m[7]*s0
	c2 := m[4]*s5 - m[6]*s2 + m[7]*s1
	c3 := m[5]*s5 - m[6]*s4 + m[7]*s3

	det := m[0]*c3 - m[1]*c2 + m[2]*c1 - m[3]*c0
	if math.Abs(det) < 1e-12 {
		return Mat4Identity()
	}
	inv := 1 / det

	// 2×2 sub-determinants of the upper two rows
	t0 := m[0]*m[5] - m[1]*m[4]
	t1 := m[0]*m[6] - m[2]*m[4]
	t2 := m[0]*m[7] - m[3]*m[4]
	t3 := m[1]*m[6] - m[2]*m[5]
	t4 := m[1]*m[7] - m[3]*m[5]
	t5 := m[2]*m[7] - m[3]*m[6]

	return Mat4{
		(m[5]*s5 - m[6]*s4 + m[7]*s3) * inv,
		(-m[1]*s5 + m[2]*s4 - m[3]*s3) * inv,
		(m[13]*t5 - m[14]*t4 + m[15]*t3) * inv,
		(-m[9]*t5 + m[10]*t4 - m[11]*t3) * inv,

		(-m[4]*s5 + m[6]*s2 - m[7]*s1) * inv,
		(m[0]*s5 - m[2]*s2 + m[3]*s1) * inv,
		(-m[12]*t5 + m[14]*t2 - m[15]*t1) * inv,
		(m[8]*t5 - m[10]*t2 + m[11]*t1) * inv,

		(m[4]*s4 - m[5]*s2 + m[7]*s0) * inv,
		(-m[0]*s4 + m[1]*s2 - m[3]*s0) * inv,
		(m[12]*t4 - m[13]*t2 + m[15]*t0) * inv,
		(-m[8]*t4 + m[9]*t2 - m[11]*t0) * inv,

		(-m[4]*s3 + m[5]*s1 - m[6]*s0) * inv,
		(m[0]*s3 - m[1]*s1 + m[2]*s0) * inv,
		(-m[12]*t3 + m[13]*t1 - m[14]*t0) * inv,
		(m[8]*t3 - m[9]*t1 + m[10]*t0) * inv,
	}
}

// Perspective builds an OpenGL-convention projection matrix
// (clip z in [-1,1], right-handed, camera looking down -Z). fovY in radians.
func Perspective(fovY, aspect, near, far float64) Mat4 {
	f := 1 / math.Tan(fovY/2)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) / (near - far), 2 * far * near / (near - far),
		0, 0, -1, 0,
	}
}

// LookAt builds a right-handed view matrix with the camera at eye,
// looking toward target.
func LookAt(eye, target, up Vec3) Mat4 {
	f := target.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)
	return Mat4{
		s[0], s[1], s[2], -s.Dot(eye),
		u[0], u[1], u[2], -u.Dot(eye),
		-f[0], -f[1], -f[2], f.Dot(eye),
		0, 0, 0, 1,
	}
}

// IsIdentity checks if the matrix is approximately identity.
func (m Mat4) IsIdentity() bool {
	id := Mat4Identity()
	for i := 0; i < 16; i++ {
		d := m[i] - id[i]
		if d > 1e-8 || d < -1e-8 {
			return false
		}
	}
	return true
}
