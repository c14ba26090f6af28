package mathutil

import (
	"math"
	"testing"
)

func mat4Close(a, b Mat4, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func TestMat4Inverse(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
	}{
		{name: "identity", m: Mat4Identity()},
		{name: "rotation", m: RotY(Deg2Rad(37))},
		{name: "perspective", m: Perspective(Deg2Rad(60), 1.5, 0.1, 100)},
		{
			name: "view-projection",
			m: Mat4Mul(
				Perspective(Deg2Rad(45), 1, 0.5, 50),
				LookAt(Vec3{3, 2, 5}, Vec3{0, 0, 0}, Vec3{0, 1, 0}),
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prod := Mat4Mul(tt.m, tt.m.Inverse())
			if !mat4Close(prod, Mat4Identity(), 1e-9) {
				t.Errorf("M × M⁻¹ = %v", prod)
			}
		})
	}
}

func TestMat4Inverse_Singular(t *testing.T) {
	var zero Mat4
	if !zero.Inverse().IsIdentity() {
		t.Error("singular inverse should fall back to identity")
	}
}

func TestLookAt_MapsEyeToOrigin(t *testing.T) {
	eye := Vec3{4, 3, -2}
	view := LookAt(eye, Vec3{0, 1, 0}, Vec3{0, 1, 0})
	got := view.MulPoint(eye)
	if got.Len() > 1e-12 {
		t.Errorf("eye maps to %v, want origin", got)
	}
}

func TestLookAt_TargetOnNegativeZ(t *testing.T) {
	eye := Vec3{0, 2, 5}
	target := Vec3{0, 1, 0}
	view := LookAt(eye, target, Vec3{0, 1, 0})
	got := view.MulPoint(target)
	if math.Abs(got[0]) > 1e-12 || math.Abs(got[1]) > 1e-12 || got[2] >= 0 {
		t.Errorf("target maps to %v, want (0, 0, -dist)", got)
	}
}

func TestPerspective_DepthRange(t *testing.T) {
	near, far := 0.1, 100.0
	proj := Perspective(Deg2Rad(60), 1, near, far)

	if got := proj.MulPoint(Vec3{0, 0, -near}); math.Abs(got[2]-(-1)) > 1e-9 {
		t.Errorf("near plane ndc z = %v, want -1", got[2])
	}
	if got := proj.MulPoint(Vec3{0, 0, -far}); math.Abs(got[2]-1) > 1e-9 {
		t.Errorf("far plane ndc z = %v, want 1", got[2])
	}
}

func TestRotY_QuarterTurn(t *testing.T) {
	got := RotY(math.Pi / 2).MulPoint(Vec3{1, 0, 0})
	want := Vec3{0, 0, -1}
	if got.Sub(want).Len() > 1e-12 {
		t.Errorf("RotY(90°)·(1,0,0) = %v, want %v", got, want)
	}
}

func TestPerspectiveDivide_PropagatesNonFinite(t *testing.T) {
	v := Vec4{1, 2, 3, 0}
	got := v.PerspectiveDivide()
	for i, c := range got {
		if !math.IsInf(c, 0) && !math.IsNaN(c) {
			t.Errorf("component %d = %v, want non-finite", i, c)
		}
	}
}
