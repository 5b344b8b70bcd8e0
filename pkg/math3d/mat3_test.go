package math3d

import (
	"math"
	"testing"
)

func mat3Near(a, b Mat3, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func TestMat3Inverse(t *testing.T) {
	m := Mat3FromMat4(RotateY(0.7).Mul(Scale(V3(2, 3, 4))))
	inv := m.Inverse()

	// m * m^-1 should be identity
	got := Mat3{}
	id := Identity3()
	for col := range 3 {
		for row := range 3 {
			var sum float64
			for k := range 3 {
				sum += m[row+k*3] * inv[k+col*3]
			}
			got[row+col*3] = sum
		}
	}
	if !mat3Near(got, id, 1e-9) {
		t.Errorf("m * inverse(m) = %v, want identity", got)
	}
}

func TestMat3InverseSingular(t *testing.T) {
	// Zero scale on one axis makes the matrix singular
	m := Mat3FromMat4(Scale(V3(1, 0, 1)))
	if got := m.Inverse(); !mat3Near(got, Identity3(), 0) {
		t.Errorf("singular inverse = %v, want identity fallback", got)
	}
}

func TestNormalMatrix(t *testing.T) {
	tests := []struct {
		name  string
		model Mat4
		in    Vec3
		want  Vec3
	}{
		{"identity", Identity(), V3(0, 0, 1), V3(0, 0, 1)},
		{"rotation passes through", RotateY(math.Pi / 2), V3(0, 0, 1), V3(1, 0, 0)},
		// Non-uniform scale: the normal of a plane stretched in X must
		// shrink in X, which plain rotation transforms get wrong.
		{"non-uniform scale", Scale(V3(2, 1, 1)), V3(1, 0, 0), V3(0.5, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalMatrix(tc.model).MulVec3(tc.in)
			if got.Sub(tc.want).Len() > 1e-9 {
				t.Errorf("NormalMatrix(%s).MulVec3(%v) = %v, want %v", tc.name, tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalMatrixSingularFallback(t *testing.T) {
	flat := Scale(V3(1, 1, 0))
	n := V3(3, -2, 1)
	if got := NormalMatrix(flat).MulVec3(n); got != n {
		t.Errorf("singular model should fall back to identity rotation, got %v", got)
	}
}

func TestViewport(t *testing.T) {
	vp := Viewport(800, 600)

	tests := []struct {
		name string
		ndc  Vec3
		want Vec3
	}{
		{"center", V3(0, 0, 0.5), V3(400, 300, 0.5)},
		{"top-left", V3(-1, 1, 0), V3(0, 0, 0)},
		{"bottom-right", V3(1, -1, 1), V3(800, 600, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := vp.MulVec4(V4FromV3(tc.ndc, 1)).Vec3()
			if got.Sub(tc.want).Len() > 1e-9 {
				t.Errorf("Viewport(%v) = %v, want %v", tc.ndc, got, tc.want)
			}
		})
	}
}
