package math3d

// Mat3 is a 3x3 matrix stored in column-major order, matching Mat4.
//
// Memory layout (indices):
// | 0  3  6 |
// | 1  4  7 |
// | 2  5  8 |
type Mat3 [9]float64

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Mat3FromMat4 extracts the upper-left 3x3 block (rotation/scale) of m.
func Mat3FromMat4(m Mat4) Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// MulVec3 transforms a Vec3.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// Transpose returns the transposed matrix.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Determinant returns the determinant of the matrix.
func (m Mat3) Determinant() float64 {
	return m[0]*(m[4]*m[8]-m[7]*m[5]) -
		m[3]*(m[1]*m[8]-m[7]*m[2]) +
		m[6]*(m[1]*m[5]-m[4]*m[2])
}

// Inverse returns the inverse of the matrix.
// Returns identity if the matrix is singular (det=0).
func (m Mat3) Inverse() Mat3 {
	det := m.Determinant()
	if det == 0 {
		return Identity3()
	}

	invDet := 1.0 / det
	return Mat3{
		(m[4]*m[8] - m[7]*m[5]) * invDet,
		-(m[1]*m[8] - m[7]*m[2]) * invDet,
		(m[1]*m[5] - m[4]*m[2]) * invDet,

		-(m[3]*m[8] - m[6]*m[5]) * invDet,
		(m[0]*m[8] - m[6]*m[2]) * invDet,
		-(m[0]*m[5] - m[3]*m[2]) * invDet,

		(m[3]*m[7] - m[6]*m[4]) * invDet,
		-(m[0]*m[7] - m[6]*m[1]) * invDet,
		(m[0]*m[4] - m[3]*m[1]) * invDet,
	}
}

// NormalMatrix returns the matrix that transforms normals for geometry
// transformed by model: the inverse-transpose of its upper 3x3 block.
// A singular model matrix silently degrades to the identity rotation.
func NormalMatrix(model Mat4) Mat3 {
	return Mat3FromMat4(model).Transpose().Inverse()
}
