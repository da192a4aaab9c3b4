package numeric

import "math"

// Mat3 is a 3×3 real matrix, the universal intermediate representation for
// frame rotations. Mat3 composes by left-multiplication: applying B after A
// to a column vector is B.Mul(A).MulVec(v).
type Mat3 [3][3]float64

// Identity returns the 3×3 identity matrix.
func Identity() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// RotX returns the frame rotation about the X axis by angle in degrees.
func RotX(angleDeg float64) Mat3 {
	s, c := math.Sincos(angleDeg * Deg2Rad)
	return Mat3{
		{1, 0, 0},
		{0, c, s},
		{0, -s, c},
	}
}

// RotY returns the frame rotation about the Y axis by angle in degrees.
func RotY(angleDeg float64) Mat3 {
	s, c := math.Sincos(angleDeg * Deg2Rad)
	return Mat3{
		{c, 0, -s},
		{0, 1, 0},
		{s, 0, c},
	}
}

// RotZ returns the frame rotation about the Z axis by angle in degrees.
func RotZ(angleDeg float64) Mat3 {
	s, c := math.Sincos(angleDeg * Deg2Rad)
	return Mat3{
		{c, s, 0},
		{-s, c, 0},
		{0, 0, 1},
	}
}

// Mul returns the matrix product m·b.
func (m Mat3) Mul(b Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][0]*b[0][j] + m[i][1]*b[1][j] + m[i][2]*b[2][j]
		}
	}
	return out
}

// MulVec applies the matrix to a column vector.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Add returns the element-wise sum m+b. Used for the small linear
// proper-motion corrections applied to the FK4→FK5 bias matrix.
func (m Mat3) Add(b Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][j] + b[i][j]
		}
	}
	return out
}

// Transpose returns the transposed matrix. For pure rotations this is the
// inverse.
func (m Mat3) Transpose() Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// Det returns the determinant.
func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns the matrix inverse via the adjugate. The FK4↔FK5 bias
// matrix with proper-motion corrections is not exactly orthogonal, so its
// reverse direction needs a true inverse rather than a transpose.
func (m Mat3) Inverse() Mat3 {
	d := m.Det()
	inv := 1.0 / d
	var out Mat3
	out[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) * inv
	out[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * inv
	out[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * inv
	out[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) * inv
	out[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * inv
	out[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * inv
	out[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) * inv
	out[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * inv
	out[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * inv
	return out
}
