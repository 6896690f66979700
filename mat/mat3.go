package mat

import (
	"math"
)

// Mat3 is a 3x3 matrix in row major order.
//
// m[3*r + c] is the element in the r'th row and c'th column.
type Mat3 [9]float32

// invertibleDet is the determinant threshold of Invertible.
const invertibleDet = 1e-6

func NewMat3(
	m00, m01, m02,
	m10, m11, m12,
	m20, m21, m22 float32,
) Mat3 {
	return Mat3{
		m00, m01, m02,
		m10, m11, m12,
		m20, m21, m22,
	}
}

func Ident3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

func ZeroMat3() Mat3 {
	return Mat3{}
}

func OneMat3() Mat3 {
	return Mat3{
		1, 1, 1,
		1, 1, 1,
		1, 1, 1,
	}
}

func Mat3FromArray(a [3][3]float32) Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[3*r+c] = a[r][c]
		}
	}
	return out
}

func (m Mat3) Array() [3][3]float32 {
	return [3][3]float32{
		{m[0], m[1], m[2]},
		{m[3], m[4], m[5]},
		{m[6], m[7], m[8]},
	}
}

func (m Mat3) At(r, c int) float32 {
	return m[3*r+c]
}

func (m Mat3) Add(a Mat3) Mat3 {
	var out Mat3
	for i := range m {
		out[i] = m[i] + a[i]
	}
	return out
}

func (m Mat3) Sub(a Mat3) Mat3 {
	var out Mat3
	for i := range m {
		out[i] = m[i] - a[i]
	}
	return out
}

// Mul returns the matrix product m*a.
// Applied to a vector, a is applied first.
func (m Mat3) Mul(a Mat3) Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[3*r+c] = m[3*r+0]*a[0+c] + m[3*r+1]*a[3+c] + m[3*r+2]*a[6+c]
		}
	}
	return out
}

func (m *Mat3) AddAssign(a Mat3) {
	*m = m.Add(a)
}

func (m *Mat3) SubAssign(a Mat3) {
	*m = m.Sub(a)
}

func (m *Mat3) MulAssign(a Mat3) {
	*m = m.Mul(a)
}

// Scale multiplies every element by s.
func (m Mat3) Scale(s float32) Mat3 {
	var out Mat3
	for i := range m {
		out[i] = m[i] * s
	}
	return out
}

func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

func (m Mat3) Transform(a Vec3) Vec3 {
	return Vec3{
		m[0]*a.X + m[1]*a.Y + m[2]*a.Z,
		m[3]*a.X + m[4]*a.Y + m[5]*a.Z,
		m[6]*a.X + m[7]*a.Y + m[8]*a.Z,
	}
}

// Det returns the determinant expanded along the first row.
func (m Mat3) Det() float32 {
	a := m[0] * (m[4]*m[8] - m[5]*m[7])
	b := m[1] * (m[3]*m[8] - m[5]*m[6])
	c := m[2] * (m[3]*m[7] - m[4]*m[6])
	return a - b + c
}

// Cofactor returns the matrix of signed minors.
func (m Mat3) Cofactor() Mat3 {
	return Mat3{
		m[4]*m[8] - m[5]*m[7],
		-(m[3]*m[8] - m[5]*m[6]),
		m[3]*m[7] - m[4]*m[6],

		-(m[1]*m[8] - m[2]*m[7]),
		m[0]*m[8] - m[2]*m[6],
		-(m[0]*m[7] - m[1]*m[6]),

		m[1]*m[5] - m[2]*m[4],
		-(m[0]*m[5] - m[2]*m[3]),
		m[0]*m[4] - m[1]*m[3],
	}
}

func (m Mat3) Adjugate() Mat3 {
	return m.Cofactor().Transpose()
}

// Inv returns the inverse matrix.
// Check Invertible first; a singular matrix gives Inf or NaN elements.
func (m Mat3) Inv() Mat3 {
	return m.Adjugate().Scale(1 / m.Det())
}

// Invertible reports whether Det is greater than 1e-6.
// Matrices with a negative determinant, e.g. reflections, are reported as
// not invertible.
func (m Mat3) Invertible() bool {
	return m.Det() > invertibleDet
}

// Mat3FromAxisAngle returns the right-handed rotation of ang radians about
// axis. The axis is normalized; a zero axis gives NaN elements.
func Mat3FromAxisAngle(axis Vec3, ang float32) Mat3 {
	u := axis.Normalized()
	s := float32(math.Sin(float64(ang)))
	c := float32(math.Cos(float64(ang)))
	t := 1 - c

	return Mat3{
		c + u.X*u.X*t, u.X*u.Y*t - u.Z*s, u.X*u.Z*t + u.Y*s,
		u.Y*u.X*t + u.Z*s, c + u.Y*u.Y*t, u.Y*u.Z*t - u.X*s,
		u.Z*u.X*t - u.Y*s, u.Z*u.Y*t + u.X*s, c + u.Z*u.Z*t,
	}
}
