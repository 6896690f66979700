package mat

// Mat4 is a 4x4 matrix in row major order.
//
// m[4*r + c] is the element in the r'th row and c'th column.
// Translation is stored in the last column.
type Mat4 [16]float32

func NewMat4(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 float32,
) Mat4 {
	return Mat4{
		m00, m01, m02, m03,
		m10, m11, m12, m13,
		m20, m21, m22, m23,
		m30, m31, m32, m33,
	}
}

func Ident4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func ZeroMat4() Mat4 {
	return Mat4{}
}

func OneMat4() Mat4 {
	return Mat4{
		1, 1, 1, 1,
		1, 1, 1, 1,
		1, 1, 1, 1,
		1, 1, 1, 1,
	}
}

func Mat4FromArray(a [4][4]float32) Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[4*r+c] = a[r][c]
		}
	}
	return out
}

// Mat4FromMat3 embeds m in the upper-left block of an identity matrix.
func Mat4FromMat3(m Mat3) Mat4 {
	return Mat4{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
		0, 0, 0, 1,
	}
}

func (m Mat4) Array() [4][4]float32 {
	return [4][4]float32{
		{m[0], m[1], m[2], m[3]},
		{m[4], m[5], m[6], m[7]},
		{m[8], m[9], m[10], m[11]},
		{m[12], m[13], m[14], m[15]},
	}
}

// Mat3 returns the upper-left 3x3 block.
func (m Mat4) Mat3() Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

func (m Mat4) At(r, c int) float32 {
	return m[4*r+c]
}

func (m Mat4) Add(a Mat4) Mat4 {
	var out Mat4
	for i := range m {
		out[i] = m[i] + a[i]
	}
	return out
}

func (m Mat4) Sub(a Mat4) Mat4 {
	var out Mat4
	for i := range m {
		out[i] = m[i] - a[i]
	}
	return out
}

// Mul returns the matrix product m*a.
// Applied to a vector, a is applied first.
func (m Mat4) Mul(a Mat4) Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[4*r+k] * a[4*k+c]
			}
			out[4*r+c] = sum
		}
	}
	return out
}

func (m *Mat4) AddAssign(a Mat4) {
	*m = m.Add(a)
}

func (m *Mat4) SubAssign(a Mat4) {
	*m = m.Sub(a)
}

func (m *Mat4) MulAssign(a Mat4) {
	*m = m.Mul(a)
}

// Scale multiplies every element by s.
func (m Mat4) Scale(s float32) Mat4 {
	var out Mat4
	for i := range m {
		out[i] = m[i] * s
	}
	return out
}

func (m Mat4) Transpose() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

func (m Mat4) Transform(a Vec4) Vec4 {
	return Vec4{
		m[0]*a.X + m[1]*a.Y + m[2]*a.Z + m[3]*a.W,
		m[4]*a.X + m[5]*a.Y + m[6]*a.Z + m[7]*a.W,
		m[8]*a.X + m[9]*a.Y + m[10]*a.Z + m[11]*a.W,
		m[12]*a.X + m[13]*a.Y + m[14]*a.Z + m[15]*a.W,
	}
}

// TransformAffine transforms a point, assuming the bottom row is (0, 0, 0, 1).
func (m Mat4) TransformAffine(a Vec3) Vec3 {
	return Vec3{
		m[0]*a.X + m[1]*a.Y + m[2]*a.Z + m[3],
		m[4]*a.X + m[5]*a.Y + m[6]*a.Z + m[7],
		m[8]*a.X + m[9]*a.Y + m[10]*a.Z + m[11],
	}
}
