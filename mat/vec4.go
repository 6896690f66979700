package mat

import (
	"math"
)

type Vec4 struct {
	X, Y, Z, W float32
}

func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

func ZeroVec4() Vec4 {
	return Vec4{}
}

func OneVec4() Vec4 {
	return Vec4{1, 1, 1, 1}
}

func Vec4FromArray(a [4]float32) Vec4 {
	return Vec4{a[0], a[1], a[2], a[3]}
}

func (v Vec4) Array() [4]float32 {
	return [4]float32{v.X, v.Y, v.Z, v.W}
}

func (v Vec4) Add(a Vec4) Vec4 {
	return Vec4{v.X + a.X, v.Y + a.Y, v.Z + a.Z, v.W + a.W}
}

func (v Vec4) Sub(a Vec4) Vec4 {
	return Vec4{v.X - a.X, v.Y - a.Y, v.Z - a.Z, v.W - a.W}
}

func (v *Vec4) AddAssign(a Vec4) {
	*v = v.Add(a)
}

func (v *Vec4) SubAssign(a Vec4) {
	*v = v.Sub(a)
}

func (v Vec4) Mul(a float32) Vec4 {
	return Vec4{v.X * a, v.Y * a, v.Z * a, v.W * a}
}

func (v Vec4) Dot(a Vec4) float32 {
	return v.X*a.X + v.Y*a.Y + v.Z*a.Z + v.W*a.W
}

func (v Vec4) NormSq() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

func (v Vec4) Norm() float32 {
	return float32(math.Sqrt(float64(v.NormSq())))
}

func (v Vec4) Normalized() Vec4 {
	n := v.Norm()
	return Vec4{v.X / n, v.Y / n, v.Z / n, v.W / n}
}

func (v Vec4) AngleBetween(a Vec4) float32 {
	return acos32(v.Dot(a) / (v.Norm() * a.Norm()))
}

// Truncate drops W. No perspective division is applied.
func (v Vec4) Truncate() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}
