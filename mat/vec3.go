package mat

import (
	"math"
)

type Vec3 struct {
	X, Y, Z float32
}

func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

func ZeroVec3() Vec3 {
	return Vec3{}
}

func OneVec3() Vec3 {
	return Vec3{1, 1, 1}
}

func Vec3FromArray(a [3]float32) Vec3 {
	return Vec3{a[0], a[1], a[2]}
}

func (v Vec3) Array() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

func (v Vec3) Add(a Vec3) Vec3 {
	return Vec3{v.X + a.X, v.Y + a.Y, v.Z + a.Z}
}

func (v Vec3) Sub(a Vec3) Vec3 {
	return Vec3{v.X - a.X, v.Y - a.Y, v.Z - a.Z}
}

func (v *Vec3) AddAssign(a Vec3) {
	*v = v.Add(a)
}

func (v *Vec3) SubAssign(a Vec3) {
	*v = v.Sub(a)
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

func (v Vec3) Mul(a float32) Vec3 {
	return Vec3{v.X * a, v.Y * a, v.Z * a}
}

func (v Vec3) Dot(a Vec3) float32 {
	return v.X*a.X + v.Y*a.Y + v.Z*a.Z
}

// Cross returns the right-handed cross product v x a.
func (v Vec3) Cross(a Vec3) Vec3 {
	return Vec3{
		v.Y*a.Z - v.Z*a.Y,
		v.Z*a.X - v.X*a.Z,
		v.X*a.Y - v.Y*a.X,
	}
}

func (v Vec3) NormSq() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vec3) Norm() float32 {
	return float32(math.Sqrt(float64(v.NormSq())))
}

// Normalized divides each component by the norm.
// A zero vector gives NaN components.
func (v Vec3) Normalized() Vec3 {
	n := v.Norm()
	return Vec3{v.X / n, v.Y / n, v.Z / n}
}

func (v Vec3) AngleBetween(a Vec3) float32 {
	return acos32(v.Dot(a) / (v.Norm() * a.Norm()))
}

func (v Vec3) Extend(w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

func (v Vec3) Truncate() Vec2 {
	return Vec2{v.X, v.Y}
}
