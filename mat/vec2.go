package mat

import (
	"math"
)

type Vec2 struct {
	X, Y float32
}

func NewVec2(x, y float32) Vec2 {
	return Vec2{x, y}
}

func ZeroVec2() Vec2 {
	return Vec2{}
}

func OneVec2() Vec2 {
	return Vec2{1, 1}
}

func Vec2FromArray(a [2]float32) Vec2 {
	return Vec2{a[0], a[1]}
}

func (v Vec2) Array() [2]float32 {
	return [2]float32{v.X, v.Y}
}

func (v Vec2) Add(a Vec2) Vec2 {
	return Vec2{v.X + a.X, v.Y + a.Y}
}

func (v Vec2) Sub(a Vec2) Vec2 {
	return Vec2{v.X - a.X, v.Y - a.Y}
}

func (v *Vec2) AddAssign(a Vec2) {
	*v = v.Add(a)
}

func (v *Vec2) SubAssign(a Vec2) {
	*v = v.Sub(a)
}

func (v Vec2) Mul(a float32) Vec2 {
	return Vec2{v.X * a, v.Y * a}
}

func (v Vec2) Dot(a Vec2) float32 {
	return v.X*a.X + v.Y*a.Y
}

func (v Vec2) NormSq() float32 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Norm() float32 {
	return float32(math.Sqrt(float64(v.NormSq())))
}

func (v Vec2) Normalized() Vec2 {
	n := v.Norm()
	return Vec2{v.X / n, v.Y / n}
}

// AngleBetween returns the angle in radians between v and a.
// The result is NaN if either vector has zero length.
func (v Vec2) AngleBetween(a Vec2) float32 {
	return acos32(v.Dot(a) / (v.Norm() * a.Norm()))
}

func (v Vec2) Extend(z float32) Vec3 {
	return Vec3{v.X, v.Y, z}
}

func acos32(x float32) float32 {
	return float32(math.Acos(float64(x)))
}
