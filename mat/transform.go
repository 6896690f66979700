package mat

import (
	"math"
)

func Translate(t Vec3) Mat4 {
	return Mat4{
		1, 0, 0, t.X,
		0, 1, 0, t.Y,
		0, 0, 1, t.Z,
		0, 0, 0, 1,
	}
}

func ScaleUniform(s float32) Mat4 {
	return Mat4{
		s, 0, 0, 0,
		0, s, 0, 0,
		0, 0, s, 0,
		0, 0, 0, 1,
	}
}

func ScaleVec(s Vec3) Mat4 {
	return Mat4{
		s.X, 0, 0, 0,
		0, s.Y, 0, 0,
		0, 0, s.Z, 0,
		0, 0, 0, 1,
	}
}

func sincos(ang float32) (s, c float32) {
	sf, cf := math.Sincos(float64(ang))
	return float32(sf), float32(cf)
}

func RotateX(ang float32) Mat4 {
	s, c := sincos(ang)
	return Mat4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

func RotateY(ang float32) Mat4 {
	s, c := sincos(ang)
	return Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

func RotateZ(ang float32) Mat4 {
	s, c := sincos(ang)
	return Mat4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func RotateXDeg(deg float32) Mat4 { return RotateX(Rad(deg)) }
func RotateYDeg(deg float32) Mat4 { return RotateY(Rad(deg)) }
func RotateZDeg(deg float32) Mat4 { return RotateZ(Rad(deg)) }

// Rotate returns the right-handed rotation of ang radians about axis.
// axis must be a unit vector.
func Rotate(axis Vec3, ang float32) Mat4 {
	return RotateComp(axis.X, axis.Y, axis.Z, ang)
}

func RotateComp(x, y, z, ang float32) Mat4 {
	s, c := sincos(ang)
	a := 1 - c
	xs, ys, zs := x*s, y*s, z*s

	return Mat4{
		c + x*x*a, x*y*a - zs, x*z*a + ys, 0,
		y*x*a + zs, c + y*y*a, y*z*a - xs, 0,
		z*x*a - ys, z*y*a + xs, c + z*z*a, 0,
		0, 0, 0, 1,
	}
}
