package mat

// LookAtRH returns a right-handed view matrix looking from eye towards center.
//
// Like Perspective, the result is stored transposed: the camera basis vectors
// are the columns of the upper-left block and the translation is in the
// bottom row, which is the layout expected by WebGL uniforms.
// center == eye or up parallel to the view direction gives NaN elements.
func LookAtRH(eye, center, up Vec3) Mat4 {
	z := center.Sub(eye).Normalized()
	x := z.Cross(up).Normalized()
	y := x.Cross(z).Normalized()

	return NewMat4(
		x.X, x.Y, x.Z, -eye.Dot(x),
		y.X, y.Y, y.Z, -eye.Dot(y),
		-z.X, -z.Y, -z.Z, eye.Dot(z),
		0, 0, 0, 1,
	).Transpose()
}
