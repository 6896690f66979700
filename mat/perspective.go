package mat

import (
	"math"
)

// Perspective returns a right-handed symmetric projection matrix mapping
// the view frustum to [-1, 1] clip space.
//
// The result is stored transposed (column by column) like LookAtRH.
// near == far, or fovy of 0 or Pi, gives Inf or NaN elements.
func Perspective(fovy, aspect, near, far float32) Mat4 {
	halfFovCot := 1 / float32(math.Tan(float64(fovy/2)))
	return Mat4{
		halfFovCot / aspect, 0, 0, 0,
		0, halfFovCot, 0, 0,
		0, 0, (far + near) / (near - far), -1,
		0, 0, 2 * far * near / (near - far), 0,
	}
}
