package mat

import (
	"math"
)

const (
	radToDeg = 180 / math.Pi
	degToRad = math.Pi / 180
)

// Deg converts radians to degrees.
func Deg(rad float32) float32 {
	return rad * radToDeg
}

// Rad converts degrees to radians.
func Rad(deg float32) float32 {
	return deg * degToRad
}
