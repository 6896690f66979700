// Package pcgolconv converts between mat types and the types of
// github.com/seqsense/pcgol/mat.
//
// pcgol stores 4x4 matrices column by column while mat stores them row by
// row, so matrix conversions transpose.
package pcgolconv

import (
	pmat "github.com/seqsense/pcgol/mat"

	"github.com/seqsense/f32math/mat"
)

func Mat4ToPCGOL(m mat.Mat4) pmat.Mat4 {
	return pmat.Mat4(m.Transpose())
}

func Mat4FromPCGOL(m pmat.Mat4) mat.Mat4 {
	return mat.Mat4(m).Transpose()
}

func Vec3ToPCGOL(v mat.Vec3) pmat.Vec3 {
	return pmat.Vec3(v.Array())
}

func Vec3FromPCGOL(v pmat.Vec3) mat.Vec3 {
	return mat.Vec3FromArray([3]float32(v))
}

func Vec3sToPCGOL(vs []mat.Vec3) []pmat.Vec3 {
	out := make([]pmat.Vec3, len(vs))
	for i, v := range vs {
		out[i] = Vec3ToPCGOL(v)
	}
	return out
}

func Vec3sFromPCGOL(vs []pmat.Vec3) []mat.Vec3 {
	out := make([]mat.Vec3, len(vs))
	for i, v := range vs {
		out[i] = Vec3FromPCGOL(v)
	}
	return out
}
