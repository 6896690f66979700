package gl

import (
	pmat "github.com/seqsense/pcgol/mat"
	webgl "github.com/seqsense/webgl-go"

	"github.com/seqsense/f32math/mat"
	"github.com/seqsense/f32math/pcgolconv"
)

// UniformMatrix4f uploads m as stored. WebGL reads it column by column, so m
// must already be in that layout, as returned by mat.Perspective and
// mat.LookAtRH.
func UniformMatrix4f(gl *webgl.WebGL, loc webgl.Location, m mat.Mat4) {
	gl.UniformMatrix4fv(loc, false, pmat.Mat4(m))
}

// UniformTransform4f uploads a row-major transform such as the result of
// mat.Translate or mat.Rotate.
func UniformTransform4f(gl *webgl.WebGL, loc webgl.Location, m mat.Mat4) {
	gl.UniformMatrix4fv(loc, false, pcgolconv.Mat4ToPCGOL(m))
}

func Uniform3f(gl *webgl.WebGL, loc webgl.Location, v mat.Vec3) {
	gl.Uniform3fv(loc, pcgolconv.Vec3ToPCGOL(v))
}

func ArrayBufferData(gl *webgl.WebGL, data BufferData) {
	gl.BufferData(gl.ARRAY_BUFFER, webgl.ByteArrayBuffer(data.Bytes()), gl.STATIC_DRAW)
}
