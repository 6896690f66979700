// Package gl prepares mat values for upload to WebGL.
//
// Buffers keep the row-major element order of mat types. WebGL reads
// uniform matrices column by column, see UniformMatrix4f.
package gl

import (
	"github.com/seqsense/f32math/mat"
)

type BufferData interface {
	Bytes() []byte
}

type Float32ArrayBuffer []float32

func (b Float32ArrayBuffer) Bytes() []byte {
	return float32SliceAsByteSlice([]float32(b))
}

type ByteArrayBuffer []byte

func (b ByteArrayBuffer) Bytes() []byte {
	return b
}

func Vec2Buffer(vs ...mat.Vec2) Float32ArrayBuffer {
	out := make(Float32ArrayBuffer, 0, 2*len(vs))
	for _, v := range vs {
		out = append(out, v.X, v.Y)
	}
	return out
}

func Vec3Buffer(vs ...mat.Vec3) Float32ArrayBuffer {
	out := make(Float32ArrayBuffer, 0, 3*len(vs))
	for _, v := range vs {
		out = append(out, v.X, v.Y, v.Z)
	}
	return out
}

func Vec4Buffer(vs ...mat.Vec4) Float32ArrayBuffer {
	out := make(Float32ArrayBuffer, 0, 4*len(vs))
	for _, v := range vs {
		out = append(out, v.X, v.Y, v.Z, v.W)
	}
	return out
}

func Mat3Buffer(ms ...mat.Mat3) Float32ArrayBuffer {
	out := make(Float32ArrayBuffer, 0, 9*len(ms))
	for _, m := range ms {
		out = append(out, m[:]...)
	}
	return out
}

func Mat4Buffer(ms ...mat.Mat4) Float32ArrayBuffer {
	out := make(Float32ArrayBuffer, 0, 16*len(ms))
	for _, m := range ms {
		out = append(out, m[:]...)
	}
	return out
}
