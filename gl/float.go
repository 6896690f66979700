package gl

import (
	"unsafe"
)

func float32SliceAsByteSlice(floats []float32) []byte {
	if len(floats) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&floats[0])), 4*len(floats))
}
