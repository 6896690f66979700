// Package mat provides float32 vectors and row-major 3x3/4x4 matrices for
// rendering and simulation code.
//
// All types are plain values. Methods never modify the receiver except the
// *Assign variants. Numeric degeneracies are not reported as errors: dividing
// by a zero norm or determinant yields NaN or Inf components.
package mat
