package mat

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const eps = 1e-5

var approx = cmpopts.EquateApprox(0, eps)

func diffApprox(want, got interface{}) string {
	return cmp.Diff(want, got, approx)
}

func almostEq(a, b, tol float32) bool {
	d := a - b
	return -tol < d && d < tol
}
