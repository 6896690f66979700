package pcgolconv

import (
	"testing"

	pmat "github.com/seqsense/pcgol/mat"
	"github.com/stretchr/testify/require"

	"github.com/seqsense/f32math/mat"
)

func TestMat4Translate(t *testing.T) {
	m := Mat4FromPCGOL(pmat.Translate(1, 2, 3))
	require.Equal(t, mat.Translate(mat.NewVec3(1, 2, 3)), m)
	require.Equal(t, pmat.Translate(1, 2, 3), Mat4ToPCGOL(m))
}

func TestMat4RoundTrip(t *testing.T) {
	m := mat.Translate(mat.NewVec3(0.5, -1, 2)).
		Mul(mat.RotateZ(0.3)).
		Mul(mat.ScaleVec(mat.NewVec3(1, 2, 3)))

	require.Equal(t, m, Mat4FromPCGOL(Mat4ToPCGOL(m)))
}

func TestTransformAffine(t *testing.T) {
	m := mat.Translate(mat.NewVec3(0.1, 0.2, 0.3)).
		Mul(mat.RotateX(0.4)).
		Mul(mat.RotateY(-1.1))
	pm := Mat4ToPCGOL(m)

	testCases := []mat.Vec3{
		mat.NewVec3(0, 0, 0),
		mat.NewVec3(1, 2, 3),
		mat.NewVec3(-4, 0.5, 10),
	}
	for _, v := range testCases {
		expected := m.TransformAffine(v)
		got := Vec3FromPCGOL(pm.TransformAffine(Vec3ToPCGOL(v)))
		require.InDelta(t, expected.X, got.X, 1e-5)
		require.InDelta(t, expected.Y, got.Y, 1e-5)
		require.InDelta(t, expected.Z, got.Z, 1e-5)
	}
}

func TestVec3s(t *testing.T) {
	vs := []mat.Vec3{
		mat.NewVec3(1, 2, 3),
		mat.NewVec3(-1, 0, 0.25),
	}
	pvs := Vec3sToPCGOL(vs)
	require.Equal(t, []pmat.Vec3{{1, 2, 3}, {-1, 0, 0.25}}, pvs)
	require.Equal(t, vs, Vec3sFromPCGOL(pvs))
	require.Empty(t, Vec3sToPCGOL(nil))
}

func TestMat4StorageOrder(t *testing.T) {
	// Perspective is already stored column by column, so it converts to
	// pcgol without reordering.
	m := mat.Perspective(1, 1.5, 0.1, 100)
	require.Equal(t, pmat.Mat4(m), Mat4ToPCGOL(m.Transpose()))
	require.Equal(t, float32(-1), pmat.Mat4(m)[11])
}
