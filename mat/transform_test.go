package mat

import (
	"math"
	"testing"
)

func TestTranslate(t *testing.T) {
	m := Translate(NewVec3(1, 2, 3))
	expected := NewMat4(
		1, 0, 0, 1,
		0, 1, 0, 2,
		0, 0, 1, 3,
		0, 0, 0, 1,
	)
	if m != expected {
		t.Errorf("expected %v, got %v", expected, m)
	}
	if v := m.Transform(NewVec4(1, 1, 1, 1)); v != NewVec4(2, 3, 4, 1) {
		t.Errorf("point: got %v", v)
	}
	if v := m.Transform(NewVec4(1, 1, 1, 0)); v != NewVec4(1, 1, 1, 0) {
		t.Errorf("direction must not be translated: got %v", v)
	}
}

func TestScale(t *testing.T) {
	if m := ScaleUniform(3); m != ScaleVec(NewVec3(3, 3, 3)) {
		t.Errorf("ScaleUniform: got %v", m)
	}
	m := ScaleVec(NewVec3(2, 3, 4))
	if m[15] != 1 {
		t.Errorf("m[15] expected to be 1, got %f", m[15])
	}
	if v := m.Transform(NewVec4(1, 1, 1, 1)); v != NewVec4(2, 3, 4, 1) {
		t.Errorf("got %v", v)
	}
}

func TestRotateAxes(t *testing.T) {
	testCases := map[string]struct {
		m        Mat4
		in       Vec3
		expected Vec3
	}{
		"X":    {RotateX(math.Pi / 2), NewVec3(0, 1, 0), NewVec3(0, 0, 1)},
		"Y":    {RotateY(math.Pi / 2), NewVec3(0, 0, 1), NewVec3(1, 0, 0)},
		"Z":    {RotateZ(math.Pi / 2), NewVec3(1, 0, 0), NewVec3(0, 1, 0)},
		"XDeg": {RotateXDeg(90), NewVec3(0, 1, 0), NewVec3(0, 0, 1)},
		"YDeg": {RotateYDeg(90), NewVec3(0, 0, 1), NewVec3(1, 0, 0)},
		"ZDeg": {RotateZDeg(-90), NewVec3(0, 1, 0), NewVec3(1, 0, 0)},
	}
	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			got := tt.m.Transform(tt.in.Extend(1))
			if diff := diffApprox(tt.expected.Extend(1), got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestRotateDegMatchesRad(t *testing.T) {
	for _, deg := range []float32{0, 15, 90, 180, -270} {
		rad := Rad(deg)
		if RotateXDeg(deg) != RotateX(rad) ||
			RotateYDeg(deg) != RotateY(rad) ||
			RotateZDeg(deg) != RotateZ(rad) {
			t.Errorf("degree variant differs at %f", deg)
		}
	}
}

func TestRotateMatchesSingleAxis(t *testing.T) {
	const ang = 0.8
	testCases := map[string]struct {
		axis     Vec3
		expected Mat4
	}{
		"X": {NewVec3(1, 0, 0), RotateX(ang)},
		"Y": {NewVec3(0, 1, 0), RotateY(ang)},
		"Z": {NewVec3(0, 0, 1), RotateZ(ang)},
	}
	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			if diff := diffApprox(tt.expected, Rotate(tt.axis, ang)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestRotateMatchesMat3(t *testing.T) {
	axes := []Vec3{
		NewVec3(1, 2, 3),
		NewVec3(0, 1, -4),
		NewVec3(-0.3, 0.1, 0.9),
	}
	for _, axis := range axes {
		u := axis.Normalized()
		for _, ang := range []float32{0.3, 1.7, -2.2} {
			expected := Mat4FromMat3(Mat3FromAxisAngle(axis, ang))
			if diff := diffApprox(expected, Rotate(u, ang)); diff != "" {
				t.Errorf("axis %v, angle %f (-want +got):\n%s", axis, ang, diff)
			}
			if diff := diffApprox(Rotate(u, ang), RotateComp(u.X, u.Y, u.Z, ang)); diff != "" {
				t.Errorf("RotateComp (-want +got):\n%s", diff)
			}
		}
	}
}
