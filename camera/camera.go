// Package camera loads a perspective camera description from YAML and
// builds its view and projection matrices.
package camera

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/seqsense/f32math/mat"
)

var (
	ErrVectorLength   = errors.New("vector must have 3 elements")
	ErrDegenerateClip = errors.New("near and far planes must differ")
	ErrFieldOfView    = errors.New("field of view must be in (0, 180) degrees")
	ErrAspect         = errors.New("aspect must be positive and finite")
	ErrDegenerateView = errors.New("view direction must be non-zero and not parallel to up")
)

var defaultUp = []float32{0, 1, 0}

// Camera is a right-handed perspective camera.
//
//	eye: [0, 2, 5]
//	center: [0, 0, 0]
//	up: [0, 1, 0]
//	fovy_deg: 60
//	aspect: 1.5
//	near: 0.1
//	far: 100
type Camera struct {
	Eye     []float32 `yaml:"eye"`
	Center  []float32 `yaml:"center"`
	Up      []float32 `yaml:"up,omitempty"`
	FovYDeg float32   `yaml:"fovy_deg"`
	Aspect  float32   `yaml:"aspect"`
	Near    float32   `yaml:"near"`
	Far     float32   `yaml:"far"`
}

func Load(r io.Reader) (*Camera, error) {
	c := &Camera{}
	if err := yaml.NewDecoder(r).Decode(c); err != nil {
		return nil, fmt.Errorf("decoding camera: %w", err)
	}
	if c.Up == nil {
		c.Up = append([]float32(nil), defaultUp...)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Camera) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

func (c *Camera) Validate() error {
	for _, f := range []struct {
		name string
		v    []float32
	}{
		{"eye", c.Eye},
		{"center", c.Center},
		{"up", c.Up},
	} {
		if len(f.v) != 3 {
			return fmt.Errorf("%s has %d elements: %w", f.name, len(f.v), ErrVectorLength)
		}
	}
	if !finite(c.Near) || !finite(c.Far) || c.Near == c.Far {
		return fmt.Errorf("near %f, far %f: %w", c.Near, c.Far, ErrDegenerateClip)
	}
	if !(c.FovYDeg > 0 && c.FovYDeg < 180) {
		return fmt.Errorf("fovy_deg %f: %w", c.FovYDeg, ErrFieldOfView)
	}
	if !positiveFinite(c.Aspect) {
		return fmt.Errorf("aspect %f: %w", c.Aspect, ErrAspect)
	}
	dir := vec3(c.Center).Sub(vec3(c.Eye))
	if !positiveFinite(dir.NormSq()) || !positiveFinite(dir.Cross(vec3(c.Up)).NormSq()) {
		return ErrDegenerateView
	}
	return nil
}

func finite(v float32) bool {
	return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
}

// positiveFinite is false for NaN.
func positiveFinite(v float32) bool {
	return v > 0 && !math.IsInf(float64(v), 1)
}

func vec3(v []float32) mat.Vec3 {
	return mat.NewVec3(v[0], v[1], v[2])
}

// View returns the view matrix in the layout of mat.LookAtRH.
func (c *Camera) View() mat.Mat4 {
	return mat.LookAtRH(vec3(c.Eye), vec3(c.Center), vec3(c.Up))
}

// Projection returns the projection matrix in the layout of mat.Perspective.
func (c *Camera) Projection() mat.Mat4 {
	return mat.Perspective(mat.Rad(c.FovYDeg), c.Aspect, c.Near, c.Far)
}

// ViewProjection returns projection*view, stored in the same transposed
// layout as View and Projection.
func (c *Camera) ViewProjection() mat.Mat4 {
	return c.View().Mul(c.Projection())
}
