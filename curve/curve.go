/*package curve samples reflection-coefficient approximations over a range of
incidence angles.*/
package curve

import (
	"fmt"
	"math"

	"github.com/gonum/floats"

	"github.com/phil-mansfield/avo/math/calc"
	"github.com/phil-mansfield/avo/math/interpolate"
	"github.com/phil-mansfield/avo/zoeppritz"
)

// Curve is a single approximation evaluated at a sequence of angles (in
// radians).
type Curve struct {
	Name   string
	Thetas []float64
	R      []float64
}

// Angles returns n evenly spaced angles from lo to hi, inclusive.
func Angles(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// Sample evaluates approx for the interface between upper and lower at every
// angle in thetas. The first error returned by the approximation aborts the
// sweep.
func Sample(
	upper, lower zoeppritz.Layer, thetas []float64,
	approx zoeppritz.Approximation,
) (*Curve, error) {
	c := &Curve{
		Name:   approx.Name(),
		Thetas: append([]float64{}, thetas...),
		R:      make([]float64, len(thetas)),
	}
	if len(thetas) == 0 {
		return c, nil
	}

	m, err := zoeppritz.NewModel(thetas[0], upper, lower)
	if err != nil {
		return nil, err
	}
	for i, theta := range thetas {
		if m, err = m.At(theta); err != nil {
			return nil, err
		}
		if c.R[i], err = approx.Reflectivity(m); err != nil {
			return nil, fmt.Errorf("%s at theta = %g: %w",
				approx.Name(), theta, err)
		}
	}

	return c, nil
}

// Max returns the angle and value of the curve's largest reflection
// coefficient. It panics on an empty curve.
func (c *Curve) Max() (theta, r float64) {
	i := floats.MaxIdx(c.R)
	return c.Thetas[i], c.R[i]
}

// Min returns the angle and value of the curve's smallest reflection
// coefficient. It panics on an empty curve.
func (c *Curve) Min() (theta, r float64) {
	i := floats.MinIdx(c.R)
	return c.Thetas[i], c.R[i]
}

// ZeroCrossings returns the angles at which the curve changes polarity.
// Crossings between samples are found by linear interpolation and samples
// that are exactly zero are reported as-is.
func (c *Curve) ZeroCrossings() []float64 {
	out := []float64{}
	for i := range c.R {
		if c.R[i] == 0 {
			out = append(out, c.Thetas[i])
			continue
		}
		if i+1 == len(c.R) {
			break
		}

		r0, r1 := c.R[i], c.R[i+1]
		if (r0 < 0 && r1 > 0) || (r0 > 0 && r1 < 0) {
			t0, t1 := c.Thetas[i], c.Thetas[i+1]
			out = append(out, t0+(t1-t0)*r0/(r0-r1))
		}
	}
	return out
}

// Gradient returns dR/d(sin^2 theta) at every sample. For Shuey's
// approximation this is the gradient term B at every angle. The angles must
// be distinct and lie within [0, pi/2] so that sin^2 theta is monotonic.
func (c *Curve) Gradient() ([]float64, error) {
	if len(c.R) < 3 {
		return nil, fmt.Errorf("I need at least 3 samples to compute a "+
			"gradient, but the curve only has %d.", len(c.R))
	}

	xs := make([]float64, len(c.Thetas))
	for i, theta := range c.Thetas {
		xs[i] = math.Sin(theta) * math.Sin(theta)
		if i > 0 && !(xs[i] > xs[i-1]) {
			return nil, fmt.Errorf("sin^2(theta) isn't increasing between "+
				"theta = %g and theta = %g.", c.Thetas[i-1], theta)
		}
	}
	return calc.Deriv(xs, c.R), nil
}

// Interpolate returns the curve's value at theta using a cubic spline through
// the samples. theta must lie within the sampled range and the angles must be
// strictly increasing.
func (c *Curve) Interpolate(theta float64) (float64, error) {
	if len(c.R) < 2 {
		return 0, fmt.Errorf("I need at least 2 samples to interpolate, "+
			"but the curve only has %d.", len(c.R))
	}
	for i := 1; i < len(c.Thetas); i++ {
		if !(c.Thetas[i] > c.Thetas[i-1]) {
			return 0, fmt.Errorf("The angles aren't strictly increasing "+
				"at index %d.", i)
		}
	}

	sp := interpolate.NewSpline(c.Thetas, c.R)
	if lo, hi := sp.Range(); theta < lo || theta > hi || math.IsNaN(theta) {
		return 0, fmt.Errorf("theta = %g is outside the sampled range "+
			"[%g, %g].", theta, lo, hi)
	}
	return sp.Eval(theta), nil
}
