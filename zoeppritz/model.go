package zoeppritz

import (
	"math"
)

// Quantities are the intermediate values shared by the approximations. Deltas
// are lower-minus-upper and Vp, Vs, Rho are the two layers' arithmetic means.
type Quantities struct {
	DeltaVp, DeltaVs, DeltaRho float64
	Vp, Vs, Rho                float64
	AI1, AI2                   float64
	PoissonRatio1              float64
	PoissonRatio2              float64
	// A, B and C are the intercept, gradient and curvature terms.
	A, B, C float64
}

// Model is a two-layer interface evaluated at a single incidence angle. All of
// its state is computed by New and never changes afterwards, so a *Model can
// be shared between goroutines.
type Model struct {
	theta        float64
	upper, lower Layer
	q            Quantities
}

// New creates a Model for the incidence angle theta (in radians) at the
// interface between an upper layer with properties (vp1, vs1, rho1) and a
// lower layer with properties (vp2, vs2, rho2).
//
// A *DegenerateError is returned if either layer has vp == vs, or if the mean
// P-wave velocity or the mean density is zero.
func New(theta, vp1, vp2, vs1, vs2, rho1, rho2 float64) (*Model, error) {
	return NewModel(
		theta, Layer{Vp: vp1, Vs: vs1, Rho: rho1},
		Layer{Vp: vp2, Vs: vs2, Rho: rho2},
	)
}

// NewModel is the same as New, but takes the two layers as Layer values.
func NewModel(theta float64, upper, lower Layer) (*Model, error) {
	m := &Model{theta: theta, upper: upper, lower: lower}
	q := &m.q

	q.DeltaVp = lower.Vp - upper.Vp
	q.DeltaVs = lower.Vs - upper.Vs
	q.DeltaRho = lower.Rho - upper.Rho
	q.Vp = (upper.Vp + lower.Vp) / 2
	q.Vs = (upper.Vs + lower.Vs) / 2
	q.Rho = (upper.Rho + lower.Rho) / 2

	q.AI1 = upper.Impedance()
	q.AI2 = lower.Impedance()

	var err error
	if q.PoissonRatio1, err = PoissonRatio(upper.Vp, upper.Vs); err != nil {
		err.(*DegenerateError).Layer = 1
		return nil, err
	}
	if q.PoissonRatio2, err = PoissonRatio(lower.Vp, lower.Vs); err != nil {
		err.(*DegenerateError).Layer = 2
		return nil, err
	}

	if q.Vp == 0 {
		return nil, &DegenerateError{Cause: ZeroMeanVp}
	} else if q.Rho == 0 {
		return nil, &DegenerateError{Cause: ZeroMeanRho}
	}

	k := (q.Vs / q.Vp) * (q.Vs / q.Vp)
	q.A = 0.5 * (q.DeltaVp/q.Vp + q.DeltaRho/q.Rho)
	// 4 (vs/vp)^2 (dvs/vs), written so that a fluid-fluid interface
	// (vs = 0) gives 0 instead of 0/0.
	shear := 4 * q.Vs * q.DeltaVs / (q.Vp * q.Vp)
	q.B = q.DeltaVp/(2*q.Vp) - shear - 2*k*(q.DeltaRho/q.Rho)
	q.C = 0.5 * (q.DeltaVp / q.Vp)

	return m, nil
}

// At returns a new Model for the same pair of layers at the incidence angle
// theta. The receiver is not modified.
func (m *Model) At(theta float64) (*Model, error) {
	return NewModel(theta, m.upper, m.lower)
}

// Theta returns the incidence angle in radians.
func (m *Model) Theta() float64 { return m.theta }

// Upper returns the properties of the upper layer.
func (m *Model) Upper() Layer { return m.upper }

// Lower returns the properties of the lower layer.
func (m *Model) Lower() Layer { return m.lower }

// Quantities returns a copy of the model's derived quantities.
func (m *Model) Quantities() Quantities { return m.q }

func (m *Model) A() float64 { return m.q.A }
func (m *Model) B() float64 { return m.q.B }
func (m *Model) C() float64 { return m.q.C }

// AkiRichards returns the three-term Aki-Richards approximation,
//
//	R(theta) = A + B sin^2(theta) + C sin^2(theta) tan^2(theta).
//
// The tan^2 term diverges as theta approaches pi/2.
func (m *Model) AkiRichards() float64 {
	sin2 := sq(math.Sin(m.theta))
	tan2 := sq(math.Tan(m.theta))
	return m.q.A + m.q.B*sin2 + m.q.C*sin2*tan2
}

// Shuey returns the two-term Shuey approximation, R(theta) = A + B sin^2(theta).
// It is conventionally trusted out to 30 or 40 degrees, but no range is
// enforced here.
func (m *Model) Shuey() float64 {
	return m.q.A + m.q.B*sq(math.Sin(m.theta))
}

// Hilterman returns Hilterman's approximation, which is written in terms of
// the impedance contrast and the Poisson's ratio contrast:
//
//	R(theta) = (AI2 - AI1)/(AI2 + AI1) cos^2(theta) +
//	           (nu2 - nu1)/(1 - <nu>)^2 sin^2(theta).
//
// A *DegenerateError is returned if AI1 + AI2 == 0 or <nu> == 1.
func (m *Model) Hilterman() (float64, error) {
	q := &m.q
	sum := q.AI2 + q.AI1
	if sum == 0 {
		return math.NaN(), &DegenerateError{Cause: ZeroImpedanceSum}
	}
	meanPoisson := (q.PoissonRatio2 + q.PoissonRatio1) / 2
	if meanPoisson == 1 {
		return math.NaN(), &DegenerateError{Cause: UnitMeanPoisson}
	}

	r0 := (q.AI2 - q.AI1) / sum
	pr := (q.PoissonRatio2 - q.PoissonRatio1) / sq(1-meanPoisson)
	return r0*sq(math.Cos(m.theta)) + pr*sq(math.Sin(m.theta)), nil
}

func sq(x float64) float64 { return x * x }
