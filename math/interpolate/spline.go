/*package interpolate provides natural cubic splines through tabulated
points.*/
package interpolate

import (
	"fmt"
)

type splineCoeff struct {
	a, b, c, d float64
}

// Spline is a natural cubic spline through a table of points with strictly
// increasing x values.
type Spline struct {
	xs, ys, y2s []float64
	coeffs      []splineCoeff
}

// NewSpline creates a spline through the points (xs[i], ys[i]). It panics if
// the slices differ in length, have fewer than two points, or if xs isn't
// strictly increasing.
func NewSpline(xs, ys []float64) *Spline {
	if len(xs) != len(ys) {
		panic(fmt.Sprintf("Table given to NewSpline() has len(xs) = %d "+
			"but len(ys) = %d.", len(xs), len(ys)))
	} else if len(xs) <= 1 {
		panic(fmt.Sprintf("Table given to NewSpline() has "+
			"length of %d.", len(xs)))
	}
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			panic(fmt.Sprintf("Table given to NewSpline() isn't strictly "+
				"increasing at index %d.", i))
		}
	}

	sp := &Spline{
		xs:     append([]float64{}, xs...),
		ys:     append([]float64{}, ys...),
		y2s:    make([]float64, len(xs)),
		coeffs: make([]splineCoeff, len(xs)-1),
	}
	sp.calcY2s()
	sp.calcCoeffs()
	return sp
}

// Range returns the smallest and largest x values in the table.
func (sp *Spline) Range() (lo, hi float64) {
	return sp.xs[0], sp.xs[len(sp.xs)-1]
}

// Eval computes the value of the spline at x. x must be within Range().
func (sp *Spline) Eval(x float64) float64 {
	i := sp.search(x)
	dx := x - sp.xs[i]
	a, b, c, d := sp.coeffs[i].a, sp.coeffs[i].b, sp.coeffs[i].c, sp.coeffs[i].d
	return a*dx*dx*dx + b*dx*dx + c*dx + d
}

// search returns the index of the segment containing x.
func (sp *Spline) search(x float64) int {
	n := len(sp.xs)
	if x < sp.xs[0] || x > sp.xs[n-1] {
		panic(fmt.Sprintf("Point %g out of Spline bounds [%g, %g].",
			x, sp.xs[0], sp.xs[n-1]))
	}

	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= sp.xs[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// calcY2s solves for the second derivative at every interior point. The
// boundaries are set to zero.
func (sp *Spline) calcY2s() {
	n := len(sp.xs)
	if n < 3 {
		return
	}

	as, bs := make([]float64, n-2), make([]float64, n-2)
	cs, rs := make([]float64, n-2), make([]float64, n-2)
	xs, ys := sp.xs, sp.ys
	for i := range rs {
		j := i + 1
		as[i] = (xs[j] - xs[j-1]) / 6
		bs[i] = (xs[j+1] - xs[j-1]) / 3
		cs[i] = (xs[j+1] - xs[j]) / 6
		rs[i] = (ys[j+1]-ys[j])/(xs[j+1]-xs[j]) -
			(ys[j]-ys[j-1])/(xs[j]-xs[j-1])
	}

	TriDiagAt(as, bs, cs, rs, sp.y2s[1:n-1])
}

func (sp *Spline) calcCoeffs() {
	xs, ys, y2s := sp.xs, sp.ys, sp.y2s
	for i := range sp.coeffs {
		dx := xs[i+1] - xs[i]
		sp.coeffs[i] = splineCoeff{
			a: (y2s[i+1] - y2s[i]) / (6 * dx),
			b: y2s[i] / 2,
			c: (ys[i+1]-ys[i])/dx - dx*(2*y2s[i]+y2s[i+1])/6,
			d: ys[i],
		}
	}
}

// TriDiagAt solves the tridiagonal system
//
//	| b0 c0 ..       |   | out0 |   | r0 |
//	| a1 b1 c1 ..    |   | out1 |   | r1 |
//	| ..             | * | ..   | = | .. |
//	| ..       an bn |   | outn |   | rn |
//
// in place in out. a0 and cn are ignored.
func TriDiagAt(as, bs, cs, rs, out []float64) {
	if len(as) != len(bs) || len(as) != len(cs) ||
		len(as) != len(out) || len(as) != len(rs) {
		panic("Length of arguments to TriDiagAt are unequal.")
	}

	tmp := make([]float64, len(as))
	beta := bs[0]
	if beta == 0 {
		panic("TriDiagAt cannot solve given system.")
	}
	out[0] = rs[0] / beta

	for i := 1; i < len(out); i++ {
		tmp[i] = cs[i-1] / beta
		beta = bs[i] - as[i]*tmp[i]
		if beta == 0 {
			panic("TriDiagAt cannot solve given system.")
		}
		out[i] = (rs[i] - as[i]*out[i-1]) / beta
	}

	for i := len(out) - 2; i >= 0; i-- {
		out[i] -= tmp[i+1] * out[i+1]
	}
}
