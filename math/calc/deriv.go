/*package calc provides some basic calculus routines.
*/
package calc

// Deriv computes the numerical derivative dy/dx of a sequence of (x, y)
// points with three-point Lagrange stencils. The points do not need to be
// uniformly spaced, but xs must be strictly monotonic. The result is exact
// for quadratics.
//
// Deriv panics if fewer than three points are given.
func Deriv(xs, ys []float64) []float64 {
	n := len(xs)
	if len(ys) != n {
		panic("Length of ys and xs are not the same.")
	} else if n < 3 {
		panic("Deriv requires at least three points.")
	}
	out := make([]float64, n)

	for i := 1; i < n-1; i++ {
		h1, h2 := xs[i]-xs[i-1], xs[i+1]-xs[i]
		out[i] = -h2/(h1*(h1+h2))*ys[i-1] +
			(h2-h1)/(h1*h2)*ys[i] +
			h1/(h2*(h1+h2))*ys[i+1]
	}

	h1, h2 := xs[1]-xs[0], xs[2]-xs[1]
	out[0] = -(2*h1+h2)/(h1*(h1+h2))*ys[0] +
		(h1+h2)/(h1*h2)*ys[1] -
		h1/(h2*(h1+h2))*ys[2]

	h1, h2 = xs[n-2]-xs[n-3], xs[n-1]-xs[n-2]
	out[n-1] = h2/(h1*(h1+h2))*ys[n-3] -
		(h1+h2)/(h1*h2)*ys[n-2] +
		(2*h2+h1)/(h2*(h1+h2))*ys[n-1]

	return out
}
