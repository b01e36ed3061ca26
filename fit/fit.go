/*package fit recovers AVO intercept, gradient and curvature terms from sampled
reflection coefficients.*/
package fit

import (
	"fmt"
	"math"

	"github.com/gonum/matrix/mat64"
)

// Coefficients are the terms of R(theta) = A + B sin^2(theta) +
// C sin^2(theta) tan^2(theta). C is always zero for a two-term fit.
type Coefficients struct {
	A, B, C float64
	Terms   int
}

// Eval evaluates the fitted curve at theta.
func (c Coefficients) Eval(theta float64) float64 {
	sin2 := math.Sin(theta) * math.Sin(theta)
	tan2 := math.Tan(theta) * math.Tan(theta)
	return c.A + c.B*sin2 + c.C*sin2*tan2
}

// Fit performs a least-squares fit of the reflection coefficients rs sampled
// at the angles thetas. terms must be 2 (Shuey's form) or 3 (Aki and
// Richards' form).
func Fit(thetas, rs []float64, terms int) (Coefficients, error) {
	n := len(thetas)
	if len(rs) != n {
		return Coefficients{}, fmt.Errorf(
			"I was given %d angles but %d reflection coefficients.",
			n, len(rs),
		)
	} else if terms != 2 && terms != 3 {
		return Coefficients{}, fmt.Errorf(
			"I can only fit 2 or 3 terms, but was asked to fit %d.", terms,
		)
	} else if n < terms {
		return Coefficients{}, fmt.Errorf(
			"I need at least %d samples for a %d-term fit, but only got %d.",
			terms, terms, n,
		)
	}

	xVals := make([]float64, n*terms)
	xtVals := make([]float64, n*terms)
	for i, theta := range thetas {
		row := basis(theta, terms)
		for j := range row {
			xVals[i*terms+j] = row[j]
			xtVals[j*n+i] = row[j]
		}
	}

	x := mat64.NewDense(n, terms, xVals)
	xt := mat64.NewDense(terms, n, xtVals)
	y := mat64.NewDense(n, 1, append([]float64{}, rs...))

	xtx := mat64.NewDense(terms, terms, make([]float64, terms*terms))
	xtx.Mul(xt, x)
	inv := &mat64.Dense{}
	if err := inv.Inverse(xtx); err != nil {
		return Coefficients{}, fmt.Errorf(
			"The sampled angles don't constrain a %d-term fit: %s",
			terms, err.Error(),
		)
	}

	xty := mat64.NewDense(terms, 1, make([]float64, terms))
	xty.Mul(xt, y)
	beta := mat64.NewDense(terms, 1, make([]float64, terms))
	beta.Mul(inv, xty)

	c := Coefficients{A: beta.At(0, 0), B: beta.At(1, 0), Terms: terms}
	if terms == 3 {
		c.C = beta.At(2, 0)
	}
	return c, nil
}

func basis(theta float64, terms int) []float64 {
	sin2 := math.Sin(theta) * math.Sin(theta)
	if terms == 2 {
		return []float64{1, sin2}
	}
	tan2 := math.Tan(theta) * math.Tan(theta)
	return []float64{1, sin2, sin2 * tan2}
}

// Residual returns the root-mean-square difference between the fitted curve
// and the samples.
func (c Coefficients) Residual(thetas, rs []float64) float64 {
	if len(thetas) == 0 {
		return 0
	}
	sum := 0.0
	for i := range thetas {
		d := c.Eval(thetas[i]) - rs[i]
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(thetas)))
}
