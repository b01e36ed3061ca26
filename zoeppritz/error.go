package zoeppritz

import (
	"errors"
	"fmt"
)

// ErrDegenerate is matched by every *DegenerateError through errors.Is.
var ErrDegenerate = errors.New("zoeppritz: degenerate input")

// Cause identifies which quantity made an input degenerate.
type Cause int

const (
	// EqualVelocities means vp^2 == vs^2 in a layer, so Poisson's ratio has
	// a zero denominator.
	EqualVelocities Cause = iota
	// ZeroMeanVp means the two layers' P-wave velocities average to zero.
	ZeroMeanVp
	// ZeroMeanRho means the two layers' densities average to zero.
	ZeroMeanRho
	// ZeroImpedanceSum means AI_1 + AI_2 == 0.
	ZeroImpedanceSum
	// UnitMeanPoisson means the mean Poisson's ratio is exactly 1.
	UnitMeanPoisson
)

func (c Cause) String() string {
	switch c {
	case EqualVelocities:
		return "P-wave and S-wave velocities have equal magnitude"
	case ZeroMeanVp:
		return "mean P-wave velocity is zero"
	case ZeroMeanRho:
		return "mean density is zero"
	case ZeroImpedanceSum:
		return "acoustic impedances sum to zero"
	case UnitMeanPoisson:
		return "mean Poisson's ratio is one"
	}
	return fmt.Sprintf("Cause(%d)", int(c))
}

// DegenerateError reports an input for which one of the formulas divides by
// zero. Layer is 1 for the upper layer, 2 for the lower layer and 0 when the
// problem isn't specific to a single layer.
type DegenerateError struct {
	Cause Cause
	Layer int
}

func (err *DegenerateError) Error() string {
	if err.Layer == 0 {
		return fmt.Sprintf("zoeppritz: degenerate input: %s", err.Cause)
	}
	return fmt.Sprintf("zoeppritz: degenerate input in layer %d: %s",
		err.Layer, err.Cause)
}

// Is lets errors.Is(err, ErrDegenerate) succeed.
func (err *DegenerateError) Is(target error) bool {
	return target == ErrDegenerate
}
