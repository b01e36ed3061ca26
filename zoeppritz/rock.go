/*package zoeppritz computes closed-form approximations to the Zoeppritz
equations: the P-wave reflection coefficient at a planar interface between two
isotropic elastic half-spaces as a function of incidence angle.*/
package zoeppritz

import (
	"math"
)

// Layer holds the elastic properties of one half-space. Velocities and
// density may be in any consistent units: only their ratios and contrasts
// enter the approximations.
type Layer struct {
	Vp, Vs, Rho float64
}

// AcousticImpedance returns the acoustic impedance, Z = v * rho.
func AcousticImpedance(velocity, density float64) float64 {
	return velocity * density
}

// PoissonRatio computes Poisson's ratio of an isotropic medium from its P- and
// S-wave velocities,
//
//	nu = (vp^2 - 2 vs^2) / (2 (vp^2 - vs^2)).
//
// The ratio is undefined when vp^2 == vs^2, which includes vp == -vs and
// velocities small enough that both squares underflow. In that case NaN is
// returned along with a *DegenerateError.
func PoissonRatio(vp, vs float64) (float64, error) {
	vp2, vs2 := vp*vp, vs*vs
	if vp2 == vs2 {
		return math.NaN(), &DegenerateError{Cause: EqualVelocities}
	}
	return (vp2 - 2*vs2) / (2 * (vp2 - vs2)), nil
}

// Impedance returns the acoustic impedance of the layer.
func (l Layer) Impedance() float64 { return AcousticImpedance(l.Vp, l.Rho) }
