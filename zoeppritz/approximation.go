package zoeppritz

import (
	"fmt"
	"strings"
)

// Approximation is a closed-form approximation to the P-P reflection
// coefficient that can be evaluated on a Model.
type Approximation interface {
	Name() string
	Reflectivity(m *Model) (float64, error)
}

// Aki, K. and Richards, P. G. (1980), "Quantitative Seismology: Theory and
// Methods", W. H. Freeman.
type AkiRichards struct{}

func (AkiRichards) Name() string { return "aki-richards" }

func (AkiRichards) Reflectivity(m *Model) (float64, error) {
	return m.AkiRichards(), nil
}

// Shuey, R. T. (1985), "A simplification of the Zoeppritz equations",
// Geophysics, 50(4), 609-614.
type Shuey struct{}

func (Shuey) Name() string { return "shuey" }

func (Shuey) Reflectivity(m *Model) (float64, error) {
	return m.Shuey(), nil
}

// Hilterman, F. J. (2001), "Seismic Amplitude Interpretation", SEG/EAGE
// Distinguished Instructor Short Course.
type Hilterman struct{}

func (Hilterman) Name() string { return "hilterman" }

func (Hilterman) Reflectivity(m *Model) (float64, error) {
	return m.Hilterman()
}

var approximations = []Approximation{AkiRichards{}, Shuey{}, Hilterman{}}

// Approximations returns every supported approximation.
func Approximations() []Approximation {
	out := make([]Approximation, len(approximations))
	copy(out, approximations)
	return out
}

// Lookup returns the approximation with the given (case-insensitive) name.
func Lookup(name string) (Approximation, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, approx := range approximations {
		if approx.Name() == name {
			return approx, nil
		}
	}

	names := make([]string, len(approximations))
	for i := range approximations {
		names[i] = approximations[i].Name()
	}
	return nil, fmt.Errorf("The approximation '%s' isn't recognized. "+
		"Valid names are: %s.", name, strings.Join(names, ", "))
}
