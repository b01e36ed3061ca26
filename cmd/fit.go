package cmd

import (
	"fmt"

	"github.com/phil-mansfield/avo/cmd/catalog"
	"github.com/phil-mansfield/avo/curve"
	"github.com/phil-mansfield/avo/fit"
	"github.com/phil-mansfield/avo/parse"
	"github.com/phil-mansfield/avo/zoeppritz"
)

// FitConfig samples one approximation and fits intercept/gradient (and
// optionally curvature) terms back to it.
type FitConfig struct {
	minTheta, maxTheta float64
	samples            int64
	terms              int64
	source             string
}

var _ Mode = &FitConfig{}

func (config *FitConfig) ExampleConfig() string {
	return `[fit.config]

# MinTheta and MaxTheta give the range of incidence angles in radians used
# for the fit. Both ends are included.
MinTheta = 0
MaxTheta = 0.6

# Samples is the number of angles the source curve is sampled at.
Samples = 31

# Terms is 2 for a Shuey-style fit, A + B sin^2(theta), or 3 to add the
# Aki-Richards curvature term, C sin^2(theta) tan^2(theta).
Terms = 2

# Source is the approximation whose curve is fit. Supported: aki-richards,
# shuey, hilterman.
Source = hilterman`
}

func (config *FitConfig) ReadConfig(fname string) error {
	vars := parse.NewConfigVars("fit.config")
	vars.Float(&config.minTheta, "MinTheta", 0)
	vars.Float(&config.maxTheta, "MaxTheta", 0.6)
	vars.Int(&config.samples, "Samples", 31)
	vars.Int(&config.terms, "Terms", 2)
	vars.String(&config.source, "Source", "hilterman")

	if fname != "" {
		if err := parse.ReadConfig(fname, vars); err != nil {
			return err
		}
	}
	return config.validate()
}

func (config *FitConfig) validate() error {
	if config.terms != 2 && config.terms != 3 {
		return fmt.Errorf("The 'Terms' variable is set to %d, but only 2 "+
			"and 3 are supported.", config.terms)
	}
	if _, err := zoeppritz.Lookup(config.source); err != nil {
		return fmt.Errorf("I couldn't use the 'Source' variable: %s",
			err.Error())
	}
	return validateRange(config.minTheta, config.maxTheta, config.samples,
		config.terms)
}

// Run ignores stdin. The first row is the interface's own A, B and C and the
// second row is the least-squares fit to the sampled source curve.
func (config *FitConfig) Run(
	flags []string, gConfig *GlobalConfig, stdin []string,
) ([]string, error) {
	approx, err := zoeppritz.Lookup(config.source)
	if err != nil {
		return nil, err
	}

	upper, lower := gConfig.Layers()
	m, err := zoeppritz.NewModel(config.minTheta, upper, lower)
	if err != nil {
		return nil, err
	}
	logQuantities(m)

	thetas := curve.Angles(config.minTheta, config.maxTheta,
		int(config.samples))
	c, err := curve.Sample(upper, lower, thetas, approx)
	if err != nil {
		return nil, err
	}

	coeffs, err := fit.Fit(c.Thetas, c.R, int(config.terms))
	if err != nil {
		return nil, err
	}
	exact := fit.Coefficients{A: m.A(), B: m.B(), C: m.C(), Terms: 3}

	cols := [][]float64{
		{exact.A, coeffs.A},
		{exact.B, coeffs.B},
		{exact.C, coeffs.C},
		{exact.Residual(c.Thetas, c.R), coeffs.Residual(c.Thetas, c.R)},
	}

	header := []string{
		fmt.Sprintf("# Row 0: interface coefficients. Row 1: %d-term fit "+
			"to %s over %d angles.", config.terms, approx.Name(),
			config.samples),
		catalog.CommentString([]string{"A", "B", "C", "RMS"}),
	}
	return append(header, catalog.FormatCols(cols)...), nil
}
