package cmd

import (
	"fmt"
	"math"
	"strings"

	"github.com/phil-mansfield/avo/cmd/catalog"
	"github.com/phil-mansfield/avo/curve"
	"github.com/phil-mansfield/avo/parse"
)

// SweepConfig samples approximations over an evenly spaced range of angles.
type SweepConfig struct {
	minTheta, maxTheta float64
	samples            int64
	approximations     []string
}

var _ Mode = &SweepConfig{}

func (config *SweepConfig) ExampleConfig() string {
	return `[sweep.config]

# MinTheta and MaxTheta give the range of incidence angles in radians. Both
# ends are included. Aki-Richards diverges as theta approaches pi/2.
MinTheta = 0
MaxTheta = 0.7

# Samples is the number of angles in the range. It must be at least 2.
Samples = 36

# Approximations lists the approximations that will be written to stdout, one
# column each. Supported: aki-richards, shuey, hilterman.
Approximations = aki-richards, shuey, hilterman`
}

func (config *SweepConfig) ReadConfig(fname string) error {
	vars := parse.NewConfigVars("sweep.config")
	vars.Float(&config.minTheta, "MinTheta", 0)
	vars.Float(&config.maxTheta, "MaxTheta", 0.7)
	vars.Int(&config.samples, "Samples", 36)
	vars.Strings(&config.approximations, "Approximations",
		[]string{"aki-richards", "shuey", "hilterman"})

	if fname != "" {
		if err := parse.ReadConfig(fname, vars); err != nil {
			return err
		}
	}
	return config.validate()
}

func (config *SweepConfig) validate() error {
	return validateRange(config.minTheta, config.maxTheta, config.samples, 2)
}

func validateRange(lo, hi float64, samples, minSamples int64) error {
	if math.IsNaN(lo) || math.IsInf(lo, 0) {
		return fmt.Errorf("The 'MinTheta' variable is set to %g.", lo)
	} else if math.IsNaN(hi) || math.IsInf(hi, 0) {
		return fmt.Errorf("The 'MaxTheta' variable is set to %g.", hi)
	} else if hi < lo {
		return fmt.Errorf("'MaxTheta' is %g, which is less than "+
			"'MinTheta', %g.", hi, lo)
	} else if samples < minSamples {
		return fmt.Errorf("The 'Samples' variable is set to %d, but it "+
			"must be at least %d.", samples, minSamples)
	}
	return nil
}

// Run ignores stdin. It writes comment lines summarizing each curve followed
// by one row per angle.
func (config *SweepConfig) Run(
	flags []string, gConfig *GlobalConfig, stdin []string,
) ([]string, error) {
	approxs, err := lookupApproximations(config.approximations)
	if err != nil {
		return nil, err
	}

	upper, lower := gConfig.Layers()
	thetas := curve.Angles(config.minTheta, config.maxTheta,
		int(config.samples))

	names := []string{"Theta"}
	cols := [][]float64{thetas}
	summary := []string{}
	for _, approx := range approxs {
		c, err := curve.Sample(upper, lower, thetas, approx)
		if err != nil {
			return nil, err
		}
		names = append(names, columnName(approx))
		cols = append(cols, c.R)
		summary = append(summary, summarize(c))
	}

	lines := append(summary, catalog.CommentString(names))
	return append(lines, catalog.FormatCols(cols)...), nil
}

func summarize(c *curve.Curve) string {
	maxTheta, maxR := c.Max()
	minTheta, minR := c.Min()

	zs := c.ZeroCrossings()
	crossings := "none"
	if len(zs) > 0 {
		toks := make([]string, len(zs))
		for i := range zs {
			toks[i] = fmt.Sprintf("%.6g", zs[i])
		}
		crossings = strings.Join(toks, ", ")
	}

	line := fmt.Sprintf(
		"# %s: max R = %.6g at theta = %.6g; min R = %.6g at theta = %.6g; "+
			"zero crossings: %s", c.Name, maxR, maxTheta, minR, minTheta,
		crossings,
	)

	// Only reported when the sweep starts at or past normal incidence.
	if grad, err := c.Gradient(); err == nil {
		line += fmt.Sprintf("; dR/dsin^2 at theta = %.6g: %.6g",
			c.Thetas[0], grad[0])
	}
	return line
}
