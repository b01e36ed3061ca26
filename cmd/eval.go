package cmd

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/phil-mansfield/avo/cmd/catalog"
	"github.com/phil-mansfield/avo/parse"
	"github.com/phil-mansfield/avo/zoeppritz"
)

// EvalConfig evaluates approximations at the angles listed on stdin, or at
// the angles in the config file if stdin has none.
type EvalConfig struct {
	approximations []string
	thetas         []float64
	yaml           bool
}

var _ Mode = &EvalConfig{}

func (config *EvalConfig) ExampleConfig() string {
	return `[eval.config]

# Approximations lists the approximations that will be written to stdout, one
# column each, in the order given.
#
# The supported approximations are:
# aki-richards - A + B sin^2(theta) + C sin^2(theta) tan^2(theta)
# shuey        - A + B sin^2(theta)
# hilterman    - impedance contrast and Poisson's ratio contrast form
Approximations = aki-richards, shuey, hilterman

# Thetas lists incidence angles in radians. They are only used if no angles
# are given on stdin.
Thetas =

# If YAML is true, a report of every derived quantity is written for each
# angle instead of a table. This is the same as passing --yaml.
YAML = false`
}

func (config *EvalConfig) ReadConfig(fname string) error {
	vars := parse.NewConfigVars("eval.config")
	vars.Strings(&config.approximations, "Approximations",
		[]string{"aki-richards", "shuey", "hilterman"})
	vars.Floats(&config.thetas, "Thetas", []float64{})
	vars.Bool(&config.yaml, "YAML", false)

	if fname == "" {
		return nil
	}
	if err := parse.ReadConfig(fname, vars); err != nil {
		return err
	}
	_, err := lookupApproximations(config.approximations)
	return err
}

// Run reads incidence angles in radians from the first column of stdin,
// falling back to the config's Thetas. With the --yaml flag or YAML = true it
// writes a report of every derived quantity instead of a table.
func (config *EvalConfig) Run(
	flags []string, gConfig *GlobalConfig, stdin []string,
) ([]string, error) {
	approxs, err := lookupApproximations(config.approximations)
	if err != nil {
		return nil, err
	}

	cols, err := catalog.ParseCols(stdin, []int{0})
	if err != nil {
		return nil, err
	}
	thetas := cols[0]
	if len(thetas) == 0 {
		thetas = config.thetas
	}
	if len(thetas) == 0 {
		return nil, fmt.Errorf("I wasn't given any angles on stdin or in " +
			"the 'Thetas' variable.")
	}

	upper, lower := gConfig.Layers()
	models := make([]*zoeppritz.Model, len(thetas))
	rs := make([][]float64, len(approxs))
	for j := range rs {
		rs[j] = make([]float64, len(thetas))
	}

	for i, theta := range thetas {
		if models[i], err = zoeppritz.NewModel(theta, upper, lower); err != nil {
			return nil, err
		}
		logQuantities(models[i])

		for j, approx := range approxs {
			if rs[j][i], err = approx.Reflectivity(models[i]); err != nil {
				return nil, err
			}
		}
	}

	if config.yaml || hasFlag(flags, "yaml") {
		return yamlReport(models, approxs, rs)
	}

	names := []string{"Theta"}
	for _, approx := range approxs {
		names = append(names, columnName(approx))
	}
	lines := catalog.FormatCols(append([][]float64{thetas}, rs...))
	return append([]string{catalog.CommentString(names)}, lines...), nil
}

type layerReport struct {
	Vp  float64 `yaml:"vp"`
	Vs  float64 `yaml:"vs"`
	Rho float64 `yaml:"rho"`
}

type quantitiesReport struct {
	DeltaVp       float64 `yaml:"delta_vp"`
	DeltaVs       float64 `yaml:"delta_vs"`
	DeltaRho      float64 `yaml:"delta_rho"`
	Vp            float64 `yaml:"vp"`
	Vs            float64 `yaml:"vs"`
	Rho           float64 `yaml:"rho"`
	AI1           float64 `yaml:"ai_1"`
	AI2           float64 `yaml:"ai_2"`
	PoissonRatio1 float64 `yaml:"poisson_ratio_1"`
	PoissonRatio2 float64 `yaml:"poisson_ratio_2"`
	A             float64 `yaml:"a"`
	B             float64 `yaml:"b"`
	C             float64 `yaml:"c"`
}

type report struct {
	Theta        float64            `yaml:"theta"`
	Upper        layerReport        `yaml:"upper"`
	Lower        layerReport        `yaml:"lower"`
	Quantities   quantitiesReport   `yaml:"quantities"`
	Reflectivity map[string]float64 `yaml:"reflectivity"`
}

func newLayerReport(l zoeppritz.Layer) layerReport {
	return layerReport{Vp: l.Vp, Vs: l.Vs, Rho: l.Rho}
}

func yamlReport(
	models []*zoeppritz.Model, approxs []zoeppritz.Approximation,
	rs [][]float64,
) ([]string, error) {
	reports := make([]report, len(models))
	for i, m := range models {
		q := m.Quantities()
		reports[i] = report{
			Theta: m.Theta(),
			Upper: newLayerReport(m.Upper()),
			Lower: newLayerReport(m.Lower()),
			Quantities: quantitiesReport{
				DeltaVp: q.DeltaVp, DeltaVs: q.DeltaVs, DeltaRho: q.DeltaRho,
				Vp: q.Vp, Vs: q.Vs, Rho: q.Rho,
				AI1: q.AI1, AI2: q.AI2,
				PoissonRatio1: q.PoissonRatio1, PoissonRatio2: q.PoissonRatio2,
				A: q.A, B: q.B, C: q.C,
			},
			Reflectivity: map[string]float64{},
		}
		for j, approx := range approxs {
			reports[i].Reflectivity[approx.Name()] = rs[j][i]
		}
	}

	bs, err := yaml.Marshal(reports)
	if err != nil {
		return nil, err
	}
	return strings.Split(strings.TrimRight(string(bs), "\n"), "\n"), nil
}
