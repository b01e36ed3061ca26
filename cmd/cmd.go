/*package cmd contains code for running avo in its various command line
modes.*/
package cmd

import (
	"fmt"
	"math"
	"strings"

	"github.com/phil-mansfield/avo/logging"
	"github.com/phil-mansfield/avo/parse"
	"github.com/phil-mansfield/avo/version"
	"github.com/phil-mansfield/avo/zoeppritz"
)

var ModeNames map[string]Mode = map[string]Mode{
	"eval":  &EvalConfig{},
	"sweep": &SweepConfig{},
	"fit":   &FitConfig{},
}

// Config is anything that can be read from a config file.
type Config interface {
	// ReadConfig reads a config file and stores its contents. An empty
	// file name means that every variable takes its default value.
	ReadConfig(fname string) error
	// ExampleConfig returns the text of an example config file.
	ExampleConfig() string
}

// Mode represents the interface used by the main binary when interacting with
// a given command line mode.
type Mode interface {
	Config
	// Run executes the mode. It takes a list of command line flags, an
	// initialized GlobalConfig, and the lines of stdin. It returns the
	// lines that should be written to stdout.
	Run(flags []string, gConfig *GlobalConfig, stdin []string) ([]string, error)
}

// GlobalConfig is the config file used by every mode. It describes the two
// layers on either side of the interface.
type GlobalConfig struct {
	version string

	vp1, vs1, rho1 float64
	vp2, vs2, rho2 float64
}

var _ Config = &GlobalConfig{}

// ReadConfig reads a config file and returns an error, if applicable.
func (config *GlobalConfig) ReadConfig(fname string) error {
	vars := parse.NewConfigVars("config")
	vars.String(&config.version, "Version", version.SourceVersion)
	vars.Float(&config.vp1, "Vp1", math.NaN())
	vars.Float(&config.vs1, "Vs1", math.NaN())
	vars.Float(&config.rho1, "Rho1", math.NaN())
	vars.Float(&config.vp2, "Vp2", math.NaN())
	vars.Float(&config.vs2, "Vs2", math.NaN())
	vars.Float(&config.rho2, "Rho2", math.NaN())

	if fname == "" {
		return fmt.Errorf("I wasn't given a global config file.")
	}
	if err := parse.ReadConfig(fname, vars); err != nil {
		return err
	}
	return config.validate()
}

// validate checks that all the user-generated fields of GlobalConfig are
// properly set.
func (config *GlobalConfig) validate() error {
	if err := version.Compatible(config.version); err != nil {
		return fmt.Errorf("I couldn't use the 'Version' variable: %s",
			err.Error())
	}

	vals := []struct {
		name string
		x    float64
	}{
		{"Vp1", config.vp1}, {"Vs1", config.vs1}, {"Rho1", config.rho1},
		{"Vp2", config.vp2}, {"Vs2", config.vs2}, {"Rho2", config.rho2},
	}
	for _, val := range vals {
		if math.IsNaN(val.x) {
			return fmt.Errorf("The '%s' variable isn't set.", val.name)
		}
	}

	upper, lower := config.Layers()
	if _, err := zoeppritz.NewModel(0, upper, lower); err != nil {
		return fmt.Errorf("The layers in the config file describe a "+
			"degenerate interface: %w", err)
	}

	return nil
}

// Layers returns the upper and lower layers described by the config file.
func (config *GlobalConfig) Layers() (upper, lower zoeppritz.Layer) {
	upper = zoeppritz.Layer{Vp: config.vp1, Vs: config.vs1, Rho: config.rho1}
	lower = zoeppritz.Layer{Vp: config.vp2, Vs: config.vs2, Rho: config.rho2}
	return upper, lower
}

// ExampleConfig returns an example configuration file.
func (config *GlobalConfig) ExampleConfig() string {
	return fmt.Sprintf(`[config]
# Target version of avo. This option merely allows avo to notice when its
# source and configuration files are not from the same version.
#
# This variable defaults to the source version if not included.
Version = %s

# Elastic properties of the upper layer (1) and the lower layer (2). Any
# consistent units work, since only ratios and contrasts enter the formulas.
# The values below are a shale over a brine sand, in m/s and kg/m^3.
Vp1 = 3000
Vs1 = 1500
Rho1 = 2200

Vp2 = 3500
Vs2 = 1800
Rho2 = 2300`, version.SourceVersion)
}

// lookupApproximations resolves a list of approximation names.
func lookupApproximations(names []string) ([]zoeppritz.Approximation, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("The 'Approximations' variable is empty.")
	}
	out := make([]zoeppritz.Approximation, len(names))
	for i := range names {
		approx, err := zoeppritz.Lookup(names[i])
		if err != nil {
			return nil, err
		}
		out[i] = approx
	}
	return out, nil
}

// columnName converts an approximation name like "aki-richards" into a column
// label like "AkiRichards".
func columnName(approx zoeppritz.Approximation) string {
	toks := strings.Split(approx.Name(), "-")
	for i := range toks {
		if len(toks[i]) > 0 {
			toks[i] = strings.ToUpper(toks[i][:1]) + toks[i][1:]
		}
	}
	return strings.Join(toks, "")
}

func logQuantities(m *zoeppritz.Model) {
	q := m.Quantities()
	logging.Debugf(
		"theta = %g: A = %g, B = %g, C = %g, AI = (%g, %g), nu = (%g, %g)",
		m.Theta(), q.A, q.B, q.C, q.AI1, q.AI2,
		q.PoissonRatio1, q.PoissonRatio2,
	)
}

func hasFlag(flags []string, name string) bool {
	for _, flag := range flags {
		if strings.TrimLeft(flag, "-") == name {
			return true
		}
	}
	return false
}
