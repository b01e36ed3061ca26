/*avo computes amplitude-versus-angle reflection coefficients at the interface
between two elastic layers.*/
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phil-mansfield/avo/cmd"
	"github.com/phil-mansfield/avo/logging"
	"github.com/phil-mansfield/avo/version"
)

// globalConfigEnv names an environment variable that can hold the global
// config file, so that only the mode config needs to be passed.
const globalConfigEnv = "AVO_GLOBAL_CONFIG"

var modeDescriptions = map[string]string{
	"eval":  "Evaluate approximations at the angles (radians) listed on stdin",
	"sweep": "Sample approximations over an evenly spaced range of angles",
	"fit":   "Fit intercept, gradient and curvature terms to a sampled curve",
}

func main() {
	if err := newRootCommand(os.Stdin).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(stdin io.Reader) *cobra.Command {
	var logMode string

	root := &cobra.Command{
		Use:   "avo",
		Short: "AVO reflection-coefficient approximations",
		Long: `avo evaluates the Aki-Richards, Shuey and Hilterman approximations to the
Zoeppritz equations for the interface between two elastic layers.

My analysis modes are:
avo eval  [flags] ____.config [____.eval.config]  < angles
avo sweep [flags] ____.config [____.sweep.config]
avo fit   [flags] ____.config [____.fit.config]`,
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			flag, err := logging.ParseFlag(logMode)
			if err != nil {
				return err
			}
			logging.Mode = flag
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logMode, "log", "nil",
		"logging mode: nil, performance or debug")

	names := make([]string, 0, len(cmd.ModeNames))
	for name := range cmd.ModeNames {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		root.AddCommand(newModeCommand(name, cmd.ModeNames[name], stdin))
	}

	root.AddCommand(newExampleCommand(), newVersionCommand())
	return root
}

func newModeCommand(name string, mode cmd.Mode, stdin io.Reader) *cobra.Command {
	var yamlOut bool

	c := &cobra.Command{
		Use:   fmt.Sprintf("%s ____.config [____.%s.config]", name, name),
		Short: modeDescriptions[name],
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(c *cobra.Command, args []string) error {
			defer logging.Timer(name)()

			gConfig, modeFile, err := getConfigs(args)
			if err != nil {
				return fmt.Errorf("Error running mode %s:\n%s", name, err)
			}
			if err = mode.ReadConfig(modeFile); err != nil {
				return fmt.Errorf("Error running mode %s:\n%s", name, err)
			}

			var lines []string
			if name == "eval" {
				if lines, err = readLines(stdin); err != nil {
					return err
				}
			}

			flags := []string{}
			if yamlOut {
				flags = append(flags, "--yaml")
			}

			out, err := mode.Run(flags, gConfig, lines)
			if err != nil {
				return fmt.Errorf("Error running mode %s:\n%s", name, err)
			}
			for i := range out {
				fmt.Fprintln(c.OutOrStdout(), out[i])
			}
			return nil
		},
	}
	if name == "eval" {
		c.Flags().BoolVar(&yamlOut, "yaml", false,
			"write a YAML report of every derived quantity")
	}
	return c
}

func newExampleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "example [ config | eval | sweep | fit ]",
		Short: "Print an example config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			var config cmd.Config = &cmd.GlobalConfig{}
			if args[0] != "config" {
				mode, ok := cmd.ModeNames[args[0]]
				if !ok {
					return fmt.Errorf("I don't recognize the example "+
						"target '%s'", args[0])
				}
				config = mode
			}
			fmt.Fprintln(c.OutOrStdout(), config.ExampleConfig())
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the source version",
		Args:  cobra.NoArgs,
		Run: func(c *cobra.Command, args []string) {
			fmt.Fprintf(c.OutOrStdout(), "avo version %s\n",
				version.SourceVersion)
		},
	}
}

// getConfigs reads the global config file and returns the name of the
// mode-specific config file, which is "" if none was given.
func getConfigs(args []string) (*cmd.GlobalConfig, string, error) {
	gName, modeName := "", ""
	if env := os.Getenv(globalConfigEnv); env != "" {
		if len(args) > 1 {
			return nil, "", fmt.Errorf("$%s has been set, so you may only "+
				"pass a single config file as a parameter.", globalConfigEnv)
		}
		gName = env
		if len(args) == 1 {
			modeName = args[0]
		}
	} else {
		switch len(args) {
		case 0:
			return nil, "", fmt.Errorf("No config files provided in " +
				"command line arguments.")
		case 2:
			modeName = args[1]
		}
		gName = args[0]
	}

	gConfig := &cmd.GlobalConfig{}
	if err := gConfig.ReadConfig(gName); err != nil {
		return nil, "", err
	}
	return gConfig, modeName, nil
}

// readLines reads r and splits it into lines.
func readLines(r io.Reader) ([]string, error) {
	bs, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("Error reading stdin: %s.", err.Error())
	}
	lines := strings.Split(string(bs), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}
