package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, text string) string {
	fname := filepath.Join(t.TempDir(), "avo_config_test.config")
	if err := os.WriteFile(fname, []byte(text), 0644); err != nil {
		t.Fatal(err.Error())
	}
	return fname
}

func TestExampleFiles(t *testing.T) {
	tests := []Config{
		&GlobalConfig{},
		&EvalConfig{},
		&SweepConfig{},
		&FitConfig{},
	}

	for i := range tests {
		config := tests[i]
		fname := writeConfig(t, config.ExampleConfig())
		if err := config.ReadConfig(fname); err != nil {
			t.Errorf("%d) Got error when parsing config file:\n%s",
				i, err.Error())
		}
	}
}

func TestEmptyModeConfigs(t *testing.T) {
	for name, mode := range ModeNames {
		if err := mode.ReadConfig(""); err != nil {
			t.Errorf("%s) Default config is invalid: %s", name, err.Error())
		}
	}
}

func TestInvalidGlobalConfig(t *testing.T) {
	texts := []string{
		"[config]\nVp1 = 3000\nVs1 = 1500\nRho1 = 2200\nVp2 = 3500\nVs2 = 1800",
		"[config]\nVersion = 99.0.0\nVp1 = 3000\nVs1 = 1500\nRho1 = 2200\n" +
			"Vp2 = 3500\nVs2 = 1800\nRho2 = 2300",
		"[config]\nVp1 = 1500\nVs1 = 1500\nRho1 = 2200\n" +
			"Vp2 = 3500\nVs2 = 1800\nRho2 = 2300",
		"[eval.config]\nVp1 = 3000",
	}

	for i, text := range texts {
		config := &GlobalConfig{}
		if err := config.ReadConfig(writeConfig(t, text)); err == nil {
			t.Errorf("%d) Expected an error from the global config %q.",
				i, text)
		}
	}

	if err := (&GlobalConfig{}).ReadConfig(""); err == nil {
		t.Errorf("Expected an error when no global config is given.")
	}
}

func TestInvalidModeConfigs(t *testing.T) {
	tests := []struct {
		mode Mode
		text string
	}{
		{&EvalConfig{}, "[eval.config]\nApproximations = zoeppritz"},
		{&EvalConfig{}, "[eval.config]\nApproximations ="},
		{&EvalConfig{}, "[eval.config]\nThetas = 0.1, meow"},
		{&EvalConfig{}, "[eval.config]\nYAML = maybe"},
		{&SweepConfig{}, "[sweep.config]\nSamples = 1"},
		{&SweepConfig{}, "[sweep.config]\nMinTheta = 1\nMaxTheta = 0.5"},
		{&SweepConfig{}, "[sweep.config]\nMaxTheta = NaN"},
		{&FitConfig{}, "[fit.config]\nTerms = 4"},
		{&FitConfig{}, "[fit.config]\nSource = zoeppritz"},
		{&FitConfig{}, "[fit.config]\nTerms = 3\nSamples = 2"},
	}

	for i, test := range tests {
		if err := test.mode.ReadConfig(writeConfig(t, test.text)); err == nil {
			t.Errorf("%d) Expected an error from %q.", i, test.text)
		}
	}
}
