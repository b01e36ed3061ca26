package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phil-mansfield/avo/cmd"
	"github.com/phil-mansfield/avo/version"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	root := newRootCommand(strings.NewReader(stdin))
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, text string) string {
	fname := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fname, []byte(text), 0644); err != nil {
		t.Fatal(err.Error())
	}
	return fname
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "", "version")
	if err != nil {
		t.Fatal(err.Error())
	}
	if out != "avo version "+version.SourceVersion+"\n" {
		t.Errorf("Unexpected version output %q.", out)
	}
}

func TestExampleCommand(t *testing.T) {
	out, err := run(t, "", "example", "config")
	if err != nil {
		t.Fatal(err.Error())
	}
	if !strings.HasPrefix(out, "[config]") {
		t.Errorf("Unexpected example output %q.", out)
	}

	out, err = run(t, "", "example", "sweep")
	if err != nil {
		t.Fatal(err.Error())
	}
	if !strings.HasPrefix(out, "[sweep.config]") {
		t.Errorf("Unexpected example output %q.", out)
	}

	if _, err = run(t, "", "example", "meow"); err == nil {
		t.Errorf("Expected an error for an unknown example target.")
	}
}

func TestEvalCommand(t *testing.T) {
	t.Setenv(globalConfigEnv, "")
	gName := writeFile(t, "global.config", (&cmd.GlobalConfig{}).ExampleConfig())
	eName := writeFile(t, "eval.config", "[eval.config]\nApproximations = shuey")

	out, err := run(t, "0\n0.1\n", "eval", gName, eName)
	if err != nil {
		t.Fatal(err.Error())
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 || lines[0] != "# Column contents: Theta(0) Shuey(1)" {
		t.Errorf("Unexpected eval output:\n%s", out)
	}

	out, err = run(t, "0.1\n", "eval", "--yaml", gName)
	if err != nil {
		t.Fatal(err.Error())
	}
	if !strings.Contains(out, "poisson_ratio_1:") ||
		!strings.Contains(out, "hilterman:") {
		t.Errorf("Unexpected YAML output:\n%s", out)
	}
}

func TestGlobalConfigEnv(t *testing.T) {
	gName := writeFile(t, "global.config", (&cmd.GlobalConfig{}).ExampleConfig())
	sName := writeFile(t, "sweep.config", "[sweep.config]\nSamples = 3")
	t.Setenv(globalConfigEnv, gName)

	out, err := run(t, "", "sweep", sName)
	if err != nil {
		t.Fatal(err.Error())
	}
	if !strings.Contains(out, "# Column contents: Theta(0)") {
		t.Errorf("Unexpected sweep output:\n%s", out)
	}

	if _, err = run(t, "", "sweep", gName, sName); err == nil {
		t.Errorf("Expected an error when passing two configs with $%s set.",
			globalConfigEnv)
	}
}

func TestModeErrors(t *testing.T) {
	t.Setenv(globalConfigEnv, "")
	if _, err := run(t, "", "fit"); err == nil {
		t.Errorf("Expected an error with no config files.")
	}
	if _, err := run(t, "", "--log", "loud", "version"); err == nil {
		t.Errorf("Expected an error for an unknown logging mode.")
	}

	bad := writeFile(t, "bad.config", "[config]\nVp1 = 1500\nVs1 = 1500\n"+
		"Rho1 = 2000\nVp2 = 3000\nVs2 = 1500\nRho2 = 2200")
	if _, err := run(t, "", "fit", bad); err == nil {
		t.Errorf("Expected an error for a degenerate interface.")
	}
}

func TestReadLines(t *testing.T) {
	tests := []struct {
		in  string
		out []string
	}{
		{"", []string{}},
		{"a\n", []string{"a"}},
		{"a\nb", []string{"a", "b"}},
		{"a\n\nb\n", []string{"a", "", "b"}},
	}

	for i, test := range tests {
		out, err := readLines(strings.NewReader(test.in))
		if err != nil {
			t.Fatal(err.Error())
		}
		if strings.Join(out, "|") != strings.Join(test.out, "|") ||
			len(out) != len(test.out) {
			t.Errorf("%d) Expected %q, got %q.", i, test.out, out)
		}
	}
}
