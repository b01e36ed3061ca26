package parse

import (
	"os"
	"path/filepath"
	"testing"
)

func stringsEq(xs, ys []string) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if xs[i] != ys[i] {
			return false
		}
	}
	return true
}

func intsEq(xs, ys []int) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if xs[i] != ys[i] {
			return false
		}
	}
	return true
}

func floatsEq(xs, ys []float64, eps float64) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if xs[i]+eps < ys[i] || xs[i]-eps > ys[i] {
			return false
		}
	}
	return true
}

func TestRemoveComments(t *testing.T) {
	table := []struct {
		in, out  []string
		lineNums []int
	}{
		{[]string{}, []string{}, []int{}},
		{[]string{"meow"}, []string{"meow"}, []int{1}},
		{[]string{"#meow"}, []string{}, []int{}},
		{[]string{"meow", " # comment", "", "   mew "},
			[]string{"meow", "mew"}, []int{1, 4}},
	}

	for i := range table {
		res, lineNums := removeComments(table[i].in)
		if !stringsEq(table[i].out, res) {
			t.Errorf("%d) Called removeComments(%v), got %v",
				i+1, table[i].in, res)
		}
		if !intsEq(table[i].lineNums, lineNums) {
			t.Errorf("%d) Called removeComments(%v), got %v lineNums",
				i+1, table[i].in, lineNums)
		}
	}
}

func TestAssignment(t *testing.T) {
	table := []struct {
		line      string
		name, val string
		ok        bool
	}{
		{"a=b", "a", "b", true},
		{"a", "", "", false},
		{"=b", "", "", false},
		{" Vp1 = 3000 ", "vp1", "3000", true},
		{"c=", "c", "", true},
	}

	for i, test := range table {
		name, val, ok := assignment(test.line)
		if ok != test.ok {
			t.Errorf("%d) Expected ok = %v for '%s', got %v.",
				i+1, test.ok, test.line, ok)
		} else if ok && (name != test.name || val != test.val) {
			t.Errorf("%d) Expected ('%s', '%s'), got ('%s', '%s').",
				i+1, test.name, test.val, name, val)
		}
	}
}

type testConfig struct {
	float  float64
	floats []float64
	num    int64
	okay   bool
	word   string
	words  []string
}

func makeTestConfig() (*testConfig, *ConfigVars) {
	config := &testConfig{}
	vars := NewConfigVars("config")
	vars.Int(&config.num, "Num", 7)
	vars.Float(&config.float, "Float", 0)
	vars.Floats(&config.floats, "Floats", []float64{1})
	vars.Bool(&config.okay, "Okay", false)
	vars.String(&config.word, "Word", "")
	vars.Strings(&config.words, "Words", []string{"shuey"})
	return config, vars
}

const validConfig = `# A comment before the header.
[config]
float = -1.2e4
Floats = 2.5, 2.5,2.5   # trailing comment
OKAY = true
word = meow
words = aki-richards , hilterman
`

func TestValidConfig(t *testing.T) {
	config, vars := makeTestConfig()
	err := ReadConfigString(validConfig, "valid.config", vars)
	if err != nil {
		t.Fatalf("Expected successful read of config file, but got "+
			"error:\n %s", err.Error())
	}

	if config.float != -1.2e4 {
		t.Errorf("Expected float = %g, but got %g", -1.2e4, config.float)
	}
	if !floatsEq([]float64{2.5, 2.5, 2.5}, config.floats, 1e-12) {
		t.Errorf("Expected floats = %v, but got %v.",
			[]float64{2.5, 2.5, 2.5}, config.floats)
	}
	if config.num != 7 {
		t.Errorf("Expected the default num = 7, but got %d", config.num)
	}
	if config.okay != true {
		t.Errorf("Expected okay = %v, but got %v", true, config.okay)
	}
	if config.word != "meow" {
		t.Errorf("Expected word = %v, but got %v", "meow", config.word)
	}
	if !stringsEq([]string{"aki-richards", "hilterman"}, config.words) {
		t.Errorf("Expected words = %v, but got %v",
			[]string{"aki-richards", "hilterman"}, config.words)
	}
}

func TestInvalidConfig(t *testing.T) {
	texts := []string{
		"",
		"# only a comment",
		"[not_config]\nnum = 1",
		"[config]\nnum 1",
		"[config]\n = 1",
		"[config]\nnum = 1\nNUM = 2",
		"[config]\nmeow = 1",
		"[config]\nnum = 1.5",
		"[config]\nfloats = 1, meow",
		"[config]\nokay = maybe",
	}

	for i, text := range texts {
		_, vars := makeTestConfig()
		err := ReadConfigString(text, "invalid.config", vars)
		if err == nil {
			t.Errorf("%d) No error was reported when parsing %q", i, text)
		} else if testing.Verbose() {
			t.Logf("%d) %s", i, err.Error())
		}
	}
}

func TestReadConfigFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "test.config")
	if err := os.WriteFile(fname, []byte(validConfig), 0644); err != nil {
		t.Fatal(err.Error())
	}

	config, vars := makeTestConfig()
	if err := ReadConfig(fname, vars); err != nil {
		t.Fatal(err.Error())
	}
	if config.word != "meow" {
		t.Errorf("Expected word = meow, got %s.", config.word)
	}

	_, vars = makeTestConfig()
	missing := filepath.Join(t.TempDir(), "missing.config")
	if err := ReadConfig(missing, vars); err == nil {
		t.Errorf("Expected an error when reading a missing file.")
	}
}

func TestEmptyList(t *testing.T) {
	config, vars := makeTestConfig()
	err := ReadConfigString("[config]\nwords =\nfloats = ", "x", vars)
	if err != nil {
		t.Fatal(err.Error())
	}
	if len(config.words) != 0 || len(config.floats) != 0 {
		t.Errorf("Expected empty lists, got %v and %v.",
			config.words, config.floats)
	}
}
