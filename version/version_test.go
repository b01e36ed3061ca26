package version

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		s                   string
		major, minor, patch int
		valid               bool
	}{
		{"0.0.0", 0, 0, 0, true},
		{"1.02.3", 1, 2, 3, true},
		{" 2.0.1 ", 2, 0, 1, true},
		{"", 0, 0, 0, false},
		{"0", 0, 0, 0, false},
		{"0.0", 0, 0, 0, false},
		{"0.0.0.0", 0, 0, 0, false},
		{"0.-1.0", 0, 0, 0, false},
		{"a.b.c", 0, 0, 0, false},
	}

	for i := range tests {
		v, err := Parse(tests[i].s)
		if err != nil {
			if tests[i].valid {
				t.Errorf("Expected Parse('%s') to be valid, but it gave an "+
					"error.", tests[i].s)
			}
			continue
		}
		if !tests[i].valid {
			t.Errorf("Expected Parse('%s') to give an error, but it "+
				"doesn't.", tests[i].s)
		}
		if v.Major != tests[i].major || v.Minor != tests[i].minor ||
			v.Patch != tests[i].patch {
			t.Errorf("Parse('%s') parsed to %s.", tests[i].s, v)
		}
	}
}

func TestLater(t *testing.T) {
	tests := []struct {
		s1, s2       string
		later, valid bool
	}{
		{"0.0.0", "0.0", false, false},
		{"0.0.0", "0.0.0", false, true},
		{"0.0.1", "0.0.0", true, true},
		{"0.1.0", "0.0.0", true, true},
		{"1.0.0", "0.0.0", true, true},
		{"0.0.0", "0.0.1", false, true},
		{"0.0.0", "0.1.0", false, true},
		{"0.0.0", "1.0.0", false, true},
		{"2.13.7", "2.12.19", true, true},
		{"2.12.19", "2.13.7", false, true},
	}

	for i := range tests {
		later, err := Later(tests[i].s1, tests[i].s2)
		if err == nil && !tests[i].valid {
			t.Errorf("Expected Later('%s', %s) to return an error, but it "+
				"didn't.", tests[i].s1, tests[i].s2)
		} else if err != nil && tests[i].valid {
			t.Errorf("Did not expect Later('%s', '%s') to return an error, "+
				"but it did.", tests[i].s1, tests[i].s2)
		} else if later != tests[i].later {
			t.Errorf("Later('%s', '%s') returned %v", tests[i].s1,
				tests[i].s2, later)
		}
	}
}

func TestCompatible(t *testing.T) {
	src, err := Parse(SourceVersion)
	if err != nil {
		t.Fatalf("SourceVersion %s is invalid: %s", SourceVersion, err)
	}

	patch := Version{src.Major, src.Minor, src.Patch + 4}
	minor := Version{src.Major, src.Minor + 1, src.Patch}
	major := Version{src.Major + 1, src.Minor, src.Patch}

	older := "0.0.0"
	if src.Major == 0 && src.Minor == 0 {
		t.Fatalf("SourceVersion %s has no older minor version.", SourceVersion)
	}

	tests := []struct {
		s   string
		ok  bool
		msg string
	}{
		{SourceVersion, true, ""},
		{patch.String(), true, ""},
		{minor.String(), false, "newer"},
		{major.String(), false, "newer"},
		{older, false, "older"},
		{"meow", false, "does not take the form"},
	}

	for i, test := range tests {
		err := Compatible(test.s)
		if (err == nil) != test.ok {
			t.Errorf("%d) Expected Compatible('%s') ok = %v, got %v.",
				i, test.s, test.ok, err)
		} else if err != nil && !strings.Contains(err.Error(), test.msg) {
			t.Errorf("%d) Expected Compatible('%s') to mention %q, got %q.",
				i, test.s, test.msg, err.Error())
		}
	}
}
