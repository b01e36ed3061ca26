/*package version tracks the semantic version of the avo source and checks
config files against it.*/
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// SourceVersion is the semantic version number of the source code.
const SourceVersion = "0.2.0"

// Version is a parsed major.minor.patch triple.
type Version struct {
	Major, Minor, Patch int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Parse parses a semantic version number string and returns an error if
// the string is invalid.
func Parse(s string) (Version, error) {
	toks := strings.Split(strings.TrimSpace(s), ".")
	errMsg := "Version string '%s' does not take the form of three " +
		"period-separated non-negative numbers."
	if len(toks) != 3 {
		return Version{}, fmt.Errorf(errMsg, s)
	}

	nums := [3]int{}
	for i := range toks {
		n, err := strconv.Atoi(toks[i])
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf(errMsg, s)
		}
		nums[i] = n
	}

	return Version{nums[0], nums[1], nums[2]}, nil
}

// Later returns true if s1 represents a later version of the source than
// s2. An error is returned if either is invalid.
func Later(s1, s2 string) (bool, error) {
	v1, err := Parse(s1)
	if err != nil {
		return false, err
	}
	v2, err := Parse(s2)
	if err != nil {
		return false, err
	}

	switch {
	case v1.Major != v2.Major:
		return v1.Major > v2.Major, nil
	case v1.Minor != v2.Minor:
		return v1.Minor > v2.Minor, nil
	}
	return v1.Patch > v2.Patch, nil
}

// Compatible returns an error if a config file written for version s can't
// be read by this source. Only patch versions may differ.
func Compatible(s string) error {
	v, err := Parse(s)
	if err != nil {
		return err
	}
	src, _ := Parse(SourceVersion)
	if v.Major == src.Major && v.Minor == src.Minor {
		return nil
	}

	later, _ := Later(s, SourceVersion)
	if later {
		return fmt.Errorf("The 'Version' variable is set to %s, which is "+
			"newer than the version of the source, %s. You need to update "+
			"avo.", s, SourceVersion)
	}
	return fmt.Errorf("The 'Version' variable is set to %s, which is "+
		"older than the version of the source, %s. Run 'avo example' to see "+
		"the current config format.", s, SourceVersion)
}
