/*package parse reads the INI-like config files used by avo. A config file
starts with a "[name]" header and is followed by "Variable = value" lines.
Anything after a '#' is a comment and variable names are case-insensitive.*/
package parse

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type varType int

const (
	intVar varType = iota
	floatVar
	floatsVar
	stringVar
	stringsVar
	boolVar
)

func (v varType) String() string {
	switch v {
	case intVar:
		return "int"
	case floatVar:
		return "float"
	case floatsVar:
		return "float list"
	case stringVar:
		return "string"
	case stringsVar:
		return "string list"
	case boolVar:
		return "bool"
	}
	panic("Impossible")
}

// article returns the indefinite article that goes before the type's name.
func (v varType) article() string {
	if v == intVar {
		return "an"
	}
	return "a"
}

type conversionFunc func(string) bool

type configVar struct {
	name string
	typ  varType
	conv conversionFunc
}

// ConfigVars is the set of variables that a config file with a given header
// is allowed to assign to. Each variable is bound to a pointer that receives
// its default value when bound and its parsed value when read.
type ConfigVars struct {
	name string
	vars []configVar
}

// NewConfigVars creates an empty variable set for files with the header
// "[name]".
func NewConfigVars(name string) *ConfigVars {
	return &ConfigVars{name: name}
}

func (vars *ConfigVars) add(name string, typ varType, conv conversionFunc) {
	vars.vars = append(vars.vars, configVar{strings.ToLower(name), typ, conv})
}

func (vars *ConfigVars) Int(ptr *int64, name string, value int64) {
	*ptr = value
	vars.add(name, intVar, func(s string) bool {
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return false
		}
		*ptr = i
		return true
	})
}

func (vars *ConfigVars) Float(ptr *float64, name string, value float64) {
	*ptr = value
	vars.add(name, floatVar, func(s string) bool {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return false
		}
		*ptr = f
		return true
	})
}

func (vars *ConfigVars) String(ptr *string, name string, value string) {
	*ptr = value
	vars.add(name, stringVar, func(s string) bool {
		*ptr = strings.TrimSpace(s)
		return true
	})
}

func (vars *ConfigVars) Bool(ptr *bool, name string, value bool) {
	*ptr = value
	vars.add(name, boolVar, func(s string) bool {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return false
		}
		*ptr = b
		return true
	})
}

// Floats binds a comma-separated list of floats. An assignment replaces the
// default list rather than appending to it.
func (vars *ConfigVars) Floats(ptr *[]float64, name string, value []float64) {
	*ptr = value
	vars.add(name, floatsVar, func(s string) bool {
		out := []float64{}
		for _, tok := range strToList(s) {
			f, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return false
			}
			out = append(out, f)
		}
		*ptr = out
		return true
	})
}

// Strings binds a comma-separated list of strings. An assignment replaces the
// default list rather than appending to it.
func (vars *ConfigVars) Strings(ptr *[]string, name string, value []string) {
	*ptr = value
	vars.add(name, stringsVar, func(s string) bool {
		*ptr = strToList(s)
		return true
	})
}

func strToList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	toks := strings.Split(s, ",")
	for i := range toks {
		toks[i] = strings.TrimSpace(toks[i])
	}
	return toks
}

func (vars *ConfigVars) lookup(name string) (configVar, bool) {
	for _, v := range vars.vars {
		if v.name == name {
			return v, true
		}
	}
	return configVar{}, false
}

// ReadConfig reads the config file fname into vars.
func ReadConfig(fname string, vars *ConfigVars) error {
	bs, err := os.ReadFile(fname)
	if err != nil {
		return err
	}
	return ReadConfigString(string(bs), fname, vars)
}

// ReadConfigString parses the contents of a config file into vars. source
// names the file in error messages.
func ReadConfigString(text, source string, vars *ConfigVars) error {
	lines, lineNums := removeComments(strings.Split(text, "\n"))

	if len(lines) == 0 || lines[0] != fmt.Sprintf("[%s]", vars.name) {
		return fmt.Errorf(
			"I expected the config file %s to have the header "+
				"[%s] at the top, but didn't find it.", source, vars.name,
		)
	}

	seen := map[string]int{}
	for i := 1; i < len(lines); i++ {
		line := lineNums[i]

		name, val, ok := assignment(lines[i])
		if !ok {
			return fmt.Errorf(
				"I could not parse line %d of the config file %s because "+
					"it did not take the form of a variable assignment.",
				line, source,
			)
		}

		v, ok := vars.lookup(name)
		if !ok {
			return fmt.Errorf(
				"Line %d of the config file %s assigns a value to the "+
					"variable '%s', but config files of type %s don't have "+
					"that variable.", line, source, name, vars.name,
			)
		}

		if prev, ok := seen[name]; ok {
			return fmt.Errorf(
				"Lines %d and %d of the config file %s both assign a value "+
					"to the variable '%s'.", prev, line, source, name,
			)
		}
		seen[name] = line

		if !v.conv(val) {
			return fmt.Errorf(
				"I could not parse line %d of the config file %s because "+
					"'%s' expects values of type %s and '%s' cannot be "+
					"converted to %s %s.", line, source, name, v.typ, val,
				v.typ.article(), v.typ,
			)
		}
	}

	return nil
}

// removeComments strips comments and blank lines. It returns the remaining
// lines along with their 1-indexed line numbers.
func removeComments(lines []string) ([]string, []int) {
	out, lineNums := []string{}, []int{}
	for i, line := range lines {
		if comment := strings.Index(line, "#"); comment != -1 {
			line = line[:comment]
		}
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		out = append(out, line)
		lineNums = append(lineNums, i+1)
	}
	return out, lineNums
}

func assignment(line string) (name, val string, ok bool) {
	eq := strings.Index(line, "=")
	if eq == -1 {
		return "", "", false
	}
	name = strings.ToLower(strings.TrimSpace(line[:eq]))
	if len(name) == 0 {
		return "", "", false
	}
	return name, strings.TrimSpace(line[eq+1:]), true
}
