package stylesheet

import (
	"strconv"
	"strings"
)

// SelectorPattern matches class names. A pattern is either a literal
// string, or a prefix with a bound variable capturing the remainder
// (written `"prefix-" <> variable` in stylesheet source).
type SelectorPattern struct {
	Prefix   string
	Variable string
}

// IsParametric reports whether the pattern binds a variable.
func (p SelectorPattern) IsParametric() bool {
	return p.Variable != ""
}

// Match tests a class name against the pattern. For parametric
// patterns the bound remainder is returned; substitution into the
// clause body happens lazily at match time, not at compile time.
func (p SelectorPattern) Match(className string) (string, bool) {
	if !p.IsParametric() {
		return "", className == p.Prefix
	}

	remainder, found := strings.CutPrefix(className, p.Prefix)
	if !found {
		return "", false
	}

	return remainder, true
}

// String renders the pattern in stylesheet source form.
func (p SelectorPattern) String() string {
	if !p.IsParametric() {
		return strconv.Quote(p.Prefix)
	}

	return strconv.Quote(p.Prefix) + " <> " + p.Variable
}
