package gilsat

import (
	"sort"
	"strings"

	"github.com/xtgo/set"
)

// FormulaSet is an unordered, duplicate-free collection of assertions. Two
// sets holding equal assertions have equal keys regardless of construction
// order, so they hit the same cache entries.
type FormulaSet struct {
	assertions []Assertion
	rendered   []string
}

// NewFormulaSet returns a formula set over the given assertions, dropping
// duplicates by rendered value.
func NewFormulaSet(assertions ...Assertion) *FormulaSet {
	fs := &FormulaSet{}
	seen := make(map[string]bool, len(assertions))
	for _, a := range assertions {
		s := a.String()
		if seen[s] {
			continue
		}
		seen[s] = true
		fs.assertions = append(fs.assertions, a)
		fs.rendered = append(fs.rendered, s)
	}
	return fs
}

// Assertions returns the member assertions. The slice must not be mutated.
func (fs *FormulaSet) Assertions() []Assertion { return fs.assertions }

// Len returns the number of member assertions.
func (fs *FormulaSet) Len() int { return len(fs.assertions) }

// Key returns the canonical value key of the set: the sorted, deduplicated
// rendering of its assertions. Equal sets (as values) have equal keys.
func (fs *FormulaSet) Key() string {
	canon := make(sort.StringSlice, len(fs.rendered))
	copy(canon, fs.rendered)
	sort.Sort(canon)
	canon = canon[:set.Uniq(canon)]
	return strings.Join(canon, "\n")
}

// String returns a human-readable rendering of the set.
func (fs *FormulaSet) String() string {
	return "{ " + strings.Join(fs.rendered, ", ") + " }"
}
