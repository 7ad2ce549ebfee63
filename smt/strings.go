package smt

// StringTable is the bijective string-interning table. The solver theory
// compares strings and locations only by integer code, never by content.
// Codes grow monotonically for the process lifetime and are never evicted.
type StringTable struct {
	codes   map[string]int
	inverse []string
}

// NewStringTable returns an empty interning table.
func NewStringTable() *StringTable {
	return &StringTable{codes: make(map[string]int)}
}

// Intern returns the code for s, assigning the next free code on first
// encounter.
func (t *StringTable) Intern(s string) int {
	if code, ok := t.codes[s]; ok {
		return code
	}
	code := len(t.inverse)
	t.codes[s] = code
	t.inverse = append(t.inverse, s)
	return code
}

// Lookup returns the string for code. The second return is false when code
// was never assigned.
func (t *StringTable) Lookup(code int) (string, bool) {
	if code < 0 || code >= len(t.inverse) {
		return "", false
	}
	return t.inverse[code], true
}

// Len returns the number of interned strings.
func (t *StringTable) Len() int { return len(t.inverse) }
