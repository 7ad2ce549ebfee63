package smt

import (
	"math/big"

	"github.com/gilsat/gilsat"
	"github.com/pkg/errors"
)

// Model holds the zero-arity bindings of a solver counter-model.
type Model struct {
	values map[string]*SExpr
}

// ParseModel reads the raw get-model response. Only zero-arity define-funs
// become bindings; function definitions the solver invented are ignored.
func ParseModel(raw string) (*Model, error) {
	nodes, err := ParseSExprs(raw)
	if err != nil {
		return nil, err
	}

	model := &Model{values: make(map[string]*SExpr)}
	for _, node := range nodes {
		if node.IsAtom() {
			continue
		}
		entries := node.List
		// Older solvers emit (model ...) rather than a bare list.
		if len(entries) > 0 && entries[0].IsAtom() && entries[0].Atom == "model" {
			entries = entries[1:]
		}
		for _, entry := range entries {
			if entry.IsAtom() || len(entry.List) != 5 {
				continue
			}
			if !entry.List[0].IsAtom() || entry.List[0].Atom != "define-fun" {
				continue
			}
			name := entry.List[1]
			params := entry.List[2]
			if !name.IsAtom() || params.IsAtom() || len(params.List) != 0 {
				continue
			}
			model.values[name.Atom] = entry.List[4]
		}
	}
	return model, nil
}

// Value returns the model value bound to the variable, if any.
func (m *Model) Value(name string) (*SExpr, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Len returns the number of bindings.
func (m *Model) Len() int { return len(m.values) }

// decodeInt decodes an integer value node, handling (- n) forms.
func decodeInt(node *SExpr) (*big.Int, error) {
	if node.IsAtom() {
		v, ok := new(big.Int).SetString(node.Atom, 10)
		if !ok {
			return nil, errors.Errorf("smt: bad integer value %q", node.Atom)
		}
		return v, nil
	}
	if len(node.List) == 2 && node.List[0].IsAtom() && node.List[0].Atom == "-" {
		v, err := decodeInt(node.List[1])
		if err != nil {
			return nil, err
		}
		return v.Neg(v), nil
	}
	return nil, errors.Errorf("smt: bad integer value %s", node)
}

// decodeNum decodes a real value node: decimals, (- x) and (/ p q) forms.
func decodeNum(node *SExpr) (float64, error) {
	if node.IsAtom() {
		r, ok := new(big.Rat).SetString(node.Atom)
		if !ok {
			return 0, errors.Errorf("smt: bad real value %q", node.Atom)
		}
		f, _ := r.Float64()
		return f, nil
	}
	if len(node.List) == 2 && node.List[0].IsAtom() && node.List[0].Atom == "-" {
		v, err := decodeNum(node.List[1])
		if err != nil {
			return 0, err
		}
		return -v, nil
	}
	if len(node.List) == 3 && node.List[0].IsAtom() && node.List[0].Atom == "/" {
		p, err := decodeNum(node.List[1])
		if err != nil {
			return 0, err
		}
		q, err := decodeNum(node.List[2])
		if err != nil {
			return 0, err
		}
		return p / q, nil
	}
	return 0, errors.Errorf("smt: bad real value %s", node)
}

// LiftModel decodes the counter-model into concrete literals for the
// requested symbolic variables and invokes bind once per successfully
// decoded variable. Variables whose declared type is not liftable, that are
// missing from the model, or whose value cannot be decoded yield no binding;
// partial models are expected.
func (s *Session) LiftModel(model *Model, gamma *gilsat.TypeEnv, names []string, bind func(name string, lit gilsat.Literal)) {
	for _, name := range names {
		typ, ok := gamma.Lookup(name)
		if !ok || typ == nil {
			continue
		}
		// The response parser strips pipe quoting, so model keys are
		// always the bare variable name.
		node, ok := model.Value(name)
		if !ok {
			continue
		}

		switch typ.Kind {
		case gilsat.IntType:
			v, err := decodeInt(node)
			if err != nil {
				continue
			}
			bind(name, &gilsat.Int{Value: v})

		case gilsat.NumberType:
			v, err := decodeNum(node)
			if err != nil {
				continue
			}
			bind(name, &gilsat.Num{Value: v})

		case gilsat.StringType:
			code, err := decodeInt(node)
			if err != nil || !code.IsInt64() {
				continue
			}
			str, ok := s.strings.Lookup(int(code.Int64()))
			if !ok {
				continue
			}
			bind(name, &gilsat.Str{Value: str})
		}
	}
}
