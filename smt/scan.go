package smt

import "github.com/gilsat/gilsat"

// exprChildren returns the immediate subexpressions of e.
func exprChildren(e gilsat.Expr) []gilsat.Expr {
	switch e := e.(type) {
	case *gilsat.UnaryExpr:
		return []gilsat.Expr{e.X}
	case *gilsat.BinaryExpr:
		return []gilsat.Expr{e.X, e.Y}
	case *gilsat.NAryExpr:
		return e.Xs
	case *gilsat.BvExpr:
		return e.Xs
	default:
		return nil
	}
}

// assertionParts returns the immediate expressions and subassertions of a.
func assertionParts(a gilsat.Assertion) ([]gilsat.Expr, []gilsat.Assertion) {
	switch a := a.(type) {
	case *gilsat.Not:
		return nil, []gilsat.Assertion{a.A}
	case *gilsat.And:
		return nil, []gilsat.Assertion{a.L, a.R}
	case *gilsat.Or:
		return nil, []gilsat.Assertion{a.L, a.R}
	case *gilsat.Eq:
		return []gilsat.Expr{a.X, a.Y}, nil
	case *gilsat.Less:
		return []gilsat.Expr{a.X, a.Y}, nil
	case *gilsat.LessEq:
		return []gilsat.Expr{a.X, a.Y}, nil
	case *gilsat.FLess:
		return []gilsat.Expr{a.X, a.Y}, nil
	case *gilsat.FLessEq:
		return []gilsat.Expr{a.X, a.Y}, nil
	case *gilsat.StrLess:
		return []gilsat.Expr{a.X, a.Y}, nil
	case *gilsat.SetMem:
		return []gilsat.Expr{a.X, a.S}, nil
	case *gilsat.SetSub:
		return []gilsat.Expr{a.S1, a.S2}, nil
	case *gilsat.ForAll:
		return nil, []gilsat.Assertion{a.Body}
	case *gilsat.Exists:
		return nil, []gilsat.Assertion{a.Body}
	default:
		return nil, nil
	}
}

// scanFormulas runs visit over every expression of the formula set,
// recursing through subassertions. The scan is syntactic and does not track
// scoping; collectors pair it with boundNames to stay sound under binders.
func scanFormulas(fs *gilsat.FormulaSet, visit func(gilsat.Expr)) {
	var walkA func(gilsat.Assertion)
	walkA = func(a gilsat.Assertion) {
		exprs, subs := assertionParts(a)
		for _, e := range exprs {
			visit(e)
		}
		for _, sub := range subs {
			walkA(sub)
		}
	}
	for _, a := range fs.Assertions() {
		walkA(a)
	}
}

// boundNames collects every name bound by a quantifier anywhere in the
// formula set. A name bound anywhere disqualifies all of its occurrences
// from the special representations: over-excluding a shadowed free variable
// only costs an optimization, while mistyping a binder would produce an
// ill-sorted term.
func boundNames(fs *gilsat.FormulaSet) map[string]bool {
	bound := make(map[string]bool)
	var walkA func(gilsat.Assertion)
	walkA = func(a gilsat.Assertion) {
		switch a := a.(type) {
		case *gilsat.ForAll:
			for _, b := range a.Binders {
				bound[b.Name] = true
			}
		case *gilsat.Exists:
			for _, b := range a.Binders {
				bound[b.Name] = true
			}
		}
		_, subs := assertionParts(a)
		for _, sub := range subs {
			walkA(sub)
		}
	}
	for _, a := range fs.Assertions() {
		walkA(a)
	}
	return bound
}

// collectLengthOnly finds variables that appear in the formulas only as the
// direct argument of a list-length operator and are never quantifier-bound.
// Their lists' contents are never needed, so the translator encodes their
// length through the uninterpreted llen function instead of native sequence
// length.
func collectLengthOnly(fs *gilsat.FormulaSet) map[string]bool {
	bound := boundNames(fs)
	lenUses := make(map[string]bool)
	otherUses := make(map[string]bool)

	var walk func(gilsat.Expr)
	walk = func(e gilsat.Expr) {
		switch e := e.(type) {
		case *gilsat.LVar:
			otherUses[e.Name] = true
		case *gilsat.UnaryExpr:
			if e.Op == gilsat.LSTLEN {
				if v, ok := e.X.(*gilsat.LVar); ok {
					lenUses[v.Name] = true
					return
				}
			}
			walk(e.X)
		default:
			for _, child := range exprChildren(e) {
				walk(child)
			}
		}
	}
	scanFormulas(fs, walk)

	result := make(map[string]bool)
	for name := range lenUses {
		if !otherUses[name] && !bound[name] {
			result[name] = true
		}
	}
	return result
}

// collectElemOnly finds variables that appear in the formulas only as direct
// elements of statically-sized aggregates (list and set literals) and are
// never quantifier-bound. Such variables can never denote a set, so the
// cheaper simple wrapping is safe for them even without a type annotation.
func collectElemOnly(fs *gilsat.FormulaSet) map[string]bool {
	bound := boundNames(fs)
	elemUses := make(map[string]bool)
	otherUses := make(map[string]bool)

	var walk func(gilsat.Expr)
	walk = func(e gilsat.Expr) {
		switch e := e.(type) {
		case *gilsat.LVar:
			otherUses[e.Name] = true
		case *gilsat.NAryExpr:
			if e.Op == gilsat.ELIST || e.Op == gilsat.ESET {
				for _, child := range e.Xs {
					if v, ok := child.(*gilsat.LVar); ok {
						elemUses[v.Name] = true
					} else {
						walk(child)
					}
				}
				return
			}
			for _, child := range e.Xs {
				walk(child)
			}
		default:
			for _, child := range exprChildren(e) {
				walk(child)
			}
		}
	}
	scanFormulas(fs, walk)

	result := make(map[string]bool)
	for name := range elemUses {
		if !otherUses[name] && !bound[name] {
			result[name] = true
		}
	}
	return result
}
