package gilsat

import (
	"fmt"
	"strings"
)

// Assertion represents a GIL logic assertion.
type Assertion interface {
	assertion()
	String() string
}

func (*True) assertion()    {}
func (*False) assertion()   {}
func (*Not) assertion()     {}
func (*And) assertion()     {}
func (*Or) assertion()      {}
func (*Eq) assertion()      {}
func (*Less) assertion()    {}
func (*LessEq) assertion()  {}
func (*FLess) assertion()   {}
func (*FLessEq) assertion() {}
func (*StrLess) assertion() {}
func (*SetMem) assertion()  {}
func (*SetSub) assertion()  {}
func (*ForAll) assertion()  {}
func (*Exists) assertion()  {}

// True is the trivially satisfied assertion.
type True struct{}

func (*True) String() string { return "True" }

// False is the unsatisfiable assertion.
type False struct{}

func (*False) String() string { return "False" }

// Not negates an assertion.
type Not struct {
	A Assertion
}

func (a *Not) String() string { return fmt.Sprintf("(! %s)", a.A) }

// And is the conjunction of two assertions.
type And struct {
	L, R Assertion
}

func (a *And) String() string { return fmt.Sprintf("(%s /\\ %s)", a.L, a.R) }

// Or is the disjunction of two assertions.
type Or struct {
	L, R Assertion
}

func (a *Or) String() string { return fmt.Sprintf("(%s \\/ %s)", a.L, a.R) }

// Eq asserts equality of two expressions.
type Eq struct {
	X, Y Expr
}

func (a *Eq) String() string { return fmt.Sprintf("(%s == %s)", a.X, a.Y) }

// Less asserts strict integer less-than.
type Less struct {
	X, Y Expr
}

func (a *Less) String() string { return fmt.Sprintf("(%s i< %s)", a.X, a.Y) }

// LessEq asserts integer less-than-or-equal.
type LessEq struct {
	X, Y Expr
}

func (a *LessEq) String() string { return fmt.Sprintf("(%s i<= %s)", a.X, a.Y) }

// FLess asserts strict number less-than.
type FLess struct {
	X, Y Expr
}

func (a *FLess) String() string { return fmt.Sprintf("(%s f< %s)", a.X, a.Y) }

// FLessEq asserts number less-than-or-equal.
type FLessEq struct {
	X, Y Expr
}

func (a *FLessEq) String() string { return fmt.Sprintf("(%s f<= %s)", a.X, a.Y) }

// StrLess asserts string order over interned codes.
type StrLess struct {
	X, Y Expr
}

func (a *StrLess) String() string { return fmt.Sprintf("(%s s< %s)", a.X, a.Y) }

// SetMem asserts set membership: X in S.
type SetMem struct {
	X, S Expr
}

func (a *SetMem) String() string { return fmt.Sprintf("(%s in %s)", a.X, a.S) }

// SetSub asserts set inclusion: S1 subset of S2.
type SetSub struct {
	S1, S2 Expr
}

func (a *SetSub) String() string { return fmt.Sprintf("(%s sub %s)", a.S1, a.S2) }

// Binder binds a quantified variable, optionally annotated with its type.
// An absent annotation means the variable is of unknown type inside the body.
type Binder struct {
	Name string
	Type *Type // nil when unannotated
}

func (b Binder) String() string {
	if b.Type == nil {
		return b.Name
	}
	return fmt.Sprintf("%s: %s", b.Name, b.Type)
}

// ForAll is a universally quantified assertion.
type ForAll struct {
	Binders []Binder
	Body    Assertion
}

func (a *ForAll) String() string { return quantString("forall", a.Binders, a.Body) }

// Exists is an existentially quantified assertion.
type Exists struct {
	Binders []Binder
	Body    Assertion
}

func (a *Exists) String() string { return quantString("exists", a.Binders, a.Body) }

func quantString(kw string, binders []Binder, body Assertion) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(kw)
	sb.WriteByte(' ')
	for i, b := range binders {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(b.String())
	}
	sb.WriteString(". ")
	sb.WriteString(body.String())
	sb.WriteByte(')')
	return sb.String()
}

// PushNegations pushes negation inward on a top-level assertion so that the
// translator's comparison cases stay exhaustive without a generic
// not-of-a-comparison fallback. Negated orderings flip to the dual ordering
// with swapped operands; negated quantifiers swap quantifier kind; negation
// over Eq, SetMem and SetSub stays guarded by Not.
func PushNegations(a Assertion) Assertion {
	switch a := a.(type) {
	case *Not:
		return pushNegated(a.A)
	case *And:
		return &And{L: PushNegations(a.L), R: PushNegations(a.R)}
	case *Or:
		return &Or{L: PushNegations(a.L), R: PushNegations(a.R)}
	case *ForAll:
		return &ForAll{Binders: a.Binders, Body: PushNegations(a.Body)}
	case *Exists:
		return &Exists{Binders: a.Binders, Body: PushNegations(a.Body)}
	default:
		return a
	}
}

func pushNegated(a Assertion) Assertion {
	switch a := a.(type) {
	case *True:
		return &False{}
	case *False:
		return &True{}
	case *Not:
		return PushNegations(a.A)
	case *And:
		return &Or{L: pushNegated(a.L), R: pushNegated(a.R)}
	case *Or:
		return &And{L: pushNegated(a.L), R: pushNegated(a.R)}
	case *Less:
		return &LessEq{X: a.Y, Y: a.X}
	case *LessEq:
		return &Less{X: a.Y, Y: a.X}
	case *FLess:
		return &FLessEq{X: a.Y, Y: a.X}
	case *FLessEq:
		return &FLess{X: a.Y, Y: a.X}
	case *ForAll:
		return &Exists{Binders: a.Binders, Body: pushNegated(a.Body)}
	case *Exists:
		return &ForAll{Binders: a.Binders, Body: pushNegated(a.Body)}
	case *Eq, *StrLess, *SetMem, *SetSub:
		return &Not{A: a}
	default:
		panic(fmt.Sprintf("gilsat.pushNegated: unexpected assertion type: %T", a))
	}
}
