package smt

import (
	"fmt"
	"strconv"

	"fortio.org/safecast"
	"github.com/gilsat/gilsat"
)

// Sort names of the GIL theory. GLit is the universal literal sort, GExt the
// extended sort that can additionally hold a set of literals.
const (
	sortBool = "Bool"
	sortInt  = "Int"
	sortReal = "Real"
	sortLit  = "GLit"
	sortType = "GType"
	sortExt  = "GExt"
	sortList = "GList"
	sortSet  = "GSet"
)

// sortBv returns the native bitvector sort of the given width.
func sortBv(width uint) string {
	return fmt.Sprintf("(_ BitVec %d)", width)
}

// theory declares the GIL sorts and axiomatized functions through the
// registry and builds encoding terms over them.
type theory struct {
	registry *Registry
	strings  *StringTable

	typeDT *Datatype
	litDT  *Datatype
	extDT  *Datatype

	bvWidths map[uint]bool
}

func newTheory(registry *Registry, strings *StringTable) *theory {
	th := &theory{
		registry: registry,
		strings:  strings,
		bvWidths: make(map[uint]bool),
	}

	th.typeDT = registry.DeclareDatatype(sortType, []ConstructorSpec{
		{Name: "UndefinedT"},
		{Name: "NullT"},
		{Name: "EmptyT"},
		{Name: "NoneT"},
		{Name: "BoolT"},
		{Name: "IntT"},
		{Name: "NumT"},
		{Name: "StrT"},
		{Name: "ObjT"},
		{Name: "TypeT"},
		{Name: "ListT"},
		{Name: "SetT"},
		{Name: "BvT", Fields: []Field{{Name: "bvTypeWidth", Sort: sortInt}}},
	})

	th.litDT = registry.DeclareDatatype(sortLit, []ConstructorSpec{
		{Name: "Undef"},
		{Name: "Null"},
		{Name: "Empty"},
		{Name: "Nono"},
		{Name: "BoolV", Fields: []Field{{Name: "boolValue", Sort: sortBool}}},
		{Name: "IntV", Fields: []Field{{Name: "intValue", Sort: sortInt}}},
		{Name: "NumV", Fields: []Field{{Name: "numValue", Sort: sortReal}}},
		{Name: "StrV", Fields: []Field{{Name: "strValue", Sort: sortInt}}},
		{Name: "LocV", Fields: []Field{{Name: "locValue", Sort: sortInt}}},
		{Name: "TypeV", Fields: []Field{{Name: "typeValue", Sort: sortType}}},
		{Name: "ListV", Fields: []Field{{Name: "listValue", Sort: "(Seq GLit)"}}},
		{Name: "BvV", Fields: []Field{
			{Name: "bvWidth", Sort: sortInt},
			{Name: "bvValue", Sort: sortInt},
		}},
	})

	registry.DefineSort(sortList, "(Seq GLit)")
	registry.DefineSort(sortSet, "(Array GLit Bool)")

	th.extDT = registry.DeclareDatatype(sortExt, []ConstructorSpec{
		{Name: "Sing", Fields: []Field{{Name: "singValue", Sort: sortLit}}},
		{Name: "SetOf", Fields: []Field{{Name: "setValue", Sort: sortSet}}},
	})

	// Axiomatized functions: logical list length, string length, string
	// concatenation and string order over interned codes.
	registry.DeclareFun("llen", []string{sortList}, sortInt)
	registry.DeclareFun("slen", []string{sortInt}, sortInt)
	registry.DeclareFun("scat", []string{sortInt, sortInt}, sortInt)
	registry.DeclareFun("sless", []string{sortInt, sortInt}, sortBool)

	return th
}

// registerWidth lazily declares the wrap/unwrap pair for a bitvector width.
// Only widths actually observed in formulas are ever declared.
func (th *theory) registerWidth(width uint) {
	if th.bvWidths[width] {
		return
	}
	th.bvWidths[width] = true

	w := strconv.FormatUint(uint64(width), 10)
	th.registry.DefineFun(
		"bvWrap"+w,
		[]Field{{Name: "x", Sort: sortBv(width)}},
		sortLit,
		fmt.Sprintf("(BvV %s (bv2nat x))", w),
	)
	th.registry.DefineFun(
		"bvUnwrap"+w,
		[]Field{{Name: "x", Sort: sortLit}},
		sortBv(width),
		fmt.Sprintf("((_ int2bv %d) (bvValue x))", width),
	)
}

// emptySet is the set holding no literals.
func emptySet() string {
	return fmt.Sprintf("((as const %s) false)", sortSet)
}

// emptyList is the list holding no literals.
func emptyList() string {
	return fmt.Sprintf("(as seq.empty %s)", sortList)
}

// Kind tags the three representational kinds of an encoding, from most to
// least solver-theory-specific.
type Kind int

const (
	// KindNative terms live directly in the native sort of their type.
	KindNative = Kind(iota)

	// KindSimple terms live in the universal literal sort. A simply
	// wrapped term can never represent a set.
	KindSimple

	// KindExtended terms live in the extended sort and may represent
	// either one literal or a set of literals.
	KindExtended
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindNative:
		return "native"
	case KindSimple:
		return "simple"
	case KindExtended:
		return "extended"
	default:
		return fmt.Sprintf("Kind<%d>", int(k))
	}
}

// ConstDecl names a solver-side constant that must be declared before the
// encoding's term can be asserted.
type ConstDecl struct {
	Name string
	Sort string
}

// Encoding is the translation result for one expression: the produced solver
// term, its representational kind (with the program type when native), the
// constants the term depends on, and auxiliary side-assertions that must be
// asserted alongside it. Side-assertions are independent conjuncts; their
// order is irrelevant.
type Encoding struct {
	kind   Kind
	typ    *gilsat.Type // non-nil iff kind == KindNative
	term   string
	consts map[ConstDecl]struct{}
	extra  []string
}

// Kind returns the representational kind.
func (e *Encoding) Kind() Kind { return e.kind }

// Type returns the program type of a native encoding, nil otherwise.
func (e *Encoding) Type() *gilsat.Type { return e.typ }

// Term returns the solver term.
func (e *Encoding) Term() string { return e.term }

// Consts returns the constants the term depends on.
func (e *Encoding) Consts() map[ConstDecl]struct{} { return e.consts }

// Extra returns the auxiliary side-assertions.
func (e *Encoding) Extra() []string { return e.extra }

// newEncoding combines the dependency sets of from by set-union of constants
// and concatenation of side-assertions.
func newEncoding(kind Kind, typ *gilsat.Type, term string, from ...*Encoding) *Encoding {
	e := &Encoding{kind: kind, typ: typ, term: term}
	for _, f := range from {
		for c := range f.consts {
			e.addConst(c)
		}
		e.extra = append(e.extra, f.extra...)
	}
	return e
}

func (e *Encoding) addConst(c ConstDecl) {
	if e.consts == nil {
		e.consts = make(map[ConstDecl]struct{})
	}
	e.consts[c] = struct{}{}
}

func (e *Encoding) addExtra(assertions ...string) {
	e.extra = append(e.extra, assertions...)
}

// native returns a native encoding of the given type.
func (th *theory) native(typ *gilsat.Type, term string, from ...*Encoding) *Encoding {
	return newEncoding(KindNative, typ, term, from...)
}

// isSetLike reports whether the encoding may denote a set: a native
// set-typed term or any extended-wrapped term.
func isSetLike(e *Encoding) bool {
	return e.kind == KindExtended || (e.kind == KindNative && e.typ.Kind == gilsat.SetType)
}

// simpleWrapTerm coerces the encoding's term into the universal literal
// sort. Sets cannot be simply wrapped; attempting it is a fatal programming
// error, never a solver-reported one.
func (th *theory) simpleWrapTerm(e *Encoding) string {
	switch e.kind {
	case KindSimple:
		return e.term
	case KindExtended:
		return th.extDT.Access("Sing", e.term)
	case KindNative:
		switch e.typ.Kind {
		case gilsat.UndefinedType, gilsat.NullType, gilsat.EmptyType, gilsat.NoneType:
			return e.term // singleton natives already live in GLit
		case gilsat.BoolType:
			return th.litDT.Construct("BoolV", e.term)
		case gilsat.IntType:
			return th.litDT.Construct("IntV", e.term)
		case gilsat.NumberType:
			return th.litDT.Construct("NumV", e.term)
		case gilsat.StringType:
			return th.litDT.Construct("StrV", e.term)
		case gilsat.ObjectType:
			return th.litDT.Construct("LocV", e.term)
		case gilsat.TypeType:
			return th.litDT.Construct("TypeV", e.term)
		case gilsat.ListType:
			return th.litDT.Construct("ListV", e.term)
		case gilsat.BitvectorType:
			th.registerWidth(e.typ.Width)
			return app(fmt.Sprintf("bvWrap%d", e.typ.Width), e.term)
		case gilsat.SetType:
			violate("smt: a set cannot be simply wrapped")
		}
	}
	violate("smt: simpleWrapTerm: unexpected kind %s", e.kind)
	return ""
}

// SimpleWrap coerces the encoding into the universal literal sort.
func (th *theory) SimpleWrap(e *Encoding) *Encoding {
	if e.kind == KindSimple {
		return e
	}
	return newEncoding(KindSimple, nil, th.simpleWrapTerm(e), e)
}

// extendWrapTerm coerces the encoding's term into the extended sort.
func (th *theory) extendWrapTerm(e *Encoding) string {
	if e.kind == KindExtended {
		return e.term
	}
	if e.kind == KindNative && e.typ.Kind == gilsat.SetType {
		return th.extDT.Construct("SetOf", e.term)
	}
	return th.extDT.Construct("Sing", th.simpleWrapTerm(e))
}

// ExtendWrap coerces the encoding into the extended sort. This is the only
// kind that can carry a set value.
func (th *theory) ExtendWrap(e *Encoding) *Encoding {
	if e.kind == KindExtended {
		return e
	}
	return newEncoding(KindExtended, nil, th.extendWrapTerm(e), e)
}

// drill returns the encoding's term as a universal-literal term, reaching
// through the extended layer. Used by the scalar accessors.
func (th *theory) drill(e *Encoding) string {
	if e.kind == KindExtended {
		return th.extDT.Access("Sing", e.term)
	}
	return e.term
}

// scalarAccess drills to the native payload of a wrapped scalar via the
// given literal constructor. A native encoding must already be of the
// requested type.
func (th *theory) scalarAccess(e *Encoding, kind gilsat.TypeKind, ctor string) string {
	if e.kind == KindNative {
		if e.typ.Kind != kind {
			violate("smt: %s accessor applied to native %s encoding", kind, e.typ)
		}
		return e.term
	}
	return th.litDT.Access(ctor, th.drill(e))
}

// Int returns the native integer payload.
func (th *theory) Int(e *Encoding) string { return th.scalarAccess(e, gilsat.IntType, "IntV") }

// Bool returns the native boolean payload.
func (th *theory) Bool(e *Encoding) string { return th.scalarAccess(e, gilsat.BoolType, "BoolV") }

// Num returns the native real payload.
func (th *theory) Num(e *Encoding) string { return th.scalarAccess(e, gilsat.NumberType, "NumV") }

// Str returns the interned string-code payload.
func (th *theory) Str(e *Encoding) string { return th.scalarAccess(e, gilsat.StringType, "StrV") }

// List returns the native sequence payload.
func (th *theory) List(e *Encoding) string { return th.scalarAccess(e, gilsat.ListType, "ListV") }

// Set returns the native set payload. Calling it on a non-set-typed
// encoding is a hard failure.
func (th *theory) Set(e *Encoding) string {
	switch e.kind {
	case KindNative:
		if e.typ.Kind != gilsat.SetType {
			violate("smt: set accessor applied to native %s encoding", e.typ)
		}
		return e.term
	case KindExtended:
		return th.extDT.Access("SetOf", e.term)
	default:
		violate("smt: set accessor applied to simply wrapped encoding")
		return ""
	}
}

// Bv returns the native bitvector payload at the given width.
func (th *theory) Bv(e *Encoding, width uint) string {
	if e.kind == KindNative {
		if e.typ.Kind != gilsat.BitvectorType || e.typ.Width != width {
			violate("smt: bv<%d> accessor applied to native %s encoding", width, e.typ)
		}
		return e.term
	}
	th.registerWidth(width)
	return app(fmt.Sprintf("bvUnwrap%d", width), th.drill(e))
}

// typeConst returns the GType constant term for a program type.
func (th *theory) typeConst(typ *gilsat.Type) string {
	switch typ.Kind {
	case gilsat.UndefinedType:
		return th.typeDT.Construct("UndefinedT")
	case gilsat.NullType:
		return th.typeDT.Construct("NullT")
	case gilsat.EmptyType:
		return th.typeDT.Construct("EmptyT")
	case gilsat.NoneType:
		return th.typeDT.Construct("NoneT")
	case gilsat.BoolType:
		return th.typeDT.Construct("BoolT")
	case gilsat.IntType:
		return th.typeDT.Construct("IntT")
	case gilsat.NumberType:
		return th.typeDT.Construct("NumT")
	case gilsat.StringType:
		return th.typeDT.Construct("StrT")
	case gilsat.ObjectType:
		return th.typeDT.Construct("ObjT")
	case gilsat.TypeType:
		return th.typeDT.Construct("TypeT")
	case gilsat.ListType:
		return th.typeDT.Construct("ListT")
	case gilsat.SetType:
		return th.typeDT.Construct("SetT")
	case gilsat.BitvectorType:
		w, err := safecast.Conv[int64](typ.Width)
		if err != nil {
			violate("smt: bitvector width overflow: %v", err)
		}
		return th.typeDT.Construct("BvT", strconv.FormatInt(w, 10))
	}
	violate("smt: typeConst: unexpected type %s", typ)
	return ""
}

// litTypeCascade builds the recognizer-guarded cascade selecting the program
// type of a universal-literal term. The undefined default is reachable only
// under internal miscoding.
func (th *theory) litTypeCascade(term string) string {
	type arm struct {
		ctor string
		typ  string
	}
	arms := []arm{
		{"Null", th.typeDT.Construct("NullT")},
		{"Empty", th.typeDT.Construct("EmptyT")},
		{"Nono", th.typeDT.Construct("NoneT")},
		{"BoolV", th.typeDT.Construct("BoolT")},
		{"IntV", th.typeDT.Construct("IntT")},
		{"NumV", th.typeDT.Construct("NumT")},
		{"StrV", th.typeDT.Construct("StrT")},
		{"LocV", th.typeDT.Construct("ObjT")},
		{"TypeV", th.typeDT.Construct("TypeT")},
		{"ListV", th.typeDT.Construct("ListT")},
		{"BvV", th.typeDT.Construct("BvT", th.litDT.AccessAt("BvV", 0, term))},
	}

	result := th.typeDT.Construct("UndefinedT")
	for i := len(arms) - 1; i >= 0; i-- {
		result = app("ite", th.litDT.Recognize(arms[i].ctor, term), arms[i].typ, result)
	}
	return result
}

// TypeOf returns the native GType encoding of the value's program type. For
// native encodings the type is statically known; wrapped encodings go
// through the recognizer cascade, extended ones testing the set recognizer
// first.
func (th *theory) TypeOf(e *Encoding) *Encoding {
	switch e.kind {
	case KindNative:
		return newEncoding(KindNative, gilsat.TType, th.typeConst(e.typ), e)
	case KindSimple:
		return newEncoding(KindNative, gilsat.TType, th.litTypeCascade(e.term), e)
	case KindExtended:
		term := app("ite",
			th.extDT.Recognize("SetOf", e.term),
			th.typeDT.Construct("SetT"),
			th.litTypeCascade(th.extDT.Access("Sing", e.term)))
		return newEncoding(KindNative, gilsat.TType, term, e)
	}
	violate("smt: TypeOf: unexpected kind %s", e.kind)
	return nil
}

// Eq encodes type-driven equality of two encodings as a native boolean.
// Equal native types compare directly, collapsing boolean comparison against
// a literal constant to the other operand. Kind mismatches widen both sides
// to the least general common representation: simple wrapping when neither
// side can be a set, extended wrapping otherwise.
func (th *theory) Eq(a, b *Encoding) *Encoding {
	if a.kind == KindNative && b.kind == KindNative {
		if !a.typ.Equal(b.typ) {
			violate("smt: equality between native %s and %s encodings", a.typ, b.typ)
		}
		if a.typ.Kind == gilsat.BoolType {
			switch {
			case a.term == "true":
				return newEncoding(KindNative, gilsat.TBool, b.term, a, b)
			case b.term == "true":
				return newEncoding(KindNative, gilsat.TBool, a.term, a, b)
			case a.term == "false":
				return newEncoding(KindNative, gilsat.TBool, app("not", b.term), a, b)
			case b.term == "false":
				return newEncoding(KindNative, gilsat.TBool, app("not", a.term), a, b)
			}
		}
		return newEncoding(KindNative, gilsat.TBool, app("=", a.term, b.term), a, b)
	}

	if a.kind == b.kind {
		return newEncoding(KindNative, gilsat.TBool, app("=", a.term, b.term), a, b)
	}

	if isSetLike(a) || isSetLike(b) {
		return newEncoding(KindNative, gilsat.TBool,
			app("=", th.extendWrapTerm(a), th.extendWrapTerm(b)), a, b)
	}
	return newEncoding(KindNative, gilsat.TBool,
		app("=", th.simpleWrapTerm(a), th.simpleWrapTerm(b)), a, b)
}

// sortOf maps a program type to the solver sort its native encodings
// inhabit. Strings and locations are interned integer codes; singleton types
// inhabit the universal literal sort.
func sortOf(typ *gilsat.Type) string {
	switch typ.Kind {
	case gilsat.BoolType:
		return sortBool
	case gilsat.IntType:
		return sortInt
	case gilsat.NumberType:
		return sortReal
	case gilsat.StringType, gilsat.ObjectType:
		return sortInt
	case gilsat.TypeType:
		return sortType
	case gilsat.ListType:
		return sortList
	case gilsat.SetType:
		return sortSet
	case gilsat.BitvectorType:
		return sortBv(typ.Width)
	default:
		return sortLit
	}
}
