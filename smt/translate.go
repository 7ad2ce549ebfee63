package smt

import (
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"strings"

	"github.com/gilsat/gilsat"
	"github.com/xtgo/set"
)

// symbol renders a variable name as an SMT-LIB symbol, quoting names that
// fall outside the simple-symbol alphabet (GIL logical variables usually
// start with '#').
func symbol(name string) string {
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '_' || r == '$' || r == '!' || r == '.':
		default:
			return "|" + name + "|"
		}
	}
	return name
}

// repeatMemo deduplicates symbolic list-repetition terms within one
// incremental session. Fresh names are scoped to the session, so the memo
// and its counter reset with it.
type repeatMemo struct {
	entries map[repeatKey]string
	counter int
}

type repeatKey struct {
	elem   string
	length string
}

func newRepeatMemo() *repeatMemo {
	return &repeatMemo{entries: make(map[repeatKey]string)}
}

// reset clears the memo and the fresh-name counter, keeping generated names
// short and deterministic across queries.
func (m *repeatMemo) reset() {
	m.entries = make(map[repeatKey]string)
	m.counter = 0
}

func (m *repeatMemo) fresh() string {
	name := fmt.Sprintf("rep!%d", m.counter)
	m.counter++
	return name
}

// translator lowers GIL expressions and assertions into solver terms. It
// threads three read-only contextual parameters: the type environment, the
// set of variables encoded through the uninterpreted length function, and
// the set of variables known to appear only as aggregate elements.
type translator struct {
	th         *theory
	memo       *repeatMemo
	gamma      *gilsat.TypeEnv
	lengthOnly map[string]bool
	elemOnly   map[string]bool
}

// unsupported returns the recoverable failure for an operator with no
// encoding rule.
func unsupported(op fmt.Stringer) error {
	return &UnsupportedError{Op: op.String()}
}

// intNumeral renders an arbitrary-precision integer as an SMT-LIB numeral.
func intNumeral(v *big.Int) string {
	if v.Sign() < 0 {
		return app("-", new(big.Int).Neg(v).String())
	}
	return v.String()
}

// realNumeral renders a float as an SMT-LIB decimal.
func realNumeral(v float64) string {
	neg := false
	if v < 0 {
		neg = true
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	if neg {
		return app("-", s)
	}
	return s
}

// literal encodes a concrete GIL value.
func (tr *translator) literal(lit gilsat.Literal) (*Encoding, error) {
	th := tr.th
	switch lit := lit.(type) {
	case *gilsat.Undefined:
		return th.native(gilsat.TUndefined, th.litDT.Construct("Undef")), nil
	case *gilsat.Null:
		return th.native(gilsat.TNull, th.litDT.Construct("Null")), nil
	case *gilsat.Empty:
		return th.native(gilsat.TEmpty, th.litDT.Construct("Empty")), nil
	case *gilsat.Nono:
		return th.native(gilsat.TNone, th.litDT.Construct("Nono")), nil
	case *gilsat.Bool:
		if lit.Value {
			return th.native(gilsat.TBool, "true"), nil
		}
		return th.native(gilsat.TBool, "false"), nil
	case *gilsat.Int:
		return th.native(gilsat.TInt, intNumeral(lit.Value)), nil
	case *gilsat.Num:
		return th.native(gilsat.TNumber, realNumeral(lit.Value)), nil
	case *gilsat.Str:
		code := tr.th.strings.Intern(lit.Value)
		return th.native(gilsat.TString, strconv.Itoa(code)), nil
	case *gilsat.Loc:
		code := tr.th.strings.Intern(lit.Value)
		return th.native(gilsat.TObject, strconv.Itoa(code)), nil
	case *gilsat.TypeVal:
		return th.native(gilsat.TType, th.typeConst(lit.Value)), nil
	case *gilsat.LList:
		var units []string
		deps := make([]*Encoding, 0, len(lit.Values))
		for _, v := range lit.Values {
			enc, err := tr.literal(v)
			if err != nil {
				return nil, err
			}
			units = append(units, app("seq.unit", th.simpleWrapTerm(enc)))
			deps = append(deps, enc)
		}
		return newEncoding(KindNative, gilsat.TList, seqConcat(units), deps...), nil
	case *gilsat.BitVec:
		th.registerWidth(lit.Width)
		term := fmt.Sprintf("(_ bv%s %d)", lit.Value.String(), lit.Width)
		return th.native(gilsat.TBitvector(lit.Width), term), nil
	default:
		return nil, &UnsupportedError{Op: fmt.Sprintf("literal %T", lit)}
	}
}

// seqConcat folds unit terms into one sequence term.
func seqConcat(units []string) string {
	switch len(units) {
	case 0:
		return emptyList()
	case 1:
		return units[0]
	default:
		return app("seq.++", units...)
	}
}

// variable encodes a symbolic variable, choosing the representation from the
// type environment: known type means native, unknown type but proven to be
// used only as an aggregate element means simple wrapping, anything else
// means extended wrapping.
func (tr *translator) variable(name string) *Encoding {
	sym := symbol(name)

	if typ, ok := tr.gamma.Lookup(name); ok && typ != nil {
		enc := tr.th.native(typ, sym)
		enc.addConst(ConstDecl{Name: sym, Sort: sortOf(typ)})
		switch typ.Kind {
		case gilsat.UndefinedType, gilsat.NullType, gilsat.EmptyType, gilsat.NoneType:
			// Singleton-typed constants are pinned to their one value.
			enc.addExtra(app("=", sym, tr.th.typeSingleton(typ)))
		}
		return enc
	}

	if tr.elemOnly[name] {
		enc := newEncoding(KindSimple, nil, sym)
		enc.addConst(ConstDecl{Name: sym, Sort: sortLit})
		return enc
	}

	enc := newEncoding(KindExtended, nil, sym)
	enc.addConst(ConstDecl{Name: sym, Sort: sortExt})
	return enc
}

// typeSingleton returns the literal constant of a singleton type.
func (th *theory) typeSingleton(typ *gilsat.Type) string {
	switch typ.Kind {
	case gilsat.UndefinedType:
		return th.litDT.Construct("Undef")
	case gilsat.NullType:
		return th.litDT.Construct("Null")
	case gilsat.EmptyType:
		return th.litDT.Construct("Empty")
	case gilsat.NoneType:
		return th.litDT.Construct("Nono")
	}
	violate("smt: typeSingleton of non-singleton type %s", typ)
	return ""
}

// expr translates an expression into an encoding.
func (tr *translator) expr(e gilsat.Expr) (*Encoding, error) {
	th := tr.th
	switch e := e.(type) {
	case *gilsat.LitExpr:
		return tr.literal(e.Lit)

	case *gilsat.LVar:
		return tr.variable(e.Name), nil

	case *gilsat.PVar:
		violate("smt: program variable %s in logic context", e.Name)
		return nil, nil

	case *gilsat.ALoc:
		code := th.strings.Intern(e.Name)
		return th.native(gilsat.TObject, strconv.Itoa(code)), nil

	case *gilsat.UnaryExpr:
		return tr.unary(e)

	case *gilsat.BinaryExpr:
		return tr.binary(e)

	case *gilsat.NAryExpr:
		return tr.nary(e)

	case *gilsat.BvExpr:
		return tr.bitvector(e)

	default:
		return nil, &UnsupportedError{Op: fmt.Sprintf("expression %T", e)}
	}
}

func (tr *translator) unary(e *gilsat.UnaryExpr) (*Encoding, error) {
	th := tr.th

	// Uninterpreted logical length sidesteps the sequence theory entirely
	// for list variables whose contents are never constrained.
	if e.Op == gilsat.LSTLEN {
		if v, ok := e.X.(*gilsat.LVar); ok && tr.lengthOnly[v.Name] {
			sym := symbol(v.Name)
			enc := th.native(gilsat.TInt, app("llen", sym))
			enc.addConst(ConstDecl{Name: sym, Sort: sortList})
			enc.addExtra(app("<=", "0", app("llen", sym)))
			return enc, nil
		}
	}

	x, err := tr.expr(e.X)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case gilsat.NEG:
		return newEncoding(KindNative, gilsat.TInt, app("-", th.Int(x)), x), nil
	case gilsat.FNEG:
		return newEncoding(KindNative, gilsat.TNumber, app("-", th.Num(x)), x), nil
	case gilsat.NOT:
		return newEncoding(KindNative, gilsat.TBool, app("not", th.Bool(x)), x), nil
	case gilsat.CAR:
		// A single extracted element stays simply wrapped: its own type
		// is not statically known.
		return newEncoding(KindSimple, nil, app("seq.nth", th.List(x), "0"), x), nil
	case gilsat.CDR:
		l := th.List(x)
		term := app("seq.extract", l, "1", app("-", app("seq.len", l), "1"))
		return newEncoding(KindNative, gilsat.TList, term, x), nil
	case gilsat.LSTLEN:
		return newEncoding(KindNative, gilsat.TInt, app("seq.len", th.List(x)), x), nil
	case gilsat.STRLEN:
		enc := newEncoding(KindNative, gilsat.TInt, app("slen", th.Str(x)), x)
		enc.addExtra(app("<=", "0", enc.term))
		return enc, nil
	case gilsat.TYPEOF:
		return th.TypeOf(x), nil
	default:
		return nil, unsupported(e.Op)
	}
}

func (tr *translator) binary(e *gilsat.BinaryExpr) (*Encoding, error) {
	th := tr.th

	if e.Op == gilsat.LSTREPEAT {
		return tr.repeat(e.X, e.Y)
	}

	x, err := tr.expr(e.X)
	if err != nil {
		return nil, err
	}
	y, err := tr.expr(e.Y)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case gilsat.ADD:
		return newEncoding(KindNative, gilsat.TInt, app("+", th.Int(x), th.Int(y)), x, y), nil
	case gilsat.SUB:
		return newEncoding(KindNative, gilsat.TInt, app("-", th.Int(x), th.Int(y)), x, y), nil
	case gilsat.MUL:
		return newEncoding(KindNative, gilsat.TInt, app("*", th.Int(x), th.Int(y)), x, y), nil
	case gilsat.DIV:
		return newEncoding(KindNative, gilsat.TInt, app("div", th.Int(x), th.Int(y)), x, y), nil
	case gilsat.MOD:
		return newEncoding(KindNative, gilsat.TInt, app("mod", th.Int(x), th.Int(y)), x, y), nil
	case gilsat.FADD:
		return newEncoding(KindNative, gilsat.TNumber, app("+", th.Num(x), th.Num(y)), x, y), nil
	case gilsat.FSUB:
		return newEncoding(KindNative, gilsat.TNumber, app("-", th.Num(x), th.Num(y)), x, y), nil
	case gilsat.FMUL:
		return newEncoding(KindNative, gilsat.TNumber, app("*", th.Num(x), th.Num(y)), x, y), nil
	case gilsat.FDIV:
		return newEncoding(KindNative, gilsat.TNumber, app("/", th.Num(x), th.Num(y)), x, y), nil
	case gilsat.LSTNTH:
		return newEncoding(KindSimple, nil, app("seq.nth", th.List(x), th.Int(y)), x, y), nil
	case gilsat.LSTCONS:
		term := app("seq.++", app("seq.unit", th.simpleWrapTerm(x)), th.List(y))
		return newEncoding(KindNative, gilsat.TList, term, x, y), nil
	case gilsat.STRCAT:
		return newEncoding(KindNative, gilsat.TString, app("scat", th.Str(x), th.Str(y)), x, y), nil
	case gilsat.SETDIFF:
		return newEncoding(KindNative, gilsat.TSet, app("setminus", th.Set(x), th.Set(y)), x, y), nil
	default:
		return nil, unsupported(e.Op)
	}
}

// repeat axiomatizes list repetition: the sequence theory cannot express it
// natively, so a fresh constant is constrained to be exactly the repeated
// list. Structurally equal (element, length) pairs within one query share
// one constant and emit the side-assertions exactly once.
func (tr *translator) repeat(elem, length gilsat.Expr) (*Encoding, error) {
	th := tr.th

	x, err := tr.expr(elem)
	if err != nil {
		return nil, err
	}
	n, err := tr.expr(length)
	if err != nil {
		return nil, err
	}

	elemT := th.simpleWrapTerm(x)
	lenT := th.Int(n)

	key := repeatKey{elem: elemT, length: lenT}
	if name, ok := tr.memo.entries[key]; ok {
		enc := newEncoding(KindNative, gilsat.TList, name, x, n)
		enc.addConst(ConstDecl{Name: name, Sort: sortList})
		return enc, nil
	}

	name := tr.memo.fresh()
	tr.memo.entries[key] = name

	enc := newEncoding(KindNative, gilsat.TList, name, x, n)
	enc.addConst(ConstDecl{Name: name, Sort: sortList})
	enc.addExtra(
		fmt.Sprintf("(forall ((i Int)) (=> (and (<= 0 i) (< i %s)) (= (seq.nth %s i) %s)))",
			lenT, name, elemT),
		app("=", app("seq.len", name), lenT),
	)
	return enc, nil
}

func (tr *translator) nary(e *gilsat.NAryExpr) (*Encoding, error) {
	th := tr.th

	xs := make([]*Encoding, 0, len(e.Xs))
	for _, x := range e.Xs {
		enc, err := tr.expr(x)
		if err != nil {
			return nil, err
		}
		xs = append(xs, enc)
	}

	switch e.Op {
	case gilsat.ELIST:
		units := make([]string, 0, len(xs))
		for _, x := range xs {
			units = append(units, app("seq.unit", th.simpleWrapTerm(x)))
		}
		return newEncoding(KindNative, gilsat.TList, seqConcat(units), xs...), nil

	case gilsat.ESET:
		// A set literal folds element insertion left-to-right over the
		// empty set.
		term := emptySet()
		for _, x := range xs {
			term = app("store", term, th.simpleWrapTerm(x), "true")
		}
		return newEncoding(KindNative, gilsat.TSet, term, xs...), nil

	case gilsat.LSTCAT:
		parts := make([]string, 0, len(xs))
		for _, x := range xs {
			parts = append(parts, th.List(x))
		}
		return newEncoding(KindNative, gilsat.TList, seqConcat(parts), xs...), nil

	case gilsat.SETUNION, gilsat.SETINTER:
		fn := "union"
		if e.Op == gilsat.SETINTER {
			fn = "intersection"
		}
		if len(xs) == 0 {
			return newEncoding(KindNative, gilsat.TSet, emptySet()), nil
		}
		term := th.Set(xs[0])
		for _, x := range xs[1:] {
			term = app(fn, term, th.Set(x))
		}
		return newEncoding(KindNative, gilsat.TSet, term, xs...), nil

	default:
		return nil, unsupported(e.Op)
	}
}

func (tr *translator) bitvector(e *gilsat.BvExpr) (*Encoding, error) {
	th := tr.th
	th.registerWidth(e.Width)

	args := make([]*Encoding, 0, len(e.Xs))
	terms := make([]string, 0, len(e.Xs))
	for _, x := range e.Xs {
		enc, err := tr.expr(x)
		if err != nil {
			return nil, err
		}
		args = append(args, enc)
		terms = append(terms, th.Bv(enc, e.Width))
	}

	arity := func(n int) {
		if len(terms) != n {
			violate("smt: bitvector intrinsic %s applied to %d arguments, want %d", e.Op, len(terms), n)
		}
	}

	switch e.Op {
	case gilsat.BVNOT, gilsat.BVNEG:
		arity(1)
		return newEncoding(KindNative, gilsat.TBitvector(e.Width), app(e.Op.String(), terms[0]), args...), nil

	case gilsat.BVADD, gilsat.BVSUB, gilsat.BVMUL, gilsat.BVUDIV, gilsat.BVSDIV,
		gilsat.BVUREM, gilsat.BVSREM, gilsat.BVAND, gilsat.BVOR, gilsat.BVXOR,
		gilsat.BVSHL, gilsat.BVLSHR, gilsat.BVASHR:
		arity(2)
		return newEncoding(KindNative, gilsat.TBitvector(e.Width), app(e.Op.String(), terms...), args...), nil

	case gilsat.BVCONCAT:
		if len(terms) < 2 {
			violate("smt: concat applied to %d arguments", len(terms))
		}
		width := e.Width * uint(len(terms))
		th.registerWidth(width)
		return newEncoding(KindNative, gilsat.TBitvector(width), app("concat", terms...), args...), nil

	case gilsat.BVULT, gilsat.BVULE, gilsat.BVSLT, gilsat.BVSLE:
		arity(2)
		return newEncoding(KindNative, gilsat.TBool, app(e.Op.String(), terms...), args...), nil

	default:
		return nil, unsupported(e.Op)
	}
}

// assertion translates an assertion into a native boolean encoding.
func (tr *translator) assertion(a gilsat.Assertion) (*Encoding, error) {
	th := tr.th
	switch a := a.(type) {
	case *gilsat.True:
		return th.native(gilsat.TBool, "true"), nil
	case *gilsat.False:
		return th.native(gilsat.TBool, "false"), nil

	case *gilsat.Not:
		body, err := tr.assertion(a.A)
		if err != nil {
			return nil, err
		}
		return newEncoding(KindNative, gilsat.TBool, app("not", body.term), body), nil

	case *gilsat.And:
		return tr.connective("and", a.L, a.R)
	case *gilsat.Or:
		return tr.connective("or", a.L, a.R)

	case *gilsat.Eq:
		x, err := tr.expr(a.X)
		if err != nil {
			return nil, err
		}
		y, err := tr.expr(a.Y)
		if err != nil {
			return nil, err
		}
		return th.Eq(x, y), nil

	case *gilsat.Less:
		return tr.compare("<", a.X, a.Y, th.Int)
	case *gilsat.LessEq:
		return tr.compare("<=", a.X, a.Y, th.Int)
	case *gilsat.FLess:
		return tr.compare("<", a.X, a.Y, th.Num)
	case *gilsat.FLessEq:
		return tr.compare("<=", a.X, a.Y, th.Num)
	case *gilsat.StrLess:
		return tr.compare("sless", a.X, a.Y, th.Str)

	case *gilsat.SetMem:
		x, err := tr.expr(a.X)
		if err != nil {
			return nil, err
		}
		s, err := tr.expr(a.S)
		if err != nil {
			return nil, err
		}
		term := app("member", th.simpleWrapTerm(x), th.Set(s))
		return newEncoding(KindNative, gilsat.TBool, term, x, s), nil

	case *gilsat.SetSub:
		s1, err := tr.expr(a.S1)
		if err != nil {
			return nil, err
		}
		s2, err := tr.expr(a.S2)
		if err != nil {
			return nil, err
		}
		term := app("subset", th.Set(s1), th.Set(s2))
		return newEncoding(KindNative, gilsat.TBool, term, s1, s2), nil

	case *gilsat.ForAll:
		return tr.quantifier("forall", a.Binders, a.Body)
	case *gilsat.Exists:
		return tr.quantifier("exists", a.Binders, a.Body)

	default:
		return nil, &UnsupportedError{Op: fmt.Sprintf("assertion %T", a)}
	}
}

func (tr *translator) connective(fn string, l, r gilsat.Assertion) (*Encoding, error) {
	le, err := tr.assertion(l)
	if err != nil {
		return nil, err
	}
	re, err := tr.assertion(r)
	if err != nil {
		return nil, err
	}
	return newEncoding(KindNative, gilsat.TBool, app(fn, le.term, re.term), le, re), nil
}

func (tr *translator) compare(fn string, x, y gilsat.Expr, access func(*Encoding) string) (*Encoding, error) {
	xe, err := tr.expr(x)
	if err != nil {
		return nil, err
	}
	ye, err := tr.expr(y)
	if err != nil {
		return nil, err
	}
	return newEncoding(KindNative, gilsat.TBool, app(fn, access(xe), access(ye)), xe, ye), nil
}

// quantifier translates a quantified assertion. The type environment is
// copied and overlaid with the binder annotations; the body must come back
// as a native boolean; bound variables are stripped from the constant set
// since the solver binds them itself.
//
// Side-assertions minted while translating the body may mention the bound
// variables, and those must not escape the binder. They stay under the
// quantifier: hypotheses of a universal body, conjuncts of an existential
// one. Only extras free of every binder hoist to the top level.
func (tr *translator) quantifier(kw string, binders []gilsat.Binder, body gilsat.Assertion) (*Encoding, error) {
	if len(binders) == 0 {
		return tr.assertion(body)
	}

	inner := &translator{
		th:         tr.th,
		memo:       tr.memo,
		gamma:      tr.gamma.Copy(),
		lengthOnly: tr.lengthOnly,
		elemOnly:   tr.elemOnly,
	}
	for _, b := range binders {
		inner.gamma.Set(b.Name, b.Type)
	}

	be, err := inner.assertion(body)
	if err != nil {
		return nil, err
	}
	if be.kind != KindNative || be.typ.Kind != gilsat.BoolType {
		violate("smt: quantifier body translated to %s, want native Bool", be.kind)
	}

	bound := make(map[string]bool, len(binders))
	var decls []string
	for _, b := range binders {
		sym := symbol(b.Name)
		bound[sym] = true
		srt := sortExt
		if b.Type != nil {
			srt = sortOf(b.Type)
		}
		decls = append(decls, fmt.Sprintf("(%s %s)", sym, srt))
	}

	var scoped, hoisted []string
	for _, x := range be.extra {
		if mentionsAny(x, bound) {
			scoped = append(scoped, x)
		} else {
			hoisted = append(hoisted, x)
		}
	}
	term := be.term
	if len(scoped) > 0 {
		guard := scoped[0]
		if len(scoped) > 1 {
			guard = app("and", scoped...)
		}
		if kw == "forall" {
			term = app("=>", guard, term)
		} else {
			term = app("and", guard, term)
		}
	}

	enc := newEncoding(KindNative, gilsat.TBool,
		fmt.Sprintf("(%s (%s) %s)", kw, strings.Join(decls, " "), term))
	for c := range be.consts {
		if !bound[c.Name] {
			enc.addConst(c)
		}
	}
	enc.extra = append(enc.extra, hoisted...)
	return enc, nil
}

// mentionsAny reports whether the rendered term uses any of the symbols as a
// whole token.
func mentionsAny(term string, syms map[string]bool) bool {
	for sym := range syms {
		if mentionsSymbol(term, sym) {
			return true
		}
	}
	return false
}

// mentionsSymbol reports whether the rendered term contains sym as a whole
// token, delimited the same way the response parser delimits atoms.
func mentionsSymbol(term, sym string) bool {
	for from := 0; ; {
		i := strings.Index(term[from:], sym)
		if i < 0 {
			return false
		}
		i += from
		end := i + len(sym)
		leftOK := i == 0 || isDelimiter(term[i-1])
		rightOK := end == len(term) || isDelimiter(term[end])
		if leftOK && rightOK {
			return true
		}
		from = i + 1
	}
}

// constDecls sorts constant declarations by name. Implements sort.Interface
// for set.Uniq.
type constDecls []ConstDecl

func (a constDecls) Len() int      { return len(a) }
func (a constDecls) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a constDecls) Less(i, j int) bool {
	if a[i].Name != a[j].Name {
		return a[i].Name < a[j].Name
	}
	return a[i].Sort < a[j].Sort
}

// translateFormulas lowers a formula set under gamma into the assert-side
// command list: constant declarations first, then auxiliary side-assertions,
// then the main assertions. Declarations recorded in the registry are not
// part of the result; the session replays those separately.
func translateFormulas(th *theory, memo *repeatMemo, fs *gilsat.FormulaSet, gamma *gilsat.TypeEnv) ([]string, error) {
	tr := &translator{
		th:         th,
		memo:       memo,
		gamma:      gamma,
		lengthOnly: collectLengthOnly(fs),
		elemOnly:   collectElemOnly(fs),
	}

	var consts constDecls
	var extras []string
	var mains []string
	seenExtra := make(map[string]bool)

	for _, a := range fs.Assertions() {
		enc, err := tr.assertion(gilsat.PushNegations(a))
		if err != nil {
			return nil, err
		}
		for c := range enc.consts {
			consts = append(consts, c)
		}
		for _, x := range enc.extra {
			if !seenExtra[x] {
				seenExtra[x] = true
				extras = append(extras, x)
			}
		}
		mains = append(mains, enc.term)
	}

	sort.Sort(consts)
	consts = consts[:set.Uniq(consts)]

	var commands []string
	for _, c := range consts {
		commands = append(commands, fmt.Sprintf("(declare-const %s %s)", c.Name, c.Sort))
	}
	for _, x := range extras {
		commands = append(commands, app("assert", x))
	}
	for _, m := range mains {
		commands = append(commands, app("assert", m))
	}
	return commands, nil
}
