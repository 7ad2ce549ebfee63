package gilsat

import (
	"fmt"
	"strings"
)

// Expr represents a GIL logic expression.
type Expr interface {
	expr()
	String() string
}

func (*LitExpr) expr()    {}
func (*LVar) expr()       {}
func (*PVar) expr()       {}
func (*ALoc) expr()       {}
func (*UnaryExpr) expr()  {}
func (*BinaryExpr) expr() {}
func (*NAryExpr) expr()   {}
func (*BvExpr) expr()     {}

// LitExpr wraps a literal as an expression.
type LitExpr struct {
	Lit Literal
}

// NewLitExpr returns a literal expression.
func NewLitExpr(lit Literal) *LitExpr { return &LitExpr{Lit: lit} }

func (e *LitExpr) String() string { return e.Lit.String() }

// LVar is a symbolic (logical) variable.
type LVar struct {
	Name string
}

func (e *LVar) String() string { return e.Name }

// PVar is a program variable. Program variables are eliminated before
// formulas reach the satisfiability bridge; encountering one there is an
// upstream bug.
type PVar struct {
	Name string
}

func (e *PVar) String() string { return e.Name }

// ALoc is an abstract object location.
type ALoc struct {
	Name string
}

func (e *ALoc) String() string { return e.Name }

// UnaryOp represents a unary expression operation.
type UnaryOp int

const (
	NEG = UnaryOp(iota) // integer negation
	FNEG
	NOT
	CAR
	CDR
	LSTLEN
	STRLEN
	TYPEOF
)

var unaryOps = [...]string{
	NEG:    "neg",
	FNEG:   "fneg",
	NOT:    "not",
	CAR:    "car",
	CDR:    "cdr",
	LSTLEN: "l-len",
	STRLEN: "s-len",
	TYPEOF: "typeof",
}

// String returns the string representation of the operation.
func (op UnaryOp) String() string {
	if op >= 0 && int(op) < len(unaryOps) {
		return unaryOps[op]
	}
	return fmt.Sprintf("UnaryOp<%d>", int(op))
}

// UnaryExpr represents an operation on one expression.
type UnaryExpr struct {
	Op UnaryOp
	X  Expr
}

// NewUnaryExpr returns a new instance of UnaryExpr.
func NewUnaryExpr(op UnaryOp, x Expr) *UnaryExpr {
	return &UnaryExpr{Op: op, X: x}
}

func (e *UnaryExpr) String() string {
	return fmt.Sprintf("(%s %s)", e.Op, e.X)
}

// BinaryOp represents a binary expression operation.
type BinaryOp int

const (
	ADD = BinaryOp(iota)
	SUB
	MUL
	DIV
	MOD
	FADD
	FSUB
	FMUL
	FDIV
	LSTNTH
	LSTCONS
	LSTREPEAT
	STRCAT
	SETDIFF
)

var binaryOps = [...]string{
	ADD:       "i+",
	SUB:       "i-",
	MUL:       "i*",
	DIV:       "i/",
	MOD:       "i%",
	FADD:      "f+",
	FSUB:      "f-",
	FMUL:      "f*",
	FDIV:      "f/",
	LSTNTH:    "l-nth",
	LSTCONS:   "l-cons",
	LSTREPEAT: "l-repeat",
	STRCAT:    "s-cat",
	SETDIFF:   "s-diff",
}

// String returns the string representation of the operation.
func (op BinaryOp) String() string {
	if op >= 0 && int(op) < len(binaryOps) {
		return binaryOps[op]
	}
	return fmt.Sprintf("BinaryOp<%d>", int(op))
}

// BinaryExpr represents an operation on two expressions.
type BinaryExpr struct {
	Op BinaryOp
	X  Expr
	Y  Expr
}

// NewBinaryExpr returns a new instance of BinaryExpr.
func NewBinaryExpr(op BinaryOp, x, y Expr) *BinaryExpr {
	return &BinaryExpr{Op: op, X: x, Y: y}
}

func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Op, e.X, e.Y)
}

// NAryOp represents an n-ary expression operation.
type NAryOp int

const (
	ELIST = NAryOp(iota)
	ESET
	LSTCAT
	SETUNION
	SETINTER
)

var naryOps = [...]string{
	ELIST:    "l",
	ESET:     "s",
	LSTCAT:   "l-cat",
	SETUNION: "s-union",
	SETINTER: "s-inter",
}

// String returns the string representation of the operation.
func (op NAryOp) String() string {
	if op >= 0 && int(op) < len(naryOps) {
		return naryOps[op]
	}
	return fmt.Sprintf("NAryOp<%d>", int(op))
}

// NAryExpr represents an operation on a list of expressions.
type NAryExpr struct {
	Op NAryOp
	Xs []Expr
}

// NewNAryExpr returns a new instance of NAryExpr.
func NewNAryExpr(op NAryOp, xs ...Expr) *NAryExpr {
	return &NAryExpr{Op: op, Xs: xs}
}

func (e *NAryExpr) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(e.Op.String())
	for _, x := range e.Xs {
		sb.WriteByte(' ')
		sb.WriteString(x.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// BvOp represents a bitvector intrinsic operation.
type BvOp int

const (
	bv_arith_begin = BvOp(iota)
	BVADD
	BVSUB
	BVMUL
	BVUDIV
	BVSDIV
	BVUREM
	BVSREM
	BVAND
	BVOR
	BVXOR
	BVNOT
	BVNEG
	BVSHL
	BVLSHR
	BVASHR
	BVCONCAT
	bv_arith_end

	bv_compare_begin
	BVULT
	BVULE
	BVSLT
	BVSLE
	bv_compare_end
)

var bvOps = [...]string{
	BVADD:    "bvadd",
	BVSUB:    "bvsub",
	BVMUL:    "bvmul",
	BVUDIV:   "bvudiv",
	BVSDIV:   "bvsdiv",
	BVUREM:   "bvurem",
	BVSREM:   "bvsrem",
	BVAND:    "bvand",
	BVOR:     "bvor",
	BVXOR:    "bvxor",
	BVNOT:    "bvnot",
	BVNEG:    "bvneg",
	BVSHL:    "bvshl",
	BVLSHR:   "bvlshr",
	BVASHR:   "bvashr",
	BVCONCAT: "concat",
	BVULT:    "bvult",
	BVULE:    "bvule",
	BVSLT:    "bvslt",
	BVSLE:    "bvsle",
}

// String returns the string representation of the operation.
func (op BvOp) String() string {
	if op >= 0 && int(op) < len(bvOps) && bvOps[op] != "" {
		return bvOps[op]
	}
	return fmt.Sprintf("BvOp<%d>", int(op))
}

// IsCompare returns true if op yields a boolean.
func (op BvOp) IsCompare() bool {
	return op > bv_compare_begin && op < bv_compare_end
}

// BvExpr represents a bitvector intrinsic applied at a declared width.
type BvExpr struct {
	Op    BvOp
	Width uint
	Xs    []Expr
}

// NewBvExpr returns a new instance of BvExpr.
func NewBvExpr(op BvOp, width uint, xs ...Expr) *BvExpr {
	return &BvExpr{Op: op, Width: width, Xs: xs}
}

func (e *BvExpr) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "(%s:%d", e.Op, e.Width)
	for _, x := range e.Xs {
		sb.WriteByte(' ')
		sb.WriteString(x.String())
	}
	sb.WriteByte(')')
	return sb.String()
}
