package gilsat

import (
	"fmt"
	"math/big"
	"strings"
)

// Literal represents a concrete GIL value.
type Literal interface {
	literal()

	// Type returns the program type of the literal.
	Type() *Type

	String() string
}

func (*Undefined) literal() {}
func (*Null) literal()      {}
func (*Empty) literal()     {}
func (*Nono) literal()      {}
func (*Bool) literal()      {}
func (*Int) literal()       {}
func (*Num) literal()       {}
func (*Str) literal()       {}
func (*Loc) literal()       {}
func (*TypeVal) literal()   {}
func (*LList) literal()     {}
func (*BitVec) literal()    {}

// Undefined is the undefined value.
type Undefined struct{}

func (*Undefined) Type() *Type    { return TUndefined }
func (*Undefined) String() string { return "undefined" }

// Null is the null value.
type Null struct{}

func (*Null) Type() *Type    { return TNull }
func (*Null) String() string { return "null" }

// Empty is the empty value.
type Empty struct{}

func (*Empty) Type() *Type    { return TEmpty }
func (*Empty) String() string { return "empty" }

// Nono is the "none" value, marking the absence of a resource.
type Nono struct{}

func (*Nono) Type() *Type    { return TNone }
func (*Nono) String() string { return "none" }

// Bool is a boolean literal.
type Bool struct {
	Value bool
}

func (l *Bool) Type() *Type { return TBool }
func (l *Bool) String() string {
	if l.Value {
		return "true"
	}
	return "false"
}

// Int is an arbitrary-precision integer literal.
type Int struct {
	Value *big.Int
}

// NewInt returns an integer literal for a small constant.
func NewInt(v int64) *Int { return &Int{Value: big.NewInt(v)} }

func (l *Int) Type() *Type    { return TInt }
func (l *Int) String() string { return l.Value.String() }

// Num is a number (real) literal.
type Num struct {
	Value float64
}

func (l *Num) Type() *Type    { return TNumber }
func (l *Num) String() string { return fmt.Sprintf("%g", l.Value) }

// Str is a string literal. Strings are compared by interned code in the
// solver theory, never by content.
type Str struct {
	Value string
}

func (l *Str) Type() *Type    { return TString }
func (l *Str) String() string { return fmt.Sprintf("%q", l.Value) }

// Loc is a concrete object location.
type Loc struct {
	Value string
}

func (l *Loc) Type() *Type    { return TObject }
func (l *Loc) String() string { return l.Value }

// TypeVal is a type used as a value.
type TypeVal struct {
	Value *Type
}

func (l *TypeVal) Type() *Type    { return TType }
func (l *TypeVal) String() string { return l.Value.String() }

// LList is a concrete list of literals.
type LList struct {
	Values []Literal
}

func (l *LList) Type() *Type { return TList }
func (l *LList) String() string {
	var sb strings.Builder
	sb.WriteString("{{")
	for i, v := range l.Values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.String())
	}
	sb.WriteString("}}")
	return sb.String()
}

// BitVec is a bitvector literal: a width together with the unsigned value of
// the bits.
type BitVec struct {
	Width uint
	Value *big.Int
}

// NewBitVec returns a bitvector literal for a small constant.
func NewBitVec(v uint64, width uint) *BitVec {
	return &BitVec{Width: width, Value: new(big.Int).SetUint64(v)}
}

func (l *BitVec) Type() *Type    { return TBitvector(l.Width) }
func (l *BitVec) String() string { return fmt.Sprintf("%s#%d", l.Value.String(), l.Width) }
