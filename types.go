package gilsat

import "fmt"

// TypeKind enumerates the program types of the GIL value universe.
type TypeKind int

const (
	UndefinedType = TypeKind(iota)
	NullType
	EmptyType
	NoneType
	BoolType
	IntType
	NumberType
	StringType
	ObjectType
	TypeType
	ListType
	SetType
	BitvectorType
)

var typeKinds = [...]string{
	UndefinedType: "Undefined",
	NullType:      "Null",
	EmptyType:     "Empty",
	NoneType:      "None",
	BoolType:      "Bool",
	IntType:       "Int",
	NumberType:    "Num",
	StringType:    "Str",
	ObjectType:    "Obj",
	TypeType:      "Type",
	ListType:      "List",
	SetType:       "Set",
	BitvectorType: "BitVec",
}

// String returns the string representation of the kind.
func (k TypeKind) String() string {
	if k >= 0 && int(k) < len(typeKinds) {
		return typeKinds[k]
	}
	return fmt.Sprintf("TypeKind<%d>", int(k))
}

// Type represents a program type. Bitvector width is a parameter of the one
// bitvector type, not a separate type per width.
type Type struct {
	Kind  TypeKind
	Width uint // only set when Kind == BitvectorType
}

// Singleton types. These never carry a width so they can be shared.
var (
	TUndefined = &Type{Kind: UndefinedType}
	TNull      = &Type{Kind: NullType}
	TEmpty     = &Type{Kind: EmptyType}
	TNone      = &Type{Kind: NoneType}
	TBool      = &Type{Kind: BoolType}
	TInt       = &Type{Kind: IntType}
	TNumber    = &Type{Kind: NumberType}
	TString    = &Type{Kind: StringType}
	TObject    = &Type{Kind: ObjectType}
	TType      = &Type{Kind: TypeType}
	TList      = &Type{Kind: ListType}
	TSet       = &Type{Kind: SetType}
)

// TBitvector returns the bitvector type of the given width.
func TBitvector(width uint) *Type {
	assert(width > 0, "bitvector type with zero width")
	return &Type{Kind: BitvectorType, Width: width}
}

// String returns the string representation of the type.
func (t *Type) String() string {
	if t.Kind == BitvectorType {
		return fmt.Sprintf("BitVec<%d>", t.Width)
	}
	return t.Kind.String()
}

// Equal returns true if t and other denote the same program type.
func (t *Type) Equal(other *Type) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.Kind == other.Kind && t.Width == other.Width
}
