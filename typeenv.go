package gilsat

import "sort"

// TypeEnv maps symbolic-variable names to their statically known program
// types. Quantifiers refine a copy, never the original.
type TypeEnv struct {
	types map[string]*Type
}

// NewTypeEnv returns an empty type environment.
func NewTypeEnv() *TypeEnv {
	return &TypeEnv{types: make(map[string]*Type)}
}

// Set binds name to typ. A nil typ marks the variable as present but of
// unknown type.
func (env *TypeEnv) Set(name string, typ *Type) {
	env.types[name] = typ
}

// Lookup returns the type bound to name. The second return reports whether
// name is bound at all; the type itself may still be nil (unknown).
func (env *TypeEnv) Lookup(name string) (*Type, bool) {
	typ, ok := env.types[name]
	return typ, ok
}

// Copy returns an independent copy of the environment.
func (env *TypeEnv) Copy() *TypeEnv {
	other := &TypeEnv{types: make(map[string]*Type, len(env.types))}
	for name, typ := range env.types {
		other.types[name] = typ
	}
	return other
}

// Names returns the bound variable names in sorted order.
func (env *TypeEnv) Names() []string {
	names := make([]string, 0, len(env.types))
	for name := range env.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
