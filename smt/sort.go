package smt

import (
	"fmt"
	"strings"
)

// app renders an SMT-LIB application term.
func app(fn string, args ...string) string {
	if len(args) == 0 {
		return fn
	}
	return "(" + fn + " " + strings.Join(args, " ") + ")"
}

// Field names one constructor field together with its sort.
type Field struct {
	Name string
	Sort string
}

// ConstructorSpec describes one constructor of a tagged algebraic sort as
// ordinary data: nullary (no fields), unary (one field), or wider where a
// variant carries several payloads. Recognizer defaults to "is" + Name.
type ConstructorSpec struct {
	Name       string
	Recognizer string
	Fields     []Field
}

// recognizer returns the recognizer-predicate name for the constructor.
func (spec ConstructorSpec) recognizer() string {
	if spec.Recognizer != "" {
		return spec.Recognizer
	}
	return "is" + spec.Name
}

// Datatype is a declared tagged algebraic sort. It builds constructor,
// recognizer and accessor terms over its own constructors.
type Datatype struct {
	Name  string
	specs []ConstructorSpec
}

// spec returns the constructor specification by name.
func (d *Datatype) spec(ctor string) ConstructorSpec {
	for _, spec := range d.specs {
		if spec.Name == ctor {
			return spec
		}
	}
	violate("smt: datatype %s has no constructor %s", d.Name, ctor)
	return ConstructorSpec{}
}

// Construct returns the constructor application term. The argument count
// must match the constructor's field count.
func (d *Datatype) Construct(ctor string, args ...string) string {
	spec := d.spec(ctor)
	if len(args) != len(spec.Fields) {
		violate("smt: constructor %s.%s applied to %d arguments, want %d",
			d.Name, ctor, len(args), len(spec.Fields))
	}
	return app(spec.Name, args...)
}

// Recognize returns the recognizer-predicate application for the constructor.
func (d *Datatype) Recognize(ctor, term string) string {
	return app(d.spec(ctor).recognizer(), term)
}

// Access returns the accessor application for the constructor's single
// field. Constructors with several fields are accessed via AccessAt.
func (d *Datatype) Access(ctor, term string) string {
	spec := d.spec(ctor)
	if len(spec.Fields) != 1 {
		violate("smt: Access on %s.%s with %d fields", d.Name, ctor, len(spec.Fields))
	}
	return app(spec.Fields[0].Name, term)
}

// AccessAt returns the accessor application for the i-th field.
func (d *Datatype) AccessAt(ctor string, i int, term string) string {
	spec := d.spec(ctor)
	if i < 0 || i >= len(spec.Fields) {
		violate("smt: AccessAt(%d) on %s.%s with %d fields", i, d.Name, ctor, len(spec.Fields))
	}
	return app(spec.Fields[i].Name, term)
}

// Constructors returns the constructor specifications in declaration order.
func (d *Datatype) Constructors() []ConstructorSpec { return d.specs }

// Registry accumulates every sort and function declaration issued so far, in
// first-declaration order, so the session can re-emit them to the solver
// after each incremental reset. Declarations are never retracted. The
// registry itself performs no solver interaction.
type Registry struct {
	commands  []string
	declared  map[string]bool
	datatypes map[string]*Datatype
}

// NewRegistry returns an empty declaration registry.
func NewRegistry() *Registry {
	return &Registry{
		declared:  make(map[string]bool),
		datatypes: make(map[string]*Datatype),
	}
}

// Declared reports whether a declaration was already issued under name.
func (r *Registry) Declared(name string) bool { return r.declared[name] }

// DeclareDatatype records a declare-datatype command plus one recognizer
// definition per constructor and returns the resulting datatype. Declaring
// the same name twice returns the first declaration unchanged.
func (r *Registry) DeclareDatatype(name string, specs []ConstructorSpec) *Datatype {
	if d, ok := r.datatypes[name]; ok {
		return d
	}

	var ctors []string
	for _, spec := range specs {
		var fields []string
		for _, f := range spec.Fields {
			fields = append(fields, fmt.Sprintf(" (%s %s)", f.Name, f.Sort))
		}
		ctors = append(ctors, "("+spec.Name+strings.Join(fields, "")+")")
	}
	r.record(name, fmt.Sprintf("(declare-datatype %s (%s))", name, strings.Join(ctors, " ")))

	for _, spec := range specs {
		r.record(spec.recognizer(), fmt.Sprintf(
			"(define-fun %s ((x %s)) Bool ((_ is %s) x))",
			spec.recognizer(), name, spec.Name))
	}

	d := &Datatype{Name: name, specs: specs}
	r.datatypes[name] = d
	return d
}

// DefineSort records a define-sort alias.
func (r *Registry) DefineSort(name, definition string) {
	if r.declared[name] {
		return
	}
	r.record(name, fmt.Sprintf("(define-sort %s () %s)", name, definition))
}

// DeclareFun records an uninterpreted function declaration. Uninterpreted
// functions are constrained only by side-assertions emitted at use sites.
func (r *Registry) DeclareFun(name string, argSorts []string, retSort string) {
	if r.declared[name] {
		return
	}
	r.record(name, fmt.Sprintf("(declare-fun %s (%s) %s)", name, strings.Join(argSorts, " "), retSort))
}

// DefineFun records a defined function.
func (r *Registry) DefineFun(name string, params []Field, retSort, body string) {
	if r.declared[name] {
		return
	}
	var ps []string
	for _, p := range params {
		ps = append(ps, fmt.Sprintf("(%s %s)", p.Name, p.Sort))
	}
	r.record(name, fmt.Sprintf("(define-fun %s (%s) %s %s)", name, strings.Join(ps, " "), retSort, body))
}

func (r *Registry) record(name, command string) {
	r.declared[name] = true
	r.commands = append(r.commands, command)
}

// Replay returns every recorded declaration in first-declaration order. The
// returned slice must not be mutated.
func (r *Registry) Replay() []string { return r.commands }
