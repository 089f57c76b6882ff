// Package exp is the expression sub-language the instruction
// catalog is generic over. Instructions only depend on the Exp
// interface; the concrete constructors here (literals, variables,
// operators) are one implementation of it, enough to build and run
// real programs.
package exp

import (
	"fmt"
	"rebar/types"
)

// Exp is the abstract expression interface.
// Eval evaluates a closed expression to a host value; expressions
// containing free variables return an error. Compile renders the
// expression in target (C) syntax.
type Exp interface {
	ExpType() types.TypeCode
	Eval() (types.Value, error)
	Compile() string
}

// Representable reports whether the expression language can
// represent values of the given kind
func Representable(t types.TypeCode) bool {
	return t.Integral() || t.Floating() || t == types.TYPE_BOOL
}

// Lit embeds a host literal
type Lit struct {
	V types.Value
}

// ExpType returns the literal's kind
func (l Lit) ExpType() types.TypeCode {
	return l.V.Type()
}

// Eval returns the embedded value
func (l Lit) Eval() (types.Value, error) {
	return l.V, nil
}

// Compile renders the literal
func (l Lit) Compile() string {
	return l.V.String()
}

// Int builds a signed integer literal
func Int(code types.TypeCode, v int64) Lit {
	return Lit{V: types.NewInt(code, v)}
}

// Word builds an unsigned integer literal
func Word(code types.TypeCode, v uint64) Lit {
	return Lit{V: types.NewWord(code, v)}
}

// Float builds a floating literal
func Float(code types.TypeCode, v float64) Lit {
	return Lit{V: types.NewFloat(code, v)}
}

// Bool builds a boolean literal
func Bool(v bool) Lit {
	return Lit{V: types.NewBool(v)}
}

// Var is a named target-language variable.
// It is open: evaluation fails, compilation emits the name.
type Var struct {
	Name string
	T    types.TypeCode
}

// ExpType returns the variable's declared kind
func (v Var) ExpType() types.TypeCode {
	return v.T
}

// Eval fails: a variable is not a closed expression
func (v Var) Eval() (types.Value, error) {
	return nil, fmt.Errorf("open expression: variable %q", v.Name)
}

// Compile emits the variable name
func (v Var) Compile() string {
	return v.Name
}

// Raw is a fragment of target syntax with a declared kind.
// Used for expressions that exist only in generated code, such as
// feof(h) or an array subscript.
type Raw struct {
	Text string
	T    types.TypeCode
}

// ExpType returns the fragment's declared kind
func (r Raw) ExpType() types.TypeCode {
	return r.T
}

// Eval fails: raw target syntax has no host value
func (r Raw) Eval() (types.Value, error) {
	return nil, fmt.Errorf("open expression: raw fragment %q", r.Text)
}

// Compile emits the fragment verbatim
func (r Raw) Compile() string {
	return r.Text
}
