package prog

import "rebar/exp"

// FunArg is an argument to a foreign call: either a typed
// expression, a string or object, or another argument wrapped by an
// address/dereference modifier.
type FunArg interface {
	funArg()
}

// ValArg passes a typed expression
type ValArg struct {
	E exp.Exp
}

func (ValArg) funArg() {}

// StrArg passes a string literal
type StrArg struct {
	S string
}

func (StrArg) funArg() {}

// ObjArg passes an opaque object by name
type ObjArg struct {
	O *Object
}

func (ObjArg) funArg() {}

// AddrArg passes the address of another argument
type AddrArg struct {
	Arg FunArg
}

func (AddrArg) funArg() {}

// DerefArg passes another argument dereferenced
type DerefArg struct {
	Arg FunArg
}

func (DerefArg) funArg() {}
