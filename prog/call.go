package prog

import (
	"rebar/exp"
	"rebar/types"
)

// AddInclude registers a header in the generated output's global
// declaration set. No-op under dry and direct interpretation.
// Duplicate registrations are appended verbatim; avoiding redundant
// calls is the caller's responsibility.
type AddInclude struct {
	Header string
}

// Op returns the mnemonic
func (i *AddInclude) Op() string { return "AddInclude" }

// MapProgs returns the instruction unchanged (no sub-programs)
func (i *AddInclude) MapProgs(f func(*Prog) *Prog) Instr { return i }

// AddDefinition registers a verbatim global definition fragment.
// No-op under dry and direct interpretation.
type AddDefinition struct {
	Def string
}

// Op returns the mnemonic
func (i *AddDefinition) Op() string { return "AddDefinition" }

// MapProgs returns the instruction unchanged (no sub-programs)
func (i *AddDefinition) MapProgs(f func(*Prog) *Prog) Instr { return i }

// AddExternFun registers an extern function signature. Result is
// the declared result kind; Args supply the parameter types.
// No-op under dry and direct interpretation.
type AddExternFun struct {
	Name   string
	Result types.TypeCode
	Args   []FunArg
}

// Op returns the mnemonic
func (i *AddExternFun) Op() string { return "AddExternFun" }

// MapProgs returns the instruction unchanged (no sub-programs)
func (i *AddExternFun) MapProgs(f func(*Prog) *Prog) Instr { return i }

// AddExternProc registers an extern procedure signature.
// No-op under dry and direct interpretation.
type AddExternProc struct {
	Name string
	Args []FunArg
}

// Op returns the mnemonic
func (i *AddExternProc) Op() string { return "AddExternProc" }

// MapProgs returns the instruction unchanged (no sub-programs)
func (i *AddExternProc) MapProgs(f func(*Prog) *Prog) Instr { return i }

// CallFun invokes a named foreign function and yields its result.
// Only meaningful to the code generator; fatal under the direct
// interpreter.
type CallFun struct {
	T    types.TypeCode
	Name string
	Args []FunArg
	Dst  *exp.Slot
}

// Op returns the mnemonic
func (i *CallFun) Op() string { return "CallFun" }

// MapProgs returns the instruction unchanged (no sub-programs)
func (i *CallFun) MapProgs(f func(*Prog) *Prog) Instr { return i }

// CallProc invokes a named foreign procedure with no result.
// Only meaningful to the code generator; fatal under the direct
// interpreter.
type CallProc struct {
	Name string
	Args []FunArg
}

// Op returns the mnemonic
func (i *CallProc) Op() string { return "CallProc" }

// MapProgs returns the instruction unchanged (no sub-programs)
func (i *CallProc) MapProgs(f func(*Prog) *Prog) Instr { return i }
