package exp

import (
	"fmt"
	"rebar/types"
)

// Slot is the placeholder for an instruction's result expression.
// A program captures slots when it is built; each interpreter run
// fills them again: the direct interpreter with literals, the dry
// interpreter and the code generator with named variables. Reading
// a slot before the defining instruction has run is a program
// construction error.
type Slot struct {
	T types.TypeCode
	e Exp
}

// NewSlot creates an unfilled slot of the given kind
func NewSlot(t types.TypeCode) *Slot {
	return &Slot{T: t}
}

// Set fills the slot for the current run
func (s *Slot) Set(e Exp) {
	s.e = e
}

// ExpType returns the slot's declared kind
func (s *Slot) ExpType() types.TypeCode {
	return s.T
}

// Eval delegates to the filled expression
func (s *Slot) Eval() (types.Value, error) {
	if s.e == nil {
		return nil, fmt.Errorf("result used before its instruction ran")
	}
	return s.e.Eval()
}

// Compile delegates to the filled expression
func (s *Slot) Compile() string {
	if s.e == nil {
		return "/* unbound result */"
	}
	return s.e.Compile()
}
