package prog

import (
	"rebar/exp"
	"rebar/types"
)

// NewArr creates an array of the given length with unspecified
// contents
type NewArr struct {
	Elem  types.TypeCode
	Index types.TypeCode
	Size  exp.Exp
	Dst   *Arr
}

// Op returns the mnemonic
func (i *NewArr) Op() string { return "NewArr" }

// MapProgs returns the instruction unchanged (no sub-programs)
func (i *NewArr) MapProgs(f func(*Prog) *Prog) Instr { return i }

// NewArrDeferred creates an array whose size is determined later.
// Legal only for the code generator; the direct interpreter rejects
// it as unsupported.
type NewArrDeferred struct {
	Elem  types.TypeCode
	Index types.TypeCode
	Dst   *Arr
}

// Op returns the mnemonic
func (i *NewArrDeferred) Op() string { return "NewArrDeferred" }

// MapProgs returns the instruction unchanged (no sub-programs)
func (i *NewArrDeferred) MapProgs(f func(*Prog) *Prog) Instr { return i }

// InitArr creates an array populated from a fixed sequence;
// its length is the sequence length
type InitArr struct {
	Elem  types.TypeCode
	Index types.TypeCode
	Vals  []types.Value
	Dst   *Arr
}

// Op returns the mnemonic
func (i *InitArr) Op() string { return "InitArr" }

// MapProgs returns the instruction unchanged (no sub-programs)
func (i *InitArr) MapProgs(f func(*Prog) *Prog) Instr { return i }

// GetArr reads a copy of the element at an index.
// An out-of-range index is backend-defined, not a checked error.
type GetArr struct {
	Ix  exp.Exp
	Arr *Arr
	Dst *exp.Slot
}

// Op returns the mnemonic
func (i *GetArr) Op() string { return "GetArr" }

// MapProgs returns the instruction unchanged (no sub-programs)
func (i *GetArr) MapProgs(f func(*Prog) *Prog) Instr { return i }

// SetArr updates the element at an index in place
type SetArr struct {
	Ix  exp.Exp
	Val exp.Exp
	Arr *Arr
}

// Op returns the mnemonic
func (i *SetArr) Op() string { return "SetArr" }

// MapProgs returns the instruction unchanged (no sub-programs)
func (i *SetArr) MapProgs(f func(*Prog) *Prog) Instr { return i }

// CopyArr copies the first Len elements of Src into Dst.
// Destination indices at or past Len are untouched.
type CopyArr struct {
	Dst *Arr
	Src *Arr
	Len exp.Exp
}

// Op returns the mnemonic
func (i *CopyArr) Op() string { return "CopyArr" }

// MapProgs returns the instruction unchanged (no sub-programs)
func (i *CopyArr) MapProgs(f func(*Prog) *Prog) Instr { return i }
