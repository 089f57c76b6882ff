package prog

import (
	"rebar/exp"
	"rebar/types"
)

// NewRef creates an uninitialized reference.
// Reading it before any set is detected at read time.
type NewRef struct {
	T   types.TypeCode
	Dst *Ref
}

// Op returns the mnemonic
func (i *NewRef) Op() string { return "NewRef" }

// MapProgs returns the instruction unchanged (no sub-programs)
func (i *NewRef) MapProgs(f func(*Prog) *Prog) Instr { return i }

// InitRef creates a reference pre-set to a value
type InitRef struct {
	T   types.TypeCode
	Val exp.Exp
	Dst *Ref
}

// Op returns the mnemonic
func (i *InitRef) Op() string { return "InitRef" }

// MapProgs returns the instruction unchanged (no sub-programs)
func (i *InitRef) MapProgs(f func(*Prog) *Prog) Instr { return i }

// GetRef reads the current value into a fresh-named copy
type GetRef struct {
	Ref *Ref
	Dst *exp.Slot
}

// Op returns the mnemonic
func (i *GetRef) Op() string { return "GetRef" }

// MapProgs returns the instruction unchanged (no sub-programs)
func (i *GetRef) MapProgs(f func(*Prog) *Prog) Instr { return i }

// SetRef overwrites the reference's value
type SetRef struct {
	Ref *Ref
	Val exp.Exp
}

// Op returns the mnemonic
func (i *SetRef) Op() string { return "SetRef" }

// MapProgs returns the instruction unchanged (no sub-programs)
func (i *SetRef) MapProgs(f func(*Prog) *Prog) Instr { return i }

// UnsafeFreezeRef reads the current value without introducing a new
// name in generated code. The caller guarantees the reference is
// never written after this; violating that is undefined behavior,
// not a checked error.
type UnsafeFreezeRef struct {
	Ref *Ref
	Dst *exp.Slot
}

// Op returns the mnemonic
func (i *UnsafeFreezeRef) Op() string { return "UnsafeFreezeRef" }

// MapProgs returns the instruction unchanged (no sub-programs)
func (i *UnsafeFreezeRef) MapProgs(f func(*Prog) *Prog) Instr { return i }
