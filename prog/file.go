package prog

import (
	"rebar/exp"
	"rebar/types"
)

// FOpen opens a file and yields a handle.
// Mode mirrors the host platform's standard open modes
// ("r", "w", "a", optionally with "+" and "b").
type FOpen struct {
	Path string
	Mode string
	Dst  *Handle
}

// Op returns the mnemonic
func (i *FOpen) Op() string { return "FOpen" }

// MapProgs returns the instruction unchanged (no sub-programs)
func (i *FOpen) MapProgs(f func(*Prog) *Prog) Instr { return i }

// FClose closes a handle. Closing either well-known standard
// handle is a no-op.
type FClose struct {
	H *Handle
}

// Op returns the mnemonic
func (i *FClose) Op() string { return "FClose" }

// MapProgs returns the instruction unchanged (no sub-programs)
func (i *FClose) MapProgs(f func(*Prog) *Prog) Instr { return i }

// FEof yields whether the handle is at end of input
type FEof struct {
	H   *Handle
	Dst *exp.Slot
}

// Op returns the mnemonic
func (i *FEof) Op() string { return "FEof" }

// MapProgs returns the instruction unchanged (no sub-programs)
func (i *FEof) MapProgs(f func(*Prog) *Prog) Instr { return i }

// FPrintf writes a formatted, variable-length argument list.
// Each argument is individually typed; the format placeholders are
// the ones the payload kinds define.
type FPrintf struct {
	H      *Handle
	Format string
	Args   []exp.Exp
}

// Op returns the mnemonic
func (i *FPrintf) Op() string { return "FPrintf" }

// MapProgs returns the instruction unchanged (no sub-programs)
func (i *FPrintf) MapProgs(f func(*Prog) *Prog) Instr { return i }

// FGet reads one run of non-whitespace characters and parses it as
// the requested scalar kind. Reading nothing, or leaving trailing
// unparsed characters in the token, is a fatal parse failure.
type FGet struct {
	T   types.TypeCode
	H   *Handle
	Dst *exp.Slot
}

// Op returns the mnemonic
func (i *FGet) Op() string { return "FGet" }

// MapProgs returns the instruction unchanged (no sub-programs)
func (i *FGet) MapProgs(f func(*Prog) *Prog) Instr { return i }
