package prog

// NewObject creates a fresh opaque handle of a named foreign type.
// Code-generator-only; the direct interpreter rejects it.
type NewObject struct {
	TypeName  string
	IsPointer bool
	Dst       *Object
}

// Op returns the mnemonic
func (i *NewObject) Op() string { return "NewObject" }

// MapProgs returns the instruction unchanged (no sub-programs)
func (i *NewObject) MapProgs(f func(*Prog) *Prog) Instr { return i }

// InitObject creates a fresh opaque handle by invoking a named
// constructor function. Code-generator-only.
type InitObject struct {
	Fun       string
	IsPointer bool
	TypeName  string
	Args      []FunArg
	Dst       *Object
}

// Op returns the mnemonic
func (i *InitObject) Op() string { return "InitObject" }

// MapProgs returns the instruction unchanged (no sub-programs)
func (i *InitObject) MapProgs(f func(*Prog) *Prog) Instr { return i }
