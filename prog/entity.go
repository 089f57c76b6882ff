// Package prog defines the instruction catalog: six closed
// instruction families over one Instr interface, the entities
// instructions introduce (references, arrays, file handles, opaque
// objects), and the Builder used to sequence instructions into
// programs.
package prog

import "rebar/types"

// Rep tags which representation an entity carries.
// Exactly one applies for the lifetime of the entity: a symbolic
// name (dry run, code generation) or an index into the direct
// interpreter's private live state. The representation is assigned
// by the interpreter that runs the creating instruction and is
// never changed afterwards within a run.
type Rep int

const (
	RepUnbound  Rep = iota // creating instruction has not run yet
	RepSymbolic            // named entity for code generation
	RepLive                // index into interpreter-owned state
)

// Ref holds a single value of a declared payload type
type Ref struct {
	T   types.TypeCode
	Rep Rep
	Sym string // symbolic name
	ID  int    // live cell index
}

// Arr is an indexed mutable sequence. The index type must be
// integral; bounds are fixed at creation.
type Arr struct {
	Elem  types.TypeCode
	Index types.TypeCode
	Rep   Rep
	Sym   string
	ID    int
}

// Sentinel live IDs for the two well-known handles
const (
	StdinID  = -1
	StdoutID = -2
)

// Handle is a file handle, symbolic or live
type Handle struct {
	Rep Rep
	Sym string
	ID  int
}

// Stdin is the well-known standard input handle.
// It bypasses the open/close lifecycle: closing it is a no-op.
var Stdin = &Handle{Rep: RepSymbolic, Sym: "stdin", ID: StdinID}

// Stdout is the well-known standard output handle
var Stdout = &Handle{Rep: RepSymbolic, Sym: "stdout", ID: StdoutID}

// IsStd reports whether h is one of the well-known handles
func (h *Handle) IsStd() bool {
	return h == Stdin || h == Stdout
}

// Object is an opaque foreign value, manipulated only by name.
// Always created fresh, never mutated.
type Object struct {
	IsPointer bool
	TypeName  string
	Sym       string
}
