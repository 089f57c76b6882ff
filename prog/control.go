package prog

import (
	"rebar/exp"
	"rebar/types"
)

// BorderKind tags a loop bound as inclusive or exclusive
type BorderKind int

const (
	Inclusive BorderKind = iota
	Exclusive
)

// Border is a bound value with an inclusivity tag
type Border struct {
	Kind  BorderKind
	Bound exp.Exp
}

// Incl builds an inclusive border
func Incl(bound exp.Exp) Border {
	return Border{Kind: Inclusive, Bound: bound}
}

// Excl builds an exclusive border
func Excl(bound exp.Exp) Border {
	return Border{Kind: Exclusive, Bound: bound}
}

// IxRange describes an arithmetic progression of loop indices:
// start, start+step, start+2*step, ... while the continuation
// predicate (determined by sign(step) and the stop border's
// inclusivity) holds.
type IxRange struct {
	Start exp.Exp
	Step  exp.Exp
	Stop  Border
}

// Range builds an IxRange
func Range(start, step exp.Exp, stop Border) IxRange {
	return IxRange{Start: start, Step: step, Stop: stop}
}

// If runs exactly one of its two branches
type If struct {
	Cond exp.Exp
	Then *Prog
	Else *Prog
}

// Op returns the mnemonic
func (i *If) Op() string { return "If" }

// MapProgs rewrites both branches
func (i *If) MapProgs(f func(*Prog) *Prog) Instr {
	return &If{Cond: i.Cond, Then: f(i.Then), Else: f(i.Else)}
}

// While runs Body as long as the condition program yields true.
// Cond is itself an effectful program; it runs once before every
// iteration, including the first, and its result is read from Test.
type While struct {
	Cond *Prog
	Test exp.Exp
	Body *Prog
}

// Op returns the mnemonic
func (i *While) Op() string { return "While" }

// MapProgs rewrites the condition program and the body
func (i *While) MapProgs(f func(*Prog) *Prog) Instr {
	return &While{Cond: f(i.Cond), Test: i.Test, Body: f(i.Body)}
}

// For iterates Body over the indices of Range. The current index
// is delivered through the Index slot each iteration.
type For struct {
	Range IxRange
	T     types.TypeCode // index kind
	Index *exp.Slot
	Body  *Prog
}

// Op returns the mnemonic
func (i *For) Op() string { return "For" }

// MapProgs rewrites the body
func (i *For) MapProgs(f func(*Prog) *Prog) Instr {
	return &For{Range: i.Range, T: i.T, Index: i.Index, Body: f(i.Body)}
}

// Break requests early loop exit. Only the code generator can
// express it; the direct interpreter rejects it as unsupported.
type Break struct{}

// Op returns the mnemonic
func (i *Break) Op() string { return "Break" }

// MapProgs returns the instruction unchanged (no sub-programs)
func (i *Break) MapProgs(f func(*Prog) *Prog) Instr { return i }

// Assert is a no-op when the condition is true and a fatal error
// carrying Msg when it is false
type Assert struct {
	Cond exp.Exp
	Msg  string
}

// Op returns the mnemonic
func (i *Assert) Op() string { return "Assert" }

// MapProgs returns the instruction unchanged (no sub-programs)
func (i *Assert) MapProgs(f func(*Prog) *Prog) Instr { return i }
