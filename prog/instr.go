package prog

// Instr is one instruction. Every variant of every family
// implements it. Interpreters dispatch with a type switch and
// recognize only the instructions they know; combining families in
// one program needs no changes to existing interpreters.
type Instr interface {
	// Op returns the instruction mnemonic, used in traces and in
	// unsupported-operation errors.
	Op() string

	// MapProgs rewrites every embedded sub-program with f and
	// returns the rewritten instruction. Instructions without
	// sub-programs return themselves. Passes that must recurse
	// into nested bodies use this instead of hand-coding
	// traversal per family.
	MapProgs(f func(*Prog) *Prog) Instr
}

// Prog is an ordered sequence of instructions. Control-flow
// instructions own nested sub-programs as children, forming a tree:
// no cycles, no shared nodes.
type Prog struct {
	Instrs []Instr
}

// Append adds an instruction to the end of the program
func (p *Prog) Append(in Instr) {
	p.Instrs = append(p.Instrs, in)
}

// Map applies f to every embedded sub-program of every instruction,
// returning a program with the rewritten instructions
func (p *Prog) Map(f func(*Prog) *Prog) *Prog {
	out := &Prog{Instrs: make([]Instr, len(p.Instrs))}
	for i, in := range p.Instrs {
		out.Instrs[i] = in.MapProgs(f)
	}
	return out
}
