// Package dry is the effect-free interpreter. It walks a program
// touching no real resource, assigning a deterministic fresh
// symbolic name to every instruction that introduces a named
// entity. The allocation schedule is shared with the code
// generator, so a program dry-run and then generated references
// identical symbols.
package dry

import (
	"fmt"

	"rebar/exp"
	"rebar/prog"
)

// Interp is one dry run. Create a fresh one (with a fresh or reset
// Namer) per run; the name counter is run-scoped state.
type Interp struct {
	namer *prog.Namer
	names []string
}

// New creates a dry interpreter drawing names from the given supply
func New(namer *prog.Namer) *Interp {
	return &Interp{namer: namer}
}

// Run walks the program and returns the allocated name sequence in
// program order
func (d *Interp) Run(p *prog.Prog) ([]string, error) {
	if err := d.walk(p); err != nil {
		return nil, err
	}
	return d.names, nil
}

func (d *Interp) fresh(prefix string) string {
	name := d.namer.Fresh(prefix)
	d.names = append(d.names, name)
	return name
}

func (d *Interp) walk(p *prog.Prog) error {
	for _, in := range p.Instrs {
		if err := d.instr(in); err != nil {
			return err
		}
	}
	return nil
}

func (d *Interp) instr(in prog.Instr) error {
	switch i := in.(type) {
	case *prog.NewRef:
		bindRef(i.Dst, d.fresh("r"))
	case *prog.InitRef:
		bindRef(i.Dst, d.fresh("r"))
	case *prog.GetRef:
		i.Dst.Set(exp.Var{Name: d.fresh("v"), T: i.Ref.T})
	case *prog.SetRef:
		// no name, no effect
	case *prog.UnsafeFreezeRef:
		// A name is burned to keep the schedule aligned with the
		// code generator, but the result reads the ref directly.
		d.fresh("v")
		i.Dst.Set(exp.Var{Name: i.Ref.Sym, T: i.Ref.T})
	case *prog.NewArr:
		bindArr(i.Dst, d.fresh("a"))
	case *prog.NewArrDeferred:
		bindArr(i.Dst, d.fresh("a"))
	case *prog.InitArr:
		bindArr(i.Dst, d.fresh("a"))
	case *prog.GetArr:
		i.Dst.Set(exp.Var{Name: d.fresh("v"), T: i.Arr.Elem})
	case *prog.SetArr, *prog.CopyArr:
		// no name, no effect
	case *prog.If:
		if err := d.walk(i.Then); err != nil {
			return err
		}
		if err := d.walk(i.Else); err != nil {
			return err
		}
	case *prog.While:
		if err := d.walk(i.Cond); err != nil {
			return err
		}
		if err := d.walk(i.Body); err != nil {
			return err
		}
	case *prog.For:
		i.Index.Set(exp.Var{Name: d.fresh("i"), T: i.T})
		if err := d.walk(i.Body); err != nil {
			return err
		}
	case *prog.Break, *prog.Assert:
		// no name, no effect
	case *prog.FOpen:
		i.Dst.Rep = prog.RepSymbolic
		i.Dst.Sym = d.fresh("h")
	case *prog.FClose:
		// no name, no effect
	case *prog.FEof:
		i.Dst.Set(exp.Raw{Text: fmt.Sprintf("feof(%s)", i.H.Sym), T: i.Dst.T})
	case *prog.FPrintf:
		// no name, no effect
	case *prog.FGet:
		i.Dst.Set(exp.Var{Name: d.fresh("v"), T: i.T})
	case *prog.NewObject:
		i.Dst.Sym = d.fresh("o")
	case *prog.InitObject:
		i.Dst.Sym = d.fresh("o")
	case *prog.AddInclude, *prog.AddDefinition, *prog.AddExternFun, *prog.AddExternProc:
		// declaration collection is a code generator concern
	case *prog.CallFun:
		i.Dst.Set(exp.Var{Name: d.fresh("v"), T: i.T})
	case *prog.CallProc:
		// no name, no effect
	default:
		return fmt.Errorf("dry run: unknown instruction %T", in)
	}
	return nil
}

func bindRef(r *prog.Ref, name string) {
	r.Rep = prog.RepSymbolic
	r.Sym = name
}

func bindArr(a *prog.Arr, name string) {
	a.Rep = prog.RepSymbolic
	a.Sym = name
}
