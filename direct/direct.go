// Package direct is the executing interpreter. It performs
// instructions against live, privately-owned mutable state: heap
// cells for references, slices for arrays, real files for the file
// family. Backend-exclusive instructions (deferred-size arrays,
// Break, objects, foreign calls) are rejected as unsupported.
package direct

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"rebar/exp"
	"rebar/prog"
	"rebar/trace"
	"rebar/types"
)

// cell is one live reference cell
type cell struct {
	val types.Value
	set bool
}

// Interp owns the live state for one run. Cells, arrays, and open
// files are reachable only through instruction execution; program
// code holds opaque indices.
type Interp struct {
	cells  []cell
	arrays [][]types.Value
	files  map[int]*openFile
	nextID int

	stdin  *bufio.Reader
	stdout io.Writer

	tracer *trace.Tracer
}

// New creates an interpreter wired to the process's stdin/stdout
func New() *Interp {
	return NewWithStdio(os.Stdin, os.Stdout)
}

// NewWithStdio creates an interpreter with the well-known standard
// handles bound to the given reader and writer
func NewWithStdio(in io.Reader, out io.Writer) *Interp {
	return &Interp{
		files:  make(map[int]*openFile),
		nextID: 1,
		stdin:  bufio.NewReader(in),
		stdout: out,
	}
}

// SetTracer attaches an execution tracer
func (d *Interp) SetTracer(t *trace.Tracer) {
	d.tracer = t
}

// Run executes the program. The first failure aborts the run; all
// errors are fatal and carry a descriptive payload.
func (d *Interp) Run(p *prog.Prog) error {
	for _, in := range p.Instrs {
		if d.tracer.Enabled() {
			d.tracer.Instr(in.Op(), "")
		}
		if err := d.exec(in); err != nil {
			if d.tracer.Enabled() {
				d.tracer.Error(in.Op(), err)
			}
			return err
		}
	}
	return nil
}

func (d *Interp) exec(in prog.Instr) error {
	switch i := in.(type) {
	case *prog.NewRef:
		d.bindRef(i.Dst, cell{})
	case *prog.InitRef:
		v, err := i.Val.Eval()
		if err != nil {
			return err
		}
		d.bindRef(i.Dst, cell{val: v, set: true})
	case *prog.GetRef:
		return d.readRef(i.Ref, i.Dst)
	case *prog.SetRef:
		c, err := d.cell(i.Ref)
		if err != nil {
			return err
		}
		v, err := i.Val.Eval()
		if err != nil {
			return err
		}
		c.val = v
		c.set = true
	case *prog.UnsafeFreezeRef:
		// Runs exactly like GetRef: the allocation skip is only
		// observable in generated code.
		return d.readRef(i.Ref, i.Dst)
	case *prog.NewArr:
		n, err := evalIndex(i.Size)
		if err != nil {
			return err
		}
		d.bindArr(i.Dst, make([]types.Value, n))
	case *prog.NewArrDeferred:
		return types.Unsupported(i.Op())
	case *prog.InitArr:
		vals := make([]types.Value, len(i.Vals))
		copy(vals, i.Vals)
		d.bindArr(i.Dst, vals)
	case *prog.GetArr:
		elems, err := d.array(i.Arr)
		if err != nil {
			return err
		}
		ix, err := evalIndex(i.Ix)
		if err != nil {
			return err
		}
		if ix < 0 || ix >= int64(len(elems)) {
			return types.RangeError(fmt.Sprintf("index %d of array length %d", ix, len(elems)))
		}
		i.Dst.Set(exp.Lit{V: elems[ix]})
	case *prog.SetArr:
		elems, err := d.array(i.Arr)
		if err != nil {
			return err
		}
		ix, err := evalIndex(i.Ix)
		if err != nil {
			return err
		}
		if ix < 0 || ix >= int64(len(elems)) {
			return types.RangeError(fmt.Sprintf("index %d of array length %d", ix, len(elems)))
		}
		v, err := i.Val.Eval()
		if err != nil {
			return err
		}
		elems[ix] = v
	case *prog.CopyArr:
		return d.copyArr(i)
	case *prog.If:
		c, err := i.Cond.Eval()
		if err != nil {
			return err
		}
		if c.Truthy() {
			return d.Run(i.Then)
		}
		return d.Run(i.Else)
	case *prog.While:
		return d.while(i)
	case *prog.For:
		return d.forLoop(i)
	case *prog.Break:
		return types.Unsupported(i.Op())
	case *prog.Assert:
		c, err := i.Cond.Eval()
		if err != nil {
			return err
		}
		if !c.Truthy() {
			return types.AssertFailed(i.Msg)
		}
	case *prog.FOpen:
		return d.fopen(i)
	case *prog.FClose:
		return d.fclose(i)
	case *prog.FEof:
		return d.feof(i)
	case *prog.FPrintf:
		return d.fprintf(i)
	case *prog.FGet:
		return d.fget(i)
	case *prog.NewObject:
		return types.Unsupported(i.Op())
	case *prog.InitObject:
		return types.Unsupported(i.Op())
	case *prog.AddInclude, *prog.AddDefinition, *prog.AddExternFun, *prog.AddExternProc:
		// declaration collection only matters to the code generator
	case *prog.CallFun:
		return types.Unsupported(i.Op())
	case *prog.CallProc:
		return types.Unsupported(i.Op())
	default:
		return fmt.Errorf("direct run: unknown instruction %T", in)
	}
	return nil
}

func (d *Interp) bindRef(r *prog.Ref, c cell) {
	r.Rep = prog.RepLive
	r.ID = len(d.cells)
	d.cells = append(d.cells, c)
}

func (d *Interp) bindArr(a *prog.Arr, elems []types.Value) {
	a.Rep = prog.RepLive
	a.ID = len(d.arrays)
	d.arrays = append(d.arrays, elems)
}

func (d *Interp) cell(r *prog.Ref) (*cell, error) {
	if r.Rep != prog.RepLive || r.ID >= len(d.cells) {
		return nil, fmt.Errorf("reference used before its creating instruction ran")
	}
	return &d.cells[r.ID], nil
}

func (d *Interp) array(a *prog.Arr) ([]types.Value, error) {
	if a.Rep != prog.RepLive || a.ID >= len(d.arrays) {
		return nil, fmt.Errorf("array used before its creating instruction ran")
	}
	return d.arrays[a.ID], nil
}

func (d *Interp) readRef(r *prog.Ref, dst *exp.Slot) error {
	c, err := d.cell(r)
	if err != nil {
		return err
	}
	if !c.set {
		return types.UninitRead(fmt.Sprintf("reference cell %d", r.ID))
	}
	dst.Set(exp.Lit{V: c.val})
	return nil
}

func (d *Interp) copyArr(i *prog.CopyArr) error {
	dst, err := d.array(i.Dst)
	if err != nil {
		return err
	}
	src, err := d.array(i.Src)
	if err != nil {
		return err
	}
	n, err := evalIndex(i.Len)
	if err != nil {
		return err
	}
	if n < 0 || n > int64(len(dst)) || n > int64(len(src)) {
		return types.RangeError(fmt.Sprintf("copy of %d elements, lengths %d and %d", n, len(dst), len(src)))
	}
	copy(dst[:n], src[:n])
	return nil
}

func (d *Interp) while(w *prog.While) error {
	for {
		if err := d.Run(w.Cond); err != nil {
			return err
		}
		c, err := w.Test.Eval()
		if err != nil {
			return err
		}
		if !c.Truthy() {
			return nil
		}
		if err := d.Run(w.Body); err != nil {
			return err
		}
	}
}

// forLoop iterates the arithmetic progression of the range. The
// continuation predicate depends on the step's sign and the stop
// border's inclusivity:
//
//	inclusive, step >= 0: continue while i <= hi
//	inclusive, step <  0: continue while i >= hi
//	exclusive, step >= 0: continue while i <  hi
//	exclusive, step <  0: continue while i >  hi
func (d *Interp) forLoop(f *prog.For) error {
	lo, err := evalIndex(f.Range.Start)
	if err != nil {
		return err
	}
	step, err := evalIndex(f.Range.Step)
	if err != nil {
		return err
	}
	hi, err := evalIndex(f.Range.Stop.Bound)
	if err != nil {
		return err
	}

	cont := func(i int64) bool {
		if f.Range.Stop.Kind == prog.Inclusive {
			if step >= 0 {
				return i <= hi
			}
			return i >= hi
		}
		if step >= 0 {
			return i < hi
		}
		return i > hi
	}

	for i := lo; cont(i); i += step {
		f.Index.Set(exp.Lit{V: indexValue(f.T, i)})
		if err := d.Run(f.Body); err != nil {
			return err
		}
	}
	return nil
}

// evalIndex evaluates a closed integral expression
func evalIndex(e exp.Exp) (int64, error) {
	v, err := e.Eval()
	if err != nil {
		return 0, err
	}
	n, ok := types.AsInt64(v)
	if !ok {
		return 0, fmt.Errorf("expected an integral value, got %s", v.Type())
	}
	return n, nil
}

// indexValue wraps a loop index in the loop's declared index kind
func indexValue(t types.TypeCode, i int64) types.Value {
	if t.Unsigned() {
		return types.NewWord(t, uint64(i))
	}
	return types.NewInt(t, i)
}
