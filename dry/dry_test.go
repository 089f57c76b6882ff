package dry

import (
	"testing"

	"rebar/exp"
	"rebar/prog"
	"rebar/types"
)

// buildMixed exercises every name-allocating instruction family
func buildMixed() *prog.Prog {
	b := prog.NewBuilder()
	r := b.NewRef(types.TYPE_INT32)              // r0
	b.SetRef(r, exp.Int(types.TYPE_INT32, 1))    // -
	s := b.InitRef(types.TYPE_INT32, b.GetRef(r)) // v1, r2
	_ = b.UnsafeFreezeRef(s)                     // v3
	a := b.NewArr(types.TYPE_INT32, exp.Int(types.TYPE_INT32, 4)) // a4
	_ = b.GetArr(exp.Int(types.TYPE_INT32, 0), a)                 // v5
	h := b.FOpen("data.txt", "r") // h6
	_ = b.FGet(types.TYPE_INT32, h)
	b.FClose(h)
	o := b.NewObject("widget_t", true)                        // o8
	_ = b.InitObject("make_widget", true, "widget_t",         // o9
		prog.ObjArg{O: o})
	_ = b.CallFun(types.TYPE_INT32, "rand") // v10
	return b.Prog()
}

func TestNameSchedule(t *testing.T) {
	names, err := New(prog.NewNamer()).Run(buildMixed())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"r0", "v1", "r2", "v3", "a4", "v5", "h6", "v7", "o8", "o9", "v10"}
	if len(names) != len(want) {
		t.Fatalf("got %d names %v, want %d", len(names), names, len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("name %d = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestDeterminism(t *testing.T) {
	first, err := New(prog.NewNamer()).Run(buildMixed())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := New(prog.NewNamer()).Run(buildMixed())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("runs disagree: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("name %d differs: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestNestedProgramsAreNamed(t *testing.T) {
	b := prog.NewBuilder()
	b.If(exp.Bool(true), func(then *prog.Builder) {
		then.NewRef(types.TYPE_INT32) // r0
	}, func(els *prog.Builder) {
		els.NewRef(types.TYPE_INT32) // r1
	})
	b.While(func(c *prog.Builder) exp.Exp {
		return c.FEof(prog.Stdin) // no name
	}, func(body *prog.Builder) {
		body.NewRef(types.TYPE_INT32) // r2
	})
	rng := prog.Range(
		exp.Int(types.TYPE_INT32, 0),
		exp.Int(types.TYPE_INT32, 1),
		prog.Excl(exp.Int(types.TYPE_INT32, 3)),
	)
	b.For(rng, func(body *prog.Builder, i exp.Exp) {
		body.NewRef(types.TYPE_INT32) // i3, then r4
	})

	names, err := New(prog.NewNamer()).Run(b.Prog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"r0", "r1", "r2", "i3", "r4"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("name %d = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestNoEffects(t *testing.T) {
	// A dry run of file and call instructions must not fail even
	// though nothing exists to open or call.
	b := prog.NewBuilder()
	h := b.FOpen("/no/such/path", "r")
	_ = b.FGet(types.TYPE_INT32, h)
	b.FClose(h)
	_ = b.CallFun(types.TYPE_INT32, "undefined_function")
	b.CallProc("undefined_procedure")

	if _, err := New(prog.NewNamer()).Run(b.Prog()); err != nil {
		t.Fatalf("dry run performed an effect: %v", err)
	}
}

func TestSymbolicBinding(t *testing.T) {
	b := prog.NewBuilder()
	r := b.InitRef(types.TYPE_INT32, exp.Int(types.TYPE_INT32, 0))
	a := b.InitArr(types.TYPE_INT32, []types.Value{types.NewInt(types.TYPE_INT32, 1)})
	h := b.FOpen("x", "r")

	if _, err := New(prog.NewNamer()).Run(b.Prog()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Rep != prog.RepSymbolic || r.Sym != "r0" {
		t.Errorf("ref bound to %v %q", r.Rep, r.Sym)
	}
	if a.Rep != prog.RepSymbolic || a.Sym != "a1" {
		t.Errorf("array bound to %v %q", a.Rep, a.Sym)
	}
	if h.Rep != prog.RepSymbolic || h.Sym != "h2" {
		t.Errorf("handle bound to %v %q", h.Rep, h.Sym)
	}
}
