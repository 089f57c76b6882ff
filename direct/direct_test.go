package direct

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"rebar/exp"
	"rebar/prog"
	"rebar/trace"
	"rebar/types"
)

func run(t *testing.T, p *prog.Prog) {
	t.Helper()
	if err := New().Run(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func expectCode(t *testing.T, p *prog.Prog, code types.ErrorCode) *types.RunError {
	t.Helper()
	err := New().Run(p)
	if err == nil {
		t.Fatalf("expected %s, got success", code)
	}
	var re *types.RunError
	if !errors.As(err, &re) || re.Code != code {
		t.Fatalf("expected %s, got %v", code, err)
	}
	return re
}

func TestRefRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		v    types.Value
	}{
		{"int32", types.NewInt(types.TYPE_INT32, -7)},
		{"int64", types.NewInt(types.TYPE_INT64, 1 << 40)},
		{"word8", types.NewWord(types.TYPE_WORD8, 255)},
		{"float", types.NewFloat(types.TYPE_FLOAT64, 2.5)},
		{"bool", types.NewBool(true)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := prog.NewBuilder()
			r := b.NewRef(tt.v.Type())
			b.SetRef(r, exp.Lit{V: tt.v})
			got := b.GetRef(r)
			run(t, b.Prog())

			v, err := got.Eval()
			if err != nil {
				t.Fatalf("result: %v", err)
			}
			if !v.Equal(tt.v) {
				t.Errorf("round trip: got %v, want %v", v, tt.v)
			}
		})
	}
}

func TestUninitializedRead(t *testing.T) {
	b := prog.NewBuilder()
	r := b.NewRef(types.TYPE_INT32)
	_ = b.GetRef(r)
	expectCode(t, b.Prog(), types.E_UNINIT)
}

func TestUnsafeFreezeRefMatchesGetRef(t *testing.T) {
	b := prog.NewBuilder()
	r := b.InitRef(types.TYPE_INT32, exp.Int(types.TYPE_INT32, 11))
	frozen := b.UnsafeFreezeRef(r)
	run(t, b.Prog())

	v, err := frozen.Eval()
	if err != nil {
		t.Fatalf("result: %v", err)
	}
	if !v.Equal(types.NewInt(types.TYPE_INT32, 11)) {
		t.Errorf("got %v", v)
	}

	// Reading an uninitialized ref through the freeze is still
	// detected, exactly as GetRef would.
	b2 := prog.NewBuilder()
	r2 := b2.NewRef(types.TYPE_INT32)
	_ = b2.UnsafeFreezeRef(r2)
	expectCode(t, b2.Prog(), types.E_UNINIT)
}

// forVisits runs a loop that prints its index each iteration and
// returns the printed sequence
func forVisits(t *testing.T, start, step int64, stop prog.Border) string {
	t.Helper()
	b := prog.NewBuilder()
	rng := prog.Range(
		exp.Int(types.TYPE_INT32, start),
		exp.Int(types.TYPE_INT32, step),
		stop,
	)
	b.For(rng, func(body *prog.Builder, i exp.Exp) {
		body.FPrintf(prog.Stdout, "%d ", i)
	})

	var out bytes.Buffer
	if err := NewWithStdio(strings.NewReader(""), &out).Run(b.Prog()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out.String()
}

func TestForLoopSequences(t *testing.T) {
	tests := []struct {
		name     string
		start    int64
		step     int64
		stop     prog.Border
		expected string
	}{
		{"exclusive ascending", 0, 1, prog.Excl(exp.Int(types.TYPE_INT32, 5)), "0 1 2 3 4 "},
		{"inclusive descending", 5, -1, prog.Incl(exp.Int(types.TYPE_INT32, 0)), "5 4 3 2 1 0 "},
		{"inclusive stride two", 0, 2, prog.Incl(exp.Int(types.TYPE_INT32, 4)), "0 2 4 "},
		{"exclusive descending", 3, -1, prog.Excl(exp.Int(types.TYPE_INT32, 0)), "3 2 1 "},
		{"empty range", 5, 1, prog.Excl(exp.Int(types.TYPE_INT32, 5)), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := forVisits(t, tt.start, tt.step, tt.stop); got != tt.expected {
				t.Errorf("visited %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestWhileRunsConditionBeforeEveryIteration(t *testing.T) {
	// The counter is incremented by the condition program itself,
	// so the iteration count proves the condition ran first and
	// before every body execution.
	b := prog.NewBuilder()
	n := b.InitRef(types.TYPE_INT32, exp.Int(types.TYPE_INT32, 0))
	body := b.InitRef(types.TYPE_INT32, exp.Int(types.TYPE_INT32, 0))
	b.While(func(c *prog.Builder) exp.Exp {
		v := c.GetRef(n)
		c.SetRef(n, exp.Add(v, exp.Int(types.TYPE_INT32, 1)))
		return exp.Lt(v, exp.Int(types.TYPE_INT32, 3))
	}, func(inner *prog.Builder) {
		v := inner.GetRef(body)
		inner.SetRef(body, exp.Add(v, exp.Int(types.TYPE_INT32, 1)))
	})
	condCount := b.GetRef(n)
	bodyCount := b.GetRef(body)
	run(t, b.Prog())

	if v, _ := condCount.Eval(); !v.Equal(types.NewInt(types.TYPE_INT32, 4)) {
		t.Errorf("condition ran %v times, want 4", v)
	}
	if v, _ := bodyCount.Eval(); !v.Equal(types.NewInt(types.TYPE_INT32, 3)) {
		t.Errorf("body ran %v times, want 3", v)
	}
}

func TestWhileFalseConditionSkipsBody(t *testing.T) {
	b := prog.NewBuilder()
	ran := b.InitRef(types.TYPE_BOOL, exp.Bool(false))
	b.While(func(c *prog.Builder) exp.Exp {
		return exp.Bool(false)
	}, func(inner *prog.Builder) {
		inner.SetRef(ran, exp.Bool(true))
	})
	got := b.GetRef(ran)
	run(t, b.Prog())

	if v, _ := got.Eval(); v.Truthy() {
		t.Error("body ran despite a false condition")
	}
}

func TestIfRunsExactlyOneBranch(t *testing.T) {
	for _, cond := range []bool{true, false} {
		b := prog.NewBuilder()
		r := b.InitRef(types.TYPE_INT32, exp.Int(types.TYPE_INT32, 0))
		b.If(exp.Bool(cond), func(then *prog.Builder) {
			then.SetRef(r, exp.Int(types.TYPE_INT32, 1))
		}, func(els *prog.Builder) {
			els.SetRef(r, exp.Int(types.TYPE_INT32, 2))
		})
		got := b.GetRef(r)
		run(t, b.Prog())

		want := int64(2)
		if cond {
			want = 1
		}
		if v, _ := got.Eval(); !v.Equal(types.NewInt(types.TYPE_INT32, want)) {
			t.Errorf("cond=%v: got %v, want %d", cond, v, want)
		}
	}
}

func TestPartialCopy(t *testing.T) {
	i32 := func(n int64) types.Value { return types.NewInt(types.TYPE_INT32, n) }
	b := prog.NewBuilder()
	src := b.InitArr(types.TYPE_INT32, []types.Value{i32(10), i32(20), i32(30), i32(40), i32(50)})
	dst := b.InitArr(types.TYPE_INT32, []types.Value{i32(0), i32(1), i32(2), i32(3), i32(4)})
	b.CopyArr(dst, src, exp.Int(types.TYPE_INT32, 3))

	var got []exp.Exp
	for k := int64(0); k < 5; k++ {
		got = append(got, b.GetArr(exp.Int(types.TYPE_INT32, k), dst))
	}
	run(t, b.Prog())

	want := []int64{10, 20, 30, 3, 4}
	for k, e := range got {
		v, err := e.Eval()
		if err != nil {
			t.Fatalf("element %d: %v", k, err)
		}
		if !v.Equal(i32(want[k])) {
			t.Errorf("dst[%d] = %v, want %d", k, v, want[k])
		}
	}
}

func TestSetArrAndGetArr(t *testing.T) {
	b := prog.NewBuilder()
	a := b.NewArr(types.TYPE_INT32, exp.Int(types.TYPE_INT32, 3))
	b.SetArr(exp.Int(types.TYPE_INT32, 2), exp.Int(types.TYPE_INT32, 9), a)
	got := b.GetArr(exp.Int(types.TYPE_INT32, 2), a)
	run(t, b.Prog())

	if v, _ := got.Eval(); !v.Equal(types.NewInt(types.TYPE_INT32, 9)) {
		t.Errorf("got %v", v)
	}
}

func TestOutOfRangeIndex(t *testing.T) {
	b := prog.NewBuilder()
	a := b.NewArr(types.TYPE_INT32, exp.Int(types.TYPE_INT32, 2))
	_ = b.GetArr(exp.Int(types.TYPE_INT32, 5), a)
	expectCode(t, b.Prog(), types.E_RANGE)
}

func TestAssert(t *testing.T) {
	b := prog.NewBuilder()
	b.Assert(exp.Bool(true), "never shown")
	run(t, b.Prog())

	b2 := prog.NewBuilder()
	b2.Assert(exp.Bool(false), "boom")
	re := expectCode(t, b2.Prog(), types.E_ASSERT)
	if !strings.Contains(re.Error(), "boom") {
		t.Errorf("assertion error %q does not carry the message", re.Error())
	}
}

func TestUnsupportedInstructions(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *prog.Builder)
	}{
		{"NewArrDeferred", func(b *prog.Builder) { b.NewArrDeferred(types.TYPE_INT32) }},
		{"Break", func(b *prog.Builder) { b.Break() }},
		{"NewObject", func(b *prog.Builder) { b.NewObject("widget_t", true) }},
		{"InitObject", func(b *prog.Builder) { b.InitObject("make_widget", true, "widget_t") }},
		{"CallFun", func(b *prog.Builder) { b.CallFun(types.TYPE_INT32, "rand") }},
		{"CallProc", func(b *prog.Builder) { b.CallProc("srand") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := prog.NewBuilder()
			tt.build(b)
			re := expectCode(t, b.Prog(), types.E_UNSUPPORTED)
			if !strings.Contains(re.Error(), tt.name) {
				t.Errorf("error %q does not name the operation", re.Error())
			}
		})
	}
}

func TestDeclarationInstructionsAreNoOps(t *testing.T) {
	b := prog.NewBuilder()
	b.AddInclude("<math.h>")
	b.AddDefinition("static int counter;")
	b.AddExternFun("sqrt", types.TYPE_FLOAT64, prog.ValArg{E: exp.Float(types.TYPE_FLOAT64, 0)})
	b.AddExternProc("srand", prog.ValArg{E: exp.Word(types.TYPE_WORD32, 0)})
	run(t, b.Prog())
}

func TestTraceOutput(t *testing.T) {
	var buf bytes.Buffer
	b := prog.NewBuilder()
	r := b.InitRef(types.TYPE_INT32, exp.Int(types.TYPE_INT32, 1))
	b.SetRef(r, exp.Int(types.TYPE_INT32, 2))

	interp := New()
	interp.SetTracer(trace.New(true, nil, &buf))
	if err := interp.Run(b.Prog()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "InitRef") || !strings.Contains(out, "SetRef") {
		t.Errorf("trace output missing instructions:\n%s", out)
	}
}
