// Package conformance runs registered example programs through all
// three interpreters and compares the results against YAML-described
// expectations: dry-run name sequences, direct-run output, and
// generated source.
package conformance

import (
	"sort"

	"rebar/exp"
	"rebar/prog"
	"rebar/types"
)

// Examples is the registry of example programs, keyed by the name
// the YAML suites and the CLI use
var Examples = map[string]func() *prog.Prog{
	"greeting":   greeting,
	"countdown":  countdown,
	"sum":        sum,
	"evens":      evens,
	"echo-int":   echoInt,
	"hypotenuse": hypotenuse,
}

// Names returns the registered example names, sorted
func Names() []string {
	names := make([]string, 0, len(Examples))
	for name := range Examples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// greeting writes a fixed line to standard output
func greeting() *prog.Prog {
	b := prog.NewBuilder()
	b.FPrintf(prog.Stdout, "hello\n")
	return b.Prog()
}

// countdown counts 5..0 with a negative-step inclusive range
func countdown() *prog.Prog {
	b := prog.NewBuilder()
	rng := prog.Range(
		exp.Int(types.TYPE_INT32, 5),
		exp.Int(types.TYPE_INT32, -1),
		prog.Incl(exp.Int(types.TYPE_INT32, 0)),
	)
	b.For(rng, func(b *prog.Builder, i exp.Exp) {
		b.FPrintf(prog.Stdout, "%d\n", i)
	})
	return b.Prog()
}

// sum totals an initialized array into a reference
func sum() *prog.Prog {
	b := prog.NewBuilder()
	arr := b.InitArr(types.TYPE_INT32, []types.Value{
		types.NewInt(types.TYPE_INT32, 1),
		types.NewInt(types.TYPE_INT32, 2),
		types.NewInt(types.TYPE_INT32, 3),
		types.NewInt(types.TYPE_INT32, 4),
		types.NewInt(types.TYPE_INT32, 5),
	})
	total := b.InitRef(types.TYPE_INT32, exp.Int(types.TYPE_INT32, 0))
	rng := prog.Range(
		exp.Int(types.TYPE_INT32, 0),
		exp.Int(types.TYPE_INT32, 1),
		prog.Excl(exp.Int(types.TYPE_INT32, 5)),
	)
	b.For(rng, func(b *prog.Builder, i exp.Exp) {
		elem := b.GetArr(i, arr)
		cur := b.GetRef(total)
		b.SetRef(total, exp.Add(cur, elem))
	})
	v := b.GetRef(total)
	b.FPrintf(prog.Stdout, "%d\n", v)
	return b.Prog()
}

// evens prints even numbers below ten with a while loop whose
// condition program reads the counter each iteration
func evens() *prog.Prog {
	b := prog.NewBuilder()
	n := b.InitRef(types.TYPE_INT32, exp.Int(types.TYPE_INT32, 0))
	b.While(func(c *prog.Builder) exp.Exp {
		v := c.GetRef(n)
		return exp.Lt(v, exp.Int(types.TYPE_INT32, 10))
	}, func(body *prog.Builder) {
		v := body.GetRef(n)
		body.FPrintf(prog.Stdout, "%d ", v)
		body.SetRef(n, exp.Add(v, exp.Int(types.TYPE_INT32, 2)))
	})
	return b.Prog()
}

// echoInt parses one integer token from standard input and echoes it
func echoInt() *prog.Prog {
	b := prog.NewBuilder()
	v := b.FGet(types.TYPE_INT32, prog.Stdin)
	b.FPrintf(prog.Stdout, "%d\n", v)
	return b.Prog()
}

// hypotenuse calls an extern math function; only the code generator
// can express it
func hypotenuse() *prog.Prog {
	b := prog.NewBuilder()
	b.AddInclude("<math.h>")
	b.AddExternFun("sqrt", types.TYPE_FLOAT64, prog.ValArg{E: exp.Float(types.TYPE_FLOAT64, 0)})
	v := b.CallFun(types.TYPE_FLOAT64, "sqrt", prog.ValArg{E: exp.Float(types.TYPE_FLOAT64, 2)})
	b.FPrintf(prog.Stdout, "%f\n", v)
	return b.Prog()
}
