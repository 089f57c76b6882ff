// Package codegen emits C99 statements equivalent to a program's
// instructions. Identifiers come from the same allocation schedule
// the dry run uses, so a program dry-run and then generated
// references identical symbols.
package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"rebar/exp"
	"rebar/prog"
	"rebar/types"
)

// Gen compiles a program into a generation context
type Gen struct {
	ctx  Ctx
	seen map[string]bool
}

// New creates a generator writing into the given context
func New(ctx Ctx) *Gen {
	return &Gen{ctx: ctx, seen: make(map[string]bool)}
}

// include registers a system header the emitter itself needs.
// The context keeps duplicates verbatim, so the emitter registers
// each of its own headers at most once. Program-level AddInclude
// registrations bypass this and land in the context directly.
func (g *Gen) include(header string) {
	if g.seen[header] {
		return
	}
	g.seen[header] = true
	g.ctx.Include(header)
}

// Run emits the whole program
func (g *Gen) Run(p *prog.Prog) error {
	for _, in := range p.Instrs {
		if err := g.instr(in); err != nil {
			return err
		}
	}
	return nil
}

func (g *Gen) instr(in prog.Instr) error {
	switch i := in.(type) {
	case *prog.NewRef:
		name := g.ctx.Fresh("r")
		bindRef(i.Dst, name)
		g.declInclude(i.T)
		g.ctx.Stmt(fmt.Sprintf("%s %s;", CType(i.T), name))
	case *prog.InitRef:
		name := g.ctx.Fresh("r")
		bindRef(i.Dst, name)
		g.declInclude(i.T)
		g.ctx.Stmt(fmt.Sprintf("%s %s = %s;", CType(i.T), name, i.Val.Compile()))
	case *prog.GetRef:
		name := g.ctx.Fresh("v")
		g.declInclude(i.Ref.T)
		g.ctx.Stmt(fmt.Sprintf("%s %s = %s;", CType(i.Ref.T), name, i.Ref.Sym))
		i.Dst.Set(exp.Var{Name: name, T: i.Ref.T})
	case *prog.SetRef:
		g.ctx.Stmt(fmt.Sprintf("%s = %s;", i.Ref.Sym, i.Val.Compile()))
	case *prog.UnsafeFreezeRef:
		// Keeps the naming schedule aligned with the dry run but
		// emits nothing: the result reads the ref's own name.
		g.ctx.Fresh("v")
		i.Dst.Set(exp.Var{Name: i.Ref.Sym, T: i.Ref.T})
	case *prog.NewArr:
		name := g.ctx.Fresh("a")
		bindArr(i.Dst, name)
		g.declInclude(i.Elem)
		g.ctx.Stmt(fmt.Sprintf("%s %s[%s];", CType(i.Elem), name, i.Size.Compile()))
	case *prog.NewArrDeferred:
		name := g.ctx.Fresh("a")
		bindArr(i.Dst, name)
		g.declInclude(i.Elem)
		g.ctx.Local(fmt.Sprintf("%s *%s;", CType(i.Elem), name))
	case *prog.InitArr:
		name := g.ctx.Fresh("a")
		bindArr(i.Dst, name)
		g.declInclude(i.Elem)
		vals := make([]string, len(i.Vals))
		for k, v := range i.Vals {
			vals[k] = v.String()
		}
		g.ctx.Stmt(fmt.Sprintf("%s %s[] = {%s};", CType(i.Elem), name, strings.Join(vals, ", ")))
	case *prog.GetArr:
		name := g.ctx.Fresh("v")
		g.declInclude(i.Arr.Elem)
		g.ctx.Stmt(fmt.Sprintf("%s %s = %s[%s];", CType(i.Arr.Elem), name, i.Arr.Sym, i.Ix.Compile()))
		i.Dst.Set(exp.Var{Name: name, T: i.Arr.Elem})
	case *prog.SetArr:
		g.ctx.Stmt(fmt.Sprintf("%s[%s] = %s;", i.Arr.Sym, i.Ix.Compile(), i.Val.Compile()))
	case *prog.CopyArr:
		g.include("<string.h>")
		g.ctx.Stmt(fmt.Sprintf("memcpy(%s, %s, (%s) * sizeof(*%s));",
			i.Dst.Sym, i.Src.Sym, i.Len.Compile(), i.Dst.Sym))
	case *prog.If:
		g.ctx.Stmt(fmt.Sprintf("if (%s) {", i.Cond.Compile()))
		g.ctx.Indent()
		if err := g.Run(i.Then); err != nil {
			return err
		}
		g.ctx.Dedent()
		if len(i.Else.Instrs) > 0 {
			g.ctx.Stmt("} else {")
			g.ctx.Indent()
			if err := g.Run(i.Else); err != nil {
				return err
			}
			g.ctx.Dedent()
		}
		g.ctx.Stmt("}")
	case *prog.While:
		// The condition is an effectful program, so its statements
		// run inside the loop before the test, once per iteration
		// including the first.
		g.ctx.Stmt("while (1) {")
		g.ctx.Indent()
		if err := g.Run(i.Cond); err != nil {
			return err
		}
		g.ctx.Stmt(fmt.Sprintf("if (!(%s)) break;", i.Test.Compile()))
		if err := g.Run(i.Body); err != nil {
			return err
		}
		g.ctx.Dedent()
		g.ctx.Stmt("}")
	case *prog.For:
		return g.forLoop(i)
	case *prog.Break:
		g.ctx.Stmt("break;")
	case *prog.Assert:
		g.include("<assert.h>")
		if i.Msg == "" {
			g.ctx.Stmt(fmt.Sprintf("assert(%s);", i.Cond.Compile()))
		} else {
			g.ctx.Stmt(fmt.Sprintf("assert(%s && %s);", i.Cond.Compile(), cstr(i.Msg)))
		}
	case *prog.FOpen:
		name := g.ctx.Fresh("h")
		i.Dst.Rep = prog.RepSymbolic
		i.Dst.Sym = name
		g.include("<stdio.h>")
		g.ctx.Stmt(fmt.Sprintf("FILE *%s = fopen(%s, %s);", name, cstr(i.Path), cstr(i.Mode)))
	case *prog.FClose:
		if i.H.IsStd() {
			return nil
		}
		g.ctx.Stmt(fmt.Sprintf("fclose(%s);", i.H.Sym))
	case *prog.FEof:
		g.include("<stdio.h>")
		i.Dst.Set(exp.Raw{Text: fmt.Sprintf("feof(%s)", i.H.Sym), T: i.Dst.T})
	case *prog.FPrintf:
		g.include("<stdio.h>")
		call := fmt.Sprintf("fprintf(%s, %s", i.H.Sym, cstr(i.Format))
		for _, a := range i.Args {
			call += ", " + a.Compile()
		}
		g.ctx.Stmt(call + ");")
	case *prog.FGet:
		name := g.ctx.Fresh("v")
		g.include("<stdio.h>")
		g.declInclude(i.T)
		g.ctx.Stmt(fmt.Sprintf("%s %s;", CType(i.T), name))
		g.ctx.Stmt(fmt.Sprintf("fscanf(%s, %s, &%s);", i.H.Sym, cstr(scanPlaceholder(i.T)), name))
		i.Dst.Set(exp.Var{Name: name, T: i.T})
	case *prog.NewObject:
		name := g.ctx.Fresh("o")
		i.Dst.Sym = name
		g.ctx.Stmt(fmt.Sprintf("%s;", objDecl(i.TypeName, i.IsPointer, name)))
	case *prog.InitObject:
		name := g.ctx.Fresh("o")
		i.Dst.Sym = name
		g.ctx.Stmt(fmt.Sprintf("%s = %s(%s);",
			objDecl(i.TypeName, i.IsPointer, name), i.Fun, g.args(i.Args)))
	case *prog.AddInclude:
		g.ctx.Include(i.Header)
	case *prog.AddDefinition:
		g.ctx.Global(i.Def)
	case *prog.AddExternFun:
		g.declInclude(i.Result)
		g.ctx.Global(fmt.Sprintf("extern %s %s(%s);", CType(i.Result), i.Name, g.argTypes(i.Args)))
	case *prog.AddExternProc:
		g.ctx.Global(fmt.Sprintf("extern void %s(%s);", i.Name, g.argTypes(i.Args)))
	case *prog.CallFun:
		name := g.ctx.Fresh("v")
		g.declInclude(i.T)
		g.ctx.Stmt(fmt.Sprintf("%s %s = %s(%s);", CType(i.T), name, i.Name, g.args(i.Args)))
		i.Dst.Set(exp.Var{Name: name, T: i.T})
	case *prog.CallProc:
		g.ctx.Stmt(fmt.Sprintf("%s(%s);", i.Name, g.args(i.Args)))
	default:
		return fmt.Errorf("codegen: unknown instruction %T", in)
	}
	return nil
}

// forLoop emits a structural C for loop visiting the identical
// index sequence the direct interpreter would: the comparison
// operator follows the stop border's inclusivity and the step's
// sign. The step's sign is read by evaluating it as a closed
// expression; an open step is treated as non-negative.
func (g *Gen) forLoop(i *prog.For) error {
	name := g.ctx.Fresh("i")
	i.Index.Set(exp.Var{Name: name, T: i.T})

	negative := false
	if v, err := i.Range.Step.Eval(); err == nil {
		if n, ok := types.AsInt64(v); ok && n < 0 {
			negative = true
		}
	}
	var cmp string
	if i.Range.Stop.Kind == prog.Inclusive {
		cmp = "<="
		if negative {
			cmp = ">="
		}
	} else {
		cmp = "<"
		if negative {
			cmp = ">"
		}
	}

	g.declInclude(i.T)
	g.ctx.Stmt(fmt.Sprintf("for (%s %s = %s; %s %s %s; %s += %s) {",
		CType(i.T), name, i.Range.Start.Compile(),
		name, cmp, i.Range.Stop.Bound.Compile(),
		name, i.Range.Step.Compile()))
	g.ctx.Indent()
	if err := g.Run(i.Body); err != nil {
		return err
	}
	g.ctx.Dedent()
	g.ctx.Stmt("}")
	return nil
}

// declInclude registers <stdint.h> when a declaration uses a
// fixed-width integer type
func (g *Gen) declInclude(t types.TypeCode) {
	if needsStdint(t) {
		g.include("<stdint.h>")
	}
}

// args renders a foreign call argument list
func (g *Gen) args(args []prog.FunArg) string {
	parts := make([]string, len(args))
	for k, a := range args {
		parts[k] = compileArg(a)
	}
	return strings.Join(parts, ", ")
}

// argTypes renders the parameter types of an extern declaration
func (g *Gen) argTypes(args []prog.FunArg) string {
	if len(args) == 0 {
		return "void"
	}
	parts := make([]string, len(args))
	for k, a := range args {
		parts[k] = argType(a)
	}
	return strings.Join(parts, ", ")
}

// compileArg renders one foreign call argument
func compileArg(a prog.FunArg) string {
	switch arg := a.(type) {
	case prog.ValArg:
		return arg.E.Compile()
	case prog.StrArg:
		return cstr(arg.S)
	case prog.ObjArg:
		return arg.O.Sym
	case prog.AddrArg:
		return "&" + compileArg(arg.Arg)
	case prog.DerefArg:
		return "*" + compileArg(arg.Arg)
	default:
		return "/* bad argument */"
	}
}

// argType derives the C parameter type of a foreign call argument
func argType(a prog.FunArg) string {
	switch arg := a.(type) {
	case prog.ValArg:
		return CType(arg.E.ExpType())
	case prog.StrArg:
		return "const char *"
	case prog.ObjArg:
		if arg.O.IsPointer {
			return arg.O.TypeName + " *"
		}
		return arg.O.TypeName
	case prog.AddrArg:
		return argType(arg.Arg) + " *"
	case prog.DerefArg:
		inner := argType(arg.Arg)
		if strings.HasSuffix(inner, " *") {
			return strings.TrimSuffix(inner, " *")
		}
		return inner
	default:
		return "void"
	}
}

// objDecl renders an opaque object declaration
func objDecl(typeName string, isPointer bool, name string) string {
	if isPointer {
		return fmt.Sprintf("%s *%s", typeName, name)
	}
	return fmt.Sprintf("%s %s", typeName, name)
}

// cstr renders a C string literal
func cstr(s string) string {
	return strconv.Quote(s)
}

func bindRef(r *prog.Ref, name string) {
	r.Rep = prog.RepSymbolic
	r.Sym = name
}

func bindArr(a *prog.Arr, name string) {
	a.Rep = prog.RepSymbolic
	a.Sym = name
}
