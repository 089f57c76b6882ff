package prog

import (
	"rebar/exp"
	"rebar/types"
)

// Builder sequences instructions into a program. Operations that
// introduce an entity or a value hand back a placeholder (*Ref,
// *Arr, *Handle, *Object, or an exp.Slot) that later instructions
// can reference; interpreters fill the placeholders when they run
// the creating instruction.
type Builder struct {
	prog *Prog
}

// NewBuilder creates a builder with an empty program
func NewBuilder() *Builder {
	return &Builder{prog: &Prog{}}
}

// Prog returns the built program
func (b *Builder) Prog() *Prog {
	return b.prog
}

// Emit appends a pre-constructed instruction
func (b *Builder) Emit(in Instr) {
	b.prog.Append(in)
}

// sub builds a nested program with fn
func (b *Builder) sub(fn func(*Builder)) *Prog {
	nested := NewBuilder()
	if fn != nil {
		fn(nested)
	}
	return nested.prog
}

// NewRef appends a NewRef instruction and returns the reference
func (b *Builder) NewRef(t types.TypeCode) *Ref {
	r := &Ref{T: t}
	b.Emit(&NewRef{T: t, Dst: r})
	return r
}

// InitRef appends an InitRef instruction and returns the reference
func (b *Builder) InitRef(t types.TypeCode, v exp.Exp) *Ref {
	r := &Ref{T: t}
	b.Emit(&InitRef{T: t, Val: v, Dst: r})
	return r
}

// GetRef appends a GetRef instruction and returns the value copy
func (b *Builder) GetRef(r *Ref) exp.Exp {
	s := exp.NewSlot(r.T)
	b.Emit(&GetRef{Ref: r, Dst: s})
	return s
}

// SetRef appends a SetRef instruction
func (b *Builder) SetRef(r *Ref, v exp.Exp) {
	b.Emit(&SetRef{Ref: r, Val: v})
}

// UnsafeFreezeRef appends an UnsafeFreezeRef instruction and
// returns the frozen value. The caller must not write to r
// afterwards.
func (b *Builder) UnsafeFreezeRef(r *Ref) exp.Exp {
	s := exp.NewSlot(r.T)
	b.Emit(&UnsafeFreezeRef{Ref: r, Dst: s})
	return s
}

// NewArrOf appends a NewArr instruction with an explicit index kind
func (b *Builder) NewArrOf(elem, index types.TypeCode, size exp.Exp) *Arr {
	a := &Arr{Elem: elem, Index: index}
	b.Emit(&NewArr{Elem: elem, Index: index, Size: size, Dst: a})
	return a
}

// NewArr appends a NewArr instruction indexed by INT32
func (b *Builder) NewArr(elem types.TypeCode, size exp.Exp) *Arr {
	return b.NewArrOf(elem, types.TYPE_INT32, size)
}

// NewArrDeferred appends a NewArrDeferred instruction
// (size determined later; code generator only)
func (b *Builder) NewArrDeferred(elem types.TypeCode) *Arr {
	a := &Arr{Elem: elem, Index: types.TYPE_INT32}
	b.Emit(&NewArrDeferred{Elem: elem, Index: types.TYPE_INT32, Dst: a})
	return a
}

// InitArr appends an InitArr instruction
func (b *Builder) InitArr(elem types.TypeCode, vals []types.Value) *Arr {
	a := &Arr{Elem: elem, Index: types.TYPE_INT32}
	b.Emit(&InitArr{Elem: elem, Index: types.TYPE_INT32, Vals: vals, Dst: a})
	return a
}

// GetArr appends a GetArr instruction and returns the element copy
func (b *Builder) GetArr(ix exp.Exp, a *Arr) exp.Exp {
	s := exp.NewSlot(a.Elem)
	b.Emit(&GetArr{Ix: ix, Arr: a, Dst: s})
	return s
}

// SetArr appends a SetArr instruction
func (b *Builder) SetArr(ix, v exp.Exp, a *Arr) {
	b.Emit(&SetArr{Ix: ix, Val: v, Arr: a})
}

// CopyArr appends a CopyArr instruction
func (b *Builder) CopyArr(dst, src *Arr, n exp.Exp) {
	b.Emit(&CopyArr{Dst: dst, Src: src, Len: n})
}

// If appends an If instruction; thenFn and elseFn build the
// branches (either may be nil for an empty branch)
func (b *Builder) If(cond exp.Exp, thenFn, elseFn func(*Builder)) {
	b.Emit(&If{Cond: cond, Then: b.sub(thenFn), Else: b.sub(elseFn)})
}

// While appends a While instruction. condFn builds the condition
// program and returns the boolean it produces; the condition
// program runs again before every iteration.
func (b *Builder) While(condFn func(*Builder) exp.Exp, bodyFn func(*Builder)) {
	cond := NewBuilder()
	test := condFn(cond)
	b.Emit(&While{Cond: cond.prog, Test: test, Body: b.sub(bodyFn)})
}

// For appends a For instruction over the given range. bodyFn
// receives the current index each iteration. The index kind is
// taken from the range's start expression.
func (b *Builder) For(rng IxRange, bodyFn func(*Builder, exp.Exp)) {
	t := rng.Start.ExpType()
	ix := exp.NewSlot(t)
	body := NewBuilder()
	if bodyFn != nil {
		bodyFn(body, ix)
	}
	b.Emit(&For{Range: rng, T: t, Index: ix, Body: body.prog})
}

// Break appends a Break instruction (code generator only)
func (b *Builder) Break() {
	b.Emit(&Break{})
}

// Assert appends an Assert instruction
func (b *Builder) Assert(cond exp.Exp, msg string) {
	b.Emit(&Assert{Cond: cond, Msg: msg})
}

// FOpen appends an FOpen instruction and returns the handle
func (b *Builder) FOpen(path, mode string) *Handle {
	h := &Handle{}
	b.Emit(&FOpen{Path: path, Mode: mode, Dst: h})
	return h
}

// FClose appends an FClose instruction
func (b *Builder) FClose(h *Handle) {
	b.Emit(&FClose{H: h})
}

// FEof appends an FEof instruction and returns the boolean result
func (b *Builder) FEof(h *Handle) exp.Exp {
	s := exp.NewSlot(types.TYPE_BOOL)
	b.Emit(&FEof{H: h, Dst: s})
	return s
}

// FPrintf appends an FPrintf instruction
func (b *Builder) FPrintf(h *Handle, format string, args ...exp.Exp) {
	b.Emit(&FPrintf{H: h, Format: format, Args: args})
}

// FGet appends an FGet instruction and returns the parsed value
func (b *Builder) FGet(t types.TypeCode, h *Handle) exp.Exp {
	s := exp.NewSlot(t)
	b.Emit(&FGet{T: t, H: h, Dst: s})
	return s
}

// NewObject appends a NewObject instruction and returns the handle
func (b *Builder) NewObject(typeName string, isPointer bool) *Object {
	o := &Object{TypeName: typeName, IsPointer: isPointer}
	b.Emit(&NewObject{TypeName: typeName, IsPointer: isPointer, Dst: o})
	return o
}

// InitObject appends an InitObject instruction and returns the
// handle produced by the named constructor
func (b *Builder) InitObject(fun string, isPointer bool, typeName string, args ...FunArg) *Object {
	o := &Object{TypeName: typeName, IsPointer: isPointer}
	b.Emit(&InitObject{Fun: fun, IsPointer: isPointer, TypeName: typeName, Args: args, Dst: o})
	return o
}

// AddInclude appends an AddInclude instruction
func (b *Builder) AddInclude(header string) {
	b.Emit(&AddInclude{Header: header})
}

// AddDefinition appends an AddDefinition instruction
func (b *Builder) AddDefinition(def string) {
	b.Emit(&AddDefinition{Def: def})
}

// AddExternFun appends an AddExternFun instruction
func (b *Builder) AddExternFun(name string, result types.TypeCode, args ...FunArg) {
	b.Emit(&AddExternFun{Name: name, Result: result, Args: args})
}

// AddExternProc appends an AddExternProc instruction
func (b *Builder) AddExternProc(name string, args ...FunArg) {
	b.Emit(&AddExternProc{Name: name, Args: args})
}

// CallFun appends a CallFun instruction and returns its result
func (b *Builder) CallFun(t types.TypeCode, name string, args ...FunArg) exp.Exp {
	s := exp.NewSlot(t)
	b.Emit(&CallFun{T: t, Name: name, Args: args, Dst: s})
	return s
}

// CallProc appends a CallProc instruction
func (b *Builder) CallProc(name string, args ...FunArg) {
	b.Emit(&CallProc{Name: name, Args: args})
}
