package codegen

import (
	"strings"

	"rebar/prog"
)

// Ctx is the generation context the emitter writes into: fresh
// identifiers, registered includes and globals, and the compiled
// unit's local declarations and statements. The emitter is purely
// a client of this interface; Unit is the concrete implementation.
type Ctx interface {
	Fresh(prefix string) string
	Include(header string)
	Global(decl string)
	Local(decl string)
	Stmt(s string)
	Indent()
	Dedent()
}

// Unit is one growing output document: includes, globals, and a
// single compiled function. Like the dry-run counter, a Unit is
// run-scoped, single-writer state; create a fresh one per
// compilation.
type Unit struct {
	name     string
	namer    *prog.Namer
	includes []string
	globals  []string
	locals   []string
	stmts    []string
	indent   int
}

// NewUnit creates a unit compiling into a function with the given
// name, drawing identifiers from the given supply. The name "main"
// produces a C entry point.
func NewUnit(name string, namer *prog.Namer) *Unit {
	return &Unit{name: name, namer: namer}
}

// Fresh allocates the next identifier. The supply follows the same
// schedule as the dry run, so both passes agree on names.
func (u *Unit) Fresh(prefix string) string {
	return u.namer.Fresh(prefix)
}

// Include registers a header. Duplicates are kept verbatim;
// avoiding redundant registration is the caller's responsibility.
func (u *Unit) Include(header string) {
	u.includes = append(u.includes, header)
}

// Global registers a global declaration or definition fragment
func (u *Unit) Global(decl string) {
	u.globals = append(u.globals, decl)
}

// Local appends a declaration at the top of the function body
func (u *Unit) Local(decl string) {
	u.locals = append(u.locals, decl)
}

// Stmt appends a statement at the current indentation
func (u *Unit) Stmt(s string) {
	u.stmts = append(u.stmts, strings.Repeat("    ", 1+u.indent)+s)
}

// Indent deepens the indentation for nested blocks
func (u *Unit) Indent() {
	u.indent++
}

// Dedent restores the previous indentation
func (u *Unit) Dedent() {
	u.indent--
}

// Source finalizes the document and returns the C source text
func (u *Unit) Source() string {
	var b strings.Builder
	for _, inc := range u.includes {
		b.WriteString("#include ")
		if strings.HasPrefix(inc, "<") || strings.HasPrefix(inc, "\"") {
			b.WriteString(inc)
		} else {
			b.WriteString("<" + inc + ">")
		}
		b.WriteByte('\n')
	}
	if len(u.includes) > 0 {
		b.WriteByte('\n')
	}
	for _, g := range u.globals {
		b.WriteString(g)
		b.WriteByte('\n')
	}
	if len(u.globals) > 0 {
		b.WriteByte('\n')
	}
	if u.name == "main" {
		b.WriteString("int main(void)\n{\n")
	} else {
		b.WriteString("void " + u.name + "(void)\n{\n")
	}
	for _, l := range u.locals {
		b.WriteString("    " + l + "\n")
	}
	for _, s := range u.stmts {
		b.WriteString(s + "\n")
	}
	if u.name == "main" {
		b.WriteString("    return 0;\n")
	}
	b.WriteString("}\n")
	return b.String()
}
