package direct

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rebar/exp"
	"rebar/prog"
	"rebar/types"
)

func runWithStdio(t *testing.T, p *prog.Prog, stdin string) string {
	t.Helper()
	var out bytes.Buffer
	if err := NewWithStdio(strings.NewReader(stdin), &out).Run(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out.String()
}

func TestFGetParsesTokens(t *testing.T) {
	tests := []struct {
		name     string
		kind     types.TypeCode
		stdin    string
		expected types.Value
	}{
		{"int with trailing space", types.TYPE_INT32, "42 ", types.NewInt(types.TYPE_INT32, 42)},
		{"negative int", types.TYPE_INT32, "-17\n", types.NewInt(types.TYPE_INT32, -17)},
		{"leading whitespace", types.TYPE_INT32, "  \t 9", types.NewInt(types.TYPE_INT32, 9)},
		{"unsigned", types.TYPE_WORD8, "200", types.NewWord(types.TYPE_WORD8, 200)},
		{"float", types.TYPE_FLOAT64, "2.5", types.NewFloat(types.TYPE_FLOAT64, 2.5)},
		{"float scientific", types.TYPE_FLOAT64, "1e3", types.NewFloat(types.TYPE_FLOAT64, 1000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := prog.NewBuilder()
			got := b.FGet(tt.kind, prog.Stdin)
			runWithStdio(t, b.Prog(), tt.stdin)

			v, err := got.Eval()
			if err != nil {
				t.Fatalf("result: %v", err)
			}
			if !v.Equal(tt.expected) {
				t.Errorf("parsed %v, want %v", v, tt.expected)
			}
		})
	}
}

func TestFGetFailures(t *testing.T) {
	tests := []struct {
		name  string
		kind  types.TypeCode
		stdin string
		raw   string
	}{
		{"malformed int", types.TYPE_INT32, "4x", "4x"},
		{"empty input", types.TYPE_INT32, "", ""},
		{"whitespace only", types.TYPE_INT32, " \n\t", ""},
		{"overflow", types.TYPE_INT8, "1000", "1000"},
		{"negative unsigned", types.TYPE_WORD32, "-1", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := prog.NewBuilder()
			_ = b.FGet(tt.kind, prog.Stdin)
			err := NewWithStdio(strings.NewReader(tt.stdin), &bytes.Buffer{}).Run(b.Prog())
			var re *types.RunError
			if !errors.As(err, &re) || re.Code != types.E_PARSE {
				t.Fatalf("expected E_PARSE, got %v", err)
			}
			if re.Detail != tt.raw {
				t.Errorf("error carries %q, want raw text %q", re.Detail, tt.raw)
			}
		})
	}
}

func TestFGetStopsAtDelimiter(t *testing.T) {
	b := prog.NewBuilder()
	first := b.FGet(types.TYPE_INT32, prog.Stdin)
	second := b.FGet(types.TYPE_INT32, prog.Stdin)
	runWithStdio(t, b.Prog(), "3 7\n")

	v1, _ := first.Eval()
	v2, _ := second.Eval()
	if !v1.Equal(types.NewInt(types.TYPE_INT32, 3)) || !v2.Equal(types.NewInt(types.TYPE_INT32, 7)) {
		t.Errorf("parsed %v, %v", v1, v2)
	}
}

func TestFPrintfFormats(t *testing.T) {
	b := prog.NewBuilder()
	b.FPrintf(prog.Stdout, "i=%d u=%u f=%f 100%%\n",
		exp.Int(types.TYPE_INT32, -5),
		exp.Word(types.TYPE_WORD16, 500),
		exp.Float(types.TYPE_FLOAT64, 1.5))
	out := runWithStdio(t, b.Prog(), "")

	want := "i=-5 u=500 f=1.500000 100%\n"
	if out != want {
		t.Errorf("printed %q, want %q", out, want)
	}
}

func TestFPrintfKindMismatch(t *testing.T) {
	b := prog.NewBuilder()
	b.FPrintf(prog.Stdout, "%d", exp.Float(types.TYPE_FLOAT64, 1))
	if err := NewWithStdio(strings.NewReader(""), &bytes.Buffer{}).Run(b.Prog()); err == nil {
		t.Error("a signed placeholder with a float argument must fail")
	}
}

func TestFEof(t *testing.T) {
	b := prog.NewBuilder()
	before := b.FEof(prog.Stdin)
	_ = b.FGet(types.TYPE_INT32, prog.Stdin)
	after := b.FEof(prog.Stdin)
	runWithStdio(t, b.Prog(), "5")

	if v, _ := before.Eval(); v.Truthy() {
		t.Error("stream with pending input reported end of file")
	}
	if v, _ := after.Eval(); !v.Truthy() {
		t.Error("exhausted stream did not report end of file")
	}
}

func TestFEofOnStdoutIsFalse(t *testing.T) {
	b := prog.NewBuilder()
	got := b.FEof(prog.Stdout)
	runWithStdio(t, b.Prog(), "")
	if v, _ := got.Eval(); v.Truthy() {
		t.Error("output handles are never at end of input")
	}
}

func TestFileWriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numbers.txt")

	b := prog.NewBuilder()
	h := b.FOpen(path, "w")
	b.FPrintf(h, "%d %d\n", exp.Int(types.TYPE_INT32, 10), exp.Int(types.TYPE_INT32, 20))
	b.FClose(h)
	run(t, b.Prog())

	b2 := prog.NewBuilder()
	h2 := b2.FOpen(path, "r")
	first := b2.FGet(types.TYPE_INT32, h2)
	second := b2.FGet(types.TYPE_INT32, h2)
	eof := b2.FEof(h2)
	b2.FClose(h2)
	run(t, b2.Prog())

	v1, _ := first.Eval()
	v2, _ := second.Eval()
	if !v1.Equal(types.NewInt(types.TYPE_INT32, 10)) || !v2.Equal(types.NewInt(types.TYPE_INT32, 20)) {
		t.Errorf("read back %v, %v", v1, v2)
	}
	if v, _ := eof.Eval(); v.Truthy() {
		t.Error("trailing newline still unread, not at end of file")
	}
}

func TestFOpenAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	if err := os.WriteFile(path, []byte("first\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	b := prog.NewBuilder()
	h := b.FOpen(path, "a")
	b.FPrintf(h, "second\n")
	b.FClose(h)
	run(t, b.Prog())

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "first\nsecond\n" {
		t.Errorf("file contents %q", data)
	}
}

func TestFOpenMissingFileFails(t *testing.T) {
	b := prog.NewBuilder()
	_ = b.FOpen(filepath.Join(t.TempDir(), "absent"), "r")
	if err := New().Run(b.Prog()); err == nil {
		t.Error("opening a missing file for reading must fail")
	}
}

func TestFOpenInvalidMode(t *testing.T) {
	b := prog.NewBuilder()
	_ = b.FOpen("x", "q")
	if err := New().Run(b.Prog()); err == nil {
		t.Error("invalid mode must fail")
	}
}

func TestWriteOnlyHandleIsNotReadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	b := prog.NewBuilder()
	h := b.FOpen(path, "w")
	_ = b.FGet(types.TYPE_INT32, h)
	if err := New().Run(b.Prog()); err == nil {
		t.Error("reading a write-only handle must fail")
	}
}

func TestFCloseStdHandlesIsNoOp(t *testing.T) {
	b := prog.NewBuilder()
	b.FClose(prog.Stdin)
	b.FClose(prog.Stdout)
	b.FPrintf(prog.Stdout, "still open")
	out := runWithStdio(t, b.Prog(), "")
	if out != "still open" {
		t.Errorf("printed %q after closing the standard handles", out)
	}
}
