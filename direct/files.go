package direct

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"rebar/exp"
	"rebar/prog"
	"rebar/types"
)

// openFile is one live file handle
type openFile struct {
	f *os.File
	r *bufio.Reader
	w io.Writer
}

// parseOpenMode maps a C-style mode string to open flags
func parseOpenMode(mode string) (int, error) {
	if mode == "" {
		return 0, fmt.Errorf("empty mode")
	}
	var flags int
	switch mode[0] {
	case 'r':
		flags = os.O_RDONLY
		if strings.Contains(mode, "+") {
			flags = os.O_RDWR
		}
	case 'w':
		flags = os.O_CREATE | os.O_TRUNC | os.O_WRONLY
		if strings.Contains(mode, "+") {
			flags = os.O_CREATE | os.O_TRUNC | os.O_RDWR
		}
	case 'a':
		flags = os.O_CREATE | os.O_APPEND | os.O_WRONLY
		if strings.Contains(mode, "+") {
			flags = os.O_CREATE | os.O_APPEND | os.O_RDWR
		}
	default:
		return 0, fmt.Errorf("invalid mode %q", mode)
	}
	return flags, nil
}

func (d *Interp) fopen(i *prog.FOpen) error {
	flags, err := parseOpenMode(i.Mode)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(i.Path, flags, 0o666)
	if err != nil {
		return err
	}
	of := &openFile{f: f, w: f}
	if flags&os.O_WRONLY == 0 {
		of.r = bufio.NewReader(f)
	}
	id := d.nextID
	d.nextID++
	d.files[id] = of
	i.Dst.Rep = prog.RepLive
	i.Dst.ID = id
	return nil
}

// reader resolves the input side of a handle
func (d *Interp) reader(h *prog.Handle) (*bufio.Reader, error) {
	if h == prog.Stdin {
		return d.stdin, nil
	}
	if h.IsStd() {
		return nil, fmt.Errorf("standard output is not readable")
	}
	of := d.files[h.ID]
	if of == nil {
		return nil, fmt.Errorf("handle %d is not open", h.ID)
	}
	if of.r == nil {
		return nil, fmt.Errorf("handle %d is not readable", h.ID)
	}
	return of.r, nil
}

// writer resolves the output side of a handle
func (d *Interp) writer(h *prog.Handle) (io.Writer, error) {
	if h == prog.Stdout {
		return d.stdout, nil
	}
	if h.IsStd() {
		return nil, fmt.Errorf("standard input is not writable")
	}
	of := d.files[h.ID]
	if of == nil {
		return nil, fmt.Errorf("handle %d is not open", h.ID)
	}
	return of.w, nil
}

func (d *Interp) fclose(i *prog.FClose) error {
	if i.H.IsStd() {
		return nil
	}
	of := d.files[i.H.ID]
	if of == nil {
		return fmt.Errorf("handle %d is not open", i.H.ID)
	}
	delete(d.files, i.H.ID)
	return of.f.Close()
}

func (d *Interp) feof(i *prog.FEof) error {
	var atEOF bool
	if i.H == prog.Stdout {
		atEOF = false
	} else {
		r, err := d.reader(i.H)
		if err != nil {
			// write-only handles are never at end of input
			atEOF = false
		} else if _, perr := r.Peek(1); perr != nil {
			atEOF = true
		}
	}
	i.Dst.Set(exp.Lit{V: types.NewBool(atEOF)})
	return nil
}

func (d *Interp) fprintf(i *prog.FPrintf) error {
	w, err := d.writer(i.H)
	if err != nil {
		return err
	}
	text, err := renderFormat(i.Format, i.Args)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}

// renderFormat expands the payload-kind placeholders: %d for signed
// integers, %u for unsigned, %f for floats (six decimals, as the
// target language prints them), %% for a literal percent. Anything
// else is copied verbatim.
func renderFormat(format string, args []exp.Exp) (string, error) {
	var b strings.Builder
	next := 0
	takeArg := func() (types.Value, error) {
		if next >= len(args) {
			return nil, fmt.Errorf("format %q needs more than %d arguments", format, len(args))
		}
		v, err := args[next].Eval()
		next++
		return v, err
	}

	for k := 0; k < len(format); k++ {
		ch := format[k]
		if ch != '%' || k+1 == len(format) {
			b.WriteByte(ch)
			continue
		}
		k++
		switch format[k] {
		case '%':
			b.WriteByte('%')
		case 'd':
			v, err := takeArg()
			if err != nil {
				return "", err
			}
			n, ok := v.(types.IntValue)
			if !ok {
				return "", fmt.Errorf("%%d expects a signed integer, got %s", v.Type())
			}
			b.WriteString(strconv.FormatInt(n.Val, 10))
		case 'u':
			v, err := takeArg()
			if err != nil {
				return "", err
			}
			n, ok := v.(types.WordValue)
			if !ok {
				return "", fmt.Errorf("%%u expects an unsigned integer, got %s", v.Type())
			}
			b.WriteString(strconv.FormatUint(n.Val, 10))
		case 'f':
			v, err := takeArg()
			if err != nil {
				return "", err
			}
			n, ok := v.(types.FloatValue)
			if !ok {
				return "", fmt.Errorf("%%f expects a float, got %s", v.Type())
			}
			b.WriteString(strconv.FormatFloat(n.Val, 'f', 6, 64))
		default:
			b.WriteByte('%')
			b.WriteByte(format[k])
		}
	}
	return b.String(), nil
}

// isSpace matches the whitespace set that delimits input tokens
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// readToken skips leading whitespace and captures one run of
// non-whitespace characters. An empty capture means end of input.
func readToken(r *bufio.Reader) string {
	for {
		c, err := r.ReadByte()
		if err != nil {
			return ""
		}
		if isSpace(c) {
			continue
		}
		var tok []byte
		tok = append(tok, c)
		for {
			c, err = r.ReadByte()
			if err != nil {
				return string(tok)
			}
			if isSpace(c) {
				r.UnreadByte()
				return string(tok)
			}
			tok = append(tok, c)
		}
	}
}

func (d *Interp) fget(i *prog.FGet) error {
	r, err := d.reader(i.H)
	if err != nil {
		return err
	}
	tok := readToken(r)
	if tok == "" {
		return types.ParseFailed(tok)
	}

	var v types.Value
	switch {
	case i.T.Signed():
		n, err := strconv.ParseInt(tok, 10, i.T.Bits())
		if err != nil {
			return types.ParseFailed(tok)
		}
		v = types.NewInt(i.T, n)
	case i.T.Unsigned():
		n, err := strconv.ParseUint(tok, 10, i.T.Bits())
		if err != nil {
			return types.ParseFailed(tok)
		}
		v = types.NewWord(i.T, n)
	case i.T.Floating():
		n, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return types.ParseFailed(tok)
		}
		v = types.NewFloat(i.T, n)
	default:
		return types.Unsupported(fmt.Sprintf("FGet of %s", i.T))
	}
	i.Dst.Set(exp.Lit{V: v})
	return nil
}
