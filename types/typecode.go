package types

// TypeCode identifies a payload type an instruction can carry.
// The set is closed: signed and unsigned integers of the four
// standard widths, two float widths, and bool.
type TypeCode int

const (
	TYPE_INT8    TypeCode = 0
	TYPE_INT16   TypeCode = 1
	TYPE_INT32   TypeCode = 2
	TYPE_INT64   TypeCode = 3
	TYPE_WORD8   TypeCode = 4
	TYPE_WORD16  TypeCode = 5
	TYPE_WORD32  TypeCode = 6
	TYPE_WORD64  TypeCode = 7
	TYPE_FLOAT32 TypeCode = 8
	TYPE_FLOAT64 TypeCode = 9
	TYPE_BOOL    TypeCode = 10
)

// String returns the string representation of the type code
func (t TypeCode) String() string {
	switch t {
	case TYPE_INT8:
		return "INT8"
	case TYPE_INT16:
		return "INT16"
	case TYPE_INT32:
		return "INT32"
	case TYPE_INT64:
		return "INT64"
	case TYPE_WORD8:
		return "WORD8"
	case TYPE_WORD16:
		return "WORD16"
	case TYPE_WORD32:
		return "WORD32"
	case TYPE_WORD64:
		return "WORD64"
	case TYPE_FLOAT32:
		return "FLOAT32"
	case TYPE_FLOAT64:
		return "FLOAT64"
	case TYPE_BOOL:
		return "BOOL"
	default:
		return "UNKNOWN"
	}
}

// Signed reports whether the code is a signed integer kind
func (t TypeCode) Signed() bool {
	switch t {
	case TYPE_INT8, TYPE_INT16, TYPE_INT32, TYPE_INT64:
		return true
	default:
		return false
	}
}

// Unsigned reports whether the code is an unsigned integer kind
func (t TypeCode) Unsigned() bool {
	switch t {
	case TYPE_WORD8, TYPE_WORD16, TYPE_WORD32, TYPE_WORD64:
		return true
	default:
		return false
	}
}

// Floating reports whether the code is a floating-point kind
func (t TypeCode) Floating() bool {
	return t == TYPE_FLOAT32 || t == TYPE_FLOAT64
}

// Integral reports whether the code is any integer kind.
// Array index types must be integral.
func (t TypeCode) Integral() bool {
	return t.Signed() || t.Unsigned()
}

// Bits returns the width in bits of an integer kind (0 for others)
func (t TypeCode) Bits() int {
	switch t {
	case TYPE_INT8, TYPE_WORD8:
		return 8
	case TYPE_INT16, TYPE_WORD16:
		return 16
	case TYPE_INT32, TYPE_WORD32:
		return 32
	case TYPE_INT64, TYPE_WORD64:
		return 64
	default:
		return 0
	}
}

// Formattable reports whether the kind has a textual format
// placeholder and parse grammar (bool does not)
func (t TypeCode) Formattable() bool {
	return t.Signed() || t.Unsigned() || t.Floating()
}

// Placeholder returns the format placeholder for a formattable kind:
// decimal for signed integers, unsigned decimal for unsigned integers,
// floating for float kinds. Returns "" for non-formattable kinds.
func (t TypeCode) Placeholder() string {
	switch {
	case t.Signed():
		return "%d"
	case t.Unsigned():
		return "%u"
	case t.Floating():
		return "%f"
	default:
		return ""
	}
}
