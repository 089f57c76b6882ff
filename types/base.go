package types

// Value is the interface all payload values implement
type Value interface {
	Type() TypeCode
	String() string   // literal representation, also valid C syntax
	Equal(Value) bool // deep equality
	Truthy() bool     // zero/false is falsy, everything else truthy
}

// AsInt64 extracts a signed view of an integral value.
// Returns (0, false) for non-integral values.
func AsInt64(v Value) (int64, bool) {
	switch n := v.(type) {
	case IntValue:
		return n.Val, true
	case WordValue:
		return int64(n.Val), true
	default:
		return 0, false
	}
}
