package types

// BoolValue represents a boolean
type BoolValue struct {
	Val bool
}

// Type returns the bool type code
func (b BoolValue) Type() TypeCode {
	return TYPE_BOOL
}

// String returns the C representation (1 or 0)
func (b BoolValue) String() string {
	if b.Val {
		return "1"
	}
	return "0"
}

// Equal checks deep equality
func (b BoolValue) Equal(other Value) bool {
	if other == nil {
		return false
	}
	otherBool, ok := other.(BoolValue)
	if !ok {
		return false
	}
	return b.Val == otherBool.Val
}

// Truthy returns the boolean itself
func (b BoolValue) Truthy() bool {
	return b.Val
}

// NewBool creates a new BoolValue
func NewBool(val bool) BoolValue {
	return BoolValue{Val: val}
}
