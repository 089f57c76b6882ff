package types

import "strconv"

// IntValue represents a signed integer of a declared width
type IntValue struct {
	Val  int64
	Code TypeCode
}

// Type returns the declared signed integer kind
func (i IntValue) Type() TypeCode {
	return i.Code
}

// String returns the decimal representation
func (i IntValue) String() string {
	return strconv.FormatInt(i.Val, 10)
}

// Equal checks deep equality
func (i IntValue) Equal(other Value) bool {
	if other == nil {
		return false
	}
	otherInt, ok := other.(IntValue)
	if !ok {
		return false
	}
	return i.Code == otherInt.Code && i.Val == otherInt.Val
}

// Truthy returns false only for zero
func (i IntValue) Truthy() bool {
	return i.Val != 0
}

// NewInt creates a new IntValue of the given signed kind
func NewInt(code TypeCode, val int64) IntValue {
	return IntValue{Val: val, Code: code}
}
