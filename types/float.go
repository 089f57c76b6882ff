package types

import (
	"strconv"
	"strings"
)

// FloatValue represents a floating-point number of a declared width
type FloatValue struct {
	Val  float64
	Code TypeCode
}

// Type returns the declared floating kind
func (f FloatValue) Type() TypeCode {
	return f.Code
}

// String returns the literal representation.
// Always includes a decimal point or exponent so the text is
// unambiguously a floating literal in generated code.
func (f FloatValue) String() string {
	s := strconv.FormatFloat(f.Val, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// Equal checks deep equality
func (f FloatValue) Equal(other Value) bool {
	if other == nil {
		return false
	}
	otherFloat, ok := other.(FloatValue)
	if !ok {
		return false
	}
	return f.Code == otherFloat.Code && f.Val == otherFloat.Val
}

// Truthy returns false only for zero
func (f FloatValue) Truthy() bool {
	return f.Val != 0
}

// NewFloat creates a new FloatValue of the given floating kind
func NewFloat(code TypeCode, val float64) FloatValue {
	return FloatValue{Val: val, Code: code}
}
