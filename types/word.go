package types

import "strconv"

// WordValue represents an unsigned integer of a declared width
type WordValue struct {
	Val  uint64
	Code TypeCode
}

// Type returns the declared unsigned integer kind
func (w WordValue) Type() TypeCode {
	return w.Code
}

// String returns the decimal representation
func (w WordValue) String() string {
	return strconv.FormatUint(w.Val, 10)
}

// Equal checks deep equality
func (w WordValue) Equal(other Value) bool {
	if other == nil {
		return false
	}
	otherWord, ok := other.(WordValue)
	if !ok {
		return false
	}
	return w.Code == otherWord.Code && w.Val == otherWord.Val
}

// Truthy returns false only for zero
func (w WordValue) Truthy() bool {
	return w.Val != 0
}

// NewWord creates a new WordValue of the given unsigned kind
func NewWord(code TypeCode, val uint64) WordValue {
	return WordValue{Val: val, Code: code}
}
