package codegen

import "rebar/types"

// CType returns the C storage type for a payload kind.
// The mapping is fixed: declared payload types pick their target
// representation from this table and nothing else.
func CType(t types.TypeCode) string {
	switch t {
	case types.TYPE_INT8:
		return "int8_t"
	case types.TYPE_INT16:
		return "int16_t"
	case types.TYPE_INT32:
		return "int32_t"
	case types.TYPE_INT64:
		return "int64_t"
	case types.TYPE_WORD8:
		return "uint8_t"
	case types.TYPE_WORD16:
		return "uint16_t"
	case types.TYPE_WORD32:
		return "uint32_t"
	case types.TYPE_WORD64:
		return "uint64_t"
	case types.TYPE_FLOAT32:
		return "float"
	case types.TYPE_FLOAT64:
		return "double"
	case types.TYPE_BOOL:
		return "int"
	default:
		return "void"
	}
}

// needsStdint reports whether the C type for t comes from <stdint.h>
func needsStdint(t types.TypeCode) bool {
	return t.Integral()
}

// scanPlaceholder returns the fscanf conversion for a kind.
// Doubles need %lf on input even though they print with %f.
func scanPlaceholder(t types.TypeCode) string {
	if t == types.TYPE_FLOAT64 {
		return "%lf"
	}
	return t.Placeholder()
}
