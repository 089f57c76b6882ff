package types

import (
	"strings"
	"testing"
)

func TestErrorCodeStrings(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected string
	}{
		{E_UNSUPPORTED, "E_UNSUPPORTED"},
		{E_UNINIT, "E_UNINIT"},
		{E_ASSERT, "E_ASSERT"},
		{E_PARSE, "E_PARSE"},
		{E_RANGE, "E_RANGE"},
		{ErrorCode(42), "E_UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.code.String(); got != tt.expected {
			t.Errorf("ErrorCode(%d).String() = %q, want %q", tt.code, got, tt.expected)
		}
	}
}

func TestRunErrorPayloads(t *testing.T) {
	tests := []struct {
		name     string
		err      *RunError
		code     ErrorCode
		contains string
	}{
		{"unsupported carries op", Unsupported("Break"), E_UNSUPPORTED, "Break"},
		{"assert carries message", AssertFailed("boom"), E_ASSERT, "boom"},
		{"parse carries raw text", ParseFailed("4x"), E_PARSE, "4x"},
		{"uninit carries target", UninitRead("reference cell 3"), E_UNINIT, "cell 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("code = %v, want %v", tt.err.Code, tt.code)
			}
			if !strings.Contains(tt.err.Error(), tt.contains) {
				t.Errorf("error %q does not mention %q", tt.err.Error(), tt.contains)
			}
		})
	}
}
