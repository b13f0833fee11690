package builder_test

import (
	"testing"

	"github.com/katalvlaran/refnet/builder"
)

// assertPanics fails the test if fn does not panic.
func assertPanics(t *testing.T, fn func(), name string) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic, but none occurred", name)
		}
	}()
	fn()
}

// TestIDFns checks each IDFn on valid inputs and panics on invalid ones.
func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"DefaultIDFn_zero", builder.DefaultIDFn, 0, "0", false},
		{"DefaultIDFn_multi", builder.DefaultIDFn, 123, "123", false},

		{"SymbolIDFn_min", builder.SymbolIDFn, 0, "A", false},
		{"SymbolIDFn_max", builder.SymbolIDFn, 25, "Z", false},
		{"SymbolIDFn_neg", builder.SymbolIDFn, -1, "", true},
		{"SymbolIDFn_tooHigh", builder.SymbolIDFn, 26, "", true},

		{"ExcelColumnIDFn_A", builder.ExcelColumnIDFn, 0, "A", false},
		{"ExcelColumnIDFn_Z", builder.ExcelColumnIDFn, 25, "Z", false},
		{"ExcelColumnIDFn_AA", builder.ExcelColumnIDFn, 26, "AA", false},
		{"ExcelColumnIDFn_neg", builder.ExcelColumnIDFn, -1, "", true},

		{"SymbolNumberIDFn", builder.SymbolNumberIDFn("v"), 4, "v4", false},
		{"SymbolNumberIDFn_neg", builder.SymbolNumberIDFn("v"), -4, "", true},

		{"PaddedIDFn", builder.PaddedIDFn("user_", 3), 7, "user_007", false},
		{"PaddedIDFn_wide", builder.PaddedIDFn("user_", 3), 1234, "user_1234", false},
		{"PaddedIDFn_neg", builder.PaddedIDFn("user_", 3), -1, "", true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				assertPanics(t, func() { _ = tc.fn(tc.input) }, tc.name)
				return
			}
			if got := tc.fn(tc.input); got != tc.want {
				t.Errorf("%s(%d) = %q; want %q", tc.name, tc.input, got, tc.want)
			}
		})
	}
}
