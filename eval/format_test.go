package eval

import (
	"errors"
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{true, "true"},
		{false, "false"},
		{"text", "text"},
		{14, "14"},
		{int64(-7), "-7"},
		{uint64(9), "9"},
		{uint8(3), "3"},
		{2.0, "2"},
		{2.5, "2.5"},
		{-0.125, "-0.125"},
		{math.Copysign(0, -1), "0"},
		{1e21, "1000000000000000000000"},
		{1e-7, "0.0000001"},
		{0.1 + 0.2, "0.30000000000000004"},
		{float32(0.5), "0.5"},
	}

	for _, tt := range tests {
		got, err := Format(tt.in)
		if err != nil {
			t.Errorf("Format(%v) error: %v", tt.in, err)

			continue
		}

		if got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormat_Errors(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := Format(f); !errors.Is(err, ErrNotFinite) {
			t.Errorf("Format(%v) error = %v, want %v", f, err, ErrNotFinite)
		}
	}

	for _, v := range []any{nil, []int{1}, struct{}{}} {
		if _, err := Format(v); !errors.Is(err, ErrResultType) {
			t.Errorf("Format(%v) error = %v, want %v", v, err, ErrResultType)
		}
	}
}

func TestEvaluate_NotFinite(t *testing.T) {
	if _, err := Evaluate("sqrt(-1)", nil); !errors.Is(err, ErrNotFinite) {
		t.Errorf("error = %v, want %v", err, ErrNotFinite)
	}
}
