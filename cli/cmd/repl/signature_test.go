package repl

import (
	"strings"
	"testing"

	"github.com/ardnew/scenic/eval"
)

func TestDetectFunctionCall(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		cursor     int
		wantName   string
		wantIndex  int
		wantInCall bool
	}{
		{"no call", "$Speed", 6, "", 0, false},
		{"open paren", "sqrt(", 5, "sqrt", 0, true},
		{"first arg", "sqrt($Speed", 11, "sqrt", 0, true},
		{"second arg", "max(1,", 6, "max", 1, true},
		{"third arg", "max(1, 2, 3", 11, "max", 2, true},
		{"closed call", "sqrt(4)", 7, "", 0, false},
		{"after closed call", "sqrt(4) + ", 10, "", 0, false},
		{"nested inner", "max(sqrt(", 9, "sqrt", 0, true},
		{"nested outer", "max(sqrt(4), ", 13, "max", 1, true},
		{"nested comma ignored", "max(min(1, 2), 3", 16, "max", 1, true},
		{"grouping paren", "(1 + ", 5, "", 0, false},
		{"operator before paren", "2 * (", 5, "", 0, false},
		{"cursor inside", "max(1, 2)", 5, "max", 0, true},
		{"cursor past end", "sqrt(", 50, "sqrt", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectFunctionCall(tt.input, tt.cursor)

			if got.name != tt.wantName || got.argIndex != tt.wantIndex ||
				got.inCall != tt.wantInCall {
				t.Errorf("detectFunctionCall(%q, %d) = %+v, want {%s %d %v}",
					tt.input, tt.cursor, got, tt.wantName, tt.wantIndex, tt.wantInCall)
			}
		})
	}
}

func TestSignatureOf(t *testing.T) {
	sig, ok := signatureOf("sqrt")
	if !ok {
		t.Fatal("signatureOf(sqrt) not found")
	}

	if got := sig.String(); got != "sqrt(x)" {
		t.Errorf("signatureOf(sqrt) = %q, want sqrt(x)", got)
	}

	if _, ok := signatureOf("nope"); ok {
		t.Error("signatureOf(nope) found")
	}
}

func TestRenderSignatureHint(t *testing.T) {
	sig := eval.Signature{Name: "max", Params: []string{"x", "...y"}}

	for _, idx := range []int{0, 1, 5} {
		got := renderSignatureHint(sig, idx)

		for _, want := range []string{"max", "x", "...y"} {
			if !strings.Contains(got, want) {
				t.Errorf("renderSignatureHint(%d) = %q, missing %q", idx, got, want)
			}
		}
	}

	// The current parameter is rendered apart from its neighbors.
	if got := renderSignatureHint(sig, 1); !strings.Contains(got, currentParamStyle.Render("...y")) {
		t.Errorf("renderSignatureHint(1) = %q, want ...y highlighted", got)
	}
}
