package cmd

import (
	"errors"
	"testing"

	"github.com/ardnew/scenic/eval"
	"github.com/ardnew/scenic/param"
)

func TestEvalRun(t *testing.T) {
	source := writeFile(t, t.TempDir(), "scenario.xosc", scenarioXML)

	tests := []struct {
		name    string
		eval    Eval
		want    string
		wantErr error
	}{
		{
			name: "literal",
			eval: Eval{Expr: "2 + 3 * 4"},
			want: "14\n",
		},
		{
			name: "defined parameters",
			eval: Eval{Params: map[string]string{"A": "2", "B": "5"}, Expr: "$A * ${B}"},
			want: "10\n",
		},
		{
			name: "source declarations",
			eval: Eval{Source: source, Expr: "$Offset + 1"},
			want: "16\n",
		},
		{
			name: "source override",
			eval: Eval{Source: source, Params: map[string]string{"EgoSpeed": "10"}, Expr: "$Offset"},
			want: "5\n",
		},
		{
			name: "function",
			eval: Eval{Source: source, Expr: "max(sqrt(16), $EgoSpeed)"},
			want: "30\n",
		},
		{
			name:    "unknown parameter",
			eval:    Eval{Source: source, Expr: "$Ofset"},
			wantErr: eval.ErrUnknownParameter,
		},
		{
			name:    "undeclared override",
			eval:    Eval{Source: source, Params: map[string]string{"Nope": "1"}, Expr: "1"},
			wantErr: param.ErrUndeclaredParameter,
		},
		{
			name:    "syntax",
			eval:    Eval{Expr: "1 +"},
			wantErr: eval.ErrSyntax,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, buf := outputContext(t)

			err := tt.eval.Run(ctx)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Eval.Run() error = %v, want %v", err, tt.wantErr)
			}

			if got := buf.String(); got != tt.want {
				t.Errorf("Eval.Run() output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEvalSeedScope(t *testing.T) {
	source := writeFile(t, t.TempDir(), "scenario.xosc", scenarioXML)

	for _, e := range []Eval{
		{Params: map[string]string{"A": "2"}},
		{Source: source, Params: map[string]string{"EgoSpeed": "10"}},
	} {
		params := param.New()
		frame := params.Push()

		if err := e.seed(params); err != nil {
			t.Fatalf("seed() error: %v", err)
		}

		if got := params.Depth(); got != 1 {
			t.Errorf("Depth() after seed = %d, want 1", got)
		}

		frame.Release()

		if got := params.Depth(); got != 0 {
			t.Errorf("Depth() after Release = %d, want 0", got)
		}

		if names := params.Names(); len(names) != 0 {
			t.Errorf("Names() after Release = %v, want none", names)
		}
	}
}
