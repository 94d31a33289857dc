package eval

import (
	"errors"
	"slices"
	"testing"

	"github.com/ardnew/scenic/pkg"
)

func TestEvaluate(t *testing.T) {
	params := MapLookup{
		"Speed": "30",
		"Time":  "5",
		"A":     "10.0",
		"B":     "true",
		"Two":   "2",
		"Name":  "ego",
		"Neg":   "-4",
	}

	tests := []struct {
		name string
		expr string
		want string
	}{
		{"precedence", "2 + 3 * 4", "14"},
		{"parentheses", "(2 + 3) * 4", "20"},
		{"left associative", "10 - 4 - 3", "3"},
		{"braced parameters", "${Speed} * ${Time}", "150"},
		{"dollar parameters", "$Speed * 2", "60"},
		{"bare parameters", "Speed + Time", "35"},
		{"braced expression", "${Speed * 2}", "60"},
		{"float parameter", "${A} + 1", "11"},
		{"division yields float", "10 / 4", "2.5"},
		{"repeating fraction", "1 / 3", "0.3333333333333333"},
		{"integral division", "${Speed} / ${Time}", "6"},
		{"modulo", "7 % 3", "1"},
		{"negative literal", "-0.125", "-0.125"},
		{"negative parameter", "${Neg} * 2", "-8"},
		{"sqrt", "sqrt(16)", "4"},
		{"sin", "sin(0)", "0"},
		{"cos", "cos(0)", "1"},
		{"abs", "abs(${Neg})", "4"},
		{"floor", "floor(2.7)", "2"},
		{"ceil", "ceil(2.1)", "3"},
		{"pi", "floor(pi * 100)", "314"},
		{"e", "e > 2.7 && e < 2.8", "true"},
		{"comparison", "${Speed} > 20", "true"},
		{"equality", "${Two} == 2", "true"},
		{"inequality", "${Two} != 2", "false"},
		{"logical parameter", "$B && ${Speed} >= 30", "true"},
		{"logical words", "not ($Two == 2) or false", "false"},
		{"negation", "!$B", "false"},
		{"string comparison", `$Name == "ego"`, "true"},
		{"quoted dollar untouched", `"$Speed"`, "$Speed"},
		{"single parameter", "${Name}", "ego"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.expr, params)
			if err != nil {
				t.Fatalf("Evaluate(%q) error: %v", tt.expr, err)
			}

			if got != tt.want {
				t.Errorf("Evaluate(%q) = %q, want %q", tt.expr, got, tt.want)
			}
		})
	}
}

func TestEvaluate_DivisionByZero(t *testing.T) {
	params := MapLookup{"Speed": "10", "Zero": "0.0"}

	for _, expr := range []string{
		"${Speed} / 0",
		"${Speed} / ${Zero}",
		"${Speed} % 0",
		"1.5 % ${Zero}",
		"1 + (2 / (Speed - 10))",
	} {
		t.Run(expr, func(t *testing.T) {
			_, err := Evaluate(expr, params)
			if !errors.Is(err, ErrDivisionByZero) {
				t.Errorf("Evaluate(%q) error = %v, want %v", expr, err, ErrDivisionByZero)
			}
		})
	}
}

func TestEvaluate_UnknownParameter(t *testing.T) {
	params := MapLookup{"ego": "1", "target": "2"}

	_, err := Evaluate("${eg0} + 1", params)
	if !errors.Is(err, ErrUnknownParameter) {
		t.Fatalf("error = %v, want %v", err, ErrUnknownParameter)
	}

	name, ok := pkg.AttrOf(err, "name")
	if !ok || name.String() != "eg0" {
		t.Errorf("name attr = %v, want eg0", name)
	}

	sugg, ok := pkg.AttrOf(err, "suggestions")
	if !ok {
		t.Fatal("missing suggestions attr")
	}

	names, _ := sugg.Any().([]string)
	if len(names) == 0 || names[0] != "ego" {
		t.Errorf("suggestions = %v, want ego first", names)
	}
}

func TestEvaluate_NilLookup(t *testing.T) {
	got, err := Evaluate("1 + 1", nil)
	if err != nil || got != "2" {
		t.Errorf("Evaluate = %q, %v; want 2", got, err)
	}

	if _, err := Evaluate("X", nil); !errors.Is(err, ErrUnknownParameter) {
		t.Errorf("error = %v, want %v", err, ErrUnknownParameter)
	}
}

func TestEvaluate_NoRescan(t *testing.T) {
	// Values holding identifier or operator text are data, not code.
	params := MapLookup{
		"Inject": "Secret",
		"Sum":    "1 + 1",
		"Ref":    "${Inject}",
	}

	tests := []struct {
		expr string
		want string
	}{
		{"${Inject}", "Secret"},
		{"${Sum}", "1 + 1"},
		{"${Ref}", "${Inject}"},
		{`${Sum} == "1 + 1"`, "true"},
	}

	for _, tt := range tests {
		got, err := Evaluate(tt.expr, params)
		if err != nil {
			t.Fatalf("Evaluate(%q) error: %v", tt.expr, err)
		}

		if got != tt.want {
			t.Errorf("Evaluate(%q) = %q, want %q", tt.expr, got, tt.want)
		}
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	params := MapLookup{"Speed": "30", "Time": "5"}

	first, err := Evaluate("${Speed} * ${Time} / 7", params)
	if err != nil {
		t.Fatal(err)
	}

	second, err := Evaluate("${Speed} * ${Time} / 7", params)
	if err != nil {
		t.Fatal(err)
	}

	if first != second {
		t.Errorf("results differ: %q != %q", first, second)
	}

	if len(params) != 2 || params["Speed"] != "30" || params["Time"] != "5" {
		t.Errorf("lookup modified: %v", params)
	}
}

func TestEvaluate_Syntax(t *testing.T) {
	tests := []struct {
		name     string
		expr     string
		position int // -1 when only the bounds are checked
	}{
		{"unterminated brace", "1 + ${Speed", 4},
		{"empty brace", "${ } + 1", 0},
		{"dangling operator", "1 + * 2", -1},
		{"unbalanced parenthesis", "(1 + 2", -1},
		{"type mismatch", `1 + "a" * 2`, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.expr, MapLookup{"Speed": "1"})
			if !errors.Is(err, ErrSyntax) {
				t.Fatalf("error = %v, want %v", err, ErrSyntax)
			}

			v, ok := pkg.AttrOf(err, "position")
			if !ok {
				t.Fatal("missing position attr")
			}

			pos := int(v.Int64())
			if pos < 0 || pos > len(tt.expr) {
				t.Errorf("position %d out of range [0, %d]", pos, len(tt.expr))
			}

			if tt.position >= 0 && pos != tt.position {
				t.Errorf("position = %d, want %d", pos, tt.position)
			}
		})
	}
}

func TestEvaluate_IntegerOverflow(t *testing.T) {
	params := MapLookup{
		"Max": "9223372036854775807",
		"Min": "-9223372036854775808",
		"A":   "4611686018427387904",
		"B":   "4",
	}

	tests := []struct {
		expr string
		want string
	}{
		{"Max + 1", "9223372036854775808"},
		{"Min - 1", "-9223372036854775808"},
		{"A * B", "18446744073709551616"},
		{"Min * -1", "9223372036854775808"},
		{"Max - 1", "9223372036854775806"},
		{"A * 2 / 2", "4611686018427387904"},
		{"Max + 1 > 0", "true"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Evaluate(tt.expr, params)
			if err != nil {
				t.Fatalf("Evaluate(%q) error: %v", tt.expr, err)
			}

			if got != tt.want {
				t.Errorf("Evaluate(%q) = %q, want %q", tt.expr, got, tt.want)
			}
		})
	}
}

func TestEvaluate_Unsupported(t *testing.T) {
	params := MapLookup{"Name": "ego", "Flag": "true"}

	for _, expr := range []string{
		`len("abc")`,
		`upper("x")`,
		`"a" + "b"`,
		"$Name + 1",
		"$Flag * 2",
		"2 ** 3",
		"2 ^ 3",
		"1 in [1, 2]",
		"1..3",
	} {
		t.Run(expr, func(t *testing.T) {
			if got, err := Evaluate(expr, params); !errors.Is(err, ErrSyntax) {
				t.Errorf("Evaluate(%q) = %q, %v; want %v", expr, got, err, ErrSyntax)
			}
		})
	}
}

func TestReferences(t *testing.T) {
	tests := []struct {
		expr string
		want []string
	}{
		{"2 + 3", nil},
		{"${Speed} * ${Time}", []string{"Speed", "Time"}},
		{"sqrt($Time) + pi * Speed + Time", []string{"Time", "Speed"}},
		{"${Speed * e}", []string{"Speed"}},
		{`"$Quoted" == Name`, []string{"Name"}},
	}

	for _, tt := range tests {
		got, err := References(tt.expr)
		if err != nil {
			t.Fatalf("References(%q) error: %v", tt.expr, err)
		}

		if !slices.Equal(got, tt.want) {
			t.Errorf("References(%q) = %v, want %v", tt.expr, got, tt.want)
		}
	}

	if _, err := References("1 +"); !errors.Is(err, ErrSyntax) {
		t.Errorf("References error = %v, want %v", err, ErrSyntax)
	}
}

func TestIsExpression(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"Speed", false},
		{" Speed ", false},
		{"_x1", false},
		{"Speed*2", true},
		{"sqrt(Speed)", true},
		{"1Speed", true},
		{"", true},
	}

	for _, tt := range tests {
		if got := IsExpression(tt.raw); got != tt.want {
			t.Errorf("IsExpression(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestFunctions(t *testing.T) {
	args := map[int]string{1: "4", 2: "4, 9"}

	for _, sig := range Functions() {
		t.Run(sig.Name, func(t *testing.T) {
			call := sig.Name + "(" + args[len(sig.Params)] + ")"

			if _, err := Evaluate(call, nil); err != nil {
				t.Errorf("Evaluate(%q) error: %v", call, err)
			}
		})
	}

	if got := (Signature{"max", []string{"x", "...y"}}).String(); got != "max(x, ...y)" {
		t.Errorf("Signature.String() = %q", got)
	}

	for _, name := range Constants() {
		if _, err := Evaluate(name, nil); err != nil {
			t.Errorf("Evaluate(%q) error: %v", name, err)
		}
	}
}
