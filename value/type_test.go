package value

import (
	"errors"
	"testing"
)

func TestParseType(t *testing.T) {
	for _, want := range Types() {
		got, err := ParseType(want.String())
		if err != nil || got != want {
			t.Errorf("ParseType(%q) = %v, %v", want.String(), got, err)
		}
	}

	if got, err := ParseType("UNSIGNEDSHORT"); err != nil || got != TypeUnsignedShort {
		t.Errorf("ParseType is case sensitive: %v, %v", got, err)
	}

	if _, err := ParseType("float"); !errors.Is(err, ErrInvalidType) {
		t.Errorf("error = %v, want %v", err, ErrInvalidType)
	}

	if TypeInvalid.Valid() || Type(42).Valid() {
		t.Error("invalid types reported valid")
	}

	if got := Type(42).String(); got != "Type(42)" {
		t.Errorf("String = %q", got)
	}
}

func TestType_Text(t *testing.T) {
	var typ Type
	if err := typ.UnmarshalText([]byte("dateTime")); err != nil || typ != TypeDateTime {
		t.Fatalf("UnmarshalText = %v, %v", typ, err)
	}

	text, err := typ.MarshalText()
	if err != nil || string(text) != "dateTime" {
		t.Errorf("MarshalText = %q, %v", text, err)
	}

	if _, err := TypeInvalid.MarshalText(); !errors.Is(err, ErrInvalidType) {
		t.Errorf("error = %v, want %v", err, ErrInvalidType)
	}
}

func TestType_Check(t *testing.T) {
	tests := []struct {
		typ Type
		raw string
		ok  bool
	}{
		{TypeDouble, "10.0", true},
		{TypeDouble, "-INF", true},
		{TypeDouble, "ten", false},
		{TypeInt, "-3", true},
		{TypeInt, "3.5", false},
		{TypeInt, "3000000000", false},
		{TypeUnsignedInt, "3000000000", true},
		{TypeUnsignedInt, "-1", false},
		{TypeUnsignedShort, "65535", true},
		{TypeUnsignedShort, "65536", false},
		{TypeBoolean, "true", true},
		{TypeBoolean, "0", true},
		{TypeBoolean, "yes", false},
		{TypeString, "", true},
		{TypeDateTime, "2024-05-01T12:00:00Z", true},
		{TypeDateTime, "yesterday", false},
	}

	for _, tt := range tests {
		err := tt.typ.Check(tt.raw)
		if (err == nil) != tt.ok {
			t.Errorf("%v.Check(%q) = %v, want ok=%v", tt.typ, tt.raw, err, tt.ok)
		}

		if err != nil && !errors.Is(err, ErrTypeConversion) {
			t.Errorf("%v.Check(%q) error = %v, want %v", tt.typ, tt.raw, err, ErrTypeConversion)
		}
	}
}

func TestType_Compare(t *testing.T) {
	tests := []struct {
		typ  Type
		a, b string
		want int
	}{
		{TypeDouble, "10.0", "9.5", 1},
		{TypeDouble, "10", "10.0", 0},
		{TypeInt, "-2", "3", -1},
		{TypeUnsignedShort, "7", "7", 0},
		{TypeBoolean, "false", "true", -1},
		{TypeString, "b", "a", 1},
		{TypeDateTime, "2024-05-01T12:00:00Z", "2024-05-01T13:00:00+01:00", 0},
	}

	for _, tt := range tests {
		got, err := tt.typ.Compare(tt.a, tt.b)
		if err != nil {
			t.Fatalf("%v.Compare(%q, %q) error: %v", tt.typ, tt.a, tt.b, err)
		}

		if got != tt.want {
			t.Errorf("%v.Compare(%q, %q) = %d, want %d", tt.typ, tt.a, tt.b, got, tt.want)
		}
	}

	if _, err := TypeInt.Compare("1", "x"); !errors.Is(err, ErrTypeConversion) {
		t.Errorf("error = %v, want %v", err, ErrTypeConversion)
	}
}
