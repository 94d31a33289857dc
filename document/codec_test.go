package document

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecode_XML(t *testing.T) {
	got, err := Decode(strings.NewReader(sampleXML), FormatXML)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	if diff := cmp.Diff(sampleFile(), got, docOptions); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, f := range Formats() {
		t.Run(string(f), func(t *testing.T) {
			want := sampleFile()

			data, err := Marshal(f, want)
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}

			got, err := Unmarshal(data, f)
			if err != nil {
				t.Fatalf("Unmarshal() error: %v\n%s", err, data)
			}

			if diff := cmp.Diff(want, got, docOptions); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s\n%s", diff, data)
			}
		})
	}
}

func TestEncode_XMLOmitsAbsent(t *testing.T) {
	data, err := Marshal(FormatXML, sampleFile())
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	for _, absent := range []string{`mass=`, `date=`, `z=`, `RoadNetwork`} {
		if strings.Contains(string(data), absent) {
			t.Errorf("encoded document contains %q:\n%s", absent, data)
		}
	}

	for _, present := range []string{`y="$Offset"`, `value="${EgoSpeed + 5}"`, `<AddValue value="1.5">`} {
		if !strings.Contains(string(data), present) {
			t.Errorf("encoded document lacks %q:\n%s", present, data)
		}
	}
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want Format
		err  error
	}{
		{"a.xosc", FormatXML, nil},
		{"dir/b.XML", FormatXML, nil},
		{"c.yaml", FormatYAML, nil},
		{"c.yml", FormatYAML, nil},
		{"d.json", "", ErrUnsupportedFormat},
		{"noext", "", ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		got, err := FormatOf(tt.path)
		if !errors.Is(err, tt.err) {
			t.Errorf("FormatOf(%q) error = %v, want %v", tt.path, err, tt.err)
		}

		if got != tt.want {
			t.Errorf("FormatOf(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("YAML"); err != nil || f != FormatYAML {
		t.Errorf("ParseFormat(YAML) = %q, %v", f, err)
	}

	if _, err := ParseFormat("toml"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("ParseFormat(toml) error = %v, want %v", err, ErrUnsupportedFormat)
	}
}

func TestReadWriteFile(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"scenario.xosc", "scenario.yaml"} {
		path := filepath.Join(dir, name)

		if err := WriteFile(path, sampleFile()); err != nil {
			t.Fatalf("WriteFile(%s) error: %v", name, err)
		}

		got, err := ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile(%s) error: %v", name, err)
		}

		if diff := cmp.Diff(sampleFile(), got, docOptions); diff != "" {
			t.Errorf("ReadFile(%s) mismatch (-want +got):\n%s", name, diff)
		}
	}

	if _, err := ReadFile(filepath.Join(dir, "missing.xosc")); err == nil {
		t.Error("ReadFile(missing) succeeded")
	}
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode(strings.NewReader("<OpenSCENARIO><FileHeader"), FormatXML)
	if !errors.Is(err, ErrDecode) {
		t.Errorf("Decode() error = %v, want %v", err, ErrDecode)
	}
}
