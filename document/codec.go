package document

import (
	"bytes"
	"encoding/xml"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/scenic/pkg"
)

// Format is a document serialization.
type Format string

// Supported formats.
const (
	FormatXML  Format = "xml"
	FormatYAML Format = "yaml"
)

// Formats returns the supported formats.
func Formats() []Format { return []Format{FormatXML, FormatYAML} }

// Extensions returns the file extensions recognized for f.
func (f Format) Extensions() []string {
	switch f {
	case FormatXML:
		return []string{".xosc", ".xml"}
	case FormatYAML:
		return []string{".yaml", ".yml"}
	default:
		return nil
	}
}

// ParseFormat returns the format named s.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats() {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}

	return "", ErrUnsupportedFormat.With(slog.String("format", s))
}

// FormatOf returns the format of the file at path from its extension.
func FormatOf(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))

	for _, f := range Formats() {
		for _, e := range f.Extensions() {
			if ext == e {
				return f, nil
			}
		}
	}

	return "", ErrUnsupportedFormat.With(slog.String("path", path))
}

// IsDocument reports whether path has a recognized document extension.
func IsDocument(path string) bool {
	_, err := FormatOf(path)

	return err == nil
}

// Decode reads one document in format f from r.
func Decode(r io.Reader, f Format) (*File, error) {
	var doc File

	switch f {
	case FormatXML:
		if err := xml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, ErrDecode.Wrap(err).With(slog.String("format", string(f)))
		}

	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, ErrDecode.Wrap(err).With(slog.String("format", string(f)))
		}

	default:
		return nil, ErrUnsupportedFormat.With(slog.String("format", string(f)))
	}

	return &doc, nil
}

// Encode writes doc in format f to w.
func Encode(w io.Writer, f Format, doc *File) error {
	switch f {
	case FormatXML:
		if _, err := io.WriteString(w, xml.Header); err != nil {
			return ErrEncode.Wrap(err)
		}

		enc := xml.NewEncoder(w)
		enc.Indent("", "  ")

		if err := enc.Encode(doc); err != nil {
			return ErrEncode.Wrap(err).With(slog.String("format", string(f)))
		}

		if err := enc.Close(); err != nil {
			return ErrEncode.Wrap(err)
		}

		if _, err := io.WriteString(w, "\n"); err != nil {
			return ErrEncode.Wrap(err)
		}

		return nil

	case FormatYAML:
		enc := yaml.NewEncoder(w, yaml.Indent(2), yaml.IndentSequence(true))
		if err := enc.Encode(doc); err != nil {
			return ErrEncode.Wrap(err).With(slog.String("format", string(f)))
		}

		return enc.Close()

	default:
		return ErrUnsupportedFormat.With(slog.String("format", string(f)))
	}
}

// Marshal returns doc encoded in format f.
func Marshal(f Format, doc *File) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, f, doc); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Unmarshal decodes data in format f.
func Unmarshal(data []byte, f Format) (*File, error) {
	return Decode(bytes.NewReader(data), f)
}

// ReadFile decodes the file at path, choosing the format by extension.
func ReadFile(path string) (*File, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	doc, err := Decode(r, f)
	if err != nil {
		return nil, pkg.WrapError(err).With(slog.String("path", path))
	}

	return doc, nil
}

// WriteFile encodes doc to path, choosing the format by extension.
func WriteFile(path string, doc *File) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}

	data, err := Marshal(f, doc)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}
