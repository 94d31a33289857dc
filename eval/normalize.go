package eval

import (
	"log/slog"
	"strings"
	"unicode/utf8"
)

// source is an expression with parameter delimiters removed. pos maps each
// rune of text to the byte offset of the rune in the original input that
// produced it; the extra final entry maps end of input.
type source struct {
	orig string
	text string
	pos  []int
}

// offset converts a rune offset into text to a byte offset into orig.
func (s source) offset(r int) int {
	switch {
	case r < 0:
		return 0
	case r >= len(s.pos):
		return len(s.orig)
	default:
		return s.pos[r]
	}
}

// IsIdentifier reports whether s is a bare parameter name.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if !isIdentRune(r, i == 0) {
			return false
		}
	}

	return true
}

// IsExpression reports whether a raw parameter reference needs evaluation,
// i.e. it is not a bare parameter name.
func IsExpression(raw string) bool {
	return !IsIdentifier(strings.TrimSpace(raw))
}

func isIdentRune(r rune, first bool) bool {
	switch {
	case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return !first
	default:
		return false
	}
}

// normalize strips "$" and "${...}" delimiters so the text can be parsed as a
// plain expression. "${Name}" and "$Name" both become "Name"; braces around
// anything other than a single name become parentheses. Quoted strings are
// copied unchanged.
func normalize(expr string) (source, error) {
	var (
		sb  strings.Builder
		pos = make([]int, 0, len(expr)+1)
	)

	emit := func(s string, at int) {
		for range utf8.RuneCountInString(s) {
			pos = append(pos, at)
		}

		sb.WriteString(s)
	}

	for i := 0; i < len(expr); {
		r, size := utf8.DecodeRuneInString(expr[i:])

		switch {
		case r == '"' || r == '\'' || r == '`':
			end := skipQuoted(expr, i)
			for j := i; j < end; {
				_, n := utf8.DecodeRuneInString(expr[j:])
				emit(expr[j:j+n], j)
				j += n
			}

			i = end

		case r == '$' && strings.HasPrefix(expr[i:], "${"):
			end := strings.IndexByte(expr[i+2:], '}')
			if end < 0 {
				return source{}, ErrSyntax.With(
					slog.String("expression", expr),
					slog.Int("position", i),
					slog.String("reason", "unterminated ${"),
				)
			}

			inner := expr[i+2 : i+2+end]
			trim := strings.TrimSpace(inner)

			if trim == "" {
				return source{}, ErrSyntax.With(
					slog.String("expression", expr),
					slog.Int("position", i),
					slog.String("reason", "empty ${}"),
				)
			}

			if IsIdentifier(trim) {
				emit(trim, i+2+strings.Index(inner, trim))
			} else {
				emit("(", i)

				for j := 0; j < len(inner); {
					_, n := utf8.DecodeRuneInString(inner[j:])
					emit(inner[j:j+n], i+2+j)
					j += n
				}

				emit(")", i+2+end)
			}

			i += end + 3

		case r == '$' && i+1 < len(expr) && isIdentRune(rune(expr[i+1]), true):
			i += size

		default:
			emit(expr[i:i+size], i)
			i += size
		}
	}

	pos = append(pos, len(expr))

	return source{orig: expr, text: sb.String(), pos: pos}, nil
}

// skipQuoted returns the byte offset just past the quoted string starting at
// expr[start], or len(expr) when the quote is never closed.
func skipQuoted(expr string, start int) int {
	quote := expr[start]

	for i := start + 1; i < len(expr); i++ {
		switch expr[i] {
		case '\\':
			if quote != '`' {
				i++
			}

		case quote:
			return i + 1
		}
	}

	return len(expr)
}
