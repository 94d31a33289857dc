package repl

import (
	"strings"
	"unicode/utf8"

	"github.com/ardnew/scenic/eval"
)

// functionCall describes the function call enclosing the cursor.
type functionCall struct {
	name     string // function name before the open parenthesis
	argIndex int    // current argument index, 0-based
	inCall   bool   // cursor is inside the argument list
}

// detectFunctionCall reports the innermost unclosed function call before
// cursor and which of its arguments the cursor is in.
func detectFunctionCall(input string, cursor int) functionCall {
	cursor = min(cursor, len(input))

	open := -1
	depth := 0

	for i := cursor; i > 0 && open < 0; {
		r, size := utf8.DecodeLastRuneInString(input[:i])
		i -= size

		switch r {
		case ')':
			depth++
		case '(':
			if depth == 0 {
				open = i
			}

			depth--
		}
	}

	if open < 0 {
		return functionCall{}
	}

	start := open
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if r != '_' && !isAlnum(r) {
			break
		}

		start -= size
	}

	name := input[start:open]
	if name == "" {
		return functionCall{}
	}

	arg := 0
	depth = 0

	for _, r := range input[open+1 : cursor] {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				arg++
			}
		}
	}

	return functionCall{name: name, argIndex: arg, inCall: true}
}

func isAlnum(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}

// signatureOf returns the signature of the function named name.
func signatureOf(name string) (eval.Signature, bool) {
	for _, f := range eval.Functions() {
		if f.Name == name {
			return f, true
		}
	}

	return eval.Signature{}, false
}

// renderSignatureHint renders sig with the parameter at argIndex
// highlighted. A variadic parameter stays highlighted for every argument
// from its position on.
func renderSignatureHint(sig eval.Signature, argIndex int) string {
	var b strings.Builder

	b.WriteString(signatureNameStyle.Render(sig.Name))
	b.WriteString(signatureStyle.Render("("))

	for i, p := range sig.Params {
		if i > 0 {
			b.WriteString(signatureStyle.Render(", "))
		}

		variadic := strings.HasPrefix(p, "...")
		if argIndex == i || variadic && argIndex >= i {
			b.WriteString(currentParamStyle.Render(p))
		} else {
			b.WriteString(signatureStyle.Render(p))
		}
	}

	b.WriteString(signatureStyle.Render(")"))

	return b.String()
}
