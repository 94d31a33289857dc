package pkg

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
//
// Values returned by [NewError] are sentinels. Every copy derived from a
// sentinel with [Error.Wrap] or [Error.With] still matches it with
// [errors.Is], so callers can attach context freely without losing the
// ability to test for the error kind.
type Error struct {
	root  *Error      // Sentinel this error was derived from
	msg   string      // Base message
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new sentinel Error with a message.
func NewError(msg string) *Error {
	e := &Error{msg: msg}
	e.root = e

	return e
}

// WrapError wraps a standard error into an Error.
// If err already is (or wraps) an Error, that Error is returned.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil || e.root == nil {
		return false
	}

	return e.root == t.root
}

// Attrs returns a copy of the structured attributes attached to e.
func (e *Error) Attrs() []slog.Attr {
	return append([]slog.Attr(nil), e.attrs...)
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		root:  e.root,
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		root:  e.root,
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// AttrOf returns the value of the first attribute named key found anywhere in
// the error tree of err, searching outermost first.
func AttrOf(err error, key string) (slog.Value, bool) {
	if err == nil {
		return slog.Value{}, false
	}

	if e, ok := err.(*Error); ok {
		for _, a := range e.attrs {
			if a.Key == key {
				return a.Value, true
			}
		}
	}

	switch u := err.(type) {
	case interface{ Unwrap() []error }:
		for _, inner := range u.Unwrap() {
			if v, ok := AttrOf(inner, key); ok {
				return v, true
			}
		}

	case interface{ Unwrap() error }:
		return AttrOf(u.Unwrap(), key)
	}

	return slog.Value{}, false
}

// Errors collects independent failures so that a single pass can report all
// of them. The zero value is ready to use.
type Errors []error

// Append adds every non-nil error to the receiver. Nested [Errors] are
// flattened.
func (e *Errors) Append(errs ...error) {
	for _, err := range errs {
		if err == nil {
			continue
		}

		if nested, ok := err.(Errors); ok {
			*e = append(*e, nested...)

			continue
		}

		*e = append(*e, err)
	}
}

// Err returns nil when nothing was collected and the receiver otherwise.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}

	return e
}

// Error returns every collected error on its own line.
func (e Errors) Error() string {
	var sb strings.Builder

	for i, err := range e {
		if i > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteString(err.Error())
	}

	return sb.String()
}

// Unwrap returns the collected errors for errors.Is/As.
func (e Errors) Unwrap() []error { return e }

// LogValue implements slog.LogValuer.
func (e Errors) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e)+1)
	attrs = append(attrs, slog.Int("count", len(e)))

	for i, err := range e {
		attrs = append(attrs, slog.Any(strconv.Itoa(i), err))
	}

	return slog.GroupValue(attrs...)
}
