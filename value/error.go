package value

import (
	"github.com/ardnew/scenic/eval"
	"github.com/ardnew/scenic/pkg"
)

// Sentinel errors returned while decoding or resolving values.
var (
	// ErrUnknownParameter is shared with package eval so a missing name
	// matches the same sentinel whether or not an expression was involved.
	ErrUnknownParameter = eval.ErrUnknownParameter

	ErrTypeConversion     = pkg.NewError("type conversion failed")
	ErrMalformedReference = pkg.NewError("malformed parameter reference")
	ErrAbsent             = pkg.NewError("value is absent")
	ErrInvalidType        = pkg.NewError("invalid parameter type")
)
