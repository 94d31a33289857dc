package eval

import "github.com/ardnew/scenic/pkg"

// Sentinel errors returned by [Evaluate].
var (
	ErrUnknownParameter = pkg.NewError("unknown parameter")
	ErrDivisionByZero   = pkg.NewError("division by zero")
	ErrSyntax           = pkg.NewError("syntax error")
	ErrNotFinite        = pkg.NewError("result is not a finite number")
	ErrResultType       = pkg.NewError("unsupported result type")
)
