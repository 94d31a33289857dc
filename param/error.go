package param

import (
	"github.com/ardnew/scenic/pkg"
	"github.com/ardnew/scenic/value"
)

// Sentinel errors returned by [Context].
var (
	ErrNoScope             = pkg.NewError("no parameter scope")
	ErrDuplicateParameter  = pkg.NewError("duplicate parameter declaration")
	ErrUndeclaredParameter = pkg.NewError("assignment to undeclared parameter")
	ErrConstraintViolation = pkg.NewError("parameter value violates constraints")
	ErrInvalidDeclaration  = pkg.NewError("invalid parameter declaration")

	// ErrUnknownParameter is returned when a declared default refers to a
	// name that is not visible.
	ErrUnknownParameter = value.ErrUnknownParameter
)
