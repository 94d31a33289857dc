package repl

import "github.com/ardnew/scenic/pkg"

// Sentinel errors.
var (
	ErrOutOfBounds  = pkg.NewError("history index out of range")
	ErrEditDeclined = pkg.NewError("edit declined")
	ErrUsage        = pkg.NewError("usage")
	ErrName         = pkg.NewError("invalid parameter name")
)
