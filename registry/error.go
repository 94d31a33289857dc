package registry

import "github.com/ardnew/scenic/pkg"

// ErrDuplicateEntity is returned by [Registry.Add] when the name is already
// registered in the same scope.
var ErrDuplicateEntity = pkg.NewError("duplicate name")
