package resolve

import "github.com/ardnew/scenic/pkg"

// ErrResolve wraps each failure collected while resolving a document.
var ErrResolve = pkg.NewError("cannot resolve document")
