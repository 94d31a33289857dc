package catalog

import "github.com/ardnew/scenic/pkg"

// Sentinel errors returned while loading catalogs and resolving references.
var (
	ErrFileNotFound         = pkg.NewError("catalog file not found")
	ErrMalformedDocument    = pkg.NewError("malformed catalog document")
	ErrWrongCatalogCategory = pkg.NewError("wrong catalog category")
	ErrCatalogFileNotFound  = pkg.NewError("no file defines catalog")
	ErrEntryNotFound        = pkg.NewError("catalog entry not found")
	ErrAssignmentResolution = pkg.NewError("cannot resolve parameter assignment")
	ErrUnregisteredCategory = pkg.NewError("no catalog location declared for category")
	ErrInvalidReference     = pkg.NewError("invalid catalog reference")
)
