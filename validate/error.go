package validate

import (
	"github.com/ardnew/scenic/pkg"
	"github.com/ardnew/scenic/registry"
)

// Sentinel errors collected in a [Report].
var (
	ErrDuplicateEntity             = registry.ErrDuplicateEntity
	ErrUnknownEntityReference      = pkg.NewError("unknown entity reference")
	ErrUnknownParameterReference   = pkg.NewError("unknown parameter reference")
	ErrUnregisteredCatalogCategory = pkg.NewError("catalog category has no declared location")
	ErrSchema                      = pkg.NewError("schema violation")
	ErrInvalidDefault              = pkg.NewError("invalid parameter default")
)
