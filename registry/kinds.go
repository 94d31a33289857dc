package registry

import (
	"github.com/ardnew/scenic/document"
	"github.com/ardnew/scenic/value"
)

// Entity describes a scenario object or entity selection.
type Entity struct {
	// Kind is the element the entity is defined by, for example "Vehicle",
	// "CatalogReference" or "EntitySelection".
	Kind string
	Path string
}

// Parameter describes a declared parameter.
type Parameter struct {
	Type value.Type
	Path string
}

// Catalog describes a declared catalog location.
type Catalog struct {
	Category document.Category
	Dir      string
}

type (
	// Entities registers the entities of a document.
	Entities = Registry[Entity]
	// Parameters registers the parameters visible in one scope.
	Parameters = Registry[Parameter]
	// Catalogs registers the catalog categories with a declared location.
	Catalogs = Registry[Catalog]
)

// NewEntities returns an empty entity registry.
func NewEntities() *Entities { return Named[Entity]("entity") }

// NewParameters returns an empty root parameter registry.
func NewParameters() *Parameters { return Named[Parameter]("parameter") }

// NewCatalogs returns an empty catalog registry.
func NewCatalogs() *Catalogs { return Named[Catalog]("catalog") }
