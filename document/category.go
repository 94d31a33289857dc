package document

import (
	"log/slog"
	"strings"
)

// Category is the kind of entry a catalog holds.
type Category uint8

// Catalog categories.
const (
	CategoryUnknown Category = iota
	CategoryVehicle
	CategoryController
	CategoryPedestrian
	CategoryMiscObject
	CategoryEnvironment
	CategoryManeuver
	CategoryTrajectory
	CategoryRoute
)

var categoryNames = [...]string{
	CategoryUnknown:     "unknown",
	CategoryVehicle:     "vehicle",
	CategoryController:  "controller",
	CategoryPedestrian:  "pedestrian",
	CategoryMiscObject:  "miscObject",
	CategoryEnvironment: "environment",
	CategoryManeuver:    "maneuver",
	CategoryTrajectory:  "trajectory",
	CategoryRoute:       "route",
}

// Categories returns every known category in declaration order.
func Categories() []Category {
	return []Category{
		CategoryVehicle, CategoryController, CategoryPedestrian,
		CategoryMiscObject, CategoryEnvironment, CategoryManeuver,
		CategoryTrajectory, CategoryRoute,
	}
}

// String returns the lower camel case name of c.
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}

	return categoryNames[CategoryUnknown]
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c > CategoryUnknown && c <= CategoryRoute
}

// Element returns the element name of the catalog location for c, for
// example "VehicleCatalog".
func (c Category) Element() string {
	s := c.String()

	return strings.ToUpper(s[:1]) + s[1:] + "Catalog"
}

// ParseCategory returns the category named s. It accepts the category name
// or its location element name in any case.
func ParseCategory(s string) (Category, error) {
	name := strings.TrimSuffix(strings.ToLower(s), "catalog")

	for _, c := range Categories() {
		if strings.EqualFold(name, c.String()) {
			return c, nil
		}
	}

	return CategoryUnknown, ErrUnknownCategory.With(slog.String("category", s))
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	v, err := ParseCategory(string(text))
	if err != nil {
		return err
	}

	*c = v

	return nil
}

// NewEntry returns a new zero catalog entry of category c, or nil when c is
// not valid.
func (c Category) NewEntry() CatalogEntry {
	for _, mk := range catalogEntryTable {
		if e := mk(); e.Category() == c {
			return e
		}
	}

	return nil
}

// ReferenceCategories returns the categories a catalog reference held by
// parent may refer to, or nil when parent does not hold catalog references.
func ReferenceCategories(parent any) []Category {
	switch parent.(type) {
	case *ScenarioObject:
		return []Category{CategoryVehicle, CategoryPedestrian, CategoryMiscObject}
	case *ObjectController, *AssignControllerAction:
		return []Category{CategoryController}
	case *EnvironmentAction:
		return []Category{CategoryEnvironment}
	case *ManeuverGroup:
		return []Category{CategoryManeuver}
	default:
		return nil
	}
}
