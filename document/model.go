package document

import (
	"encoding/xml"
	"time"

	"github.com/ardnew/scenic/value"
)

// File is the root of a scenario or catalog document. A scenario file sets
// Entities and Storyboard; a catalog file sets Catalog.
type File struct {
	XMLName               xml.Name               `xml:"OpenSCENARIO"           yaml:"-"`
	FileHeader            FileHeader             `xml:"FileHeader"             yaml:"fileHeader"`
	ParameterDeclarations []ParameterDeclaration `xml:"ParameterDeclarations>ParameterDeclaration" yaml:"parameterDeclarations,omitempty" validate:"dive"`
	CatalogLocations      *CatalogLocations      `xml:"CatalogLocations,omitempty" yaml:"catalogLocations,omitempty"`
	RoadNetwork           *RoadNetwork           `xml:"RoadNetwork,omitempty"  yaml:"roadNetwork,omitempty"`
	Entities              *Entities              `xml:"Entities,omitempty"     yaml:"entities,omitempty"`
	Storyboard            *Storyboard            `xml:"Storyboard,omitempty"   yaml:"storyboard,omitempty"`
	Catalog               *Catalog               `xml:"Catalog,omitempty"      yaml:"catalog,omitempty"`
}

// Declarations implements [Declarer].
func (f *File) Declarations() []ParameterDeclaration { return f.ParameterDeclarations }

// SetDeclarations implements [Declarer].
func (f *File) SetDeclarations(d []ParameterDeclaration) { f.ParameterDeclarations = d }

// IsCatalog reports whether f is a catalog document.
func (f *File) IsCatalog() bool { return f.Catalog != nil }

// FileHeader describes the document.
type FileHeader struct {
	Author      value.Value[string]    `xml:"author,attr"      yaml:"author,omitempty"`
	Date        value.Value[time.Time] `xml:"date,attr"        yaml:"date,omitempty"`
	Description value.Value[string]    `xml:"description,attr" yaml:"description,omitempty"`
	RevMajor    value.Value[uint16]    `xml:"revMajor,attr"    yaml:"revMajor,omitempty"`
	RevMinor    value.Value[uint16]    `xml:"revMinor,attr"    yaml:"revMinor,omitempty"`
}

// ParameterDeclaration declares a typed parameter with a default value and
// optional constraints. The default may itself refer to parameters declared
// before it.
type ParameterDeclaration struct {
	Name             string                 `xml:"name,attr"          yaml:"name"          validate:"required"`
	ParameterType    value.Type             `xml:"parameterType,attr" yaml:"parameterType" validate:"required"`
	Value            string                 `xml:"value,attr"         yaml:"value"`
	ConstraintGroups []ValueConstraintGroup `xml:"ConstraintGroup"    yaml:"constraintGroups,omitempty" validate:"dive"`
}

// ValueConstraintGroup holds constraints that must all be satisfied.
type ValueConstraintGroup struct {
	Constraints []ValueConstraint `xml:"ValueConstraint" yaml:"constraints" validate:"min=1,dive"`
}

// ValueConstraint compares a parameter value with a reference value.
type ValueConstraint struct {
	Rule  Rule   `xml:"rule,attr"  yaml:"rule"  validate:"required"`
	Value string `xml:"value,attr" yaml:"value"`
}

// Declarer is implemented by nodes that declare parameters for their
// subtree.
type Declarer interface {
	Declarations() []ParameterDeclaration
	SetDeclarations([]ParameterDeclaration)
}

// CatalogLocations lists the directory searched for each catalog category.
type CatalogLocations struct {
	VehicleCatalog     *Location `xml:"VehicleCatalog,omitempty"     yaml:"vehicleCatalog,omitempty"`
	ControllerCatalog  *Location `xml:"ControllerCatalog,omitempty"  yaml:"controllerCatalog,omitempty"`
	PedestrianCatalog  *Location `xml:"PedestrianCatalog,omitempty"  yaml:"pedestrianCatalog,omitempty"`
	MiscObjectCatalog  *Location `xml:"MiscObjectCatalog,omitempty"  yaml:"miscObjectCatalog,omitempty"`
	EnvironmentCatalog *Location `xml:"EnvironmentCatalog,omitempty" yaml:"environmentCatalog,omitempty"`
	ManeuverCatalog    *Location `xml:"ManeuverCatalog,omitempty"    yaml:"maneuverCatalog,omitempty"`
	TrajectoryCatalog  *Location `xml:"TrajectoryCatalog,omitempty"  yaml:"trajectoryCatalog,omitempty"`
	RouteCatalog       *Location `xml:"RouteCatalog,omitempty"       yaml:"routeCatalog,omitempty"`
}

// Location is a catalog directory.
type Location struct {
	Directory Directory `xml:"Directory" yaml:"directory"`
}

// Directory is a filesystem path, relative to the referencing document.
type Directory struct {
	Path value.Value[string] `xml:"path,attr" yaml:"path" validate:"required"`
}

func (l *CatalogLocations) slot(c Category) **Location {
	switch c {
	case CategoryVehicle:
		return &l.VehicleCatalog
	case CategoryController:
		return &l.ControllerCatalog
	case CategoryPedestrian:
		return &l.PedestrianCatalog
	case CategoryMiscObject:
		return &l.MiscObjectCatalog
	case CategoryEnvironment:
		return &l.EnvironmentCatalog
	case CategoryManeuver:
		return &l.ManeuverCatalog
	case CategoryTrajectory:
		return &l.TrajectoryCatalog
	case CategoryRoute:
		return &l.RouteCatalog
	default:
		return nil
	}
}

// Get returns the location declared for c, or nil.
func (l *CatalogLocations) Get(c Category) *Location {
	if l == nil {
		return nil
	}

	if p := l.slot(c); p != nil {
		return *p
	}

	return nil
}

// Set declares the directory for c.
func (l *CatalogLocations) Set(c Category, dir string) {
	if p := l.slot(c); p != nil {
		*p = &Location{Directory: Directory{Path: value.Literal(dir)}}
	}
}

// Declared returns the categories with a declared location.
func (l *CatalogLocations) Declared() []Category {
	var out []Category

	for _, c := range Categories() {
		if l.Get(c) != nil {
			out = append(out, c)
		}
	}

	return out
}

// RoadNetwork references the road description files.
type RoadNetwork struct {
	LogicFile      *FilePath `xml:"LogicFile,omitempty"      yaml:"logicFile,omitempty"`
	SceneGraphFile *FilePath `xml:"SceneGraphFile,omitempty" yaml:"sceneGraphFile,omitempty"`
}

// FilePath is a reference to an external file.
type FilePath struct {
	Filepath value.Value[string] `xml:"filepath,attr" yaml:"filepath" validate:"required"`
}

// Catalog is a named library of reusable entries of one category.
type Catalog struct {
	Name    string         `xml:"name,attr" yaml:"name"    validate:"required"`
	Entries CatalogEntries `xml:",any"      yaml:"entries" validate:"dive"`
}

// CatalogEntries is the ordered entry list of a catalog.
type CatalogEntries = Seq[CatalogEntry, catalogEntryKinds]

// Category returns the category shared by every entry, or
// [CategoryUnknown] when the catalog is empty or mixes categories.
func (c *Catalog) Category() Category {
	cat := CategoryUnknown

	for i, e := range c.Entries {
		switch {
		case i == 0:
			cat = e.Category()
		case e.Category() != cat:
			return CategoryUnknown
		}
	}

	return cat
}

// Entry returns the entry named name.
func (c *Catalog) Entry(name string) (CatalogEntry, bool) {
	for _, e := range c.Entries {
		if e.EntryName() == name {
			return e, true
		}
	}

	return nil, false
}

// Names returns the entry names in document order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		out[i] = e.EntryName()
	}

	return out
}

// CatalogEntry is a reusable definition held by a catalog.
type CatalogEntry interface {
	Variant
	Declarer
	EntryName() string
	Category() Category
}

// CatalogReference refers to a named entry of a named catalog. Each
// assignment overrides one of the entry's declared parameters.
type CatalogReference struct {
	CatalogName          value.Value[string]   `xml:"catalogName,attr" yaml:"catalogName" validate:"required"`
	EntryName            value.Value[string]   `xml:"entryName,attr"   yaml:"entryName"   validate:"required"`
	ParameterAssignments []ParameterAssignment `xml:"ParameterAssignments>ParameterAssignment" yaml:"parameterAssignments,omitempty" validate:"dive"`
}

// ParameterAssignment sets a parameter of a referenced catalog entry. Value
// is resolved against the referencing document.
type ParameterAssignment struct {
	ParameterRef string              `xml:"parameterRef,attr" yaml:"parameterRef" validate:"required"`
	Value        value.Value[string] `xml:"value,attr"        yaml:"value"        validate:"required"`
}

// Tag implements [Variant].
func (*CatalogReference) Tag() string { return "CatalogReference" }

func (*CatalogReference) isEntityObject() {}
func (*CatalogReference) isControllerObject() {}
func (*CatalogReference) isEnvironmentObject() {}
