package document

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"vehicle", CategoryVehicle},
		{"VehicleCatalog", CategoryVehicle},
		{"MISCOBJECT", CategoryMiscObject},
		{"routeCatalog", CategoryRoute},
	}

	for _, tt := range tests {
		got, err := ParseCategory(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseCategory(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}

	if _, err := ParseCategory("boat"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("ParseCategory(boat) error = %v, want %v", err, ErrUnknownCategory)
	}
}

func TestCategory_Element(t *testing.T) {
	if got := CategoryMiscObject.Element(); got != "MiscObjectCatalog" {
		t.Errorf("Element() = %q", got)
	}
}

func TestCategory_NewEntry(t *testing.T) {
	for _, c := range Categories() {
		e := c.NewEntry()
		if e == nil || e.Category() != c {
			t.Errorf("%v.NewEntry() = %#v", c, e)
		}
	}

	if e := CategoryUnknown.NewEntry(); e != nil {
		t.Errorf("NewEntry() of unknown category = %#v", e)
	}
}

func TestReferenceCategories(t *testing.T) {
	tests := []struct {
		parent any
		want   []Category
	}{
		{&ScenarioObject{}, []Category{CategoryVehicle, CategoryPedestrian, CategoryMiscObject}},
		{&ObjectController{}, []Category{CategoryController}},
		{&AssignControllerAction{}, []Category{CategoryController}},
		{&EnvironmentAction{}, []Category{CategoryEnvironment}},
		{&ManeuverGroup{}, []Category{CategoryManeuver}},
		{&Event{}, nil},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, ReferenceCategories(tt.parent)); diff != "" {
			t.Errorf("ReferenceCategories(%T) mismatch (-want +got):\n%s", tt.parent, diff)
		}
	}
}
