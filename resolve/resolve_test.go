package resolve

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/scenic/catalog"
	"github.com/ardnew/scenic/document"
	"github.com/ardnew/scenic/param"
	"github.com/ardnew/scenic/pkg"
	"github.com/ardnew/scenic/value"
)

const scenario = `<?xml version="1.0" encoding="UTF-8"?>
<OpenSCENARIO>
  <FileHeader author="tester" revMajor="1" revMinor="3"/>
  <ParameterDeclarations>
    <ParameterDeclaration name="EgoSpeed" parameterType="double" value="30"/>
    <ParameterDeclaration name="VehicleDir" parameterType="string" value="catalogs/vehicles"/>
  </ParameterDeclarations>
  <CatalogLocations>
    <VehicleCatalog>
      <Directory path="$VehicleDir"/>
    </VehicleCatalog>
    <ControllerCatalog>
      <Directory path="catalogs/controllers"/>
    </ControllerCatalog>
    <ManeuverCatalog>
      <Directory path="catalogs/maneuvers"/>
    </ManeuverCatalog>
  </CatalogLocations>
  <Entities>
    <ScenarioObject name="Ego">
      <CatalogReference catalogName="VehicleCatalog" entryName="car">
        <ParameterAssignments>
          <ParameterAssignment parameterRef="MaxSpeed" value="${EgoSpeed + 5}"/>
        </ParameterAssignments>
      </CatalogReference>
      <ObjectController>
        <CatalogReference catalogName="ControllerCatalog" entryName="driver"/>
      </ObjectController>
    </ScenarioObject>
  </Entities>
  <Storyboard>
    <Init>
      <Actions>
        <Private entityRef="Ego">
          <PrivateAction>
            <TeleportAction>
              <Position>
                <WorldPosition x="0" y="$EgoSpeed"/>
              </Position>
            </TeleportAction>
          </PrivateAction>
        </Private>
      </Actions>
    </Init>
    <Story name="main">
      <Act name="act">
        <ManeuverGroup name="group" maximumExecutionCount="1">
          <Actors selectTriggeringEntities="false">
            <EntityRef entityRef="Ego"/>
          </Actors>
          <CatalogReference catalogName="ManeuverCatalog" entryName="brake">
            <ParameterAssignments>
              <ParameterAssignment parameterRef="Decel" value="$EgoSpeed"/>
            </ParameterAssignments>
          </CatalogReference>
        </ManeuverGroup>
      </Act>
    </Story>
  </Storyboard>
</OpenSCENARIO>
`

const vehicleCatalog = `<?xml version="1.0" encoding="UTF-8"?>
<OpenSCENARIO>
  <FileHeader author="tester" revMajor="1" revMinor="3"/>
  <Catalog name="VehicleCatalog">
    <Vehicle name="car" vehicleCategory="car">
      <ParameterDeclarations>
        <ParameterDeclaration name="MaxSpeed" parameterType="double" value="50"/>
      </ParameterDeclarations>
      <Performance maxSpeed="$MaxSpeed" maxAcceleration="${MaxSpeed / 10}" maxDeceleration="9"/>
    </Vehicle>
  </Catalog>
</OpenSCENARIO>
`

const controllerCatalog = `fileHeader:
  author: tester
catalog:
  name: ControllerCatalog
  entries:
    - Controller:
        name: driver
        parameterDeclarations:
          - name: Aggression
            parameterType: double
            value: "0.5"
        properties:
          properties:
            - name: aggression
              value: $Aggression
`

const maneuverCatalog = `<?xml version="1.0" encoding="UTF-8"?>
<OpenSCENARIO>
  <FileHeader author="tester" revMajor="1" revMinor="3"/>
  <Catalog name="ManeuverCatalog">
    <Maneuver name="brake">
      <ParameterDeclarations>
        <ParameterDeclaration name="Decel" parameterType="double" value="3"/>
      </ParameterDeclarations>
      <Event name="stop" priority="override">
        <Action name="slow">
          <PrivateAction>
            <LongitudinalAction>
              <SpeedAction>
                <SpeedActionDynamics dynamicsShape="step" value="$Decel" dynamicsDimension="time"/>
                <SpeedActionTarget>
                  <AbsoluteTargetSpeed value="0"/>
                </SpeedActionTarget>
              </SpeedAction>
            </LongitudinalAction>
          </PrivateAction>
        </Action>
      </Event>
    </Maneuver>
  </Catalog>
</OpenSCENARIO>
`

// workspace writes the scenario and its catalogs and returns the scenario
// path. The scenario text may be replaced.
func workspace(t *testing.T, scenarioText string) string {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"scenario.xosc":                               scenarioText,
		"catalogs/vehicles/VehicleCatalog.xosc":       vehicleCatalog,
		"catalogs/controllers/ControllerCatalog.yaml": controllerCatalog,
		"catalogs/maneuvers/ManeuverCatalog.xosc":     maneuverCatalog,
	}

	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}

		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	return filepath.Join(dir, "scenario.xosc")
}

func literal[T value.Scalar](t *testing.T, v value.Value[T]) T {
	t.Helper()

	lit, ok := v.AsLiteral()
	if !ok {
		t.Fatalf("value %v is not a literal", v)
	}

	return lit
}

func TestResolver_File(t *testing.T) {
	res, err := New(nil).File(t.Context(), workspace(t, scenario))
	if err != nil {
		t.Fatalf("File() error: %v", err)
	}

	want := []param.Binding{{Name: "EgoSpeed", Value: "30"}, {Name: "VehicleDir", Value: "catalogs/vehicles"}}
	if diff := cmp.Diff(want, res.Parameters); diff != "" {
		t.Errorf("parameters mismatch (-want +got):\n%s", diff)
	}

	ego := res.Document.Entities.ScenarioObjects[0]

	car, ok := ego.EntityObject.Value.(*document.Vehicle)
	if !ok {
		t.Fatalf("entity object = %T, want *document.Vehicle", ego.EntityObject.Value)
	}

	if got := literal(t, car.Performance.MaxSpeed); got != 35 {
		t.Errorf("MaxSpeed = %v, want 35", got)
	}

	if got := literal(t, car.Performance.MaxAcceleration); got != 3.5 {
		t.Errorf("MaxAcceleration = %v, want 3.5", got)
	}

	if got := car.ParameterDeclarations[0].Value; got != "35" {
		t.Errorf("declared MaxSpeed = %q, want 35", got)
	}

	driver, ok := ego.ObjectController.Controller.Value.(*document.Controller)
	if !ok {
		t.Fatalf("controller = %T, want *document.Controller", ego.ObjectController.Controller.Value)
	}

	if got := literal(t, driver.Properties.Properties[0].Value); got != "0.5" {
		t.Errorf("aggression = %q, want 0.5", got)
	}

	group := res.Document.Storyboard.Stories[0].Acts[0].ManeuverGroups[0]
	if len(group.CatalogReferences) != 0 || len(group.Maneuvers) != 1 || group.Maneuvers[0].Name != "brake" {
		t.Fatalf("maneuver group not inlined: %+v", group)
	}

	speed := group.Maneuvers[0].Events[0].Actions[0].Kind.Value.(*document.PrivateAction).
		Kind.Value.(*document.LongitudinalAction).
		Kind.Value.(*document.SpeedAction)
	if got := literal(t, speed.Dynamics.Value); got != 30 {
		t.Errorf("dynamics value = %v, want 30", got)
	}

	paths := make([]string, len(res.Catalogs))
	for i, p := range res.Catalogs {
		paths[i] = p.Path
	}

	wantPaths := []string{
		"Entities.ScenarioObjects[0].CatalogReference",
		"Entities.ScenarioObjects[0].ObjectController.CatalogReference",
		"Storyboard.Stories[0].Acts[0].ManeuverGroups[0].CatalogReferences[0]",
	}
	if diff := cmp.Diff(wantPaths, paths); diff != "" {
		t.Errorf("provenance mismatch (-want +got):\n%s", diff)
	}

	if res.Catalogs[2].Category != document.CategoryManeuver {
		t.Errorf("category = %v, want maneuver", res.Catalogs[2].Category)
	}
}

func TestResolver_LiteralOnly(t *testing.T) {
	res, err := New(nil).File(t.Context(), workspace(t, scenario))
	if err != nil {
		t.Fatal(err)
	}

	var params []string

	err = document.Walk(res.Document, document.VisitorFuncs{
		FieldFunc: func(path string, f value.Field) (value.Field, error) {
			if f.IsParameter() {
				params = append(params, path)
			}

			return nil, nil
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(params) > 0 {
		t.Errorf("parameter references left at %v", params)
	}
}

func TestResolver_Overrides(t *testing.T) {
	r := New(nil, WithOverrides(map[string]string{"EgoSpeed": "40"}))

	res, err := r.File(t.Context(), workspace(t, scenario))
	if err != nil {
		t.Fatal(err)
	}

	car := res.Document.Entities.ScenarioObjects[0].EntityObject.Value.(*document.Vehicle)
	if got := literal(t, car.Performance.MaxSpeed); got != 45 {
		t.Errorf("MaxSpeed = %v, want 45", got)
	}

	if _, err := New(nil, WithOverrides(map[string]string{"EgoSpeed": "fast"})).
		File(t.Context(), workspace(t, scenario)); !errors.Is(err, ErrResolve) {
		t.Errorf("File() error = %v, want %v", err, ErrResolve)
	}
}

func TestResolver_SharedCache(t *testing.T) {
	r := New(catalog.NewCache())
	path := workspace(t, scenario)

	for range 2 {
		if _, err := r.File(t.Context(), path); err != nil {
			t.Fatal(err)
		}
	}

	if n := r.Cache().Parses(); n != 3 {
		t.Errorf("Parses() = %d, want 3", n)
	}
}

func TestResolver_Document(t *testing.T) {
	path := workspace(t, scenario)
	t.Chdir(filepath.Dir(path))

	doc, err := document.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	before := document.Clone(doc)
	r := New(nil)

	first, err := r.Document(t.Context(), doc)
	if err != nil {
		t.Fatalf("Document() error: %v", err)
	}

	if diff := cmp.Diff(before, doc); diff != "" {
		t.Errorf("input modified (-before +after):\n%s", diff)
	}

	second, err := r.Document(t.Context(), first.Document)
	if err != nil {
		t.Fatalf("second Document() error: %v", err)
	}

	if diff := cmp.Diff(first.Document, second.Document); diff != "" {
		t.Errorf("resolution is not idempotent (-first +second):\n%s", diff)
	}

	if len(second.Catalogs) != 0 {
		t.Errorf("second resolution inlined %d references", len(second.Catalogs))
	}
}

func TestResolver_Errors(t *testing.T) {
	broken := scenario
	for _, r := range [][2]string{
		{`entryName="car"`, `entryName="cra"`},
		{`y="$EgoSpeed"`, `y="$Missing"`},
	} {
		broken = replaceOnce(t, broken, r[0], r[1])
	}

	res, err := New(nil).File(t.Context(), workspace(t, broken))
	if res != nil {
		t.Error("File() returned a result on failure")
	}

	var errs pkg.Errors
	if !errors.As(err, &errs) || len(errs) != 2 {
		t.Fatalf("File() error = %v, want 2 collected errors", err)
	}

	for _, want := range []error{catalog.ErrEntryNotFound, value.ErrUnknownParameter} {
		if !errors.Is(err, want) {
			t.Errorf("error does not match %v", want)
		}
	}

	v, _ := pkg.AttrOf(errs[1], "path")
	if got := v.String(); got != "Storyboard.Init.Actions.Actions[0].PrivateActions[0].TeleportAction.Position.WorldPosition.Y" {
		t.Errorf("path = %q", got)
	}
}

func replaceOnce(t *testing.T, s, old, repl string) string {
	t.Helper()

	if !strings.Contains(s, old) {
		t.Fatalf("fixture has no %q", old)
	}

	return strings.Replace(s, old, repl, 1)
}
