package document

import (
	"errors"
	"slices"
	"testing"

	"github.com/ardnew/scenic/eval"
	"github.com/ardnew/scenic/value"
)

func TestWalk_Paths(t *testing.T) {
	var params []string

	v := VisitorFuncs{
		FieldFunc: func(path string, f value.Field) (value.Field, error) {
			if f.IsParameter() {
				params = append(params, path+"="+f.String())
			}

			return nil, nil
		},
	}

	if err := Walk(sampleFile(), v); err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	want := []string{
		"Entities.ScenarioObjects[0].CatalogReference.ParameterAssignments[0].Value=$EgoSpeed",
		"Storyboard.Init.Actions.Actions[1].PrivateActions[0].TeleportAction.Position.WorldPosition.Y=$Offset",
		"Storyboard.Stories[0].Acts[0].ManeuverGroups[0].Maneuvers[0].Events[0].Actions[0]" +
			".PrivateAction.LongitudinalAction.SpeedAction.Target.AbsoluteTargetSpeed.Value=${EgoSpeed + 5}",
	}

	if !slices.Equal(params, want) {
		t.Errorf("parameter fields =\n%q\nwant\n%q", params, want)
	}
}

func TestWalk_Replace(t *testing.T) {
	doc := sampleFile()
	lookup := eval.MapLookup{"EgoSpeed": "30", "Offset": "15"}

	err := Walk(doc, VisitorFuncs{
		FieldFunc: func(_ string, f value.Field) (value.Field, error) {
			return f.Literalize(lookup)
		},
	})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	private := doc.Storyboard.Init.Actions.Actions[1].(*Private)
	pos := private.PrivateActions[0].Kind.Value.(*TeleportAction).Position.Kind.Value.(*WorldPosition)

	if y, ok := pos.Y.AsLiteral(); !ok || y != 15 {
		t.Errorf("Y = %v, want literal 15", pos.Y)
	}

	speed := doc.Storyboard.Stories[0].Acts[0].ManeuverGroups[0].Maneuvers[0].
		Events[0].Actions[0].Kind.Value.(*PrivateAction).Kind.Value.(*LongitudinalAction).
		Kind.Value.(*SpeedAction).Target.Kind.Value.(*AbsoluteTargetSpeed)

	if v, ok := speed.Value.AsLiteral(); !ok || v != 35 {
		t.Errorf("target speed = %v, want literal 35", speed.Value)
	}
}

func TestWalk_EnterLeave(t *testing.T) {
	var (
		depth    int
		maxDepth int
		declarer []string
	)

	v := VisitorFuncs{
		EnterFunc: func(path string, node any) error {
			depth++
			maxDepth = max(maxDepth, depth)

			if _, ok := node.(Declarer); ok {
				declarer = append(declarer, path)
			}

			if _, ok := node.(*Storyboard); ok {
				return SkipChildren
			}

			return nil
		},
		LeaveFunc: func(string, any) error {
			depth--

			return nil
		},
	}

	if err := Walk(sampleFile(), v); err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	if depth != 0 {
		t.Errorf("unbalanced Enter/Leave: depth %d", depth)
	}

	if maxDepth < 3 {
		t.Errorf("max depth = %d, want nested traversal", maxDepth)
	}

	want := []string{"", "Entities.ScenarioObjects[1].Vehicle", "Entities.ScenarioObjects[1].ObjectController.Controller"}
	if !slices.Equal(declarer, want) {
		t.Errorf("declarers = %q, want %q", declarer, want)
	}
}

func TestWalk_Error(t *testing.T) {
	stop := errors.New("stop")

	err := Walk(sampleFile(), VisitorFuncs{
		FieldFunc: func(string, value.Field) (value.Field, error) { return nil, stop },
	})
	if !errors.Is(err, stop) {
		t.Errorf("Walk() error = %v, want %v", err, stop)
	}
}

func TestWalk_ReplaceTypeMismatch(t *testing.T) {
	err := Walk(sampleFile(), VisitorFuncs{
		FieldFunc: func(string, value.Field) (value.Field, error) {
			return value.Literal(true), nil
		},
	})
	if !errors.Is(err, ErrNotAddressable) {
		t.Errorf("Walk() error = %v, want %v", err, ErrNotAddressable)
	}
}
