package document

import (
	"time"

	"github.com/ardnew/scenic/value"
)

// Entities lists the objects taking part in a scenario.
type Entities struct {
	ScenarioObjects  []ScenarioObject  `xml:"ScenarioObject"  yaml:"scenarioObjects,omitempty"  validate:"dive"`
	EntitySelections []EntitySelection `xml:"EntitySelection" yaml:"entitySelections,omitempty" validate:"dive"`
}

// Names returns the names of all objects and selections in document order.
func (e *Entities) Names() []string {
	if e == nil {
		return nil
	}

	out := make([]string, 0, len(e.ScenarioObjects)+len(e.EntitySelections))
	for _, o := range e.ScenarioObjects {
		out = append(out, o.Name)
	}

	for _, s := range e.EntitySelections {
		out = append(out, s.Name)
	}

	return out
}

// ScenarioObject is a named entity defined inline or by catalog reference,
// with an optional controller.
type ScenarioObject struct {
	Name             string            `xml:"name,attr"                  yaml:"name"                       validate:"required"`
	EntityObject     EntityObject      `xml:",any"                       yaml:",inline"`
	ObjectController *ObjectController `xml:"ObjectController,omitempty" yaml:"objectController,omitempty"`
}

// EntityObject is the choice of an entity definition.
type EntityObject = Choice[EntityObjectKind, entityObjectKinds]

// EntityObjectKind is one alternative of [EntityObject]: *CatalogReference,
// *Vehicle, *Pedestrian or *MiscObject.
type EntityObjectKind interface {
	Variant
	isEntityObject()
}

// ObjectController assigns a controller to an entity.
type ObjectController struct {
	Controller ControllerObject `xml:",any" yaml:",inline"`
}

// ControllerObject is the choice of a controller definition.
type ControllerObject = Choice[ControllerObjectKind, controllerObjectKinds]

// ControllerObjectKind is one alternative of [ControllerObject]:
// *CatalogReference or *Controller.
type ControllerObjectKind interface {
	Variant
	isControllerObject()
}

// EntitySelection is a named group of entities.
type EntitySelection struct {
	Name    string      `xml:"name,attr"         yaml:"name"    validate:"required"`
	Members []EntityRef `xml:"Members>EntityRef" yaml:"members" validate:"dive"`
}

// EntityRef refers to an entity by name.
type EntityRef struct {
	EntityRef value.Value[EntityName] `xml:"entityRef,attr" yaml:"entityRef" validate:"required"`
}

// Vehicle defines a vehicle.
type Vehicle struct {
	Name                  string                       `xml:"name,attr"            yaml:"name"            validate:"required"`
	VehicleCategory       value.Value[VehicleCategory] `xml:"vehicleCategory,attr" yaml:"vehicleCategory" validate:"required"`
	Mass                  value.Value[float64]         `xml:"mass,attr"            yaml:"mass,omitempty"`
	ParameterDeclarations []ParameterDeclaration       `xml:"ParameterDeclarations>ParameterDeclaration" yaml:"parameterDeclarations,omitempty" validate:"dive"`
	BoundingBox           *BoundingBox                 `xml:"BoundingBox,omitempty" yaml:"boundingBox,omitempty"`
	Performance           Performance                  `xml:"Performance"           yaml:"performance"`
	Properties            *Properties                  `xml:"Properties,omitempty"  yaml:"properties,omitempty"`
}

// Performance limits a vehicle's motion.
type Performance struct {
	MaxSpeed        value.Value[float64] `xml:"maxSpeed,attr"        yaml:"maxSpeed"        validate:"required"`
	MaxAcceleration value.Value[float64] `xml:"maxAcceleration,attr" yaml:"maxAcceleration" validate:"required"`
	MaxDeceleration value.Value[float64] `xml:"maxDeceleration,attr" yaml:"maxDeceleration" validate:"required"`
}

// BoundingBox is the extent of an object relative to its reference point.
type BoundingBox struct {
	Center     Center     `xml:"Center"     yaml:"center"`
	Dimensions Dimensions `xml:"Dimensions" yaml:"dimensions"`
}

// Center is the center of a bounding box.
type Center struct {
	X value.Value[float64] `xml:"x,attr" yaml:"x" validate:"required"`
	Y value.Value[float64] `xml:"y,attr" yaml:"y" validate:"required"`
	Z value.Value[float64] `xml:"z,attr" yaml:"z" validate:"required"`
}

// Dimensions is the size of a bounding box.
type Dimensions struct {
	Width  value.Value[float64] `xml:"width,attr"  yaml:"width"  validate:"required"`
	Length value.Value[float64] `xml:"length,attr" yaml:"length" validate:"required"`
	Height value.Value[float64] `xml:"height,attr" yaml:"height" validate:"required"`
}

// Properties is a list of free-form name/value pairs.
type Properties struct {
	Properties []Property `xml:"Property" yaml:"properties" validate:"dive"`
}

// Property is a free-form name/value pair.
type Property struct {
	Name  value.Value[string] `xml:"name,attr"  yaml:"name"  validate:"required"`
	Value value.Value[string] `xml:"value,attr" yaml:"value" validate:"required"`
}

// Pedestrian defines a pedestrian or animal.
type Pedestrian struct {
	Name                  string                          `xml:"name,attr"               yaml:"name"               validate:"required"`
	PedestrianCategory    value.Value[PedestrianCategory] `xml:"pedestrianCategory,attr" yaml:"pedestrianCategory" validate:"required"`
	Mass                  value.Value[float64]            `xml:"mass,attr"               yaml:"mass"               validate:"required"`
	Model3d               value.Value[string]             `xml:"model3d,attr"            yaml:"model3d,omitempty"`
	ParameterDeclarations []ParameterDeclaration          `xml:"ParameterDeclarations>ParameterDeclaration" yaml:"parameterDeclarations,omitempty" validate:"dive"`
	BoundingBox           *BoundingBox                    `xml:"BoundingBox,omitempty" yaml:"boundingBox,omitempty"`
	Properties            *Properties                     `xml:"Properties,omitempty"  yaml:"properties,omitempty"`
}

// MiscObject defines a stationary object.
type MiscObject struct {
	Name                  string                 `xml:"name,attr"               yaml:"name"               validate:"required"`
	MiscObjectCategory    value.Value[string]    `xml:"miscObjectCategory,attr" yaml:"miscObjectCategory" validate:"required"`
	Mass                  value.Value[float64]   `xml:"mass,attr"               yaml:"mass"               validate:"required"`
	ParameterDeclarations []ParameterDeclaration `xml:"ParameterDeclarations>ParameterDeclaration" yaml:"parameterDeclarations,omitempty" validate:"dive"`
	BoundingBox           *BoundingBox           `xml:"BoundingBox,omitempty" yaml:"boundingBox,omitempty"`
	Properties            *Properties            `xml:"Properties,omitempty"  yaml:"properties,omitempty"`
}

// Controller defines the driver model of an entity.
type Controller struct {
	Name                  string                 `xml:"name,attr" yaml:"name" validate:"required"`
	ParameterDeclarations []ParameterDeclaration `xml:"ParameterDeclarations>ParameterDeclaration" yaml:"parameterDeclarations,omitempty" validate:"dive"`
	Properties            *Properties            `xml:"Properties,omitempty" yaml:"properties,omitempty"`
}

// Environment defines time of day and weather.
type Environment struct {
	Name                  string                 `xml:"name,attr" yaml:"name" validate:"required"`
	ParameterDeclarations []ParameterDeclaration `xml:"ParameterDeclarations>ParameterDeclaration" yaml:"parameterDeclarations,omitempty" validate:"dive"`
	TimeOfDay             *TimeOfDay             `xml:"TimeOfDay,omitempty" yaml:"timeOfDay,omitempty"`
	Weather               *Weather               `xml:"Weather,omitempty"   yaml:"weather,omitempty"`
}

// TimeOfDay sets the simulated clock.
type TimeOfDay struct {
	Animation value.Value[bool]      `xml:"animation,attr" yaml:"animation" validate:"required"`
	DateTime  value.Value[time.Time] `xml:"dateTime,attr"  yaml:"dateTime"  validate:"required"`
}

// Weather sets atmospheric conditions.
type Weather struct {
	Temperature          value.Value[float64] `xml:"temperature,attr"         yaml:"temperature,omitempty"`
	AtmosphericPressure  value.Value[float64] `xml:"atmosphericPressure,attr" yaml:"atmosphericPressure,omitempty"`
	FractionalCloudCover value.Value[string]  `xml:"fractionalCloudCover,attr" yaml:"fractionalCloudCover,omitempty"`
}

// Trajectory is a path with optional timing.
type Trajectory struct {
	Name                  string                 `xml:"name,attr"   yaml:"name"   validate:"required"`
	Closed                value.Value[bool]      `xml:"closed,attr" yaml:"closed" validate:"required"`
	ParameterDeclarations []ParameterDeclaration `xml:"ParameterDeclarations>ParameterDeclaration" yaml:"parameterDeclarations,omitempty" validate:"dive"`
	Vertices              []Vertex               `xml:"Shape>Polyline>Vertex" yaml:"vertices" validate:"dive"`
}

// Vertex is a point of a polyline trajectory.
type Vertex struct {
	Time     value.Value[float64] `xml:"time,attr" yaml:"time,omitempty"`
	Position Position             `xml:"Position"  yaml:"position"`
}

// Route is a sequence of waypoints.
type Route struct {
	Name                  string                 `xml:"name,attr"   yaml:"name"   validate:"required"`
	Closed                value.Value[bool]      `xml:"closed,attr" yaml:"closed" validate:"required"`
	ParameterDeclarations []ParameterDeclaration `xml:"ParameterDeclarations>ParameterDeclaration" yaml:"parameterDeclarations,omitempty" validate:"dive"`
	Waypoints             []Waypoint             `xml:"Waypoint" yaml:"waypoints" validate:"min=2,dive"`
}

// Waypoint is a point of a route.
type Waypoint struct {
	RouteStrategy value.Value[string] `xml:"routeStrategy,attr" yaml:"routeStrategy" validate:"required"`
	Position      Position            `xml:"Position"           yaml:"position"`
}

// Tag implements [Variant].
func (*Vehicle) Tag() string { return "Vehicle" }

// Tag implements [Variant].
func (*Pedestrian) Tag() string { return "Pedestrian" }

// Tag implements [Variant].
func (*MiscObject) Tag() string { return "MiscObject" }

// Tag implements [Variant].
func (*Controller) Tag() string { return "Controller" }

// Tag implements [Variant].
func (*Environment) Tag() string { return "Environment" }

// Tag implements [Variant].
func (*Trajectory) Tag() string { return "Trajectory" }

// Tag implements [Variant].
func (*Route) Tag() string { return "Route" }

func (*Vehicle) isEntityObject() {}
func (*Pedestrian) isEntityObject() {}
func (*MiscObject) isEntityObject() {}
func (*Controller) isControllerObject() {}
func (*Environment) isEnvironmentObject() {}
