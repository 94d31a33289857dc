package document

import "slices"

// EntityName is the name of a scenario object or entity selection. Fields of
// type value.Value[EntityName] are entity references.
type EntityName string

// ParameterName is the name of a declared parameter. Fields of type
// value.Value[ParameterName] refer to a parameter by name.
type ParameterName string

// Rule is the comparison of a value constraint or parameter condition.
type Rule string

// Comparison rules.
const (
	RuleEqualTo        Rule = "equalTo"
	RuleGreaterThan    Rule = "greaterThan"
	RuleGreaterOrEqual Rule = "greaterOrEqual"
	RuleLessThan       Rule = "lessThan"
	RuleLessOrEqual    Rule = "lessOrEqual"
	RuleNotEqualTo     Rule = "notEqualTo"
)

// Valid reports whether r is a known rule.
func (r Rule) Valid() bool {
	return slices.Contains([]Rule{
		RuleEqualTo, RuleGreaterThan, RuleGreaterOrEqual,
		RuleLessThan, RuleLessOrEqual, RuleNotEqualTo,
	}, r)
}

// Holds reports whether the rule is satisfied by the result of comparing a
// value with a reference (negative, zero or positive).
func (r Rule) Holds(cmp int) bool {
	switch r {
	case RuleEqualTo:
		return cmp == 0
	case RuleGreaterThan:
		return cmp > 0
	case RuleGreaterOrEqual:
		return cmp >= 0
	case RuleLessThan:
		return cmp < 0
	case RuleLessOrEqual:
		return cmp <= 0
	case RuleNotEqualTo:
		return cmp != 0
	default:
		return false
	}
}

// VehicleCategory classifies a vehicle.
type VehicleCategory string

// Vehicle categories.
const (
	VehicleCar         VehicleCategory = "car"
	VehicleVan         VehicleCategory = "van"
	VehicleTruck       VehicleCategory = "truck"
	VehicleTrailer     VehicleCategory = "trailer"
	VehicleSemitrailer VehicleCategory = "semitrailer"
	VehicleBus         VehicleCategory = "bus"
	VehicleMotorbike   VehicleCategory = "motorbike"
	VehicleBicycle     VehicleCategory = "bicycle"
	VehicleTrain       VehicleCategory = "train"
	VehicleTram        VehicleCategory = "tram"
)

// Valid reports whether c is a known category.
func (c VehicleCategory) Valid() bool {
	return slices.Contains([]VehicleCategory{
		VehicleCar, VehicleVan, VehicleTruck, VehicleTrailer, VehicleSemitrailer,
		VehicleBus, VehicleMotorbike, VehicleBicycle, VehicleTrain, VehicleTram,
	}, c)
}

// PedestrianCategory classifies a pedestrian.
type PedestrianCategory string

// Pedestrian categories.
const (
	PedestrianPedestrian PedestrianCategory = "pedestrian"
	PedestrianWheelchair PedestrianCategory = "wheelchair"
	PedestrianAnimal     PedestrianCategory = "animal"
)

// Valid reports whether c is a known category.
func (c PedestrianCategory) Valid() bool {
	return slices.Contains([]PedestrianCategory{
		PedestrianPedestrian, PedestrianWheelchair, PedestrianAnimal,
	}, c)
}

// DynamicsShape is the shape of a transition.
type DynamicsShape string

// Transition shapes.
const (
	ShapeLinear     DynamicsShape = "linear"
	ShapeCubic      DynamicsShape = "cubic"
	ShapeSinusoidal DynamicsShape = "sinusoidal"
	ShapeStep       DynamicsShape = "step"
)

// Valid reports whether s is a known shape.
func (s DynamicsShape) Valid() bool {
	return slices.Contains([]DynamicsShape{
		ShapeLinear, ShapeCubic, ShapeSinusoidal, ShapeStep,
	}, s)
}

// DynamicsDimension is the unit a transition's value is measured in.
type DynamicsDimension string

// Transition dimensions.
const (
	DimensionRate     DynamicsDimension = "rate"
	DimensionTime     DynamicsDimension = "time"
	DimensionDistance DynamicsDimension = "distance"
)

// Valid reports whether d is a known dimension.
func (d DynamicsDimension) Valid() bool {
	return slices.Contains([]DynamicsDimension{
		DimensionRate, DimensionTime, DimensionDistance,
	}, d)
}

// ConditionEdge selects when a condition fires.
type ConditionEdge string

// Condition edges.
const (
	EdgeRising          ConditionEdge = "rising"
	EdgeFalling         ConditionEdge = "falling"
	EdgeRisingOrFalling ConditionEdge = "risingOrFalling"
	EdgeNone            ConditionEdge = "none"
)

// Valid reports whether e is a known edge.
func (e ConditionEdge) Valid() bool {
	return slices.Contains([]ConditionEdge{
		EdgeRising, EdgeFalling, EdgeRisingOrFalling, EdgeNone,
	}, e)
}

// Priority selects how a started event treats running ones.
type Priority string

// Event priorities.
const (
	PriorityOverride Priority = "override"
	PrioritySkip     Priority = "skip"
	PriorityParallel Priority = "parallel"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	return slices.Contains([]Priority{
		PriorityOverride, PrioritySkip, PriorityParallel,
	}, p)
}

// TriggeringEntitiesRule combines the results of a by-entity condition.
type TriggeringEntitiesRule string

// Triggering rules.
const (
	TriggerAll TriggeringEntitiesRule = "all"
	TriggerAny TriggeringEntitiesRule = "any"
)

// Valid reports whether r is a known rule.
func (r TriggeringEntitiesRule) Valid() bool {
	return r == TriggerAll || r == TriggerAny
}

// StoryboardElementType names a kind of storyboard element.
type StoryboardElementType string

// Storyboard element types.
const (
	ElementStory         StoryboardElementType = "story"
	ElementAct           StoryboardElementType = "act"
	ElementManeuverGroup StoryboardElementType = "maneuverGroup"
	ElementManeuver      StoryboardElementType = "maneuver"
	ElementEvent         StoryboardElementType = "event"
	ElementAction        StoryboardElementType = "action"
)

// Valid reports whether t is a known element type.
func (t StoryboardElementType) Valid() bool {
	return slices.Contains([]StoryboardElementType{
		ElementStory, ElementAct, ElementManeuverGroup,
		ElementManeuver, ElementEvent, ElementAction,
	}, t)
}

// StoryboardElementState is a state or transition of a storyboard element.
type StoryboardElementState string

// Storyboard element states and transitions.
const (
	StateStartTransition StoryboardElementState = "startTransition"
	StateEndTransition   StoryboardElementState = "endTransition"
	StateStopTransition  StoryboardElementState = "stopTransition"
	StateSkipTransition  StoryboardElementState = "skipTransition"
	StateComplete        StoryboardElementState = "completeState"
	StateRunning         StoryboardElementState = "runningState"
	StateStandby         StoryboardElementState = "standbyState"
)

// Valid reports whether s is a known state.
func (s StoryboardElementState) Valid() bool {
	return slices.Contains([]StoryboardElementState{
		StateStartTransition, StateEndTransition, StateStopTransition,
		StateSkipTransition, StateComplete, StateRunning, StateStandby,
	}, s)
}

// RelativeDistanceType selects how a relative distance is measured.
type RelativeDistanceType string

// Relative distance types.
const (
	DistanceLongitudinal RelativeDistanceType = "longitudinal"
	DistanceLateral      RelativeDistanceType = "lateral"
	DistanceCartesian    RelativeDistanceType = "cartesianDistance"
	DistanceEuclidian    RelativeDistanceType = "euclidianDistance"
)

// Valid reports whether t is a known distance type.
func (t RelativeDistanceType) Valid() bool {
	return slices.Contains([]RelativeDistanceType{
		DistanceLongitudinal, DistanceLateral, DistanceCartesian, DistanceEuclidian,
	}, t)
}

// SpeedTargetValueType selects how a relative target speed is applied.
type SpeedTargetValueType string

// Relative speed value types.
const (
	SpeedDelta  SpeedTargetValueType = "delta"
	SpeedFactor SpeedTargetValueType = "factor"
)

// Valid reports whether t is a known value type.
func (t SpeedTargetValueType) Valid() bool {
	return t == SpeedDelta || t == SpeedFactor
}
