package document

import (
	"github.com/goccy/go-yaml/ast"

	"github.com/ardnew/scenic/value"
)

// Storyboard holds the initial actions and the stories of a scenario.
type Storyboard struct {
	Init        Init     `xml:"Init" yaml:"init"`
	Stories     []Story  `xml:"Story" yaml:"stories,omitempty" validate:"dive"`
	StopTrigger *Trigger `xml:"StopTrigger,omitempty" yaml:"stopTrigger,omitempty"`
}

// Init holds the actions applied before the simulation starts.
type Init struct {
	Actions InitActions `xml:"Actions" yaml:"actions"`
}

// InitActions is the ordered list of initial actions. Global, user-defined
// and private actions may interleave.
type InitActions struct {
	Actions Seq[InitActionKind, initActionKinds] `xml:",any" validate:"dive"`
}

// MarshalYAML encodes the actions as a plain list.
func (a InitActions) MarshalYAML() (any, error) { return a.Actions.MarshalYAML() }

// UnmarshalYAML decodes a plain list of actions.
func (a *InitActions) UnmarshalYAML(node ast.Node) error {
	return a.Actions.UnmarshalYAML(node)
}

// InitActionKind is one alternative of [InitActions]: *GlobalAction,
// *UserDefinedAction or *Private.
type InitActionKind interface {
	Variant
	isInitAction()
}

// Private holds the initial private actions of one entity.
type Private struct {
	EntityRef      value.Value[EntityName] `xml:"entityRef,attr" yaml:"entityRef"      validate:"required"`
	PrivateActions []PrivateAction         `xml:"PrivateAction"  yaml:"privateActions" validate:"min=1,dive"`
}

// Story groups acts.
type Story struct {
	Name                  string                 `xml:"name,attr" yaml:"name" validate:"required"`
	ParameterDeclarations []ParameterDeclaration `xml:"ParameterDeclarations>ParameterDeclaration" yaml:"parameterDeclarations,omitempty" validate:"dive"`
	Acts                  []Act                  `xml:"Act" yaml:"acts" validate:"min=1,dive"`
}

// Declarations implements [Declarer].
func (s *Story) Declarations() []ParameterDeclaration { return s.ParameterDeclarations }

// SetDeclarations implements [Declarer].
func (s *Story) SetDeclarations(d []ParameterDeclaration) { s.ParameterDeclarations = d }

// Act groups maneuver groups started and stopped together.
type Act struct {
	Name           string          `xml:"name,attr"              yaml:"name"                  validate:"required"`
	ManeuverGroups []ManeuverGroup `xml:"ManeuverGroup"          yaml:"maneuverGroups"        validate:"min=1,dive"`
	StartTrigger   *Trigger        `xml:"StartTrigger,omitempty" yaml:"startTrigger,omitempty"`
	StopTrigger    *Trigger        `xml:"StopTrigger,omitempty"  yaml:"stopTrigger,omitempty"`
}

// ManeuverGroup assigns maneuvers, inline or from a catalog, to actors.
type ManeuverGroup struct {
	Name                  string              `xml:"name,attr"                  yaml:"name"                  validate:"required"`
	MaximumExecutionCount value.Value[uint32] `xml:"maximumExecutionCount,attr" yaml:"maximumExecutionCount" validate:"required"`
	Actors                Actors              `xml:"Actors"                     yaml:"actors"`
	CatalogReferences     []CatalogReference  `xml:"CatalogReference"           yaml:"catalogReferences,omitempty" validate:"dive"`
	Maneuvers             []Maneuver          `xml:"Maneuver"                   yaml:"maneuvers,omitempty"         validate:"dive"`
}

// Actors are the entities a maneuver group acts on.
type Actors struct {
	SelectTriggeringEntities value.Value[bool] `xml:"selectTriggeringEntities,attr" yaml:"selectTriggeringEntities" validate:"required"`
	EntityRefs               []EntityRef       `xml:"EntityRef"                     yaml:"entityRefs,omitempty"     validate:"dive"`
}

// Maneuver is a named, parameterizable group of events.
type Maneuver struct {
	Name                  string                 `xml:"name,attr" yaml:"name" validate:"required"`
	ParameterDeclarations []ParameterDeclaration `xml:"ParameterDeclarations>ParameterDeclaration" yaml:"parameterDeclarations,omitempty" validate:"dive"`
	Events                []Event                `xml:"Event" yaml:"events" validate:"min=1,dive"`
}

// Event is a set of actions started by a trigger.
type Event struct {
	Name                  string                `xml:"name,attr"                  yaml:"name"                            validate:"required"`
	Priority              value.Value[Priority] `xml:"priority,attr"              yaml:"priority"                        validate:"required"`
	MaximumExecutionCount value.Value[uint32]   `xml:"maximumExecutionCount,attr" yaml:"maximumExecutionCount,omitempty"`
	Actions               []Action              `xml:"Action"                     yaml:"actions"                         validate:"min=1,dive"`
	StartTrigger          *Trigger              `xml:"StartTrigger,omitempty"     yaml:"startTrigger,omitempty"`
}

// Action is a named global, user-defined or private action.
type Action struct {
	Name string     `xml:"name,attr" yaml:"name" validate:"required"`
	Kind ActionKind `xml:",any"      yaml:",inline"`
}

// ActionKind is the choice of an event action.
type ActionKind = Choice[ActionVariant, actionKinds]

// ActionVariant is one alternative of [ActionKind]: *GlobalAction,
// *UserDefinedAction or *PrivateAction.
type ActionVariant interface {
	Variant
	isAction()
}

// GlobalAction changes the world rather than a single entity.
type GlobalAction struct {
	Kind Choice[GlobalActionKind, globalActionKinds] `xml:",any" yaml:",inline"`
}

// GlobalActionKind is one alternative of [GlobalAction]: *ParameterAction
// or *EnvironmentAction.
type GlobalActionKind interface {
	Variant
	isGlobalAction()
}

// ParameterAction sets or modifies a parameter at run time.
type ParameterAction struct {
	ParameterRef value.Value[ParameterName]                        `xml:"parameterRef,attr" yaml:"parameterRef" validate:"required"`
	Kind         Choice[ParameterActionKind, parameterActionKinds] `xml:",any"              yaml:",inline"`
}

// ParameterActionKind is one alternative of [ParameterAction]:
// *ParameterSetAction or *ParameterModifyAction.
type ParameterActionKind interface {
	Variant
	isParameterAction()
}

// ParameterSetAction assigns a new value.
type ParameterSetAction struct {
	Value value.Value[string] `xml:"value,attr" yaml:"value" validate:"required"`
}

// ParameterModifyAction changes a numeric value.
type ParameterModifyAction struct {
	Rule ModifyRule `xml:"Rule" yaml:"rule"`
}

// ModifyRule selects addition or multiplication.
type ModifyRule struct {
	Kind Choice[ModifyRuleKind, modifyRuleKinds] `xml:",any" yaml:",inline"`
}

// ModifyRuleKind is one alternative of [ModifyRule]: *ModifyAddValue or
// *ModifyMultiplyByValue.
type ModifyRuleKind interface {
	Variant
	isModifyRule()
}

// ModifyAddValue adds Value.
type ModifyAddValue struct {
	Value value.Value[float64] `xml:"value,attr" yaml:"value" validate:"required"`
}

// ModifyMultiplyByValue multiplies by Value.
type ModifyMultiplyByValue struct {
	Value value.Value[float64] `xml:"value,attr" yaml:"value" validate:"required"`
}

// EnvironmentAction replaces the environment.
type EnvironmentAction struct {
	Environment EnvironmentObject `xml:",any" yaml:",inline"`
}

// EnvironmentObject is the choice of an environment definition.
type EnvironmentObject = Choice[EnvironmentObjectKind, environmentObjectKinds]

// EnvironmentObjectKind is one alternative of [EnvironmentObject]:
// *Environment or *CatalogReference.
type EnvironmentObjectKind interface {
	Variant
	isEnvironmentObject()
}

// UserDefinedAction is an opaque command for the simulator.
type UserDefinedAction struct {
	CustomCommandAction CustomCommandAction `xml:"CustomCommandAction" yaml:"customCommandAction"`
}

// CustomCommandAction is a typed opaque command.
type CustomCommandAction struct {
	Type    value.Value[string] `xml:"type,attr" yaml:"type"              validate:"required"`
	Content string              `xml:",chardata" yaml:"content,omitempty"`
}

// PrivateAction acts on a single entity.
type PrivateAction struct {
	Kind Choice[PrivateActionKind, privateActionKinds] `xml:",any" yaml:",inline"`
}

// PrivateActionKind is one alternative of [PrivateAction]:
// *LongitudinalAction, *LateralAction, *TeleportAction or *ControllerAction.
type PrivateActionKind interface {
	Variant
	isPrivateAction()
}

// LongitudinalAction controls speed or distance along the path.
type LongitudinalAction struct {
	Kind Choice[LongitudinalActionKind, longitudinalActionKinds] `xml:",any" yaml:",inline"`
}

// LongitudinalActionKind is one alternative of [LongitudinalAction]:
// *SpeedAction or *LongitudinalDistanceAction.
type LongitudinalActionKind interface {
	Variant
	isLongitudinalAction()
}

// SpeedAction changes an entity's speed.
type SpeedAction struct {
	Dynamics TransitionDynamics `xml:"SpeedActionDynamics" yaml:"dynamics"`
	Target   SpeedActionTarget  `xml:"SpeedActionTarget"   yaml:"target"`
}

// SpeedActionTarget is the speed to reach.
type SpeedActionTarget struct {
	Kind Choice[SpeedTargetKind, speedTargetKinds] `xml:",any" yaml:",inline"`
}

// SpeedTargetKind is one alternative of [SpeedActionTarget]:
// *AbsoluteTargetSpeed or *RelativeTargetSpeed.
type SpeedTargetKind interface {
	Variant
	isSpeedTarget()
}

// AbsoluteTargetSpeed is a speed in m/s.
type AbsoluteTargetSpeed struct {
	Value value.Value[float64] `xml:"value,attr" yaml:"value" validate:"required"`
}

// RelativeTargetSpeed is a speed relative to another entity.
type RelativeTargetSpeed struct {
	EntityRef            value.Value[EntityName]           `xml:"entityRef,attr"            yaml:"entityRef"            validate:"required"`
	Value                value.Value[float64]              `xml:"value,attr"                yaml:"value"                validate:"required"`
	SpeedTargetValueType value.Value[SpeedTargetValueType] `xml:"speedTargetValueType,attr" yaml:"speedTargetValueType" validate:"required"`
	ContinuousReference  value.Value[bool]                 `xml:"continuous,attr"           yaml:"continuous"           validate:"required"`
}

// LongitudinalDistanceAction keeps a distance to another entity.
type LongitudinalDistanceAction struct {
	EntityRef  value.Value[EntityName] `xml:"entityRef,attr"  yaml:"entityRef"          validate:"required"`
	Distance   value.Value[float64]    `xml:"distance,attr"   yaml:"distance,omitempty"`
	Freespace  value.Value[bool]       `xml:"freespace,attr"  yaml:"freespace"          validate:"required"`
	Continuous value.Value[bool]       `xml:"continuous,attr" yaml:"continuous"         validate:"required"`
}

// TransitionDynamics describes how a target is approached.
type TransitionDynamics struct {
	DynamicsShape     value.Value[DynamicsShape]     `xml:"dynamicsShape,attr"     yaml:"dynamicsShape"     validate:"required"`
	Value             value.Value[float64]           `xml:"value,attr"             yaml:"value"             validate:"required"`
	DynamicsDimension value.Value[DynamicsDimension] `xml:"dynamicsDimension,attr" yaml:"dynamicsDimension" validate:"required"`
}

// LateralAction moves an entity across lanes.
type LateralAction struct {
	Kind Choice[LateralActionKind, lateralActionKinds] `xml:",any" yaml:",inline"`
}

// LateralActionKind is one alternative of [LateralAction]:
// *LaneChangeAction.
type LateralActionKind interface {
	Variant
	isLateralAction()
}

// LaneChangeAction changes lanes.
type LaneChangeAction struct {
	TargetLaneOffset value.Value[float64] `xml:"targetLaneOffset,attr"    yaml:"targetLaneOffset,omitempty"`
	Dynamics         TransitionDynamics   `xml:"LaneChangeActionDynamics" yaml:"dynamics"`
	Target           LaneChangeTarget     `xml:"LaneChangeTarget"         yaml:"target"`
}

// LaneChangeTarget is the lane to reach.
type LaneChangeTarget struct {
	Kind Choice[LaneTargetKind, laneTargetKinds] `xml:",any" yaml:",inline"`
}

// LaneTargetKind is one alternative of [LaneChangeTarget]:
// *RelativeTargetLane or *AbsoluteTargetLane.
type LaneTargetKind interface {
	Variant
	isLaneTarget()
}

// RelativeTargetLane is a lane counted from another entity's lane.
type RelativeTargetLane struct {
	EntityRef value.Value[EntityName] `xml:"entityRef,attr" yaml:"entityRef" validate:"required"`
	Value     value.Value[int]        `xml:"value,attr"     yaml:"value"     validate:"required"`
}

// AbsoluteTargetLane is a lane id.
type AbsoluteTargetLane struct {
	Value value.Value[string] `xml:"value,attr" yaml:"value" validate:"required"`
}

// TeleportAction places an entity.
type TeleportAction struct {
	Position Position `xml:"Position" yaml:"position"`
}

// ControllerAction changes an entity's controller.
type ControllerAction struct {
	AssignControllerAction *AssignControllerAction `xml:"AssignControllerAction,omitempty" yaml:"assignControllerAction,omitempty"`
}

// AssignControllerAction assigns a controller, inline or from a catalog.
type AssignControllerAction struct {
	Controller ControllerObject `xml:",any" yaml:",inline"`
}

// Position is a location in the world.
type Position struct {
	Kind Choice[PositionKind, positionKinds] `xml:",any" yaml:",inline"`
}

// PositionKind is one alternative of [Position]: *WorldPosition,
// *LanePosition or *RelativeObjectPosition.
type PositionKind interface {
	Variant
	isPosition()
}

// WorldPosition is a position in world coordinates.
type WorldPosition struct {
	X value.Value[float64] `xml:"x,attr" yaml:"x"           validate:"required"`
	Y value.Value[float64] `xml:"y,attr" yaml:"y"           validate:"required"`
	Z value.Value[float64] `xml:"z,attr" yaml:"z,omitempty"`
	H value.Value[float64] `xml:"h,attr" yaml:"h,omitempty"`
	P value.Value[float64] `xml:"p,attr" yaml:"p,omitempty"`
	R value.Value[float64] `xml:"r,attr" yaml:"r,omitempty"`
}

// LanePosition is a position in road coordinates.
type LanePosition struct {
	RoadID value.Value[string]  `xml:"roadId,attr" yaml:"roadId"           validate:"required"`
	LaneID value.Value[string]  `xml:"laneId,attr" yaml:"laneId"           validate:"required"`
	Offset value.Value[float64] `xml:"offset,attr" yaml:"offset,omitempty"`
	S      value.Value[float64] `xml:"s,attr"      yaml:"s"                validate:"required"`
}

// RelativeObjectPosition is a position relative to another entity.
type RelativeObjectPosition struct {
	EntityRef value.Value[EntityName] `xml:"entityRef,attr" yaml:"entityRef"    validate:"required"`
	Dx        value.Value[float64]    `xml:"dx,attr"        yaml:"dx"           validate:"required"`
	Dy        value.Value[float64]    `xml:"dy,attr"        yaml:"dy"           validate:"required"`
	Dz        value.Value[float64]    `xml:"dz,attr"        yaml:"dz,omitempty"`
}

// Trigger fires when any of its condition groups is satisfied.
type Trigger struct {
	ConditionGroups []ConditionGroup `xml:"ConditionGroup" yaml:"conditionGroups" validate:"dive"`
}

// ConditionGroup is satisfied when all its conditions are.
type ConditionGroup struct {
	Conditions []Condition `xml:"Condition" yaml:"conditions" validate:"min=1,dive"`
}

// Condition is a named test over entities or values.
type Condition struct {
	Name          string                     `xml:"name,attr"          yaml:"name"          validate:"required"`
	Delay         value.Value[float64]       `xml:"delay,attr"         yaml:"delay"         validate:"required"`
	ConditionEdge value.Value[ConditionEdge] `xml:"conditionEdge,attr" yaml:"conditionEdge" validate:"required"`
	Kind          ConditionKind              `xml:",any"               yaml:",inline"`
}

// ConditionKind is the choice of a condition's test.
type ConditionKind = Choice[ConditionVariant, conditionKinds]

// ConditionVariant is one alternative of [ConditionKind]:
// *ByEntityCondition or *ByValueCondition.
type ConditionVariant interface {
	Variant
	isCondition()
}

// ByEntityCondition tests the state of entities.
type ByEntityCondition struct {
	TriggeringEntities TriggeringEntities `xml:"TriggeringEntities" yaml:"triggeringEntities"`
	EntityCondition    EntityCondition    `xml:"EntityCondition"    yaml:"entityCondition"`
}

// TriggeringEntities are the entities a condition tests.
type TriggeringEntities struct {
	Rule       value.Value[TriggeringEntitiesRule] `xml:"triggeringEntitiesRule,attr" yaml:"rule"       validate:"required"`
	EntityRefs []EntityRef                         `xml:"EntityRef"                   yaml:"entityRefs" validate:"min=1,dive"`
}

// EntityCondition is the test applied to triggering entities.
type EntityCondition struct {
	Kind Choice[EntityConditionKind, entityConditionKinds] `xml:",any" yaml:",inline"`
}

// EntityConditionKind is one alternative of [EntityCondition]:
// *SpeedCondition, *ReachPositionCondition or *RelativeDistanceCondition.
type EntityConditionKind interface {
	Variant
	isEntityCondition()
}

// SpeedCondition compares an entity's speed.
type SpeedCondition struct {
	Value value.Value[float64] `xml:"value,attr" yaml:"value" validate:"required"`
	Rule  value.Value[Rule]    `xml:"rule,attr"  yaml:"rule"  validate:"required"`
}

// ReachPositionCondition tests whether an entity is near a position.
type ReachPositionCondition struct {
	Tolerance value.Value[float64] `xml:"tolerance,attr" yaml:"tolerance" validate:"required"`
	Position  Position             `xml:"Position"       yaml:"position"`
}

// RelativeDistanceCondition compares the distance to another entity.
type RelativeDistanceCondition struct {
	EntityRef            value.Value[EntityName]           `xml:"entityRef,attr"            yaml:"entityRef"            validate:"required"`
	Freespace            value.Value[bool]                 `xml:"freespace,attr"            yaml:"freespace"            validate:"required"`
	RelativeDistanceType value.Value[RelativeDistanceType] `xml:"relativeDistanceType,attr" yaml:"relativeDistanceType" validate:"required"`
	Value                value.Value[float64]              `xml:"value,attr"                yaml:"value"                validate:"required"`
	Rule                 value.Value[Rule]                 `xml:"rule,attr"                 yaml:"rule"                 validate:"required"`
}

// ByValueCondition tests simulation or storyboard state.
type ByValueCondition struct {
	Kind Choice[ValueConditionKind, valueConditionKinds] `xml:",any" yaml:",inline"`
}

// ValueConditionKind is one alternative of [ByValueCondition]:
// *SimulationTimeCondition, *ParameterCondition or
// *StoryboardElementStateCondition.
type ValueConditionKind interface {
	Variant
	isValueCondition()
}

// SimulationTimeCondition compares the simulation time.
type SimulationTimeCondition struct {
	Value value.Value[float64] `xml:"value,attr" yaml:"value" validate:"required"`
	Rule  value.Value[Rule]    `xml:"rule,attr"  yaml:"rule"  validate:"required"`
}

// ParameterCondition compares a parameter's run-time value.
type ParameterCondition struct {
	ParameterRef value.Value[ParameterName] `xml:"parameterRef,attr" yaml:"parameterRef" validate:"required"`
	Value        value.Value[string]        `xml:"value,attr"        yaml:"value"        validate:"required"`
	Rule         value.Value[Rule]          `xml:"rule,attr"         yaml:"rule"         validate:"required"`
}

// StoryboardElementStateCondition tests the state of a storyboard element.
type StoryboardElementStateCondition struct {
	StoryboardElementType value.Value[StoryboardElementType]  `xml:"storyboardElementType,attr" yaml:"storyboardElementType" validate:"required"`
	StoryboardElementRef  value.Value[string]                 `xml:"storyboardElementRef,attr"  yaml:"storyboardElementRef"  validate:"required"`
	State                 value.Value[StoryboardElementState] `xml:"state,attr"                 yaml:"state"                 validate:"required"`
}
