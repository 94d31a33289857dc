package document

import "reflect"

// kindTable lists the constructors of one choice group's alternatives in
// schema order.
type kindTable[V Variant] []func() V

func (t kindTable[V]) new(tag string) (V, bool) {
	for _, mk := range t {
		if v := mk(); v.Tag() == tag {
			return v, true
		}
	}

	var zero V

	return zero, false
}

func (t kindTable[V]) tags() []string {
	out := make([]string, len(t))
	for i, mk := range t {
		out[i] = mk().Tag()
	}

	return out
}

// isNil reports whether v is a nil interface or a typed nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)

	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

var entityObjectTable = kindTable[EntityObjectKind]{
	func() EntityObjectKind { return new(CatalogReference) },
	func() EntityObjectKind { return new(Vehicle) },
	func() EntityObjectKind { return new(Pedestrian) },
	func() EntityObjectKind { return new(MiscObject) },
}

type entityObjectKinds struct{}

func (entityObjectKinds) New(tag string) (EntityObjectKind, bool) { return entityObjectTable.new(tag) }
func (entityObjectKinds) Tags() []string { return entityObjectTable.tags() }

var controllerObjectTable = kindTable[ControllerObjectKind]{
	func() ControllerObjectKind { return new(CatalogReference) },
	func() ControllerObjectKind { return new(Controller) },
}

type controllerObjectKinds struct{}

func (controllerObjectKinds) New(tag string) (ControllerObjectKind, bool) {
	return controllerObjectTable.new(tag)
}
func (controllerObjectKinds) Tags() []string { return controllerObjectTable.tags() }

var environmentObjectTable = kindTable[EnvironmentObjectKind]{
	func() EnvironmentObjectKind { return new(CatalogReference) },
	func() EnvironmentObjectKind { return new(Environment) },
}

type environmentObjectKinds struct{}

func (environmentObjectKinds) New(tag string) (EnvironmentObjectKind, bool) {
	return environmentObjectTable.new(tag)
}
func (environmentObjectKinds) Tags() []string { return environmentObjectTable.tags() }

var catalogEntryTable = kindTable[CatalogEntry]{
	func() CatalogEntry { return new(Vehicle) },
	func() CatalogEntry { return new(Controller) },
	func() CatalogEntry { return new(Pedestrian) },
	func() CatalogEntry { return new(MiscObject) },
	func() CatalogEntry { return new(Environment) },
	func() CatalogEntry { return new(Maneuver) },
	func() CatalogEntry { return new(Trajectory) },
	func() CatalogEntry { return new(Route) },
}

type catalogEntryKinds struct{}

func (catalogEntryKinds) New(tag string) (CatalogEntry, bool) { return catalogEntryTable.new(tag) }
func (catalogEntryKinds) Tags() []string { return catalogEntryTable.tags() }

var initActionTable = kindTable[InitActionKind]{
	func() InitActionKind { return new(GlobalAction) },
	func() InitActionKind { return new(UserDefinedAction) },
	func() InitActionKind { return new(Private) },
}

type initActionKinds struct{}

func (initActionKinds) New(tag string) (InitActionKind, bool) { return initActionTable.new(tag) }
func (initActionKinds) Tags() []string { return initActionTable.tags() }

var actionTable = kindTable[ActionVariant]{
	func() ActionVariant { return new(GlobalAction) },
	func() ActionVariant { return new(UserDefinedAction) },
	func() ActionVariant { return new(PrivateAction) },
}

type actionKinds struct{}

func (actionKinds) New(tag string) (ActionVariant, bool) { return actionTable.new(tag) }
func (actionKinds) Tags() []string { return actionTable.tags() }

var globalActionTable = kindTable[GlobalActionKind]{
	func() GlobalActionKind { return new(EnvironmentAction) },
	func() GlobalActionKind { return new(ParameterAction) },
}

type globalActionKinds struct{}

func (globalActionKinds) New(tag string) (GlobalActionKind, bool) { return globalActionTable.new(tag) }
func (globalActionKinds) Tags() []string { return globalActionTable.tags() }

var parameterActionTable = kindTable[ParameterActionKind]{
	func() ParameterActionKind { return new(ParameterSetAction) },
	func() ParameterActionKind { return new(ParameterModifyAction) },
}

type parameterActionKinds struct{}

func (parameterActionKinds) New(tag string) (ParameterActionKind, bool) {
	return parameterActionTable.new(tag)
}
func (parameterActionKinds) Tags() []string { return parameterActionTable.tags() }

var modifyRuleTable = kindTable[ModifyRuleKind]{
	func() ModifyRuleKind { return new(ModifyAddValue) },
	func() ModifyRuleKind { return new(ModifyMultiplyByValue) },
}

type modifyRuleKinds struct{}

func (modifyRuleKinds) New(tag string) (ModifyRuleKind, bool) { return modifyRuleTable.new(tag) }
func (modifyRuleKinds) Tags() []string { return modifyRuleTable.tags() }

var privateActionTable = kindTable[PrivateActionKind]{
	func() PrivateActionKind { return new(LongitudinalAction) },
	func() PrivateActionKind { return new(LateralAction) },
	func() PrivateActionKind { return new(TeleportAction) },
	func() PrivateActionKind { return new(ControllerAction) },
}

type privateActionKinds struct{}

func (privateActionKinds) New(tag string) (PrivateActionKind, bool) {
	return privateActionTable.new(tag)
}
func (privateActionKinds) Tags() []string { return privateActionTable.tags() }

var longitudinalActionTable = kindTable[LongitudinalActionKind]{
	func() LongitudinalActionKind { return new(SpeedAction) },
	func() LongitudinalActionKind { return new(LongitudinalDistanceAction) },
}

type longitudinalActionKinds struct{}

func (longitudinalActionKinds) New(tag string) (LongitudinalActionKind, bool) {
	return longitudinalActionTable.new(tag)
}
func (longitudinalActionKinds) Tags() []string { return longitudinalActionTable.tags() }

var speedTargetTable = kindTable[SpeedTargetKind]{
	func() SpeedTargetKind { return new(RelativeTargetSpeed) },
	func() SpeedTargetKind { return new(AbsoluteTargetSpeed) },
}

type speedTargetKinds struct{}

func (speedTargetKinds) New(tag string) (SpeedTargetKind, bool) { return speedTargetTable.new(tag) }
func (speedTargetKinds) Tags() []string { return speedTargetTable.tags() }

var lateralActionTable = kindTable[LateralActionKind]{
	func() LateralActionKind { return new(LaneChangeAction) },
}

type lateralActionKinds struct{}

func (lateralActionKinds) New(tag string) (LateralActionKind, bool) {
	return lateralActionTable.new(tag)
}
func (lateralActionKinds) Tags() []string { return lateralActionTable.tags() }

var laneTargetTable = kindTable[LaneTargetKind]{
	func() LaneTargetKind { return new(RelativeTargetLane) },
	func() LaneTargetKind { return new(AbsoluteTargetLane) },
}

type laneTargetKinds struct{}

func (laneTargetKinds) New(tag string) (LaneTargetKind, bool) { return laneTargetTable.new(tag) }
func (laneTargetKinds) Tags() []string { return laneTargetTable.tags() }

var positionTable = kindTable[PositionKind]{
	func() PositionKind { return new(WorldPosition) },
	func() PositionKind { return new(LanePosition) },
	func() PositionKind { return new(RelativeObjectPosition) },
}

type positionKinds struct{}

func (positionKinds) New(tag string) (PositionKind, bool) { return positionTable.new(tag) }
func (positionKinds) Tags() []string { return positionTable.tags() }

var conditionTable = kindTable[ConditionVariant]{
	func() ConditionVariant { return new(ByEntityCondition) },
	func() ConditionVariant { return new(ByValueCondition) },
}

type conditionKinds struct{}

func (conditionKinds) New(tag string) (ConditionVariant, bool) { return conditionTable.new(tag) }
func (conditionKinds) Tags() []string { return conditionTable.tags() }

var entityConditionTable = kindTable[EntityConditionKind]{
	func() EntityConditionKind { return new(ReachPositionCondition) },
	func() EntityConditionKind { return new(SpeedCondition) },
	func() EntityConditionKind { return new(RelativeDistanceCondition) },
}

type entityConditionKinds struct{}

func (entityConditionKinds) New(tag string) (EntityConditionKind, bool) {
	return entityConditionTable.new(tag)
}
func (entityConditionKinds) Tags() []string { return entityConditionTable.tags() }

var valueConditionTable = kindTable[ValueConditionKind]{
	func() ValueConditionKind { return new(ParameterCondition) },
	func() ValueConditionKind { return new(SimulationTimeCondition) },
	func() ValueConditionKind { return new(StoryboardElementStateCondition) },
}

type valueConditionKinds struct{}

func (valueConditionKinds) New(tag string) (ValueConditionKind, bool) {
	return valueConditionTable.new(tag)
}
func (valueConditionKinds) Tags() []string { return valueConditionTable.tags() }
