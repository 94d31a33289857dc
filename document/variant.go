package document

// Tag implements [Variant].
func (*Maneuver) Tag() string { return "Maneuver" }

// Tag implements [Variant].
func (*GlobalAction) Tag() string { return "GlobalAction" }

// Tag implements [Variant].
func (*UserDefinedAction) Tag() string { return "UserDefinedAction" }

// Tag implements [Variant].
func (*Private) Tag() string { return "Private" }

// Tag implements [Variant].
func (*PrivateAction) Tag() string { return "PrivateAction" }

// Tag implements [Variant].
func (*ParameterAction) Tag() string { return "ParameterAction" }

// Tag implements [Variant].
func (*EnvironmentAction) Tag() string { return "EnvironmentAction" }

// Tag implements [Variant].
func (*LongitudinalAction) Tag() string { return "LongitudinalAction" }

// Tag implements [Variant].
func (*SpeedAction) Tag() string { return "SpeedAction" }

// Tag implements [Variant].
func (*LongitudinalDistanceAction) Tag() string { return "LongitudinalDistanceAction" }

// Tag implements [Variant].
func (*AbsoluteTargetSpeed) Tag() string { return "AbsoluteTargetSpeed" }

// Tag implements [Variant].
func (*RelativeTargetSpeed) Tag() string { return "RelativeTargetSpeed" }

// Tag implements [Variant].
func (*LateralAction) Tag() string { return "LateralAction" }

// Tag implements [Variant].
func (*LaneChangeAction) Tag() string { return "LaneChangeAction" }

// Tag implements [Variant].
func (*RelativeTargetLane) Tag() string { return "RelativeTargetLane" }

// Tag implements [Variant].
func (*AbsoluteTargetLane) Tag() string { return "AbsoluteTargetLane" }

// Tag implements [Variant].
func (*TeleportAction) Tag() string { return "TeleportAction" }

// Tag implements [Variant].
func (*ControllerAction) Tag() string { return "ControllerAction" }

// Tag implements [Variant].
func (*WorldPosition) Tag() string { return "WorldPosition" }

// Tag implements [Variant].
func (*LanePosition) Tag() string { return "LanePosition" }

// Tag implements [Variant].
func (*RelativeObjectPosition) Tag() string { return "RelativeObjectPosition" }

// Tag implements [Variant].
func (*ByEntityCondition) Tag() string { return "ByEntityCondition" }

// Tag implements [Variant].
func (*ByValueCondition) Tag() string { return "ByValueCondition" }

// Tag implements [Variant].
func (*SpeedCondition) Tag() string { return "SpeedCondition" }

// Tag implements [Variant].
func (*ReachPositionCondition) Tag() string { return "ReachPositionCondition" }

// Tag implements [Variant].
func (*RelativeDistanceCondition) Tag() string { return "RelativeDistanceCondition" }

// Tag implements [Variant].
func (*SimulationTimeCondition) Tag() string { return "SimulationTimeCondition" }

// Tag implements [Variant].
func (*ParameterCondition) Tag() string { return "ParameterCondition" }

// Tag implements [Variant].
func (*StoryboardElementStateCondition) Tag() string { return "StoryboardElementStateCondition" }

// Tag implements [Variant].
func (*ParameterSetAction) Tag() string { return "SetAction" }

// Tag implements [Variant].
func (*ParameterModifyAction) Tag() string { return "ModifyAction" }

// Tag implements [Variant].
func (*ModifyAddValue) Tag() string { return "AddValue" }

// Tag implements [Variant].
func (*ModifyMultiplyByValue) Tag() string { return "MultiplyByValue" }

func (*GlobalAction) isInitAction() {}
func (*UserDefinedAction) isInitAction() {}
func (*Private) isInitAction() {}
func (*GlobalAction) isAction() {}
func (*UserDefinedAction) isAction() {}
func (*PrivateAction) isAction() {}
func (*ParameterAction) isGlobalAction() {}
func (*EnvironmentAction) isGlobalAction() {}
func (*ParameterSetAction) isParameterAction() {}
func (*ParameterModifyAction) isParameterAction() {}
func (*ModifyAddValue) isModifyRule() {}
func (*ModifyMultiplyByValue) isModifyRule() {}
func (*LongitudinalAction) isPrivateAction() {}
func (*LateralAction) isPrivateAction() {}
func (*TeleportAction) isPrivateAction() {}
func (*ControllerAction) isPrivateAction() {}
func (*SpeedAction) isLongitudinalAction() {}
func (*LongitudinalDistanceAction) isLongitudinalAction() {}
func (*AbsoluteTargetSpeed) isSpeedTarget() {}
func (*RelativeTargetSpeed) isSpeedTarget() {}
func (*LaneChangeAction) isLateralAction() {}
func (*RelativeTargetLane) isLaneTarget() {}
func (*AbsoluteTargetLane) isLaneTarget() {}
func (*WorldPosition) isPosition() {}
func (*LanePosition) isPosition() {}
func (*RelativeObjectPosition) isPosition() {}
func (*ByEntityCondition) isCondition() {}
func (*ByValueCondition) isCondition() {}
func (*SpeedCondition) isEntityCondition() {}
func (*ReachPositionCondition) isEntityCondition() {}
func (*RelativeDistanceCondition) isEntityCondition() {}
func (*SimulationTimeCondition) isValueCondition() {}
func (*ParameterCondition) isValueCondition() {}
func (*StoryboardElementStateCondition) isValueCondition() {}

// EntryName implements [CatalogEntry].
func (v *Vehicle) EntryName() string { return v.Name }

// Category implements [CatalogEntry].
func (*Vehicle) Category() Category { return CategoryVehicle }

// Declarations implements [Declarer].
func (v *Vehicle) Declarations() []ParameterDeclaration { return v.ParameterDeclarations }

// SetDeclarations implements [Declarer].
func (v *Vehicle) SetDeclarations(d []ParameterDeclaration) { v.ParameterDeclarations = d }

// EntryName implements [CatalogEntry].
func (c *Controller) EntryName() string { return c.Name }

// Category implements [CatalogEntry].
func (*Controller) Category() Category { return CategoryController }

// Declarations implements [Declarer].
func (c *Controller) Declarations() []ParameterDeclaration { return c.ParameterDeclarations }

// SetDeclarations implements [Declarer].
func (c *Controller) SetDeclarations(d []ParameterDeclaration) { c.ParameterDeclarations = d }

// EntryName implements [CatalogEntry].
func (p *Pedestrian) EntryName() string { return p.Name }

// Category implements [CatalogEntry].
func (*Pedestrian) Category() Category { return CategoryPedestrian }

// Declarations implements [Declarer].
func (p *Pedestrian) Declarations() []ParameterDeclaration { return p.ParameterDeclarations }

// SetDeclarations implements [Declarer].
func (p *Pedestrian) SetDeclarations(d []ParameterDeclaration) { p.ParameterDeclarations = d }

// EntryName implements [CatalogEntry].
func (m *MiscObject) EntryName() string { return m.Name }

// Category implements [CatalogEntry].
func (*MiscObject) Category() Category { return CategoryMiscObject }

// Declarations implements [Declarer].
func (m *MiscObject) Declarations() []ParameterDeclaration { return m.ParameterDeclarations }

// SetDeclarations implements [Declarer].
func (m *MiscObject) SetDeclarations(d []ParameterDeclaration) { m.ParameterDeclarations = d }

// EntryName implements [CatalogEntry].
func (e *Environment) EntryName() string { return e.Name }

// Category implements [CatalogEntry].
func (*Environment) Category() Category { return CategoryEnvironment }

// Declarations implements [Declarer].
func (e *Environment) Declarations() []ParameterDeclaration { return e.ParameterDeclarations }

// SetDeclarations implements [Declarer].
func (e *Environment) SetDeclarations(d []ParameterDeclaration) { e.ParameterDeclarations = d }

// EntryName implements [CatalogEntry].
func (m *Maneuver) EntryName() string { return m.Name }

// Category implements [CatalogEntry].
func (*Maneuver) Category() Category { return CategoryManeuver }

// Declarations implements [Declarer].
func (m *Maneuver) Declarations() []ParameterDeclaration { return m.ParameterDeclarations }

// SetDeclarations implements [Declarer].
func (m *Maneuver) SetDeclarations(d []ParameterDeclaration) { m.ParameterDeclarations = d }

// EntryName implements [CatalogEntry].
func (t *Trajectory) EntryName() string { return t.Name }

// Category implements [CatalogEntry].
func (*Trajectory) Category() Category { return CategoryTrajectory }

// Declarations implements [Declarer].
func (t *Trajectory) Declarations() []ParameterDeclaration { return t.ParameterDeclarations }

// SetDeclarations implements [Declarer].
func (t *Trajectory) SetDeclarations(d []ParameterDeclaration) { t.ParameterDeclarations = d }

// EntryName implements [CatalogEntry].
func (r *Route) EntryName() string { return r.Name }

// Category implements [CatalogEntry].
func (*Route) Category() Category { return CategoryRoute }

// Declarations implements [Declarer].
func (r *Route) Declarations() []ParameterDeclaration { return r.ParameterDeclarations }

// SetDeclarations implements [Declarer].
func (r *Route) SetDeclarations(d []ParameterDeclaration) { r.ParameterDeclarations = d }
