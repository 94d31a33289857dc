package document

import (
	"encoding/xml"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ardnew/scenic/value"
)

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<OpenSCENARIO>
  <FileHeader author="tester" description="cut-in" revMajor="1" revMinor="3"/>
  <ParameterDeclarations>
    <ParameterDeclaration name="EgoSpeed" parameterType="double" value="30"/>
    <ParameterDeclaration name="Offset" parameterType="double" value="${EgoSpeed / 2}"/>
  </ParameterDeclarations>
  <CatalogLocations>
    <VehicleCatalog>
      <Directory path="catalogs/vehicles"/>
    </VehicleCatalog>
  </CatalogLocations>
  <Entities>
    <ScenarioObject name="Ego">
      <CatalogReference catalogName="VehicleCatalog" entryName="car">
        <ParameterAssignments>
          <ParameterAssignment parameterRef="MaxSpeed" value="$EgoSpeed"/>
        </ParameterAssignments>
      </CatalogReference>
    </ScenarioObject>
    <ScenarioObject name="Target">
      <Vehicle name="truck" vehicleCategory="truck">
        <Performance maxSpeed="25" maxAcceleration="2" maxDeceleration="8"/>
      </Vehicle>
      <ObjectController>
        <Controller name="driver"/>
      </ObjectController>
    </ScenarioObject>
  </Entities>
  <Storyboard>
    <Init>
      <Actions>
        <GlobalAction>
          <ParameterAction parameterRef="EgoSpeed">
            <SetAction value="35"/>
          </ParameterAction>
        </GlobalAction>
        <Private entityRef="Ego">
          <PrivateAction>
            <TeleportAction>
              <Position>
                <WorldPosition x="0" y="$Offset"/>
              </Position>
            </TeleportAction>
          </PrivateAction>
        </Private>
        <GlobalAction>
          <ParameterAction parameterRef="EgoSpeed">
            <ModifyAction>
              <Rule>
                <AddValue value="1.5"/>
              </Rule>
            </ModifyAction>
          </ParameterAction>
        </GlobalAction>
      </Actions>
    </Init>
    <Story name="main">
      <Act name="cut">
        <ManeuverGroup name="group" maximumExecutionCount="1">
          <Actors selectTriggeringEntities="false">
            <EntityRef entityRef="Target"/>
          </Actors>
          <Maneuver name="lane">
            <Event name="change" priority="override">
              <Action name="go">
                <PrivateAction>
                  <LongitudinalAction>
                    <SpeedAction>
                      <SpeedActionDynamics dynamicsShape="step" value="0" dynamicsDimension="time"/>
                      <SpeedActionTarget>
                        <AbsoluteTargetSpeed value="${EgoSpeed + 5}"/>
                      </SpeedActionTarget>
                    </SpeedAction>
                  </LongitudinalAction>
                </PrivateAction>
              </Action>
              <StartTrigger>
                <ConditionGroup>
                  <Condition name="time" delay="0" conditionEdge="rising">
                    <ByValueCondition>
                      <SimulationTimeCondition value="2" rule="greaterThan"/>
                    </ByValueCondition>
                  </Condition>
                </ConditionGroup>
              </StartTrigger>
            </Event>
          </Maneuver>
        </ManeuverGroup>
      </Act>
    </Story>
  </Storyboard>
</OpenSCENARIO>
`

func sampleFile() *File {
	return &File{
		FileHeader: FileHeader{
			Author:      value.Literal("tester"),
			Description: value.Literal("cut-in"),
			RevMajor:    value.Literal[uint16](1),
			RevMinor:    value.Literal[uint16](3),
		},
		ParameterDeclarations: []ParameterDeclaration{
			{Name: "EgoSpeed", ParameterType: value.TypeDouble, Value: "30"},
			{Name: "Offset", ParameterType: value.TypeDouble, Value: "${EgoSpeed / 2}"},
		},
		CatalogLocations: &CatalogLocations{
			VehicleCatalog: &Location{Directory: Directory{Path: value.Literal("catalogs/vehicles")}},
		},
		Entities: &Entities{
			ScenarioObjects: []ScenarioObject{
				{
					Name: "Ego",
					EntityObject: EntityObject{Value: &CatalogReference{
						CatalogName: value.Literal("VehicleCatalog"),
						EntryName:   value.Literal("car"),
						ParameterAssignments: []ParameterAssignment{
							{ParameterRef: "MaxSpeed", Value: value.Parameter[string]("EgoSpeed")},
						},
					}},
				},
				{
					Name: "Target",
					EntityObject: EntityObject{Value: &Vehicle{
						Name:            "truck",
						VehicleCategory: value.Literal(VehicleTruck),
						Performance: Performance{
							MaxSpeed:        value.Literal(25.0),
							MaxAcceleration: value.Literal(2.0),
							MaxDeceleration: value.Literal(8.0),
						},
					}},
					ObjectController: &ObjectController{
						Controller: ControllerObject{Value: &Controller{Name: "driver"}},
					},
				},
			},
		},
		Storyboard: &Storyboard{
			Init: Init{Actions: InitActions{Actions: Seq[InitActionKind, initActionKinds]{
				&GlobalAction{Kind: Choice[GlobalActionKind, globalActionKinds]{Value: &ParameterAction{
					ParameterRef: value.Literal[ParameterName]("EgoSpeed"),
					Kind: Choice[ParameterActionKind, parameterActionKinds]{
						Value: &ParameterSetAction{Value: value.Literal("35")},
					},
				}}},
				&Private{
					EntityRef: value.Literal[EntityName]("Ego"),
					PrivateActions: []PrivateAction{
						{Kind: Choice[PrivateActionKind, privateActionKinds]{Value: &TeleportAction{
							Position: Position{Kind: Choice[PositionKind, positionKinds]{Value: &WorldPosition{
								X: value.Literal(0.0),
								Y: value.Parameter[float64]("Offset"),
							}}},
						}}},
					},
				},
				&GlobalAction{Kind: Choice[GlobalActionKind, globalActionKinds]{Value: &ParameterAction{
					ParameterRef: value.Literal[ParameterName]("EgoSpeed"),
					Kind: Choice[ParameterActionKind, parameterActionKinds]{
						Value: &ParameterModifyAction{Rule: ModifyRule{
							Kind: Choice[ModifyRuleKind, modifyRuleKinds]{Value: &ModifyAddValue{Value: value.Literal(1.5)}},
						}},
					},
				}}},
			}}},
			Stories: []Story{{
				Name: "main",
				Acts: []Act{{
					Name: "cut",
					ManeuverGroups: []ManeuverGroup{{
						Name:                  "group",
						MaximumExecutionCount: value.Literal[uint32](1),
						Actors: Actors{
							SelectTriggeringEntities: value.Literal(false),
							EntityRefs:               []EntityRef{{EntityRef: value.Literal[EntityName]("Target")}},
						},
						Maneuvers: []Maneuver{sampleManeuver()},
					}},
				}},
			}},
		},
	}
}

func sampleManeuver() Maneuver {
	return Maneuver{
		Name: "lane",
		Events: []Event{{
			Name:     "change",
			Priority: value.Literal(PriorityOverride),
			Actions: []Action{{
				Name: "go",
				Kind: ActionKind{Value: &PrivateAction{Kind: Choice[PrivateActionKind, privateActionKinds]{
					Value: &LongitudinalAction{Kind: Choice[LongitudinalActionKind, longitudinalActionKinds]{
						Value: &SpeedAction{
							Dynamics: TransitionDynamics{
								DynamicsShape:     value.Literal(ShapeStep),
								Value:             value.Literal(0.0),
								DynamicsDimension: value.Literal(DimensionTime),
							},
							Target: SpeedActionTarget{Kind: Choice[SpeedTargetKind, speedTargetKinds]{
								Value: &AbsoluteTargetSpeed{Value: value.Parameter[float64]("EgoSpeed + 5")},
							}},
						},
					}},
				}}},
			}},
			StartTrigger: &Trigger{ConditionGroups: []ConditionGroup{{
				Conditions: []Condition{{
					Name:          "time",
					Delay:         value.Literal(0.0),
					ConditionEdge: value.Literal(EdgeRising),
					Kind: ConditionKind{Value: &ByValueCondition{Kind: Choice[ValueConditionKind, valueConditionKinds]{
						Value: &SimulationTimeCondition{
							Value: value.Literal(2.0),
							Rule:  value.Literal(RuleGreaterThan),
						},
					}}},
				}},
			}}},
		}},
	}
}

// docOptions compares decoded documents with constructed ones.
var docOptions = cmp.Options{
	cmpopts.IgnoreTypes(xml.Name{}),
	cmpopts.EquateEmpty(),
}
