// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the CLI drives the mission engine.
package primary

import (
	"context"

	"github.com/example/syndicate/internal/core/crackdown"
	"github.com/example/syndicate/internal/core/crew"
	"github.com/example/syndicate/internal/core/impact"
	"github.com/example/syndicate/internal/core/mission"
)

// MissionEngine defines the primary port for the mission lifecycle.
// Every mutating operation re-syncs the crackdown tier before it runs.
type MissionEngine interface {
	// GenerateInitialContracts fills the contract board from the registered templates.
	GenerateInitialContracts(ctx context.Context) (*GenerateContractsResponse, error)

	// StartMission assigns crew and a vehicle and starts an available mission.
	StartMission(ctx context.Context, req StartMissionRequest) (*StartMissionResponse, error)

	// ChooseMissionEventOption applies a choice to the active mission's pending decision.
	ChooseMissionEventOption(ctx context.Context, req ChooseEventOptionRequest) (*ChooseEventOptionResponse, error)

	// ResolveMission confirms the pending roll or forces an outcome.
	ResolveMission(ctx context.Context, req ResolveMissionRequest) (*ResolveMissionResponse, error)

	// Update advances the active mission by delta seconds.
	Update(ctx context.Context, delta float64) (*UpdateResponse, error)

	// PreviewCrewAssignment runs the modifier pipeline without touching game state.
	PreviewCrewAssignment(ctx context.Context, req PreviewRequest) (*PreviewResponse, error)

	// ActiveMission returns a copy of the active mission, or nil.
	ActiveMission(ctx context.Context) *mission.Mission

	// AvailableMissions returns copies of the contract board.
	AvailableMissions(ctx context.Context) []*mission.Mission

	// PendingDebts returns the debts owed against the next payout.
	PendingDebts(ctx context.Context) []mission.PendingDebt

	// LastVehicleReport returns the most recent reward vehicle report, or nil.
	LastVehicleReport(ctx context.Context) *mission.VehicleReport

	// Crew returns copies of the crew roster.
	Crew(ctx context.Context) []crew.Member

	// Fallout returns the fallout records produced so far.
	Fallout(ctx context.Context) []crew.FalloutRecord
}

// GenerateContractsResponse contains the contract board after generation.
type GenerateContractsResponse struct {
	Missions []*mission.Mission
	Rejected []string
}

// StartMissionRequest contains parameters for starting a mission.
type StartMissionRequest struct {
	MissionID string
	CrewIDs   []string
	VehicleID string // empty auto-selects the first idle operational vehicle
}

// StartMissionResponse contains the started mission.
type StartMissionResponse struct {
	Mission *mission.Mission
	Impact  impact.Result
}

// ChooseEventOptionRequest contains parameters for answering an event.
type ChooseEventOptionRequest struct {
	EventID  string
	ChoiceID string
}

// ChooseEventOptionResponse contains the mission after the choice. When the
// choice cleared the last due event after time ran out, the mission is either
// Resolved (auto resolve) or AwaitingConfirm.
type ChooseEventOptionResponse struct {
	Mission         *mission.Mission
	Debt            *mission.PendingDebt
	Resolved        *ResolveMissionResponse
	AwaitingConfirm bool
}

// ResolveMissionRequest contains parameters for resolving a mission.
// An empty Outcome confirms the pending roll.
type ResolveMissionRequest struct {
	MissionID string
	Outcome   mission.Outcome
}

// ResolveMissionResponse contains the completed mission and its record.
type ResolveMissionResponse struct {
	Mission    *mission.Mission
	Resolution mission.ResolutionDetails
}

// UpdateResponse reports what a tick did to the active mission.
type UpdateResponse struct {
	Mission          *mission.Mission // nil when no mission is active
	Decision         *mission.PendingDecision
	AwaitingDecision bool
	AwaitingConfirm  bool
	Resolved         *ResolveMissionResponse
}

// PreviewRequest contains parameters for an assignment preview.
type PreviewRequest struct {
	MissionID string
	CrewIDs   []string
	VehicleID string
}

// PreviewResponse contains the projected mission numbers.
type PreviewResponse struct {
	MissionID string
	Tier      crackdown.Tier
	Impact    impact.Result
	Warnings  []string
}
