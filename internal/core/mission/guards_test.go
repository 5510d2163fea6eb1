package mission

import (
	"testing"

	"github.com/example/syndicate/internal/core/crew"
	"github.com/example/syndicate/internal/core/garage"
)

func TestCanStartMission(t *testing.T) {
	idle := crew.AssignContext{CrewID: "crew-001", Found: true, Status: crew.StatusIdle}

	tests := []struct {
		name        string
		ctx         StartContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "available mission with idle crew can start",
			ctx:         StartContext{MissionID: "job-001", Found: true, Status: StatusAvailable, Crew: []crew.AssignContext{idle}},
			wantAllowed: true,
		},
		{
			name:        "second start rejected while another mission is active",
			ctx:         StartContext{MissionID: "job-002", Found: true, Status: StatusAvailable, ActiveMissionID: "job-001"},
			wantAllowed: false,
			wantReason:  "cannot start job-002: mission job-001 is already active",
		},
		{
			name:        "missing mission",
			ctx:         StartContext{MissionID: "job-404"},
			wantAllowed: false,
			wantReason:  "mission job-404 not found",
		},
		{
			name:        "completed mission",
			ctx:         StartContext{MissionID: "job-001", Found: true, Status: StatusCompleted},
			wantAllowed: false,
			wantReason:  "mission job-001 is completed, not available",
		},
		{
			name: "restricted mission",
			ctx: StartContext{
				MissionID:         "job-001",
				Found:             true,
				Status:            StatusAvailable,
				Restricted:        true,
				RestrictionReason: "lockdown crackdown caps mission heat at 1 (mission heat 3)",
			},
			wantAllowed: false,
			wantReason:  "mission job-001 is restricted: lockdown crackdown caps mission heat at 1 (mission heat 3)",
		},
		{
			name: "injured crew member",
			ctx: StartContext{
				MissionID: "job-001",
				Found:     true,
				Status:    StatusAvailable,
				Crew:      []crew.AssignContext{{CrewID: "crew-002", Found: true, Status: crew.StatusInjured}},
			},
			wantAllowed: false,
			wantReason:  "crew member crew-002 is injured, not mission-ready",
		},
		{
			name: "duplicate crew member",
			ctx: StartContext{
				MissionID: "job-001",
				Found:     true,
				Status:    StatusAvailable,
				Crew:      []crew.AssignContext{idle, idle},
			},
			wantAllowed: false,
			wantReason:  "crew member crew-001 listed more than once",
		},
		{
			name: "requested vehicle in use",
			ctx: StartContext{
				MissionID:        "job-001",
				Found:            true,
				Status:           StatusAvailable,
				VehicleRequested: true,
				Vehicle:          garage.AssignContext{VehicleID: "vehicle-001", Found: true, InUse: true, Condition: 1},
			},
			wantAllowed: false,
			wantReason:  "vehicle vehicle-001 is already in use",
		},
		{
			name: "requested vehicle wrecked",
			ctx: StartContext{
				MissionID:        "job-001",
				Found:            true,
				Status:           StatusAvailable,
				VehicleRequested: true,
				Vehicle:          garage.AssignContext{VehicleID: "vehicle-001", Found: true, Condition: 0.05},
			},
			wantAllowed: false,
			wantReason:  "vehicle vehicle-001 is not operational (condition 0.05)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanStartMission(tt.ctx)

			if result.Allowed != tt.wantAllowed {
				t.Errorf("CanStartMission() Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if result.Reason != tt.wantReason {
				t.Errorf("CanStartMission() Reason = %q, want %q", result.Reason, tt.wantReason)
			}

			err := result.Error()
			if tt.wantAllowed && err != nil {
				t.Errorf("Error() should return nil when allowed, got %v", err)
			}
			if !tt.wantAllowed && err == nil {
				t.Error("Error() should return error when not allowed")
			}
		})
	}
}

func TestCanChooseOption(t *testing.T) {
	event := EventDefinition{
		ID:      "checkpoint",
		Choices: []Choice{{ID: "bribe"}, {ID: "detour"}},
	}
	pending := &PendingDecision{EventID: "checkpoint", Event: event}

	tests := []struct {
		name        string
		ctx         ChoiceContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "valid choice",
			ctx:         ChoiceContext{MissionID: "job-001", HasActive: true, Pending: pending, EventID: "checkpoint", ChoiceID: "bribe", EventInDeck: true},
			wantAllowed: true,
		},
		{
			name:        "no active mission",
			ctx:         ChoiceContext{EventID: "checkpoint", ChoiceID: "bribe"},
			wantAllowed: false,
			wantReason:  "no active mission",
		},
		{
			name:        "no pending decision",
			ctx:         ChoiceContext{MissionID: "job-001", HasActive: true, EventID: "checkpoint", ChoiceID: "bribe", EventInDeck: true},
			wantAllowed: false,
			wantReason:  "mission job-001 has no pending decision",
		},
		{
			name:        "event from another mission",
			ctx:         ChoiceContext{MissionID: "job-001", HasActive: true, Pending: pending, EventID: "ambush", ChoiceID: "fight"},
			wantAllowed: false,
			wantReason:  "event ambush is not part of mission job-001",
		},
		{
			name:        "event in deck but not pending",
			ctx:         ChoiceContext{MissionID: "job-001", HasActive: true, Pending: pending, EventID: "getaway", ChoiceID: "floor-it", EventInDeck: true},
			wantAllowed: false,
			wantReason:  "event getaway is not the pending decision (pending: checkpoint)",
		},
		{
			name:        "choice not offered",
			ctx:         ChoiceContext{MissionID: "job-001", HasActive: true, Pending: pending, EventID: "checkpoint", ChoiceID: "shoot", EventInDeck: true},
			wantAllowed: false,
			wantReason:  "choice shoot is not an option of event checkpoint",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanChooseOption(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("CanChooseOption() Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if result.Reason != tt.wantReason {
				t.Errorf("CanChooseOption() Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestCanResolveMission(t *testing.T) {
	tests := []struct {
		name        string
		ctx         ResolveContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "confirm pending roll",
			ctx:         ResolveContext{MissionID: "job-001", Found: true, Status: StatusAwaitingResolution, HasPendingRoll: true},
			wantAllowed: true,
		},
		{
			name:        "confirm without pending roll",
			ctx:         ResolveContext{MissionID: "job-001", Found: true, Status: StatusInProgress},
			wantAllowed: false,
			wantReason:  "mission job-001 has no pending resolution (status: in-progress)",
		},
		{
			name:        "success from awaiting resolution",
			ctx:         ResolveContext{MissionID: "job-001", Found: true, Status: StatusAwaitingResolution, Requested: OutcomeSuccess},
			wantAllowed: true,
		},
		{
			name:        "success on available mission is rejected",
			ctx:         ResolveContext{MissionID: "job-001", Found: true, Status: StatusAvailable, Requested: OutcomeSuccess},
			wantAllowed: false,
			wantReason:  "mission job-001 cannot resolve as success from status available",
		},
		{
			name:        "success on completed mission is rejected",
			ctx:         ResolveContext{MissionID: "job-001", Found: true, Status: StatusCompleted, Requested: OutcomeSuccess},
			wantAllowed: false,
			wantReason:  "mission job-001 cannot resolve as success from status completed",
		},
		{
			name:        "failure forced mid-mission",
			ctx:         ResolveContext{MissionID: "job-001", Found: true, Status: StatusInProgress, Requested: OutcomeFailure},
			wantAllowed: true,
		},
		{
			name:        "failure forced during a decision",
			ctx:         ResolveContext{MissionID: "job-001", Found: true, Status: StatusDecisionRequired, Requested: OutcomeFailure},
			wantAllowed: true,
		},
		{
			name:        "failure on available mission is rejected",
			ctx:         ResolveContext{MissionID: "job-001", Found: true, Status: StatusAvailable, Requested: OutcomeFailure},
			wantAllowed: false,
			wantReason:  "mission job-001 cannot be failed from status available",
		},
		{
			name:        "unknown mission",
			ctx:         ResolveContext{MissionID: "job-404", Requested: OutcomeFailure},
			wantAllowed: false,
			wantReason:  "mission job-404 not found",
		},
		{
			name:        "unknown outcome",
			ctx:         ResolveContext{MissionID: "job-001", Found: true, Status: StatusAwaitingResolution, Requested: "draw"},
			wantAllowed: false,
			wantReason:  `unknown outcome "draw"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanResolveMission(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("CanResolveMission() Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if result.Reason != tt.wantReason {
				t.Errorf("CanResolveMission() Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}
