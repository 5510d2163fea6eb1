package mission

import (
	"fmt"

	"github.com/example/syndicate/internal/core/crew"
	"github.com/example/syndicate/internal/core/garage"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error returns the guard result as an error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// StartContext provides context for mission start guards.
type StartContext struct {
	MissionID         string
	Found             bool
	Status            Status
	Restricted        bool
	RestrictionReason string
	ActiveMissionID   string // empty when the active slot is free
	Crew              []crew.AssignContext
	VehicleRequested  bool
	Vehicle           garage.AssignContext
}

// CanStartMission evaluates whether a mission can be started.
// Rules:
// - No other mission may be active
// - Mission must exist, be available and not restricted
// - Every crew member must be assignable, and listed once
// - An explicitly requested vehicle must be assignable
func CanStartMission(ctx StartContext) GuardResult {
	if ctx.ActiveMissionID != "" {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("cannot start %s: mission %s is already active", ctx.MissionID, ctx.ActiveMissionID),
		}
	}

	if !ctx.Found {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("mission %s not found", ctx.MissionID),
		}
	}

	if ctx.Status != StatusAvailable {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("mission %s is %s, not available", ctx.MissionID, ctx.Status),
		}
	}

	if ctx.Restricted {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("mission %s is restricted: %s", ctx.MissionID, ctx.RestrictionReason),
		}
	}

	seen := make(map[string]bool, len(ctx.Crew))
	for _, c := range ctx.Crew {
		if seen[c.CrewID] {
			return GuardResult{
				Allowed: false,
				Reason:  fmt.Sprintf("crew member %s listed more than once", c.CrewID),
			}
		}
		seen[c.CrewID] = true
		if r := crew.CanAssign(c); !r.Allowed {
			return GuardResult{Allowed: false, Reason: r.Reason}
		}
	}

	if ctx.VehicleRequested {
		if r := garage.CanAssign(ctx.Vehicle); !r.Allowed {
			return GuardResult{Allowed: false, Reason: r.Reason}
		}
	}

	return GuardResult{Allowed: true}
}

// ChoiceContext provides context for event choice guards.
type ChoiceContext struct {
	MissionID   string
	HasActive   bool
	Pending     *PendingDecision
	EventID     string
	ChoiceID    string
	EventInDeck bool
}

// CanChooseOption evaluates whether a choice can be applied to the active mission.
// Rules:
// - There must be an active mission with a pending decision
// - The event must belong to the mission's deck and be the pending one
// - The choice must be an option of that event
func CanChooseOption(ctx ChoiceContext) GuardResult {
	if !ctx.HasActive {
		return GuardResult{Allowed: false, Reason: "no active mission"}
	}

	if ctx.Pending == nil {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("mission %s has no pending decision", ctx.MissionID),
		}
	}

	if !ctx.EventInDeck {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("event %s is not part of mission %s", ctx.EventID, ctx.MissionID),
		}
	}

	if ctx.Pending.EventID != ctx.EventID {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("event %s is not the pending decision (pending: %s)", ctx.EventID, ctx.Pending.EventID),
		}
	}

	if _, ok := ctx.Pending.Event.Choice(ctx.ChoiceID); !ok {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("choice %s is not an option of event %s", ctx.ChoiceID, ctx.EventID),
		}
	}

	return GuardResult{Allowed: true}
}

// ResolveContext provides context for resolution guards.
type ResolveContext struct {
	MissionID      string
	Found          bool
	Status         Status
	Requested      Outcome
	HasPendingRoll bool
}

// CanResolveMission evaluates whether a mission can be resolved with the requested outcome.
// Rules:
// - An empty outcome confirms the pending roll; the mission must be awaiting resolution
// - Success can only be forced once the mission is awaiting resolution
// - Failure can be forced from awaiting resolution, in progress or decision required
func CanResolveMission(ctx ResolveContext) GuardResult {
	if !ctx.Found {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("mission %s not found", ctx.MissionID),
		}
	}

	switch ctx.Requested {
	case OutcomeNone:
		if ctx.Status != StatusAwaitingResolution || !ctx.HasPendingRoll {
			return GuardResult{
				Allowed: false,
				Reason:  fmt.Sprintf("mission %s has no pending resolution (status: %s)", ctx.MissionID, ctx.Status),
			}
		}
	case OutcomeSuccess:
		if ctx.Status != StatusAwaitingResolution {
			return GuardResult{
				Allowed: false,
				Reason:  fmt.Sprintf("mission %s cannot resolve as success from status %s", ctx.MissionID, ctx.Status),
			}
		}
	case OutcomeFailure:
		switch ctx.Status {
		case StatusAwaitingResolution, StatusInProgress, StatusDecisionRequired:
		default:
			return GuardResult{
				Allowed: false,
				Reason:  fmt.Sprintf("mission %s cannot be failed from status %s", ctx.MissionID, ctx.Status),
			}
		}
	default:
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("unknown outcome %q", ctx.Requested),
		}
	}

	return GuardResult{Allowed: true}
}
