// Package app contains the application layer - service implementations and effect execution.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/example/syndicate/internal/core/crew"
	"github.com/example/syndicate/internal/core/effects"
	"github.com/example/syndicate/internal/core/garage"
	"github.com/example/syndicate/internal/core/mission"
	"github.com/example/syndicate/internal/ports/secondary"
)

// EffectExecutor interprets and executes effects.
// This is the "Imperative Shell" - the only place game state and collaborators change.
type EffectExecutor interface {
	Execute(ctx context.Context, effs []effects.Effect) error
}

// ExecutorDeps are the collaborators effects are applied to.
type ExecutorDeps struct {
	Heat      secondary.HeatSystem
	Economy   secondary.Economy
	City      secondary.City
	Storyline secondary.StorylineCatalog
	Notoriety *NotorietyServiceImpl
	Board     *ContractBoard
	Logger    zerolog.Logger
	Now       func() time.Time
}

// DefaultEffectExecutor applies effects to GameState and the collaborators.
// Execute expects the caller to hold the state lock.
type DefaultEffectExecutor struct {
	state *GameState
	deps  ExecutorDeps
}

// NewEffectExecutor creates a new DefaultEffectExecutor.
func NewEffectExecutor(state *GameState, deps ExecutorDeps) *DefaultEffectExecutor {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &DefaultEffectExecutor{state: state, deps: deps}
}

// Execute processes a slice of effects in sequence. A failing effect does not
// stop the rest; every failure is reported in the joined error.
func (e *DefaultEffectExecutor) Execute(ctx context.Context, effs []effects.Effect) error {
	var errs []error
	for _, eff := range effs {
		if err := e.executeOne(ctx, eff); err != nil {
			errs = append(errs, fmt.Errorf("failed to execute %s effect: %w", eff.EffectType(), err))
		}
	}
	return errors.Join(errs...)
}

func (e *DefaultEffectExecutor) executeOne(ctx context.Context, eff effects.Effect) error {
	switch typed := eff.(type) {
	case effects.FundsEffect:
		e.deps.Economy.AdjustFunds(typed.Delta)
		return nil
	case effects.HeatEffect:
		e.deps.Heat.Increase(typed.Amount)
		return nil
	case effects.MitigationEffect:
		return e.executeMitigation(typed)
	case effects.LoyaltyEffect:
		return e.executeLoyalty(typed)
	case effects.CrewStatusEffect:
		return e.executeCrewStatus(typed)
	case effects.VehicleWearEffect:
		return e.executeVehicleWear(typed)
	case effects.VehicleReleaseEffect:
		v := e.state.vehicleByID(typed.VehicleID)
		if v == nil {
			return fmt.Errorf("vehicle %s not found", typed.VehicleID)
		}
		v.InUse = false
		return nil
	case effects.GarageAddEffect:
		e.state.Garage = append(e.state.Garage, &garage.Vehicle{
			ID:           typed.VehicleID,
			Model:        typed.Model,
			TopSpeed:     typed.TopSpeed,
			Acceleration: typed.Acceleration,
			Handling:     typed.Handling,
			HeatRating:   typed.HeatRating,
			Value:        typed.Value,
			Condition:    1,
		})
		return nil
	case effects.DebtEffect:
		e.executeDebt(typed)
		return nil
	case effects.DistrictEffect:
		return e.executeDistrict(typed)
	case effects.FalloutEffect:
		e.state.Fallout = append(e.state.Fallout, crew.FalloutRecord{
			CrewID:          typed.CrewID,
			CrewName:        typed.CrewName,
			Status:          crew.FalloutStatus(typed.Status),
			Severity:        typed.Severity,
			SourceMissionID: typed.SourceMissionID,
			Guaranteed:      typed.Guaranteed,
			Timestamp:       e.deps.Now(),
		})
		return nil
	case effects.FollowUpEffect:
		return e.executeFollowUp(typed)
	case effects.NotorietyEffect:
		e.deps.Notoriety.adjustLocked(typed.Delta, "mission resolved")
		return nil
	case effects.StorylineEffect:
		return e.executeStoryline(typed)
	case effects.CompositeEffect:
		return e.Execute(ctx, typed.Effects)
	case effects.NoEffect:
		return nil
	case effects.LogEffect:
		e.executeLog(typed)
		return nil
	default:
		return fmt.Errorf("unknown effect type: %T", eff)
	}
}

func (e *DefaultEffectExecutor) executeMitigation(eff effects.MitigationEffect) error {
	result := e.deps.Heat.ApplyMitigation(eff.Amount, eff.Meta)
	e.deps.Logger.Info().
		Float64("requested", eff.Amount).
		Float64("applied", result.ReductionApplied).
		Float64("heat_before", result.HeatBefore).
		Float64("heat_after", result.HeatAfter).
		Msg("heat mitigated")
	return nil
}

func (e *DefaultEffectExecutor) executeLoyalty(eff effects.LoyaltyEffect) error {
	m := e.state.crewByID(eff.CrewID)
	if m == nil {
		return fmt.Errorf("crew member %s not found", eff.CrewID)
	}
	m.Loyalty = crew.ClampLoyalty(m.Loyalty + eff.Delta)
	return nil
}

func (e *DefaultEffectExecutor) executeCrewStatus(eff effects.CrewStatusEffect) error {
	m := e.state.crewByID(eff.CrewID)
	if m == nil {
		return fmt.Errorf("crew member %s not found", eff.CrewID)
	}
	m.Status = crew.Status(eff.Status)
	return nil
}

func (e *DefaultEffectExecutor) executeVehicleWear(eff effects.VehicleWearEffect) error {
	v := e.state.vehicleByID(eff.VehicleID)
	if v == nil {
		return fmt.Errorf("vehicle %s not found", eff.VehicleID)
	}
	v.Condition = eff.Condition
	v.Heat = eff.Heat
	return nil
}

// executeDebt records a payment. Settled debts leave the queue.
func (e *DefaultEffectExecutor) executeDebt(eff effects.DebtEffect) {
	kept := e.state.Debts[:0]
	for _, d := range e.state.Debts {
		if d.ID == eff.DebtID {
			d.Remaining = eff.Remaining
			if d.Remaining <= 0 {
				continue
			}
		}
		kept = append(kept, d)
	}
	e.state.Debts = kept
}

func (e *DefaultEffectExecutor) executeDistrict(eff effects.DistrictEffect) error {
	if e.deps.City == nil {
		return nil
	}
	if _, ok := e.deps.City.District(eff.DistrictID); !ok {
		return fmt.Errorf("district %s not found", eff.DistrictID)
	}
	if eff.Influence != 0 {
		e.deps.City.AdjustInfluence(eff.DistrictID, eff.Influence)
	}
	if eff.Intel != 0 {
		e.deps.City.AdjustIntelLevel(eff.DistrictID, eff.Intel)
	}
	if eff.CrackdownPressure != 0 {
		e.deps.City.AdjustCrackdownPressure(eff.DistrictID, eff.CrackdownPressure)
	}
	return nil
}

func (e *DefaultEffectExecutor) executeFollowUp(eff effects.FollowUpEffect) error {
	record := crew.FalloutRecord{CrewID: eff.CrewID, CrewName: eff.CrewName, Status: crew.FalloutStatus(eff.Status)}
	t, ok := mission.FollowUpTemplate(record, eff.SourceDifficulty)
	if !ok {
		return nil
	}
	if m := e.deps.Board.spawnFollowUp(t); m != nil {
		e.deps.Logger.Info().
			Str("mission_id", m.ID).
			Str("crew_id", eff.CrewID).
			Str("status", eff.Status).
			Msg("follow-up contract queued")
	}
	return nil
}

func (e *DefaultEffectExecutor) executeStoryline(eff effects.StorylineEffect) error {
	if e.deps.Storyline == nil {
		return nil
	}
	result := e.deps.Storyline.RecordOutcome(
		mission.StorylineLink{CrewID: eff.CrewID, StepID: eff.StepID},
		mission.Outcome(eff.Outcome),
	)
	if result.LoyaltyDelta != 0 {
		if m := e.state.crewByID(eff.CrewID); m != nil {
			m.Loyalty = crew.ClampLoyalty(m.Loyalty + result.LoyaltyDelta)
		}
	}
	e.deps.Logger.Info().
		Str("crew_id", eff.CrewID).
		Str("step_id", eff.StepID).
		Bool("advanced", result.Advanced).
		Msg(result.Summary)
	return nil
}

func (e *DefaultEffectExecutor) executeLog(eff effects.LogEffect) {
	var ev *zerolog.Event
	switch eff.Level {
	case "debug":
		ev = e.deps.Logger.Debug()
	case "warn":
		ev = e.deps.Logger.Warn()
	case "error":
		ev = e.deps.Logger.Error()
	default:
		ev = e.deps.Logger.Info()
	}
	ev.Fields(eff.Fields).Msg(eff.Message)
}
