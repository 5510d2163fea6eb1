package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/example/syndicate/internal/core/crew"
	"github.com/example/syndicate/internal/core/garage"
	"github.com/example/syndicate/internal/core/impact"
	"github.com/example/syndicate/internal/core/mission"
	"github.com/example/syndicate/internal/core/resolution"
	"github.com/example/syndicate/internal/ctxutil"
	"github.com/example/syndicate/internal/ports/primary"
	"github.com/example/syndicate/internal/ports/secondary"
)

// EngineConfig holds the engine's behaviour switches.
type EngineConfig struct {
	// AutoResolve applies the drawn roll as soon as a mission runs out of time.
	// When false the caller confirms with ResolveMission.
	AutoResolve bool
}

// EngineDeps are the collaborators injected into the engine.
type EngineDeps struct {
	Safehouse  secondary.Safehouse
	Deck       secondary.EventDeckGenerator
	MissionLog secondary.MissionLogRepository // nil disables the mission log
	Random     secondary.RandomSource
	Crackdown  *CrackdownServiceImpl
	Notoriety  *NotorietyServiceImpl
	Board      *ContractBoard
	Executor   EffectExecutor
	Logger     zerolog.Logger
	Now        func() time.Time
}

// MissionEngineImpl implements the MissionEngine interface.
type MissionEngineImpl struct {
	state *GameState
	cfg   EngineConfig
	deps  EngineDeps
}

// NewMissionEngine creates a new MissionEngine with injected dependencies.
func NewMissionEngine(state *GameState, cfg EngineConfig, deps EngineDeps) *MissionEngineImpl {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &MissionEngineImpl{state: state, cfg: cfg, deps: deps}
}

// GenerateInitialContracts registers every template source and fills the board.
func (e *MissionEngineImpl) GenerateInitialContracts(ctx context.Context) (*primary.GenerateContractsResponse, error) {
	e.state.mu.Lock()
	defer e.state.mu.Unlock()
	e.deps.Crackdown.syncLocked()

	rejected := e.deps.Board.seed(nil)
	e.state.pruneCompleted()
	added := e.deps.Board.refill()

	e.deps.Logger.Info().
		Int("added", added).
		Int("templates", e.state.Registry.Len()).
		Int("rejected", len(rejected)).
		Str("tier", string(e.state.Tier)).
		Msg("contracts generated")

	return &primary.GenerateContractsResponse{
		Missions: cloneMissions(e.state.Available),
		Rejected: rejected,
	}, nil
}

// StartMission assigns crew and a vehicle to an available mission and starts it.
func (e *MissionEngineImpl) StartMission(ctx context.Context, req primary.StartMissionRequest) (*primary.StartMissionResponse, error) {
	e.state.mu.Lock()
	defer e.state.mu.Unlock()
	e.deps.Crackdown.syncLocked()
	e.state.pruneCompleted()

	m, _ := e.state.availableByID(req.MissionID)
	if m != nil {
		mission.ApplyRestriction(m, e.state.Tier)
	}

	guardCtx := mission.StartContext{
		MissionID:        req.MissionID,
		Found:            m != nil,
		VehicleRequested: req.VehicleID != "",
	}
	if e.state.Active.Active() {
		guardCtx.ActiveMissionID = e.state.Active.ID
	}
	if m != nil {
		guardCtx.Status = m.Status
		guardCtx.Restricted = m.Restricted
		guardCtx.RestrictionReason = m.RestrictionReason
	}
	members := make([]*crew.Member, 0, len(req.CrewIDs))
	for _, id := range req.CrewIDs {
		c := crew.AssignContext{CrewID: id}
		if member := e.state.crewByID(id); member != nil {
			c.Found = true
			c.Status = member.Status
			members = append(members, member)
		}
		guardCtx.Crew = append(guardCtx.Crew, c)
	}

	var vehicle *garage.Vehicle
	if req.VehicleID != "" {
		vehicle = e.state.vehicleByID(req.VehicleID)
		guardCtx.Vehicle = garage.AssignContext{VehicleID: req.VehicleID}
		if vehicle != nil {
			guardCtx.Vehicle.Found = true
			guardCtx.Vehicle.InUse = vehicle.InUse
			guardCtx.Vehicle.Condition = vehicle.Condition
		}
	}

	if err := mission.CanStartMission(guardCtx).Error(); err != nil {
		return nil, err
	}

	if vehicle == nil {
		vehicle = garage.SelectFirstAvailable(e.state.Garage)
	}

	result := impact.Compute(m.ImpactInput(e.state.Tier), members, vehicle, e.state.Player)

	assignment := &mission.Assignment{
		CrewIDs:       append([]string(nil), req.CrewIDs...),
		VehicleImpact: result.VehicleImpact,
		Summaries:     result.Summaries,
	}
	for _, member := range members {
		assignment.CrewSnapshots = append(assignment.CrewSnapshots, member.Snapshot())
	}
	if vehicle != nil {
		snap := vehicle.Snapshot()
		assignment.VehicleID = vehicle.ID
		assignment.VehicleSnapshot = &snap
	}

	deck := e.buildDeck(m, req.CrewIDs, assignment.VehicleID, result)
	mission.Start(m, assignment, result, deck)

	for _, member := range members {
		member.Status = crew.StatusOnMission
	}
	if vehicle != nil {
		vehicle.InUse = true
	}
	e.state.Active = m
	mission.AdvanceEvents(m, e.state.Tier)

	e.deps.Logger.Info().
		Str("mission_id", m.ID).
		Strs("crew", req.CrewIDs).
		Str("vehicle_id", assignment.VehicleID).
		Float64("chance", m.SuccessChance).
		Float64("payout", m.Payout).
		Float64("heat", m.Heat).
		Float64("duration", m.Duration).
		Int("events", len(m.EventDeck)).
		Msg("mission started")

	return &primary.StartMissionResponse{Mission: m.Clone(), Impact: result}, nil
}

func (e *MissionEngineImpl) buildDeck(m *mission.Mission, crewIDs []string, vehicleID string, r impact.Result) []mission.EventDefinition {
	if e.deps.Deck == nil {
		return nil
	}
	return e.deps.Deck.BuildDeck(secondary.DeckContext{
		MissionID:       m.ID,
		TemplateID:      m.TemplateID,
		Category:        m.Category,
		DistrictID:      m.DistrictID,
		PointOfInterest: m.PointOfInterest,
		Difficulty:      m.Difficulty,
		Risk:            m.RiskTier(),
		Tier:            string(e.state.Tier),
		Heat:            r.AdjustedHeat,
		CrewIDs:         append([]string(nil), crewIDs...),
		VehicleID:       vehicleID,
	})
}

// ChooseMissionEventOption applies a choice to the active mission's pending decision.
func (e *MissionEngineImpl) ChooseMissionEventOption(ctx context.Context, req primary.ChooseEventOptionRequest) (*primary.ChooseEventOptionResponse, error) {
	e.state.mu.Lock()
	defer e.state.mu.Unlock()
	e.deps.Crackdown.syncLocked()

	m := e.state.Active
	guardCtx := mission.ChoiceContext{
		HasActive: m.Active(),
		EventID:   req.EventID,
		ChoiceID:  req.ChoiceID,
	}
	if guardCtx.HasActive {
		guardCtx.MissionID = m.ID
		guardCtx.Pending = m.PendingDecision
		guardCtx.EventInDeck = m.HasEvent(req.EventID)
	}
	if err := mission.CanChooseOption(guardCtx).Error(); err != nil {
		return nil, err
	}

	choice, _ := m.PendingDecision.Event.Choice(req.ChoiceID)
	result := mission.ApplyChoice(m, choice)

	if result.LoyaltyDelta != 0 && m.Assignment != nil {
		for _, id := range m.Assignment.CrewIDs {
			if member := e.state.crewByID(id); member != nil {
				member.Loyalty = crew.ClampLoyalty(member.Loyalty + result.LoyaltyDelta)
			}
		}
	}

	var debt *mission.PendingDebt
	if result.Debt != nil {
		d := mission.PendingDebt{
			ID:             uuid.New().String(),
			Amount:         result.Debt.Amount,
			Remaining:      result.Debt.Amount,
			SourceEventID:  result.EventID,
			SourceChoiceID: choice.ID,
			Notes:          result.Debt.Notes,
			CreatedAt:      e.deps.Now(),
		}
		e.state.Debts = append(e.state.Debts, d)
		debt = &d
	}

	mission.AdvanceEvents(m, e.state.Tier)

	ev := e.deps.Logger.Info().
		Str("mission_id", m.ID).
		Str("event_id", result.EventID).
		Str("choice_id", choice.ID)
	if debt != nil {
		ev = ev.Float64("debt", debt.Amount)
	}
	ev.Msg("event choice applied")

	resp := &primary.ChooseEventOptionResponse{Debt: debt}
	if resolved, awaiting := e.settleIfReady(ctx, m); resolved != nil {
		resp.Resolved = resolved
		resp.Mission = resolved.Mission
	} else {
		resp.AwaitingConfirm = awaiting
		resp.Mission = m.Clone()
	}
	return resp, nil
}

// ResolveMission confirms the pending roll or forces an outcome.
func (e *MissionEngineImpl) ResolveMission(ctx context.Context, req primary.ResolveMissionRequest) (*primary.ResolveMissionResponse, error) {
	e.state.mu.Lock()
	defer e.state.mu.Unlock()
	e.deps.Crackdown.syncLocked()

	m := e.state.missionByID(req.MissionID)
	guardCtx := mission.ResolveContext{
		MissionID: req.MissionID,
		Found:     m != nil,
		Requested: req.Outcome,
	}
	if m != nil {
		guardCtx.Status = m.Status
		guardCtx.HasPendingRoll = m.PendingResolution != nil
	}
	if err := mission.CanResolveMission(guardCtx).Error(); err != nil {
		return nil, err
	}

	return e.resolveLocked(ctx, m, req.Outcome), nil
}

// Update advances the active mission by delta seconds.
func (e *MissionEngineImpl) Update(ctx context.Context, delta float64) (*primary.UpdateResponse, error) {
	e.state.mu.Lock()
	defer e.state.mu.Unlock()
	e.deps.Crackdown.syncLocked()

	m := e.state.Active
	if !m.Active() {
		return &primary.UpdateResponse{}, nil
	}

	resp := &primary.UpdateResponse{}
	if m.Status == mission.StatusAwaitingResolution {
		resp.Mission = m.Clone()
		resp.AwaitingConfirm = true
		return resp, nil
	}

	mission.AdvanceTime(m, delta)
	if decision := mission.AdvanceEvents(m, e.state.Tier); decision != nil {
		d := *decision
		resp.Mission = m.Clone()
		resp.Decision = &d
		resp.AwaitingDecision = true
		return resp, nil
	}

	resolved, awaiting := e.settleIfReady(ctx, m)
	if resolved != nil {
		resp.Resolved = resolved
		resp.Mission = resolved.Mission
		return resp, nil
	}
	resp.AwaitingConfirm = awaiting

	resp.Mission = m.Clone()
	return resp, nil
}

// settleIfReady draws the roll for m once its time is up with no decision
// pending. With AutoResolve the mission is resolved on the spot; otherwise the
// caller is told a confirmation is awaited.
func (e *MissionEngineImpl) settleIfReady(ctx context.Context, m *mission.Mission) (*primary.ResolveMissionResponse, bool) {
	if !mission.ReadyForResolution(m) {
		return nil, false
	}
	pending := mission.BeginResolution(m, e.deps.Random.Float64())
	e.deps.Logger.Debug().
		Str("mission_id", m.ID).
		Float64("roll", pending.Roll).
		Float64("chance", pending.Chance).
		Msg("resolution roll drawn")
	if e.cfg.AutoResolve {
		return e.resolveLocked(ctx, m, mission.OutcomeNone), false
	}
	return nil, true
}

// resolveLocked plans and applies the outcome of m. The guard has already passed.
func (e *MissionEngineImpl) resolveLocked(ctx context.Context, m *mission.Mission, requested mission.Outcome) *primary.ResolveMissionResponse {
	outcome := requested
	var roll float64
	hasRoll := false
	if p := m.PendingResolution; p != nil {
		roll, hasRoll = p.Roll, true
		if outcome == mission.OutcomeNone {
			outcome = p.Outcome
		}
	}

	var crewInputs []resolution.CrewInput
	var vehicle *garage.Vehicle
	if a := m.Assignment; a != nil {
		for _, id := range a.CrewIDs {
			if member := e.state.crewByID(id); member != nil {
				crewInputs = append(crewInputs, resolution.CrewInput{ID: member.ID, Name: member.Name, Loyalty: member.Loyalty})
			}
		}
		if a.VehicleID != "" {
			vehicle = e.state.vehicleByID(a.VehicleID)
		}
	}

	capacity := 0
	if e.deps.Safehouse != nil {
		capacity = e.deps.Safehouse.StorageCapacity()
	}
	rewardID := ""
	if m.VehicleReward != nil && outcome == mission.OutcomeSuccess && len(e.state.Garage) < capacity {
		rewardID = e.state.nextVehicleID()
	}

	plan := resolution.GeneratePlan(resolution.PlanInput{
		Mission:          m,
		Outcome:          outcome,
		Roll:             roll,
		HasRoll:          hasRoll,
		Forced:           requested != mission.OutcomeNone,
		Tier:             e.state.Tier,
		Crew:             crewInputs,
		Vehicle:          vehicle,
		Debts:            append([]mission.PendingDebt(nil), e.state.Debts...),
		GarageSize:       len(e.state.Garage),
		StorageCapacity:  capacity,
		RewardVehicleID:  rewardID,
		Now:              e.deps.Now(),
		OfferedTemplates: e.state.offeredTemplatesExcept(m),
	}, e.deps.Random)

	if err := e.deps.Executor.Execute(ctx, plan.Effects()); err != nil {
		e.deps.Logger.Error().Err(err).Str("mission_id", m.ID).Msg("resolution effects incomplete")
	}

	details := plan.Details
	if details.VehicleReport != nil {
		report := *details.VehicleReport
		e.state.LastVehicleReport = &report
	}
	mission.Complete(m, outcome, &details)
	if e.state.Active == m {
		e.state.Active = nil
	}

	e.deps.Crackdown.syncLocked()
	e.appendLog(ctx, m, &details)

	e.deps.Board.respawn(m)
	e.deps.Board.refill()

	return &primary.ResolveMissionResponse{Mission: m.Clone(), Resolution: details.Clone()}
}

// appendLog writes the mission log entry. Failures are logged, never returned.
func (e *MissionEngineImpl) appendLog(ctx context.Context, m *mission.Mission, d *mission.ResolutionDetails) {
	if e.deps.MissionLog == nil {
		return
	}

	fallout := 0
	for _, f := range d.Fallout {
		if f.Status != crew.FalloutRecovered {
			fallout++
		}
	}

	record := &secondary.MissionLogRecord{
		ID:             uuid.New().String(),
		SessionID:      ctxutil.SessionFromContext(ctx),
		MissionID:      m.ID,
		TemplateID:     m.TemplateID,
		MissionName:    m.Name,
		Outcome:        string(d.Outcome),
		Roll:           d.Roll,
		Chance:         d.Chance,
		Payout:         d.NetPayout,
		Heat:           d.HeatApplied,
		NotorietyDelta: d.NotorietyDelta,
		Tier:           string(e.state.Tier),
		FalloutCount:   fallout,
		CreatedAt:      d.ResolvedAt.UTC().Format(time.RFC3339),
	}
	if data, err := json.Marshal(d); err == nil {
		record.Details = string(data)
	} else {
		e.deps.Logger.Warn().Err(err).Str("mission_id", m.ID).Msg("resolution details not encoded")
	}

	if err := e.deps.MissionLog.Append(ctx, record); err != nil {
		err = fmt.Errorf("failed to append mission log for %s: %w", m.ID, err)
		e.deps.Logger.Error().Err(err).Msg("mission log write failed")
	}
}

// PreviewCrewAssignment runs the modifier pipeline over copies. Game state is untouched.
func (e *MissionEngineImpl) PreviewCrewAssignment(ctx context.Context, req primary.PreviewRequest) (*primary.PreviewResponse, error) {
	e.state.mu.Lock()
	defer e.state.mu.Unlock()

	m := e.state.missionByID(req.MissionID)
	if m == nil {
		return nil, fmt.Errorf("mission %s not found", req.MissionID)
	}

	var warnings []string
	if m.Restricted {
		warnings = append(warnings, m.RestrictionReason)
	}

	members := make([]*crew.Member, 0, len(req.CrewIDs))
	for _, id := range req.CrewIDs {
		member := e.state.crewByID(id)
		if member == nil {
			warnings = append(warnings, fmt.Sprintf("crew member %s not found", id))
			continue
		}
		if !member.MissionReady() {
			warnings = append(warnings, fmt.Sprintf("crew member %s is %s", id, member.Status))
		}
		c := *member
		c.Perks = append(c.Perks[:0:0], member.Perks...)
		members = append(members, &c)
	}

	var vehicle *garage.Vehicle
	if req.VehicleID != "" {
		if v := e.state.vehicleByID(req.VehicleID); v != nil {
			if !v.Available() {
				warnings = append(warnings, fmt.Sprintf("vehicle %s is not available", v.ID))
			}
			vehicle = cloneVehicle(v)
		} else {
			warnings = append(warnings, fmt.Sprintf("vehicle %s not found", req.VehicleID))
		}
	} else if v := garage.SelectFirstAvailable(e.state.Garage); v != nil {
		vehicle = cloneVehicle(v)
	}

	result := impact.Compute(m.ImpactInput(e.state.Tier), members, vehicle, e.state.Player.Clone())
	return &primary.PreviewResponse{
		MissionID: m.ID,
		Tier:      e.state.Tier,
		Impact:    result,
		Warnings:  warnings,
	}, nil
}

// ActiveMission returns a copy of the active mission, or nil.
func (e *MissionEngineImpl) ActiveMission(ctx context.Context) *mission.Mission {
	e.state.mu.Lock()
	defer e.state.mu.Unlock()
	if !e.state.Active.Active() {
		return nil
	}
	return e.state.Active.Clone()
}

// AvailableMissions returns copies of the contract board.
func (e *MissionEngineImpl) AvailableMissions(ctx context.Context) []*mission.Mission {
	e.state.mu.Lock()
	defer e.state.mu.Unlock()
	return cloneMissions(e.state.Available)
}

// PendingDebts returns the debts owed against the next payout.
func (e *MissionEngineImpl) PendingDebts(ctx context.Context) []mission.PendingDebt {
	e.state.mu.Lock()
	defer e.state.mu.Unlock()
	return append([]mission.PendingDebt(nil), e.state.Debts...)
}

// LastVehicleReport returns the most recent reward vehicle report, or nil.
func (e *MissionEngineImpl) LastVehicleReport(ctx context.Context) *mission.VehicleReport {
	e.state.mu.Lock()
	defer e.state.mu.Unlock()
	if e.state.LastVehicleReport == nil {
		return nil
	}
	r := *e.state.LastVehicleReport
	return &r
}

// Crew returns copies of the crew roster.
func (e *MissionEngineImpl) Crew(ctx context.Context) []crew.Member {
	e.state.mu.Lock()
	defer e.state.mu.Unlock()
	out := make([]crew.Member, 0, len(e.state.Crew))
	for _, m := range e.state.Crew {
		c := *m
		c.Perks = append(c.Perks[:0:0], m.Perks...)
		out = append(out, c)
	}
	return out
}

// Fallout returns the fallout records produced so far.
func (e *MissionEngineImpl) Fallout(ctx context.Context) []crew.FalloutRecord {
	e.state.mu.Lock()
	defer e.state.mu.Unlock()
	return append([]crew.FalloutRecord(nil), e.state.Fallout...)
}

func cloneMissions(ms []*mission.Mission) []*mission.Mission {
	out := make([]*mission.Mission, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.Clone())
	}
	return out
}

func cloneVehicle(v *garage.Vehicle) *garage.Vehicle {
	c := *v
	c.Mods = append(c.Mods[:0:0], v.Mods...)
	return &c
}

// Ensure MissionEngineImpl implements the interface
var _ primary.MissionEngine = (*MissionEngineImpl)(nil)
