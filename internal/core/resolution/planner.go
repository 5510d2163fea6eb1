package resolution

import (
	"fmt"
	"time"

	"github.com/example/syndicate/internal/core/crackdown"
	"github.com/example/syndicate/internal/core/crew"
	"github.com/example/syndicate/internal/core/effects"
	"github.com/example/syndicate/internal/core/garage"
	"github.com/example/syndicate/internal/core/mission"
	"github.com/example/syndicate/internal/core/notoriety"
)

// PlanInput contains everything needed to plan a resolution.
// All values are pre-fetched by the caller - no I/O in the planner.
type PlanInput struct {
	Mission         *mission.Mission
	Outcome         mission.Outcome
	Roll            float64
	HasRoll         bool
	Forced          bool
	Tier            crackdown.Tier
	Crew            []CrewInput
	Vehicle         *garage.Vehicle
	Debts           []mission.PendingDebt
	GarageSize      int
	StorageCapacity int
	RewardVehicleID string
	Now             time.Time

	// OfferedTemplates holds the template IDs already on the board. Follow-ups
	// for these are not queued again.
	OfferedTemplates map[string]bool
}

// Plan is the planned consequence of a resolved mission.
type Plan struct {
	MissionID      string
	Outcome        mission.Outcome
	Details        mission.ResolutionDetails
	RemainingDebts []mission.PendingDebt
	Fallout        []crew.FalloutRecord
	Ops            []effects.Effect
}

// Effects returns all effects as a flat slice for execution.
func (p Plan) Effects() []effects.Effect {
	return p.Ops
}

// GeneratePlan plans the success or failure branch of a mission resolution.
// Fallout draws come from dice; everything else is deterministic.
func GeneratePlan(in PlanInput, dice Dice) Plan {
	m := in.Mission
	plan := Plan{
		MissionID: m.ID,
		Outcome:   in.Outcome,
		Details: mission.ResolutionDetails{
			Outcome:    in.Outcome,
			Roll:       in.Roll,
			Chance:     m.SuccessChance,
			Forced:     in.Forced,
			ResolvedAt: in.Now,
		},
		RemainingDebts: in.Debts,
	}

	if in.Outcome == mission.OutcomeSuccess {
		planSuccess(&plan, in)
	} else {
		planFailure(&plan, in, dice)
	}

	if m.Storyline != nil {
		plan.Ops = append(plan.Ops, effects.StorylineEffect{
			CrewID:  m.Storyline.CrewID,
			StepID:  m.Storyline.StepID,
			Outcome: string(in.Outcome),
		})
		plan.Details.Storyline = fmt.Sprintf("storyline step %s for %s: %s", m.Storyline.StepID, m.Storyline.CrewID, in.Outcome)
	}

	delta := notoriety.Delta(notoriety.DeltaInput{
		Success:            in.Outcome == mission.OutcomeSuccess,
		Heat:               m.Heat,
		Difficulty:         m.Difficulty,
		Payout:             plan.Details.GrossPayout,
		CrackdownOperation: m.Category == mission.CategoryCrackdownOperation,
	})
	plan.Details.NotorietyDelta = delta
	if delta != 0 {
		plan.Ops = append(plan.Ops, effects.NotorietyEffect{Delta: delta})
	}

	plan.Ops = append(plan.Ops, effects.LogEffect{
		Level:   "info",
		Message: "mission resolved",
		Fields: map[string]any{
			"mission_id": m.ID,
			"outcome":    string(in.Outcome),
			"roll":       in.Roll,
			"chance":     m.SuccessChance,
			"payout":     plan.Details.NetPayout,
			"heat":       plan.Details.HeatApplied,
			"notoriety":  delta,
			"fallout":    len(plan.Fallout),
		},
	})
	return plan
}

func planSuccess(plan *Plan, in PlanInput) {
	m := in.Mission
	gross := m.Payout
	settlements, remaining, net := SettleDebts(in.Debts, gross)

	plan.RemainingDebts = remaining
	plan.Details.GrossPayout = gross
	plan.Details.NetPayout = net
	plan.Details.Settlements = settlements
	for _, s := range settlements {
		plan.Ops = append(plan.Ops, effects.DebtEffect{DebtID: s.DebtID, Paid: s.Paid, Remaining: s.Remaining})
	}
	if net > 0 {
		plan.Ops = append(plan.Ops, effects.FundsEffect{Delta: net, Reason: "payout " + m.ID})
	}

	plan.Details.HeatApplied = m.Heat
	if m.Heat > 0 {
		plan.Ops = append(plan.Ops, effects.HeatEffect{Amount: m.Heat, Reason: "mission " + m.ID})
	}
	if m.CrackdownEffect != nil && m.CrackdownEffect.HeatRelief > 0 {
		plan.Ops = append(plan.Ops, effects.MitigationEffect{
			Amount: m.CrackdownEffect.HeatRelief,
			Meta:   map[string]any{"mission_id": m.ID, "source": string(m.Category)},
		})
		plan.Details.Crackdown = fmt.Sprintf("heat relief %.1f requested", m.CrackdownEffect.HeatRelief)
	}

	if m.VehicleReward != nil {
		planReward(plan, in)
	}

	planCrew(plan, in, 1, nil)
	planVehicle(plan, in, true)

	if r := m.FalloutRecovery; r != nil {
		record := crew.FalloutRecord{
			CrewID:          r.CrewID,
			CrewName:        r.CrewName,
			Status:          crew.FalloutRecovered,
			SourceMissionID: m.ID,
			Timestamp:       in.Now,
		}
		plan.Fallout = append(plan.Fallout, record)
		plan.Details.Fallout = append(plan.Details.Fallout, record)
		plan.Ops = append(plan.Ops,
			effects.CrewStatusEffect{CrewID: r.CrewID, Status: string(crew.StatusIdle)},
			effects.FalloutEffect{CrewID: r.CrewID, CrewName: r.CrewName, Status: string(crew.FalloutRecovered), SourceMissionID: m.ID},
		)
	}

	if m.DistrictID != "" {
		plan.Ops = append(plan.Ops, effects.DistrictEffect{DistrictID: m.DistrictID, Influence: 1, Intel: 1})
	}
}

func planReward(plan *Plan, in PlanInput) {
	m := in.Mission
	reward := m.VehicleReward
	report := &mission.VehicleReport{
		MissionID: m.ID,
		Model:     reward.Model,
		Capacity:  in.StorageCapacity,
		Stored:    in.GarageSize,
	}
	if in.GarageSize < in.StorageCapacity {
		report.Outcome = mission.VehicleReportAdded
		report.VehicleID = in.RewardVehicleID
		report.Stored++
		plan.Ops = append(plan.Ops, effects.GarageAddEffect{
			VehicleID:    in.RewardVehicleID,
			Model:        reward.Model,
			TopSpeed:     reward.TopSpeed,
			Acceleration: reward.Acceleration,
			Handling:     reward.Handling,
			HeatRating:   reward.HeatRating,
			Value:        reward.Value,
		})
	} else {
		report.Outcome = mission.VehicleReportStorageBlocked
		plan.Ops = append(plan.Ops, effects.LogEffect{
			Level:   "warn",
			Message: "reward vehicle not stored: safehouse full",
			Fields:  map[string]any{"mission_id": m.ID, "model": reward.Model, "capacity": in.StorageCapacity},
		})
	}
	plan.Details.VehicleReport = report
}

func planFailure(plan *Plan, in PlanInput, dice Dice) {
	m := in.Mission
	policy := crackdown.PolicyFor(in.Tier)

	heat := m.Heat * policy.FailureHeatMultiplier
	if m.CrackdownEffect != nil && m.CrackdownEffect.FailurePenalty > 0 {
		heat += m.CrackdownEffect.FailurePenalty
		plan.Details.Crackdown = fmt.Sprintf("failure penalty %.1f added", m.CrackdownEffect.FailurePenalty)
	}
	plan.Details.HeatApplied = heat
	if heat > 0 {
		plan.Ops = append(plan.Ops, effects.HeatEffect{Amount: heat, Reason: fmt.Sprintf("failed %s under %s", m.ID, in.Tier)})
	}

	fallout := EvaluateFallout(FalloutInput{
		MissionID:   m.ID,
		Difficulty:  m.Difficulty,
		Severity:    Severity(in.Roll, m.SuccessChance, in.HasRoll),
		Crew:        in.Crew,
		LoyaltyOnly: m.Category == mission.CategoryCrewLoyalty,
		Now:         in.Now,
	}, dice)
	plan.Fallout = fallout
	plan.Details.Fallout = fallout

	hurt := make(map[string]crew.FalloutStatus, len(fallout))
	for _, f := range fallout {
		hurt[f.CrewID] = f.Status
	}

	planCrew(plan, in, -1, hurt)
	planVehicle(plan, in, false)

	for _, f := range fallout {
		plan.Ops = append(plan.Ops, effects.FalloutEffect{
			CrewID:          f.CrewID,
			CrewName:        f.CrewName,
			Status:          string(f.Status),
			Severity:        f.Severity,
			SourceMissionID: f.SourceMissionID,
			Guaranteed:      f.Guaranteed,
		})
		tmpl, ok := mission.FollowUpTemplate(f, m.Difficulty)
		if !ok || in.OfferedTemplates[tmpl.ID] {
			continue
		}
		plan.Ops = append(plan.Ops, effects.FollowUpEffect{CrewID: f.CrewID, CrewName: f.CrewName, Status: string(f.Status), SourceDifficulty: m.Difficulty})
		plan.Details.FollowUps = append(plan.Details.FollowUps, tmpl.ID)
	}

	if m.DistrictID != "" {
		plan.Ops = append(plan.Ops, effects.DistrictEffect{DistrictID: m.DistrictID, CrackdownPressure: 1})
	}
}

// planCrew adjusts loyalty and releases assigned crew, sending hurt members
// to their fallout status instead of idle.
func planCrew(plan *Plan, in PlanInput, loyaltyDelta int, hurt map[string]crew.FalloutStatus) {
	before := make(map[string]int)
	if a := in.Mission.Assignment; a != nil {
		for _, s := range a.CrewSnapshots {
			before[s.ID] = s.Loyalty
		}
	}

	for _, c := range in.Crew {
		status := crew.StatusIdle
		if f, ok := hurt[c.ID]; ok {
			status = f.MemberStatus()
		}
		plan.Ops = append(plan.Ops,
			effects.LoyaltyEffect{CrewID: c.ID, Delta: loyaltyDelta},
			effects.CrewStatusEffect{CrewID: c.ID, Status: string(status)},
		)

		loyaltyBefore, ok := before[c.ID]
		if !ok {
			loyaltyBefore = c.Loyalty
		}
		plan.Details.CrewDeltas = append(plan.Details.CrewDeltas, mission.CrewDelta{
			CrewID:        c.ID,
			Name:          c.Name,
			LoyaltyBefore: loyaltyBefore,
			LoyaltyAfter:  crew.ClampLoyalty(c.Loyalty + loyaltyDelta),
			StatusAfter:   status,
		})
	}
}

func planVehicle(plan *Plan, in PlanInput, success bool) {
	v := in.Vehicle
	if v == nil {
		return
	}
	a := in.Mission.Assignment

	conditionBefore, heatBefore := v.Condition, v.Heat
	if a != nil && a.VehicleSnapshot != nil {
		conditionBefore, heatBefore = a.VehicleSnapshot.Condition, a.VehicleSnapshot.Heat
	}

	after := garage.WearResult{Condition: v.Condition, Heat: v.Heat}
	if a != nil && a.VehicleImpact != nil {
		vi := a.VehicleImpact
		if success {
			after = garage.ApplyWear(v.Condition, v.Heat, vi.WearOnSuccess, vi.HeatGainOnSuccess)
		} else {
			after = garage.ApplyWear(v.Condition, v.Heat, vi.WearOnFailure, vi.HeatGainOnFailure)
		}
	}

	plan.Ops = append(plan.Ops,
		effects.VehicleWearEffect{VehicleID: v.ID, Condition: after.Condition, Heat: after.Heat},
		effects.VehicleReleaseEffect{VehicleID: v.ID},
	)
	plan.Details.VehicleDelta = &mission.VehicleDelta{
		VehicleID:       v.ID,
		ConditionBefore: conditionBefore,
		ConditionAfter:  after.Condition,
		HeatBefore:      heatBefore,
		HeatAfter:       after.Heat,
	}
}
