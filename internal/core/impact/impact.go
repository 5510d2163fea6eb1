// Package impact is the modifier aggregation pipeline. It folds player skills and
// gear, crew traits, backgrounds and perks, and vehicle condition and mods into the
// adjusted duration, payout, heat and success chance of a mission.
// This is part of the Functional Core - Compute never mutates its inputs.
package impact

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/example/syndicate/internal/core/catalog"
	"github.com/example/syndicate/internal/core/crackdown"
	"github.com/example/syndicate/internal/core/crew"
	"github.com/example/syndicate/internal/core/garage"
	"github.com/example/syndicate/internal/core/player"
)

// Final value bounds.
const (
	MinDuration        = 5.0
	MinSuccessChance   = 0.05
	MaxSuccessChance   = 0.98
	MinHeatMultiplier  = 0.2
	MaxHeatMultiplier  = 2.5
	MinVehicleDuration = 0.35
	NoPlayerNote       = "no player profile; skills and gear ignored"
	NoVehicleNote      = "no vehicle assigned; crew travels unescorted"
)

// Input is the base state of the mission being evaluated. Always the base values,
// never previously adjusted ones, so reassignment is idempotent.
type Input struct {
	MissionID         string
	Difficulty        int
	BaseDuration      float64
	BasePayout        float64
	BaseHeat          float64
	BaseSuccessChance float64
	Tier              crackdown.Tier
}

// Contribution is one source's transient share of the modifiers.
type Contribution struct {
	Source             string
	DurationMultiplier float64
	PayoutMultiplier   float64
	HeatMultiplier     float64
	SuccessBonus       float64
	HeatAdjustment     float64
	Summary            string
}

func contributionFrom(source string, e catalog.Effect, summary string) Contribution {
	return Contribution{
		Source:             source,
		DurationMultiplier: e.DurationMultiplier,
		PayoutMultiplier:   e.PayoutMultiplier,
		HeatMultiplier:     e.HeatMultiplier,
		SuccessBonus:       e.SuccessBonus,
		HeatAdjustment:     e.HeatAdjustment,
		Summary:            summary,
	}
}

// VehicleImpact is the vehicle's share plus the wear rates applied at resolution.
type VehicleImpact struct {
	VehicleID          string
	AgilityScore       float64
	ConditionPenalty   float64
	DurationMultiplier float64
	HeatMultiplier     float64
	HeatAdjustment     float64
	SuccessBonus       float64
	WearOnSuccess      float64
	WearOnFailure      float64
	HeatGainOnSuccess  float64
	HeatGainOnFailure  float64
}

// Result is the pipeline output frozen onto a mission at start.
type Result struct {
	AdjustedDuration      float64
	AdjustedPayout        float64
	AdjustedSuccessChance float64
	AdjustedHeat          float64
	DurationMultiplier    float64
	PayoutMultiplier      float64
	HeatMultiplier        float64
	SuccessBonus          float64
	HeatAdjustment        float64
	VehicleImpact         *VehicleImpact
	Contributions         []Contribution
	Summaries             []string
}

// Compute runs the full pipeline. members and vehicle may be empty/nil.
func Compute(in Input, members []*crew.Member, vehicle *garage.Vehicle, profile *player.Profile) Result {
	var result Result

	playerContrib := PlayerContribution(profile)
	result.Contributions = append(result.Contributions, playerContrib)
	result.Summaries = append(result.Summaries, playerContrib.Summary)

	durationMult := playerContrib.DurationMultiplier
	payoutMult := playerContrib.PayoutMultiplier
	heatMult := playerContrib.HeatMultiplier
	successBonus := playerContrib.SuccessBonus
	heatDelta := playerContrib.HeatAdjustment

	perkCtx := catalog.PerkContext{
		CrewCount:    len(members),
		BaseHeat:     in.BaseHeat,
		TierElevated: in.Tier.Elevated(),
	}
	for _, m := range members {
		if m == nil {
			continue
		}
		c := CrewContribution(m, in.Difficulty, perkCtx)
		result.Contributions = append(result.Contributions, c)
		result.Summaries = append(result.Summaries, c.Summary)
		durationMult *= c.DurationMultiplier
		payoutMult *= c.PayoutMultiplier
		heatMult *= c.HeatMultiplier
		successBonus += c.SuccessBonus
		heatDelta += c.HeatAdjustment
	}

	if vehicle != nil {
		vi, mods := vehicleImpact(vehicle, in, heatMult)
		result.VehicleImpact = &vi
		durationMult *= vi.DurationMultiplier
		payoutMult *= mods.Effect.PayoutMultiplier
		heatMult = vi.HeatMultiplier
		successBonus += vi.SuccessBonus
		heatDelta += vi.HeatAdjustment
		summary := fmt.Sprintf("%s: agility %.2f, condition %.0f%%, heat %+.2f, success %+.0f%%",
			vehicle.Model, vi.AgilityScore, vehicle.Condition*100, vi.HeatAdjustment, vi.SuccessBonus*100)
		if len(mods.Labels) > 0 {
			summary += " [" + strings.Join(mods.Labels, ", ") + "]"
		}
		result.Contributions = append(result.Contributions, Contribution{
			Source:             "vehicle:" + vehicle.ID,
			DurationMultiplier: vi.DurationMultiplier,
			PayoutMultiplier:   mods.Effect.PayoutMultiplier,
			HeatMultiplier:     mods.Effect.HeatMultiplier,
			SuccessBonus:       vi.SuccessBonus,
			HeatAdjustment:     vi.HeatAdjustment,
			Summary:            summary,
		})
		result.Summaries = append(result.Summaries, summary)
	} else {
		heatMult = clamp(heatMult, MinHeatMultiplier, MaxHeatMultiplier)
		result.Summaries = append(result.Summaries, NoVehicleNote)
	}

	result.DurationMultiplier = durationMult
	result.PayoutMultiplier = payoutMult
	result.HeatMultiplier = heatMult
	result.SuccessBonus = successBonus
	result.HeatAdjustment = heatDelta

	result.AdjustedDuration = math.Max(MinDuration, math.Round(sanitize(in.BaseDuration)*durationMult))
	result.AdjustedPayout = math.Max(0, math.Round(sanitize(in.BasePayout)*payoutMult))
	result.AdjustedSuccessChance = clamp(sanitize(in.BaseSuccessChance)+successBonus, MinSuccessChance, MaxSuccessChance)
	result.AdjustedHeat = math.Max(0, sanitize(in.BaseHeat)*heatMult+heatDelta)

	return result
}

// PlayerContribution folds skills above baseline and equipped gear.
func PlayerContribution(profile *player.Profile) Contribution {
	if profile == nil {
		return contributionFrom("player", catalog.Neutral(), NoPlayerNote)
	}

	ids := make([]string, 0, len(profile.Skills))
	for id := range profile.Skills {
		ids = append(ids, string(id))
	}
	sort.Strings(ids)

	var durationCut, payoutBonus, heatCut, success float64
	for _, raw := range ids {
		skill, ok := catalog.LookupSkill(catalog.SkillID(raw))
		if !ok {
			continue
		}
		levels := profile.Skills[skill.ID] - skill.Baseline
		if levels <= 0 {
			continue
		}
		if levels > catalog.SkillCapLevels {
			levels = catalog.SkillCapLevels
		}
		l := float64(levels)
		durationCut += skill.DurationRate * l
		payoutBonus += skill.PayoutRate * l
		heatCut += skill.HeatRate * l
		success += skill.SuccessRate * l
	}

	effect := catalog.Effect{
		DurationMultiplier: 1 - math.Min(durationCut, catalog.MaxSkillDurationReduction),
		PayoutMultiplier:   1 + math.Min(payoutBonus, catalog.MaxSkillPayoutBonus),
		HeatMultiplier:     1 - math.Min(heatCut, catalog.MaxSkillHeatReduction),
		SuccessBonus:       math.Min(success, catalog.MaxSkillSuccessBonus),
	}

	var gearLabels []string
	for _, id := range profile.Gear {
		g, ok := catalog.LookupGear(id)
		if !ok {
			continue
		}
		effect = effect.Compose(g.Effect)
		gearLabels = append(gearLabels, g.Label)
	}

	name := profile.Name
	if name == "" {
		name = "player"
	}
	summary := describe(name, effect)
	if len(gearLabels) > 0 {
		summary += " [" + strings.Join(gearLabels, ", ") + "]"
	}
	return contributionFrom("player", effect, summary)
}

func vehicleImpact(v *garage.Vehicle, in Input, crewHeatMult float64) (VehicleImpact, catalog.ModSummary) {
	mods := catalog.SummarizeMods(v.Mods)

	speed := clamp(v.TopSpeed+mods.SpeedBonus, 0, 12)
	accel := clamp(v.Acceleration+mods.AccelerationBonus, 0, 12)
	handling := clamp(v.Handling+mods.HandlingBonus, 0, 12)
	condition := clamp(v.Condition, 0, 1)

	agility := (speed + accel) / 20
	penalty := (1 - condition) * 0.4

	wearSuccess := (0.04 + 0.01*float64(in.Difficulty)) * mods.WearMultiplier
	heatGainSuccess := 0.2 + sanitize(in.BaseHeat)*0.1

	return VehicleImpact{
		VehicleID:          v.ID,
		AgilityScore:       agility,
		ConditionPenalty:   penalty,
		DurationMultiplier: math.Max(MinVehicleDuration, (1-0.25*agility+penalty)*mods.Effect.DurationMultiplier),
		HeatMultiplier:     clamp(crewHeatMult*mods.Effect.HeatMultiplier, MinHeatMultiplier, MaxHeatMultiplier),
		HeatAdjustment:     v.HeatRating*0.1 + (1-condition)*0.5 - handling/10*0.3 + mods.Effect.HeatAdjustment,
		SuccessBonus:       handling/10*0.05 + (condition-0.5)*0.06 + mods.Effect.SuccessBonus,
		WearOnSuccess:      wearSuccess,
		WearOnFailure:      wearSuccess * 2.5,
		HeatGainOnSuccess:  heatGainSuccess,
		HeatGainOnFailure:  heatGainSuccess*2 + 0.5,
	}, mods
}

func describe(name string, e catalog.Effect) string {
	var parts []string
	if d := e.DurationMultiplier - 1; math.Abs(d) >= 0.005 {
		parts = append(parts, fmt.Sprintf("duration %+.0f%%", d*100))
	}
	if d := e.PayoutMultiplier - 1; math.Abs(d) >= 0.005 {
		parts = append(parts, fmt.Sprintf("payout %+.0f%%", d*100))
	}
	if d := e.HeatMultiplier - 1; math.Abs(d) >= 0.005 {
		parts = append(parts, fmt.Sprintf("heat %+.0f%%", d*100))
	}
	if math.Abs(e.SuccessBonus) >= 0.005 {
		parts = append(parts, fmt.Sprintf("success %+.0f%%", e.SuccessBonus*100))
	}
	if math.Abs(e.HeatAdjustment) >= 0.005 {
		parts = append(parts, fmt.Sprintf("heat %+.2f", e.HeatAdjustment))
	}
	if len(parts) == 0 {
		return name + ": no effect"
	}
	return name + ": " + strings.Join(parts, ", ")
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
