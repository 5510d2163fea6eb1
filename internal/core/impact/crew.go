package impact

import (
	"fmt"
	"math"

	"github.com/example/syndicate/internal/core/catalog"
	"github.com/example/syndicate/internal/core/crew"
)

// Crew clamps, applied to a member's trait effects before backgrounds and perks.
const (
	MaxCrewDurationReduction = 0.55
	MinCrewPayoutBonus       = -0.2
	MaxCrewPayoutBonus       = 0.7
	MaxCrewHeatReduction     = 0.75
	MaxCrewHeatIncrease      = 0.6
	MinCrewSuccessBonus      = -0.1
	MaxCrewSuccessBonus      = 0.45
	SynergyWeight            = 1.5
)

// traitRate is the effect of one trait level above baseline.
type traitRate struct {
	durationCut  float64
	payoutBonus  float64
	heatCut      float64
	heatIncrease float64
	success      float64
}

var traitRates = map[crew.Trait]traitRate{
	crew.TraitStealth:  {durationCut: 0.03, heatCut: 0.06, success: 0.01},
	crew.TraitTech:     {durationCut: 0.04, success: 0.02},
	crew.TraitDriving:  {durationCut: 0.05, heatCut: 0.02},
	crew.TraitTactics:  {payoutBonus: 0.01, success: 0.03},
	crew.TraitCharisma: {payoutBonus: 0.04, heatCut: 0.02},
	crew.TraitMuscle:   {payoutBonus: 0.02, heatIncrease: 0.04, success: 0.02},
}

// LoyaltyFactor scales trait effects by loyalty (0..5 maps to 0.8..1.3).
func LoyaltyFactor(loyalty int) float64 {
	return 0.8 + 0.1*float64(crew.ClampLoyalty(loyalty))
}

// DifficultyFactor scales trait effects by mission difficulty.
func DifficultyFactor(difficulty int) float64 {
	return clamp(1+0.05*float64(difficulty-2), 0.9, 1.25)
}

// CrewContribution computes one member's share for a mission of the given
// difficulty. Backgrounds are skipped when the member already holds the
// equivalent perk so the bonus is not counted twice.
func CrewContribution(m *crew.Member, difficulty int, ctx catalog.PerkContext) Contribution {
	focus := m.Specialty.FocusTrait()
	scale := LoyaltyFactor(m.Loyalty) * DifficultyFactor(difficulty)

	var acc traitRate
	for _, trait := range crew.AllTraits {
		levels := m.Traits.Level(trait) - crew.TraitBaseline
		if levels <= 0 {
			continue
		}
		weight := 1.0
		if trait == focus {
			weight = SynergyWeight
		}
		r := traitRates[trait]
		k := float64(levels) * weight * scale
		acc.durationCut += r.durationCut * k
		acc.payoutBonus += r.payoutBonus * k
		acc.heatCut += r.heatCut * k
		acc.heatIncrease += r.heatIncrease * k
		acc.success += r.success * k
	}

	// A disloyal member skims and drags their feet.
	if m.Loyalty <= crew.MinLoyalty {
		acc.payoutBonus -= 0.05
		acc.success -= 0.03
	}

	heat := (1 - math.Min(acc.heatCut, MaxCrewHeatReduction)) * (1 + math.Min(acc.heatIncrease, MaxCrewHeatIncrease))
	effect := catalog.Effect{
		DurationMultiplier: 1 - math.Min(acc.durationCut, MaxCrewDurationReduction),
		PayoutMultiplier:   1 + clamp(acc.payoutBonus, MinCrewPayoutBonus, MaxCrewPayoutBonus),
		HeatMultiplier:     heat,
		SuccessBonus:       clamp(acc.success, MinCrewSuccessBonus, MaxCrewSuccessBonus),
	}

	var extras []string
	if bg, ok := catalog.LookupBackground(m.Background); ok && bg.ID != "" {
		if bg.EquivalentPerk == "" || !m.HasPerk(bg.EquivalentPerk) {
			effect = effect.Compose(bg.Effect)
			extras = append(extras, bg.Label)
		}
	}
	for _, id := range m.Perks {
		perk, ok := catalog.LookupPerk(id)
		if !ok || !perk.Applies(ctx) {
			continue
		}
		effect = effect.Compose(perk.Effect)
		extras = append(extras, perk.Label)
	}

	summary := describe(fmt.Sprintf("%s (%s)", m.Name, m.Specialty), effect)
	for _, e := range extras {
		summary += "; " + e
	}
	return contributionFrom("crew:"+m.ID, effect, summary)
}
