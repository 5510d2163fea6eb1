// Package catalog holds the static modifier tables consulted by the mission engine:
// vehicle mods, crew perks and backgrounds, player skills and gear.
// This is part of the Functional Core - lookups only, no state.
package catalog

// Effect is a bounded modifier descriptor. Multipliers compose multiplicatively,
// SuccessBonus and HeatAdjustment add.
type Effect struct {
	DurationMultiplier float64
	PayoutMultiplier   float64
	HeatMultiplier     float64
	SuccessBonus       float64
	HeatAdjustment     float64
}

// Neutral returns the identity effect.
func Neutral() Effect {
	return Effect{
		DurationMultiplier: 1,
		PayoutMultiplier:   1,
		HeatMultiplier:     1,
	}
}

// Compose folds other into e and returns the result.
func (e Effect) Compose(other Effect) Effect {
	return Effect{
		DurationMultiplier: e.DurationMultiplier * other.DurationMultiplier,
		PayoutMultiplier:   e.PayoutMultiplier * other.PayoutMultiplier,
		HeatMultiplier:     e.HeatMultiplier * other.HeatMultiplier,
		SuccessBonus:       e.SuccessBonus + other.SuccessBonus,
		HeatAdjustment:     e.HeatAdjustment + other.HeatAdjustment,
	}
}

// IsNeutral reports whether the effect changes nothing.
func (e Effect) IsNeutral() bool {
	return e == Neutral()
}
