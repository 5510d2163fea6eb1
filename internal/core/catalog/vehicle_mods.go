package catalog

import "sort"

// ModID identifies a vehicle modification.
type ModID string

const (
	ModTurboKit        ModID = "turbo-kit"
	ModReinforcedFrame ModID = "reinforced-frame"
	ModSignalScrambler ModID = "signal-scrambler"
	ModQuietExhaust    ModID = "quiet-exhaust"
	ModRunFlatTires    ModID = "run-flat-tires"
	ModFalsePlates     ModID = "false-plates"
)

// MaxModsPerVehicle bounds how many mods one vehicle can carry.
const MaxModsPerVehicle = 3

// VehicleMod describes a garage upgrade. Stat bonuses are on the 0-10 vehicle stat scale.
type VehicleMod struct {
	ID                ModID
	Label             string
	Cost              float64
	SpeedBonus        float64
	AccelerationBonus float64
	HandlingBonus     float64
	Effect            Effect
	WearMultiplier    float64
}

var vehicleMods = map[ModID]VehicleMod{
	ModTurboKit: {
		ID:                ModTurboKit,
		Label:             "Turbo kit",
		Cost:              1800,
		SpeedBonus:        1.5,
		AccelerationBonus: 1,
		Effect:            Effect{DurationMultiplier: 0.92, PayoutMultiplier: 1, HeatMultiplier: 1.05},
		WearMultiplier:    1.15,
	},
	ModReinforcedFrame: {
		ID:                ModReinforcedFrame,
		Label:             "Reinforced frame",
		Cost:              1500,
		AccelerationBonus: -0.5,
		Effect:            Effect{DurationMultiplier: 1.03, PayoutMultiplier: 1, HeatMultiplier: 1, SuccessBonus: 0.03},
		WearMultiplier:    0.6,
	},
	ModSignalScrambler: {
		ID:             ModSignalScrambler,
		Label:          "Signal scrambler",
		Cost:           2200,
		Effect:         Effect{DurationMultiplier: 1, PayoutMultiplier: 1, HeatMultiplier: 0.85, HeatAdjustment: -0.2},
		WearMultiplier: 1,
	},
	ModQuietExhaust: {
		ID:             ModQuietExhaust,
		Label:          "Quiet exhaust",
		Cost:           900,
		SpeedBonus:     -0.3,
		Effect:         Effect{DurationMultiplier: 1, PayoutMultiplier: 1, HeatMultiplier: 0.92, HeatAdjustment: -0.1},
		WearMultiplier: 1,
	},
	ModRunFlatTires: {
		ID:             ModRunFlatTires,
		Label:          "Run-flat tires",
		Cost:           700,
		HandlingBonus:  0.8,
		Effect:         Effect{DurationMultiplier: 0.98, PayoutMultiplier: 1, HeatMultiplier: 1, SuccessBonus: 0.02},
		WearMultiplier: 0.85,
	},
	ModFalsePlates: {
		ID:             ModFalsePlates,
		Label:          "False plates",
		Cost:           600,
		Effect:         Effect{DurationMultiplier: 1, PayoutMultiplier: 1, HeatMultiplier: 0.9, HeatAdjustment: -0.3},
		WearMultiplier: 1,
	},
}

// LookupMod returns the mod definition for id.
func LookupMod(id ModID) (VehicleMod, bool) {
	m, ok := vehicleMods[id]
	return m, ok
}

// Mods returns every mod ordered by cost, then id.
func Mods() []VehicleMod {
	out := make([]VehicleMod, 0, len(vehicleMods))
	for _, m := range vehicleMods {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Cost != out[j].Cost {
			return out[i].Cost < out[j].Cost
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// ModSummary is the combined contribution of a vehicle's installed mods.
type ModSummary struct {
	SpeedBonus        float64
	AccelerationBonus float64
	HandlingBonus     float64
	Effect            Effect
	WearMultiplier    float64
	Labels            []string
}

// SummarizeMods combines the installed mods. Unknown ids are ignored.
func SummarizeMods(ids []ModID) ModSummary {
	summary := ModSummary{Effect: Neutral(), WearMultiplier: 1}
	for _, id := range ids {
		mod, ok := vehicleMods[id]
		if !ok {
			continue
		}
		summary.SpeedBonus += mod.SpeedBonus
		summary.AccelerationBonus += mod.AccelerationBonus
		summary.HandlingBonus += mod.HandlingBonus
		summary.Effect = summary.Effect.Compose(mod.Effect)
		summary.WearMultiplier *= mod.WearMultiplier
		summary.Labels = append(summary.Labels, mod.Label)
	}
	return summary
}
