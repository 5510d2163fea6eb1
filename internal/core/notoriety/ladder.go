// Package notoriety contains the notoriety ladder: a banded classifier over the
// crew's reputation score and the adjustments each band applies to new contracts.
package notoriety

import "math"

const (
	MinValue = 0.0
	MaxValue = 100.0
)

// Band is one rung of the ladder.
type Band struct {
	Name             string
	Min              float64
	PayoutMultiplier float64
	HeatMultiplier   float64
	DifficultyBonus  int
	Risk             float64
}

// Ladder is ordered by ascending Min.
var Ladder = []Band{
	{Name: "unknown", Min: 0, PayoutMultiplier: 1.00, HeatMultiplier: 1.00, DifficultyBonus: 0, Risk: 0},
	{Name: "noticed", Min: 10, PayoutMultiplier: 1.05, HeatMultiplier: 1.05, DifficultyBonus: 0, Risk: 0.02},
	{Name: "known", Min: 25, PayoutMultiplier: 1.12, HeatMultiplier: 1.10, DifficultyBonus: 1, Risk: 0.04},
	{Name: "feared", Min: 45, PayoutMultiplier: 1.20, HeatMultiplier: 1.20, DifficultyBonus: 1, Risk: 0.07},
	{Name: "legendary", Min: 70, PayoutMultiplier: 1.30, HeatMultiplier: 1.30, DifficultyBonus: 2, Risk: 0.10},
}

// Clamp bounds a notoriety value to the ladder range. NaN reads as zero.
func Clamp(value float64) float64 {
	if math.IsNaN(value) {
		return MinValue
	}
	return math.Max(MinValue, math.Min(MaxValue, value))
}

// BandFor classifies value.
func BandFor(value float64) Band {
	value = Clamp(value)
	band := Ladder[0]
	for _, b := range Ladder {
		if value >= b.Min {
			band = b
		}
	}
	return band
}

// DeltaInput describes a resolved mission for notoriety purposes.
type DeltaInput struct {
	Success            bool
	Heat               float64
	Difficulty         int
	Payout             float64
	CrackdownOperation bool
}

// Delta returns the notoriety change a resolved mission causes, rounded to two decimals.
// Successful crackdown operations cool the crew's reputation instead of raising it.
func Delta(in DeltaInput) float64 {
	var delta float64
	if in.Success {
		delta = in.Heat*0.6 + float64(in.Difficulty)*0.4 + in.Payout/5000
		if in.CrackdownOperation {
			delta = -delta
		}
	} else {
		delta = in.Heat*0.3 + float64(in.Difficulty)*0.2
	}
	return math.Round(delta*100) / 100
}
