package resolution

import (
	"math"
	"time"

	"github.com/example/syndicate/internal/core/crew"
)

// ForcedSeverity is the failure severity used when no roll was drawn.
const ForcedSeverity = 0.5

// Dice is a source of uniform draws in [0,1).
type Dice interface {
	Float64() float64
}

// Severity measures how badly a roll missed: 0 at the success threshold,
// 1 at the worst possible roll.
func Severity(roll, chance float64, hasRoll bool) float64 {
	if !hasRoll {
		return ForcedSeverity
	}
	if chance >= 1 {
		return 1
	}
	return clamp01((roll - chance) / (1 - chance))
}

// CaptureChance is the per-member capture probability.
func CaptureChance(severity float64, difficulty int) float64 {
	return math.Max(0, math.Min(0.6, 0.05+0.25*severity+0.03*float64(difficulty)))
}

// InjuryChance is the per-member injury probability, drawn only when not captured.
func InjuryChance(severity float64, difficulty int) float64 {
	return math.Max(0, math.Min(0.8, 0.10+0.35*severity+0.04*float64(difficulty)))
}

// CrewInput is an assigned crew member's state at resolution.
type CrewInput struct {
	ID      string
	Name    string
	Loyalty int
}

// FalloutInput describes a failed mission for fallout purposes.
type FalloutInput struct {
	MissionID   string
	Difficulty  int
	Severity    float64
	Crew        []CrewInput
	LoyaltyOnly bool
	Now         time.Time
}

// EvaluateFallout draws capture then injury for every member. When crew were
// assigned and nobody was hurt, the first member is injured anyway and the
// record is flagged Guaranteed. Loyalty-only missions produce no fallout.
func EvaluateFallout(in FalloutInput, dice Dice) []crew.FalloutRecord {
	if in.LoyaltyOnly || len(in.Crew) == 0 {
		return nil
	}

	capture := CaptureChance(in.Severity, in.Difficulty)
	injury := InjuryChance(in.Severity, in.Difficulty)

	var records []crew.FalloutRecord
	for _, c := range in.Crew {
		var status crew.FalloutStatus
		if dice.Float64() < capture {
			status = crew.FalloutCaptured
		} else if dice.Float64() < injury {
			status = crew.FalloutInjured
		}
		if status == "" {
			continue
		}
		records = append(records, crew.FalloutRecord{
			CrewID:          c.ID,
			CrewName:        c.Name,
			Status:          status,
			Severity:        in.Severity,
			SourceMissionID: in.MissionID,
			Timestamp:       in.Now,
		})
	}

	if len(records) == 0 {
		first := in.Crew[0]
		records = append(records, crew.FalloutRecord{
			CrewID:          first.ID,
			CrewName:        first.Name,
			Status:          crew.FalloutInjured,
			Severity:        in.Severity,
			SourceMissionID: in.MissionID,
			Guaranteed:      true,
			Timestamp:       in.Now,
		})
	}
	return records
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
