package mission

import (
	"fmt"
	"math"
	"strings"

	"github.com/example/syndicate/internal/core/crackdown"
	"github.com/example/syndicate/internal/core/impact"
)

// Start freezes the assignment and the pipeline result onto m, loads the
// event deck and moves the mission to in-progress.
func Start(m *Mission, a *Assignment, r impact.Result, deck []EventDefinition) {
	m.ApplyImpact(r)
	m.Assignment = a
	m.Status = StatusInProgress
	m.ElapsedTime = 0
	m.Progress = 0
	m.EventDeck = make([]DeckEntry, 0, len(deck))
	for _, e := range deck {
		m.EventDeck = append(m.EventDeck, DeckEntry{Event: e})
	}
	m.EventHistory = nil
	m.PendingDecision = nil
	m.PendingResolution = nil
	m.Resolution = nil
	m.Outcome = OutcomeNone
}

// AdvanceTime adds delta seconds of elapsed time. Non-positive and non-finite
// deltas are ignored. Progress never decreases and is capped at 1.
func AdvanceTime(m *Mission, delta float64) {
	if finite(delta) && delta > 0 {
		m.ElapsedTime += delta
	}
	recomputeProgress(m)
}

// recomputeProgress derives progress from elapsed time. When the duration has
// grown, progress holds at its previous value until elapsed time catches up.
func recomputeProgress(m *Mission) {
	p := 1.0
	if m.Duration > 0 {
		p = math.Min(1, m.ElapsedTime/m.Duration)
	}
	m.Progress = math.Max(m.Progress, p)
}

// AdvanceEvents makes the first unresolved due deck entry the pending decision.
// Entries gated to other crackdown tiers or risk tiers are skipped and recorded.
func AdvanceEvents(m *Mission, tier crackdown.Tier) *PendingDecision {
	if m.PendingDecision != nil {
		return m.PendingDecision
	}
	for i := range m.EventDeck {
		entry := &m.EventDeck[i]
		if entry.Resolved || entry.Skipped {
			continue
		}
		if entry.Event.TriggerProgress > m.Progress {
			continue
		}
		if reason, skip := skipReason(entry.Event, tier, m.RiskTier()); skip {
			entry.Skipped = true
			m.EventHistory = append(m.EventHistory, HistoryEntry{
				EventID:  entry.Event.ID,
				Title:    entry.Event.Title,
				Skipped:  true,
				Reason:   reason,
				Progress: m.Progress,
			})
			continue
		}
		m.PendingDecision = &PendingDecision{EventID: entry.Event.ID, Event: entry.Event}
		m.Status = StatusDecisionRequired
		return m.PendingDecision
	}
	if m.Status == StatusDecisionRequired {
		m.Status = StatusInProgress
	}
	return nil
}

func skipReason(e EventDefinition, tier crackdown.Tier, risk RiskTier) (string, bool) {
	if len(e.CrackdownTiers) > 0 && !containsTier(e.CrackdownTiers, tier) {
		names := make([]string, len(e.CrackdownTiers))
		for i, t := range e.CrackdownTiers {
			names[i] = string(t)
		}
		return fmt.Sprintf("requires crackdown tier %s (current %s)", strings.Join(names, "/"), tier), true
	}
	if len(e.RiskTiers) > 0 && !containsRisk(e.RiskTiers, risk) {
		names := make([]string, len(e.RiskTiers))
		for i, r := range e.RiskTiers {
			names[i] = string(r)
		}
		return fmt.Sprintf("requires risk tier %s (mission %s)", strings.Join(names, "/"), risk), true
	}
	return "", false
}

func containsTier(tiers []crackdown.Tier, t crackdown.Tier) bool {
	for _, x := range tiers {
		if x == t {
			return true
		}
	}
	return false
}

func containsRisk(tiers []RiskTier, r RiskTier) bool {
	for _, x := range tiers {
		if x == r {
			return true
		}
	}
	return false
}

// HasEvent reports whether eventID is part of the mission's deck.
func (m *Mission) HasEvent(eventID string) bool {
	for _, e := range m.EventDeck {
		if e.Event.ID == eventID {
			return true
		}
	}
	return false
}

// ChoiceResult is what the caller must apply outside the mission after a choice.
type ChoiceResult struct {
	EventID      string
	Choice       Choice
	LoyaltyDelta int
	Debt         *DebtTerms
}

// ApplyChoice applies choice to the pending decision of m. The caller must have
// checked CanChooseOption. Effects apply in a fixed order: payout multiplier and
// delta, heat multiplier and delta, success delta, duration multiplier and delta.
func ApplyChoice(m *Mission, choice Choice) ChoiceResult {
	e := choice.Effect

	if e.PayoutMultiplier != 0 {
		m.Payout *= e.PayoutMultiplier
	}
	m.Payout = math.Max(0, m.Payout+e.PayoutDelta)

	if e.HeatMultiplier != 0 {
		m.Heat *= e.HeatMultiplier
	}
	m.Heat = math.Max(0, m.Heat+e.HeatDelta)

	m.SuccessChance = clampChance(m.SuccessChance + e.SuccessDelta)

	if e.DurationMultiplier != 0 {
		m.Duration *= e.DurationMultiplier
	}
	m.Duration = math.Max(MinDuration, m.Duration+e.DurationDelta)

	recomputeProgress(m)

	eventID := m.PendingDecision.EventID
	for i := range m.EventDeck {
		if m.EventDeck[i].Event.ID == eventID {
			m.EventDeck[i].Resolved = true
			break
		}
	}
	m.EventHistory = append(m.EventHistory, HistoryEntry{
		EventID:   eventID,
		Title:     m.PendingDecision.Event.Title,
		ChoiceID:  choice.ID,
		Label:     choice.Label,
		Narrative: choice.Narrative,
		Progress:  m.Progress,
	})
	m.PendingDecision = nil
	m.Status = StatusInProgress

	var debt *DebtTerms
	if e.FutureDebt != nil && e.FutureDebt.Amount > 0 {
		d := *e.FutureDebt
		debt = &d
	}
	return ChoiceResult{EventID: eventID, Choice: choice, LoyaltyDelta: e.CrewLoyaltyDelta, Debt: debt}
}

// ReadyForResolution reports whether time is exhausted with no decision pending.
func ReadyForResolution(m *Mission) bool {
	return m.Status == StatusInProgress && m.PendingDecision == nil && m.ElapsedTime >= m.Duration
}

// OutcomeForRoll returns success when roll is at or below chance.
func OutcomeForRoll(roll, chance float64) Outcome {
	if roll <= chance {
		return OutcomeSuccess
	}
	return OutcomeFailure
}

// BeginResolution records the single roll for m and moves it to
// awaiting-resolution. A roll already pending is kept.
func BeginResolution(m *Mission, roll float64) *PendingResolution {
	if m.PendingResolution == nil {
		m.PendingResolution = &PendingResolution{
			Roll:    roll,
			Chance:  m.SuccessChance,
			Outcome: OutcomeForRoll(roll, m.SuccessChance),
		}
	}
	m.Status = StatusAwaitingResolution
	return m.PendingResolution
}

// Complete marks m as resolved with outcome and drops its transient fields.
func Complete(m *Mission, outcome Outcome, details *ResolutionDetails) {
	m.Outcome = outcome
	m.Resolution = details
	m.Status = StatusCompleted
	m.Progress = 1
	m.ClearTransient()
}
