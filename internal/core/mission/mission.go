// Package mission contains the mission model and the pure rules of its lifecycle:
// contract instantiation, state machine guards, progress and event deck
// advancement, and in-mission choice effects.
// This is part of the Functional Core - no I/O, only pure functions.
package mission

import (
	"time"

	"github.com/example/syndicate/internal/core/crackdown"
	"github.com/example/syndicate/internal/core/crew"
	"github.com/example/syndicate/internal/core/garage"
	"github.com/example/syndicate/internal/core/impact"
)

// Status represents the lifecycle state of a mission.
type Status string

const (
	StatusAvailable          Status = "available"
	StatusInProgress         Status = "in-progress"
	StatusDecisionRequired   Status = "decision-required"
	StatusAwaitingResolution Status = "awaiting-resolution"
	StatusCompleted          Status = "completed"
)

// Outcome is the result of a resolved mission.
type Outcome string

const (
	OutcomeNone    Outcome = ""
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// Category tags where a contract came from.
type Category string

const (
	CategoryStandard           Category = "standard"
	CategoryDistrict           Category = "district"
	CategoryCrackdownOperation Category = "crackdown-operation"
	CategoryCrewLoyalty        Category = "crew-loyalty"
	CategoryFalloutRecovery    Category = "fallout-recovery"
)

// RiskTier buckets missions for event deck gating.
type RiskTier string

const (
	RiskLow    RiskTier = "low"
	RiskMedium RiskTier = "medium"
	RiskHigh   RiskTier = "high"
)

// RiskTierFor returns the risk tier of an effective difficulty.
func RiskTierFor(difficulty int) RiskTier {
	switch {
	case difficulty >= 4:
		return RiskHigh
	case difficulty == 3:
		return RiskMedium
	default:
		return RiskLow
	}
}

// VehicleReward describes a vehicle granted on success.
type VehicleReward struct {
	Model        string
	TopSpeed     float64
	Acceleration float64
	Handling     float64
	HeatRating   float64
	Value        float64
}

// FalloutRecovery links a follow-up contract to the crew member it rescues.
type FalloutRecovery struct {
	CrewID   string
	CrewName string
	Status   crew.FalloutStatus
}

// StorylineLink ties a crew-loyalty contract to a storyline step.
type StorylineLink struct {
	CrewID string
	StepID string
}

// CrackdownEffect is the heat consequence of a crackdown operation.
type CrackdownEffect struct {
	HeatRelief     float64
	FailurePenalty float64
}

// Template is an immutable contract blueprint.
type Template struct {
	ID                string
	Name              string
	Description       string
	Category          Category
	Difficulty        int
	BasePayout        float64
	BaseHeat          float64
	BaseDuration      float64
	BaseSuccessChance float64 // zero means derive from difficulty
	DistrictID        string
	PointOfInterest   string
	VehicleReward     *VehicleReward
	FalloutRecovery   *FalloutRecovery
	Storyline         *StorylineLink
	CrackdownEffect   *CrackdownEffect
	IgnoreCrackdown   bool
}

// ChoiceEffect is what picking an event choice does to the mission.
// A multiplier of zero means unset.
type ChoiceEffect struct {
	PayoutMultiplier   float64
	PayoutDelta        float64
	HeatMultiplier     float64
	HeatDelta          float64
	SuccessDelta       float64
	DurationMultiplier float64
	DurationDelta      float64
	CrewLoyaltyDelta   int
	FutureDebt         *DebtTerms
}

// DebtTerms describes a debt taken on by an event choice.
type DebtTerms struct {
	Amount float64
	Notes  string
}

// Choice is one option of an in-mission event.
type Choice struct {
	ID        string
	Label     string
	Narrative string
	Effect    ChoiceEffect
}

// EventDefinition is an in-mission decision point.
type EventDefinition struct {
	ID              string
	Title           string
	Description     string
	TriggerProgress float64
	Choices         []Choice
	RiskTiers       []RiskTier       // empty means any
	CrackdownTiers  []crackdown.Tier // empty means any
	POIContext      string
}

// Choice returns the choice with id.
func (e EventDefinition) Choice(id string) (Choice, bool) {
	for _, c := range e.Choices {
		if c.ID == id {
			return c, true
		}
	}
	return Choice{}, false
}

// DeckEntry tracks one event in a mission's deck.
type DeckEntry struct {
	Event    EventDefinition
	Resolved bool
	Skipped  bool
}

// HistoryEntry records an event that was chosen or skipped.
type HistoryEntry struct {
	EventID   string
	Title     string
	ChoiceID  string
	Label     string
	Narrative string
	Skipped   bool
	Reason    string
	Progress  float64
}

// PendingDecision is the event awaiting a player choice.
type PendingDecision struct {
	EventID string
	Event   EventDefinition
}

// PendingResolution is the single drawn roll waiting to be applied.
type PendingResolution struct {
	Roll    float64
	Chance  float64
	Outcome Outcome
}

// Assignment is the crew and vehicle committed to a mission at start.
type Assignment struct {
	CrewIDs         []string
	VehicleID       string
	CrewSnapshots   []crew.Snapshot
	VehicleSnapshot *garage.Snapshot
	VehicleImpact   *impact.VehicleImpact
	Summaries       []string
}

// CrewDelta reports a crew member's change across a mission.
type CrewDelta struct {
	CrewID        string
	Name          string
	LoyaltyBefore int
	LoyaltyAfter  int
	StatusAfter   crew.Status
}

// VehicleDelta reports the assigned vehicle's change across a mission.
type VehicleDelta struct {
	VehicleID       string
	ConditionBefore float64
	ConditionAfter  float64
	HeatBefore      float64
	HeatAfter       float64
}

// DebtSettlement records payment against one pending debt.
type DebtSettlement struct {
	DebtID    string
	Paid      float64
	Remaining float64
}

// ResolutionDetails is the final record of a resolved mission.
type ResolutionDetails struct {
	Outcome        Outcome
	Roll           float64
	Chance         float64
	Forced         bool
	GrossPayout    float64
	NetPayout      float64
	HeatApplied    float64
	NotorietyDelta float64
	Settlements    []DebtSettlement
	Fallout        []crew.FalloutRecord
	FollowUps      []string
	CrewDeltas     []CrewDelta
	VehicleDelta   *VehicleDelta
	VehicleReport  *VehicleReport
	Storyline      string
	Crackdown      string
	Notes          []string
	ResolvedAt     time.Time
}

// VehicleReportOutcome classifies a reward vehicle report.
type VehicleReportOutcome string

const (
	VehicleReportAdded          VehicleReportOutcome = "added"
	VehicleReportStorageBlocked VehicleReportOutcome = "storage-blocked"
)

// VehicleReport describes what happened to a mission's reward vehicle.
type VehicleReport struct {
	MissionID string
	Model     string
	VehicleID string
	Outcome   VehicleReportOutcome
	Capacity  int
	Stored    int
}

// PendingDebt is owed against the next successful payout.
type PendingDebt struct {
	ID             string
	Amount         float64
	Remaining      float64
	SourceEventID  string
	SourceChoiceID string
	Notes          string
	CreatedAt      time.Time
}

// Mission is an instantiated contract.
type Mission struct {
	ID              string
	TemplateID      string
	Name            string
	Description     string
	Category        Category
	DistrictID      string
	PointOfInterest string
	VehicleReward   *VehicleReward
	FalloutRecovery *FalloutRecovery
	Storyline       *StorylineLink
	CrackdownEffect *CrackdownEffect
	IgnoreCrackdown bool

	Difficulty        int
	BasePayout        float64
	BaseHeat          float64
	BaseDuration      float64
	BaseSuccessChance float64
	Payout            float64
	Heat              float64
	Duration          float64
	SuccessChance     float64
	NotorietyBand     string

	Restricted        bool
	RestrictionReason string

	Status      Status
	ElapsedTime float64
	Progress    float64

	Assignment        *Assignment
	EventDeck         []DeckEntry
	EventHistory      []HistoryEntry
	PendingDecision   *PendingDecision
	PendingResolution *PendingResolution
	Resolution        *ResolutionDetails
	Outcome           Outcome
}

// RiskTier returns the mission's risk tier.
func (m *Mission) RiskTier() RiskTier {
	return RiskTierFor(m.Difficulty)
}

// ImpactInput returns the base values fed to the modifier pipeline.
func (m *Mission) ImpactInput(tier crackdown.Tier) impact.Input {
	return impact.Input{
		MissionID:         m.ID,
		Difficulty:        m.Difficulty,
		BaseDuration:      m.BaseDuration,
		BasePayout:        m.BasePayout,
		BaseHeat:          m.BaseHeat,
		BaseSuccessChance: m.BaseSuccessChance,
		Tier:              tier,
	}
}

// ApplyImpact overwrites the effective values with a pipeline result.
func (m *Mission) ApplyImpact(r impact.Result) {
	m.Duration = r.AdjustedDuration
	m.Payout = r.AdjustedPayout
	m.Heat = r.AdjustedHeat
	m.SuccessChance = r.AdjustedSuccessChance
}

// ClearTransient drops assignment and in-flight fields after resolution.
func (m *Mission) ClearTransient() {
	m.Assignment = nil
	m.EventDeck = nil
	m.PendingDecision = nil
	m.PendingResolution = nil
}

// Active reports whether the mission occupies the active slot.
func (m *Mission) Active() bool {
	return m != nil && m.Status != StatusAvailable && m.Status != StatusCompleted
}
