// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the collaborators the mission engine reads from and writes to.
package secondary

import (
	"github.com/example/syndicate/internal/core/crew"
	"github.com/example/syndicate/internal/core/mission"
)

// MitigationResult reports what a heat mitigation actually achieved.
type MitigationResult struct {
	HeatBefore       float64
	HeatAfter        float64
	ReductionApplied float64
}

// HeatSystem is the city's law-enforcement heat meter.
type HeatSystem interface {
	// CurrentTier returns the crackdown tier name for the current heat.
	CurrentTier() string

	// Value returns the current heat.
	Value() float64

	// Increase raises heat, clamped to the system's cap.
	Increase(amount float64)

	// ApplyMitigation lowers heat and reports the change.
	ApplyMitigation(amount float64, meta map[string]any) MitigationResult
}

// Economy holds the crew's funds.
type Economy interface {
	Funds() float64
	AdjustFunds(delta float64)
}

// District is a read-only view of a city district.
type District struct {
	ID                string
	Name              string
	Wealth            int
	Security          int
	Influence         int
	IntelLevel        int
	CrackdownPressure int
	PointsOfInterest  []string
}

// CampaignSnapshot is the city's campaign progress, consumed read-only.
type CampaignSnapshot struct {
	DistrictsTotal      int
	DistrictsControlled int
	Milestones          []string
}

// City exposes districts and their standing.
type City interface {
	Districts() []District
	District(id string) (District, bool)
	AdjustIntelLevel(id string, delta int)
	AdjustInfluence(id string, delta int)
	AdjustCrackdownPressure(id string, delta int)
	CampaignSnapshot() CampaignSnapshot
}

// Safehouse decides how many vehicles the crew can store.
type Safehouse interface {
	StorageCapacity() int
}

// DeckContext is the mission context handed to the event deck generator.
type DeckContext struct {
	MissionID       string
	TemplateID      string
	Category        mission.Category
	DistrictID      string
	PointOfInterest string
	Difficulty      int
	Risk            mission.RiskTier
	Tier            string
	Heat            float64
	CrewIDs         []string
	VehicleID       string
}

// EventDeckGenerator builds a mission's event deck. Called once per mission start.
type EventDeckGenerator interface {
	BuildDeck(ctx DeckContext) []mission.EventDefinition
}

// StorylineResult is the storyline catalog's response to a recorded outcome.
type StorylineResult struct {
	CrewID       string
	StepID       string
	Advanced     bool
	LoyaltyDelta int
	Summary      string
}

// StorylineCatalog offers crew storyline steps and records their outcomes.
type StorylineCatalog interface {
	AvailableSteps(members []*crew.Member) []mission.StorylineStep
	RecordOutcome(link mission.StorylineLink, outcome mission.Outcome) StorylineResult
}

// RandomSource produces uniform draws in [0,1).
type RandomSource interface {
	Float64() float64
}
