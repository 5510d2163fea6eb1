// Package crew contains the crew member model and the pure rules for assigning
// crew to missions and recording mission fallout.
package crew

import (
	"fmt"
	"time"

	"github.com/example/syndicate/internal/core/catalog"
)

// Status is a crew member's availability.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusOnMission Status = "on-mission"
	StatusInjured   Status = "injured"
	StatusCaptured  Status = "captured"
)

// Specialty is the member's role; it decides which trait gets synergy weight.
type Specialty string

const (
	SpecialtyInfiltrator Specialty = "infiltrator"
	SpecialtyHacker      Specialty = "hacker"
	SpecialtyWheelman    Specialty = "wheelman"
	SpecialtyTactician   Specialty = "tactician"
	SpecialtyFace        Specialty = "face"
	SpecialtyEnforcer    Specialty = "enforcer"
)

// Trait names a crew trait.
type Trait string

const (
	TraitStealth  Trait = "stealth"
	TraitTech     Trait = "tech"
	TraitDriving  Trait = "driving"
	TraitTactics  Trait = "tactics"
	TraitCharisma Trait = "charisma"
	TraitMuscle   Trait = "muscle"
)

// AllTraits lists traits in evaluation order.
var AllTraits = []Trait{TraitStealth, TraitTech, TraitDriving, TraitTactics, TraitCharisma, TraitMuscle}

const (
	TraitBaseline = 1
	MinLoyalty    = 0
	MaxLoyalty    = 5
)

// FocusTrait returns the trait the specialty amplifies, or "" for unknown specialties.
func (s Specialty) FocusTrait() Trait {
	switch s {
	case SpecialtyInfiltrator:
		return TraitStealth
	case SpecialtyHacker:
		return TraitTech
	case SpecialtyWheelman:
		return TraitDriving
	case SpecialtyTactician:
		return TraitTactics
	case SpecialtyFace:
		return TraitCharisma
	case SpecialtyEnforcer:
		return TraitMuscle
	default:
		return ""
	}
}

// Traits holds trait levels. Levels at or below TraitBaseline contribute nothing.
type Traits struct {
	Stealth  int
	Tech     int
	Driving  int
	Tactics  int
	Charisma int
	Muscle   int
}

// Level returns the level of trait.
func (t Traits) Level(trait Trait) int {
	switch trait {
	case TraitStealth:
		return t.Stealth
	case TraitTech:
		return t.Tech
	case TraitDriving:
		return t.Driving
	case TraitTactics:
		return t.Tactics
	case TraitCharisma:
		return t.Charisma
	case TraitMuscle:
		return t.Muscle
	default:
		return 0
	}
}

// Member is a crew member. Members are shared between missions; Status enforces exclusivity.
type Member struct {
	ID         string
	Name       string
	Specialty  Specialty
	Background catalog.BackgroundID
	Traits     Traits
	Loyalty    int
	Perks      []catalog.PerkID
	Status     Status
}

// HasPerk reports whether the member holds perk id.
func (m *Member) HasPerk(id catalog.PerkID) bool {
	for _, p := range m.Perks {
		if p == id {
			return true
		}
	}
	return false
}

// MissionReady reports whether the member can be assigned.
func (m *Member) MissionReady() bool {
	return m.Status == StatusIdle
}

// Snapshot captures the member's pre-mission state for delta reporting.
type Snapshot struct {
	ID      string
	Name    string
	Loyalty int
	Status  Status
}

// Snapshot returns the member's current snapshot.
func (m *Member) Snapshot() Snapshot {
	return Snapshot{ID: m.ID, Name: m.Name, Loyalty: m.Loyalty, Status: m.Status}
}

// ClampLoyalty bounds loyalty to [MinLoyalty, MaxLoyalty].
func ClampLoyalty(v int) int {
	if v < MinLoyalty {
		return MinLoyalty
	}
	if v > MaxLoyalty {
		return MaxLoyalty
	}
	return v
}

// FalloutStatus is a post-mission crew condition.
type FalloutStatus string

const (
	FalloutInjured   FalloutStatus = "injured"
	FalloutCaptured  FalloutStatus = "captured"
	FalloutRecovered FalloutStatus = "recovered"
)

// FalloutRecord is produced on failure (injured/captured) and when a recovery mission succeeds.
type FalloutRecord struct {
	CrewID          string
	CrewName        string
	Status          FalloutStatus
	Severity        float64
	SourceMissionID string
	Guaranteed      bool
	Timestamp       time.Time
}

// MemberStatus maps a fallout status onto the member status it leaves behind.
func (s FalloutStatus) MemberStatus() Status {
	switch s {
	case FalloutInjured:
		return StatusInjured
	case FalloutCaptured:
		return StatusCaptured
	default:
		return StatusIdle
	}
}

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error returns the guard result as an error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// AssignContext provides context for crew assignment guards.
type AssignContext struct {
	CrewID string
	Found  bool
	Status Status
}

// CanAssign evaluates whether a crew member can join a mission.
// Rules:
// - Member must exist
// - Member must be idle
func CanAssign(ctx AssignContext) GuardResult {
	if !ctx.Found {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("crew member %s not found", ctx.CrewID),
		}
	}
	if ctx.Status != StatusIdle {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("crew member %s is %s, not mission-ready", ctx.CrewID, ctx.Status),
		}
	}
	return GuardResult{Allowed: true}
}
