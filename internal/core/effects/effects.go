// Package effects defines effect types as data structures representing state changes
// outside the mission record: funds, heat, crew, garage, districts and the log.
// Effects are pure data - they describe what should happen, not how.
package effects

// Effect is the base interface for all effects.
// Effects represent side effects as data that can be interpreted by the shell.
type Effect interface {
	// EffectType returns a string identifier for the effect type.
	EffectType() string
}

// LogEffect represents a logging operation.
type LogEffect struct {
	Level   string
	Message string
	Fields  map[string]any
}

func (e LogEffect) EffectType() string { return "log" }

// FundsEffect credits (or debits) the economy.
type FundsEffect struct {
	Delta  float64
	Reason string
}

func (e FundsEffect) EffectType() string { return "funds" }

// HeatEffect raises city heat.
type HeatEffect struct {
	Amount float64
	Reason string
}

func (e HeatEffect) EffectType() string { return "heat" }

// MitigationEffect lowers city heat through the heat system's mitigation path.
type MitigationEffect struct {
	Amount float64
	Meta   map[string]any
}

func (e MitigationEffect) EffectType() string { return "mitigation" }

// LoyaltyEffect adjusts a crew member's loyalty.
type LoyaltyEffect struct {
	CrewID string
	Delta  int
}

func (e LoyaltyEffect) EffectType() string { return "loyalty" }

// CrewStatusEffect sets a crew member's status.
type CrewStatusEffect struct {
	CrewID string
	Status string // "idle", "injured", "captured"
}

func (e CrewStatusEffect) EffectType() string { return "crew_status" }

// VehicleWearEffect applies post-mission condition loss and heat gain.
type VehicleWearEffect struct {
	VehicleID string
	Condition float64 // resulting condition
	Heat      float64 // resulting heat
}

func (e VehicleWearEffect) EffectType() string { return "vehicle_wear" }

// VehicleReleaseEffect returns a vehicle to the garage pool.
type VehicleReleaseEffect struct {
	VehicleID string
}

func (e VehicleReleaseEffect) EffectType() string { return "vehicle_release" }

// GarageAddEffect stores a reward vehicle.
type GarageAddEffect struct {
	VehicleID    string
	Model        string
	TopSpeed     float64
	Acceleration float64
	Handling     float64
	HeatRating   float64
	Value        float64
}

func (e GarageAddEffect) EffectType() string { return "garage_add" }

// DebtEffect records a payment against a pending debt. Debts with nothing
// remaining leave the queue.
type DebtEffect struct {
	DebtID    string
	Paid      float64
	Remaining float64
}

func (e DebtEffect) EffectType() string { return "debt" }

// DistrictEffect adjusts a district's standing.
type DistrictEffect struct {
	DistrictID        string
	Influence         int
	Intel             int
	CrackdownPressure int
}

func (e DistrictEffect) EffectType() string { return "district" }

// FalloutEffect records a crew fallout entry.
type FalloutEffect struct {
	CrewID          string
	CrewName        string
	Status          string // "injured", "captured", "recovered"
	Severity        float64
	SourceMissionID string
	Guaranteed      bool
}

func (e FalloutEffect) EffectType() string { return "fallout" }

// FollowUpEffect queues a rescue or medical contract ahead of the board.
type FollowUpEffect struct {
	CrewID           string
	CrewName         string
	Status           string
	SourceDifficulty int
}

func (e FollowUpEffect) EffectType() string { return "follow_up" }

// NotorietyEffect adjusts crew notoriety.
type NotorietyEffect struct {
	Delta float64
}

func (e NotorietyEffect) EffectType() string { return "notoriety" }

// StorylineEffect reports a crew-loyalty mission outcome to the storyline catalog.
type StorylineEffect struct {
	CrewID  string
	StepID  string
	Outcome string
}

func (e StorylineEffect) EffectType() string { return "storyline" }

// CompositeEffect holds multiple effects to be executed in sequence.
type CompositeEffect struct {
	Effects []Effect
}

func (e CompositeEffect) EffectType() string { return "composite" }

// NoEffect represents an operation that produces no side effects.
type NoEffect struct{}

func (e NoEffect) EffectType() string { return "none" }
