package catalog

// SkillID identifies a player skill.
type SkillID string

const (
	SkillPlanning    SkillID = "planning"
	SkillDriving     SkillID = "driving"
	SkillNegotiation SkillID = "negotiation"
	SkillStealth     SkillID = "stealth"
)

// SkillCapLevels is how many levels above baseline a single skill can count.
const SkillCapLevels = 4

// Player totals are capped independently per component.
const (
	MaxSkillDurationReduction = 0.25
	MaxSkillPayoutBonus       = 0.30
	MaxSkillHeatReduction     = 0.30
	MaxSkillSuccessBonus      = 0.12
)

// Skill holds the per-level rates of a player skill.
type Skill struct {
	ID           SkillID
	Label        string
	Baseline     int
	DurationRate float64
	PayoutRate   float64
	HeatRate     float64
	SuccessRate  float64
}

var skills = map[SkillID]Skill{
	SkillPlanning:    {ID: SkillPlanning, Label: "Planning", Baseline: 1, DurationRate: 0.03, SuccessRate: 0.01},
	SkillDriving:     {ID: SkillDriving, Label: "Driving", Baseline: 1, DurationRate: 0.02, HeatRate: 0.02},
	SkillNegotiation: {ID: SkillNegotiation, Label: "Negotiation", Baseline: 1, PayoutRate: 0.04},
	SkillStealth:     {ID: SkillStealth, Label: "Stealth", Baseline: 1, HeatRate: 0.04, SuccessRate: 0.01},
}

// LookupSkill returns the skill definition for id.
func LookupSkill(id SkillID) (Skill, bool) {
	s, ok := skills[id]
	return s, ok
}

// GearID identifies a piece of player gear.
type GearID string

const (
	GearEncryptedRadio GearID = "encrypted-radio"
	GearLockpickSet    GearID = "lockpick-set"
	GearBodyArmor      GearID = "body-armor"
	GearForgedIDs      GearID = "forged-ids"
	GearThermalDrill   GearID = "thermal-drill"
)

// Gear is a fixed effect applied while equipped.
type Gear struct {
	ID     GearID
	Label  string
	Effect Effect
}

var gear = map[GearID]Gear{
	GearEncryptedRadio: {
		ID:     GearEncryptedRadio,
		Label:  "Encrypted radio",
		Effect: Effect{DurationMultiplier: 1, PayoutMultiplier: 1, HeatMultiplier: 0.95, SuccessBonus: 0.03},
	},
	GearLockpickSet: {
		ID:     GearLockpickSet,
		Label:  "Lockpick set",
		Effect: Effect{DurationMultiplier: 0.92, PayoutMultiplier: 1, HeatMultiplier: 1},
	},
	GearBodyArmor: {
		ID:     GearBodyArmor,
		Label:  "Body armor",
		Effect: Effect{DurationMultiplier: 1, PayoutMultiplier: 1, HeatMultiplier: 1, SuccessBonus: 0.02},
	},
	GearForgedIDs: {
		ID:     GearForgedIDs,
		Label:  "Forged IDs",
		Effect: Effect{DurationMultiplier: 1, PayoutMultiplier: 1, HeatMultiplier: 0.9},
	},
	GearThermalDrill: {
		ID:     GearThermalDrill,
		Label:  "Thermal drill",
		Effect: Effect{DurationMultiplier: 0.88, PayoutMultiplier: 1, HeatMultiplier: 1, HeatAdjustment: 0.2},
	},
}

// LookupGear returns the gear definition for id.
func LookupGear(id GearID) (Gear, bool) {
	g, ok := gear[id]
	return g, ok
}
