package catalog

// PerkID identifies a crew perk. Perks are resolved by id, never by label.
type PerkID string

const (
	PerkBadgeContacts    PerkID = "badge-contacts"
	PerkGetawayArtist    PerkID = "getaway-artist"
	PerkSilverTongue     PerkID = "silver-tongue"
	PerkBattleTested     PerkID = "battle-tested"
	PerkGhostProtocol    PerkID = "ghost-protocol"
	PerkTeamPlayer       PerkID = "team-player"
	PerkAdrenalineJunkie PerkID = "adrenaline-junkie"
)

// PerkCondition gates when a perk contributes.
type PerkCondition int

const (
	// ConditionAlways applies on every mission.
	ConditionAlways PerkCondition = iota
	// ConditionAlliedSupport requires at least one other crew member on the job.
	ConditionAlliedSupport
	// ConditionHighHeat requires a hot mission or a non-calm crackdown tier.
	ConditionHighHeat
)

func (c PerkCondition) String() string {
	switch c {
	case ConditionAlways:
		return "always"
	case ConditionAlliedSupport:
		return "allied-support"
	case ConditionHighHeat:
		return "high-heat"
	default:
		return "unknown"
	}
}

// HighHeatThreshold is the base mission heat at which high-heat perks activate.
const HighHeatThreshold = 3.0

// PerkContext is the mission context a perk condition is evaluated against.
type PerkContext struct {
	CrewCount    int
	BaseHeat     float64
	TierElevated bool
}

// Perk is a tagged perk variant: id, activation condition, payload.
type Perk struct {
	ID          PerkID
	Label       string
	Description string
	Condition   PerkCondition
	Effect      Effect
}

// Applies reports whether the perk's condition holds for ctx.
func (p Perk) Applies(ctx PerkContext) bool {
	switch p.Condition {
	case ConditionAlways:
		return true
	case ConditionAlliedSupport:
		return ctx.CrewCount >= 2
	case ConditionHighHeat:
		return ctx.BaseHeat >= HighHeatThreshold || ctx.TierElevated
	default:
		return false
	}
}

var perks = map[PerkID]Perk{
	PerkBadgeContacts: {
		ID:          PerkBadgeContacts,
		Label:       "Badge contacts",
		Description: "Old friends on the force look the other way.",
		Condition:   ConditionAlways,
		Effect:      Effect{DurationMultiplier: 1, PayoutMultiplier: 1, HeatMultiplier: 0.85},
	},
	PerkGetawayArtist: {
		ID:          PerkGetawayArtist,
		Label:       "Getaway artist",
		Description: "Knows every back alley out of town.",
		Condition:   ConditionAlways,
		Effect:      Effect{DurationMultiplier: 0.9, PayoutMultiplier: 1, HeatMultiplier: 1, SuccessBonus: 0.02},
	},
	PerkSilverTongue: {
		ID:          PerkSilverTongue,
		Label:       "Silver tongue",
		Description: "Fences pay a little extra.",
		Condition:   ConditionAlways,
		Effect:      Effect{DurationMultiplier: 1, PayoutMultiplier: 1.1, HeatMultiplier: 1},
	},
	PerkBattleTested: {
		ID:          PerkBattleTested,
		Label:       "Battle tested",
		Description: "Keeps a cool head when it goes loud.",
		Condition:   ConditionAlways,
		Effect:      Effect{DurationMultiplier: 1, PayoutMultiplier: 1, HeatMultiplier: 1, SuccessBonus: 0.06},
	},
	PerkGhostProtocol: {
		ID:          PerkGhostProtocol,
		Label:       "Ghost protocol",
		Description: "Vanishes when the city is crawling with cops.",
		Condition:   ConditionHighHeat,
		Effect:      Effect{DurationMultiplier: 1, PayoutMultiplier: 1, HeatMultiplier: 0.8, HeatAdjustment: -0.2},
	},
	PerkTeamPlayer: {
		ID:          PerkTeamPlayer,
		Label:       "Team player",
		Description: "Sharper with backup.",
		Condition:   ConditionAlliedSupport,
		Effect:      Effect{DurationMultiplier: 0.95, PayoutMultiplier: 1, HeatMultiplier: 1, SuccessBonus: 0.05},
	},
	PerkAdrenalineJunkie: {
		ID:          PerkAdrenalineJunkie,
		Label:       "Adrenaline junkie",
		Description: "Thrives under pressure, draws attention doing it.",
		Condition:   ConditionHighHeat,
		Effect:      Effect{DurationMultiplier: 0.9, PayoutMultiplier: 1.08, HeatMultiplier: 1.1},
	},
}

// LookupPerk returns the perk definition for id.
func LookupPerk(id PerkID) (Perk, bool) {
	p, ok := perks[id]
	return p, ok
}

// BackgroundID identifies a crew member's background.
type BackgroundID string

const (
	BackgroundNone        BackgroundID = ""
	BackgroundExCop       BackgroundID = "ex-cop"
	BackgroundStreetRacer BackgroundID = "street-racer"
	BackgroundGrifter     BackgroundID = "grifter"
	BackgroundVeteran     BackgroundID = "veteran"
	BackgroundHacker      BackgroundID = "hacker"
)

// Background is the static fallback effect of a crew member's history. A member
// holding EquivalentPerk gets the perk instead, never both.
type Background struct {
	ID             BackgroundID
	Label          string
	Effect         Effect
	EquivalentPerk PerkID
}

var backgrounds = map[BackgroundID]Background{
	BackgroundExCop: {
		ID:             BackgroundExCop,
		Label:          "Ex-cop",
		Effect:         Effect{DurationMultiplier: 1, PayoutMultiplier: 1, HeatMultiplier: 0.92},
		EquivalentPerk: PerkBadgeContacts,
	},
	BackgroundStreetRacer: {
		ID:             BackgroundStreetRacer,
		Label:          "Street racer",
		Effect:         Effect{DurationMultiplier: 0.94, PayoutMultiplier: 1, HeatMultiplier: 1},
		EquivalentPerk: PerkGetawayArtist,
	},
	BackgroundGrifter: {
		ID:             BackgroundGrifter,
		Label:          "Grifter",
		Effect:         Effect{DurationMultiplier: 1, PayoutMultiplier: 1.05, HeatMultiplier: 1},
		EquivalentPerk: PerkSilverTongue,
	},
	BackgroundVeteran: {
		ID:             BackgroundVeteran,
		Label:          "Veteran",
		Effect:         Effect{DurationMultiplier: 1, PayoutMultiplier: 1, HeatMultiplier: 1, SuccessBonus: 0.03},
		EquivalentPerk: PerkBattleTested,
	},
	BackgroundHacker: {
		ID:     BackgroundHacker,
		Label:  "Hacker",
		Effect: Effect{DurationMultiplier: 0.97, PayoutMultiplier: 1, HeatMultiplier: 0.97},
	},
}

// LookupBackground returns the background definition for id.
func LookupBackground(id BackgroundID) (Background, bool) {
	b, ok := backgrounds[id]
	return b, ok
}
