package eventdeck

import (
	"github.com/example/syndicate/internal/core/crackdown"
	"github.com/example/syndicate/internal/core/mission"
)

// Library returns the default event library. IDs are prefixed with the
// mission ID when dealt.
func Library() []mission.EventDefinition {
	return []mission.EventDefinition{
		{
			ID:          "patrol-sweep",
			Title:       "Patrol Sweep",
			Description: "A squad car rolls past the staging point twice.",
			Choices: []mission.Choice{
				{
					ID:        "lie-low",
					Label:     "Lie low",
					Narrative: "The crew waits it out in the dark.",
					Effect:    mission.ChoiceEffect{DurationMultiplier: 1.2, HeatDelta: -0.5},
				},
				{
					ID:        "push-on",
					Label:     "Push on",
					Narrative: "No time to waste. The crew moves anyway.",
					Effect:    mission.ChoiceEffect{HeatDelta: 1.5, SuccessDelta: -0.05},
				},
			},
		},
		{
			ID:          "inside-contact",
			Title:       "Inside Contact",
			Description: "A guard offers the rota for a price.",
			POIContext:  "site",
			Choices: []mission.Choice{
				{
					ID:        "pay",
					Label:     "Pay up front",
					Narrative: "Cash changes hands and the rota checks out.",
					Effect:    mission.ChoiceEffect{PayoutDelta: -400, SuccessDelta: 0.1},
				},
				{
					ID:        "promise",
					Label:     "Promise a cut later",
					Narrative: "The guard takes an IOU. They will want it back.",
					Effect: mission.ChoiceEffect{
						SuccessDelta: 0.1,
						FutureDebt:   &mission.DebtTerms{Amount: 600, Notes: "guard's cut"},
					},
				},
				{
					ID:        "decline",
					Label:     "Decline",
					Narrative: "Nobody on the crew trusts a bought guard.",
				},
			},
		},
		{
			ID:          "bigger-score",
			Title:       "Bigger Score",
			Description: "The vault holds more than the tip said.",
			RiskTiers:   []mission.RiskTier{mission.RiskMedium, mission.RiskHigh},
			Choices: []mission.Choice{
				{
					ID:        "take-it-all",
					Label:     "Take it all",
					Narrative: "Bags get heavier and the clock keeps running.",
					Effect: mission.ChoiceEffect{
						PayoutMultiplier:   1.3,
						HeatMultiplier:     1.25,
						DurationMultiplier: 1.15,
					},
				},
				{
					ID:        "stick-to-plan",
					Label:     "Stick to the plan",
					Narrative: "The crew takes what they came for.",
					Effect:    mission.ChoiceEffect{CrewLoyaltyDelta: 1},
				},
			},
		},
		{
			ID:             "checkpoint",
			Title:          "Checkpoint",
			Description:    "Police have closed the main road out.",
			CrackdownTiers: []crackdown.Tier{crackdown.TierAlert, crackdown.TierLockdown},
			Choices: []mission.Choice{
				{
					ID:        "detour",
					Label:     "Take the long way",
					Narrative: "Back streets add time but no attention.",
					Effect:    mission.ChoiceEffect{DurationDelta: 15},
				},
				{
					ID:        "bribe",
					Label:     "Bribe the sergeant",
					Narrative: "The barrier lifts. Someone will collect later.",
					Effect: mission.ChoiceEffect{
						HeatDelta:  -1,
						FutureDebt: &mission.DebtTerms{Amount: 250, Notes: "checkpoint bribe"},
					},
				},
			},
		},
		{
			ID:          "crew-nerves",
			Title:       "Crew Nerves",
			Description: "Someone on the crew wants out halfway through.",
			RiskTiers:   []mission.RiskTier{mission.RiskHigh},
			Choices: []mission.Choice{
				{
					ID:        "talk-down",
					Label:     "Talk them down",
					Narrative: "A steady word keeps the crew together.",
					Effect:    mission.ChoiceEffect{DurationDelta: 5, CrewLoyaltyDelta: 1},
				},
				{
					ID:        "bonus",
					Label:     "Promise a bonus",
					Narrative: "Money settles nerves. It comes out of the take.",
					Effect:    mission.ChoiceEffect{PayoutMultiplier: 0.9, SuccessDelta: 0.05},
				},
			},
		},
		{
			ID:          "alarm-glitch",
			Title:       "Alarm Glitch",
			Description: "The alarm panel flickers into maintenance mode.",
			Choices: []mission.Choice{
				{
					ID:        "exploit",
					Label:     "Exploit it",
					Narrative: "The crew slips through while the panel reboots.",
					Effect:    mission.ChoiceEffect{DurationMultiplier: 0.85, SuccessDelta: 0.05},
				},
				{
					ID:        "ignore",
					Label:     "Ignore it",
					Narrative: "Could be a trap. The crew sticks to the route.",
				},
			},
		},
	}
}
