package memory

import (
	"github.com/example/syndicate/internal/core/catalog"
	"github.com/example/syndicate/internal/core/crew"
	"github.com/example/syndicate/internal/core/garage"
	"github.com/example/syndicate/internal/core/player"
)

// StarterCrew returns the crew a new game begins with.
func StarterCrew() []*crew.Member {
	return []*crew.Member{
		{
			ID:         "crew-1",
			Name:       "Vera Kask",
			Specialty:  crew.SpecialtyWheelman,
			Background: catalog.BackgroundStreetRacer,
			Traits:     crew.Traits{Driving: 4, Tactics: 2, Muscle: 1},
			Loyalty:    3,
			Perks:      []catalog.PerkID{catalog.PerkGetawayArtist},
			Status:     crew.StatusIdle,
		},
		{
			ID:         "crew-2",
			Name:       "Marco Ruiz",
			Specialty:  crew.SpecialtyInfiltrator,
			Background: catalog.BackgroundExCop,
			Traits:     crew.Traits{Stealth: 4, Tech: 2},
			Loyalty:    2,
			Perks:      []catalog.PerkID{catalog.PerkBadgeContacts},
			Status:     crew.StatusIdle,
		},
		{
			ID:         "crew-3",
			Name:       "Dot Okafor",
			Specialty:  crew.SpecialtyHacker,
			Background: catalog.BackgroundHacker,
			Traits:     crew.Traits{Tech: 5, Stealth: 2},
			Loyalty:    2,
			Perks:      []catalog.PerkID{catalog.PerkGhostProtocol},
			Status:     crew.StatusIdle,
		},
		{
			ID:         "crew-4",
			Name:       "Sal Benedetti",
			Specialty:  crew.SpecialtyFace,
			Background: catalog.BackgroundGrifter,
			Traits:     crew.Traits{Charisma: 4, Tactics: 3},
			Loyalty:    1,
			Perks:      []catalog.PerkID{catalog.PerkSilverTongue, catalog.PerkTeamPlayer},
			Status:     crew.StatusIdle,
		},
	}
}

// StarterGarage returns the vehicles a new game begins with.
func StarterGarage() []*garage.Vehicle {
	return []*garage.Vehicle{
		{ID: "veh-starter-1", Model: "Brennan Sedan", TopSpeed: 5, Acceleration: 5, Handling: 6, HeatRating: 3, Condition: 0.85, Value: 9000},
		{ID: "veh-starter-2", Model: "Kestrel Van", TopSpeed: 4, Acceleration: 3, Handling: 4, HeatRating: 2, Condition: 0.7, Value: 6500},
	}
}

// StarterProfile returns the player profile a new game begins with.
func StarterProfile(name string) *player.Profile {
	return &player.Profile{
		Name: name,
		Skills: map[catalog.SkillID]int{
			catalog.SkillPlanning: 2,
			catalog.SkillDriving:  2,
		},
		Gear: []catalog.GearID{catalog.GearEncryptedRadio},
	}
}
