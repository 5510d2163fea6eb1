package app

import (
	"fmt"
	"sync"

	"github.com/example/syndicate/internal/core/crackdown"
	"github.com/example/syndicate/internal/core/crew"
	"github.com/example/syndicate/internal/core/garage"
	"github.com/example/syndicate/internal/core/mission"
	"github.com/example/syndicate/internal/core/player"
)

// GameState is the shared store the engine and services operate on.
// Every exported operation of the engine and services holds mu for its whole
// body; helpers suffixed Locked expect the caller to hold it.
type GameState struct {
	mu sync.Mutex

	Player    *player.Profile
	Crew      []*crew.Member
	Garage    []*garage.Vehicle
	Available []*mission.Mission
	Active    *mission.Mission
	Debts     []mission.PendingDebt
	Fallout   []crew.FalloutRecord
	Registry  *mission.Registry
	Notoriety float64
	Tier      crackdown.Tier

	LastVehicleReport *mission.VehicleReport

	missionSeq int
	vehicleSeq int
}

// NewGameState creates a store with the given roster and garage.
func NewGameState(profile *player.Profile, members []*crew.Member, vehicles []*garage.Vehicle) *GameState {
	return &GameState{
		Player:   profile,
		Crew:     members,
		Garage:   vehicles,
		Registry: mission.NewRegistry(),
		Tier:     crackdown.TierCalm,
	}
}

func (s *GameState) crewByID(id string) *crew.Member {
	for _, m := range s.Crew {
		if m.ID == id {
			return m
		}
	}
	return nil
}

func (s *GameState) vehicleByID(id string) *garage.Vehicle {
	for _, v := range s.Garage {
		if v.ID == id {
			return v
		}
	}
	return nil
}

func (s *GameState) availableByID(id string) (*mission.Mission, int) {
	for i, m := range s.Available {
		if m.ID == id {
			return m, i
		}
	}
	return nil, -1
}

// missionByID finds id on the board or in the active slot.
func (s *GameState) missionByID(id string) *mission.Mission {
	if s.Active != nil && s.Active.ID == id {
		return s.Active
	}
	m, _ := s.availableByID(id)
	return m
}

func (s *GameState) nextMissionID(templateID string) string {
	s.missionSeq++
	return mission.GenerateMissionID(templateID, s.missionSeq)
}

func (s *GameState) nextVehicleID() string {
	for {
		s.vehicleSeq++
		id := fmt.Sprintf("veh-%03d", s.vehicleSeq)
		if s.vehicleByID(id) == nil {
			return id
		}
	}
}

func (s *GameState) removeVehicle(id string) {
	for i, v := range s.Garage {
		if v.ID == id {
			s.Garage = append(s.Garage[:i], s.Garage[i+1:]...)
			return
		}
	}
}

// offeredTemplate reports whether a non-completed mission of templateID is on
// the board or active.
func (s *GameState) offeredTemplate(templateID string) bool {
	if s.Active != nil && s.Active.TemplateID == templateID {
		return true
	}
	for _, m := range s.Available {
		if m.TemplateID == templateID && m.Status == mission.StatusAvailable {
			return true
		}
	}
	return false
}

// offeredTemplatesExcept returns the template IDs on the board or active,
// leaving out skip.
func (s *GameState) offeredTemplatesExcept(skip *mission.Mission) map[string]bool {
	out := make(map[string]bool)
	if s.Active != nil && s.Active != skip {
		out[s.Active.TemplateID] = true
	}
	for _, m := range s.Available {
		if m != skip && m.Status == mission.StatusAvailable {
			out[m.TemplateID] = true
		}
	}
	return out
}

// pruneCompleted drops resolved missions from the board.
func (s *GameState) pruneCompleted() {
	kept := s.Available[:0]
	for _, m := range s.Available {
		if m.Status != mission.StatusCompleted {
			kept = append(kept, m)
		}
	}
	for i := len(kept); i < len(s.Available); i++ {
		s.Available[i] = nil
	}
	s.Available = kept
}

func (s *GameState) openContracts() int {
	n := 0
	for _, m := range s.Available {
		if m.Status == mission.StatusAvailable {
			n++
		}
	}
	return n
}
