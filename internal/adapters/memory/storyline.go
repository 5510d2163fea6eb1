package memory

import (
	"fmt"
	"sync"

	"github.com/example/syndicate/internal/core/crew"
	"github.com/example/syndicate/internal/core/mission"
	"github.com/example/syndicate/internal/ports/secondary"
)

// storyBeat is one step of a crew member's personal arc.
type storyBeat struct {
	id          string
	title       string // formatted with the member's name
	description string
	minLoyalty  int
	difficulty  int
	payout      float64
}

var defaultArc = []storyBeat{
	{
		id:          "old-debts",
		title:       "%s's old debts",
		description: "Someone from %s's past wants paying. Settle it quietly.",
		minLoyalty:  2,
		difficulty:  2,
		payout:      900,
	},
	{
		id:          "family-business",
		title:       "%s's family business",
		description: "%s's cousin is being squeezed by a rival crew. Push back.",
		minLoyalty:  3,
		difficulty:  3,
		payout:      1600,
	},
	{
		id:          "last-favour",
		title:       "%s's last favour",
		description: "%s calls in the favour that makes them yours for good.",
		minLoyalty:  4,
		difficulty:  4,
		payout:      2800,
	},
}

// Storyline implements secondary.StorylineCatalog with one shared arc per member.
type Storyline struct {
	mu       sync.Mutex
	arc      []storyBeat
	progress map[string]int
}

// NewStoryline creates a catalog with every member at the start of the arc.
func NewStoryline() *Storyline {
	return &Storyline{arc: defaultArc, progress: make(map[string]int)}
}

// AvailableSteps returns the next beat of every member loyal enough to take it.
// Captured members are skipped.
func (s *Storyline) AvailableSteps(members []*crew.Member) []mission.StorylineStep {
	s.mu.Lock()
	defer s.mu.Unlock()

	var steps []mission.StorylineStep
	for _, m := range members {
		if m == nil || m.Status == crew.StatusCaptured {
			continue
		}
		i := s.progress[m.ID]
		if i >= len(s.arc) {
			continue
		}
		beat := s.arc[i]
		if m.Loyalty < beat.minLoyalty {
			continue
		}
		steps = append(steps, mission.StorylineStep{
			ID:          beat.id,
			CrewID:      m.ID,
			CrewName:    m.Name,
			Title:       fmt.Sprintf(beat.title, m.Name),
			Description: fmt.Sprintf(beat.description, m.Name),
			Difficulty:  beat.difficulty,
			Payout:      beat.payout,
		})
	}
	return steps
}

// RecordOutcome advances the arc on success. Failure costs a point of loyalty.
// Outcomes for a beat that is not the member's current one are ignored.
func (s *Storyline) RecordOutcome(link mission.StorylineLink, outcome mission.Outcome) secondary.StorylineResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := secondary.StorylineResult{CrewID: link.CrewID, StepID: link.StepID}
	i := s.progress[link.CrewID]
	if i >= len(s.arc) || s.arc[i].id != link.StepID {
		result.Summary = fmt.Sprintf("storyline step %s is not current for %s", link.StepID, link.CrewID)
		return result
	}

	if outcome != mission.OutcomeSuccess {
		result.LoyaltyDelta = -1
		result.Summary = fmt.Sprintf("storyline step %s failed for %s", link.StepID, link.CrewID)
		return result
	}

	s.progress[link.CrewID] = i + 1
	result.Advanced = true
	result.LoyaltyDelta = 1
	if i+1 == len(s.arc) {
		result.Summary = fmt.Sprintf("storyline complete for %s", link.CrewID)
	} else {
		result.Summary = fmt.Sprintf("storyline advanced for %s: next %s", link.CrewID, s.arc[i+1].id)
	}
	return result
}

// Progress returns how many beats a member has completed.
func (s *Storyline) Progress(crewID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress[crewID]
}

var _ secondary.StorylineCatalog = (*Storyline)(nil)
