package app

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/example/syndicate/internal/core/crackdown"
	"github.com/example/syndicate/internal/core/mission"
	"github.com/example/syndicate/internal/ports/primary"
	"github.com/example/syndicate/internal/ports/secondary"
)

// CrackdownServiceImpl implements the CrackdownService interface.
// The tier is derived from the heat system and cached on GameState.
type CrackdownServiceImpl struct {
	state     *GameState
	heat      secondary.HeatSystem
	notoriety *NotorietyServiceImpl
	logger    zerolog.Logger
}

// NewCrackdownService creates a new CrackdownService with injected dependencies.
func NewCrackdownService(
	state *GameState,
	heat secondary.HeatSystem,
	notoriety *NotorietyServiceImpl,
	logger zerolog.Logger,
) *CrackdownServiceImpl {
	return &CrackdownServiceImpl{
		state:     state,
		heat:      heat,
		notoriety: notoriety,
		logger:    logger,
	}
}

// Tier returns the last synced tier.
func (s *CrackdownServiceImpl) Tier(ctx context.Context) crackdown.Tier {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return s.state.Tier
}

// Sync reads the heat system's tier and applies a transition if it changed.
func (s *CrackdownServiceImpl) Sync(ctx context.Context) primary.TierChange {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return s.syncLocked()
}

// ApplyRestrictions flags missions whose heat exceeds the current cap.
func (s *CrackdownServiceImpl) ApplyRestrictions(ctx context.Context, missions []*mission.Mission) int {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return applyRestrictions(missions, s.state.Tier)
}

// syncLocked re-reads the tier. On a transition it recomputes restrictions over
// the board and nudges notoriety by the change in pressure.
func (s *CrackdownServiceImpl) syncLocked() primary.TierChange {
	from := s.state.Tier
	to := crackdown.ParseTier(s.heat.CurrentTier())
	change := primary.TierChange{From: from, To: to}
	if from == to {
		return change
	}

	change.Changed = true
	s.state.Tier = to
	restricted := applyRestrictions(s.state.Available, to)

	change.NotorietyNudge = crackdown.NotorietyNudge(from, to)
	if change.NotorietyNudge != 0 {
		s.notoriety.adjustLocked(change.NotorietyNudge, "crackdown "+string(to))
	}

	s.logger.Info().
		Str("from", string(from)).
		Str("to", string(to)).
		Float64("heat", s.heat.Value()).
		Int("restricted", restricted).
		Msg("crackdown tier changed")
	return change
}

func applyRestrictions(missions []*mission.Mission, tier crackdown.Tier) int {
	n := 0
	for _, m := range missions {
		mission.ApplyRestriction(m, tier)
		if m.Status == mission.StatusAvailable && m.Restricted {
			n++
		}
	}
	return n
}

// Ensure CrackdownServiceImpl implements the interface
var _ primary.CrackdownService = (*CrackdownServiceImpl)(nil)
