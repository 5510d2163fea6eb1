package app

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/example/syndicate/internal/core/notoriety"
	"github.com/example/syndicate/internal/ports/primary"
)

// NotorietyServiceImpl implements the NotorietyService interface over GameState.
type NotorietyServiceImpl struct {
	state  *GameState
	logger zerolog.Logger
}

// NewNotorietyService creates a new NotorietyService with injected dependencies.
func NewNotorietyService(state *GameState, logger zerolog.Logger) *NotorietyServiceImpl {
	return &NotorietyServiceImpl{state: state, logger: logger}
}

// Value returns the current notoriety.
func (s *NotorietyServiceImpl) Value(ctx context.Context) float64 {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return s.state.Notoriety
}

// Band returns the current notoriety band.
func (s *NotorietyServiceImpl) Band(ctx context.Context) notoriety.Band {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return s.bandLocked()
}

// Adjust shifts notoriety by delta, clamped to the ladder, and returns the new value.
func (s *NotorietyServiceImpl) Adjust(ctx context.Context, delta float64, reason string) float64 {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return s.adjustLocked(delta, reason)
}

func (s *NotorietyServiceImpl) bandLocked() notoriety.Band {
	return notoriety.BandFor(s.state.Notoriety)
}

func (s *NotorietyServiceImpl) adjustLocked(delta float64, reason string) float64 {
	before := notoriety.BandFor(s.state.Notoriety)
	s.state.Notoriety = notoriety.Clamp(s.state.Notoriety + delta)
	after := notoriety.BandFor(s.state.Notoriety)

	s.logger.Debug().
		Float64("delta", delta).
		Float64("value", s.state.Notoriety).
		Str("reason", reason).
		Msg("notoriety adjusted")
	if before.Name != after.Name {
		s.logger.Info().
			Str("from", before.Name).
			Str("to", after.Name).
			Msg("notoriety band changed")
	}
	return s.state.Notoriety
}

// Ensure NotorietyServiceImpl implements the interface
var _ primary.NotorietyService = (*NotorietyServiceImpl)(nil)
