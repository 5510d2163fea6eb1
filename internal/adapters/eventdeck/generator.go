// Package eventdeck builds in-mission event decks from a fixed library of
// decision points.
package eventdeck

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"sort"

	"github.com/example/syndicate/internal/core/crackdown"
	"github.com/example/syndicate/internal/core/mission"
	"github.com/example/syndicate/internal/ports/secondary"
)

// Generator implements secondary.EventDeckGenerator. The same seed and
// mission always produce the same deck.
type Generator struct {
	seed    int64
	library []mission.EventDefinition
}

// NewGenerator creates a generator over the default event library.
func NewGenerator(seed int64) *Generator {
	return &Generator{seed: seed, library: Library()}
}

// NewGeneratorWithLibrary creates a generator over a caller-supplied library.
func NewGeneratorWithLibrary(seed int64, library []mission.EventDefinition) *Generator {
	return &Generator{seed: seed, library: library}
}

// BuildDeck draws DeckSize(risk) events for the mission and spaces their
// triggers across the run. Tier-gated events are kept; the engine skips them
// when they do not apply.
func (g *Generator) BuildDeck(ctx secondary.DeckContext) []mission.EventDefinition {
	if len(g.library) == 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(g.seed ^ missionHash(ctx.MissionID)))

	n := DeckSize(ctx.Risk)
	if n > len(g.library) {
		n = len(g.library)
	}
	picks := rng.Perm(len(g.library))[:n]
	sort.Ints(picks)

	deck := make([]mission.EventDefinition, 0, n)
	for i, idx := range picks {
		e := cloneEvent(g.library[idx])
		e.ID = fmt.Sprintf("%s-%s", ctx.MissionID, e.ID)
		slot := float64(i+1) / float64(n+1)
		e.TriggerProgress = clampTrigger(slot + (rng.Float64()-0.5)*0.1)
		if e.POIContext != "" && ctx.PointOfInterest != "" {
			e.POIContext = ctx.PointOfInterest
			e.Description = fmt.Sprintf("%s (near the %s)", e.Description, ctx.PointOfInterest)
		}
		deck = append(deck, e)
	}
	return deck
}

// DeckSize returns how many events a mission of the given risk draws.
func DeckSize(risk mission.RiskTier) int {
	switch risk {
	case mission.RiskHigh:
		return 3
	case mission.RiskMedium:
		return 2
	default:
		return 1
	}
}

func missionHash(id string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(id))
	return int64(h.Sum64() >> 1)
}

func clampTrigger(p float64) float64 {
	if p < 0.05 {
		return 0.05
	}
	if p > 0.95 {
		return 0.95
	}
	return p
}

func cloneEvent(e mission.EventDefinition) mission.EventDefinition {
	e.Choices = append([]mission.Choice(nil), e.Choices...)
	for i := range e.Choices {
		if d := e.Choices[i].Effect.FutureDebt; d != nil {
			c := *d
			e.Choices[i].Effect.FutureDebt = &c
		}
	}
	e.RiskTiers = append([]mission.RiskTier(nil), e.RiskTiers...)
	e.CrackdownTiers = append([]crackdown.Tier(nil), e.CrackdownTiers...)
	return e
}

var _ secondary.EventDeckGenerator = (*Generator)(nil)
