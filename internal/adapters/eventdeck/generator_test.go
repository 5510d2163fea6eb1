package eventdeck

import (
	"reflect"
	"strings"
	"testing"

	"github.com/example/syndicate/internal/core/mission"
	"github.com/example/syndicate/internal/ports/secondary"
)

func TestBuildDeck_Deterministic(t *testing.T) {
	ctx := secondary.DeckContext{MissionID: "mission-7", Risk: mission.RiskHigh}

	a := NewGenerator(11).BuildDeck(ctx)
	b := NewGenerator(11).BuildDeck(ctx)

	if !reflect.DeepEqual(a, b) {
		t.Error("expected identical decks for the same seed and mission")
	}
}

func TestBuildDeck_SizeFollowsRisk(t *testing.T) {
	tests := []struct {
		risk mission.RiskTier
		want int
	}{
		{mission.RiskLow, 1},
		{mission.RiskMedium, 2},
		{mission.RiskHigh, 3},
		{"", 1},
	}

	g := NewGenerator(5)
	for _, tt := range tests {
		t.Run(string(tt.risk), func(t *testing.T) {
			deck := g.BuildDeck(secondary.DeckContext{MissionID: "m-1", Risk: tt.risk})
			if len(deck) != tt.want {
				t.Errorf("expected %d events, got %d", tt.want, len(deck))
			}
		})
	}
}

func TestBuildDeck_TriggersOrderedAndPrefixed(t *testing.T) {
	deck := NewGenerator(3).BuildDeck(secondary.DeckContext{MissionID: "m-42", Risk: mission.RiskHigh})

	prev := 0.0
	for _, e := range deck {
		if !strings.HasPrefix(e.ID, "m-42-") {
			t.Errorf("expected mission prefix on %q", e.ID)
		}
		if e.TriggerProgress < 0.05 || e.TriggerProgress > 0.95 {
			t.Errorf("%s: trigger %v out of range", e.ID, e.TriggerProgress)
		}
		if e.TriggerProgress <= prev {
			t.Errorf("%s: trigger %v not after %v", e.ID, e.TriggerProgress, prev)
		}
		prev = e.TriggerProgress
	}
}

func TestBuildDeck_PointOfInterestContext(t *testing.T) {
	lib := []mission.EventDefinition{
		{ID: "inside", Title: "Inside", Description: "A guard offers help.", POIContext: "site"},
	}
	g := NewGeneratorWithLibrary(1, lib)

	deck := g.BuildDeck(secondary.DeckContext{MissionID: "m-1", PointOfInterest: "casino"})

	if len(deck) != 1 {
		t.Fatalf("expected 1 event, got %d", len(deck))
	}
	if deck[0].POIContext != "casino" {
		t.Errorf("expected POI context casino, got %q", deck[0].POIContext)
	}
	if deck[0].Description != "A guard offers help. (near the casino)" {
		t.Errorf("unexpected description %q", deck[0].Description)
	}
	if lib[0].POIContext != "site" {
		t.Error("expected library entry to be unchanged")
	}
}

func TestBuildDeck_CopiesDebtTerms(t *testing.T) {
	g := NewGeneratorWithLibrary(1, Library()[1:2])

	deck := g.BuildDeck(secondary.DeckContext{MissionID: "m-1"})
	choice, ok := deck[0].Choice("promise")
	if !ok {
		t.Fatal("expected promise choice")
	}
	choice.Effect.FutureDebt.Amount = 1

	again := g.BuildDeck(secondary.DeckContext{MissionID: "m-1"})
	fresh, _ := again[0].Choice("promise")
	if fresh.Effect.FutureDebt.Amount != 600 {
		t.Errorf("expected library debt untouched, got %v", fresh.Effect.FutureDebt.Amount)
	}
}

func TestBuildDeck_EmptyLibrary(t *testing.T) {
	g := NewGeneratorWithLibrary(1, nil)

	if deck := g.BuildDeck(secondary.DeckContext{MissionID: "m-1", Risk: mission.RiskHigh}); deck != nil {
		t.Errorf("expected nil deck, got %d events", len(deck))
	}
}

func TestLibrary_ChoiceIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range Library() {
		if seen[e.ID] {
			t.Errorf("duplicate event id %q", e.ID)
		}
		seen[e.ID] = true
		if len(e.Choices) == 0 {
			t.Errorf("%s: no choices", e.ID)
		}
		choices := make(map[string]bool)
		for _, c := range e.Choices {
			if choices[c.ID] {
				t.Errorf("%s: duplicate choice %q", e.ID, c.ID)
			}
			choices[c.ID] = true
		}
	}
}
