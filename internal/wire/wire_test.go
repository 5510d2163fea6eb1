package wire

import (
	"context"
	"io"
	"testing"

	"github.com/example/syndicate/internal/config"
	"github.com/example/syndicate/internal/ctxutil"
	"github.com/example/syndicate/internal/db"
	"github.com/example/syndicate/internal/ports/primary"
)

func testConfig(dbPath string) *config.Config {
	cfg := config.Default()
	cfg.DBPath = dbPath
	cfg.Seed = 99
	cfg.LogLevel = "off"
	return cfg
}

func TestNewGame_SQLiteMissionLog(t *testing.T) {
	g, err := NewGame(testConfig(db.MemoryPath), io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer g.Close()

	ctx := g.Context(context.Background())
	if ctxutil.SessionFromContext(ctx) != g.SessionID {
		t.Error("expected session ID on context")
	}

	resp, err := g.Engine.GenerateInitialContracts(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Missions) != g.Config.PoolSize {
		t.Errorf("expected %d contracts, got %d", g.Config.PoolSize, len(resp.Missions))
	}

	if _, err := g.Engine.ResolveMission(ctx, primary.ResolveMissionRequest{MissionID: resp.Missions[0].ID, Outcome: "failure"}); err == nil {
		t.Error("expected resolving an unstarted mission to be rejected")
	}

	entries, err := g.Log.ListLogs(ctx, primary.MissionLogFilters{})
	if err != nil {
		t.Fatalf("failed to list log: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty log, got %d", len(entries))
	}
}

func TestNewGame_SeedFixesCity(t *testing.T) {
	a, err := NewGame(testConfig(""), io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := NewGame(testConfig(""), io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.Seed != 99 || b.Seed != 99 {
		t.Errorf("expected seed 99, got %d and %d", a.Seed, b.Seed)
	}
	if a.SessionID == b.SessionID {
		t.Error("expected distinct session IDs")
	}
	left, right := a.City.Districts(), b.City.Districts()
	for i := range left {
		if left[i].Wealth != right[i].Wealth || left[i].Security != right[i].Security {
			t.Errorf("district %s differs between sessions with the same seed", left[i].ID)
		}
	}
	if a.Economy.Funds() != a.Config.StartingFunds {
		t.Errorf("expected starting funds %v, got %v", a.Config.StartingFunds, a.Economy.Funds())
	}
}

func TestNewGame_InvalidConfig(t *testing.T) {
	cfg := testConfig("")
	cfg.PoolSize = 0

	if _, err := NewGame(cfg, io.Discard); err == nil {
		t.Error("expected invalid config to be rejected")
	}
}
