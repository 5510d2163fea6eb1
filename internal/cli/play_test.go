package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/syndicate/internal/config"
	"github.com/example/syndicate/internal/ports/primary"
	"github.com/example/syndicate/internal/wire"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// useTestGame points the commands at a seeded in-memory session.
func useTestGame(t *testing.T) *wire.Game {
	t.Helper()
	cfg := config.Default()
	cfg.DBPath = ""
	cfg.Seed = 42
	cfg.LogLevel = "off"

	g, err := wire.NewGame(cfg, io.Discard)
	if err != nil {
		t.Fatalf("failed to build game: %v", err)
	}
	prev := loadGame
	loadGame = func() (*wire.Game, error) { return g, nil }
	t.Cleanup(func() { loadGame = prev })
	return g
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestContractsCmd(t *testing.T) {
	useTestGame(t)

	out, err := execute(t, ContractsCmd())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Crackdown: calm", "corner-store-sweep-001", "Vera Kask", "Sal Benedetti"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestPreviewCmd(t *testing.T) {
	useTestGame(t)

	out, err := execute(t, PreviewCmd(), "warehouse-lift-002", "--crew", "crew-1,crew-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Preview: warehouse-lift-002") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestRunCmd_ResolvesAndLogs(t *testing.T) {
	g := useTestGame(t)

	out, err := execute(t, RunCmd(), "corner-store-sweep-001", "--crew", "crew-1", "--policy", "cautious")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "✓ Started corner-store-sweep-001") || !strings.Contains(out, "roll") {
		t.Errorf("unexpected output:\n%s", out)
	}

	entries, err := g.Log.ListLogs(context.Background(), primary.MissionLogFilters{})
	if err != nil {
		t.Fatalf("failed to list log: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].MissionID != "corner-store-sweep-001" || entries[0].SessionID != g.SessionID {
		t.Errorf("unexpected log entry %+v", entries[0])
	}
}

func TestRunCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown policy", args: []string{"corner-store-sweep-001", "--policy", "reckless"}, want: "unknown choice policy"},
		{name: "unknown mission", args: []string{"heist-999", "--crew", "crew-1"}, want: "mission heist-999 not found"},
		{name: "unknown crew", args: []string{"corner-store-sweep-001", "--crew", "crew-9"}, want: "crew member crew-9 not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useTestGame(t)

			_, err := execute(t, RunCmd(), tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestCampaignCmd(t *testing.T) {
	g := useTestGame(t)

	out, err := execute(t, CampaignCmd(), "--missions", "3", "--crew-size", "1", "--policy", "greedy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Campaign: 3 played", "Districts controlled:", "Seed: 42"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}

	entries, _ := g.Log.ListLogs(context.Background(), primary.MissionLogFilters{})
	if len(entries) != 3 {
		t.Errorf("expected 3 log entries, got %d", len(entries))
	}
}

func TestGarageCmd(t *testing.T) {
	g := useTestGame(t)

	out, err := execute(t, GarageCmd(), "repair", "veh-starter-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "✓ Repaired veh-starter-1 for $300 (funds $4,700)") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if g.Economy.Funds() != 4700 {
		t.Errorf("expected funds 4700, got %v", g.Economy.Funds())
	}

	if _, err := execute(t, GarageCmd(), "install", "veh-starter-1", "warp-drive"); err == nil {
		t.Error("expected unknown mod error")
	}

	out, err = execute(t, GarageCmd(), "list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Brennan Sedan") || !strings.Contains(out, "Kestrel Van") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestLogCmd_Prune(t *testing.T) {
	useTestGame(t)

	out, err := execute(t, LogCmd(), "prune", "--days", "7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Pruned 0 mission log entries older than 7 days") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestInitCmd(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, InitCmd(), "--dir", dir, "--seed", "7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, filepath.Join(dir, ".syndicate", "config.json")) {
		t.Errorf("unexpected output:\n%s", out)
	}

	cfg, err := config.LoadConfig(dir)
	if err != nil {
		t.Fatalf("failed to load written config: %v", err)
	}
	if cfg.Seed != 7 {
		t.Errorf("expected seed 7, got %d", cfg.Seed)
	}

	if _, err := execute(t, InitCmd(), "--dir", dir); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("expected already exists error, got %v", err)
	}
	if _, err := execute(t, InitCmd(), "--dir", dir, "--force"); err != nil {
		t.Errorf("expected --force to overwrite, got %v", err)
	}
}
