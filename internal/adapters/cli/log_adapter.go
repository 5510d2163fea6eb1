package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/example/syndicate/internal/core/mission"
	"github.com/example/syndicate/internal/ports/primary"
)

// LogAdapter translates CLI operations to MissionLogService calls.
type LogAdapter struct {
	service primary.MissionLogService
	out     io.Writer
	now     func() time.Time
}

// NewLogAdapter creates a new LogAdapter with the given service.
func NewLogAdapter(service primary.MissionLogService, out io.Writer) *LogAdapter {
	return &LogAdapter{
		service: service,
		out:     out,
		now:     time.Now,
	}
}

// List lists log entries matching filters.
func (a *LogAdapter) List(ctx context.Context, filters primary.MissionLogFilters) error {
	entries, err := a.service.ListLogs(ctx, filters)
	if err != nil {
		return fmt.Errorf("failed to list mission log: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No mission log entries found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-14s %-9s %10s %6s %9s %-16s %s\n", "WHEN", "OUTCOME", "PAYOUT", "HEAT", "NOTORIETY", "MISSION", "NAME")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────────────────────")
	for _, e := range entries {
		fmt.Fprintf(a.out, "%-14s %-9s %10s %6.2f %+9.2f %-16s %s\n",
			a.when(e.CreatedAt), OutcomeLabel(mission.Outcome(e.Outcome)), Money(e.Payout), e.Heat, e.NotorietyDelta, e.MissionID, e.MissionName)
	}
	fmt.Fprintln(a.out)
	return nil
}

// Show displays one log entry in full.
func (a *LogAdapter) Show(ctx context.Context, id string) error {
	e, err := a.service.GetLog(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get mission log: %w", err)
	}

	fmt.Fprintf(a.out, "\nLog:      %s\n", e.ID)
	fmt.Fprintf(a.out, "Mission:  %s (%s)\n", e.MissionName, e.MissionID)
	fmt.Fprintf(a.out, "Outcome:  %s (roll %.2f vs %.2f)\n", OutcomeLabel(mission.Outcome(e.Outcome)), e.Roll, e.Chance)
	fmt.Fprintf(a.out, "Payout:   %s\n", Money(e.Payout))
	fmt.Fprintf(a.out, "Heat:     %.2f (tier %s)\n", e.Heat, e.Tier)
	fmt.Fprintf(a.out, "Fallout:  %d\n", e.FalloutCount)
	if e.SessionID != "" {
		fmt.Fprintf(a.out, "Session:  %s\n", e.SessionID)
	}
	fmt.Fprintf(a.out, "Recorded: %s\n", e.CreatedAt)
	fmt.Fprintln(a.out)
	return nil
}

// Prune deletes entries older than days.
func (a *LogAdapter) Prune(ctx context.Context, days int) error {
	count, err := a.service.PruneLogs(ctx, days)
	if err != nil {
		return fmt.Errorf("failed to prune mission log: %w", err)
	}
	fmt.Fprintf(a.out, "✓ Pruned %d mission log entries older than %d days\n", count, days)
	return nil
}

func (a *LogAdapter) when(createdAt string) string {
	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return createdAt
	}
	return humanize.RelTime(ts, a.now(), "ago", "from now")
}
