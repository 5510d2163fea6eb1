package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/example/syndicate/internal/core/mission"
	"github.com/example/syndicate/internal/ports/primary"
)

// EngineAdapter translates CLI operations to MissionEngine calls and renders
// the results.
type EngineAdapter struct {
	engine    primary.MissionEngine
	notoriety primary.NotorietyService
	crackdown primary.CrackdownService
	out       io.Writer
}

// NewEngineAdapter creates a new EngineAdapter.
func NewEngineAdapter(
	engine primary.MissionEngine,
	notoriety primary.NotorietyService,
	crackdown primary.CrackdownService,
	out io.Writer,
) *EngineAdapter {
	return &EngineAdapter{
		engine:    engine,
		notoriety: notoriety,
		crackdown: crackdown,
		out:       out,
	}
}

// Contracts fills the board and lists it.
func (a *EngineAdapter) Contracts(ctx context.Context) error {
	resp, err := a.engine.GenerateInitialContracts(ctx)
	if err != nil {
		return fmt.Errorf("failed to generate contracts: %w", err)
	}
	for _, name := range resp.Rejected {
		fmt.Fprintf(a.out, "%s template %q rejected\n", color.New(color.FgYellow).Sprint("!"), name)
	}
	a.PrintBoard(ctx, resp.Missions)
	return nil
}

// PrintBoard renders the contract board with the current standing.
func (a *EngineAdapter) PrintBoard(ctx context.Context, missions []*mission.Mission) {
	fmt.Fprintf(a.out, "\nCrackdown: %s   Notoriety: %.2f (%s)\n",
		TierLabel(a.crackdown.Tier(ctx)), a.notoriety.Value(ctx), a.notoriety.Band(ctx).Name)

	if len(missions) == 0 {
		fmt.Fprintln(a.out, "No contracts available")
		return
	}

	fmt.Fprintf(a.out, "\n%-28s %-20s %-4s %10s %6s %6s %s\n", "ID", "CATEGORY", "DIFF", "PAYOUT", "HEAT", "ODDS", "NAME")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────────────────────────────────")
	for _, m := range missions {
		name := m.Name
		if m.Restricted {
			name += color.New(color.FgRed).Sprintf(" [restricted: %s]", m.RestrictionReason)
		}
		fmt.Fprintf(a.out, "%-28s %-20s %-4d %10s %6.1f %6s %s\n",
			m.ID, m.Category, m.Difficulty, Money(m.Payout), m.Heat, Percent(m.SuccessChance), name)
	}
	fmt.Fprintln(a.out)
}

// Crew lists the roster.
func (a *EngineAdapter) Crew(ctx context.Context) {
	fmt.Fprintf(a.out, "\n%-8s %-16s %-12s %-8s %s\n", "ID", "NAME", "SPECIALTY", "LOYALTY", "STATUS")
	for _, m := range a.engine.Crew(ctx) {
		fmt.Fprintf(a.out, "%-8s %-16s %-12s %-8d %s\n", m.ID, m.Name, m.Specialty, m.Loyalty, StatusLabel(m.Status))
	}
	fmt.Fprintln(a.out)
}

// Preview prints the projected numbers for an assignment.
func (a *EngineAdapter) Preview(ctx context.Context, req primary.PreviewRequest) error {
	resp, err := a.engine.PreviewCrewAssignment(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to preview assignment: %w", err)
	}

	r := resp.Impact
	fmt.Fprintf(a.out, "\nPreview: %s (tier %s)\n", resp.MissionID, TierLabel(resp.Tier))
	fmt.Fprintf(a.out, "  Duration: %.1fs (x%.2f)\n", r.AdjustedDuration, r.DurationMultiplier)
	fmt.Fprintf(a.out, "  Payout:   %s (x%.2f)\n", Money(r.AdjustedPayout), r.PayoutMultiplier)
	fmt.Fprintf(a.out, "  Heat:     %.2f (x%.2f, %+.2f)\n", r.AdjustedHeat, r.HeatMultiplier, r.HeatAdjustment)
	fmt.Fprintf(a.out, "  Odds:     %s (%+.2f)\n", Percent(r.AdjustedSuccessChance), r.SuccessBonus)
	for _, s := range r.Summaries {
		if s != "" {
			fmt.Fprintf(a.out, "  · %s\n", s)
		}
	}
	for _, w := range resp.Warnings {
		fmt.Fprintf(a.out, "  %s %s\n", color.New(color.FgYellow).Sprint("!"), w)
	}
	fmt.Fprintln(a.out)
	return nil
}

// Start starts a mission and prints its frozen numbers.
func (a *EngineAdapter) Start(ctx context.Context, req primary.StartMissionRequest) (*mission.Mission, error) {
	resp, err := a.engine.StartMission(ctx, req)
	if err != nil {
		return nil, err
	}
	m := resp.Mission
	vehicle := "on foot"
	if m.Assignment != nil && m.Assignment.VehicleID != "" {
		vehicle = m.Assignment.VehicleID
	}
	fmt.Fprintf(a.out, "✓ Started %s: %s\n", m.ID, m.Name)
	fmt.Fprintf(a.out, "  Crew: %s   Vehicle: %s\n", strings.Join(req.CrewIDs, ", "), vehicle)
	fmt.Fprintf(a.out, "  %s payout, %.2f heat, %s odds, %.0fs\n",
		Money(m.Payout), m.Heat, Percent(m.SuccessChance), m.Duration)
	return m, nil
}

// PrintDecision renders a pending event.
func (a *EngineAdapter) PrintDecision(d *mission.PendingDecision) {
	if d == nil {
		return
	}
	fmt.Fprintf(a.out, "\n%s %s\n", color.New(color.FgCyan, color.Bold).Sprint("EVENT"), d.Event.Title)
	fmt.Fprintf(a.out, "  %s\n", d.Event.Description)
	for _, c := range d.Event.Choices {
		fmt.Fprintf(a.out, "  [%s] %s\n", c.ID, c.Label)
	}
}

// Choose answers the pending event.
func (a *EngineAdapter) Choose(ctx context.Context, req primary.ChooseEventOptionRequest) (*primary.ChooseEventOptionResponse, error) {
	resp, err := a.engine.ChooseMissionEventOption(ctx, req)
	if err != nil {
		return nil, err
	}
	if h := resp.Mission.EventHistory; len(h) > 0 {
		last := h[len(h)-1]
		fmt.Fprintf(a.out, "  → %s: %s\n", last.Label, last.Narrative)
	}
	if resp.Debt != nil {
		fmt.Fprintf(a.out, "  %s owed: %s\n", Money(resp.Debt.Amount), resp.Debt.Notes)
	}
	return resp, nil
}

// PrintResolution renders a resolved mission.
func (a *EngineAdapter) PrintResolution(resp *primary.ResolveMissionResponse) {
	if resp == nil {
		return
	}
	d := resp.Resolution
	fmt.Fprintf(a.out, "\n%s %s (roll %.2f vs %.2f)\n", OutcomeLabel(d.Outcome), resp.Mission.Name, d.Roll, d.Chance)
	if d.Outcome == mission.OutcomeSuccess {
		fmt.Fprintf(a.out, "  Payout: %s gross, %s net\n", Money(d.GrossPayout), Money(d.NetPayout))
		for _, s := range d.Settlements {
			fmt.Fprintf(a.out, "  Debt %s: paid %s, %s remaining\n", s.DebtID, Money(s.Paid), Money(s.Remaining))
		}
	}
	fmt.Fprintf(a.out, "  Heat: +%.2f   Notoriety: %+.2f\n", d.HeatApplied, d.NotorietyDelta)
	for _, cd := range d.CrewDeltas {
		fmt.Fprintf(a.out, "  %s: loyalty %d → %d (%s)\n", cd.Name, cd.LoyaltyBefore, cd.LoyaltyAfter, StatusLabel(cd.StatusAfter))
	}
	if vd := d.VehicleDelta; vd != nil {
		fmt.Fprintf(a.out, "  %s: condition %s → %s\n", vd.VehicleID, Percent(vd.ConditionBefore), Percent(vd.ConditionAfter))
	}
	for _, f := range d.Fallout {
		fmt.Fprintf(a.out, "  %s %s %s\n", color.New(color.FgRed).Sprint("!"), f.CrewName, f.Status)
	}
	if vr := d.VehicleReport; vr != nil {
		switch vr.Outcome {
		case mission.VehicleReportAdded:
			fmt.Fprintf(a.out, "  Reward: %s stored as %s\n", vr.Model, vr.VehicleID)
		case mission.VehicleReportStorageBlocked:
			fmt.Fprintf(a.out, "  Reward: %s lost, safehouse full (%d/%d)\n", vr.Model, vr.Stored, vr.Capacity)
		}
	}
	for _, n := range d.Notes {
		fmt.Fprintf(a.out, "  · %s\n", n)
	}
	fmt.Fprintln(a.out)
}
