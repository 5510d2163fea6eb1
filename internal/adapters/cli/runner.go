package cli

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"github.com/example/syndicate/internal/core/crew"
	"github.com/example/syndicate/internal/core/mission"
	"github.com/example/syndicate/internal/ports/primary"
)

// ChoicePolicy picks a choice ID for a pending event.
type ChoicePolicy func(e mission.EventDefinition) string

// PolicyByName returns the named choice policy: first, cautious or greedy.
func PolicyByName(name string) (ChoicePolicy, error) {
	switch name {
	case "", "first":
		return FirstChoice, nil
	case "cautious":
		return CautiousChoice, nil
	case "greedy":
		return GreedyChoice, nil
	default:
		return nil, fmt.Errorf("unknown choice policy %q (want first, cautious or greedy)", name)
	}
}

// FirstChoice always takes the first listed choice.
func FirstChoice(e mission.EventDefinition) string {
	if len(e.Choices) == 0 {
		return ""
	}
	return e.Choices[0].ID
}

// CautiousChoice takes the choice that adds the least heat, avoiding debt.
func CautiousChoice(e mission.EventDefinition) string {
	return bestChoice(e, func(c mission.Choice) float64 {
		score := -c.Effect.HeatDelta
		if c.Effect.HeatMultiplier > 0 {
			score -= (c.Effect.HeatMultiplier - 1) * 10
		}
		if c.Effect.FutureDebt != nil {
			score -= 2
		}
		return score + c.Effect.SuccessDelta*10
	})
}

// GreedyChoice takes the choice that adds the most payout.
func GreedyChoice(e mission.EventDefinition) string {
	return bestChoice(e, func(c mission.Choice) float64 {
		score := c.Effect.PayoutDelta / 100
		if c.Effect.PayoutMultiplier > 0 {
			score += (c.Effect.PayoutMultiplier - 1) * 10
		}
		return score
	})
}

// bestChoice returns the highest scoring choice; ties keep the earlier one.
func bestChoice(e mission.EventDefinition, score func(mission.Choice) float64) string {
	best := ""
	bestScore := 0.0
	for i, c := range e.Choices {
		if s := score(c); i == 0 || s > bestScore {
			best, bestScore = c.ID, s
		}
	}
	return best
}

// Heat is the part of the heat system the runner cools between missions.
type Heat interface {
	Cool(amount float64)
}

// RunnerOptions configure mission playback.
type RunnerOptions struct {
	Tick        float64 // simulated seconds per update
	MaxTicks    int
	Policy      ChoicePolicy
	RepairBelow float64 // vehicles under this condition are repaired between missions
	Cooldown    float64 // heat shed between missions
	CrewSize    int
}

// Runner plays missions through the engine tick by tick.
type Runner struct {
	engine *EngineAdapter
	garage primary.GarageService
	heat   Heat
	opts   RunnerOptions
	out    io.Writer
}

// NewRunner creates a runner. garage and heat may be nil.
func NewRunner(engine *EngineAdapter, garage primary.GarageService, heat Heat, opts RunnerOptions) *Runner {
	if opts.Tick <= 0 {
		opts.Tick = 5
	}
	if opts.MaxTicks <= 0 {
		opts.MaxTicks = 1000
	}
	if opts.Policy == nil {
		opts.Policy = FirstChoice
	}
	if opts.CrewSize <= 0 {
		opts.CrewSize = 2
	}
	return &Runner{engine: engine, garage: garage, heat: heat, opts: opts, out: engine.out}
}

// Run starts a mission and ticks it to resolution, answering events with the
// runner's policy and confirming a pending roll.
func (r *Runner) Run(ctx context.Context, req primary.StartMissionRequest) (*primary.ResolveMissionResponse, error) {
	m, err := r.engine.Start(ctx, req)
	if err != nil {
		return nil, err
	}

	for i := 0; i < r.opts.MaxTicks; i++ {
		resp, err := r.engine.engine.Update(ctx, r.opts.Tick)
		if err != nil {
			return nil, fmt.Errorf("failed to advance mission %s: %w", m.ID, err)
		}
		switch {
		case resp.Resolved != nil || resp.AwaitingConfirm:
			return r.finish(ctx, m.ID, resp.Resolved)
		case resp.Decision != nil:
			r.engine.PrintDecision(resp.Decision)
			choice := r.opts.Policy(resp.Decision.Event)
			cr, err := r.engine.Choose(ctx, primary.ChooseEventOptionRequest{EventID: resp.Decision.EventID, ChoiceID: choice})
			if err != nil {
				return nil, err
			}
			if cr.Resolved != nil || cr.AwaitingConfirm {
				return r.finish(ctx, m.ID, cr.Resolved)
			}
		case resp.Mission == nil:
			return nil, fmt.Errorf("mission %s is no longer active", m.ID)
		}
	}
	return nil, fmt.Errorf("mission %s did not resolve after %d ticks", m.ID, r.opts.MaxTicks)
}

// finish prints resolved, or confirms the pending roll of missionID when the
// engine is waiting on the caller.
func (r *Runner) finish(ctx context.Context, missionID string, resolved *primary.ResolveMissionResponse) (*primary.ResolveMissionResponse, error) {
	if resolved == nil {
		res, err := r.engine.engine.ResolveMission(ctx, primary.ResolveMissionRequest{MissionID: missionID})
		if err != nil {
			return nil, err
		}
		resolved = res
	}
	r.engine.PrintResolution(resolved)
	return resolved, nil
}

// CampaignSummary totals an autoplay campaign.
type CampaignSummary struct {
	Played     int
	Successes  int
	Failures   int
	NetPayout  float64
	Repairs    int
	StoppedWhy string
}

// Campaign plays up to n missions back to back. Between missions it repairs
// worn vehicles and lets heat cool. It stops early when no crew is free or
// no contract is open.
func (r *Runner) Campaign(ctx context.Context, n int) (CampaignSummary, error) {
	var sum CampaignSummary
	if _, err := r.engine.engine.GenerateInitialContracts(ctx); err != nil {
		return sum, fmt.Errorf("failed to generate contracts: %w", err)
	}

	for i := 0; i < n; i++ {
		sum.Repairs += r.repairWorn(ctx)

		crewIDs := PickCrew(r.engine.engine.Crew(ctx), r.opts.CrewSize)
		if len(crewIDs) == 0 {
			sum.StoppedWhy = "no crew available"
			break
		}
		m := PickContract(r.engine.engine.AvailableMissions(ctx))
		if m == nil {
			sum.StoppedWhy = "no open contracts"
			break
		}

		res, err := r.Run(ctx, primary.StartMissionRequest{MissionID: m.ID, CrewIDs: crewIDs})
		if err != nil {
			return sum, err
		}
		sum.Played++
		if res.Resolution.Outcome == mission.OutcomeSuccess {
			sum.Successes++
			sum.NetPayout += res.Resolution.NetPayout
		} else {
			sum.Failures++
		}

		if r.heat != nil && r.opts.Cooldown > 0 {
			r.heat.Cool(r.opts.Cooldown)
		}
	}

	fmt.Fprintf(r.out, "%s %d played, %d won, %d lost, %s earned, %d repairs\n",
		color.New(color.Bold).Sprint("Campaign:"), sum.Played, sum.Successes, sum.Failures, Money(sum.NetPayout), sum.Repairs)
	if sum.StoppedWhy != "" {
		fmt.Fprintf(r.out, "  stopped early: %s\n", sum.StoppedWhy)
	}
	return sum, nil
}

func (r *Runner) repairWorn(ctx context.Context) int {
	if r.garage == nil || r.opts.RepairBelow <= 0 {
		return 0
	}
	n := 0
	for _, v := range r.garage.Vehicles(ctx) {
		if v.InUse || v.Condition >= r.opts.RepairBelow {
			continue
		}
		resp, err := r.garage.Repair(ctx, v.ID)
		if err != nil {
			fmt.Fprintf(r.out, "  %s %v\n", color.New(color.FgYellow).Sprint("!"), err)
			continue
		}
		fmt.Fprintf(r.out, "  repaired %s for %s\n", resp.Vehicle.ID, Money(-resp.FundsDelta))
		n++
	}
	return n
}

// PickContract chooses the next contract to run: recovery contracts first,
// then the unrestricted contract with the best odds.
func PickContract(board []*mission.Mission) *mission.Mission {
	var best *mission.Mission
	for _, m := range board {
		if m.Restricted || m.Status != mission.StatusAvailable {
			continue
		}
		if m.Category == mission.CategoryFalloutRecovery {
			return m
		}
		if best == nil || m.SuccessChance > best.SuccessChance {
			best = m
		}
	}
	return best
}

// PickCrew returns up to size idle crew IDs, most loyal first.
func PickCrew(members []crew.Member, size int) []string {
	idle := make([]crew.Member, 0, len(members))
	for _, m := range members {
		if m.Status == crew.StatusIdle {
			idle = append(idle, m)
		}
	}
	sort.SliceStable(idle, func(i, j int) bool { return idle[i].Loyalty > idle[j].Loyalty })

	var ids []string
	for i := 0; i < len(idle) && i < size; i++ {
		ids = append(ids, idle[i].ID)
	}
	return ids
}
