package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/example/syndicate/internal/core/crew"
	"github.com/example/syndicate/internal/core/garage"
	"github.com/example/syndicate/internal/core/mission"
	"github.com/example/syndicate/internal/ports/primary"
)

var checkpointEvent = mission.EventDefinition{
	ID:    "e-1",
	Title: "Checkpoint",
	Choices: []mission.Choice{
		{ID: "push-on", Effect: mission.ChoiceEffect{HeatDelta: 1.5}},
		{ID: "bribe", Effect: mission.ChoiceEffect{HeatDelta: -1, FutureDebt: &mission.DebtTerms{Amount: 250}}},
		{ID: "lie-low", Effect: mission.ChoiceEffect{HeatDelta: -0.5}},
		{ID: "take-it-all", Effect: mission.ChoiceEffect{PayoutMultiplier: 1.3, HeatMultiplier: 1.25}},
	},
}

func TestChoicePolicies(t *testing.T) {
	tests := []struct {
		name   string
		policy string
		want   string
	}{
		{name: "first", policy: "first", want: "push-on"},
		{name: "default", policy: "", want: "push-on"},
		{name: "cautious avoids heat and debt", policy: "cautious", want: "lie-low"},
		{name: "greedy takes payout", policy: "greedy", want: "take-it-all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy, err := PolicyByName(tt.policy)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := policy(checkpointEvent); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestPolicyByName_Unknown(t *testing.T) {
	if _, err := PolicyByName("reckless"); err == nil {
		t.Error("expected error for unknown policy")
	}
}

func TestPickContract(t *testing.T) {
	board := []*mission.Mission{
		{ID: "hot", Status: mission.StatusAvailable, SuccessChance: 0.9, Restricted: true},
		{ID: "easy", Status: mission.StatusAvailable, SuccessChance: 0.7},
		{ID: "hard", Status: mission.StatusAvailable, SuccessChance: 0.4},
		{ID: "done", Status: mission.StatusCompleted, SuccessChance: 0.95},
	}
	if got := PickContract(board); got == nil || got.ID != "easy" {
		t.Errorf("expected easy, got %+v", got)
	}

	board = append(board, &mission.Mission{ID: "rescue-crew-1", Status: mission.StatusAvailable, Category: mission.CategoryFalloutRecovery, SuccessChance: 0.5})
	if got := PickContract(board); got.ID != "rescue-crew-1" {
		t.Errorf("expected recovery contract first, got %s", got.ID)
	}

	if got := PickContract(board[:1]); got != nil {
		t.Errorf("expected nil with only restricted contracts, got %s", got.ID)
	}
}

func TestPickCrew(t *testing.T) {
	members := []crew.Member{
		{ID: "crew-1", Loyalty: 2, Status: crew.StatusIdle},
		{ID: "crew-2", Loyalty: 5, Status: crew.StatusInjured},
		{ID: "crew-3", Loyalty: 4, Status: crew.StatusIdle},
		{ID: "crew-4", Loyalty: 2, Status: crew.StatusIdle},
	}

	got := PickCrew(members, 2)
	if strings.Join(got, ",") != "crew-3,crew-1" {
		t.Errorf("expected crew-3,crew-1, got %v", got)
	}
	if got := PickCrew(members[1:2], 2); len(got) != 0 {
		t.Errorf("expected nobody, got %v", got)
	}
}

func startedMission(ctx context.Context, req primary.StartMissionRequest) (*primary.StartMissionResponse, error) {
	return &primary.StartMissionResponse{Mission: &mission.Mission{ID: req.MissionID, Name: "Warehouse Job"}}, nil
}

func TestRunner_RunAnswersEventsAndConfirms(t *testing.T) {
	ticks := 0
	engine := &mockEngine{
		startFn: startedMission,
		updateFn: func(ctx context.Context, delta float64) (*primary.UpdateResponse, error) {
			ticks++
			m := &mission.Mission{ID: "warehouse-1"}
			switch ticks {
			case 1:
				return &primary.UpdateResponse{Mission: m}, nil
			case 2:
				return &primary.UpdateResponse{Mission: m, Decision: &mission.PendingDecision{EventID: "e-1", Event: checkpointEvent}, AwaitingDecision: true}, nil
			default:
				return &primary.UpdateResponse{Mission: m, AwaitingConfirm: true}, nil
			}
		},
		chooseFn: func(ctx context.Context, req primary.ChooseEventOptionRequest) (*primary.ChooseEventOptionResponse, error) {
			return &primary.ChooseEventOptionResponse{Mission: &mission.Mission{}}, nil
		},
		resolveFn: func(ctx context.Context, req primary.ResolveMissionRequest) (*primary.ResolveMissionResponse, error) {
			return &primary.ResolveMissionResponse{
				Mission:    &mission.Mission{ID: req.MissionID, Name: "Warehouse Job"},
				Resolution: mission.ResolutionDetails{Outcome: mission.OutcomeSuccess, NetPayout: 2000},
			}, nil
		},
	}
	adapter, buf := newTestEngineAdapter(engine)
	runner := NewRunner(adapter, nil, nil, RunnerOptions{Policy: CautiousChoice})

	res, err := runner.Run(context.Background(), primary.StartMissionRequest{MissionID: "warehouse-1", CrewIDs: []string{"crew-1"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Resolution.Outcome != mission.OutcomeSuccess {
		t.Errorf("expected success, got %s", res.Resolution.Outcome)
	}
	if len(engine.chosen) != 1 || engine.chosen[0] != "lie-low" {
		t.Errorf("expected lie-low chosen, got %v", engine.chosen)
	}
	if engine.lastResolveReq.MissionID != "warehouse-1" || engine.lastResolveReq.Outcome != mission.OutcomeNone {
		t.Errorf("expected roll confirmation, got %+v", engine.lastResolveReq)
	}
	if !strings.Contains(buf.String(), "EVENT Checkpoint") || !strings.Contains(buf.String(), "SUCCESS Warehouse Job") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestRunner_RunResolvedByFinalChoice(t *testing.T) {
	ticks := 0
	engine := &mockEngine{
		startFn: startedMission,
		updateFn: func(ctx context.Context, delta float64) (*primary.UpdateResponse, error) {
			ticks++
			return &primary.UpdateResponse{
				Mission:          &mission.Mission{ID: "warehouse-1"},
				Decision:         &mission.PendingDecision{EventID: "e-1", Event: checkpointEvent},
				AwaitingDecision: true,
			}, nil
		},
		chooseFn: func(ctx context.Context, req primary.ChooseEventOptionRequest) (*primary.ChooseEventOptionResponse, error) {
			resolved := &primary.ResolveMissionResponse{
				Mission:    &mission.Mission{ID: "warehouse-1", Name: "Warehouse Job", Status: mission.StatusCompleted},
				Resolution: mission.ResolutionDetails{Outcome: mission.OutcomeFailure},
			}
			return &primary.ChooseEventOptionResponse{Mission: resolved.Mission, Resolved: resolved}, nil
		},
	}
	adapter, buf := newTestEngineAdapter(engine)
	runner := NewRunner(adapter, nil, nil, RunnerOptions{})

	res, err := runner.Run(context.Background(), primary.StartMissionRequest{MissionID: "warehouse-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Resolution.Outcome != mission.OutcomeFailure {
		t.Errorf("expected failure, got %s", res.Resolution.Outcome)
	}
	if ticks != 1 {
		t.Errorf("expected a single tick, got %d", ticks)
	}
	if engine.lastResolveReq.MissionID != "" {
		t.Errorf("expected no confirmation call, got %+v", engine.lastResolveReq)
	}
	if !strings.Contains(buf.String(), "FAILURE") {
		t.Errorf("expected resolution printed, got:\n%s", buf.String())
	}
}

func TestRunner_RunGivesUpAfterMaxTicks(t *testing.T) {
	engine := &mockEngine{
		startFn: startedMission,
		updateFn: func(ctx context.Context, delta float64) (*primary.UpdateResponse, error) {
			return &primary.UpdateResponse{Mission: &mission.Mission{ID: "warehouse-1"}}, nil
		},
	}
	adapter, _ := newTestEngineAdapter(engine)
	runner := NewRunner(adapter, nil, nil, RunnerOptions{MaxTicks: 3})

	_, err := runner.Run(context.Background(), primary.StartMissionRequest{MissionID: "warehouse-1"})
	if err == nil || !strings.Contains(err.Error(), "did not resolve after 3 ticks") {
		t.Errorf("expected tick limit error, got %v", err)
	}
}

type recordingHeat struct {
	cooled []float64
}

func (h *recordingHeat) Cool(amount float64) { h.cooled = append(h.cooled, amount) }

func TestRunner_Campaign(t *testing.T) {
	engine := &mockEngine{
		startFn: startedMission,
		updateFn: func(ctx context.Context, delta float64) (*primary.UpdateResponse, error) {
			return &primary.UpdateResponse{Resolved: &primary.ResolveMissionResponse{
				Mission:    &mission.Mission{ID: "warehouse-1", Name: "Warehouse Job"},
				Resolution: mission.ResolutionDetails{Outcome: mission.OutcomeSuccess, NetPayout: 1500},
			}}, nil
		},
		crew:      []crew.Member{{ID: "crew-1", Status: crew.StatusIdle, Loyalty: 3}},
		available: []*mission.Mission{{ID: "warehouse-1", Status: mission.StatusAvailable, SuccessChance: 0.6}},
	}
	garageSvc := &mockGarageService{
		vehicles: []garage.Vehicle{{ID: "veh-1", Condition: 0.4}, {ID: "veh-2", Condition: 0.95}},
		repairFn: func(ctx context.Context, id string) (*primary.GarageResponse, error) {
			return &primary.GarageResponse{Vehicle: garage.Vehicle{ID: id, Condition: 1}, FundsDelta: -1200}, nil
		},
	}
	heat := &recordingHeat{}
	adapter, buf := newTestEngineAdapter(engine)
	runner := NewRunner(adapter, garageSvc, heat, RunnerOptions{RepairBelow: 0.5, Cooldown: 2})

	sum, err := runner.Campaign(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Played != 2 || sum.Successes != 2 || sum.NetPayout != 3000 {
		t.Errorf("unexpected summary %+v", sum)
	}
	if sum.Repairs != 2 {
		t.Errorf("expected veh-1 repaired before each mission, got %d", sum.Repairs)
	}
	if len(heat.cooled) != 2 || heat.cooled[0] != 2 {
		t.Errorf("expected heat cooled twice by 2, got %v", heat.cooled)
	}
	if engine.lastStartReq.CrewIDs[0] != "crew-1" {
		t.Errorf("expected crew-1 assigned, got %v", engine.lastStartReq.CrewIDs)
	}
	if !strings.Contains(buf.String(), "Campaign: 2 played, 2 won, 0 lost, $3,000 earned, 2 repairs") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestRunner_CampaignStopsWithoutCrew(t *testing.T) {
	engine := &mockEngine{
		crew:      []crew.Member{{ID: "crew-1", Status: crew.StatusCaptured}},
		available: []*mission.Mission{{ID: "warehouse-1", Status: mission.StatusAvailable}},
	}
	adapter, buf := newTestEngineAdapter(engine)
	runner := NewRunner(adapter, nil, nil, RunnerOptions{})

	sum, err := runner.Campaign(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Played != 0 || sum.StoppedWhy != "no crew available" {
		t.Errorf("unexpected summary %+v", sum)
	}
	if !strings.Contains(buf.String(), "stopped early: no crew available") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}
