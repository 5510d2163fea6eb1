package app

import (
	"io"
	"testing"

	"github.com/rs/zerolog"

	"github.com/example/syndicate/internal/core/crackdown"
	"github.com/example/syndicate/internal/core/crew"
	"github.com/example/syndicate/internal/core/mission"
	"github.com/example/syndicate/internal/ports/secondary"
)

func newTestBoard(poolSize int, storyline *mockStoryline) (*ContractBoard, *GameState) {
	state := NewGameState(nil, newTestCrew(), nil)
	logger := zerolog.New(io.Discard)
	notoriety := NewNotorietyService(state, logger)
	if storyline == nil {
		return NewContractBoard(state, notoriety, nil, nil, logger, poolSize), state
	}
	return NewContractBoard(state, notoriety, nil, storyline, logger, poolSize), state
}

func templateIDs(ms []*mission.Mission) map[string]int {
	ids := make(map[string]int)
	for _, m := range ms {
		if m.Status == mission.StatusAvailable {
			ids[m.TemplateID]++
		}
	}
	return ids
}

func TestContractBoard_SeedRejectsTemplatesWithoutIdentity(t *testing.T) {
	board, state := newTestBoard(DefaultPoolSize, nil)

	rejected := board.seed([]mission.Template{
		{ID: "nameless"},
		{Name: "Idless job"},
		{},
		simpleTemplate("job-extra"),
	})

	want := []string{"nameless", "Idless job", "(unnamed)"}
	if len(rejected) != len(want) {
		t.Fatalf("expected %d rejected, got %v", len(want), rejected)
	}
	for i, name := range want {
		if rejected[i] != name {
			t.Errorf("rejected %d: expected %q, got %q", i, name, rejected[i])
		}
	}
	if _, ok := state.Registry.Get("job-extra"); !ok {
		t.Error("expected valid extra template to be registered")
	}
	if state.Registry.Len() != len(mission.DefaultTemplates())+1 {
		t.Errorf("expected defaults plus one, got %d", state.Registry.Len())
	}
}

func TestContractBoard_RefillRespectsPoolSize(t *testing.T) {
	board, state := newTestBoard(3, nil)
	board.seed(nil)

	if added := board.refill(); added != 3 {
		t.Errorf("expected 3 added, got %d", added)
	}
	if added := board.refill(); added != 0 {
		t.Errorf("expected a full board to stay put, got %d added", added)
	}
	for id, n := range templateIDs(state.Available) {
		if n != 1 {
			t.Errorf("template %s offered %d times", id, n)
		}
	}
}

func TestContractBoard_CrackdownOperationFollowsTier(t *testing.T) {
	board, state := newTestBoard(10, nil)
	board.seed(nil)

	state.Tier = crackdown.TierAlert
	board.refill()
	if templateIDs(state.Available)["crackdown-op-alert"] != 1 {
		t.Fatal("expected alert crackdown operation on the board")
	}

	state.Available = nil
	state.Tier = crackdown.TierLockdown
	board.refill()
	ids := templateIDs(state.Available)
	if ids["crackdown-op-alert"] != 0 {
		t.Error("expected stale alert operation not to be offered under lockdown")
	}
	if ids["crackdown-op-lockdown"] != 1 {
		t.Error("expected lockdown crackdown operation on the board")
	}

	state.Available = nil
	state.Tier = crackdown.TierCalm
	board.refill()
	for id := range templateIDs(state.Available) {
		if id == "crackdown-op-alert" || id == "crackdown-op-lockdown" {
			t.Errorf("expected no crackdown operations under calm, found %s", id)
		}
	}
}

func TestContractBoard_StorylineSteps(t *testing.T) {
	storyline := &mockStoryline{steps: []mission.StorylineStep{
		{ID: "debt-of-honour", CrewID: "crew-2", CrewName: "Marco", Title: "Debt of honour", Difficulty: 2, Payout: 900},
	}}
	board, state := newTestBoard(10, storyline)
	board.seed(nil)

	board.refill()
	if templateIDs(state.Available)["loyalty-crew-2-debt-of-honour"] != 1 {
		t.Fatal("expected loyalty contract while the step is available")
	}

	state.Available = nil
	storyline.steps = nil
	board.refill()
	if templateIDs(state.Available)["loyalty-crew-2-debt-of-honour"] != 0 {
		t.Error("expected loyalty contract to stop once the step is gone")
	}
}

func TestContractBoard_FollowUpsGoToTheFront(t *testing.T) {
	board, state := newTestBoard(DefaultPoolSize, nil)
	board.seed(nil)
	board.refill()

	tmpl, ok := mission.FollowUpTemplate(crew.FalloutRecord{CrewID: "crew-1", CrewName: "Vera", Status: crew.FalloutCaptured}, 3)
	if !ok {
		t.Fatal("expected rescue template")
	}
	m := board.spawnFollowUp(tmpl)
	if m == nil {
		t.Fatal("expected rescue contract spawned")
	}
	if state.Available[0] != m {
		t.Error("expected rescue contract at the front of the board")
	}
	if board.spawnFollowUp(tmpl) != nil {
		t.Error("expected duplicate rescue to be refused")
	}

	state.Available = nil
	board.refill()
	if templateIDs(state.Available)["rescue-crew-1"] != 0 {
		t.Error("expected rescue contracts to stay out of routine refills")
	}
}

func TestContractBoard_RespawnSkipsOfferedTemplates(t *testing.T) {
	board, state := newTestBoard(DefaultPoolSize, nil)
	clean, _ := board.Register(simpleTemplate("job-a"))
	m := board.spawn(clean, false)

	if board.respawn(m) != nil {
		t.Error("expected no respawn while the template is still offered")
	}

	m.Status = mission.StatusCompleted
	fresh := board.respawn(m)
	if fresh == nil {
		t.Fatal("expected respawn after completion")
	}
	if fresh.ID == m.ID || fresh.Status != mission.StatusAvailable {
		t.Errorf("expected a fresh available instance, got %s (%s)", fresh.ID, fresh.Status)
	}
	if len(state.Available) != 2 {
		t.Errorf("expected completed and fresh missions on the board, got %d", len(state.Available))
	}
}

func TestContractBoard_DistrictContractsFollowCityState(t *testing.T) {
	state := NewGameState(nil, newTestCrew(), nil)
	logger := zerolog.New(io.Discard)
	city := &mockCity{districts: []secondary.District{
		{ID: "harbor", Name: "Harbor", Wealth: 2, Security: 2, PointsOfInterest: []string{"Pier 9 Warehouse"}},
	}}
	board := NewContractBoard(state, NewNotorietyService(state, logger), city, nil, logger, 10)
	board.seed(nil)
	const id = "district-harbor-pier-9-warehouse"

	before, ok := state.Registry.Get(id)
	if !ok {
		t.Fatalf("expected %s to be registered", id)
	}

	city.AdjustIntelLevel("harbor", 5)
	city.AdjustCrackdownPressure("harbor", 5)
	board.refill()

	after, _ := state.Registry.Get(id)
	if after.Difficulty >= before.Difficulty {
		t.Errorf("expected intel to lower difficulty, got %d -> %d", before.Difficulty, after.Difficulty)
	}
	if after.BaseSuccessChance <= before.BaseSuccessChance {
		t.Errorf("expected intel to raise the odds, got %v -> %v", before.BaseSuccessChance, after.BaseSuccessChance)
	}
	if after.BaseHeat <= before.BaseHeat || after.BaseDuration <= before.BaseDuration {
		t.Errorf("expected pressure to add heat and time, got %+v -> %+v", before, after)
	}

	var offered *mission.Mission
	for _, m := range state.Available {
		if m.TemplateID == id {
			offered = m
		}
	}
	if offered == nil {
		t.Fatalf("expected %s on the board", id)
	}
	if offered.Heat != after.BaseHeat || offered.Difficulty != after.Difficulty {
		t.Errorf("expected the refill to use the current district state, got heat %v difficulty %d", offered.Heat, offered.Difficulty)
	}
}
