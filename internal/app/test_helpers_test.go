package app

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/example/syndicate/internal/core/crackdown"
	"github.com/example/syndicate/internal/core/crew"
	"github.com/example/syndicate/internal/core/garage"
	"github.com/example/syndicate/internal/core/mission"
	"github.com/example/syndicate/internal/ports/secondary"
)

// Ensure mocks implement the interfaces
var (
	_ secondary.HeatSystem           = (*mockHeatSystem)(nil)
	_ secondary.Economy              = (*mockEconomy)(nil)
	_ secondary.City                 = (*mockCity)(nil)
	_ secondary.Safehouse            = (*mockSafehouse)(nil)
	_ secondary.EventDeckGenerator   = (*mockDeckGenerator)(nil)
	_ secondary.StorylineCatalog     = (*mockStoryline)(nil)
	_ secondary.MissionLogRepository = (*mockMissionLogRepository)(nil)
	_ secondary.RandomSource         = (*scriptedRandom)(nil)
)

// mockHeatSystem implements secondary.HeatSystem with a fixed tier.
type mockHeatSystem struct {
	tier        string
	value       float64
	increases   []float64
	mitigations []float64
}

func (m *mockHeatSystem) CurrentTier() string { return m.tier }

func (m *mockHeatSystem) Value() float64 { return m.value }

func (m *mockHeatSystem) Increase(amount float64) {
	m.increases = append(m.increases, amount)
	m.value += amount
}

func (m *mockHeatSystem) ApplyMitigation(amount float64, meta map[string]any) secondary.MitigationResult {
	m.mitigations = append(m.mitigations, amount)
	before := m.value
	m.value -= amount
	if m.value < 0 {
		m.value = 0
	}
	return secondary.MitigationResult{HeatBefore: before, HeatAfter: m.value, ReductionApplied: before - m.value}
}

func (m *mockHeatSystem) totalIncrease() float64 {
	total := 0.0
	for _, v := range m.increases {
		total += v
	}
	return total
}

// mockEconomy implements secondary.Economy.
type mockEconomy struct {
	funds   float64
	changes []float64
}

func (m *mockEconomy) Funds() float64 { return m.funds }

func (m *mockEconomy) AdjustFunds(delta float64) {
	m.changes = append(m.changes, delta)
	m.funds += delta
}

// mockCity implements secondary.City over an in-memory district list.
type mockCity struct {
	districts []secondary.District
}

func (m *mockCity) Districts() []secondary.District { return m.districts }

func (m *mockCity) District(id string) (secondary.District, bool) {
	if d := m.find(id); d != nil {
		return *d, true
	}
	return secondary.District{}, false
}

func (m *mockCity) find(id string) *secondary.District {
	for i := range m.districts {
		if m.districts[i].ID == id {
			return &m.districts[i]
		}
	}
	return nil
}

func (m *mockCity) AdjustIntelLevel(id string, delta int) {
	if d := m.find(id); d != nil {
		d.IntelLevel += delta
	}
}

func (m *mockCity) AdjustInfluence(id string, delta int) {
	if d := m.find(id); d != nil {
		d.Influence += delta
	}
}

func (m *mockCity) AdjustCrackdownPressure(id string, delta int) {
	if d := m.find(id); d != nil {
		d.CrackdownPressure += delta
	}
}

func (m *mockCity) CampaignSnapshot() secondary.CampaignSnapshot {
	return secondary.CampaignSnapshot{DistrictsTotal: len(m.districts)}
}

// mockSafehouse implements secondary.Safehouse.
type mockSafehouse struct {
	capacity int
}

func (m *mockSafehouse) StorageCapacity() int { return m.capacity }

// mockDeckGenerator returns a fixed deck and records the contexts it saw.
type mockDeckGenerator struct {
	deck  []mission.EventDefinition
	calls []secondary.DeckContext
}

func (m *mockDeckGenerator) BuildDeck(ctx secondary.DeckContext) []mission.EventDefinition {
	m.calls = append(m.calls, ctx)
	return m.deck
}

// mockStoryline implements secondary.StorylineCatalog.
type mockStoryline struct {
	steps    []mission.StorylineStep
	recorded []mission.StorylineLink
	delta    int
}

func (m *mockStoryline) AvailableSteps(members []*crew.Member) []mission.StorylineStep {
	return m.steps
}

func (m *mockStoryline) RecordOutcome(link mission.StorylineLink, outcome mission.Outcome) secondary.StorylineResult {
	m.recorded = append(m.recorded, link)
	return secondary.StorylineResult{
		CrewID:       link.CrewID,
		StepID:       link.StepID,
		Advanced:     outcome == mission.OutcomeSuccess,
		LoyaltyDelta: m.delta,
		Summary:      "storyline recorded",
	}
}

// mockMissionLogRepository implements secondary.MissionLogRepository for testing.
type mockMissionLogRepository struct {
	records   []*secondary.MissionLogRecord
	appendErr error
}

func (m *mockMissionLogRepository) Append(ctx context.Context, entry *secondary.MissionLogRecord) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.records = append(m.records, entry)
	return nil
}

func (m *mockMissionLogRepository) GetByID(ctx context.Context, id string) (*secondary.MissionLogRecord, error) {
	for _, r := range m.records {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, errors.New("not found")
}

func (m *mockMissionLogRepository) List(ctx context.Context, filters secondary.MissionLogFilters) ([]*secondary.MissionLogRecord, error) {
	var result []*secondary.MissionLogRecord
	for _, r := range m.records {
		if filters.MissionID != "" && r.MissionID != filters.MissionID {
			continue
		}
		if filters.Outcome != "" && r.Outcome != filters.Outcome {
			continue
		}
		if filters.SessionID != "" && r.SessionID != filters.SessionID {
			continue
		}
		result = append(result, r)
	}
	if filters.Limit > 0 && len(result) > filters.Limit {
		result = result[:filters.Limit]
	}
	return result, nil
}

func (m *mockMissionLogRepository) PruneOlderThan(ctx context.Context, days int) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	kept := m.records[:0]
	count := 0
	for _, r := range m.records {
		ts, err := time.Parse(time.RFC3339, r.CreatedAt)
		if err == nil && ts.Before(cutoff) {
			count++
			continue
		}
		kept = append(kept, r)
	}
	m.records = kept
	return count, nil
}

// scriptedRandom returns draws in order, repeating the last one when exhausted.
type scriptedRandom struct {
	draws []float64
	calls int
}

func (r *scriptedRandom) Float64() float64 {
	if len(r.draws) == 0 {
		return 0.5
	}
	i := r.calls
	if i >= len(r.draws) {
		i = len(r.draws) - 1
	}
	r.calls++
	return r.draws[i]
}

// engineFixture wires an engine over mocks. Nothing is seeded on the board.
type engineFixture struct {
	state     *GameState
	heat      *mockHeatSystem
	economy   *mockEconomy
	city      *mockCity
	safehouse *mockSafehouse
	deck      *mockDeckGenerator
	storyline *mockStoryline
	logRepo   *mockMissionLogRepository
	random    *scriptedRandom
	notoriety *NotorietyServiceImpl
	crackdown *CrackdownServiceImpl
	board     *ContractBoard
	executor  *DefaultEffectExecutor
	engine    *MissionEngineImpl
}

var fixtureNow = time.Date(2026, 3, 14, 21, 0, 0, 0, time.UTC)

func newTestCrew() []*crew.Member {
	return []*crew.Member{
		{ID: "crew-1", Name: "Vera", Specialty: crew.SpecialtyWheelman, Traits: crew.Traits{Driving: 3}, Loyalty: 2, Status: crew.StatusIdle},
		{ID: "crew-2", Name: "Marco", Specialty: crew.SpecialtyInfiltrator, Traits: crew.Traits{Stealth: 4}, Loyalty: 3, Status: crew.StatusIdle},
		{ID: "crew-3", Name: "Dot", Specialty: crew.SpecialtyHacker, Traits: crew.Traits{Tech: 2}, Loyalty: 1, Status: crew.StatusInjured},
	}
}

func newTestGarage() []*garage.Vehicle {
	return []*garage.Vehicle{
		{ID: "car-1", Model: "Sedan", TopSpeed: 5, Acceleration: 5, Handling: 5, HeatRating: 3, Condition: 0.9, Value: 8000},
		{ID: "car-2", Model: "Coupe", TopSpeed: 7, Acceleration: 6, Handling: 6, HeatRating: 5, Condition: 0.04, Value: 12000},
	}
}

func newEngineFixture(t *testing.T, autoResolve bool) *engineFixture {
	t.Helper()

	logger := zerolog.New(io.Discard)
	f := &engineFixture{
		state:     NewGameState(nil, newTestCrew(), newTestGarage()),
		heat:      &mockHeatSystem{tier: string(crackdown.TierCalm)},
		economy:   &mockEconomy{funds: 1000},
		city:      &mockCity{districts: []secondary.District{{ID: "d1", Name: "Harbor", Wealth: 2, Security: 2}}},
		safehouse: &mockSafehouse{capacity: 4},
		deck:      &mockDeckGenerator{},
		storyline: &mockStoryline{},
		logRepo:   &mockMissionLogRepository{},
		random:    &scriptedRandom{},
	}
	f.notoriety = NewNotorietyService(f.state, logger)
	f.crackdown = NewCrackdownService(f.state, f.heat, f.notoriety, logger)
	f.board = NewContractBoard(f.state, f.notoriety, f.city, f.storyline, logger, DefaultPoolSize)
	f.executor = NewEffectExecutor(f.state, ExecutorDeps{
		Heat:      f.heat,
		Economy:   f.economy,
		City:      f.city,
		Storyline: f.storyline,
		Notoriety: f.notoriety,
		Board:     f.board,
		Logger:    logger,
		Now:       func() time.Time { return fixtureNow },
	})
	f.engine = NewMissionEngine(f.state, EngineConfig{AutoResolve: autoResolve}, EngineDeps{
		Safehouse:  f.safehouse,
		Deck:       f.deck,
		MissionLog: f.logRepo,
		Random:     f.random,
		Crackdown:  f.crackdown,
		Notoriety:  f.notoriety,
		Board:      f.board,
		Executor:   f.executor,
		Logger:     logger,
		Now:        func() time.Time { return fixtureNow },
	})
	return f
}

// offer registers t and puts a fresh instance on the board.
func (f *engineFixture) offer(t *testing.T, tmpl mission.Template) *mission.Mission {
	t.Helper()
	clean, ok := f.board.Register(tmpl)
	if !ok {
		t.Fatalf("template %q rejected", tmpl.ID)
	}
	m := f.board.spawn(clean, false)
	if m == nil {
		t.Fatalf("template %q not spawned", tmpl.ID)
	}
	return m
}

func simpleTemplate(id string) mission.Template {
	return mission.Template{
		ID:                id,
		Name:              "Job " + id,
		Difficulty:        2,
		BasePayout:        1000,
		BaseHeat:          2,
		BaseDuration:      10,
		BaseSuccessChance: 0.6,
	}
}
