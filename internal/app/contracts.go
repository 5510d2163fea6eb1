package app

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/example/syndicate/internal/core/mission"
	"github.com/example/syndicate/internal/ports/secondary"
)

// DefaultPoolSize is the number of open contracts the board is kept at.
const DefaultPoolSize = 6

// ContractBoard registers templates and keeps the available list stocked.
// All methods expect the caller to hold the state lock.
type ContractBoard struct {
	state     *GameState
	notoriety *NotorietyServiceImpl
	city      secondary.City
	storyline secondary.StorylineCatalog
	logger    zerolog.Logger
	poolSize  int
}

// NewContractBoard creates a board over state. city and storyline may be nil.
func NewContractBoard(
	state *GameState,
	notoriety *NotorietyServiceImpl,
	city secondary.City,
	storyline secondary.StorylineCatalog,
	logger zerolog.Logger,
	poolSize int,
) *ContractBoard {
	if poolSize < 1 {
		poolSize = DefaultPoolSize
	}
	return &ContractBoard{
		state:     state,
		notoriety: notoriety,
		city:      city,
		storyline: storyline,
		logger:    logger,
		poolSize:  poolSize,
	}
}

// Register sanitises t into the registry. Templates without identity are
// rejected with a warning and reported as false.
func (b *ContractBoard) Register(t mission.Template) (mission.Template, bool) {
	clean, err := b.state.Registry.Register(t)
	if err != nil {
		ev := b.logger.Warn().Err(err).Str("template_id", t.ID).Str("name", t.Name)
		if errors.Is(err, mission.ErrTemplateIdentity) {
			ev.Msg("template rejected: missing identity")
		} else {
			ev.Msg("template rejected")
		}
		return mission.Template{}, false
	}
	return clean, true
}

// seed registers the static, district, crackdown and storyline templates.
// Returns the names of rejected templates.
func (b *ContractBoard) seed(extra []mission.Template) []string {
	templates := mission.DefaultTemplates()
	templates = append(templates, b.districtTemplates()...)
	templates = append(templates, extra...)

	var rejected []string
	for _, t := range templates {
		if _, ok := b.Register(t); !ok {
			name := t.Name
			if name == "" {
				name = t.ID
			}
			if name == "" {
				name = "(unnamed)"
			}
			rejected = append(rejected, name)
		}
	}
	b.registerDynamic()
	return rejected
}

// districtTemplates builds one contract per district from its current state.
func (b *ContractBoard) districtTemplates() []mission.Template {
	if b.city == nil {
		return nil
	}
	var out []mission.Template
	for _, d := range b.city.Districts() {
		poi := ""
		if len(d.PointsOfInterest) > 0 {
			poi = d.PointsOfInterest[0]
		}
		out = append(out, mission.DistrictTemplate(mission.DistrictContract{
			DistrictID:        d.ID,
			DistrictName:      d.Name,
			Wealth:            d.Wealth,
			Security:          d.Security,
			Influence:         d.Influence,
			IntelLevel:        d.IntelLevel,
			CrackdownPressure: d.CrackdownPressure,
			PointOfInterest:   poi,
		}))
	}
	return out
}

// registerDynamic adds the templates that depend on the current tier, crew and
// district state. District templates are rebuilt so refills see the latest intel
// and pressure.
func (b *ContractBoard) registerDynamic() {
	for _, t := range b.districtTemplates() {
		b.Register(t)
	}
	if t, ok := mission.CrackdownOperationTemplate(b.state.Tier); ok {
		b.Register(t)
	}
	if b.storyline != nil {
		for _, step := range b.storyline.AvailableSteps(b.state.Crew) {
			b.Register(mission.CrewLoyaltyTemplate(step))
		}
	}
}

// spawn instantiates t onto the board, at the front when front is set.
func (b *ContractBoard) spawn(t mission.Template, front bool) *mission.Mission {
	m, err := mission.Instantiate(t, b.state.nextMissionID(t.ID), b.notoriety.bandLocked())
	if err != nil {
		b.logger.Warn().Err(err).Str("template_id", t.ID).Msg("contract not instantiated")
		return nil
	}
	mission.ApplyRestriction(m, b.state.Tier)
	if front {
		b.state.Available = append([]*mission.Mission{m}, b.state.Available...)
	} else {
		b.state.Available = append(b.state.Available, m)
	}
	return m
}

// refillable reports whether t may be offered by a routine refill.
// Fallout recovery contracts only come from follow-ups, and crackdown
// operations only for the tier they were built for.
func (b *ContractBoard) refillable(t mission.Template) bool {
	switch t.Category {
	case mission.CategoryFalloutRecovery:
		return false
	case mission.CategoryCrackdownOperation:
		current, ok := mission.CrackdownOperationTemplate(b.state.Tier)
		return ok && current.ID == t.ID
	case mission.CategoryCrewLoyalty:
		return b.stepAvailable(t)
	default:
		return true
	}
}

func (b *ContractBoard) stepAvailable(t mission.Template) bool {
	if b.storyline == nil || t.Storyline == nil {
		return false
	}
	for _, step := range b.storyline.AvailableSteps(b.state.Crew) {
		if step.ID == t.Storyline.StepID && step.CrewID == t.Storyline.CrewID {
			return true
		}
	}
	return false
}

// refill tops the board up to the pool size with templates not already offered.
func (b *ContractBoard) refill() int {
	b.registerDynamic()
	added := 0
	for _, t := range b.state.Registry.All() {
		if b.state.openContracts() >= b.poolSize {
			break
		}
		if !b.refillable(t) || b.state.offeredTemplate(t.ID) {
			continue
		}
		if b.spawn(t, false) != nil {
			added++
		}
	}
	return added
}

// respawn puts a fresh instance of a resolved mission's template back on the board.
func (b *ContractBoard) respawn(m *mission.Mission) *mission.Mission {
	t, ok := b.state.Registry.Get(m.TemplateID)
	if !ok || !b.refillable(t) || b.state.offeredTemplate(t.ID) {
		return nil
	}
	return b.spawn(t, false)
}

// spawnFollowUp queues a rescue or medical contract ahead of the board.
func (b *ContractBoard) spawnFollowUp(t mission.Template) *mission.Mission {
	clean, ok := b.Register(t)
	if !ok || b.state.offeredTemplate(clean.ID) {
		return nil
	}
	return b.spawn(clean, true)
}
