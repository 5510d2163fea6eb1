package mission

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/example/syndicate/internal/core/crackdown"
	"github.com/example/syndicate/internal/core/notoriety"
)

// ErrTemplateIdentity is returned for templates without an ID or a name.
var ErrTemplateIdentity = errors.New("contract template requires an id and a name")

// Success chance bounds shared by instantiation and choice effects.
const (
	MinSuccessChance = 0.05
	MaxSuccessChance = 0.98
	MinDuration      = 5.0
)

// SanitizeTemplate normalises template values. NaN or negative payout and heat
// become zero, a missing duration falls back to twenty seconds per difficulty.
func SanitizeTemplate(t Template) (Template, error) {
	t.ID = strings.TrimSpace(t.ID)
	t.Name = strings.TrimSpace(t.Name)
	if t.ID == "" || t.Name == "" {
		return Template{}, fmt.Errorf("%w (id %q)", ErrTemplateIdentity, t.ID)
	}
	if t.Difficulty < 1 {
		t.Difficulty = 1
	}
	t.BasePayout = nonNegative(t.BasePayout)
	t.BaseHeat = nonNegative(t.BaseHeat)
	if !finite(t.BaseDuration) || t.BaseDuration <= 0 {
		t.BaseDuration = math.Max(float64(t.Difficulty*20), 20)
	}
	if !finite(t.BaseSuccessChance) || t.BaseSuccessChance < 0 || t.BaseSuccessChance > 1 {
		t.BaseSuccessChance = 0
	}
	if t.Category == "" {
		t.Category = CategoryStandard
	}
	return t, nil
}

// DefaultSuccessChance derives a base success chance from difficulty and band risk.
func DefaultSuccessChance(difficulty int, risk float64) float64 {
	return clampChance(0.8 - 0.08*float64(difficulty-1) - risk)
}

// Instantiate creates an available mission from a template under the given
// notoriety band. The band scales payout and heat, raises difficulty and
// lowers the success chance by its risk.
func Instantiate(t Template, id string, band notoriety.Band) (*Mission, error) {
	t, err := SanitizeTemplate(t)
	if err != nil {
		return nil, err
	}

	difficulty := t.Difficulty + band.DifficultyBonus
	payout := math.Round(t.BasePayout * band.PayoutMultiplier)
	heat := math.Round(t.BaseHeat*band.HeatMultiplier*100) / 100

	success := DefaultSuccessChance(difficulty, band.Risk)
	if t.BaseSuccessChance > 0 {
		success = clampChance(t.BaseSuccessChance - band.Risk)
	}

	return &Mission{
		ID:                id,
		TemplateID:        t.ID,
		Name:              t.Name,
		Description:       t.Description,
		Category:          t.Category,
		DistrictID:        t.DistrictID,
		PointOfInterest:   t.PointOfInterest,
		VehicleReward:     t.VehicleReward,
		FalloutRecovery:   t.FalloutRecovery,
		Storyline:         t.Storyline,
		CrackdownEffect:   t.CrackdownEffect,
		IgnoreCrackdown:   t.IgnoreCrackdown,
		Difficulty:        difficulty,
		BasePayout:        payout,
		BaseHeat:          heat,
		BaseDuration:      t.BaseDuration,
		BaseSuccessChance: success,
		Payout:            payout,
		Heat:              heat,
		Duration:          t.BaseDuration,
		SuccessChance:     success,
		NotorietyBand:     band.Name,
		Status:            StatusAvailable,
	}, nil
}

// ApplyRestriction flags m as restricted when its heat exceeds the tier cap.
// Only available missions are touched.
func ApplyRestriction(m *Mission, tier crackdown.Tier) crackdown.GuardResult {
	result := crackdown.CanRunUnderCrackdown(crackdown.RestrictionContext{
		MissionID:       m.ID,
		Heat:            m.Heat,
		Tier:            tier,
		FalloutRecovery: m.Category == CategoryFalloutRecovery || m.FalloutRecovery != nil,
		CrewLoyalty:     m.Category == CategoryCrewLoyalty,
		IgnoreCrackdown: m.IgnoreCrackdown,
	})
	if m.Status != StatusAvailable {
		return result
	}
	m.Restricted = !result.Allowed
	m.RestrictionReason = result.Reason
	return result
}

// Registry holds templates keyed by ID in registration order.
type Registry struct {
	templates map[string]Template
	order     []string
}

// NewRegistry creates an empty template registry.
func NewRegistry() *Registry {
	return &Registry{templates: make(map[string]Template)}
}

// Register sanitises and stores t, replacing any template with the same ID.
func (r *Registry) Register(t Template) (Template, error) {
	t, err := SanitizeTemplate(t)
	if err != nil {
		return Template{}, err
	}
	if _, ok := r.templates[t.ID]; !ok {
		r.order = append(r.order, t.ID)
	}
	r.templates[t.ID] = t
	return t, nil
}

// Get returns the template with id.
func (r *Registry) Get(id string) (Template, bool) {
	t, ok := r.templates[id]
	return t, ok
}

// All returns every template in registration order.
func (r *Registry) All() []Template {
	out := make([]Template, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.templates[id])
	}
	return out
}

// Len returns the number of registered templates.
func (r *Registry) Len() int {
	return len(r.order)
}

func clampChance(v float64) float64 {
	if math.IsNaN(v) {
		return MinSuccessChance
	}
	return math.Max(MinSuccessChance, math.Min(MaxSuccessChance, v))
}

func nonNegative(v float64) float64 {
	if !finite(v) || v < 0 {
		return 0
	}
	return v
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
