// Package memory contains in-process implementations of the engine's collaborators.
// They back the CLI and give the engine a complete city to run against.
package memory

import (
	"math"
	"sync"

	"github.com/example/syndicate/internal/core/crackdown"
	"github.com/example/syndicate/internal/ports/secondary"
)

// Heat thresholds for the crackdown tiers.
const (
	AlertHeat    = 10.0
	LockdownHeat = 20.0
	MaxHeat      = 30.0
)

// HeatSystem implements secondary.HeatSystem as a bounded meter.
type HeatSystem struct {
	mu    sync.Mutex
	value float64
}

// NewHeatSystem creates a heat meter at initial.
func NewHeatSystem(initial float64) *HeatSystem {
	return &HeatSystem{value: clampHeat(initial)}
}

// CurrentTier returns the tier name for the current heat.
func (h *HeatSystem) CurrentTier() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return string(TierForHeat(h.value))
}

// Value returns the current heat.
func (h *HeatSystem) Value() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.value
}

// Increase raises heat, clamped to MaxHeat.
func (h *HeatSystem) Increase(amount float64) {
	if amount <= 0 || math.IsNaN(amount) {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.value = clampHeat(h.value + amount)
}

// ApplyMitigation lowers heat and reports what was actually removed.
func (h *HeatSystem) ApplyMitigation(amount float64, meta map[string]any) secondary.MitigationResult {
	h.mu.Lock()
	defer h.mu.Unlock()

	before := h.value
	if amount > 0 && !math.IsNaN(amount) {
		h.value = clampHeat(h.value - amount)
	}
	return secondary.MitigationResult{
		HeatBefore:       before,
		HeatAfter:        h.value,
		ReductionApplied: before - h.value,
	}
}

// Cool bleeds off heat between missions.
func (h *HeatSystem) Cool(amount float64) {
	h.ApplyMitigation(amount, nil)
}

// TierForHeat maps a heat value onto a crackdown tier.
func TierForHeat(value float64) crackdown.Tier {
	switch {
	case value >= LockdownHeat:
		return crackdown.TierLockdown
	case value >= AlertHeat:
		return crackdown.TierAlert
	default:
		return crackdown.TierCalm
	}
}

func clampHeat(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(MaxHeat, v))
}

var _ secondary.HeatSystem = (*HeatSystem)(nil)
