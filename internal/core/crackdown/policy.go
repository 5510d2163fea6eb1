// Package crackdown contains the pure crackdown policy: the three law-enforcement
// tiers, their mission heat caps and failure multipliers, and the restriction guard.
package crackdown

import (
	"fmt"
	"strconv"
)

// Tier is a crackdown classification.
type Tier string

const (
	TierCalm     Tier = "calm"
	TierAlert    Tier = "alert"
	TierLockdown Tier = "lockdown"
)

// NotorietyPerPressure is the notoriety nudge per step of tier pressure change.
const NotorietyPerPressure = 1.5

// Policy is the rule set attached to a tier.
type Policy struct {
	Tier                  Tier
	MaxMissionHeat        float64
	FailureHeatMultiplier float64
	Pressure              int
}

var policies = map[Tier]Policy{
	TierCalm:     {Tier: TierCalm, MaxMissionHeat: 10, FailureHeatMultiplier: 2, Pressure: 0},
	TierAlert:    {Tier: TierAlert, MaxMissionHeat: 3, FailureHeatMultiplier: 3, Pressure: 1},
	TierLockdown: {Tier: TierLockdown, MaxMissionHeat: 1, FailureHeatMultiplier: 4, Pressure: 2},
}

// ParseTier maps a collaborator tier name onto a Tier. Unknown names read as calm.
func ParseTier(name string) Tier {
	t := Tier(name)
	if _, ok := policies[t]; ok {
		return t
	}
	return TierCalm
}

// PolicyFor returns the policy for tier, falling back to calm.
func PolicyFor(tier Tier) Policy {
	if p, ok := policies[tier]; ok {
		return p
	}
	return policies[TierCalm]
}

// Elevated reports whether the tier is above calm.
func (t Tier) Elevated() bool {
	return PolicyFor(t).Pressure > 0
}

// NotorietyNudge returns the notoriety change caused by moving from one tier to another.
func NotorietyNudge(from, to Tier) float64 {
	return float64(PolicyFor(to).Pressure-PolicyFor(from).Pressure) * NotorietyPerPressure
}

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error returns the guard result as an error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// RestrictionContext provides the mission facts the crackdown guard needs.
type RestrictionContext struct {
	MissionID       string
	Heat            float64
	Tier            Tier
	FalloutRecovery bool
	CrewLoyalty     bool
	IgnoreCrackdown bool
}

// CanRunUnderCrackdown evaluates whether a mission may run under the current tier.
// Rules:
// - Fallout-recovery, crew-loyalty and explicitly exempt missions always run
// - Otherwise mission heat must not exceed the tier cap
func CanRunUnderCrackdown(ctx RestrictionContext) GuardResult {
	if ctx.FalloutRecovery || ctx.CrewLoyalty || ctx.IgnoreCrackdown {
		return GuardResult{Allowed: true}
	}

	policy := PolicyFor(ctx.Tier)
	if ctx.Heat > policy.MaxMissionHeat {
		return GuardResult{
			Allowed: false,
			Reason: fmt.Sprintf("%s crackdown caps mission heat at %s (mission heat %s)",
				policy.Tier, formatHeat(policy.MaxMissionHeat), formatHeat(ctx.Heat)),
		}
	}
	return GuardResult{Allowed: true}
}

func formatHeat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
