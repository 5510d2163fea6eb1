// Package cli provides thin CLI adapters that translate between CLI concerns
// and the engine's primary ports. Adapters format output; game rules live in
// the services.
package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/example/syndicate/internal/core/crackdown"
	"github.com/example/syndicate/internal/core/crew"
	"github.com/example/syndicate/internal/core/mission"
)

// Money formats v as whole dollars with thousands separators.
func Money(v float64) string {
	r := math.Round(v)
	if r < 0 {
		return "-$" + humanize.Commaf(-r)
	}
	return "$" + humanize.Commaf(r)
}

// Percent formats a [0,1] fraction as a whole percentage.
func Percent(v float64) string {
	return fmt.Sprintf("%.0f%%", v*100)
}

// OutcomeLabel colours a mission outcome.
func OutcomeLabel(o mission.Outcome) string {
	switch o {
	case mission.OutcomeSuccess:
		return color.New(color.FgGreen, color.Bold).Sprint("SUCCESS")
	case mission.OutcomeFailure:
		return color.New(color.FgRed, color.Bold).Sprint("FAILURE")
	default:
		return color.New(color.FgYellow).Sprint("PENDING")
	}
}

// TierLabel colours a crackdown tier.
func TierLabel(t crackdown.Tier) string {
	switch t {
	case crackdown.TierLockdown:
		return color.New(color.FgRed).Sprint(string(t))
	case crackdown.TierAlert:
		return color.New(color.FgYellow).Sprint(string(t))
	default:
		return color.New(color.FgGreen).Sprint(string(t))
	}
}

// StatusLabel colours a crew member's status.
func StatusLabel(s crew.Status) string {
	switch s {
	case crew.StatusIdle:
		return color.New(color.FgGreen).Sprint(string(s))
	case crew.StatusOnMission:
		return color.New(color.FgCyan).Sprint(string(s))
	default:
		return color.New(color.FgRed).Sprint(string(s))
	}
}

// ConditionBar renders a vehicle condition as a ten-cell gauge.
func ConditionBar(c float64) string {
	filled := int(math.Round(math.Max(0, math.Min(1, c)) * 10))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
	switch {
	case c < 0.3:
		return color.New(color.FgRed).Sprint(bar)
	case c < 0.7:
		return color.New(color.FgYellow).Sprint(bar)
	default:
		return color.New(color.FgGreen).Sprint(bar)
	}
}
