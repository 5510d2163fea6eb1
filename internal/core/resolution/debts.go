// Package resolution contains the pure resolution planner: debt settlement,
// fallout evaluation and the effect plan that applies a mission outcome.
// This is part of the Functional Core - the shell executes the plan.
package resolution

import (
	"math"

	"github.com/example/syndicate/internal/core/mission"
)

// SettleDebts pays debts in queue order out of gross. Net payout never goes
// negative; a debt that cannot be paid in full stays queued with its remainder.
func SettleDebts(debts []mission.PendingDebt, gross float64) ([]mission.DebtSettlement, []mission.PendingDebt, float64) {
	net := math.Max(0, gross)
	var settlements []mission.DebtSettlement
	var remaining []mission.PendingDebt

	for _, d := range debts {
		pay := math.Min(d.Remaining, net)
		if pay > 0 {
			net -= pay
			d.Remaining -= pay
			settlements = append(settlements, mission.DebtSettlement{
				DebtID:    d.ID,
				Paid:      pay,
				Remaining: d.Remaining,
			})
		}
		if d.Remaining > 0 {
			remaining = append(remaining, d)
		}
	}
	return settlements, remaining, net
}
