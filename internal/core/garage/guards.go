package garage

import (
	"fmt"

	"github.com/example/syndicate/internal/core/catalog"
)

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

// AssignContext provides context for vehicle assignment guards.
type AssignContext struct {
	VehicleID string
	Found     bool
	InUse     bool
	Condition float64
}

// CanAssign evaluates whether an explicitly requested vehicle can join a mission.
// Rules:
// - Vehicle must exist
// - Vehicle must not be in use
// - Vehicle must be operational
func CanAssign(ctx AssignContext) GuardResult {
	if !ctx.Found {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("vehicle %s not found", ctx.VehicleID)}
	}
	if ctx.InUse {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("vehicle %s is already in use", ctx.VehicleID)}
	}
	if ctx.Condition <= OperationalThreshold {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("vehicle %s is not operational (condition %.2f)", ctx.VehicleID, ctx.Condition),
		}
	}
	return GuardResult{Allowed: true}
}

// MaintenanceContext provides context for repair guards.
type MaintenanceContext struct {
	VehicleID string
	Found     bool
	InUse     bool
	Condition float64
	Funds     float64
}

// CanRepair evaluates whether a vehicle can be repaired.
// Rules:
// - Vehicle must exist and be parked
// - Vehicle must be damaged
// - Funds must cover the repair
func CanRepair(ctx MaintenanceContext) GuardResult {
	if r := parked(ctx.VehicleID, ctx.Found, ctx.InUse); !r.Allowed {
		return r
	}
	if ctx.Condition >= 1 {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("vehicle %s is already in full condition", ctx.VehicleID)}
	}
	if cost := RepairCost(ctx.Condition); ctx.Funds < cost {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("repairing vehicle %s costs %.0f, only %.0f available", ctx.VehicleID, cost, ctx.Funds),
		}
	}
	return GuardResult{Allowed: true}
}

// UpgradeContext provides context for mod installation guards.
type UpgradeContext struct {
	VehicleID        string
	Found            bool
	InUse            bool
	ModID            catalog.ModID
	ModFound         bool
	AlreadyInstalled bool
	ModCount         int
	Cost             float64
	Funds            float64
}

// CanInstallMod evaluates whether a mod can be installed.
// Rules:
// - Vehicle must exist and be parked
// - Mod must exist and not already be installed
// - Vehicle must have a free mod slot
// - Funds must cover the mod
func CanInstallMod(ctx UpgradeContext) GuardResult {
	if r := parked(ctx.VehicleID, ctx.Found, ctx.InUse); !r.Allowed {
		return r
	}
	if !ctx.ModFound {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("unknown vehicle mod %s", ctx.ModID)}
	}
	if ctx.AlreadyInstalled {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("vehicle %s already has %s", ctx.VehicleID, ctx.ModID)}
	}
	if ctx.ModCount >= catalog.MaxModsPerVehicle {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("vehicle %s has no free mod slots (max %d)", ctx.VehicleID, catalog.MaxModsPerVehicle),
		}
	}
	if ctx.Funds < ctx.Cost {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("%s costs %.0f, only %.0f available", ctx.ModID, ctx.Cost, ctx.Funds),
		}
	}
	return GuardResult{Allowed: true}
}

// DisposeContext provides context for sell/scrap guards.
type DisposeContext struct {
	VehicleID string
	Found     bool
	InUse     bool
}

// CanDispose evaluates whether a vehicle can be sold or scrapped.
func CanDispose(ctx DisposeContext) GuardResult {
	return parked(ctx.VehicleID, ctx.Found, ctx.InUse)
}

func parked(id string, found, inUse bool) GuardResult {
	if !found {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("vehicle %s not found", id)}
	}
	if inUse {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("vehicle %s is out on a mission", id)}
	}
	return GuardResult{Allowed: true}
}
