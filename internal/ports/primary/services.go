package primary

import (
	"context"

	"github.com/example/syndicate/internal/core/catalog"
	"github.com/example/syndicate/internal/core/crackdown"
	"github.com/example/syndicate/internal/core/garage"
	"github.com/example/syndicate/internal/core/mission"
	"github.com/example/syndicate/internal/core/notoriety"
)

// GarageService defines the primary port for vehicle maintenance.
// Vehicles out on a mission cannot be touched.
type GarageService interface {
	// Vehicles returns copies of the stored vehicles.
	Vehicles(ctx context.Context) []garage.Vehicle

	// Repair restores a vehicle to full condition for a fee.
	Repair(ctx context.Context, vehicleID string) (*GarageResponse, error)

	// InstallMod buys and fits a mod.
	InstallMod(ctx context.Context, req InstallModRequest) (*GarageResponse, error)

	// Sell removes a vehicle for a share of its value.
	Sell(ctx context.Context, vehicleID string) (*GarageResponse, error)

	// Scrap removes a vehicle for flat salvage.
	Scrap(ctx context.Context, vehicleID string) (*GarageResponse, error)
}

// InstallModRequest contains parameters for installing a mod.
type InstallModRequest struct {
	VehicleID string
	ModID     catalog.ModID
}

// GarageResponse reports a garage operation.
type GarageResponse struct {
	Vehicle    garage.Vehicle
	FundsDelta float64
	Funds      float64
}

// NotorietyService defines the primary port for the crew's reputation.
type NotorietyService interface {
	Value(ctx context.Context) float64
	Band(ctx context.Context) notoriety.Band
	Adjust(ctx context.Context, delta float64, reason string) float64
}

// CrackdownService defines the primary port for the crackdown policy.
type CrackdownService interface {
	// Tier returns the last synced tier.
	Tier(ctx context.Context) crackdown.Tier

	// Sync reads the heat system's tier and applies a transition if it changed.
	Sync(ctx context.Context) TierChange

	// ApplyRestrictions flags missions whose heat exceeds the current cap.
	// Returns the number of restricted missions.
	ApplyRestrictions(ctx context.Context, missions []*mission.Mission) int
}

// TierChange reports the result of a crackdown sync.
type TierChange struct {
	From           crackdown.Tier
	To             crackdown.Tier
	Changed        bool
	NotorietyNudge float64
}
