package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/example/syndicate/internal/core/catalog"
	"github.com/example/syndicate/internal/ports/primary"
)

// GarageAdapter translates CLI operations to GarageService calls.
type GarageAdapter struct {
	service primary.GarageService
	out     io.Writer
}

// NewGarageAdapter creates a new GarageAdapter with the given service.
func NewGarageAdapter(service primary.GarageService, out io.Writer) *GarageAdapter {
	return &GarageAdapter{
		service: service,
		out:     out,
	}
}

// List lists the stored vehicles.
func (a *GarageAdapter) List(ctx context.Context) {
	vehicles := a.service.Vehicles(ctx)
	if len(vehicles) == 0 {
		fmt.Fprintln(a.out, "Garage is empty")
		return
	}

	fmt.Fprintf(a.out, "\n%-16s %-18s %-12s %10s %s\n", "ID", "MODEL", "CONDITION", "VALUE", "MODS")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────────")
	for _, v := range vehicles {
		mods := make([]string, 0, len(v.Mods))
		for _, m := range v.Mods {
			mods = append(mods, string(m))
		}
		id := v.ID
		if v.InUse {
			id += "*"
		}
		fmt.Fprintf(a.out, "%-16s %-18s %s %10s %s\n", id, v.Model, ConditionBar(v.Condition), Money(v.Value), strings.Join(mods, ", "))
	}
	fmt.Fprintln(a.out)
}

// Repair restores a vehicle to full condition.
func (a *GarageAdapter) Repair(ctx context.Context, vehicleID string) error {
	resp, err := a.service.Repair(ctx, vehicleID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Repaired %s for %s (funds %s)\n", resp.Vehicle.ID, Money(-resp.FundsDelta), Money(resp.Funds))
	return nil
}

// InstallMod fits a mod to a vehicle.
func (a *GarageAdapter) InstallMod(ctx context.Context, vehicleID, modID string) error {
	resp, err := a.service.InstallMod(ctx, primary.InstallModRequest{
		VehicleID: vehicleID,
		ModID:     catalog.ModID(modID),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Installed %s on %s for %s (funds %s)\n", modID, resp.Vehicle.ID, Money(-resp.FundsDelta), Money(resp.Funds))
	return nil
}

// Sell sells a vehicle.
func (a *GarageAdapter) Sell(ctx context.Context, vehicleID string) error {
	resp, err := a.service.Sell(ctx, vehicleID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Sold %s for %s (funds %s)\n", resp.Vehicle.ID, Money(resp.FundsDelta), Money(resp.Funds))
	return nil
}

// Scrap scraps a vehicle for salvage.
func (a *GarageAdapter) Scrap(ctx context.Context, vehicleID string) error {
	resp, err := a.service.Scrap(ctx, vehicleID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Scrapped %s for %s (funds %s)\n", resp.Vehicle.ID, Money(resp.FundsDelta), Money(resp.Funds))
	return nil
}

// Mods lists the mod catalog.
func (a *GarageAdapter) Mods() {
	fmt.Fprintf(a.out, "\n%-18s %8s\n", "MOD", "COST")
	for _, m := range catalog.Mods() {
		fmt.Fprintf(a.out, "%-18s %8s\n", m.ID, Money(m.Cost))
	}
	fmt.Fprintln(a.out)
}
