// Package garage contains the vehicle model and the pure rules for assigning,
// maintaining, upgrading and disposing of garage vehicles.
package garage

import (
	"math"

	"github.com/example/syndicate/internal/core/catalog"
)

const (
	// OperationalThreshold is the condition at or below which a vehicle cannot roll out.
	OperationalThreshold = 0.05
	// RepairCostPerPoint is the cost of restoring a full point of condition.
	RepairCostPerPoint = 2000.0
	// SaleFactor is the fraction of condition-scaled value a buyer pays.
	SaleFactor = 0.6
	// ScrapValue is the flat salvage paid for scrapping.
	ScrapValue = 250.0
	// MaxVehicleHeat bounds accumulated vehicle heat.
	MaxVehicleHeat = 10.0
)

// Vehicle is a garage vehicle. Stats are on a 0-10 scale, Condition on 0-1.
type Vehicle struct {
	ID           string
	Model        string
	TopSpeed     float64
	Acceleration float64
	Handling     float64
	HeatRating   float64
	Condition    float64
	Heat         float64
	Value        float64
	Mods         []catalog.ModID
	InUse        bool
}

// Operational reports whether the vehicle is in driveable condition.
func (v *Vehicle) Operational() bool {
	return v.Condition > OperationalThreshold
}

// Available reports whether the vehicle can be assigned right now.
func (v *Vehicle) Available() bool {
	return !v.InUse && v.Operational()
}

// HasMod reports whether mod id is installed.
func (v *Vehicle) HasMod(id catalog.ModID) bool {
	for _, m := range v.Mods {
		if m == id {
			return true
		}
	}
	return false
}

// Snapshot captures pre-mission vehicle state.
type Snapshot struct {
	ID        string
	Model     string
	Condition float64
	Heat      float64
}

// Snapshot returns the vehicle's current snapshot.
func (v *Vehicle) Snapshot() Snapshot {
	return Snapshot{ID: v.ID, Model: v.Model, Condition: v.Condition, Heat: v.Heat}
}

// SelectFirstAvailable returns the first idle, operational vehicle, or nil.
func SelectFirstAvailable(vehicles []*Vehicle) *Vehicle {
	for _, v := range vehicles {
		if v != nil && v.Available() {
			return v
		}
	}
	return nil
}

// WearResult is the vehicle state after post-mission wear.
type WearResult struct {
	Condition float64
	Heat      float64
}

// ApplyWear computes condition and heat after wear and heat gain, both clamped.
func ApplyWear(condition, heat, wear, heatGain float64) WearResult {
	return WearResult{
		Condition: clamp(condition-wear, 0, 1),
		Heat:      clamp(heat+heatGain, 0, MaxVehicleHeat),
	}
}

// RepairCost returns the cost of restoring the vehicle to full condition.
func RepairCost(condition float64) float64 {
	return math.Round((1 - clamp(condition, 0, 1)) * RepairCostPerPoint)
}

// SaleValue returns what a buyer pays for the vehicle.
func SaleValue(value, condition float64) float64 {
	return math.Round(value * clamp(condition, 0, 1) * SaleFactor)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
