package app

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/example/syndicate/internal/core/catalog"
	"github.com/example/syndicate/internal/core/garage"
	"github.com/example/syndicate/internal/ports/primary"
	"github.com/example/syndicate/internal/ports/secondary"
)

// GarageServiceImpl implements the GarageService interface.
type GarageServiceImpl struct {
	state   *GameState
	economy secondary.Economy
	logger  zerolog.Logger
}

// NewGarageService creates a new GarageService with injected dependencies.
func NewGarageService(state *GameState, economy secondary.Economy, logger zerolog.Logger) *GarageServiceImpl {
	return &GarageServiceImpl{
		state:   state,
		economy: economy,
		logger:  logger,
	}
}

// Vehicles returns copies of the stored vehicles.
func (s *GarageServiceImpl) Vehicles(ctx context.Context) []garage.Vehicle {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	out := make([]garage.Vehicle, 0, len(s.state.Garage))
	for _, v := range s.state.Garage {
		out = append(out, *cloneVehicle(v))
	}
	return out
}

// Repair restores a vehicle to full condition for a fee.
func (s *GarageServiceImpl) Repair(ctx context.Context, vehicleID string) (*primary.GarageResponse, error) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	v := s.state.vehicleByID(vehicleID)
	guardCtx := garage.MaintenanceContext{
		VehicleID: vehicleID,
		Found:     v != nil,
		Funds:     s.economy.Funds(),
	}
	if v != nil {
		guardCtx.InUse = v.InUse
		guardCtx.Condition = v.Condition
	}
	if err := garage.CanRepair(guardCtx).Error(); err != nil {
		return nil, err
	}

	cost := garage.RepairCost(v.Condition)
	s.economy.AdjustFunds(-cost)
	v.Condition = 1

	s.logger.Info().Str("vehicle_id", v.ID).Float64("cost", cost).Msg("vehicle repaired")
	return s.response(v, -cost), nil
}

// InstallMod buys and fits a mod.
func (s *GarageServiceImpl) InstallMod(ctx context.Context, req primary.InstallModRequest) (*primary.GarageResponse, error) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	v := s.state.vehicleByID(req.VehicleID)
	mod, modFound := catalog.LookupMod(req.ModID)
	guardCtx := garage.UpgradeContext{
		VehicleID: req.VehicleID,
		Found:     v != nil,
		ModID:     req.ModID,
		ModFound:  modFound,
		Cost:      mod.Cost,
		Funds:     s.economy.Funds(),
	}
	if v != nil {
		guardCtx.InUse = v.InUse
		guardCtx.AlreadyInstalled = v.HasMod(req.ModID)
		guardCtx.ModCount = len(v.Mods)
	}
	if err := garage.CanInstallMod(guardCtx).Error(); err != nil {
		return nil, err
	}

	s.economy.AdjustFunds(-mod.Cost)
	v.Mods = append(v.Mods, mod.ID)

	s.logger.Info().Str("vehicle_id", v.ID).Str("mod", string(mod.ID)).Float64("cost", mod.Cost).Msg("vehicle mod installed")
	return s.response(v, -mod.Cost), nil
}

// Sell removes a vehicle for a share of its value.
func (s *GarageServiceImpl) Sell(ctx context.Context, vehicleID string) (*primary.GarageResponse, error) {
	return s.dispose(vehicleID, func(v *garage.Vehicle) float64 {
		return garage.SaleValue(v.Value, v.Condition)
	}, "vehicle sold")
}

// Scrap removes a vehicle for flat salvage.
func (s *GarageServiceImpl) Scrap(ctx context.Context, vehicleID string) (*primary.GarageResponse, error) {
	return s.dispose(vehicleID, func(*garage.Vehicle) float64 {
		return garage.ScrapValue
	}, "vehicle scrapped")
}

func (s *GarageServiceImpl) dispose(vehicleID string, price func(*garage.Vehicle) float64, msg string) (*primary.GarageResponse, error) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	v := s.state.vehicleByID(vehicleID)
	guardCtx := garage.DisposeContext{VehicleID: vehicleID, Found: v != nil}
	if v != nil {
		guardCtx.InUse = v.InUse
	}
	if err := garage.CanDispose(guardCtx).Error(); err != nil {
		return nil, err
	}

	amount := price(v)
	s.economy.AdjustFunds(amount)
	s.state.removeVehicle(v.ID)

	s.logger.Info().Str("vehicle_id", v.ID).Float64("amount", amount).Msg(msg)
	return s.response(v, amount), nil
}

func (s *GarageServiceImpl) response(v *garage.Vehicle, delta float64) *primary.GarageResponse {
	return &primary.GarageResponse{
		Vehicle:    *cloneVehicle(v),
		FundsDelta: delta,
		Funds:      s.economy.Funds(),
	}
}

// Ensure GarageServiceImpl implements the interface
var _ primary.GarageService = (*GarageServiceImpl)(nil)
