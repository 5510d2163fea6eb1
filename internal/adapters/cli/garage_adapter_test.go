package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/example/syndicate/internal/core/catalog"
	"github.com/example/syndicate/internal/core/garage"
	"github.com/example/syndicate/internal/ports/primary"
)

func TestGarageAdapter_List(t *testing.T) {
	var buf bytes.Buffer
	service := &mockGarageService{vehicles: []garage.Vehicle{
		{ID: "veh-1", Model: "Brennan Sedan", Condition: 0.5, Value: 9000, Mods: []catalog.ModID{catalog.ModQuietExhaust}},
		{ID: "veh-2", Model: "Kestrel Van", Condition: 1, Value: 6500, InUse: true},
	}}
	adapter := NewGarageAdapter(service, &buf)

	adapter.List(context.Background())

	out := buf.String()
	for _, want := range []string{"Brennan Sedan", "█████░░░░░", "$9,000", "quiet-exhaust", "veh-2*"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestGarageAdapter_ListEmpty(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewGarageAdapter(&mockGarageService{}, &buf)

	adapter.List(context.Background())

	if !strings.Contains(buf.String(), "Garage is empty") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestGarageAdapter_Operations(t *testing.T) {
	respond := func(id string, delta float64) (*primary.GarageResponse, error) {
		return &primary.GarageResponse{Vehicle: garage.Vehicle{ID: id}, FundsDelta: delta, Funds: 5000 + delta}, nil
	}
	service := &mockGarageService{
		repairFn: func(ctx context.Context, id string) (*primary.GarageResponse, error) { return respond(id, -200) },
		modFn: func(ctx context.Context, req primary.InstallModRequest) (*primary.GarageResponse, error) {
			return respond(req.VehicleID, -900)
		},
		sellFn:  func(ctx context.Context, id string) (*primary.GarageResponse, error) { return respond(id, 4320) },
		scrapFn: func(ctx context.Context, id string) (*primary.GarageResponse, error) { return respond(id, 250) },
	}

	tests := []struct {
		name string
		run  func(a *GarageAdapter) error
		want string
	}{
		{
			name: "repair",
			run:  func(a *GarageAdapter) error { return a.Repair(context.Background(), "veh-1") },
			want: "✓ Repaired veh-1 for $200 (funds $4,800)",
		},
		{
			name: "install mod",
			run:  func(a *GarageAdapter) error { return a.InstallMod(context.Background(), "veh-1", "quiet-exhaust") },
			want: "✓ Installed quiet-exhaust on veh-1 for $900 (funds $4,100)",
		},
		{
			name: "sell",
			run:  func(a *GarageAdapter) error { return a.Sell(context.Background(), "veh-1") },
			want: "✓ Sold veh-1 for $4,320 (funds $9,320)",
		},
		{
			name: "scrap",
			run:  func(a *GarageAdapter) error { return a.Scrap(context.Background(), "veh-2") },
			want: "✓ Scrapped veh-2 for $250 (funds $5,250)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			adapter := NewGarageAdapter(service, &buf)

			if err := tt.run(adapter); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("expected %q, got %q", tt.want, buf.String())
			}
		})
	}

	if service.lastModReq.ModID != catalog.ModQuietExhaust {
		t.Errorf("expected mod id passed through, got %q", service.lastModReq.ModID)
	}
}

func TestGarageAdapter_RepairError(t *testing.T) {
	var buf bytes.Buffer
	service := &mockGarageService{
		repairFn: func(ctx context.Context, id string) (*primary.GarageResponse, error) {
			return nil, errors.New("vehicle veh-1 is out on a mission")
		},
	}
	adapter := NewGarageAdapter(service, &buf)

	err := adapter.Repair(context.Background(), "veh-1")
	if err == nil || err.Error() != "vehicle veh-1 is out on a mission" {
		t.Errorf("expected guard error, got %v", err)
	}
}

func TestGarageAdapter_Mods(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewGarageAdapter(&mockGarageService{}, &buf)

	adapter.Mods()

	out := buf.String()
	if !strings.Contains(out, "turbo-kit") || !strings.Contains(out, "$1,800") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if strings.Index(out, "false-plates") > strings.Index(out, "turbo-kit") {
		t.Error("expected mods ordered by cost")
	}
}
