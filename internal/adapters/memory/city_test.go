package memory

import (
	"reflect"
	"testing"
)

func TestNewCity_DeterministicFromSeed(t *testing.T) {
	a := NewCity(42, nil)
	b := NewCity(42, nil)

	if !reflect.DeepEqual(a.Districts(), b.Districts()) {
		t.Error("expected the same seed to produce the same city")
	}
}

func TestNewCity_DistrictProfiles(t *testing.T) {
	city := NewCity(7, []string{"Harbor", "Old Town", "Financial Row"})
	districts := city.Districts()

	if len(districts) != 3 {
		t.Fatalf("expected 3 districts, got %d", len(districts))
	}
	if districts[1].ID != "old-town" {
		t.Errorf("expected slug id 'old-town', got %q", districts[1].ID)
	}

	for _, d := range districts {
		if d.Wealth < 1 || d.Wealth > 5 {
			t.Errorf("%s: wealth %d out of range", d.Name, d.Wealth)
		}
		if d.Security < 1 || d.Security > 5 {
			t.Errorf("%s: security %d out of range", d.Name, d.Security)
		}
		if len(d.PointsOfInterest) != poisPerDistrict {
			t.Errorf("%s: expected %d points of interest, got %d", d.Name, poisPerDistrict, len(d.PointsOfInterest))
		}
		if d.PointsOfInterest[0] == d.PointsOfInterest[1] {
			t.Errorf("%s: duplicate point of interest %q", d.Name, d.PointsOfInterest[0])
		}
	}
}

func TestNewCity_DefaultNames(t *testing.T) {
	city := NewCity(1, nil)

	if got := len(city.Districts()); got != len(DefaultDistrictNames) {
		t.Errorf("expected %d districts, got %d", len(DefaultDistrictNames), got)
	}
}

func TestCity_AdjustmentsAreBounded(t *testing.T) {
	city := NewCity(3, []string{"Harbor"})

	city.AdjustIntelLevel("harbor", 14)
	city.AdjustCrackdownPressure("harbor", -3)
	city.AdjustInfluence("nowhere", 5)

	d, ok := city.District("harbor")
	if !ok {
		t.Fatal("expected harbor district")
	}
	if d.IntelLevel != maxStanding {
		t.Errorf("expected intel capped at %d, got %d", maxStanding, d.IntelLevel)
	}
	if d.CrackdownPressure != 0 {
		t.Errorf("expected pressure floored at 0, got %d", d.CrackdownPressure)
	}
	if _, ok := city.District("nowhere"); ok {
		t.Error("expected unknown district lookup to fail")
	}
}

func TestCity_ControlMilestones(t *testing.T) {
	city := NewCity(3, []string{"Harbor", "Ironworks"})
	safehouse := NewSafehouse(2, city)

	for i := 0; i < ControlInfluence; i++ {
		city.AdjustInfluence("harbor", 1)
	}
	city.AdjustInfluence("harbor", -1)
	city.AdjustInfluence("harbor", 1)

	snap := city.CampaignSnapshot()
	if snap.DistrictsTotal != 2 || snap.DistrictsControlled != 1 {
		t.Errorf("unexpected snapshot %+v", snap)
	}
	if len(snap.Milestones) != 1 || snap.Milestones[0] != "Harbor under control" {
		t.Errorf("expected a single control milestone, got %v", snap.Milestones)
	}
	if got := safehouse.StorageCapacity(); got != 3 {
		t.Errorf("expected capacity 3 with one controlled district, got %d", got)
	}
}

func TestCity_DistrictsReturnsCopies(t *testing.T) {
	city := NewCity(9, []string{"Harbor"})

	ds := city.Districts()
	ds[0].PointsOfInterest[0] = "changed"
	ds[0].Influence = 9

	d, _ := city.District("harbor")
	if d.PointsOfInterest[0] == "changed" || d.Influence == 9 {
		t.Error("expected stored district to be unaffected")
	}
}

func TestSafehouse_WithoutCity(t *testing.T) {
	if got := NewSafehouse(-1, nil).StorageCapacity(); got != 0 {
		t.Errorf("expected negative base clamped to 0, got %d", got)
	}
	if got := NewSafehouse(4, nil).StorageCapacity(); got != 4 {
		t.Errorf("expected 4, got %d", got)
	}
}
