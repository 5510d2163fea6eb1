package mission

import (
	"fmt"
	"math"
	"strings"

	"github.com/example/syndicate/internal/core/crackdown"
	"github.com/example/syndicate/internal/core/crew"
)

// DefaultTemplates returns the static contract board.
func DefaultTemplates() []Template {
	return []Template{
		{
			ID:           "corner-store-sweep",
			Name:         "Corner store sweep",
			Description:  "Lean on the corner stores that stopped paying.",
			Category:     CategoryStandard,
			Difficulty:   1,
			BasePayout:   600,
			BaseHeat:     0.5,
			BaseDuration: 30,
		},
		{
			ID:           "warehouse-lift",
			Name:         "Warehouse lift",
			Description:  "Empty a bonded warehouse before the night shift changes.",
			Category:     CategoryStandard,
			Difficulty:   2,
			BasePayout:   1500,
			BaseHeat:     1.5,
			BaseDuration: 60,
		},
		{
			ID:           "dockside-auto-theft",
			Name:         "Dockside auto theft",
			Description:  "A shipment of imports sits unguarded on pier nine.",
			Category:     CategoryStandard,
			Difficulty:   2,
			BasePayout:   900,
			BaseHeat:     2,
			BaseDuration: 50,
			VehicleReward: &VehicleReward{
				Model:        "Vantage GT",
				TopSpeed:     8,
				Acceleration: 7,
				Handling:     6,
				HeatRating:   3,
				Value:        14000,
			},
		},
		{
			ID:           "armored-car-intercept",
			Name:         "Armored car intercept",
			Description:  "Hit the payroll run between the bank and the plant.",
			Category:     CategoryStandard,
			Difficulty:   3,
			BasePayout:   3500,
			BaseHeat:     3,
			BaseDuration: 90,
		},
		{
			ID:              "gallery-night",
			Name:            "Gallery night",
			Description:     "Swap the centrepiece during the opening reception.",
			Category:        CategoryStandard,
			Difficulty:      4,
			BasePayout:      6000,
			BaseHeat:        4,
			BaseDuration:    120,
			PointOfInterest: "Meridian Gallery",
		},
	}
}

// DistrictContract is the district data a district contract is built from.
type DistrictContract struct {
	DistrictID        string
	DistrictName      string
	Wealth            int
	Security          int
	Influence         int
	IntelLevel        int
	CrackdownPressure int
	PointOfInterest   string
}

// DistrictTemplate builds a contract against a district point of interest.
// Richer districts pay more, better policed ones are harder and hotter.
// Intel lowers difficulty and raises the odds, influence sweetens the payout,
// and crackdown pressure adds heat and patrol time.
func DistrictTemplate(d DistrictContract) Template {
	security := clampInt(d.Security, 1, 5)
	wealth := clampInt(d.Wealth, 1, 5)
	influence := clampInt(d.Influence, 0, 10)
	intel := clampInt(d.IntelLevel, 0, 10)
	pressure := clampInt(d.CrackdownPressure, 0, 10)
	poi := d.PointOfInterest
	if poi == "" {
		poi = d.DistrictName + " strip"
	}

	difficulty := clampInt(security-intel/4, 1, 5)
	payout := float64(800 + wealth*600 + security*250)
	return Template{
		ID:                fmt.Sprintf("district-%s-%s", d.DistrictID, slug(poi)),
		Name:              fmt.Sprintf("%s job", poi),
		Description:       fmt.Sprintf("Work the %s in %s.", poi, d.DistrictName),
		Category:          CategoryDistrict,
		Difficulty:        difficulty,
		BasePayout:        math.Round(payout * (1 + 0.04*float64(influence))),
		BaseHeat:          0.5 + float64(security)*0.5 + float64(pressure)*0.25,
		BaseDuration:      float64(40 + security*15 + pressure*5),
		BaseSuccessChance: clampChance(DefaultSuccessChance(difficulty, 0) + 0.02*float64(intel)),
		DistrictID:        d.DistrictID,
		PointOfInterest:   poi,
	}
}

// CrackdownOperationTemplate builds a heat-relief contract for an elevated tier.
// Returns false under calm.
func CrackdownOperationTemplate(tier crackdown.Tier) (Template, bool) {
	policy := crackdown.PolicyFor(tier)
	if policy.Pressure == 0 {
		return Template{}, false
	}
	return Template{
		ID:           fmt.Sprintf("crackdown-op-%s", tier),
		Name:         "Scatter the task force",
		Description:  "Feed the task force a false trail and burn their informants.",
		Category:     CategoryCrackdownOperation,
		Difficulty:   2 + policy.Pressure,
		BasePayout:   400,
		BaseHeat:     0.5,
		BaseDuration: 45,
		CrackdownEffect: &CrackdownEffect{
			HeatRelief:     2 + float64(policy.Pressure),
			FailurePenalty: 1 + float64(policy.Pressure),
		},
		IgnoreCrackdown: true,
	}, true
}

// StorylineStep is a crew storyline beat offered as a contract.
type StorylineStep struct {
	ID          string
	CrewID      string
	CrewName    string
	Title       string
	Description string
	Difficulty  int
	Payout      float64
}

// CrewLoyaltyTemplate builds a crew-loyalty contract from a storyline step.
func CrewLoyaltyTemplate(step StorylineStep) Template {
	difficulty := step.Difficulty
	if difficulty < 1 {
		difficulty = 1
	}
	return Template{
		ID:           fmt.Sprintf("loyalty-%s-%s", step.CrewID, step.ID),
		Name:         step.Title,
		Description:  step.Description,
		Category:     CategoryCrewLoyalty,
		Difficulty:   difficulty,
		BasePayout:   step.Payout,
		BaseHeat:     1,
		BaseDuration: float64(30 + difficulty*15),
		Storyline:    &StorylineLink{CrewID: step.CrewID, StepID: step.ID},
	}
}

// FollowUpTemplate builds the rescue or medical contract for a fallout record.
// Recovered records produce no follow-up.
func FollowUpTemplate(record crew.FalloutRecord, sourceDifficulty int) (Template, bool) {
	recovery := &FalloutRecovery{CrewID: record.CrewID, CrewName: record.CrewName, Status: record.Status}
	switch record.Status {
	case crew.FalloutCaptured:
		return Template{
			ID:              "rescue-" + record.CrewID,
			Name:            fmt.Sprintf("Rescue %s", record.CrewName),
			Description:     fmt.Sprintf("%s is held at the precinct. Get them out before the arraignment.", record.CrewName),
			Category:        CategoryFalloutRecovery,
			Difficulty:      int(math.Max(2, float64(sourceDifficulty))),
			BasePayout:      300,
			BaseHeat:        1.5,
			BaseDuration:    60,
			FalloutRecovery: recovery,
		}, true
	case crew.FalloutInjured:
		return Template{
			ID:              "medical-" + record.CrewID,
			Name:            fmt.Sprintf("Medical run for %s", record.CrewName),
			Description:     fmt.Sprintf("Find a back-room doctor to patch up %s.", record.CrewName),
			Category:        CategoryFalloutRecovery,
			Difficulty:      1,
			BasePayout:      150,
			BaseHeat:        0.5,
			BaseDuration:    30,
			FalloutRecovery: recovery,
		}, true
	default:
		return Template{}, false
	}
}

func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
