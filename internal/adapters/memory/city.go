package memory

import (
	"fmt"
	"math"
	"strings"
	"sync"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/example/syndicate/internal/ports/secondary"
)

// DefaultDistrictNames is the city used when no names are configured.
var DefaultDistrictNames = []string{"Harbor", "Old Town", "Financial Row", "Ironworks", "Hillcrest", "Neon Strip"}

var pointsOfInterest = []string{
	"container yard", "pawn shop", "jewelry exchange", "rail depot",
	"casino", "art gallery", "parking garage", "private bank",
	"night market", "chop shop", "pharmacy", "grand hotel",
}

const (
	// ControlInfluence is the influence at which a district counts as controlled.
	ControlInfluence = 5

	maxStanding     = 10
	poisPerDistrict = 2
	districtSpacing = 1.7
)

// City implements secondary.City over procedurally profiled districts.
type City struct {
	mu         sync.Mutex
	districts  []secondary.District
	milestones []string
}

// NewCity lays out one district per name. Wealth, security and points of
// interest are sampled from simplex noise, so a seed always yields the same city.
func NewCity(seed int64, names []string) *City {
	if len(names) == 0 {
		names = DefaultDistrictNames
	}

	wealthNoise := opensimplex.NewNormalized(seed)
	securityNoise := opensimplex.NewNormalized(seed + 1)
	poiNoise := opensimplex.NewNormalized(seed + 2)

	c := &City{}
	for i, name := range names {
		x := float64(i) * districtSpacing
		wealth := octaveNoise(wealthNoise, x, 0.5, 3, 0.9, 0.5)
		// Rich districts are policed harder.
		security := octaveNoise(securityNoise, x, 1.5, 3, 0.9, 0.5)*0.6 + wealth*0.4

		c.districts = append(c.districts, secondary.District{
			ID:               districtID(name, i),
			Name:             name,
			Wealth:           rating(wealth),
			Security:         rating(security),
			PointsOfInterest: pickPOIs(poiNoise, x),
		})
	}
	return c
}

// Districts returns copies of every district.
func (c *City) Districts() []secondary.District {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]secondary.District, 0, len(c.districts))
	for _, d := range c.districts {
		out = append(out, copyDistrict(d))
	}
	return out
}

// District returns a copy of the district with id.
func (c *City) District(id string) (secondary.District, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d := c.find(id); d != nil {
		return copyDistrict(*d), true
	}
	return secondary.District{}, false
}

// AdjustIntelLevel shifts a district's intel, bounded to [0, 10].
func (c *City) AdjustIntelLevel(id string, delta int) {
	c.adjust(id, func(d *secondary.District) { d.IntelLevel = bound(d.IntelLevel + delta) })
}

// AdjustInfluence shifts a district's influence, bounded to [0, 10].
// Crossing ControlInfluence for the first time records a milestone.
func (c *City) AdjustInfluence(id string, delta int) {
	c.adjust(id, func(d *secondary.District) {
		before := d.Influence
		d.Influence = bound(d.Influence + delta)
		if before < ControlInfluence && d.Influence >= ControlInfluence {
			c.recordMilestone(fmt.Sprintf("%s under control", d.Name))
		}
	})
}

// AdjustCrackdownPressure shifts a district's crackdown pressure, bounded to [0, 10].
func (c *City) AdjustCrackdownPressure(id string, delta int) {
	c.adjust(id, func(d *secondary.District) { d.CrackdownPressure = bound(d.CrackdownPressure + delta) })
}

// CampaignSnapshot reports control progress across the city.
func (c *City) CampaignSnapshot() secondary.CampaignSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return secondary.CampaignSnapshot{
		DistrictsTotal:      len(c.districts),
		DistrictsControlled: c.controlledLocked(),
		Milestones:          append([]string(nil), c.milestones...),
	}
}

// Controlled returns the number of controlled districts.
func (c *City) Controlled() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controlledLocked()
}

func (c *City) controlledLocked() int {
	n := 0
	for _, d := range c.districts {
		if d.Influence >= ControlInfluence {
			n++
		}
	}
	return n
}

func (c *City) adjust(id string, fn func(d *secondary.District)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d := c.find(id); d != nil {
		fn(d)
	}
}

func (c *City) recordMilestone(m string) {
	for _, existing := range c.milestones {
		if existing == m {
			return
		}
	}
	c.milestones = append(c.milestones, m)
}

func (c *City) find(id string) *secondary.District {
	for i := range c.districts {
		if c.districts[i].ID == id {
			return &c.districts[i]
		}
	}
	return nil
}

func copyDistrict(d secondary.District) secondary.District {
	d.PointsOfInterest = append([]string(nil), d.PointsOfInterest...)
	return d
}

func districtID(name string, i int) string {
	slug := strings.ToLower(strings.Join(strings.Fields(name), "-"))
	if slug == "" {
		return fmt.Sprintf("district-%d", i+1)
	}
	return slug
}

// rating maps a normalized noise sample onto a 1-5 rating.
func rating(v float64) int {
	r := 1 + int(v*5)
	if r < 1 {
		return 1
	}
	if r > 5 {
		return 5
	}
	return r
}

func bound(v int) int {
	if v < 0 {
		return 0
	}
	if v > maxStanding {
		return maxStanding
	}
	return v
}

func pickPOIs(noise opensimplex.Noise, x float64) []string {
	used := make(map[int]bool, poisPerDistrict)
	out := make([]string, 0, poisPerDistrict)
	for j := 0; j < poisPerDistrict; j++ {
		idx := int(math.Abs(noise.Eval2(x, float64(j)*3.1))*float64(len(pointsOfInterest))) % len(pointsOfInterest)
		for used[idx] {
			idx = (idx + 1) % len(pointsOfInterest)
		}
		used[idx] = true
		out = append(out, pointsOfInterest[idx])
	}
	return out
}

// octaveNoise layers frequencies of normalized noise. The result stays in [0, 1).
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}

var _ secondary.City = (*City)(nil)
