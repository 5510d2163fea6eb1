// Package player holds the player profile consulted by the modifier pipeline.
package player

import "github.com/example/syndicate/internal/core/catalog"

// Profile is the player's skill levels and equipped gear.
type Profile struct {
	Name   string
	Skills map[catalog.SkillID]int
	Gear   []catalog.GearID
}

// SkillLevel returns the level of skill id, or the skill's baseline when untrained.
func (p *Profile) SkillLevel(id catalog.SkillID) int {
	if p != nil {
		if lvl, ok := p.Skills[id]; ok {
			return lvl
		}
	}
	if s, ok := catalog.LookupSkill(id); ok {
		return s.Baseline
	}
	return 0
}

// Clone returns a deep copy of the profile.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	out := &Profile{Name: p.Name, Skills: make(map[catalog.SkillID]int, len(p.Skills))}
	for k, v := range p.Skills {
		out.Skills[k] = v
	}
	out.Gear = append([]catalog.GearID(nil), p.Gear...)
	return out
}
