package mission

// Clone returns a deep copy of m so callers can read it outside the state lock.
func (m *Mission) Clone() *Mission {
	if m == nil {
		return nil
	}
	out := *m
	if m.VehicleReward != nil {
		r := *m.VehicleReward
		out.VehicleReward = &r
	}
	if m.FalloutRecovery != nil {
		r := *m.FalloutRecovery
		out.FalloutRecovery = &r
	}
	if m.Storyline != nil {
		s := *m.Storyline
		out.Storyline = &s
	}
	if m.CrackdownEffect != nil {
		c := *m.CrackdownEffect
		out.CrackdownEffect = &c
	}
	if m.Assignment != nil {
		a := *m.Assignment
		a.CrewIDs = append([]string(nil), m.Assignment.CrewIDs...)
		a.CrewSnapshots = append(a.CrewSnapshots[:0:0], m.Assignment.CrewSnapshots...)
		a.Summaries = append([]string(nil), m.Assignment.Summaries...)
		if m.Assignment.VehicleSnapshot != nil {
			s := *m.Assignment.VehicleSnapshot
			a.VehicleSnapshot = &s
		}
		if m.Assignment.VehicleImpact != nil {
			vi := *m.Assignment.VehicleImpact
			a.VehicleImpact = &vi
		}
		out.Assignment = &a
	}
	if m.EventDeck != nil {
		out.EventDeck = make([]DeckEntry, len(m.EventDeck))
		for i, e := range m.EventDeck {
			e.Event = e.Event.clone()
			out.EventDeck[i] = e
		}
	}
	out.EventHistory = append(m.EventHistory[:0:0], m.EventHistory...)
	if m.PendingDecision != nil {
		p := PendingDecision{EventID: m.PendingDecision.EventID, Event: m.PendingDecision.Event.clone()}
		out.PendingDecision = &p
	}
	if m.PendingResolution != nil {
		p := *m.PendingResolution
		out.PendingResolution = &p
	}
	if m.Resolution != nil {
		r := m.Resolution.Clone()
		out.Resolution = &r
	}
	return &out
}

func (e EventDefinition) clone() EventDefinition {
	out := e
	if e.Choices != nil {
		out.Choices = make([]Choice, len(e.Choices))
		for i, c := range e.Choices {
			if c.Effect.FutureDebt != nil {
				d := *c.Effect.FutureDebt
				c.Effect.FutureDebt = &d
			}
			out.Choices[i] = c
		}
	}
	out.RiskTiers = append(e.RiskTiers[:0:0], e.RiskTiers...)
	out.CrackdownTiers = append(e.CrackdownTiers[:0:0], e.CrackdownTiers...)
	return out
}

// Clone returns a deep copy of the details.
func (d ResolutionDetails) Clone() ResolutionDetails {
	out := d
	out.Settlements = append(d.Settlements[:0:0], d.Settlements...)
	out.Fallout = append(d.Fallout[:0:0], d.Fallout...)
	out.FollowUps = append([]string(nil), d.FollowUps...)
	out.CrewDeltas = append(d.CrewDeltas[:0:0], d.CrewDeltas...)
	out.Notes = append([]string(nil), d.Notes...)
	if d.VehicleDelta != nil {
		v := *d.VehicleDelta
		out.VehicleDelta = &v
	}
	if d.VehicleReport != nil {
		r := *d.VehicleReport
		out.VehicleReport = &r
	}
	return out
}
