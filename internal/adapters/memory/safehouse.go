package memory

import "github.com/example/syndicate/internal/ports/secondary"

// Safehouse implements secondary.Safehouse. Every controlled district adds a bay.
type Safehouse struct {
	base int
	city *City
}

// NewSafehouse creates a safehouse with base bays. city may be nil.
func NewSafehouse(base int, city *City) *Safehouse {
	if base < 0 {
		base = 0
	}
	return &Safehouse{base: base, city: city}
}

// StorageCapacity returns how many vehicles fit.
func (s *Safehouse) StorageCapacity() int {
	if s.city == nil {
		return s.base
	}
	return s.base + s.city.Controlled()
}

var _ secondary.Safehouse = (*Safehouse)(nil)
