package memory

import (
	"sync"

	"github.com/example/syndicate/internal/ports/secondary"
)

// Economy implements secondary.Economy as a single wallet.
type Economy struct {
	mu    sync.Mutex
	funds float64
}

// NewEconomy creates a wallet holding funds.
func NewEconomy(funds float64) *Economy {
	return &Economy{funds: funds}
}

// Funds returns the current balance.
func (e *Economy) Funds() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.funds
}

// AdjustFunds adds delta to the balance. The balance may go negative.
func (e *Economy) AdjustFunds(delta float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.funds += delta
}

var _ secondary.Economy = (*Economy)(nil)
