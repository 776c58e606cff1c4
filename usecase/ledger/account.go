package ledger

import (
	"github.com/radhian/ledger-engine/entity"
	"github.com/shopspring/decimal"
)

type account struct {
	client    uint16
	available decimal.Decimal
	held      decimal.Decimal
	total     decimal.Decimal
	locked    bool
	disputed  map[uint32]struct{}
}

func newAccount(client uint16) *account {
	return &account{
		client:    client,
		available: decimal.Zero,
		held:      decimal.Zero,
		total:     decimal.Zero,
		disputed:  make(map[uint32]struct{}),
	}
}

func (a *account) deposit(amount decimal.Decimal) {
	a.available = a.available.Add(amount)
	a.total = a.total.Add(amount)
}

// withdraw requires strictly more available funds than amount.
func (a *account) withdraw(amount decimal.Decimal) bool {
	if !a.available.GreaterThan(amount) {
		return false
	}
	a.available = a.available.Sub(amount)
	a.total = a.total.Sub(amount)
	return true
}

func (a *account) hold(txID uint32, amount decimal.Decimal) {
	a.available = a.available.Sub(amount)
	a.held = a.held.Add(amount)
	a.disputed[txID] = struct{}{}
}

func (a *account) release(txID uint32, amount decimal.Decimal) {
	a.held = a.held.Sub(amount)
	a.available = a.available.Add(amount)
	delete(a.disputed, txID)
}

// chargeback removes held funds for good. The lock is never cleared.
func (a *account) chargeback(txID uint32, amount decimal.Decimal) {
	a.held = a.held.Sub(amount)
	a.total = a.total.Sub(amount)
	delete(a.disputed, txID)
	a.locked = true
}

func (a *account) isDisputed(txID uint32) bool {
	_, ok := a.disputed[txID]
	return ok
}

func (a *account) summary() entity.ClientAccount {
	return entity.ClientAccount{
		Client:    a.client,
		Available: a.available,
		Held:      a.held,
		Total:     a.total,
		Locked:    a.locked,
	}
}
