package ledger

import (
	"sync"

	"github.com/corebank/corebank/internal/money"
)

// account is the single mutable balance cell for one account. Every
// read-modify-write of balance happens with mu held; the transfer engine
// additionally relies on mu when locking two accounts in canonical order.
type account struct {
	mu sync.Mutex

	number     string
	customerID string
	kind       AccountType
	policy     AccountPolicy
	balance    money.Money
}

// applyDeposit adds amount to the balance. Callers must hold mu.
func (a *account) applyDeposit(amount money.Money) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// applyWithdraw subtracts amount from the balance, keeping it non-negative.
// The minimum-balance policy is advisory and deliberately not checked here.
// Callers must hold mu.
func (a *account) applyWithdraw(amount money.Money) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if a.balance.LessThan(amount) {
		return ErrInsufficientBalance
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// interest computes balance * rate / 100 at the fixed rounding rule. It has
// no side effect; the lock only guarantees a torn-free balance read.
func (a *account) interest() money.Money {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance.Percent(a.policy.InterestRate)
}

// snapshot returns a value copy safe to hand outside the ledger.
func (a *account) snapshot() Account {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Account{
		Number:     a.number,
		CustomerID: a.customerID,
		Type:       a.kind,
		Balance:    a.balance,
	}
}
