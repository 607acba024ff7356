// Package ledger implements the concurrent account ledger: customer and
// account registries, deposits, withdrawals, atomic two-account transfers and
// the append-only transaction log. It is the unit of consistency; everything
// above it is transport and wiring.
package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/corebank/corebank/internal/money"
)

// Ledger owns the customer and account collections and the transaction log.
// Map membership is guarded by mu; each account's balance is guarded by the
// account's own mutex so unrelated accounts never contend.
type Ledger struct {
	mu        sync.RWMutex
	customers map[string]Customer
	accounts  map[string]*account

	log *TransactionLog
	ids IDSource
	now func() time.Time
}

// Option customises a Ledger at construction.
type Option func(*Ledger)

// WithClock overrides the timestamp source. Used by tests that need
// deterministic transaction timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// New creates an empty ledger fed by the given id source.
func New(ids IDSource, opts ...Option) *Ledger {
	l := &Ledger{
		customers: make(map[string]Customer),
		accounts:  make(map[string]*account),
		log:       NewTransactionLog(),
		ids:       ids,
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// RegisterCustomer stores a pre-validated customer. Field validation is the
// caller's responsibility; the ledger only enforces id uniqueness.
func (l *Ledger) RegisterCustomer(_ context.Context, c Customer) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.customers[c.ID]; exists {
		return ErrDuplicateCustomer
	}
	l.customers[c.ID] = c
	return nil
}

// CustomerByID fetches a registered customer.
func (l *Ledger) CustomerByID(_ context.Context, id string) (Customer, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	c, ok := l.customers[id]
	if !ok {
		return Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

// OpenAccount allocates a fresh account number for the customer and inserts
// the account with its initial balance. The new account is visible to every
// subsequent lookup.
func (l *Ledger) OpenAccount(_ context.Context, customerID string, kind AccountType, initial money.Money) (string, error) {
	policy, err := PolicyFor(kind)
	if err != nil {
		return "", err
	}
	if initial.IsNegative() {
		return "", ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.customers[customerID]; !ok {
		return "", ErrCustomerNotFound
	}

	number := l.ids.AccountNo()
	for {
		if _, taken := l.accounts[number]; !taken {
			break
		}
		number = l.ids.AccountNo()
	}

	l.accounts[number] = &account{
		number:     number,
		customerID: customerID,
		kind:       kind,
		policy:     policy,
		balance:    initial,
	}
	return number, nil
}

// Deposit credits the account and logs the event, returning the new balance.
// The balance mutation and the log append happen under the account mutex so
// no observer sees one without the other.
func (l *Ledger) Deposit(_ context.Context, accountNo string, amount money.Money) (money.Money, error) {
	acc, err := l.lookup(accountNo)
	if err != nil {
		return money.Zero(), err
	}

	acc.mu.Lock()
	defer acc.mu.Unlock()
	if err := acc.applyDeposit(amount); err != nil {
		return money.Zero(), err
	}
	l.log.Append(Transaction{
		ID:        l.ids.TransactionID(),
		Amount:    amount,
		AccountNo: accountNo,
		Timestamp: l.now(),
		Kind:      KindDeposit,
	})
	return acc.balance, nil
}

// Withdraw debits the account and logs the event, returning the new balance.
func (l *Ledger) Withdraw(_ context.Context, accountNo string, amount money.Money) (money.Money, error) {
	acc, err := l.lookup(accountNo)
	if err != nil {
		return money.Zero(), err
	}

	acc.mu.Lock()
	defer acc.mu.Unlock()
	if err := acc.applyWithdraw(amount); err != nil {
		return money.Zero(), err
	}
	l.log.Append(Transaction{
		ID:        l.ids.TransactionID(),
		Amount:    amount,
		AccountNo: accountNo,
		Timestamp: l.now(),
		Kind:      KindWithdraw,
	})
	return acc.balance, nil
}

// GetAccount returns a point-in-time snapshot of the account.
func (l *Ledger) GetAccount(_ context.Context, accountNo string) (Account, error) {
	acc, err := l.lookup(accountNo)
	if err != nil {
		return Account{}, err
	}
	return acc.snapshot(), nil
}

// CalculateInterest returns the interest the account would currently earn:
// balance * rate / 100 at the fixed rounding rule. No balance is mutated.
func (l *Ledger) CalculateInterest(_ context.Context, accountNo string) (money.Money, error) {
	acc, err := l.lookup(accountNo)
	if err != nil {
		return money.Zero(), err
	}
	return acc.interest(), nil
}

// Policy returns the rule set attached to the account's variant.
func (l *Ledger) Policy(_ context.Context, accountNo string) (AccountPolicy, error) {
	acc, err := l.lookup(accountNo)
	if err != nil {
		return AccountPolicy{}, err
	}
	return acc.policy, nil
}

// History lists the account's transactions in insertion order.
func (l *Ledger) History(_ context.Context, accountNo string) ([]Transaction, error) {
	if _, err := l.lookup(accountNo); err != nil {
		return nil, err
	}
	return l.log.History(accountNo), nil
}

// HistoryNewestFirst lists the account's transactions newest first.
func (l *Ledger) HistoryNewestFirst(_ context.Context, accountNo string) ([]Transaction, error) {
	if _, err := l.lookup(accountNo); err != nil {
		return nil, err
	}
	return l.log.HistoryNewestFirst(accountNo), nil
}

// Summary counts the account's transactions per kind.
func (l *Ledger) Summary(_ context.Context, accountNo string) (map[TransactionKind]int, error) {
	if _, err := l.lookup(accountNo); err != nil {
		return nil, err
	}
	return l.log.Summary(accountNo), nil
}

// Log exposes the transaction log for read-side consumers.
func (l *Ledger) Log() *TransactionLog {
	return l.log
}

func (l *Ledger) lookup(accountNo string) (*account, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	acc, ok := l.accounts[accountNo]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return acc, nil
}
