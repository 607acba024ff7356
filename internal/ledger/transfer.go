package ledger

import (
	"context"

	"github.com/corebank/corebank/internal/money"
)

// Transfer moves amount between two accounts atomically: either both balances
// change and both transfer legs land in the log, or nothing happens at all.
//
// Both account mutexes are acquired in canonical order (lower account number
// first) regardless of transfer direction, so opposed transfers over the same
// pair can never deadlock. Both mutations and both log appends complete
// before either mutex is released, which means no other operation can observe
// a withdrawn-but-not-deposited state.
func (l *Ledger) Transfer(_ context.Context, fromNo, toNo string, amount money.Money) (money.Money, error) {
	l.mu.RLock()
	from, okFrom := l.accounts[fromNo]
	to, okTo := l.accounts[toNo]
	l.mu.RUnlock()

	if !okFrom || !okTo {
		return money.Zero(), ErrAccountNotFound
	}
	if fromNo == toNo {
		return money.Zero(), ErrSameAccountTransfer
	}
	if !amount.IsPositive() {
		return money.Zero(), ErrInvalidAmount
	}

	first, second := from, to
	if second.number < first.number {
		first, second = second, first
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	if from.balance.LessThan(amount) {
		return money.Zero(), ErrInsufficientBalance
	}

	from.balance = from.balance.Sub(amount)
	to.balance = to.balance.Add(amount)

	now := l.now()
	l.log.Append(
		Transaction{
			ID:             l.ids.TransactionID(),
			Amount:         amount,
			AccountNo:      fromNo,
			Timestamp:      now,
			Kind:           KindTransfer,
			CounterpartyNo: toNo,
		},
		Transaction{
			ID:             l.ids.TransactionID(),
			Amount:         amount,
			AccountNo:      toNo,
			Timestamp:      now,
			Kind:           KindTransfer,
			CounterpartyNo: fromNo,
		},
	)
	return from.balance, nil
}
