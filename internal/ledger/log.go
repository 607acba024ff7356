package ledger

import (
	"sort"
	"sync"
)

// TransactionLog is the append-only record of completed monetary events.
// Entries are never updated or removed; queries return copies.
type TransactionLog struct {
	mu      sync.Mutex
	entries []Transaction
}

// NewTransactionLog creates an empty log.
func NewTransactionLog() *TransactionLog {
	return &TransactionLog{}
}

// Append adds one or more entries as a unit. A transfer appends both legs in
// a single call so no reader observes one leg without the other.
func (l *TransactionLog) Append(txs ...Transaction) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, txs...)
}

// History returns every entry where the account is the primary or the
// counterparty, in insertion order.
func (l *TransactionLog) History(accountNo string) []Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []Transaction
	for _, tx := range l.entries {
		if tx.AccountNo == accountNo || (tx.CounterpartyNo != "" && tx.CounterpartyNo == accountNo) {
			out = append(out, tx)
		}
	}
	return out
}

// HistoryNewestFirst returns the account's history sorted by timestamp
// descending. The sort is stable, so entries sharing a timestamp keep their
// insertion order.
func (l *TransactionLog) HistoryNewestFirst(accountNo string) []Transaction {
	out := l.History(accountNo)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// Summary counts the account's entries per transaction kind.
func (l *TransactionLog) Summary(accountNo string) map[TransactionKind]int {
	out := make(map[TransactionKind]int)
	for _, tx := range l.History(accountNo) {
		out[tx.Kind]++
	}
	return out
}

// Len reports the total number of entries across all accounts.
func (l *TransactionLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Entries returns a copy of the full log in insertion order.
func (l *TransactionLog) Entries() []Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Transaction, len(l.entries))
	copy(out, l.entries)
	return out
}
