package ledger

import (
	"time"

	"github.com/corebank/corebank/internal/money"
)

// AccountType is the closed set of account variants the bank offers.
type AccountType string

const (
	// Savings accounts earn interest and carry an advisory minimum balance.
	Savings AccountType = "SAVINGS"
	// Current accounts earn no interest and have no minimum balance.
	Current AccountType = "CURRENT"
)

// AccountPolicy is the fixed rule set attached to an account variant.
type AccountPolicy struct {
	InterestRate   money.Money
	MinimumBalance money.Money
}

var policies = map[AccountType]AccountPolicy{
	Savings: {
		InterestRate:   money.MustFromString("4.5"),
		MinimumBalance: money.MustFromString("1000"),
	},
	Current: {
		InterestRate:   money.Zero(),
		MinimumBalance: money.Zero(),
	},
}

// PolicyFor maps an account variant to its policy. Unknown variants are
// rejected rather than defaulted.
func PolicyFor(t AccountType) (AccountPolicy, error) {
	p, ok := policies[t]
	if !ok {
		return AccountPolicy{}, ErrUnknownAccountType
	}
	return p, nil
}

// Customer is a registered account owner. The ledger stores customers as
// pre-validated reference data and never mutates them.
type Customer struct {
	ID          string
	Name        string
	Phone       string
	Email       string
	SecretHash  []byte
	DateOfBirth time.Time
}

// Equal reports customer identity: the (id, email) pair.
func (c Customer) Equal(other Customer) bool {
	return c.ID == other.ID && c.Email == other.Email
}

// TransactionKind classifies a log entry.
type TransactionKind string

const (
	KindDeposit  TransactionKind = "DEPOSIT"
	KindWithdraw TransactionKind = "WITHDRAW"
	KindTransfer TransactionKind = "TRANSFER"
)

// Transaction is one immutable entry in the transaction log. Transfer legs
// carry the counterparty account number; deposits and withdrawals leave it
// empty.
type Transaction struct {
	ID             string          `json:"id"`
	Amount         money.Money     `json:"amount"`
	AccountNo      string          `json:"account_no"`
	Timestamp      time.Time       `json:"timestamp"`
	Kind           TransactionKind `json:"kind"`
	CounterpartyNo string          `json:"counterparty_no,omitempty"`
}

// Equal reports transaction identity, which is the id alone.
func (t Transaction) Equal(other Transaction) bool {
	return t.ID == other.ID
}

// Account is a point-in-time snapshot of an account. Callers never receive a
// handle to the live balance cell.
type Account struct {
	Number     string      `json:"number"`
	CustomerID string      `json:"customer_id"`
	Type       AccountType `json:"type"`
	Balance    money.Money `json:"balance"`
}

// IDSource supplies account numbers and transaction ids. Generation is an
// environment concern injected into the ledger.
type IDSource interface {
	AccountNo() string
	TransactionID() string
}
