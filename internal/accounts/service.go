// Package accounts exposes account lifecycle and teller operations (open,
// deposit, withdraw, statements) on top of the ledger.
package accounts

import (
	"context"

	"github.com/corebank/corebank/internal/ledger"
	"github.com/corebank/corebank/internal/money"
	"github.com/corebank/corebank/internal/obs"
)

// Service wraps ledger account operations.
type Service struct {
	ledger *ledger.Ledger
}

// NewService builds an account service instance.
func NewService(l *ledger.Ledger) *Service {
	return &Service{ledger: l}
}

// OpenInput captures data required to open an account.
type OpenInput struct {
	CustomerID     string
	Type           ledger.AccountType
	InitialBalance money.Money
}

// Open creates an account for the customer and returns its snapshot.
func (s *Service) Open(ctx context.Context, input OpenInput) (ledger.Account, error) {
	number, err := s.ledger.OpenAccount(ctx, input.CustomerID, input.Type, input.InitialBalance)
	obs.RecordOp("open_account", err)
	if err != nil {
		return ledger.Account{}, err
	}
	return s.ledger.GetAccount(ctx, number)
}

// Deposit credits the account and returns the new balance.
func (s *Service) Deposit(ctx context.Context, accountNo string, amount money.Money) (money.Money, error) {
	balance, err := s.ledger.Deposit(ctx, accountNo, amount)
	obs.RecordOp("deposit", err)
	return balance, err
}

// Withdraw debits the account and returns the new balance.
func (s *Service) Withdraw(ctx context.Context, accountNo string, amount money.Money) (money.Money, error) {
	balance, err := s.ledger.Withdraw(ctx, accountNo, amount)
	obs.RecordOp("withdraw", err)
	return balance, err
}

// Get retrieves an account snapshot.
func (s *Service) Get(ctx context.Context, accountNo string) (ledger.Account, error) {
	return s.ledger.GetAccount(ctx, accountNo)
}

// Policy returns the interest and minimum-balance rules for the account.
func (s *Service) Policy(ctx context.Context, accountNo string) (ledger.AccountPolicy, error) {
	return s.ledger.Policy(ctx, accountNo)
}

// Interest previews the interest the account would currently earn.
func (s *Service) Interest(ctx context.Context, accountNo string) (money.Money, error) {
	return s.ledger.CalculateInterest(ctx, accountNo)
}

// Statement lists the account's transactions, newest first when requested.
func (s *Service) Statement(ctx context.Context, accountNo string, newestFirst bool) ([]ledger.Transaction, error) {
	if newestFirst {
		return s.ledger.HistoryNewestFirst(ctx, accountNo)
	}
	return s.ledger.History(ctx, accountNo)
}

// Summary counts the account's transactions per kind.
func (s *Service) Summary(ctx context.Context, accountNo string) (map[ledger.TransactionKind]int, error) {
	return s.ledger.Summary(ctx, accountNo)
}
