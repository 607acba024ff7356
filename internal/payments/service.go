// Package payments orchestrates account-to-account transfers over the ledger
// and notifies the receiving customer.
package payments

import (
	"context"
	"fmt"
	"time"

	"github.com/corebank/corebank/internal/ledger"
	"github.com/corebank/corebank/internal/money"
	"github.com/corebank/corebank/internal/notification"
	"github.com/corebank/corebank/internal/obs"
)

// Service wires ledger transfers for account-to-account payments.
type Service struct {
	ledger   *ledger.Ledger
	notifier notification.Notifier
}

// NewService constructs a payment service.
func NewService(l *ledger.Ledger, notifier notification.Notifier) *Service {
	return &Service{ledger: l, notifier: notifier}
}

// TransferInput captures the data needed to move funds between accounts.
type TransferInput struct {
	FromAccountNo string
	ToAccountNo   string
	Amount        money.Money
}

// TransferResult describes the outcome of a completed transfer.
type TransferResult struct {
	FromAccountNo string
	ToAccountNo   string
	Amount        money.Money
	FromBalance   money.Money
	CompletedAt   time.Time
}

// Transfer atomically moves funds between the two accounts. On success the
// owner of the destination account is notified; notification failures never
// affect the transfer itself.
func (s *Service) Transfer(ctx context.Context, input TransferInput) (TransferResult, error) {
	fromBalance, err := s.ledger.Transfer(ctx, input.FromAccountNo, input.ToAccountNo, input.Amount)
	obs.RecordOp("transfer", err)
	if err != nil {
		return TransferResult{}, err
	}

	result := TransferResult{
		FromAccountNo: input.FromAccountNo,
		ToAccountNo:   input.ToAccountNo,
		Amount:        input.Amount,
		FromBalance:   fromBalance,
		CompletedAt:   time.Now().UTC(),
	}

	if s.notifier != nil {
		destination := input.ToAccountNo
		if acc, err := s.ledger.GetAccount(ctx, input.ToAccountNo); err == nil {
			destination = acc.CustomerID
		}
		_ = s.notifier.Send(ctx, notification.Message{
			Kind:        notification.KindTransferReceived,
			Destination: destination,
			Body:        fmt.Sprintf("You received %s from account %s", input.Amount, input.FromAccountNo),
		})
	}

	return result, nil
}
