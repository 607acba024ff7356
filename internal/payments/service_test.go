package payments

import (
	"context"
	"errors"
	"testing"

	"github.com/corebank/corebank/internal/ids"
	"github.com/corebank/corebank/internal/ledger"
	"github.com/corebank/corebank/internal/money"
	"github.com/corebank/corebank/internal/notification"
)

type testNotifier struct {
	last notification.Message
}

func (n *testNotifier) Send(_ context.Context, msg notification.Message) error {
	n.last = msg
	return nil
}

func setup(t *testing.T) (*Service, *ledger.Ledger, *testNotifier, string, string) {
	t.Helper()
	led := ledger.New(ids.NewGenerator())
	ctx := context.Background()
	if err := led.RegisterCustomer(ctx, ledger.Customer{ID: "cust-1", Email: "a@example.com"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := led.RegisterCustomer(ctx, ledger.Customer{ID: "cust-2", Email: "b@example.com"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	from, err := led.OpenAccount(ctx, "cust-1", ledger.Current, money.MustFromString("10000"))
	if err != nil {
		t.Fatalf("open from: %v", err)
	}
	to, err := led.OpenAccount(ctx, "cust-2", ledger.Current, money.Zero())
	if err != nil {
		t.Fatalf("open to: %v", err)
	}

	notifier := &testNotifier{}
	return NewService(led, notifier), led, notifier, from, to
}

func TestTransferSuccess(t *testing.T) {
	svc, led, notifier, from, to := setup(t)
	ctx := context.Background()

	res, err := svc.Transfer(ctx, TransferInput{FromAccountNo: from, ToAccountNo: to, Amount: money.MustFromString("2000")})
	if err != nil {
		t.Fatalf("transfer failed: %v", err)
	}
	if res.FromBalance.String() != "8000" {
		t.Fatalf("unexpected from balance: %s", res.FromBalance)
	}

	toAcc, _ := led.GetAccount(ctx, to)
	if toAcc.Balance.String() != "2000" {
		t.Fatalf("unexpected to balance: %s", toAcc.Balance)
	}

	if notifier.last.Kind != notification.KindTransferReceived {
		t.Fatalf("expected notification to be sent")
	}
	if notifier.last.Destination != "cust-2" {
		t.Fatalf("notification should target the receiving customer, got %q", notifier.last.Destination)
	}
}

func TestTransferInsufficientFunds(t *testing.T) {
	svc, led, _, from, to := setup(t)
	ctx := context.Background()

	_, err := svc.Transfer(ctx, TransferInput{FromAccountNo: from, ToAccountNo: to, Amount: money.MustFromString("99999")})
	if !errors.Is(err, ledger.ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}

	if led.Log().Len() != 0 {
		t.Fatalf("failed transfer should not log")
	}
}

func TestTransferSameAccount(t *testing.T) {
	svc, _, notifier, from, _ := setup(t)

	_, err := svc.Transfer(context.Background(), TransferInput{FromAccountNo: from, ToAccountNo: from, Amount: money.MustFromString("10")})
	if !errors.Is(err, ledger.ErrSameAccountTransfer) {
		t.Fatalf("expected ErrSameAccountTransfer, got %v", err)
	}
	if notifier.last.Kind != "" {
		t.Fatalf("no notification expected on failure")
	}
}
