package accounts

import (
	"context"
	"errors"
	"testing"

	"github.com/corebank/corebank/internal/ids"
	"github.com/corebank/corebank/internal/ledger"
	"github.com/corebank/corebank/internal/money"
)

func setup(t *testing.T) (*Service, string) {
	t.Helper()
	led := ledger.New(ids.NewGenerator())
	customer := ledger.Customer{ID: "cust-1", Name: "Asha Rao", Email: "asha@example.com"}
	if err := led.RegisterCustomer(context.Background(), customer); err != nil {
		t.Fatalf("register customer: %v", err)
	}
	return NewService(led), customer.ID
}

func TestOpenDepositWithdrawFlow(t *testing.T) {
	svc, custID := setup(t)
	ctx := context.Background()

	account, err := svc.Open(ctx, OpenInput{
		CustomerID:     custID,
		Type:           ledger.Savings,
		InitialBalance: money.MustFromString("2500.00"),
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if len(account.Number) != 10 {
		t.Fatalf("expected ten-digit account number, got %q", account.Number)
	}

	balance, err := svc.Deposit(ctx, account.Number, money.MustFromString("1000"))
	if err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if balance.String() != "3500" {
		t.Fatalf("balance after deposit: %s", balance)
	}

	balance, err = svc.Withdraw(ctx, account.Number, money.MustFromString("500"))
	if err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if balance.String() != "3000" {
		t.Fatalf("balance after withdrawal: %s", balance)
	}

	stmt, err := svc.Statement(ctx, account.Number, false)
	if err != nil {
		t.Fatalf("statement: %v", err)
	}
	if len(stmt) != 2 {
		t.Fatalf("expected 2 statement entries, got %d", len(stmt))
	}

	summary, err := svc.Summary(ctx, account.Number)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary[ledger.KindDeposit] != 1 || summary[ledger.KindWithdraw] != 1 {
		t.Fatalf("summary: %v", summary)
	}
}

func TestOpenUnknownCustomer(t *testing.T) {
	svc, _ := setup(t)
	_, err := svc.Open(context.Background(), OpenInput{
		CustomerID:     "missing",
		Type:           ledger.Current,
		InitialBalance: money.Zero(),
	})
	if !errors.Is(err, ledger.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestInterestPreview(t *testing.T) {
	svc, custID := setup(t)
	ctx := context.Background()

	account, err := svc.Open(ctx, OpenInput{
		CustomerID:     custID,
		Type:           ledger.Savings,
		InitialBalance: money.MustFromString("2000"),
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	interest, err := svc.Interest(ctx, account.Number)
	if err != nil {
		t.Fatalf("interest: %v", err)
	}
	if interest.String() != "90" {
		t.Fatalf("expected 90, got %s", interest)
	}

	policy, err := svc.Policy(ctx, account.Number)
	if err != nil {
		t.Fatalf("policy: %v", err)
	}
	if policy.MinimumBalance.String() != "1000" {
		t.Fatalf("minimum balance: %s", policy.MinimumBalance)
	}
}
