package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"sync"

	"github.com/corebank/corebank/internal/ids"
	"github.com/corebank/corebank/internal/ledger"
	"github.com/corebank/corebank/internal/money"
)

// Drives opposed transfers over a shared account pair with a fixed-size
// worker pool. A deadlock shows up as a hang; a lost update as a
// conservation failure.
func main() {
	workers := flag.Int("workers", 8, "concurrent workers")
	transfers := flag.Int("transfers", 500, "transfers per worker")
	flag.Parse()

	ctx := context.Background()
	book := ledger.New(ids.NewGenerator())

	customer := ledger.Customer{
		ID:    "smoke-customer",
		Name:  "Smoke Test",
		Email: "smoke@example.com",
	}
	if err := book.RegisterCustomer(ctx, customer); err != nil {
		log.Fatalf("register customer: %v", err)
	}

	seed := money.MustFromString("10000")
	accA, err := book.OpenAccount(ctx, customer.ID, ledger.Current, seed)
	if err != nil {
		log.Fatalf("open account A: %v", err)
	}
	accB, err := book.OpenAccount(ctx, customer.ID, ledger.Current, seed)
	if err != nil {
		log.Fatalf("open account B: %v", err)
	}

	amount := money.MustFromString("10")
	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		from, to := accA, accB
		if i%2 == 1 {
			from, to = accB, accA
		}
		wg.Add(1)
		go func(from, to string) {
			defer wg.Done()
			for j := 0; j < *transfers; j++ {
				if _, err := book.Transfer(ctx, from, to, amount); err != nil &&
					!errors.Is(err, ledger.ErrInsufficientBalance) {
					log.Fatalf("transfer %s -> %s: %v", from, to, err)
				}
			}
		}(from, to)
	}
	wg.Wait()

	balA, err := book.GetAccount(ctx, accA)
	if err != nil {
		log.Fatalf("read account A: %v", err)
	}
	balB, err := book.GetAccount(ctx, accB)
	if err != nil {
		log.Fatalf("read account B: %v", err)
	}

	total := balA.Balance.Add(balB.Balance)
	if !total.Equal(seed.Add(seed)) {
		log.Fatalf("conservation failed: %s + %s = %s, want %s",
			balA.Balance, balB.Balance, total, seed.Add(seed))
	}
	if balA.Balance.IsNegative() || balB.Balance.IsNegative() {
		log.Fatalf("negative balance: A=%s B=%s", balA.Balance, balB.Balance)
	}

	fmt.Printf("smoke passed: A=%s B=%s entries=%d\n", balA.Balance, balB.Balance, book.Log().Len())
}
