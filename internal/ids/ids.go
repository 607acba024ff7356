// Package ids generates the identifiers the ledger consumes: account numbers
// and transaction ids. The ledger treats this purely as an injected source.
package ids

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mathrand "math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

const (
	txnPrefix     = "TXN"
	accountNoSpan = 10_000_000_000 // account numbers are ten decimal digits
)

// Generator produces unique account numbers and transaction ids.
type Generator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewGenerator builds a generator with monotonic ULID entropy, so transaction
// ids issued by one process sort in issue order.
func NewGenerator() *Generator {
	seed := mathrand.New(mathrand.NewSource(time.Now().UnixNano()))
	return &Generator{entropy: ulid.Monotonic(seed, 0)}
}

// AccountNo returns a ten-digit numeric account number. Uniqueness across the
// ledger is the caller's concern; the ledger retries on collision.
func (g *Generator) AccountNo() string {
	n, err := rand.Int(rand.Reader, big.NewInt(accountNoSpan))
	if err != nil {
		// crypto/rand only fails when the platform source is broken.
		panic(fmt.Sprintf("account number entropy: %v", err))
	}
	return fmt.Sprintf("%010d", n.Int64())
}

// TransactionID returns a prefixed, lexicographically sortable transaction id.
func (g *Generator) TransactionID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return txnPrefix + ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy).String()
}
