// Package identity handles customer registration on top of the ledger's
// customer registry. Format validation (email/phone shapes) is assumed done
// by the caller; this service checks presence, hashes the credential secret
// and assigns the customer id.
package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/corebank/corebank/internal/ledger"
)

const minSecretLength = 6

// ErrWeakSecret indicates a credential secret below the minimum length.
var ErrWeakSecret = errors.New("secret must be at least 6 characters")

// ErrInvalidSecret indicates a secret that does not match the stored hash.
var ErrInvalidSecret = errors.New("invalid secret")

// Service manages customer lifecycle.
type Service struct {
	ledger *ledger.Ledger
}

// NewService creates a new identity service.
func NewService(l *ledger.Ledger) *Service {
	return &Service{ledger: l}
}

// RegisterInput captures pre-validated customer data.
type RegisterInput struct {
	Name        string
	Phone       string
	Email       string
	Secret      string
	DateOfBirth time.Time
}

// Register stores a new customer with a bcrypt-hashed secret and returns the
// assigned customer id.
func (s *Service) Register(ctx context.Context, input RegisterInput) (ledger.Customer, error) {
	if input.Name == "" || input.Email == "" {
		return ledger.Customer{}, errors.New("name and email are required")
	}
	if len(input.Secret) < minSecretLength {
		return ledger.Customer{}, ErrWeakSecret
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Secret), bcrypt.DefaultCost)
	if err != nil {
		return ledger.Customer{}, err
	}

	customer := ledger.Customer{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Phone:       input.Phone,
		Email:       input.Email,
		SecretHash:  hash,
		DateOfBirth: input.DateOfBirth,
	}

	if err := s.ledger.RegisterCustomer(ctx, customer); err != nil {
		return ledger.Customer{}, err
	}

	return customer, nil
}

// Get fetches a registered customer.
func (s *Service) Get(ctx context.Context, customerID string) (ledger.Customer, error) {
	return s.ledger.CustomerByID(ctx, customerID)
}

// VerifySecret compares a candidate secret against the customer's stored hash.
func (s *Service) VerifySecret(ctx context.Context, customerID, secret string) error {
	customer, err := s.ledger.CustomerByID(ctx, customerID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword(customer.SecretHash, []byte(secret)); err != nil {
		return ErrInvalidSecret
	}
	return nil
}
