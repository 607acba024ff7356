package ledger

import "errors"

var (
	// ErrInvalidAmount occurs when an operation is given a non-positive
	// amount, or a negative opening balance.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientBalance occurs when a withdrawal or transfer exceeds the
	// source account's balance.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrAccountNotFound indicates an unknown account number.
	ErrAccountNotFound = errors.New("account not found")

	// ErrCustomerNotFound indicates an unknown customer id.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrSameAccountTransfer indicates a transfer where source and destination
	// are the same account. Rejected outright so the log never double-counts.
	ErrSameAccountTransfer = errors.New("cannot transfer to the same account")

	// ErrUnknownAccountType indicates an account variant outside the closed set.
	ErrUnknownAccountType = errors.New("unknown account type")

	// ErrDuplicateCustomer indicates a customer id that is already registered.
	ErrDuplicateCustomer = errors.New("customer already registered")
)
