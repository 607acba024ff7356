package accounts

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/corebank/corebank/internal/ledger"
	"github.com/corebank/corebank/internal/money"
)

// Handler exposes account HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds an account HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type openRequest struct {
	CustomerID     string `json:"customer_id"`
	Type           string `json:"type"`
	InitialBalance string `json:"initial_balance"`
}

type accountResponse struct {
	Number     string `json:"number"`
	CustomerID string `json:"customer_id"`
	Type       string `json:"type"`
	Balance    string `json:"balance"`
}

type amountRequest struct {
	Amount string `json:"amount"`
}

// Open provisions a new account for a registered customer.
func (h *Handler) Open(c *fiber.Ctx) error {
	var req openRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	initial, err := money.FromString(req.InitialBalance)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	account, err := h.service.Open(c.UserContext(), OpenInput{
		CustomerID:     req.CustomerID,
		Type:           ledger.AccountType(req.Type),
		InitialBalance: initial,
	})
	if err != nil {
		return mapLedgerError(err)
	}
	return c.Status(http.StatusCreated).JSON(toResponse(account))
}

// Get returns the account snapshot.
func (h *Handler) Get(c *fiber.Ctx) error {
	account, err := h.service.Get(c.UserContext(), c.Params("accountNo"))
	if err != nil {
		return mapLedgerError(err)
	}
	return c.Status(http.StatusOK).JSON(toResponse(account))
}

// Deposit credits the account.
func (h *Handler) Deposit(c *fiber.Ctx) error {
	return h.mutate(c, h.service.Deposit)
}

// Withdraw debits the account.
func (h *Handler) Withdraw(c *fiber.Ctx) error {
	return h.mutate(c, h.service.Withdraw)
}

// Interest previews interest earnings together with the account policy.
func (h *Handler) Interest(c *fiber.Ctx) error {
	accountNo := c.Params("accountNo")
	interest, err := h.service.Interest(c.UserContext(), accountNo)
	if err != nil {
		return mapLedgerError(err)
	}
	policy, err := h.service.Policy(c.UserContext(), accountNo)
	if err != nil {
		return mapLedgerError(err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"account_no":      accountNo,
		"interest":        interest.String(),
		"interest_rate":   policy.InterestRate.String(),
		"minimum_balance": policy.MinimumBalance.String(),
	})
}

// Transactions returns the account statement. Pass order=desc for newest
// first.
func (h *Handler) Transactions(c *fiber.Ctx) error {
	accountNo := c.Params("accountNo")
	newestFirst := c.Query("order") == "desc"
	txs, err := h.service.Statement(c.UserContext(), accountNo, newestFirst)
	if err != nil {
		return mapLedgerError(err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"account_no":   accountNo,
		"transactions": txs,
	})
}

// Summary returns transaction counts per kind.
func (h *Handler) Summary(c *fiber.Ctx) error {
	accountNo := c.Params("accountNo")
	summary, err := h.service.Summary(c.UserContext(), accountNo)
	if err != nil {
		return mapLedgerError(err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"account_no": accountNo,
		"summary":    summary,
	})
}

func (h *Handler) mutate(c *fiber.Ctx, op func(ctx context.Context, accountNo string, amount money.Money) (money.Money, error)) error {
	var req amountRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	amount, err := money.FromString(req.Amount)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	accountNo := c.Params("accountNo")
	balance, err := op(c.UserContext(), accountNo, amount)
	if err != nil {
		return mapLedgerError(err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"account_no": accountNo,
		"balance":    balance.String(),
	})
}

func toResponse(account ledger.Account) accountResponse {
	return accountResponse{
		Number:     account.Number,
		CustomerID: account.CustomerID,
		Type:       string(account.Type),
		Balance:    account.Balance.String(),
	}
}

// mapLedgerError translates ledger sentinels into HTTP errors.
func mapLedgerError(err error) error {
	switch {
	case errors.Is(err, ledger.ErrAccountNotFound), errors.Is(err, ledger.ErrCustomerNotFound):
		return fiber.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrUnknownAccountType),
		errors.Is(err, ledger.ErrInsufficientBalance),
		errors.Is(err, ledger.ErrSameAccountTransfer):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	default:
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
}
