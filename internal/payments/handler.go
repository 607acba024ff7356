package payments

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/corebank/corebank/internal/ledger"
	"github.com/corebank/corebank/internal/money"
)

// Handler exposes transfer endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a payment handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type transferRequest struct {
	FromAccountNo string `json:"from_account_no"`
	ToAccountNo   string `json:"to_account_no"`
	Amount        string `json:"amount"`
}

// Transfer processes an account-to-account transfer.
func (h *Handler) Transfer(c *fiber.Ctx) error {
	var req transferRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	amount, err := money.FromString(req.Amount)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	res, err := h.service.Transfer(c.UserContext(), TransferInput{
		FromAccountNo: req.FromAccountNo,
		ToAccountNo:   req.ToAccountNo,
		Amount:        amount,
	})
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrAccountNotFound):
			return fiber.NewError(http.StatusNotFound, err.Error())
		case errors.Is(err, ledger.ErrSameAccountTransfer),
			errors.Is(err, ledger.ErrInvalidAmount),
			errors.Is(err, ledger.ErrInsufficientBalance):
			return fiber.NewError(http.StatusBadRequest, err.Error())
		default:
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"from_account_no": res.FromAccountNo,
		"to_account_no":   res.ToAccountNo,
		"amount":          res.Amount.String(),
		"from_balance":    res.FromBalance.String(),
		"completed_at":    res.CompletedAt,
	})
}
