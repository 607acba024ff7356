package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/corebank/corebank/internal/accounts"
)

// RegisterAccountRoutes mounts account provisioning and cash operations.
func RegisterAccountRoutes(router fiber.Router, h *accounts.Handler) {
	group := router.Group("/accounts")
	group.Post("/", h.Open)
	group.Get("/:accountNo", h.Get)
	group.Post("/:accountNo/deposit", h.Deposit)
	group.Post("/:accountNo/withdraw", h.Withdraw)
	group.Get("/:accountNo/interest", h.Interest)
	group.Get("/:accountNo/transactions", h.Transactions)
	group.Get("/:accountNo/summary", h.Summary)
}
