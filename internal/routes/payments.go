package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/corebank/corebank/internal/payments"
)

// RegisterPaymentRoutes mounts account-to-account transfers.
func RegisterPaymentRoutes(router fiber.Router, h *payments.Handler, rateLimit fiber.Handler) {
	group := router.Group("/transfers")
	group.Post("/", rateLimit, h.Transfer)
}
