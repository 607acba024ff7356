package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/corebank/corebank/internal/identity"
)

// RegisterIdentityRoutes mounts customer registration and lookup.
func RegisterIdentityRoutes(router fiber.Router, h *identity.Handler) {
	group := router.Group("/customers")
	group.Post("/", h.Register)
	group.Get("/:customerId", h.Get)
}
