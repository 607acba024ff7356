package identity

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/corebank/corebank/internal/ledger"
)

// Handler exposes customer HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a customer HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type registerRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Secret      string `json:"secret"`
	DateOfBirth string `json:"date_of_birth"`
}

type customerResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
}

// Register creates a customer record.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	var dob time.Time
	if req.DateOfBirth != "" {
		parsed, err := time.Parse(time.DateOnly, req.DateOfBirth)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, "date_of_birth must be YYYY-MM-DD")
		}
		dob = parsed
	}

	customer, err := h.service.Register(c.UserContext(), RegisterInput{
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Secret:      req.Secret,
		DateOfBirth: dob,
	})
	if err != nil {
		if errors.Is(err, ErrWeakSecret) {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusCreated).JSON(toResponse(customer))
}

// Get returns customer details.
func (h *Handler) Get(c *fiber.Ctx) error {
	customer, err := h.service.Get(c.UserContext(), c.Params("customerId"))
	if err != nil {
		return fiber.NewError(http.StatusNotFound, err.Error())
	}
	return c.Status(http.StatusOK).JSON(toResponse(customer))
}

func toResponse(customer ledger.Customer) customerResponse {
	resp := customerResponse{
		ID:    customer.ID,
		Name:  customer.Name,
		Phone: customer.Phone,
		Email: customer.Email,
	}
	if !customer.DateOfBirth.IsZero() {
		resp.DateOfBirth = customer.DateOfBirth.Format(time.DateOnly)
	}
	return resp
}
