package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/corebank/corebank/internal/accounts"
	"github.com/corebank/corebank/internal/config"
	"github.com/corebank/corebank/internal/identity"
	"github.com/corebank/corebank/internal/ledger"
	"github.com/corebank/corebank/internal/middleware"
	"github.com/corebank/corebank/internal/notification"
	"github.com/corebank/corebank/internal/obs"
	"github.com/corebank/corebank/internal/payments"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	Cache  *redis.Client
	Ledger *ledger.Ledger
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	obs.Init()

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	app.Use(middleware.Audit(d.Logger))
	app.Use(obs.Instrument())
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	app.Get("/metrics", obs.MetricsHandler())
	RegisterHealthRoutes(app, d)

	// Services and handlers
	identitySvc := identity.NewService(d.Ledger)
	accountSvc := accounts.NewService(d.Ledger)
	notifier := notification.NewLoggerNotifier(d.Logger)
	paymentSvc := payments.NewService(d.Ledger, notifier)

	identityHandler := identity.NewHandler(identitySvc)
	accountHandler := accounts.NewHandler(accountSvc)
	paymentHandler := payments.NewHandler(paymentSvc)

	// API routes
	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	RegisterIdentityRoutes(api, identityHandler)
	RegisterAccountRoutes(api, accountHandler)

	rateLimiter := middleware.TransferRateLimit(d.Cache, d.Cfg.TransferPerMin)
	RegisterPaymentRoutes(api, paymentHandler, rateLimiter)

	return nil
}
