package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/cmms-inventario/internal/application/auth"
	"github.com/jhoicas/cmms-inventario/internal/application/inventory"
	"github.com/jhoicas/cmms-inventario/internal/application/usecase"
	"github.com/jhoicas/cmms-inventario/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ServiceName   string
	Log           zerolog.Logger
	Security      config.SecurityConfig
	CORSOrigins   string
	AuthUC        *auth.AuthUseCase
	PartUC        *usecase.PartUseCase
	LocationUC    *usecase.LocationUseCase
	Receive       *inventory.ReceivePartsUseCase
	Transfer      *inventory.TransferPartsUseCase
	Issue         *inventory.IssuePartsUseCase
	Query         *inventory.QueryUseCase
	Replenishment *inventory.ReplenishmentUseCase
	Documents     *inventory.DocumentUseCase
}

// Router registra los middlewares globales y las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) error {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(RequestLogger(deps.Log))
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: deps.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PATCH,OPTIONS",
	}))
	if deps.Security.EnableIPRestrictions {
		allow, err := IPAllowList(deps.Security.AllowedIPs, "/health", "/docs")
		if err != nil {
			return err
		}
		app.Use(allow)
	}
	if deps.Security.EnableRateLimiting {
		app.Use(RateLimit(deps.Security.RateLimitPerMinute))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})

	api := app.Group("/api")

	// Auth (login público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token con sesión viva)
	protected := api.Group("/", AuthMiddleware(deps.AuthUC))
	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/logout", authHandler.Logout)

	anyRole := RequireRole(auth.RoleAdmin, auth.RoleTechnician)
	adminOnly := RequireRole(auth.RoleAdmin)

	// Catálogo: lectura para todos, escritura solo admin
	parts := protected.Group("/parts")
	partHandler := NewPartHandler(deps.PartUC)
	parts.Get("/", anyRole, partHandler.List)
	parts.Get("/:id", anyRole, partHandler.GetByID)
	parts.Post("/", adminOnly, partHandler.Create)
	parts.Patch("/:id", adminOnly, partHandler.Update)

	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Get("/", anyRole, locationHandler.List)
	locations.Get("/:id", anyRole, locationHandler.GetByID)
	locations.Post("/", adminOnly, locationHandler.Create)
	locations.Patch("/:id", adminOnly, locationHandler.Update)

	// Inventario
	inv := protected.Group("/inventory", anyRole)
	invHandler := NewInventoryHandler(deps.Receive, deps.Transfer, deps.Issue, deps.Query, deps.Replenishment, deps.Documents)
	inv.Post("/receive", invHandler.Receive)
	inv.Post("/transfer", invHandler.Transfer)
	inv.Post("/issue", invHandler.Issue)
	inv.Get("/balances/:location_id", invHandler.BalancesByLocation)
	inv.Get("/balances/:location_id/export", invHandler.ExportBalances)
	inv.Get("/parts/:part_id/balance/:location_id", invHandler.PartBalance)
	inv.Get("/parts/:id/details", invHandler.PartDetails)
	inv.Get("/transfers", invHandler.Transfers)
	inv.Get("/transfers/:id", invHandler.GetTransfer)
	inv.Get("/transfers/:id/slip", invHandler.TransferSlip)
	inv.Get("/receipts", invHandler.Receipts)
	inv.Get("/filters", invHandler.Filters)
	inv.Get("/low-stock", invHandler.LowStock)

	return nil
}
