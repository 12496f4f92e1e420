package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gacc-hospital/snd-stock/internal/application/auth"
	"github.com/gacc-hospital/snd-stock/internal/application/inventory"
	"github.com/gacc-hospital/snd-stock/internal/application/reporting"
	"github.com/gacc-hospital/snd-stock/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	CatalogUC        *usecase.CatalogUseCase
	ProductUC        *usecase.ProductUseCase
	UserUC           *usecase.UserUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	ReportUC         *reporting.ReportUseCase
	JWTSecret        string
}

// Router registra las rutas de la API. Cada grupo corresponde a una pantalla
// del sistema: login, dashboard, stock, movimientos, registro, reportes,
// usuarios y bitácora.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público, logout autenticado
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Dashboard
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/dashboard", RequirePermission(PermRead), reportHandler.Dashboard)

	// Catálogos (Registro)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	categories := protected.Group("/categories")
	categories.Get("/", RequirePermission(PermRead), catalogHandler.ListCategories)
	categories.Post("/", RequirePermission(PermCreate), catalogHandler.CreateCategory)
	units := protected.Group("/units")
	units.Get("/", RequirePermission(PermRead), catalogHandler.ListUnits)
	units.Post("/", RequirePermission(PermCreate), catalogHandler.CreateUnit)

	// Productos (Registro + Stock)
	productHandler := NewProductHandler(deps.ProductUC)
	products := protected.Group("/products")
	products.Post("/", RequirePermission(PermCreate), productHandler.Register)
	products.Get("/", RequirePermission(PermRead), productHandler.List)
	products.Get("/:id", RequirePermission(PermRead), productHandler.GetByID)

	// Movimientos
	movementHandler := NewMovementHandler(deps.RegisterMovement)
	movements := protected.Group("/movements")
	movements.Post("/", RequirePermission(PermCreate), movementHandler.Register)
	movements.Get("/", RequirePermission(PermRead), movementHandler.List)

	// Reportes
	reports := protected.Group("/reports")
	reports.Get("/movements", RequirePermission(PermRead), reportHandler.Movements)
	reports.Get("/movements/export", RequirePermission(PermRead), reportHandler.ExportCSV)
	reports.Get("/movements/pdf", RequirePermission(PermRead), reportHandler.ExportPDF)

	// Usuarios y bitácora (solo ADMIN)
	userHandler := NewUserHandler(deps.UserUC)
	users := protected.Group("/users", RequireAdmin())
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	protected.Get("/logs", RequireAdmin(), reportHandler.AuditLog)
}
