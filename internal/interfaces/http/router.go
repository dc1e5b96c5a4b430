package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockmaster/internal/application/auth"
	"github.com/tu-usuario/stockmaster/internal/application/inventory"
	"github.com/tu-usuario/stockmaster/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	ProductUC     *usecase.ProductUseCase
	WarehouseUC   *usecase.WarehouseUseCase
	LocationUC    *usecase.LocationUseCase
	PartnerUC     *usecase.PartnerUseCase
	OperationUC   *inventory.OperationUseCase
	DocumentUC    *inventory.DocumentUseCase
	StockUC       *inventory.StockUseCase
	MoveUC        *usecase.MoveUseCase
	QuantUC       *usecase.QuantUseCase
	LedgerUC      *usecase.LedgerUseCase
	ReorderRuleUC *usecase.ReorderRuleUseCase
	SuggestionUC  *inventory.ReorderSuggestionUseCase
	DashboardUC   *usecase.DashboardUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/verify-otp", authHandler.VerifyOTP)
	authGroup.Post("/reset-password", authHandler.ResetPassword)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (protegido)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/me", userHandler.Me)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Warehouses (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	// Locations (protegido)
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Put("/:id", locationHandler.Update)
	locations.Delete("/:id", locationHandler.Delete)

	// Partners (protegido)
	partners := protected.Group("/partners")
	partnerHandler := NewPartnerHandler(deps.PartnerUC)
	partners.Post("/", partnerHandler.Create)
	partners.Get("/", partnerHandler.List)
	partners.Get("/:id", partnerHandler.GetByID)
	partners.Put("/:id", partnerHandler.Update)
	partners.Delete("/:id", partnerHandler.Delete)

	// Operations (protegido): ciclo draft -> check -> validate
	operations := protected.Group("/operations")
	operationHandler := NewOperationHandler(deps.OperationUC, deps.DocumentUC)
	operations.Post("/", operationHandler.Create)
	operations.Get("/", operationHandler.List)
	operations.Get("/:id", operationHandler.GetByID)
	operations.Post("/:id/check", operationHandler.CheckAvailability)
	operations.Post("/:id/validate", operationHandler.Validate)
	operations.Get("/:id/document", operationHandler.Document)

	// Stock derivado del ledger (protegido)
	stockHandler := NewStockHandler(deps.StockUC)
	protected.Get("/stock", stockHandler.CurrentStock)

	// Moves (protegido)
	moves := protected.Group("/moves")
	moveHandler := NewMoveHandler(deps.MoveUC)
	moves.Post("/", moveHandler.Create)
	moves.Get("/", moveHandler.List)
	moves.Get("/:id", moveHandler.GetByID)

	// Quants (protegido, solo lectura)
	quants := protected.Group("/quants")
	quantHandler := NewQuantHandler(deps.QuantUC)
	quants.Get("/", quantHandler.List)
	quants.Get("/:id", quantHandler.GetByID)

	// Ledger (protegido, solo lectura)
	ledger := protected.Group("/ledger")
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	ledger.Get("/", ledgerHandler.List)
	ledger.Get("/:id", ledgerHandler.GetByID)

	// Reorder rules (protegido). /suggestions antes de /:id para no capturarla como parámetro.
	rules := protected.Group("/reorder-rules")
	ruleHandler := NewReorderRuleHandler(deps.ReorderRuleUC, deps.SuggestionUC)
	rules.Get("/suggestions", ruleHandler.Suggestions)
	rules.Post("/", ruleHandler.Create)
	rules.Get("/", ruleHandler.List)
	rules.Get("/:id", ruleHandler.GetByID)
	rules.Put("/:id", ruleHandler.Update)
	rules.Delete("/:id", ruleHandler.Delete)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/kpis", dashboardHandler.KPIs)
}
