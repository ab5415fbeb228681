package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/arsenal-api/internal/application/auth"
	appledger "github.com/jhoicas/arsenal-api/internal/application/ledger"
	"github.com/jhoicas/arsenal-api/internal/application/usecase"
	"github.com/jhoicas/arsenal-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	Store     *appledger.Store
	JWTSecret string
}

// Router registra las rutas de la API. Cada grupo se limita a los roles que
// tienen visibilidad sobre esa sección: admin ve todo, commander ve todo menos
// administración y logistics solo dashboard, compras y traslados.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público, registro restringido a admin.
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	everyone := RequireRole(entity.RoleAdmin, entity.RoleCommander, entity.RoleLogistics)
	operativos := RequireRole(entity.RoleAdmin, entity.RoleCommander)
	adminOnly := RequireRole(entity.RoleAdmin)

	protected.Post("/auth/register", adminOnly, authHandler.Register)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.Store)
	protected.Get("/dashboard/metrics", everyone, dashboardHandler.Metrics)

	// Bases: lectura para todos, alta solo admin.
	bases := protected.Group("/bases")
	baseHandler := NewBaseHandler(deps.Store)
	bases.Get("/", everyone, baseHandler.List)
	bases.Get("/:id", everyone, baseHandler.GetByID)
	bases.Post("/", adminOnly, baseHandler.Create)

	// Assets: lectura para todos, alta solo admin.
	assets := protected.Group("/assets")
	assetHandler := NewAssetHandler(deps.Store)
	assets.Get("/", everyone, assetHandler.List)
	assets.Get("/:id", everyone, assetHandler.GetByID)
	assets.Post("/", adminOnly, assetHandler.Create)

	// Purchases
	purchases := protected.Group("/purchases", everyone)
	purchaseHandler := NewPurchaseHandler(deps.Store)
	purchases.Post("/", purchaseHandler.Record)
	purchases.Get("/", purchaseHandler.List)

	// Transfers
	transfers := protected.Group("/transfers", everyone)
	transferHandler := NewTransferHandler(deps.Store)
	transfers.Post("/", transferHandler.Record)
	transfers.Get("/", transferHandler.List)
	transfers.Patch("/:id/advance", transferHandler.Advance)

	// Assignments (admin y commander)
	assignments := protected.Group("/assignments", operativos)
	assignmentHandler := NewAssignmentHandler(deps.Store)
	assignments.Post("/", assignmentHandler.Record)
	assignments.Get("/", assignmentHandler.List)

	// Expenditures (admin y commander)
	expenditures := protected.Group("/expenditures", operativos)
	expenditureHandler := NewExpenditureHandler(deps.Store)
	expenditures.Post("/", expenditureHandler.Record)
	expenditures.Get("/", expenditureHandler.List)

	// Users (solo admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
}
