package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/norteindustrial/norte-erp/internal/application/analytics"
	"github.com/norteindustrial/norte-erp/internal/application/auth"
	"github.com/norteindustrial/norte-erp/internal/application/finance"
	"github.com/norteindustrial/norte-erp/internal/application/sales"
	"github.com/norteindustrial/norte-erp/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UserUC         *usecase.UserUseCase
	ClientUC       *usecase.ClientUseCase
	SupplierUC     *usecase.SupplierUseCase
	ProductUC      *usecase.ProductUseCase
	QuoteUC        *sales.QuoteUseCase
	OrderUC        *sales.OrderUseCase
	PaymentUC      *finance.PaymentUseCase
	SettingsUC     *usecase.SettingsUseCase
	NotificationUC *usecase.NotificationUseCase
	DashboardUC    *analytics.DashboardUseCase
	DocumentUC     *usecase.DocumentUseCase
	JWTSecret      string
}

// Conjuntos de roles por área funcional. SUPERADMIN y ADMIN entran a todo.
var (
	rolesAdmin     = []string{"SUPERADMIN", "ADMIN"}
	rolesSales     = []string{"SUPERADMIN", "ADMIN", "SALES"}
	rolesCatalog   = []string{"SUPERADMIN", "ADMIN", "SALES", "WAREHOUSE"}
	rolesFinance   = []string{"SUPERADMIN", "ADMIN", "FINANCE"}
	rolesAnyActive = []string{"SUPERADMIN", "ADMIN", "SALES", "WAREHOUSE", "FINANCE"}
)

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/setup", authHandler.Setup)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (solo administración)
	users := protected.Group("/users", RequireRole(rolesAdmin...))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Post("/:id/reset-password", userHandler.ResetPassword)
	users.Delete("/:id", userHandler.Delete)

	// Clients (área comercial; SALES solo ve su cartera dentro del use case)
	clients := protected.Group("/clients", RequireRole(rolesSales...))
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", RequireRole(rolesAdmin...), clientHandler.Delete)

	// Suppliers (comercial + almacén)
	suppliers := protected.Group("/suppliers", RequireRole(rolesCatalog...))
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", RequireRole(rolesAdmin...), supplierHandler.Delete)

	// Products (catálogo: comercial + almacén)
	products := protected.Group("/products", RequireRole(rolesCatalog...))
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(rolesAdmin...), productHandler.Delete)

	// Quotes (ciclo de cotización)
	quotes := protected.Group("/quotes", RequireRole(rolesSales...))
	quoteHandler := NewQuoteHandler(deps.QuoteUC)
	quotes.Post("/", quoteHandler.Create)
	quotes.Get("/", quoteHandler.List)
	quotes.Get("/:id", quoteHandler.GetByID)
	quotes.Put("/:id", quoteHandler.Update)
	quotes.Post("/:id/send", quoteHandler.Send)
	quotes.Post("/:id/finalize", quoteHandler.Finalize)
	quotes.Post("/:id/cancel", quoteHandler.Cancel)
	quotes.Get("/:id/pdf", quoteHandler.PDF)

	// Orders (las lee toda la operación; el estado lo mueve ventas y almacén)
	orders := protected.Group("/orders", RequireRole(rolesAnyActive...))
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", RequireRole(rolesSales...), orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id/status", RequireRole(rolesCatalog...), orderHandler.UpdateStatus)

	// Payments (cobranza: solo finanzas y administración; PAID sale de aquí)
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	orders.Post("/:id/payments", RequireRole(rolesFinance...), paymentHandler.Register)
	orders.Get("/:id/payments", RequireRole(rolesFinance...), paymentHandler.ListByOrder)

	// Settings (lectura abierta; escritura solo administración)
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings := protected.Group("/settings")
	settings.Get("/", RequireRole(rolesAnyActive...), settingsHandler.Get)
	settings.Put("/", RequireRole(rolesAdmin...), settingsHandler.Update)

	// Notifications (cada quien las suyas)
	notifications := protected.Group("/notifications", RequireRole(rolesAnyActive...))
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.ListMine)
	notifications.Post("/:id/read", notificationHandler.MarkRead)

	// Dashboard y navegación
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", RequireRole(rolesAnyActive...), dashboardHandler.Summary)
	protected.Get("/navigation", RequireRole(rolesAnyActive...), dashboardHandler.Navigation)

	// Documents (extracción IA de constancias para alta de clientes)
	documents := protected.Group("/documents", RequireRole(rolesSales...))
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	documents.Post("/parse", documentHandler.Parse)
}
