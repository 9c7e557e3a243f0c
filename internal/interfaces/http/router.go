package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/factory-pro/internal/application/auth"
	"github.com/tu-usuario/factory-pro/internal/application/usecase"
	"github.com/tu-usuario/factory-pro/internal/domain/entity"
	"github.com/tu-usuario/factory-pro/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	EmployeeUC   *usecase.EmployeeUseCase
	ProductUC    *usecase.ProductUseCase
	CustomerUC   *usecase.CustomerUseCase
	OrderUC      *usecase.OrderUseCase
	ProductionUC *usecase.ProductionUseCase
	UserUC       *usecase.UserUseCase
	AnalyticsUC  *usecase.AnalyticsUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
	RateLimit    config.RateLimitConfig
}

// Router registra las rutas de la API con su rol mínimo y rate limit.
func Router(app *fiber.App, deps RouterDeps) {
	readLimit := func() fiber.Handler { return RateLimiter(deps.RateLimit, deps.RateLimit.ReadPerMin) }
	writeLimit := func() fiber.Handler { return RateLimiter(deps.RateLimit, deps.RateLimit.WritePerMin) }

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Welcome to the Factory Management System!"})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	authRequired := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(entity.RoleAdmin)
	superAdminOnly := RequireRole(entity.RoleSuperAdmin)

	// Auth: login público, registro y gestión de cuentas restringidos
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	authGroup := app.Group("/auth")
	authGroup.Post("/login", RateLimiter(deps.RateLimit, deps.RateLimit.LoginPerMin), authHandler.Login)
	authGroup.Post("/register", RateLimiter(deps.RateLimit, deps.RateLimit.RegisterPerMin), authRequired, superAdminOnly, authHandler.Register)
	authGroup.Get("/", readLimit(), authRequired, adminOnly, authHandler.List)
	authGroup.Get("/:id", readLimit(), authRequired, superAdminOnly, authHandler.GetByID)
	authGroup.Put("/:id", writeLimit(), authRequired, superAdminOnly, authHandler.Update)
	authGroup.Delete("/:id", writeLimit(), authRequired, superAdminOnly, authHandler.Delete)

	// Employees (admin)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees := app.Group("/employees", authRequired, adminOnly)
	employees.Post("/", writeLimit(), employeeHandler.Create)
	employees.Get("/", readLimit(), employeeHandler.List)
	employees.Get("/:id", readLimit(), employeeHandler.GetByID)
	employees.Put("/:id", writeLimit(), employeeHandler.Update)
	employees.Delete("/:id", writeLimit(), employeeHandler.Delete)

	// Products (admin)
	productHandler := NewProductHandler(deps.ProductUC)
	products := app.Group("/products", authRequired, adminOnly)
	products.Post("/", writeLimit(), productHandler.Create)
	products.Get("/", readLimit(), productHandler.List)
	products.Get("/:id", readLimit(), productHandler.GetByID)
	products.Put("/:id", writeLimit(), productHandler.Update)
	products.Delete("/:id", writeLimit(), productHandler.Delete)

	// Customers (admin)
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers := app.Group("/customers", authRequired, adminOnly)
	customers.Post("/", writeLimit(), customerHandler.Create)
	customers.Get("/", readLimit(), customerHandler.List)
	customers.Get("/:id", readLimit(), customerHandler.GetByID)
	customers.Put("/:id", writeLimit(), customerHandler.Update)
	customers.Delete("/:id", writeLimit(), customerHandler.Delete)

	// Orders: cualquier usuario autenticado puede crear; el resto es admin
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders := app.Group("/orders", authRequired)
	orders.Post("/", writeLimit(), RequireRole(entity.RoleUser), orderHandler.Create)
	orders.Get("/", readLimit(), adminOnly, orderHandler.List)
	orders.Get("/:id", readLimit(), adminOnly, orderHandler.GetByID)
	orders.Put("/:id", writeLimit(), adminOnly, orderHandler.Update)
	orders.Delete("/:id", writeLimit(), adminOnly, orderHandler.Delete)

	// Production (admin)
	productionHandler := NewProductionHandler(deps.ProductionUC)
	production := app.Group("/production", authRequired, adminOnly)
	production.Post("/", writeLimit(), productionHandler.Create)
	production.Get("/", readLimit(), productionHandler.List)
	production.Get("/:id", readLimit(), productionHandler.GetByID)
	production.Put("/:id", writeLimit(), productionHandler.Update)
	production.Delete("/:id", writeLimit(), productionHandler.Delete)

	// Analytics (admin)
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	analytics := app.Group("/analytics", authRequired, adminOnly)
	analytics.Get("/employee-performance", readLimit(), analyticsHandler.EmployeePerformance)
	analytics.Get("/top-products", readLimit(), analyticsHandler.TopSellingProducts)
	analytics.Get("/customer-lifetime-value", readLimit(), analyticsHandler.CustomerLifetimeValue)
	analytics.Get("/production-efficiency", readLimit(), analyticsHandler.ProductionEfficiency)
}
