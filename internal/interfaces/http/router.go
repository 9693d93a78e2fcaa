package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/factory-api/internal/application/auth"
	"github.com/jhoicas/factory-api/internal/application/usecase"
	"github.com/jhoicas/factory-api/internal/domain/entity"
	"github.com/jhoicas/factory-api/pkg/ratelimit"
)

// RouterDeps dependencias inyectadas del router (handlers, caché, limiter).
type RouterDeps struct {
	EmployeeUC   *usecase.EmployeeUseCase
	ProductUC    *usecase.ProductUseCase
	CustomerUC   *usecase.CustomerUseCase
	OrderUC      *usecase.OrderUseCase
	ProductionUC *usecase.ProductionUseCase
	AnalyticsUC  *usecase.AnalyticsUseCase
	AuthUC       *auth.AuthUseCase

	Cache     ResponseCache      // nil deshabilita la caché
	Limiter   *ratelimit.Limiter // nil deshabilita el rate limiting
	JWTSecret string

	ReadLimit  int // GETs por IP por ventana
	WriteLimit int // escrituras por IP por ventana
}

// Router registra todas las rutas con su cadena de middlewares explícita:
// rate limit -> auth -> rol mínimo -> caché -> handler.
func Router(app *fiber.App, d RouterDeps) {
	authMW := AuthMiddleware(d.JWTSecret)
	asUser := RequireRole(entity.RoleUser)
	asAdmin := RequireRole(entity.RoleAdmin)
	asSuperAdmin := RequireRole(entity.RoleSuperAdmin)

	readLimit := func(group string) fiber.Handler {
		return RateLimitMiddleware(d.Limiter, group+":read", d.ReadLimit)
	}
	writeLimit := func(group string) fiber.Handler {
		return RateLimitMiddleware(d.Limiter, group+":write", d.WriteLimit)
	}

	// Auth: login público (con su propio límite); gestión de usuarios solo super_admin.
	ah := NewAuthHandler(d.AuthUC)
	authGroup := app.Group("/auth")
	authGroup.Post("/login", RateLimitMiddleware(d.Limiter, "login", d.ReadLimit), ah.Login)
	authGroup.Post("/register", writeLimit("auth"), authMW, asSuperAdmin, ah.Register)
	authGroup.Get("/users/:id", readLimit("auth"), authMW, asSuperAdmin, ah.GetUser)
	authGroup.Put("/users/:id", writeLimit("auth"), authMW, asSuperAdmin, ah.UpdateUser)
	authGroup.Delete("/users/:id", writeLimit("auth"), authMW, asSuperAdmin, ah.DeleteUser)

	// Empleados (admin).
	eh := NewEmployeeHandler(d.EmployeeUC)
	employeeCache := CacheMiddleware(d.Cache, "employees", "analytics")
	employees := app.Group("/employees")
	employees.Get("/", readLimit("employees"), authMW, asAdmin, employeeCache, eh.List)
	employees.Get("/:id", readLimit("employees"), authMW, asAdmin, employeeCache, eh.GetByID)
	employees.Post("/", writeLimit("employees"), authMW, asAdmin, employeeCache, eh.Create)
	employees.Put("/:id", writeLimit("employees"), authMW, asAdmin, employeeCache, eh.Update)
	employees.Delete("/:id", writeLimit("employees"), authMW, asAdmin, employeeCache, eh.Delete)

	// Productos (admin).
	ph := NewProductHandler(d.ProductUC)
	productCache := CacheMiddleware(d.Cache, "products", "analytics")
	products := app.Group("/products")
	products.Get("/", readLimit("products"), authMW, asAdmin, productCache, ph.List)
	products.Get("/:id", readLimit("products"), authMW, asAdmin, productCache, ph.GetByID)
	products.Post("/", writeLimit("products"), authMW, asAdmin, productCache, ph.Create)
	products.Put("/:id", writeLimit("products"), authMW, asAdmin, productCache, ph.Update)
	products.Delete("/:id", writeLimit("products"), authMW, asAdmin, productCache, ph.Delete)

	// Clientes (admin).
	ch := NewCustomerHandler(d.CustomerUC)
	customerCache := CacheMiddleware(d.Cache, "customers", "analytics")
	customers := app.Group("/customers")
	customers.Get("/", readLimit("customers"), authMW, asAdmin, customerCache, ch.List)
	customers.Get("/:id", readLimit("customers"), authMW, asAdmin, customerCache, ch.GetByID)
	customers.Post("/", writeLimit("customers"), authMW, asAdmin, customerCache, ch.Create)
	customers.Put("/:id", writeLimit("customers"), authMW, asAdmin, customerCache, ch.Update)
	customers.Delete("/:id", writeLimit("customers"), authMW, asAdmin, customerCache, ch.Delete)

	// Pedidos: crear está abierto a cualquier usuario autenticado; el resto es admin.
	oh := NewOrderHandler(d.OrderUC)
	orderCache := CacheMiddleware(d.Cache, "orders", "analytics")
	orders := app.Group("/orders")
	orders.Get("/", readLimit("orders"), authMW, asAdmin, orderCache, oh.List)
	orders.Get("/:id", readLimit("orders"), authMW, asAdmin, orderCache, oh.GetByID)
	orders.Post("/", writeLimit("orders"), authMW, asUser, orderCache, oh.Create)
	orders.Put("/:id", writeLimit("orders"), authMW, asAdmin, orderCache, oh.Update)
	orders.Delete("/:id", writeLimit("orders"), authMW, asAdmin, orderCache, oh.Delete)

	// Producción (admin).
	prh := NewProductionHandler(d.ProductionUC)
	productionCache := CacheMiddleware(d.Cache, "production", "analytics")
	production := app.Group("/production")
	production.Get("/", readLimit("production"), authMW, asAdmin, productionCache, prh.List)
	production.Get("/:id", readLimit("production"), authMW, asAdmin, productionCache, prh.GetByID)
	production.Post("/", writeLimit("production"), authMW, asAdmin, productionCache, prh.Create)
	production.Put("/:id", writeLimit("production"), authMW, asAdmin, productionCache, prh.Update)
	production.Delete("/:id", writeLimit("production"), authMW, asAdmin, productionCache, prh.Delete)

	// Reportes (admin, solo lectura, cacheados).
	anh := NewAnalyticsHandler(d.AnalyticsUC)
	analyticsCache := CacheMiddleware(d.Cache, "analytics")
	analytics := app.Group("/analytics")
	analytics.Get("/employee-performance", readLimit("analytics"), authMW, asAdmin, analyticsCache, anh.EmployeePerformance)
	analytics.Get("/top-products", readLimit("analytics"), authMW, asAdmin, analyticsCache, anh.TopSellingProducts)
	analytics.Get("/customer-lifetime-value", readLimit("analytics"), authMW, asAdmin, analyticsCache, anh.CustomerLifetimeValue)
	analytics.Get("/production-efficiency", readLimit("analytics"), authMW, asAdmin, analyticsCache, anh.ProductionEfficiency)
}
