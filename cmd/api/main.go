package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/factory-api/internal/application/auth"
	"github.com/jhoicas/factory-api/internal/application/usecase"
	"github.com/jhoicas/factory-api/internal/infrastructure/postgres"
	"github.com/jhoicas/factory-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/factory-api/internal/interfaces/http"
	"github.com/jhoicas/factory-api/pkg/config"
	"github.com/jhoicas/factory-api/pkg/logger"
	"github.com/jhoicas/factory-api/pkg/ratelimit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Caché de respuestas: opcional, sin Redis la API funciona igual.
	var cache httpRouter.ResponseCache
	if cfg.Redis.URL != "" {
		rc, err := redis.NewCache(ctx, cfg.Redis.URL, time.Duration(cfg.Redis.TTLSeconds)*time.Second)
		if err != nil {
			log.Warn().Err(err).Msg("Redis no disponible, caché deshabilitada")
		} else {
			defer rc.Close()
			cache = rc
		}
	} else {
		log.Warn().Msg("REDIS_URL no configurado, caché deshabilitada")
	}

	limiter := ratelimit.New(time.Minute)
	defer limiter.Stop()

	employeeRepo := postgres.NewEmployeeRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	productionRepo := postgres.NewProductionRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)

	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, customerRepo, productRepo)
	productionUC := usecase.NewProductionUseCase(productionRepo)
	analyticsUC := usecase.NewAnalyticsUseCase(analyticsRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Bienvenido a " + cfg.App.Name})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		EmployeeUC:   employeeUC,
		ProductUC:    productUC,
		CustomerUC:   customerUC,
		OrderUC:      orderUC,
		ProductionUC: productionUC,
		AnalyticsUC:  analyticsUC,
		AuthUC:       authUC,
		Cache:        cache,
		Limiter:      limiter,
		JWTSecret:    cfg.JWT.Secret,
		ReadLimit:    cfg.RateLimit.ReadPerMin,
		WriteLimit:   cfg.RateLimit.WritePerMin,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
