package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/factory-pro/internal/application/auth"
	"github.com/tu-usuario/factory-pro/internal/application/usecase"
	"github.com/tu-usuario/factory-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/factory-pro/internal/interfaces/http"
	"github.com/tu-usuario/factory-pro/pkg/config"
	"github.com/tu-usuario/factory-pro/pkg/logger"
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

	employeeRepo := postgres.NewEmployeeRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	productionRepo := postgres.NewProductionRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	orderUC := usecase.NewOrderUseCase(txRunner, orderRepo)
	productionUC := usecase.NewProductionUseCase(txRunner, productionRepo)
	userUC := usecase.NewUserUseCase(userRepo)
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
	app.Use(cors.New())
	app.Use(httpRouter.LoggingMiddleware(log))

	httpRouter.Router(app, httpRouter.RouterDeps{
		EmployeeUC:   employeeUC,
		ProductUC:    productUC,
		CustomerUC:   customerUC,
		OrderUC:      orderUC,
		ProductionUC: productionUC,
		UserUC:       userUC,
		AnalyticsUC:  analyticsUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
		RateLimit:    cfg.RateLimit,
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
