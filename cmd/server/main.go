package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wallet-api/internal/config"
	"wallet-api/internal/database"
	"wallet-api/internal/handlers"
	appmiddleware "wallet-api/internal/middleware"
	"wallet-api/internal/repositories"
	"wallet-api/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}

	// Repositories
	accountRepo := repositories.NewAccountRepository(db)
	userRepo := repositories.NewUserRepository(db)
	accountTypeRepo := repositories.NewAccountTypeRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	productRepo := repositories.NewFinancerProductRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	accountService := services.NewAccountService(
		accountRepo, userRepo, accountTypeRepo, transactionRepo, productRepo,
		metrics, logger,
	)
	tokenService := services.NewTokenService(&cfg.JWT)
	authService := services.NewAuthService(userRepo, tokenService, logger)

	// Handlers
	accountHandler := handlers.NewAccountHandler(accountService)
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()

	e.Use(appmiddleware.RequestID())
	e.Use(appmiddleware.PanicRecovery())
	e.Use(appmiddleware.SecurityHeaders())
	e.Use(appmiddleware.RateLimiterWithConfig(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.POST("/api/auth/login", authHandler.Login)

	api := e.Group("/api", appmiddleware.RequireAuth(tokenService))
	api.POST("/accounts", accountHandler.CreateAccount)
	api.GET("/accounts", accountHandler.GetAllAccounts)
	api.GET("/accounts/:id", accountHandler.GetAccount)
	api.PATCH("/accounts/:id", accountHandler.UpdateAccount)
	api.DELETE("/accounts/:id", accountHandler.DeleteAccount)
	api.GET("/accounts/:id/transactions", accountHandler.GetAccountTransactions)
	api.GET("/accounts/:id/products", accountHandler.GetAccountFinancerProducts)
	api.GET("/users/:userId/accounts", accountHandler.GetUserAccounts)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("starting server", "addr", server.Addr, "environment", cfg.Server.Environment)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown: ", err)
	}
}
