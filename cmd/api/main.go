package main

import (
	"context"
	"database/sql"
	"net/http"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/haemolink/lifeline/blood-bank-service/internal/adapters/handler"
	"github.com/haemolink/lifeline/blood-bank-service/internal/adapters/middleware"
	"github.com/haemolink/lifeline/blood-bank-service/internal/adapters/repository"
	"github.com/haemolink/lifeline/blood-bank-service/internal/config"
	"github.com/haemolink/lifeline/blood-bank-service/internal/core/domain"
	"github.com/haemolink/lifeline/blood-bank-service/internal/core/services"
	"github.com/haemolink/lifeline/blood-bank-service/internal/logger"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, "blood-bank-api")
	if err != nil {
		panic("failed to build logger: " + err.Error())
	}
	defer log.Sync()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, log)
	requestRepo := repository.NewBloodRequestRepository(db, log)
	donationRepo := repository.NewDonationRepository(db, log)
	inventoryRepo := repository.NewInventoryRepository(db, log)

	// Every hospital/blood-group pair exists from day one at zero units.
	if err := inventoryRepo.Seed(ctx, domain.SeedHospitals, domain.BloodGroups); err != nil {
		log.Fatal("failed to seed inventory", zap.Error(err))
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	log.Info("authenticated with Redis successfully")

	authService := services.NewAuthService(userRepo, cfg.JWTPrivateKey, redisClient)
	registrationService := services.NewRegistrationService(userRepo)
	requestService := services.NewBloodRequestService(requestRepo)
	donationService := services.NewDonationService(donationRepo)
	inventoryService := services.NewInventoryService(inventoryRepo)
	dashboardService := services.NewDashboardService(requestRepo, donationRepo)

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTPublicKey, redisClient, log)

	authHandler := handler.NewAuthHandler(authService, log)
	registrationHandler := handler.NewRegistrationHandler(registrationService, log)
	requestHandler := handler.NewBloodRequestHandler(requestService, log)
	donationHandler := handler.NewDonationHandler(donationService, log)
	inventoryHandler := handler.NewInventoryHandler(inventoryService, log)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, log)
	healthHandler := handler.NewHealthHandler(db, redisClient, log)

	mux := http.NewServeMux()

	// Health endpoints (OpenShift compatible)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("GET /health/ready", healthHandler.Ready)
	mux.HandleFunc("GET /health/live", healthHandler.Live)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Auth gate
	mux.HandleFunc("POST /api/auth/register", registrationHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/logout", authMiddleware.RequireAuth(authHandler.Logout))
	mux.HandleFunc("GET /api/auth/me", authMiddleware.RequireAuth(authHandler.Me))

	// Blood requests
	mux.HandleFunc("GET /api/blood-requests", authMiddleware.RequireAuth(requestHandler.List))
	mux.HandleFunc("POST /api/blood-requests", authMiddleware.RequireAuth(requestHandler.Create))
	mux.HandleFunc("PUT /api/blood-requests/{id}/status", authMiddleware.RequireAdmin(requestHandler.UpdateStatus))

	// Donations
	mux.HandleFunc("GET /api/donations", authMiddleware.RequireAuth(donationHandler.List))
	mux.HandleFunc("POST /api/donations", authMiddleware.RequireAuth(donationHandler.Create))
	mux.HandleFunc("PUT /api/donations/{id}/status", authMiddleware.RequireAdmin(donationHandler.UpdateStatus))

	// Inventory
	mux.HandleFunc("GET /api/inventory", authMiddleware.RequireAuth(inventoryHandler.List))
	mux.HandleFunc("GET /api/inventory/summary", authMiddleware.RequireAuth(inventoryHandler.Summary))
	mux.HandleFunc("PUT /api/inventory", authMiddleware.RequireAdmin(inventoryHandler.Upsert))

	// Dashboards
	mux.HandleFunc("GET /api/dashboard/stats", authMiddleware.RequireAuth(dashboardHandler.UserStats))
	mux.HandleFunc("GET /api/admin/stats", authMiddleware.RequireAdmin(dashboardHandler.AdminStats))

	root := middleware.CORSMiddleware(cfg.AllowedOrigins)(middleware.MetricsMiddleware(mux))

	log.Info("starting server", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, root); err != nil {
		log.Fatal("could not start server", zap.Error(err))
	}
}
