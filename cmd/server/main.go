package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "vrms-backend/internal/api/http"
	"vrms-backend/internal/config"
	"vrms-backend/internal/gateway"
	"vrms-backend/internal/logger"
	"vrms-backend/internal/repository/mongodocs"
	"vrms-backend/internal/repository/postgres"
	"vrms-backend/internal/security"
	"vrms-backend/internal/service"
	"vrms-backend/internal/storage"
	"vrms-backend/internal/utils"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Local development overrides; missing .env is fine
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting VRMS Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Document Store
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	mongoClient, err := mongodocs.Connect(ctx, cfg.DocumentStore.URI)
	cancel()
	if err != nil {
		logger.Error("Failed to connect to document store", "error", err)
		log.Fatalf("Failed to connect to document store: %v", err)
	}
	defer mongoClient.Disconnect(context.Background())
	logger.Info("Document store connection established", "database", cfg.DocumentStore.Database)

	// Initialize Repositories
	store := postgres.NewStore(db)
	docs := mongodocs.NewDocumentStore(mongoClient, cfg.DocumentStore.Database, mongodocs.CollectionNames{
		History:       cfg.DocumentStore.HistoryCollection,
		PreCondition:  cfg.DocumentStore.PreConditionCollection,
		PostCondition: cfg.DocumentStore.PostConditionCollection,
		Rating:        cfg.DocumentStore.RatingCollection,
	})

	// Initialize Security
	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Minute,
	)

	// Initialize Payment Gateway
	var gw gateway.PaymentGateway
	if cfg.Gateway.Simulate {
		logger.Info("Using simulated payment gateway")
		gw = gateway.NewSimulatedGateway()
	} else {
		logger.Error("Hosted payment gateway is not configured in this build")
		log.Fatalf("Set gateway.simulate: true; no hosted gateway is wired in yet")
	}

	// Initialize Photo Storage
	photoStore, err := storage.NewLocalStorage(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize photo storage", "error", err)
		log.Fatalf("Failed to initialize photo storage: %v", err)
	}
	logger.Info("Using local photo storage", "upload_dir", cfg.Storage.UploadDir)

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	// Initialize Services
	fleetSvc := service.NewFleetService(
		store.VehicleRepository,
		store.CarRepository,
		store.BusRepository,
		store.TruckRepository,
		store.MotorcycleRepository,
		docs.VehicleHistoryRepository,
		docs.VehiclePreConditionRepository,
		docs.VehiclePostConditionRepository,
		docs.VehicleRatingRepository,
		cfg.Fleet.AllowHardDelete,
	)
	reservationSvc := service.NewReservationService(
		store.ReservationRepository,
		store.VehicleRepository,
		store.TripDetailsRepository,
		docs.VehicleHistoryRepository,
	)
	paymentSvc := service.NewPaymentService(
		store.PaymentRepository,
		store.ReceiptRepository,
		store.ReservationRepository,
		store.VehicleRepository,
		gw,
		cfg.Gateway.Currency,
	)
	conditionSvc := service.NewConditionService(
		docs.VehiclePreConditionRepository,
		docs.VehiclePostConditionRepository,
		docs.VehicleHistoryRepository,
		docs.VehicleRatingRepository,
		utils.DamageCosts{
			ScratchCents: cfg.Damage.ScratchCents,
			DentCents:    cfg.Damage.DentCents,
			RustCents:    cfg.Damage.RustCents,
		},
	)
	userSvc := service.NewUserService(
		store.UserRepository,
		store.CustomerRepository,
		store.AgentRepository,
		emailSvc,
		tokenManager,
	)
	insuranceSvc := service.NewInsuranceService(
		store.InsurancePolicyRepository,
		store.CustomerRepository,
	)

	// Initialize Router
	router := httpapi.NewRouter(httpapi.Services{
		Fleet:        fleetSvc,
		Reservations: reservationSvc,
		Payments:     paymentSvc,
		Conditions:   conditionSvc,
		Users:        userSvc,
		Insurance:    insuranceSvc,
	}, tokenManager, photoStore)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Serve until interrupted
	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
