package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"vrms-backend/internal/config"
	"vrms-backend/internal/jobs"
	"vrms-backend/internal/logger"
	"vrms-backend/internal/repository/mongodocs"
	"vrms-backend/internal/repository/postgres"
	"vrms-backend/internal/scheduler"
	"vrms-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'reconcile-paid-payments', 'all-nightly')")
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
	logger.Info("Starting VRMS Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
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

	// Initialize Repositories
	store := postgres.NewStore(db)
	docs := mongodocs.NewDocumentStore(mongoClient, cfg.DocumentStore.Database, mongodocs.CollectionNames{
		History:       cfg.DocumentStore.HistoryCollection,
		PreCondition:  cfg.DocumentStore.PreConditionCollection,
		PostCondition: cfg.DocumentStore.PostConditionCollection,
		Rating:        cfg.DocumentStore.RatingCollection,
	})

	// Initialize Services
	emailService := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	jobServices := &jobs.Services{
		Email: emailService,
	}

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(db, store, docs, jobServices, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "reconcile-paid-payments":
		jobRunner.ReconcilePaidPayments()
	case "mark-overdue-reservations":
		jobRunner.MarkOverdueReservations()
	case "purge-expired-verification":
		jobRunner.PurgeExpiredVerificationCodes()
	case "prune-orphan-documents":
		jobRunner.PruneOrphanVehicleDocuments()
	case "all-nightly":
		jobRunner.RunAllNightlyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - reconcile-paid-payments\n")
		fmt.Printf("  - mark-overdue-reservations\n")
		fmt.Printf("  - purge-expired-verification\n")
		fmt.Printf("  - prune-orphan-documents\n")
		fmt.Printf("  - all-nightly\n")
		os.Exit(1)
	}
}
