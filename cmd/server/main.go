package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	"toolrental-backend/internal/calendar"
	"toolrental-backend/internal/config"
	"toolrental-backend/internal/jobs"
	"toolrental-backend/internal/logger"
	"toolrental-backend/internal/repository"
	"toolrental-backend/internal/repository/memory"
	"toolrental-backend/internal/repository/postgres"
	"toolrental-backend/internal/scheduler"
	"toolrental-backend/internal/service"

	httpapi "toolrental-backend/internal/api/http"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Tool Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Catalog configuration", "source", cfg.Catalog.Source)

	// Initialize the tool catalog
	var catalog repository.ToolCatalog
	switch cfg.Catalog.Source {
	case "postgres":
		logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			logger.Error("Failed to ping database", "error", err)
			log.Fatalf("Failed to ping database: %v", err)
		}
		logger.Info("Database connection established")
		catalog = postgres.NewCatalog(db)
	default:
		logger.Info("Using in-memory catalog with reference seed data")
		catalog = memory.NewCatalog()
	}

	// Initialize the holiday calendar and the rental service
	holidayCalendar := calendar.New()
	rentalSvc := service.NewRentalService(catalog, holidayCalendar)

	// Warm the holiday cache at startup, then keep it warm via cron
	jobRunner := jobs.NewJobRunner(cfg, holidayCalendar)
	jobRunner.WarmHolidayCache()

	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	// Set up the HTTP server
	router := mux.NewRouter()
	httpapi.RegisterRentalRoutes(router, rentalSvc)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
