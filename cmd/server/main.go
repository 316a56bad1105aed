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

	_ "github.com/lib/pq"

	httpapi "hotelier-backend/internal/api/http"
	"hotelier-backend/internal/config"
	"hotelier-backend/internal/logger"
	"hotelier-backend/internal/repository/postgres"
	"hotelier-backend/internal/security"
	"hotelier-backend/internal/service"
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
	logger.Info("Starting Hotelier Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
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

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.Email.APIKey,
		cfg.Email.FromEmail,
		cfg.Email.FromName,
	)

	// Initialize Services
	bookingSvc := service.NewBookingService(
		store.BookingRepository,
		store.RateRepository,
		store.HotelRepository,
		store.RoomTypeRepository,
		emailSvc,
	)
	hotelSvc := service.NewHotelService(store.HotelRepository)
	roomTypeSvc := service.NewRoomTypeService(store.RoomTypeRepository)
	roomSvc := service.NewRoomService(store.RoomRepository, store.HotelRepository, store.RoomTypeRepository)
	rateSvc := service.NewRateService(store.RateRepository, store.RoomTypeRepository)
	inventorySvc := service.NewInventoryService(store.InventoryRepository, store.HotelRepository, store.RoomTypeRepository)
	paymentSvc := service.NewPaymentService(store.PaymentRepository)

	// Build the REST router
	router := httpapi.NewRouter(httpapi.Services{
		Bookings:    bookingSvc,
		Hotels:      hotelSvc,
		RoomTypes:   roomTypeSvc,
		Rooms:       roomSvc,
		Rates:       rateSvc,
		Inventories: inventorySvc,
		Payments:    paymentSvc,
	}, tokenManager)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
