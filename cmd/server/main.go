package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"veriface-backend/internal/config"
	"veriface-backend/internal/database"
	"veriface-backend/internal/handlers"
	"veriface-backend/internal/middleware"
	"veriface-backend/internal/repository"
	"veriface-backend/internal/router"
	"veriface-backend/internal/services"
	"veriface-backend/internal/websocket"
	"veriface-backend/internal/worker"
)

func main() {
	log.Println("🚀 Starting Veriface Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize PostgreSQL Connection Pool ────
	pool, err := database.NewPostgresPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("✗ PostgreSQL connection failed: %v", err)
	}
	defer pool.Close()
	log.Println("✓ PostgreSQL connected")

	// ──── Step 3: Initialize Redis Clients ────
	redisClients, err := database.NewRedisClients(cfg.RedisURL)
	if err != nil {
		log.Fatalf("✗ Redis connection failed: %v", err)
	}
	defer redisClients.Close()
	log.Println("✓ Redis connected")

	// ──── Step 4: Run Database Migrations ────
	if err := database.RunMigrations(pool, "migrations"); err != nil {
		log.Fatalf("✗ Database migration failed: %v", err)
	}
	log.Println("✓ Database migrations applied")

	// ──── Initialize Repositories ────
	instructorRepo := repository.NewInstructorRepo(pool)
	studentRepo := repository.NewStudentRepo(pool)
	sessionRepo := repository.NewSessionRepo(pool)
	attendanceRepo := repository.NewAttendanceRepo(pool)

	// ──── Initialize Services ────
	jwtAuth := middleware.NewJWTAuth(cfg.JWTSecret)
	authService := services.NewAuthService(instructorRepo, redisClients.Queue, jwtAuth)
	enrollmentService := services.NewEnrollmentService(studentRepo, cfg.EmbeddingDim)
	sessionService := services.NewSessionService(sessionRepo, cfg.SessionWindow)

	exportEnabled := cfg.SheetsCredentialsFile != "" && cfg.SheetsSpreadsheetID != ""
	attendanceService := services.NewAttendanceService(
		sessionService,
		studentRepo,
		attendanceRepo,
		redisClients.Queue,
		cfg.MatchThreshold,
		exportEnabled,
	)

	// ──── Initialize Handlers ────
	authHandler := handlers.NewAuthHandler(authService)
	studentHandler := handlers.NewStudentHandler(enrollmentService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService)

	// ──── Step 5: Start Sheet Export Worker Pool (optional) ────
	var exportPool *worker.Pool
	if exportEnabled {
		exporter, err := services.NewSheetsExporter(context.Background(), cfg.SheetsCredentialsFile, cfg.SheetsSpreadsheetID)
		if err != nil {
			log.Fatalf("✗ Sheets exporter initialization failed: %v", err)
		}
		exportPool = worker.NewPool(redisClients.Queue, exporter, 2)
		exportPool.Start()
		log.Println("✓ Sheet export worker pool started (2 goroutines)")
	} else {
		log.Println("• Sheet export disabled (no credentials configured)")
	}

	// ──── Step 6: Start WebSocket Hub ────
	wsHub := websocket.NewHub(redisClients.PubSub, jwtAuth)
	log.Println("✓ WebSocket hub started")

	// ──── Step 7: Start HTTP Server ────
	r := router.New(
		jwtAuth,
		authHandler,
		studentHandler,
		sessionHandler,
		attendanceHandler,
		wsHub,
		cfg.FrontendURL,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		if exportPool != nil {
			exportPool.Stop()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Veriface Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/v1", cfg.Port)
	log.Printf("  WS:  ws://localhost:%s/api/v1/ws", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
