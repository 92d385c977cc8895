package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/homevisit/internal/geo"
	"github.com/iudanet/homevisit/internal/models"
	"github.com/iudanet/homevisit/internal/server/handlers"
	"github.com/iudanet/homevisit/internal/server/middleware"
	"github.com/iudanet/homevisit/internal/server/password"
	"github.com/iudanet/homevisit/internal/server/storage/sqlite"
	"github.com/iudanet/homevisit/internal/validation"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const shutdownTimeout = 10 * time.Second

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", envOr("HOMEVISIT_ADDR", ":8080"), "Listen address")
	dbPath := flag.String("db", envOr("HOMEVISIT_DB", "homevisit-server.db"), "Path to SQLite database")
	radius := flag.Float64("radius", geo.DefaultRadiusMeters, "Completion radius in meters")
	tokenTTL := flag.Duration("token-ttl", time.Hour, "Access token lifetime")
	addUser := flag.String("add-user", "", "Create a worker account and exit (password from HOMEVISIT_PASSWORD)")
	fullName := flag.String("full-name", "", "Full name for -add-user")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if err := run(logger, *addr, *dbPath, *radius, *tokenTTL, *addUser, *fullName); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, addr, dbPath string, radius float64, tokenTTL time.Duration, addUser, fullName string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}()

	if addUser != "" {
		return createWorker(ctx, logger, store, addUser, fullName)
	}

	secret := os.Getenv("HOMEVISIT_JWT_SECRET")
	if secret == "" {
		return fmt.Errorf("HOMEVISIT_JWT_SECRET is required")
	}

	jwtConfig := handlers.JWTConfig{
		Secret:         []byte(secret),
		AccessTokenTTL: tokenTTL,
	}

	authHandler := handlers.NewAuthHandler(logger, store, jwtConfig)
	visitsHandler := handlers.NewVisitsHandler(logger, store, radius)
	healthHandler := handlers.NewHealthHandler(logger)

	requireAuth := middleware.AuthMiddleware(logger, jwtConfig)
	// Логин защищаем от перебора паролей
	loginLimit := middleware.RateLimitMiddleware(10, time.Minute, logger)

	mux := http.NewServeMux()
	mux.Handle("GET /health", http.HandlerFunc(healthHandler.Health))
	mux.Handle("HEAD /health", http.HandlerFunc(healthHandler.Health))
	mux.Handle("POST /api/v1/auth/login", loginLimit(http.HandlerFunc(authHandler.Login)))
	mux.Handle("GET /api/v1/visits", requireAuth(http.HandlerFunc(visitsHandler.List)))
	mux.Handle("POST /api/v1/visits/{id}/complete", requireAuth(http.HandlerFunc(visitsHandler.Complete)))
	mux.Handle("POST /api/v1/visits/completed", requireAuth(http.HandlerFunc(visitsHandler.CheckCompleted)))
	mux.Handle("POST /api/v1/admin/visits", requireAuth(http.HandlerFunc(visitsHandler.Create)))
	mux.Handle("POST /api/v1/admin/visits/{id}/reopen", requireAuth(http.HandlerFunc(visitsHandler.Reopen)))

	handler := middleware.RecoveryMiddleware(logger)(
		middleware.LoggingWithSkip(logger, []string{"/health"})(mux),
	)

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errC := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr, "version", Version)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()

	select {
	case err := <-errC:
		return fmt.Errorf("listen failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	return nil
}

// createWorker - бутстрап учетной записи работника без отдельной
// административной консоли
func createWorker(ctx context.Context, logger *slog.Logger, store *sqlite.Storage, username, fullName string) error {
	if err := validation.ValidateUsername(username); err != nil {
		return err
	}

	plaintext := os.Getenv("HOMEVISIT_PASSWORD")
	if plaintext == "" {
		return fmt.Errorf("HOMEVISIT_PASSWORD is required for -add-user")
	}

	hash, err := password.Hash(plaintext)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		FullName:     fullName,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := store.CreateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("worker account created", "username", username, "user_id", user.ID)
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func printVersion() {
	fmt.Printf("HomeVisit Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
