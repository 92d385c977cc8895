package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/iudanet/homevisit/internal/client/api"
	"github.com/iudanet/homevisit/internal/client/auth"
	"github.com/iudanet/homevisit/internal/client/cli"
	"github.com/iudanet/homevisit/internal/client/connectivity"
	"github.com/iudanet/homevisit/internal/client/iocli"
	"github.com/iudanet/homevisit/internal/client/location"
	"github.com/iudanet/homevisit/internal/client/queue"
	"github.com/iudanet/homevisit/internal/client/storage/boltdb"
	"github.com/iudanet/homevisit/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "homevisit-client.db", "Path to local database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	io := iocli.NewStdio()

	args := flag.Args()
	if len(args) == 0 {
		cli.New(nil, nil, nil, nil, io).PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	ctx := context.Background()

	// Лог клиента уходит в stderr, чтобы не мешаться с выводом команд
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	// Открываем локальное хранилище (кэш, очередь, сессия)
	store, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(*serverURL)

	monitor := connectivity.NewMonitor(
		connectivity.NewHTTPProber(*serverURL),
		logger,
		connectivity.DefaultPollInterval,
	)

	authService := auth.NewService(apiClient, store)
	offlineQueue := queue.New(store, logger)
	syncService := sync.NewService(apiClient, monitor, store, offlineQueue, authService, logger)

	c := cli.New(authService, syncService, monitor, locationProvider(), io)
	c.Run(ctx, command, args[1:])
}

// locationProvider собирает источник позиции устройства. Без
// встроенного GPS позицию можно зафиксировать через окружение
// (HOMEVISIT_LAT/HOMEVISIT_LNG), иначе координаты обязаны прийти из
// флагов команды complete.
func locationProvider() location.Provider {
	latStr, lngStr := os.Getenv("HOMEVISIT_LAT"), os.Getenv("HOMEVISIT_LNG")
	if latStr == "" || lngStr == "" {
		return location.Unavailable{}
	}

	lat, errLat := strconv.ParseFloat(latStr, 64)
	lng, errLng := strconv.ParseFloat(lngStr, 64)
	if errLat != nil || errLng != nil {
		return location.Unavailable{}
	}

	return location.WithTimeout(location.NewStatic(lat, lng), 0)
}

func printVersion() {
	fmt.Printf("HomeVisit Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
