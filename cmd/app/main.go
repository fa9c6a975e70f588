package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"warehouse/cmd"
	"warehouse/internal/adapters/in/seed"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	loadDotEnv()
	configs := getConfigs()
	logger := newLogger(configs.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cmd.NewCompositionRoot(ctx, configs, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("Failed to release resources", "error", err)
		}
	}()

	if configs.SeedFile != "" {
		if err := applySeed(ctx, app, configs.SeedFile); err != nil {
			log.Fatalf("Failed to load seed data: %v", err)
		}
	}

	jobManager := app.NewJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               envOr("HTTP_PORT", "8080"),
		LogLevel:               envOr("LOG_LEVEL", "info"),
		StorageDriver:          envOr("STORAGE_DRIVER", cmd.StorageMemory),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 envOr("DB_PORT", "5432"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              envOr("DB_SSLMODE", "disable"),
		RedisAddr:              goDotEnvVariable("REDIS_ADDR"),
		RedisPassword:          goDotEnvVariable("REDIS_PASSWORD"),
		RedisDB:                intEnv("REDIS_DB", 0),
		ProductCacheTTL:        durationEnv("PRODUCT_CACHE_TTL", 5*time.Minute),
		KafkaHost:              goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderChangedTopic: envOr("KAFKA_ORDER_CHANGED_TOPIC", "warehouse.events"),
		SeedFile:               goDotEnvVariable("SEED_FILE"),
		LowStockThreshold:      intEnv("LOW_STOCK_THRESHOLD", 10),
		LowStockSchedule:       goDotEnvVariable("LOW_STOCK_SCHEDULE"),
		BacklogSchedule:        goDotEnvVariable("BACKLOG_SCHEDULE"),
		ActivityFeedSize:       intEnv("ACTIVITY_FEED_SIZE", 0),
	}
	return config
}

// loadDotEnv reads .env when present; the environment always wins.
func loadDotEnv() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}

func goDotEnvVariable(key string) string {
	return os.Getenv(key)
}

func envOr(key, fallback string) string {
	if value := goDotEnvVariable(key); value != "" {
		return value
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("%s must be an integer, got %q", key, raw)
	}
	return value
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("%s must be a duration such as 5m, got %q", key, raw)
	}
	return value
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger
}

func applySeed(ctx context.Context, app *cmd.CompositionRoot, path string) error {
	file, err := seed.LoadFile(path)
	if err != nil {
		return err
	}
	_, err = app.NewSeedLoader().Apply(ctx, file)
	return err
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true
	app.NewHTTPServer().RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}
