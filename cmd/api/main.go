package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/bun"

	"github.com/vam-insurance/insurance-api/internal/auth"
	"github.com/vam-insurance/insurance-api/internal/config"
	"github.com/vam-insurance/insurance-api/internal/cors"
	"github.com/vam-insurance/insurance-api/internal/database"
	"github.com/vam-insurance/insurance-api/internal/disaster"
	"github.com/vam-insurance/insurance-api/internal/document"
	"github.com/vam-insurance/insurance-api/internal/geoanalyst"
	httpServer "github.com/vam-insurance/insurance-api/internal/http"
	"github.com/vam-insurance/insurance-api/internal/insurance"
	"github.com/vam-insurance/insurance-api/internal/logging"
	"github.com/vam-insurance/insurance-api/internal/observability"
	"github.com/vam-insurance/insurance-api/internal/user"
	"github.com/vam-insurance/insurance-api/internal/weather"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.NewLogger(!cfg.Server.IsProduction())
	logger.Info("starting application",
		"environment", cfg.Server.Environment,
		"port", cfg.Server.Port,
	)

	db, err := initDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	redisClient, err := initRedis(cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to initialize Redis: %w", err)
	}
	defer redisClient.Close()

	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	// Repositories
	userRepo := user.NewRepository(db)
	disasterRepo := disaster.NewRepository(db)
	documentRepo := document.NewRepository(db)
	insuranceRepo := insurance.NewRepository(db)

	// Auth
	tokenService := auth.NewTokenService(cfg.Auth.SecretKey, cfg.Auth.TokenLifetime, clock)
	authService := auth.NewService(userRepo, tokenService)

	// Weather: OpenWeather client behind a Redis snapshot cache
	weatherClient := weather.NewClient(
		cfg.Weather.APIKey,
		cfg.Weather.BaseURL,
		cfg.Weather.Timeout,
		clock,
		metrics,
	)
	weatherFetcher := weather.NewCachedFetcher(
		weatherClient,
		redisClient,
		cfg.Weather.CacheTTL,
		logger,
		metrics,
	)

	handlers := httpServer.Handlers{
		Auth:       auth.NewHandler(authService),
		Disaster:   disaster.NewHandler(disasterRepo),
		Document:   document.NewHandler(documentRepo),
		Insurance:  insurance.NewHandler(insuranceRepo),
		Weather:    weather.NewHandler(weatherFetcher, cfg.Weather.APIKey != ""),
		GeoAnalyst: geoanalyst.NewHandler(clock),
	}

	policy := cors.NewPolicy(cfg.Server)
	router := httpServer.NewRouter(cfg, policy, handlers, logger, metrics)

	server := httpServer.NewServer(
		":"+cfg.Server.Port,
		router,
		cfg.Server.ReadTimeout,
		cfg.Server.WriteTimeout,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Printf("Received signal: %v", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// initDB initializes the database connection and returns a Bun DB instance
func initDB(cfg config.DatabaseConfig) (*bun.DB, error) {
	sqlDB, err := sql.Open("postgres", cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	return database.NewBunDB(sqlDB), nil
}

// initRedis initializes the Redis connection and returns a Redis client
func initRedis(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return client, nil
}
