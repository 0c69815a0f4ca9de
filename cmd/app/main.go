package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"parcelmarket/cmd"
	"parcelmarket/internal/adapters/out/media"
	"parcelmarket/internal/adapters/out/postgres/deliveryrepo"
	"parcelmarket/internal/adapters/out/postgres/invoicerepo"
	"parcelmarket/internal/adapters/out/postgres/parcelrepo"
	"parcelmarket/internal/adapters/out/postgres/participantrepo"
	"parcelmarket/internal/adapters/out/postgres/triprepo"
	redisout "parcelmarket/internal/adapters/out/redis"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	cache, err := redisout.NewTrackingCache(configs.RedisURL, configs.TrackingCacheTTL)
	if err != nil {
		log.Fatalf("Error connecting to redis: %v", err)
	}
	defer cache.Close()

	mediaStore, err := media.NewDiskStore(configs.MediaDir, configs.MediaURLPrefix)
	if err != nil {
		log.Fatalf("Error preparing media storage: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, cache, mediaStore, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		slog.Info("no .env file, reading configuration from the environment")
	}

	return cmd.Config{
		HTTPPort:   envOr("HTTP_PORT", "8080"),
		DBHost:     envOr("DB_HOST", "localhost"),
		DBPort:     envOr("DB_PORT", "5432"),
		DBUser:     envOr("DB_USER", "postgres"),
		DBPassword: envOr("DB_PASSWORD", "postgres"),
		DBName:     envOr("DB_NAME", "parcelmarket"),
		DBSslMode:  envOr("DB_SSLMODE", "disable"),

		RedisURL:         envOr("REDIS_URL", "redis://localhost:6379/0"),
		TrackingCacheTTL: envDuration("TRACKING_CACHE_TTL", 24*time.Hour),

		MediaDir:       envOr("MEDIA_DIR", "./media"),
		MediaURLPrefix: envOr("MEDIA_URL_PREFIX", "/media"),

		PlatformFeeRate: envFloat("PLATFORM_FEE_RATE", 0.10),
		TaxRate:         envFloat("TAX_RATE", 0.19),
		PaymentTerm:     envDuration("PAYMENT_TERM", 14*24*time.Hour),

		OrphanRetention:        envDuration("ORPHAN_RETENTION", 72*time.Hour),
		OrphanCleanupSchedule:  envOr("ORPHAN_CLEANUP_SCHEDULE", "0 0 * * * *"),
		InvoiceOverdueSchedule: envOr("INVOICE_OVERDUE_SCHEDULE", "0 */10 * * * *"),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", value)
		return fallback
	}
	return parsed
}

func envFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		slog.Warn("invalid number in environment, using default", "key", key, "value", value)
		return fallback
	}
	return parsed
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to postgres: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&participantrepo.ParticipantDTO{},
		&parcelrepo.ParcelDTO{},
		&parcelrepo.ParcelImageDTO{},
		&triprepo.TripDTO{},
		&deliveryrepo.DeliveryDTO{},
		&deliveryrepo.DeliveryParcelDTO{},
		&invoicerepo.InvoiceDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.Static(configs.MediaURLPrefix, app.MediaDir())

	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
