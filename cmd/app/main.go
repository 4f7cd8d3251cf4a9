package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"log/slog"

	"parceltrack/cmd"
	"parceltrack/internal/adapters/out/postgres/courierrepo"
	"parceltrack/internal/adapters/out/postgres/parcelrepo"
	"parceltrack/internal/adapters/out/postgres/trackingrepo"
	adapterhttp "parceltrack/internal/adapters/in/http"
	adapterredis "parceltrack/internal/adapters/out/redis"
	"parceltrack/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	goredis "github.com/redis/go-redis/v9"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	redisClient := connectRedis(configs)
	cacheTTL := trackingCacheTTL(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient, cacheTTL, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort, operationTimeout(configs))
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:        goDotEnvVariable("REDIS_ADDR"),
		TrackingCacheTTL: goDotEnvVariable("TRACKING_CACHE_TTL"),
		OperationTimeout: goDotEnvVariable("OPERATION_TIMEOUT"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&courierrepo.CourierDTO{},
		&trackingrepo.EventDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

// connectRedis returns nil when no address is configured, which disables the
// tracking cache without disabling the endpoint.
func connectRedis(configs cmd.Config) *goredis.Client {
	if configs.RedisAddr == "" {
		return nil
	}
	return goredis.NewClient(&goredis.Options{Addr: configs.RedisAddr})
}

func operationTimeout(configs cmd.Config) time.Duration {
	if configs.OperationTimeout == "" {
		return adapterhttp.DefaultOperationTimeout
	}
	timeout, err := time.ParseDuration(configs.OperationTimeout)
	if err != nil {
		log.Fatalf("Invalid OPERATION_TIMEOUT: %v", err)
	}
	return timeout
}

func trackingCacheTTL(configs cmd.Config) time.Duration {
	if configs.TrackingCacheTTL == "" {
		return adapterredis.DefaultTrackingTTL
	}
	ttl, err := time.ParseDuration(configs.TrackingCacheTTL)
	if err != nil {
		log.Fatalf("Invalid TRACKING_CACHE_TTL: %v", err)
	}
	return ttl
}

func startWebServer(app *cmd.CompositionRoot, port string, timeout time.Duration) {
	e := echo.New()
	e.Use(adapterhttp.OperationTimeout(timeout))
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	servers.RegisterHandlersWithBaseURL(e, app.CreateHTTPServer(), "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
