package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"fooddelivery/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config := getConfig(logger)

	gormDB := mustOpenDB(config, logger)
	redisClient := openRedis(config)
	kafkaWriter := openKafka(config)

	root := cmd.NewCompositionRoot(config, gormDB, redisClient, kafkaWriter, logger)

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		logger.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(root, config.HTTPPort)
}

func getConfig(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Warn("No .env file found, relying on process environment")
	}

	return cmd.Config{
		HTTPPort:              envOrDefault("HTTP_PORT", "8080"),
		DBHost:                os.Getenv("DB_HOST"),
		DBPort:                envOrDefault("DB_PORT", "5432"),
		DBUser:                os.Getenv("DB_USER"),
		DBPassword:            os.Getenv("DB_PASSWORD"),
		DBName:                os.Getenv("DB_NAME"),
		DBSslMode:             envOrDefault("DB_SSLMODE", "disable"),
		RedisAddr:             os.Getenv("REDIS_ADDR"),
		RedisPassword:         os.Getenv("REDIS_PASSWORD"),
		RatingCacheTTLMin:     envIntOrDefault("RATING_CACHE_TTL_MIN", 10),
		KafkaHost:             os.Getenv("KAFKA_HOST"),
		KafkaOrderStatusTopic: envOrDefault("KAFKA_ORDER_STATUS_TOPIC", "order.status.changed"),
		DispatchSchedule:      envOrDefault("DISPATCH_SCHEDULE", "* * * * * *"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

func mustOpenDB(config cmd.Config, logger *slog.Logger) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode)

	// TranslateError maps unique violations to gorm.ErrDuplicatedKey, which
	// the rating repository relies on.
	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	return db
}

func openRedis(config cmd.Config) *redis.Client {
	if config.RedisAddr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
	})
}

func openKafka(config cmd.Config) *kafka.Writer {
	if config.KafkaHost == "" {
		return nil
	}
	return &kafka.Writer{
		Addr:     kafka.TCP(config.KafkaHost),
		Topic:    config.KafkaOrderStatusTopic,
		Balancer: &kafka.Hash{},
	}
}

func startWebServer(root cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	root.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
