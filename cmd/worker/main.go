package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	invrepo "github.com/platefork/kitchen/internal/inventory/repository"
	menurepo "github.com/platefork/kitchen/internal/menu/repository"
	orderrepo "github.com/platefork/kitchen/internal/order/repository"
	"github.com/platefork/kitchen/internal/order/usecase/query"
	"github.com/platefork/kitchen/kafka"
	"github.com/platefork/kitchen/pkg/database"
	"github.com/platefork/kitchen/pkg/logger"
	"github.com/platefork/kitchen/pkg/tracing"
)

// The worker consumes order events and runs the sufficiency check for
// every placed order, so the kitchen learns about shortages without a
// client having to poll the check endpoint.
func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "kitchen-worker")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Msg("Starting kitchen worker")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Load database configuration
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "kitchendb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Connect to database
	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	checker := query.NewCheckInventoryHandler(
		orderrepo.NewOrderRepositoryWithTracing(orderrepo.NewGormOrderRepository(db)),
		menurepo.NewGormRecipeRepository(db),
		invrepo.NewIngredientRepositoryWithTracing(invrepo.NewGormIngredientRepository(db)),
	)

	// Initialize Kafka consumer
	kafkaBrokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	groupID := getEnv("KAFKA_GROUP_ID", "kitchen-worker")
	consumer, err := kafka.NewConsumer(kafkaBrokers, groupID, []string{
		kafka.TopicOrderPlaced,
		kafka.TopicOrderStatusChanged,
	})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka consumer")
	}
	defer consumer.Close()

	consumer.OnOrderPlaced(func(ctx context.Context, event kafka.OrderPlacedEvent) error {
		check, err := checker.Handle(ctx, query.CheckInventoryQuery{OrderID: event.OrderID})
		if err != nil {
			return err
		}

		if check.Sufficient {
			logger.Info(ctx).
				Uint("order_id", event.OrderID).
				Str("customer", event.CustomerName).
				Msg("Order can be fulfilled from current stock")
			return nil
		}

		for _, shortage := range check.Shortages {
			logger.Warn(ctx).
				Uint("order_id", event.OrderID).
				Uint("ingredient_id", shortage.IngredientID).
				Str("ingredient", shortage.Name).
				Float64("available", shortage.Available).
				Float64("required", shortage.Required).
				Float64("missing", shortage.Missing).
				Str("unit", shortage.Unit).
				Msg("Ingredient shortage for placed order")
		}
		return nil
	})

	consumer.OnOrderStatusChanged(func(ctx context.Context, event kafka.OrderStatusChangedEvent) error {
		logger.Info(ctx).
			Uint("order_id", event.OrderID).
			Str("status", event.Status).
			Bool("restored_stock", event.RestoredStock).
			Msg("Order status changed")
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start Kafka consumer")
	}

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down worker...")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
