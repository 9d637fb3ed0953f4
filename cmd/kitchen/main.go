package main

import (
	"context"
	"database/sql"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	_ "github.com/platefork/kitchen/docs"
	"github.com/platefork/kitchen/internal/inventory"
	invdomain "github.com/platefork/kitchen/internal/inventory/domain"
	"github.com/platefork/kitchen/internal/menu"
	menudomain "github.com/platefork/kitchen/internal/menu/domain"
	"github.com/platefork/kitchen/internal/order"
	orderdomain "github.com/platefork/kitchen/internal/order/domain"
	orderhttp "github.com/platefork/kitchen/internal/order/delivery/http"
	"github.com/platefork/kitchen/internal/user"
	userdomain "github.com/platefork/kitchen/internal/user/domain"
	"github.com/platefork/kitchen/kafka"
	"github.com/platefork/kitchen/pkg/database"
	"github.com/platefork/kitchen/pkg/logger"
	"github.com/platefork/kitchen/pkg/tracing"
)

// @title Kitchen Management API
// @version 1.0
// @description Restaurant kitchen service: orders, menu, recipes and ingredient inventory.
// @host localhost:8080
// @BasePath /api
func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "kitchen-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting kitchen service")

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

	// Dedicated lib/pq connection for the health endpoint, so probes
	// do not compete with GORM's pool
	healthDB, err := database.NewPostgresConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to open health check connection")
	}
	defer healthDB.Close()

	// Run migrations
	if err := db.AutoMigrate(
		&invdomain.Location{},
		&invdomain.Ingredient{},
		&menudomain.MenuItem{},
		&menudomain.Recipe{},
		&menudomain.RecipeIngredient{},
		&orderdomain.Order{},
		&orderdomain.OrderItem{},
		&userdomain.User{},
	); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Initialize Kafka publisher; the service degrades to synchronous-only
	// behavior when the broker is unreachable
	var events orderdomain.EventPublisher
	kafkaBrokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	publisher, err := kafka.NewPublisher(kafkaBrokers)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Kafka publisher unavailable, order events disabled")
	} else {
		events = publisher
		defer publisher.Close()
	}

	// Initialize handlers with Wire DI
	orderHandler, err := order.InitializeHTTPHandler(db, events)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize order handler")
	}

	menuHandler, err := menu.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize menu handler")
	}

	inventoryHandler, err := inventory.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize inventory handler")
	}

	userHandler, err := user.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize user handler")
	}

	// Start gRPC health server in a goroutine
	grpcPort := getEnv("GRPC_PORT", "9090")
	go startGRPCServer(grpcPort)

	// Start HTTP server
	httpPort := getEnv("HTTP_PORT", "8080")
	go startHTTPServer(healthDB, httpPort, orderHandler, menuHandler, inventoryHandler, userHandler)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

type routeRegistrar interface {
	RegisterRoutes(router *mux.Router)
}

func startHTTPServer(sqlDB *sql.DB, port string, orderHandler *orderhttp.OrderHandler, handlers ...routeRegistrar) {
	// Setup router
	router := mux.NewRouter()

	// Get middleware configuration
	middlewareConfig := orderhttp.DefaultMiddlewareConfig()

	// Register all middlewares using middleware registration system
	orderhttp.RegisterMiddlewares(router, middlewareConfig)

	// Register routes
	orderHandler.RegisterRoutes(router)
	for _, h := range handlers {
		h.RegisterRoutes(router)
	}

	// Health check endpoint
	orderHandler.RegisterHealthCheck(router, sqlDB)

	// Swagger documentation
	orderhttp.RegisterSwaggerDocs(router, httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// CORS middleware
	corsHandler := orderhttp.SetupCORS(middlewareConfig)

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Str("swagger_endpoint", "/swagger/index.html").
		Msg("HTTP server started")

	if err := http.ListenAndServe(":"+port, corsHandler(router)); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

func startGRPCServer(port string) {
	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
	)

	// Health service lets orchestrators probe readiness over gRPC
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)

	// Register reflection service (for grpcurl and grpc tools)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		logger.Logger.Fatal().Err(err).Str("port", port).Msg("Failed to listen")
	}

	logger.Logger.Info().
		Str("port", port).
		Msg("gRPC server started")

	if err := grpcServer.Serve(lis); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start gRPC server")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
