package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/platefork/kitchen/api-gateway/config"
	"github.com/platefork/kitchen/api-gateway/health"
	"github.com/platefork/kitchen/api-gateway/middleware"
	"github.com/platefork/kitchen/api-gateway/proxy"
)

// RouteDefinition defines a route mapping
type RouteDefinition struct {
	Prefix       string
	ServiceName  string
	Description  string
	RequireAuth  bool // Requires authentication
	RequireAdmin bool // Requires admin role
}

// Routes holds all route definitions. Order matters: more specific
// prefixes must come before the prefixes they extend.
var Routes = []RouteDefinition{
	// Public routes (no auth required)
	{
		Prefix:       "/api/users/register",
		ServiceName:  "kitchen",
		Description:  "Staff registration",
		RequireAuth:  false,
		RequireAdmin: false,
	},
	{
		Prefix:       "/api/users/login",
		ServiceName:  "kitchen",
		Description:  "Staff login",
		RequireAuth:  false,
		RequireAdmin: false,
	},
	{
		Prefix:       "/health",
		ServiceName:  "kitchen",
		Description:  "Health check endpoints",
		RequireAuth:  false,
		RequireAdmin: false,
	},

	// Staff administration (admin only beyond register/login)
	{
		Prefix:       "/api/users",
		ServiceName:  "kitchen",
		Description:  "Staff management",
		RequireAuth:  true,
		RequireAdmin: false,
	},

	// Order routes
	{
		Prefix:       "/api/orders",
		ServiceName:  "kitchen",
		Description:  "Order lifecycle, inventory checks and status transitions",
		RequireAuth:  true,
		RequireAdmin: false,
	},

	// Menu and recipe routes
	{
		Prefix:       "/api/menu-items",
		ServiceName:  "kitchen",
		Description:  "Menu item management",
		RequireAuth:  true,
		RequireAdmin: false,
	},
	{
		Prefix:       "/api/recipes",
		ServiceName:  "kitchen",
		Description:  "Recipe and recipe ingredient management",
		RequireAuth:  true,
		RequireAdmin: false,
	},

	// Inventory routes
	{
		Prefix:       "/api/ingredients",
		ServiceName:  "kitchen",
		Description:  "Ingredient stock management",
		RequireAuth:  true,
		RequireAdmin: false,
	},
	{
		Prefix:       "/api/locations",
		ServiceName:  "kitchen",
		Description:  "Storage location management",
		RequireAuth:  true,
		RequireAdmin: false,
	},
}

// SetupRoutes configures all routes in the gateway
func SetupRoutes(app *fiber.App, cfg *config.GatewayConfig) {
	// Create reverse proxy
	reverseProxy := proxy.NewReverseProxy(cfg)

	// Create health checker
	healthChecker := health.NewHealthChecker(cfg)

	// Gateway quick health check (no downstream checks)
	app.Get("/gateway/health", func(c *fiber.Ctx) error {
		return c.JSON(healthChecker.QuickCheck())
	})

	// Liveness probe (for Kubernetes)
	app.Get("/gateway/health/live", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "alive",
		})
	})

	// Readiness probe (checks downstream services)
	app.Get("/gateway/health/ready", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		healthStatus := healthChecker.CheckAllServices(ctx)

		statusCode := fiber.StatusOK
		if healthStatus.Status == "unhealthy" {
			statusCode = fiber.StatusServiceUnavailable
		}

		return c.Status(statusCode).JSON(healthStatus)
	})

	// Detailed service health checks
	app.Get("/gateway/health/services", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()

		healthStatus := healthChecker.CheckAllServices(ctx)
		return c.JSON(healthStatus)
	})

	// API routes overview
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Kitchen API Gateway",
			"version": "1.0.0",
			"routes":  Routes,
		})
	})

	// Register all service routes
	for _, route := range Routes {
		registerServiceRoutes(app, route, reverseProxy)
	}
}

// registerServiceRoutes registers all HTTP methods for a service prefix
func registerServiceRoutes(app *fiber.App, route RouteDefinition, proxyHandler *proxy.ReverseProxy) {
	// Create handler function
	handler := func(c *fiber.Ctx) error {
		return proxyHandler.ProxyRequest(c, route.ServiceName)
	}

	// Apply middleware based on route requirements
	var middlewares []fiber.Handler

	if route.RequireAdmin {
		// Admin routes need both auth and admin check
		middlewares = append(middlewares, middleware.AuthMiddleware(), middleware.AdminMiddleware())
	} else if route.RequireAuth {
		// Auth required routes
		middlewares = append(middlewares, middleware.AuthMiddleware())
	}
	// Public routes have no middleware

	// Create a route group for this service
	group := app.Group(route.Prefix, middlewares...)

	// Handle all HTTP methods with wildcard path
	group.All("/*", handler)

	// Also handle the exact prefix path (without /*)
	if len(middlewares) > 0 {
		app.All(route.Prefix, append(middlewares, handler)...)
	} else {
		app.All(route.Prefix, handler)
	}
}
