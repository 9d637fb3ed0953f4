package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	invdomain "github.com/platefork/kitchen/internal/inventory/domain"
	menudomain "github.com/platefork/kitchen/internal/menu/domain"
	"github.com/platefork/kitchen/internal/order/domain"
	"github.com/platefork/kitchen/internal/order/usecase/command"
	"github.com/platefork/kitchen/internal/order/usecase/query"
	"github.com/platefork/kitchen/pkg/logger"
)

// OrderHandler handles HTTP requests for orders, including the
// inventory check, consumption and status transition endpoints
type OrderHandler struct {
	createHandler  *command.CreateOrderHandler
	updInvHandler  *command.UpdateInventoryHandler
	updStatHandler *command.UpdateStatusHandler

	checkHandler *query.CheckInventoryHandler
	getHandler   *query.GetOrderHandler
	listHandler  *query.ListOrdersHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(
	orderRepo domain.OrderRepository,
	menuRepo menudomain.MenuRepository,
	recipeRepo menudomain.RecipeRepository,
	ingredientRepo invdomain.IngredientRepository,
	policy domain.TransitionPolicy,
	events domain.EventPublisher,
) *OrderHandler {
	checkHandler := query.NewCheckInventoryHandler(orderRepo, recipeRepo, ingredientRepo)
	updInvHandler := command.NewUpdateInventoryHandler(orderRepo, recipeRepo, ingredientRepo)

	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_service_requests_total",
			Help: "Total number of requests to order service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_service_request_duration_seconds",
			Help:    "Duration of order service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &OrderHandler{
		createHandler:  command.NewCreateOrderHandler(orderRepo, menuRepo, events),
		updInvHandler:  updInvHandler,
		updStatHandler: command.NewUpdateStatusHandler(orderRepo, checkHandler, updInvHandler, policy, events),
		checkHandler:   checkHandler,
		getHandler:     query.NewGetOrderHandler(orderRepo),
		listHandler:    query.NewListOrdersHandler(orderRepo),
		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *OrderHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CustomerName string `json:"customer_name"`
		Items        []struct {
			MenuItemID uint `json:"menu_item_id"`
			Quantity   int  `json:"quantity"`
		} `json:"items"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.CreateOrderCommand{CustomerName: req.CustomerName}
	for _, item := range req.Items {
		cmd.Items = append(cmd.Items, command.CreateOrderItem{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		})
	}

	order, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to create order")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Order created successfully",
		Data:    order,
	})
}

// GetOrder handles GET /api/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	order, err := h.getHandler.Handle(r.Context(), query.GetOrderQuery{ID: id})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    order,
	})
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	orders, err := h.listHandler.Handle(r.Context(), query.ListOrdersQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list orders")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    orders,
	})
}

// CheckInventory handles GET /api/orders/{id}/check-inventory
func (h *OrderHandler) CheckInventory(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	check, err := h.checkHandler.Handle(r.Context(), query.CheckInventoryQuery{OrderID: id})
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("order_id", id).Msg("Inventory check failed")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, check)
}

// UpdateInventory handles POST /api/orders/{id}/update-inventory
func (h *OrderHandler) UpdateInventory(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	var req struct {
		Action string `json:"action"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	update, err := h.updInvHandler.Handle(r.Context(), command.UpdateInventoryCommand{
		OrderID: id,
		Action:  req.Action,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("order_id", id).Msg("Inventory update failed")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, update)
}

// UpdateStatus handles POST /api/orders/{id}/update-status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	var req struct {
		Status           string `json:"status"`
		RestoreInventory bool   `json:"restoreInventory"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	err := h.updStatHandler.Handle(r.Context(), command.UpdateStatusCommand{
		OrderID:          id,
		Status:           req.Status,
		RestoreInventory: req.RestoreInventory,
		Role:             r.Header.Get("X-User-Role"),
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("order_id", id).Str("status", req.Status).
			Msg("Status update failed")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Order status updated successfully",
	})
}

// RegisterRoutes registers all order routes
func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/orders", h.metricsMiddleware("/api/orders", h.ListOrders)).Methods("GET")
	router.HandleFunc("/api/orders", h.metricsMiddleware("/api/orders", h.CreateOrder)).Methods("POST")
	router.HandleFunc("/api/orders/{id}", h.metricsMiddleware("/api/orders/{id}", h.GetOrder)).Methods("GET")
	router.HandleFunc("/api/orders/{id}/check-inventory",
		h.metricsMiddleware("/api/orders/{id}/check-inventory", h.CheckInventory)).Methods("GET")
	router.HandleFunc("/api/orders/{id}/update-inventory",
		h.metricsMiddleware("/api/orders/{id}/update-inventory", h.UpdateInventory)).Methods("POST")
	router.HandleFunc("/api/orders/{id}/update-status",
		h.metricsMiddleware("/api/orders/{id}/update-status", h.UpdateStatus)).Methods("POST")
}

// RegisterHealthCheck registers the health check endpoint
func (h *OrderHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Kitchen service is healthy",
		})
	}).Methods("GET")
}

func orderID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid order ID",
		})
		return 0, false
	}
	return uint(id), true
}

// respondError maps domain errors onto HTTP status codes
func respondError(w http.ResponseWriter, err error) {
	var insufficient *domain.InsufficientStockError
	if errors.As(err, &insufficient) {
		respondJSON(w, http.StatusConflict, struct {
			Success   bool              `json:"success"`
			Error     string            `json:"error"`
			Shortages []domain.Shortage `json:"missingIngredients"`
		}{
			Success:   false,
			Error:     insufficient.Error(),
			Shortages: insufficient.Shortages,
		})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrRateLimited):
		status = http.StatusTooManyRequests
	case errors.Is(err, domain.ErrUpstreamFailure):
		status = http.StatusBadGateway
	}

	respondJSON(w, status, Response{
		Success: false,
		Error:   err.Error(),
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
