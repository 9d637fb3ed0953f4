package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/platefork/kitchen/internal/inventory/domain"
	"github.com/platefork/kitchen/internal/inventory/usecase/command"
	"github.com/platefork/kitchen/internal/inventory/usecase/query"
	"github.com/platefork/kitchen/pkg/logger"
)

// IngredientHandler handles HTTP requests for ingredients and locations
type IngredientHandler struct {
	createHandler *command.CreateIngredientHandler
	setQtyHandler *command.SetQuantityHandler
	deleteHandler *command.DeleteIngredientHandler

	getHandler  *query.GetIngredientHandler
	listHandler *query.ListIngredientsHandler

	locationRepo domain.LocationRepository
}

// NewIngredientHandler creates a new ingredient handler
func NewIngredientHandler(repo domain.IngredientRepository, locationRepo domain.LocationRepository) *IngredientHandler {
	return &IngredientHandler{
		createHandler: command.NewCreateIngredientHandler(repo),
		setQtyHandler: command.NewSetQuantityHandler(repo),
		deleteHandler: command.NewDeleteIngredientHandler(repo),
		getHandler:    query.NewGetIngredientHandler(repo),
		listHandler:   query.NewListIngredientsHandler(repo),
		locationRepo:  locationRepo,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// CreateIngredient handles POST /api/ingredients
func (h *IngredientHandler) CreateIngredient(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name       string  `json:"name"`
		Quantity   float64 `json:"quantity"`
		Unit       string  `json:"unit"`
		LocationID *uint   `json:"location_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	ingredient, err := h.createHandler.Handle(r.Context(), command.CreateIngredientCommand{
		Name:       req.Name,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		LocationID: req.LocationID,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create ingredient")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Ingredient created successfully",
		Data:    ingredient,
	})
}

// GetIngredient handles GET /api/ingredients/{id}
func (h *IngredientHandler) GetIngredient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid ingredient ID",
		})
		return
	}

	ingredient, err := h.getHandler.Handle(r.Context(), query.GetIngredientQuery{ID: uint(id)})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Ingredient not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    ingredient,
	})
}

// ListIngredients handles GET /api/ingredients
func (h *IngredientHandler) ListIngredients(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	q := query.ListIngredientsQuery{Limit: limit, Offset: offset}
	if raw := r.URL.Query().Get("location_id"); raw != "" {
		locationID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, Response{
				Success: false,
				Error:   "Invalid location ID",
			})
			return
		}
		id := uint(locationID)
		q.LocationID = &id
	}

	ingredients, err := h.listHandler.Handle(r.Context(), q)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list ingredients")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list ingredients",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    ingredients,
	})
}

// SetQuantity handles PATCH /api/ingredients/{id}/quantity
func (h *IngredientHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid ingredient ID",
		})
		return
	}

	var req struct {
		Quantity float64 `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if err := h.setQtyHandler.Handle(r.Context(), command.SetQuantityCommand{
		IngredientID: uint(id),
		Quantity:     req.Quantity,
	}); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to set quantity")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Quantity updated successfully",
	})
}

// DeleteIngredient handles DELETE /api/ingredients/{id}
func (h *IngredientHandler) DeleteIngredient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid ingredient ID",
		})
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteIngredientCommand{ID: uint(id)}); err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Ingredient deleted successfully",
	})
}

// CreateLocation handles POST /api/locations
func (h *IngredientHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Address string `json:"address"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	location := &domain.Location{Name: req.Name, Address: req.Address}
	if err := h.locationRepo.Create(location); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create location")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Location created successfully",
		Data:    location,
	})
}

// ListLocations handles GET /api/locations
func (h *IngredientHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	if limit == 0 {
		limit = 10
	}

	locations, err := h.locationRepo.FindAll(limit, offset)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list locations")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list locations",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    locations,
	})
}

// DeleteLocation handles DELETE /api/locations/{id}
func (h *IngredientHandler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid location ID",
		})
		return
	}

	if err := h.locationRepo.Delete(uint(id)); err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Location not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Location deleted successfully",
	})
}

// RegisterRoutes registers all ingredient and location routes
func (h *IngredientHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/ingredients", h.ListIngredients).Methods("GET")
	router.HandleFunc("/api/ingredients", h.CreateIngredient).Methods("POST")
	router.HandleFunc("/api/ingredients/{id}", h.GetIngredient).Methods("GET")
	router.HandleFunc("/api/ingredients/{id}", h.DeleteIngredient).Methods("DELETE")
	router.HandleFunc("/api/ingredients/{id}/quantity", h.SetQuantity).Methods("PATCH")

	router.HandleFunc("/api/locations", h.ListLocations).Methods("GET")
	router.HandleFunc("/api/locations", h.CreateLocation).Methods("POST")
	router.HandleFunc("/api/locations/{id}", h.DeleteLocation).Methods("DELETE")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
