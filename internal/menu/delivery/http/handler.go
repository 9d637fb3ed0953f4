package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/platefork/kitchen/internal/menu/domain"
	"github.com/platefork/kitchen/internal/menu/usecase/command"
	"github.com/platefork/kitchen/internal/menu/usecase/query"
	"github.com/platefork/kitchen/pkg/logger"
)

// MenuHandler handles HTTP requests for menu items and recipes
type MenuHandler struct {
	createItemHandler    *command.CreateMenuItemHandler
	createRecipeHandler  *command.CreateRecipeHandler
	addIngredientHandler *command.AddRecipeIngredientHandler

	getItemHandler   *query.GetMenuItemHandler
	getRecipeHandler *query.GetRecipeHandler
	listItemsHandler *query.ListMenuItemsHandler

	recipeRepo domain.RecipeRepository
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuRepo domain.MenuRepository, recipeRepo domain.RecipeRepository) *MenuHandler {
	return &MenuHandler{
		createItemHandler:    command.NewCreateMenuItemHandler(menuRepo),
		createRecipeHandler:  command.NewCreateRecipeHandler(recipeRepo, menuRepo),
		addIngredientHandler: command.NewAddRecipeIngredientHandler(recipeRepo),
		getItemHandler:       query.NewGetMenuItemHandler(menuRepo),
		getRecipeHandler:     query.NewGetRecipeHandler(recipeRepo),
		listItemsHandler:     query.NewListMenuItemsHandler(menuRepo),
		recipeRepo:           recipeRepo,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// CreateMenuItem handles POST /api/menu-items
func (h *MenuHandler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string  `json:"name"`
		Price    float64 `json:"price"`
		Category string  `json:"category"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	item, err := h.createItemHandler.Handle(command.CreateMenuItemCommand{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create menu item")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Menu item created successfully",
		Data:    item,
	})
}

// GetMenuItem handles GET /api/menu-items/{id}
func (h *MenuHandler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid menu item ID",
		})
		return
	}

	item, err := h.getItemHandler.Handle(query.GetMenuItemQuery{ID: uint(id)})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Menu item not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    item,
	})
}

// ListMenuItems handles GET /api/menu-items
func (h *MenuHandler) ListMenuItems(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	items, err := h.listItemsHandler.Handle(query.ListMenuItemsQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list menu items")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list menu items",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    items,
	})
}

// CreateRecipe handles POST /api/recipes
func (h *MenuHandler) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MenuItemID  uint   `json:"menu_item_id"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	recipe, err := h.createRecipeHandler.Handle(command.CreateRecipeCommand{
		MenuItemID:  req.MenuItemID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create recipe")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Recipe created successfully",
		Data:    recipe,
	})
}

// GetRecipe handles GET /api/recipes/{id}
func (h *MenuHandler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid recipe ID",
		})
		return
	}

	recipe, err := h.getRecipeHandler.Handle(query.GetRecipeQuery{ID: uint(id)})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Recipe not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    recipe,
	})
}

// AddRecipeIngredient handles POST /api/recipes/{id}/ingredients
func (h *MenuHandler) AddRecipeIngredient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	recipeID, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid recipe ID",
		})
		return
	}

	var req struct {
		IngredientID *uint   `json:"ingredient_id"`
		Name         string  `json:"name"`
		Quantity     float64 `json:"quantity"`
		Unit         string  `json:"unit"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	row, err := h.addIngredientHandler.Handle(command.AddRecipeIngredientCommand{
		RecipeID:     uint(recipeID),
		IngredientID: req.IngredientID,
		Name:         req.Name,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to add recipe ingredient")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Recipe ingredient added successfully",
		Data:    row,
	})
}

// RemoveRecipeIngredient handles DELETE /api/recipes/ingredients/{id}
func (h *MenuHandler) RemoveRecipeIngredient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid recipe ingredient ID",
		})
		return
	}

	if err := h.recipeRepo.RemoveIngredient(uint(id)); err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Recipe ingredient not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Recipe ingredient removed successfully",
	})
}

// RegisterRoutes registers all menu routes
func (h *MenuHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/menu-items", h.ListMenuItems).Methods("GET")
	router.HandleFunc("/api/menu-items", h.CreateMenuItem).Methods("POST")
	router.HandleFunc("/api/menu-items/{id}", h.GetMenuItem).Methods("GET")

	router.HandleFunc("/api/recipes", h.CreateRecipe).Methods("POST")
	router.HandleFunc("/api/recipes/{id}", h.GetRecipe).Methods("GET")
	router.HandleFunc("/api/recipes/{id}/ingredients", h.AddRecipeIngredient).Methods("POST")
	router.HandleFunc("/api/recipes/ingredients/{id}", h.RemoveRecipeIngredient).Methods("DELETE")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
