package query

import (
	"fmt"

	"github.com/platefork/kitchen/internal/menu/domain"
)

// GetRecipeQuery represents the query to load a recipe with its
// requirement rows
type GetRecipeQuery struct {
	ID uint
}

// RecipeWithIngredients bundles a recipe and its requirement rows
type RecipeWithIngredients struct {
	Recipe      domain.Recipe             `json:"recipe"`
	Ingredients []domain.RecipeIngredient `json:"ingredients"`
}

// GetRecipeHandler handles get recipe query
type GetRecipeHandler struct {
	repo domain.RecipeRepository
}

// NewGetRecipeHandler creates a new get recipe handler
func NewGetRecipeHandler(repo domain.RecipeRepository) *GetRecipeHandler {
	return &GetRecipeHandler{repo: repo}
}

// Handle executes the get recipe query
func (h *GetRecipeHandler) Handle(query GetRecipeQuery) (*RecipeWithIngredients, error) {
	if query.ID == 0 {
		return nil, fmt.Errorf("id is required")
	}

	recipe, err := h.repo.FindByID(query.ID)
	if err != nil {
		return nil, fmt.Errorf("recipe not found: %w", err)
	}

	rows, err := h.repo.FindIngredientsByRecipeIDs([]uint{recipe.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe ingredients: %w", err)
	}

	return &RecipeWithIngredients{Recipe: *recipe, Ingredients: rows}, nil
}
