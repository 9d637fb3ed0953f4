package command

import (
	"fmt"

	"github.com/platefork/kitchen/internal/menu/domain"
)

// AddRecipeIngredientCommand represents the command to add a
// requirement row to a recipe. IngredientID may be nil for a custom
// free-text ingredient that is not tracked in stock.
type AddRecipeIngredientCommand struct {
	RecipeID     uint
	IngredientID *uint
	Name         string
	Quantity     float64
	Unit         string
}

// AddRecipeIngredientHandler handles add recipe ingredient command
type AddRecipeIngredientHandler struct {
	repo domain.RecipeRepository
}

// NewAddRecipeIngredientHandler creates a new add recipe ingredient handler
func NewAddRecipeIngredientHandler(repo domain.RecipeRepository) *AddRecipeIngredientHandler {
	return &AddRecipeIngredientHandler{repo: repo}
}

// Handle executes the add recipe ingredient command
func (h *AddRecipeIngredientHandler) Handle(cmd AddRecipeIngredientCommand) (*domain.RecipeIngredient, error) {
	if cmd.RecipeID == 0 {
		return nil, fmt.Errorf("recipe_id is required")
	}

	if cmd.IngredientID == nil && cmd.Name == "" {
		return nil, fmt.Errorf("custom ingredient requires a name")
	}

	if cmd.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be greater than 0")
	}

	if _, err := h.repo.FindByID(cmd.RecipeID); err != nil {
		return nil, fmt.Errorf("recipe not found")
	}

	row := &domain.RecipeIngredient{
		RecipeID:     cmd.RecipeID,
		IngredientID: cmd.IngredientID,
		Name:         cmd.Name,
		Quantity:     cmd.Quantity,
		Unit:         cmd.Unit,
	}

	if err := h.repo.AddIngredient(row); err != nil {
		return nil, fmt.Errorf("failed to add recipe ingredient: %w", err)
	}

	return row, nil
}
