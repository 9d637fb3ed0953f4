package command

import (
	"fmt"

	"github.com/platefork/kitchen/internal/menu/domain"
)

// CreateRecipeCommand represents the command to attach a recipe to a
// menu item
type CreateRecipeCommand struct {
	MenuItemID  uint
	Name        string
	Description string
}

// CreateRecipeHandler handles create recipe command
type CreateRecipeHandler struct {
	recipeRepo domain.RecipeRepository
	menuRepo   domain.MenuRepository
}

// NewCreateRecipeHandler creates a new create recipe handler
func NewCreateRecipeHandler(recipeRepo domain.RecipeRepository, menuRepo domain.MenuRepository) *CreateRecipeHandler {
	return &CreateRecipeHandler{recipeRepo: recipeRepo, menuRepo: menuRepo}
}

// Handle executes the create recipe command
func (h *CreateRecipeHandler) Handle(cmd CreateRecipeCommand) (*domain.Recipe, error) {
	if cmd.MenuItemID == 0 {
		return nil, fmt.Errorf("menu_item_id is required")
	}

	if _, err := h.menuRepo.FindByID(cmd.MenuItemID); err != nil {
		return nil, fmt.Errorf("menu item not found")
	}

	recipe := &domain.Recipe{
		MenuItemID:  cmd.MenuItemID,
		Name:        cmd.Name,
		Description: cmd.Description,
	}

	if err := h.recipeRepo.Create(recipe); err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}

	return recipe, nil
}
