package command

import (
	"context"
	"fmt"

	"github.com/platefork/kitchen/internal/inventory/domain"
)

// DeleteIngredientCommand represents the command to delete an ingredient
type DeleteIngredientCommand struct {
	ID uint
}

// DeleteIngredientHandler handles delete ingredient command
type DeleteIngredientHandler struct {
	repo domain.IngredientRepository
}

// NewDeleteIngredientHandler creates a new delete ingredient handler
func NewDeleteIngredientHandler(repo domain.IngredientRepository) *DeleteIngredientHandler {
	return &DeleteIngredientHandler{repo: repo}
}

// Handle executes the delete ingredient command
func (h *DeleteIngredientHandler) Handle(ctx context.Context, cmd DeleteIngredientCommand) error {
	if cmd.ID == 0 {
		return fmt.Errorf("id is required")
	}

	if _, err := h.repo.FindByID(ctx, cmd.ID); err != nil {
		return fmt.Errorf("ingredient not found")
	}

	if err := h.repo.Delete(ctx, cmd.ID); err != nil {
		return fmt.Errorf("failed to delete ingredient: %w", err)
	}

	return nil
}
