package command

import (
	"context"
	"fmt"

	"github.com/platefork/kitchen/internal/inventory/domain"
)

// SetQuantityCommand represents a manual stock correction
type SetQuantityCommand struct {
	IngredientID uint
	Quantity     float64
}

// SetQuantityHandler handles manual quantity updates
type SetQuantityHandler struct {
	repo domain.IngredientRepository
}

// NewSetQuantityHandler creates a new set quantity handler
func NewSetQuantityHandler(repo domain.IngredientRepository) *SetQuantityHandler {
	return &SetQuantityHandler{repo: repo}
}

// Handle executes the set quantity command
func (h *SetQuantityHandler) Handle(ctx context.Context, cmd SetQuantityCommand) error {
	if cmd.IngredientID == 0 {
		return fmt.Errorf("ingredient_id is required")
	}

	if cmd.Quantity < 0 {
		return fmt.Errorf("quantity cannot be negative")
	}

	if _, err := h.repo.FindByID(ctx, cmd.IngredientID); err != nil {
		return fmt.Errorf("ingredient not found")
	}

	if err := h.repo.SetQuantity(ctx, cmd.IngredientID, cmd.Quantity); err != nil {
		return fmt.Errorf("failed to set quantity: %w", err)
	}

	return nil
}
