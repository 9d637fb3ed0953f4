package command

import (
	"context"
	"fmt"

	"github.com/platefork/kitchen/internal/inventory/domain"
)

// CreateIngredientCommand represents the command to create an ingredient
type CreateIngredientCommand struct {
	Name       string
	Quantity   float64
	Unit       string
	LocationID *uint
}

// CreateIngredientHandler handles create ingredient command
type CreateIngredientHandler struct {
	repo domain.IngredientRepository
}

// NewCreateIngredientHandler creates a new create ingredient handler
func NewCreateIngredientHandler(repo domain.IngredientRepository) *CreateIngredientHandler {
	return &CreateIngredientHandler{repo: repo}
}

// Handle executes the create ingredient command
func (h *CreateIngredientHandler) Handle(ctx context.Context, cmd CreateIngredientCommand) (*domain.Ingredient, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	if cmd.Quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative")
	}

	if cmd.Unit == "" {
		cmd.Unit = "unit"
	}

	ingredient := &domain.Ingredient{
		Name:       cmd.Name,
		Quantity:   cmd.Quantity,
		Unit:       cmd.Unit,
		LocationID: cmd.LocationID,
	}

	if err := h.repo.Create(ctx, ingredient); err != nil {
		return nil, fmt.Errorf("failed to create ingredient: %w", err)
	}

	return ingredient, nil
}
