package query

import (
	"context"
	"fmt"

	"github.com/platefork/kitchen/internal/inventory/domain"
)

// GetIngredientQuery represents the query to get an ingredient
type GetIngredientQuery struct {
	ID uint
}

// GetIngredientHandler handles get ingredient query
type GetIngredientHandler struct {
	repo domain.IngredientRepository
}

// NewGetIngredientHandler creates a new get ingredient handler
func NewGetIngredientHandler(repo domain.IngredientRepository) *GetIngredientHandler {
	return &GetIngredientHandler{repo: repo}
}

// Handle executes the get ingredient query
func (h *GetIngredientHandler) Handle(ctx context.Context, query GetIngredientQuery) (*domain.Ingredient, error) {
	if query.ID == 0 {
		return nil, fmt.Errorf("id is required")
	}

	ingredient, err := h.repo.FindByID(ctx, query.ID)
	if err != nil {
		return nil, fmt.Errorf("ingredient not found: %w", err)
	}

	return ingredient, nil
}
