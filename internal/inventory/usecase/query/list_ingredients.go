package query

import (
	"context"
	"fmt"

	"github.com/platefork/kitchen/internal/inventory/domain"
)

// ListIngredientsQuery represents the query to list ingredients,
// optionally scoped to a single location
type ListIngredientsQuery struct {
	LocationID *uint
	Limit      int
	Offset     int
}

// ListIngredientsHandler handles list ingredients query
type ListIngredientsHandler struct {
	repo domain.IngredientRepository
}

// NewListIngredientsHandler creates a new list ingredients handler
func NewListIngredientsHandler(repo domain.IngredientRepository) *ListIngredientsHandler {
	return &ListIngredientsHandler{repo: repo}
}

// Handle executes the list ingredients query
func (h *ListIngredientsHandler) Handle(ctx context.Context, query ListIngredientsQuery) ([]domain.Ingredient, error) {
	if query.Limit <= 0 {
		query.Limit = 10
	}
	if query.Limit > 100 {
		query.Limit = 100
	}
	if query.Offset < 0 {
		query.Offset = 0
	}

	var (
		ingredients []domain.Ingredient
		err         error
	)
	if query.LocationID != nil {
		ingredients, err = h.repo.FindByLocation(ctx, *query.LocationID, query.Limit, query.Offset)
	} else {
		ingredients, err = h.repo.FindAll(ctx, query.Limit, query.Offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}

	return ingredients, nil
}
