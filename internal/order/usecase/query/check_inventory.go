package query

import (
	"context"
	"fmt"

	invdomain "github.com/platefork/kitchen/internal/inventory/domain"
	menudomain "github.com/platefork/kitchen/internal/menu/domain"
	"github.com/platefork/kitchen/internal/order/domain"
	"github.com/platefork/kitchen/pkg/logger"
)

// CheckInventoryQuery represents the query to check whether stock can
// cover an order
type CheckInventoryQuery struct {
	OrderID uint
}

// CheckInventoryHandler performs the read-only sufficiency check. It
// has no side effects; running it twice without intervening mutation
// yields identical results.
type CheckInventoryHandler struct {
	orderRepo      domain.OrderRepository
	recipeRepo     menudomain.RecipeRepository
	ingredientRepo invdomain.IngredientRepository
}

// NewCheckInventoryHandler creates a new check inventory handler
func NewCheckInventoryHandler(
	orderRepo domain.OrderRepository,
	recipeRepo menudomain.RecipeRepository,
	ingredientRepo invdomain.IngredientRepository,
) *CheckInventoryHandler {
	return &CheckInventoryHandler{
		orderRepo:      orderRepo,
		recipeRepo:     recipeRepo,
		ingredientRepo: ingredientRepo,
	}
}

// Handle executes the sufficiency check
func (h *CheckInventoryHandler) Handle(ctx context.Context, q CheckInventoryQuery) (*domain.InventoryCheck, error) {
	if q.OrderID == 0 {
		return nil, fmt.Errorf("order id is required: %w", domain.ErrInvalidArgument)
	}

	if _, err := h.orderRepo.FindByID(ctx, q.OrderID); err != nil {
		return nil, domain.WrapStoreError("load order", err)
	}

	items, err := h.orderRepo.FindItems(ctx, q.OrderID)
	if err != nil {
		return nil, domain.WrapStoreError("load order items", err)
	}
	if len(items) == 0 {
		// Nothing to fulfil, vacuously sufficient
		return sufficientResult(), nil
	}

	menuItemIDs := distinctMenuItemIDs(items)
	recipes, err := h.recipeRepo.FindByMenuItemIDs(menuItemIDs)
	if err != nil {
		return nil, domain.WrapStoreError("load recipes", err)
	}
	if len(recipes) == 0 {
		// Items without recipes require no tracked inventory
		return sufficientResult(), nil
	}

	recipeIDs := make([]uint, 0, len(recipes))
	for _, recipe := range recipes {
		recipeIDs = append(recipeIDs, recipe.ID)
	}
	rows, err := h.recipeRepo.FindIngredientsByRecipeIDs(recipeIDs)
	if err != nil {
		return nil, domain.WrapStoreError("load recipe ingredients", err)
	}
	if len(rows) == 0 {
		return sufficientResult(), nil
	}

	required, skippedCustom := domain.RequiredQuantities(items, recipes, rows)
	if skippedCustom > 0 {
		logger.Debug(ctx).
			Uint("order_id", q.OrderID).
			Int("custom_rows", skippedCustom).
			Msg("Skipped custom recipe ingredients not tracked in stock")
	}
	if len(required) == 0 {
		return sufficientResult(), nil
	}

	ingredients, err := h.ingredientRepo.FindByIDs(ctx, domain.SortedIngredientIDs(required))
	if err != nil {
		return nil, domain.WrapStoreError("load ingredients", err)
	}

	shortages := []domain.Shortage{}
	for _, ingredient := range ingredients {
		needed := required[ingredient.ID]
		if ingredient.Quantity < needed {
			shortages = append(shortages, domain.Shortage{
				IngredientID: ingredient.ID,
				Name:         ingredient.Name,
				Available:    ingredient.Quantity,
				Required:     needed,
				Missing:      needed - ingredient.Quantity,
				Unit:         ingredient.Unit,
			})
		}
	}

	return &domain.InventoryCheck{
		Sufficient: len(shortages) == 0,
		Shortages:  shortages,
	}, nil
}

func sufficientResult() *domain.InventoryCheck {
	return &domain.InventoryCheck{Sufficient: true, Shortages: []domain.Shortage{}}
}

func distinctMenuItemIDs(items []domain.OrderItem) []uint {
	seen := make(map[uint]struct{}, len(items))
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.MenuItemID]; ok {
			continue
		}
		seen[item.MenuItemID] = struct{}{}
		ids = append(ids, item.MenuItemID)
	}
	return ids
}
