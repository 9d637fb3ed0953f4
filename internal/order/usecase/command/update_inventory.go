package command

import (
	"context"
	"fmt"

	invdomain "github.com/platefork/kitchen/internal/inventory/domain"
	menudomain "github.com/platefork/kitchen/internal/menu/domain"
	"github.com/platefork/kitchen/internal/order/domain"
	"github.com/platefork/kitchen/pkg/logger"
)

// UpdateInventoryCommand applies an order's aggregated ingredient
// requirements to stock, either consuming or restoring
type UpdateInventoryCommand struct {
	OrderID uint
	Action  string
}

// UpdateInventoryHandler is the consumption engine. Ingredients are
// processed one at a time; each delta is a single atomic statement
// with the floor clamp applied in the database, so concurrent runs
// cannot lose updates or drive stock negative. A failure on one
// ingredient is recorded and the run continues; there is no rollback
// of earlier ingredients.
type UpdateInventoryHandler struct {
	orderRepo      domain.OrderRepository
	recipeRepo     menudomain.RecipeRepository
	ingredientRepo invdomain.IngredientRepository
}

// NewUpdateInventoryHandler creates a new update inventory handler
func NewUpdateInventoryHandler(
	orderRepo domain.OrderRepository,
	recipeRepo menudomain.RecipeRepository,
	ingredientRepo invdomain.IngredientRepository,
) *UpdateInventoryHandler {
	return &UpdateInventoryHandler{
		orderRepo:      orderRepo,
		recipeRepo:     recipeRepo,
		ingredientRepo: ingredientRepo,
	}
}

// Handle executes the update inventory command
func (h *UpdateInventoryHandler) Handle(ctx context.Context, cmd UpdateInventoryCommand) (*domain.InventoryUpdate, error) {
	if cmd.OrderID == 0 {
		return nil, fmt.Errorf("order id is required: %w", domain.ErrInvalidArgument)
	}
	if cmd.Action != domain.ActionIncrement && cmd.Action != domain.ActionDecrement {
		return nil, fmt.Errorf("action must be %q or %q: %w",
			domain.ActionIncrement, domain.ActionDecrement, domain.ErrInvalidArgument)
	}

	items, err := h.orderRepo.FindItems(ctx, cmd.OrderID)
	if err != nil {
		return nil, domain.WrapStoreError("load order items", err)
	}
	if len(items) == 0 {
		return noopResult("order has no items"), nil
	}

	menuItemIDs := distinctMenuItemIDs(items)
	recipes, err := h.recipeRepo.FindByMenuItemIDs(menuItemIDs)
	if err != nil {
		return nil, domain.WrapStoreError("load recipes", err)
	}
	if len(recipes) == 0 {
		return noopResult("no recipes found for order items"), nil
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
		return noopResult("recipes have no tracked ingredients"), nil
	}

	required, skippedCustom := domain.RequiredQuantities(items, recipes, rows)
	if skippedCustom > 0 {
		logger.Debug(ctx).
			Uint("order_id", cmd.OrderID).
			Int("custom_rows", skippedCustom).
			Msg("Skipped custom recipe ingredients not tracked in stock")
	}
	if len(required) == 0 {
		return noopResult("no tracked ingredients to update"), nil
	}

	results := make([]domain.PerIngredientResult, 0, len(required))
	for _, id := range domain.SortedIngredientIDs(required) {
		amount := required[id]

		var (
			newQuantity float64
			applyErr    error
		)
		if cmd.Action == domain.ActionDecrement {
			newQuantity, applyErr = h.ingredientRepo.ConsumeQuantity(ctx, id, amount)
		} else {
			newQuantity, applyErr = h.ingredientRepo.RestoreQuantity(ctx, id, amount)
		}

		if applyErr != nil {
			logger.Warn(ctx).
				Err(applyErr).
				Uint("order_id", cmd.OrderID).
				Uint("ingredient_id", id).
				Str("action", cmd.Action).
				Msg("Failed to update ingredient quantity")
			results = append(results, domain.PerIngredientResult{
				IngredientID: id,
				Success:      false,
				Error:        applyErr.Error(),
			})
			continue
		}

		results = append(results, domain.PerIngredientResult{
			IngredientID: id,
			Success:      true,
			NewQuantity:  newQuantity,
		})
	}

	return &domain.InventoryUpdate{Success: true, Results: results}, nil
}

func noopResult(message string) *domain.InventoryUpdate {
	return &domain.InventoryUpdate{
		Success: true,
		Message: message,
		Results: []domain.PerIngredientResult{},
	}
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
