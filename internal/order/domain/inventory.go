package domain

import (
	"sort"

	menudomain "github.com/platefork/kitchen/internal/menu/domain"
)

// Shortage describes one ingredient whose on-hand quantity cannot
// cover an order's aggregated requirement
type Shortage struct {
	IngredientID uint    `json:"ingredient_id"`
	Name         string  `json:"name"`
	Available    float64 `json:"available"`
	Required     float64 `json:"required"`
	Missing      float64 `json:"missing"`
	Unit         string  `json:"unit"`
}

// InventoryCheck is the result of a sufficiency check
type InventoryCheck struct {
	Sufficient bool       `json:"isOk"`
	Shortages  []Shortage `json:"missingIngredients"`
}

// PerIngredientResult reports the outcome of one ingredient's
// increment or decrement within a consumption run
type PerIngredientResult struct {
	IngredientID uint    `json:"ingredient_id"`
	Success      bool    `json:"success"`
	NewQuantity  float64 `json:"new_quantity,omitempty"`
	Error        string  `json:"error,omitempty"`
}

// InventoryUpdate is the overall result of a consumption run. Success
// stays true even when individual ingredients failed; callers inspect
// Results for partial breakage.
type InventoryUpdate struct {
	Success bool                  `json:"success"`
	Message string                `json:"message,omitempty"`
	Results []PerIngredientResult `json:"results"`
}

// RequiredQuantities aggregates how much of each tracked ingredient an
// order needs: for every order item with a recipe, each requirement
// row contributes quantity-per-batch times the item quantity.
// Requirement rows without an ingredient reference are custom
// free-text entries; they are excluded here, and the count of skipped
// rows is returned so callers can log the exclusion.
func RequiredQuantities(items []OrderItem, recipes []menudomain.Recipe, rows []menudomain.RecipeIngredient) (map[uint]float64, int) {
	recipeByMenuItem := make(map[uint]uint, len(recipes))
	for _, recipe := range recipes {
		recipeByMenuItem[recipe.MenuItemID] = recipe.ID
	}

	rowsByRecipe := make(map[uint][]menudomain.RecipeIngredient, len(recipes))
	skippedCustom := 0
	for _, row := range rows {
		if row.IngredientID == nil {
			skippedCustom++
			continue
		}
		rowsByRecipe[row.RecipeID] = append(rowsByRecipe[row.RecipeID], row)
	}

	required := make(map[uint]float64)
	for _, item := range items {
		recipeID, ok := recipeByMenuItem[item.MenuItemID]
		if !ok {
			// No recipe means no tracked inventory for this item
			continue
		}
		for _, row := range rowsByRecipe[recipeID] {
			required[*row.IngredientID] += row.Quantity * float64(item.Quantity)
		}
	}

	return required, skippedCustom
}

// SortedIngredientIDs returns the map keys in ascending order so
// per-ingredient processing is deterministic
func SortedIngredientIDs(required map[uint]float64) []uint {
	ids := make([]uint, 0, len(required))
	for id := range required {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
