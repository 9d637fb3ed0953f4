package command

import (
	"context"
	"errors"
	"sync"
	"testing"

	invdomain "github.com/platefork/kitchen/internal/inventory/domain"
	menudomain "github.com/platefork/kitchen/internal/menu/domain"
	"github.com/platefork/kitchen/internal/order/domain"
)

// burgerFixture: order 1 holds two burgers; each burger needs 1 bun and
// 0.15 beef.
func burgerFixture() (*fakeOrderRepo, *fakeRecipeRepo, *fakeIngredientRepo) {
	orders := newFakeOrderRepo()
	orders.orders[1] = &domain.Order{ID: 1, CustomerName: "Table 4", Status: domain.StatusPending}
	orders.items[1] = []domain.OrderItem{{ID: 1, OrderID: 1, MenuItemID: 3, Quantity: 2}}

	recipes := &fakeRecipeRepo{
		recipes: []menudomain.Recipe{{ID: 30, MenuItemID: 3, Name: "Cheeseburger"}},
		rows: []menudomain.RecipeIngredient{
			{ID: 1, RecipeID: 30, IngredientID: uintPtr(200), Quantity: 1},
			{ID: 2, RecipeID: 30, IngredientID: uintPtr(201), Quantity: 0.15},
		},
	}

	ingredients := newFakeIngredientRepo()
	ingredients.ingredients[200] = &invdomain.Ingredient{ID: 200, Name: "Bun", Quantity: 10, Unit: "pcs"}
	ingredients.ingredients[201] = &invdomain.Ingredient{ID: 201, Name: "Ground beef", Quantity: 1, Unit: "kg"}

	return orders, recipes, ingredients
}

func TestUpdateInventoryDecrement(t *testing.T) {
	orders, recipes, ingredients := burgerFixture()
	handler := NewUpdateInventoryHandler(orders, recipes, ingredients)

	update, err := handler.Handle(context.Background(), UpdateInventoryCommand{
		OrderID: 1,
		Action:  domain.ActionDecrement,
	})
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}

	if !update.Success {
		t.Error("expected overall success")
	}
	if len(update.Results) != 2 {
		t.Fatalf("results = %d, want 2", len(update.Results))
	}
	for _, result := range update.Results {
		if !result.Success {
			t.Errorf("ingredient %d failed: %s", result.IngredientID, result.Error)
		}
	}

	if got := ingredients.quantity(200); got != 8 {
		t.Errorf("bun stock = %v, want 8", got)
	}
	if got := ingredients.quantity(201); got != 0.7 {
		t.Errorf("beef stock = %v, want 0.7", got)
	}
}

func TestUpdateInventoryFloorClamp(t *testing.T) {
	orders, recipes, ingredients := burgerFixture()
	ingredients.ingredients[200].Quantity = 1 // needs 2
	handler := NewUpdateInventoryHandler(orders, recipes, ingredients)

	update, err := handler.Handle(context.Background(), UpdateInventoryCommand{
		OrderID: 1,
		Action:  domain.ActionDecrement,
	})
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}

	if !update.Success {
		t.Error("clamped decrement is still a success")
	}
	if got := ingredients.quantity(200); got != 0 {
		t.Errorf("bun stock = %v, want clamp at 0", got)
	}
}

func TestUpdateInventoryRoundTrip(t *testing.T) {
	orders, recipes, ingredients := burgerFixture()
	handler := NewUpdateInventoryHandler(orders, recipes, ingredients)

	ctx := context.Background()
	if _, err := handler.Handle(ctx, UpdateInventoryCommand{OrderID: 1, Action: domain.ActionDecrement}); err != nil {
		t.Fatalf("decrement error: %v", err)
	}
	if _, err := handler.Handle(ctx, UpdateInventoryCommand{OrderID: 1, Action: domain.ActionIncrement}); err != nil {
		t.Fatalf("increment error: %v", err)
	}

	if got := ingredients.quantity(200); got != 10 {
		t.Errorf("bun stock = %v, want 10 after round trip", got)
	}
	if got := ingredients.quantity(201); got != 1 {
		t.Errorf("beef stock = %v, want 1 after round trip", got)
	}
}

func TestUpdateInventoryInvalidAction(t *testing.T) {
	orders, recipes, ingredients := burgerFixture()
	handler := NewUpdateInventoryHandler(orders, recipes, ingredients)

	for _, action := range []string{"", "deduct", "INCREMENT"} {
		_, err := handler.Handle(context.Background(), UpdateInventoryCommand{OrderID: 1, Action: action})
		if !errors.Is(err, domain.ErrInvalidArgument) {
			t.Errorf("action %q: err = %v, want ErrInvalidArgument", action, err)
		}
	}
}

func TestUpdateInventoryPartialFailureContinues(t *testing.T) {
	orders, recipes, ingredients := burgerFixture()
	ingredients.failConsume[200] = errors.New("row lock timeout")
	handler := NewUpdateInventoryHandler(orders, recipes, ingredients)

	update, err := handler.Handle(context.Background(), UpdateInventoryCommand{
		OrderID: 1,
		Action:  domain.ActionDecrement,
	})
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}

	// Overall success stays true; the failure is reported per ingredient
	if !update.Success {
		t.Error("partial failure should not flip overall success")
	}
	if len(update.Results) != 2 {
		t.Fatalf("results = %d, want 2", len(update.Results))
	}

	var failed, succeeded *domain.PerIngredientResult
	for i := range update.Results {
		if update.Results[i].IngredientID == 200 {
			failed = &update.Results[i]
		} else {
			succeeded = &update.Results[i]
		}
	}
	if failed == nil || failed.Success || failed.Error == "" {
		t.Errorf("ingredient 200 should report failure: %+v", failed)
	}
	if succeeded == nil || !succeeded.Success {
		t.Errorf("ingredient 201 should still be processed: %+v", succeeded)
	}
	if got := ingredients.quantity(201); got != 0.7 {
		t.Errorf("beef stock = %v, want 0.7", got)
	}
}

func TestUpdateInventoryNoItems(t *testing.T) {
	orders, recipes, ingredients := burgerFixture()
	orders.items[1] = nil
	handler := NewUpdateInventoryHandler(orders, recipes, ingredients)

	update, err := handler.Handle(context.Background(), UpdateInventoryCommand{
		OrderID: 1,
		Action:  domain.ActionDecrement,
	})
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}
	if !update.Success || len(update.Results) != 0 {
		t.Errorf("empty order should be a successful no-op: %+v", update)
	}
	if update.Message == "" {
		t.Error("no-op should carry an explanatory message")
	}
}

func TestUpdateInventoryConcurrentDecrements(t *testing.T) {
	orders, recipes, ingredients := burgerFixture()
	// Two competing orders for the same dish, stock covers only one
	orders.orders[2] = &domain.Order{ID: 2, CustomerName: "Table 5", Status: domain.StatusPending}
	orders.items[2] = []domain.OrderItem{{ID: 2, OrderID: 2, MenuItemID: 3, Quantity: 2}}
	ingredients.ingredients[200].Quantity = 3 // each order consumes 2

	handler := NewUpdateInventoryHandler(orders, recipes, ingredients)

	var wg sync.WaitGroup
	for _, orderID := range []uint{1, 2} {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			if _, err := handler.Handle(context.Background(), UpdateInventoryCommand{
				OrderID: id,
				Action:  domain.ActionDecrement,
			}); err != nil {
				t.Errorf("order %d: %v", id, err)
			}
		}(orderID)
	}
	wg.Wait()

	// 3 - 2 - 2 clamps at 0; a lost update would leave 1
	if got := ingredients.quantity(200); got != 0 {
		t.Errorf("bun stock = %v, want 0 after concurrent decrements", got)
	}
}
