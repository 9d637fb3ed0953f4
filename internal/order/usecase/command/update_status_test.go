package command

import (
	"context"
	"errors"
	"testing"

	invdomain "github.com/platefork/kitchen/internal/inventory/domain"
	menudomain "github.com/platefork/kitchen/internal/menu/domain"
	"github.com/platefork/kitchen/internal/order/domain"
	"github.com/platefork/kitchen/internal/order/usecase/query"
)

func newStatusHandler(orders *fakeOrderRepo, recipes *fakeRecipeRepo, ingredients *fakeIngredientRepo, events domain.EventPublisher) *UpdateStatusHandler {
	checker := query.NewCheckInventoryHandler(orders, recipes, ingredients)
	engine := NewUpdateInventoryHandler(orders, recipes, ingredients)
	return NewUpdateStatusHandler(orders, checker, engine, domain.DefaultTransitionPolicy(), events)
}

// soupFixture: order 1 holds one soup needing 2 stock units of broth
func soupFixture() (*fakeOrderRepo, *fakeRecipeRepo, *fakeIngredientRepo) {
	orders := newFakeOrderRepo()
	orders.orders[1] = &domain.Order{ID: 1, CustomerName: "Counter", Status: domain.StatusPending}
	orders.items[1] = []domain.OrderItem{{ID: 1, OrderID: 1, MenuItemID: 5, Quantity: 1}}

	recipes := &fakeRecipeRepo{
		recipes: []menudomain.Recipe{{ID: 50, MenuItemID: 5, Name: "Tomato soup"}},
		rows: []menudomain.RecipeIngredient{
			{ID: 1, RecipeID: 50, IngredientID: uintPtr(300), Quantity: 2},
		},
	}

	ingredients := newFakeIngredientRepo()
	ingredients.ingredients[300] = &invdomain.Ingredient{ID: 300, Name: "Broth", Quantity: 5, Unit: "l"}

	return orders, recipes, ingredients
}

func TestUpdateStatusAcceptConsumesStock(t *testing.T) {
	orders, recipes, ingredients := soupFixture()
	events := &fakePublisher{}
	handler := newStatusHandler(orders, recipes, ingredients, events)

	err := handler.Handle(context.Background(), UpdateStatusCommand{
		OrderID: 1,
		Status:  domain.StatusAccepted,
		Role:    domain.RoleServer,
	})
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}

	if got := orders.orders[1].Status; got != domain.StatusAccepted {
		t.Errorf("status = %q, want accepted", got)
	}
	if got := ingredients.quantity(300); got != 3 {
		t.Errorf("broth stock = %v, want 3", got)
	}
	if len(events.statusChanges) != 1 || events.statusChanges[0] != domain.StatusAccepted {
		t.Errorf("published events = %v, want [accepted]", events.statusChanges)
	}
}

func TestUpdateStatusAcceptRejectedOnShortage(t *testing.T) {
	orders, recipes, ingredients := soupFixture()
	ingredients.ingredients[300].Quantity = 1
	handler := newStatusHandler(orders, recipes, ingredients, nil)

	err := handler.Handle(context.Background(), UpdateStatusCommand{
		OrderID: 1,
		Status:  domain.StatusAccepted,
		Role:    domain.RoleServer,
	})

	var stockErr *domain.InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("err = %v, want InsufficientStockError", err)
	}
	if len(stockErr.Shortages) != 1 || stockErr.Shortages[0].Missing != 1 {
		t.Errorf("shortages = %+v, want broth missing 1", stockErr.Shortages)
	}

	// Rejection must leave both status and stock untouched
	if got := orders.orders[1].Status; got != domain.StatusPending {
		t.Errorf("status = %q, want pending after rejection", got)
	}
	if got := ingredients.quantity(300); got != 1 {
		t.Errorf("broth stock = %v, want 1 after rejection", got)
	}
}

func TestUpdateStatusPendingWithRestore(t *testing.T) {
	orders, recipes, ingredients := soupFixture()
	handler := newStatusHandler(orders, recipes, ingredients, nil)

	ctx := context.Background()
	if err := handler.Handle(ctx, UpdateStatusCommand{OrderID: 1, Status: domain.StatusAccepted, Role: domain.RoleManager}); err != nil {
		t.Fatalf("accept error: %v", err)
	}
	if err := handler.Handle(ctx, UpdateStatusCommand{
		OrderID:          1,
		Status:           domain.StatusPending,
		RestoreInventory: true,
		Role:             domain.RoleManager,
	}); err != nil {
		t.Fatalf("revert error: %v", err)
	}

	if got := orders.orders[1].Status; got != domain.StatusPending {
		t.Errorf("status = %q, want pending", got)
	}
	if got := ingredients.quantity(300); got != 5 {
		t.Errorf("broth stock = %v, want 5 after restore", got)
	}
}

func TestUpdateStatusPendingWithoutRestore(t *testing.T) {
	orders, recipes, ingredients := soupFixture()
	handler := newStatusHandler(orders, recipes, ingredients, nil)

	ctx := context.Background()
	if err := handler.Handle(ctx, UpdateStatusCommand{OrderID: 1, Status: domain.StatusAccepted, Role: domain.RoleManager}); err != nil {
		t.Fatalf("accept error: %v", err)
	}
	if err := handler.Handle(ctx, UpdateStatusCommand{OrderID: 1, Status: domain.StatusPending, Role: domain.RoleManager}); err != nil {
		t.Fatalf("revert error: %v", err)
	}

	if got := ingredients.quantity(300); got != 3 {
		t.Errorf("broth stock = %v, want 3 when restore not requested", got)
	}
}

func TestUpdateStatusPolicyEnforcement(t *testing.T) {
	orders, recipes, ingredients := soupFixture()
	handler := newStatusHandler(orders, recipes, ingredients, nil)

	err := handler.Handle(context.Background(), UpdateStatusCommand{
		OrderID: 1,
		Status:  domain.StatusAccepted,
		Role:    domain.RoleKitchen,
	})
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("kitchen accepting: err = %v, want ErrInvalidArgument", err)
	}
	if got := orders.orders[1].Status; got != domain.StatusPending {
		t.Errorf("status = %q, want pending after denied transition", got)
	}

	// Empty role skips the policy check entirely
	if err := handler.Handle(context.Background(), UpdateStatusCommand{
		OrderID: 1,
		Status:  domain.StatusCancelled,
	}); err != nil {
		t.Errorf("empty role: unexpected error %v", err)
	}
}

func TestUpdateStatusUnknownStatus(t *testing.T) {
	orders, recipes, ingredients := soupFixture()
	handler := newStatusHandler(orders, recipes, ingredients, nil)

	err := handler.Handle(context.Background(), UpdateStatusCommand{
		OrderID: 1,
		Status:  "delivered",
		Role:    domain.RoleAdmin,
	})
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestUpdateStatusOrderNotFound(t *testing.T) {
	orders, recipes, ingredients := soupFixture()
	handler := newStatusHandler(orders, recipes, ingredients, nil)

	err := handler.Handle(context.Background(), UpdateStatusCommand{
		OrderID: 99,
		Status:  domain.StatusCancelled,
		Role:    domain.RoleAdmin,
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateStatusNonGatedTransitions(t *testing.T) {
	orders, recipes, ingredients := soupFixture()
	ingredients.ingredients[300].Quantity = 0 // shortage must not matter
	handler := newStatusHandler(orders, recipes, ingredients, nil)

	ctx := context.Background()
	for _, status := range []string{domain.StatusInProgress, domain.StatusCompleted, domain.StatusCancelled} {
		if err := handler.Handle(ctx, UpdateStatusCommand{OrderID: 1, Status: status, Role: domain.RoleAdmin}); err != nil {
			t.Errorf("status %q: unexpected error %v", status, err)
		}
	}
	if got := ingredients.quantity(300); got != 0 {
		t.Errorf("broth stock = %v, non-gated transitions must not touch stock", got)
	}
}
