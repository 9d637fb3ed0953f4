package query

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	invdomain "github.com/platefork/kitchen/internal/inventory/domain"
	menudomain "github.com/platefork/kitchen/internal/menu/domain"
	"github.com/platefork/kitchen/internal/order/domain"
)

type fakeOrderRepo struct {
	orders map[uint]*domain.Order
	items  map[uint][]domain.OrderItem
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *domain.Order) error { return errors.New("not supported") }

func (f *fakeOrderRepo) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return order, nil
}

func (f *fakeOrderRepo) FindItems(ctx context.Context, orderID uint) ([]domain.OrderItem, error) {
	return f.items[orderID], nil
}

func (f *fakeOrderRepo) FindAll(ctx context.Context, limit, offset int) ([]domain.Order, error) { return nil, nil }

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	order, ok := f.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	order.Status = status
	return nil
}

type fakeRecipeRepo struct {
	recipes []menudomain.Recipe
	rows    []menudomain.RecipeIngredient
}

func (f *fakeRecipeRepo) Create(recipe *menudomain.Recipe) error          { return errors.New("not supported") }
func (f *fakeRecipeRepo) FindByID(id uint) (*menudomain.Recipe, error)    { return nil, gorm.ErrRecordNotFound }
func (f *fakeRecipeRepo) Delete(id uint) error                            { return errors.New("not supported") }
func (f *fakeRecipeRepo) AddIngredient(row *menudomain.RecipeIngredient) error { return errors.New("not supported") }
func (f *fakeRecipeRepo) RemoveIngredient(id uint) error                  { return errors.New("not supported") }

func (f *fakeRecipeRepo) FindByMenuItemIDs(menuItemIDs []uint) ([]menudomain.Recipe, error) {
	wanted := make(map[uint]bool, len(menuItemIDs))
	for _, id := range menuItemIDs {
		wanted[id] = true
	}
	var out []menudomain.Recipe
	for _, recipe := range f.recipes {
		if wanted[recipe.MenuItemID] {
			out = append(out, recipe)
		}
	}
	return out, nil
}

func (f *fakeRecipeRepo) FindIngredientsByRecipeIDs(recipeIDs []uint) ([]menudomain.RecipeIngredient, error) {
	wanted := make(map[uint]bool, len(recipeIDs))
	for _, id := range recipeIDs {
		wanted[id] = true
	}
	var out []menudomain.RecipeIngredient
	for _, row := range f.rows {
		if wanted[row.RecipeID] {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeIngredientRepo struct {
	ingredients map[uint]*invdomain.Ingredient
}

func (f *fakeIngredientRepo) Create(ctx context.Context, ingredient *invdomain.Ingredient) error { return errors.New("not supported") }
func (f *fakeIngredientRepo) Update(ctx context.Context, ingredient *invdomain.Ingredient) error { return errors.New("not supported") }
func (f *fakeIngredientRepo) Delete(ctx context.Context, id uint) error                          { return errors.New("not supported") }
func (f *fakeIngredientRepo) SetQuantity(ctx context.Context, id uint, quantity float64) error   { return errors.New("not supported") }
func (f *fakeIngredientRepo) FindAll(ctx context.Context, limit, offset int) ([]invdomain.Ingredient, error) {
	return nil, nil
}
func (f *fakeIngredientRepo) FindByLocation(ctx context.Context, locationID uint, limit, offset int) ([]invdomain.Ingredient, error) {
	return nil, nil
}

func (f *fakeIngredientRepo) FindByID(ctx context.Context, id uint) (*invdomain.Ingredient, error) {
	ingredient, ok := f.ingredients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return ingredient, nil
}

func (f *fakeIngredientRepo) FindByIDs(ctx context.Context, ids []uint) ([]invdomain.Ingredient, error) {
	var out []invdomain.Ingredient
	for _, id := range ids {
		if ingredient, ok := f.ingredients[id]; ok {
			out = append(out, *ingredient)
		}
	}
	return out, nil
}

func (f *fakeIngredientRepo) ConsumeQuantity(ctx context.Context, id uint, amount float64) (float64, error) {
	ingredient, ok := f.ingredients[id]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	ingredient.Quantity -= amount
	if ingredient.Quantity < 0 {
		ingredient.Quantity = 0
	}
	return ingredient.Quantity, nil
}

func (f *fakeIngredientRepo) RestoreQuantity(ctx context.Context, id uint, amount float64) (float64, error) {
	ingredient, ok := f.ingredients[id]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	ingredient.Quantity += amount
	return ingredient.Quantity, nil
}

func uintPtr(v uint) *uint { return &v }

// pizzeriaFixture: one pizza order (2x) where each pizza needs 3 flour
// and 0.2 cheese. Flour stock is short.
func pizzeriaFixture() (*fakeOrderRepo, *fakeRecipeRepo, *fakeIngredientRepo) {
	orders := &fakeOrderRepo{
		orders: map[uint]*domain.Order{
			1: {ID: 1, CustomerName: "Walk-in", Status: domain.StatusPending},
		},
		items: map[uint][]domain.OrderItem{
			1: {{ID: 1, OrderID: 1, MenuItemID: 7, Quantity: 2}},
		},
	}
	recipes := &fakeRecipeRepo{
		recipes: []menudomain.Recipe{{ID: 70, MenuItemID: 7, Name: "Margherita"}},
		rows: []menudomain.RecipeIngredient{
			{ID: 1, RecipeID: 70, IngredientID: uintPtr(100), Quantity: 3},
			{ID: 2, RecipeID: 70, IngredientID: uintPtr(101), Quantity: 0.2},
		},
	}
	ingredients := &fakeIngredientRepo{
		ingredients: map[uint]*invdomain.Ingredient{
			100: {ID: 100, Name: "Flour", Quantity: 5, Unit: "kg"},
			101: {ID: 101, Name: "Mozzarella", Quantity: 2, Unit: "kg"},
		},
	}
	return orders, recipes, ingredients
}

func TestCheckInventoryShortage(t *testing.T) {
	orders, recipes, ingredients := pizzeriaFixture()
	handler := NewCheckInventoryHandler(orders, recipes, ingredients)

	check, err := handler.Handle(context.Background(), CheckInventoryQuery{OrderID: 1})
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}

	if check.Sufficient {
		t.Fatal("expected insufficient stock")
	}
	if len(check.Shortages) != 1 {
		t.Fatalf("shortages = %d, want 1", len(check.Shortages))
	}

	shortage := check.Shortages[0]
	if shortage.IngredientID != 100 {
		t.Errorf("shortage ingredient = %d, want 100", shortage.IngredientID)
	}
	if shortage.Available != 5 || shortage.Required != 6 || shortage.Missing != 1 {
		t.Errorf("shortage = %+v, want available 5 required 6 missing 1", shortage)
	}
	if shortage.Unit != "kg" {
		t.Errorf("shortage unit = %q, want kg", shortage.Unit)
	}
}

func TestCheckInventorySufficient(t *testing.T) {
	orders, recipes, ingredients := pizzeriaFixture()
	ingredients.ingredients[100].Quantity = 6
	handler := NewCheckInventoryHandler(orders, recipes, ingredients)

	check, err := handler.Handle(context.Background(), CheckInventoryQuery{OrderID: 1})
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}

	if !check.Sufficient {
		t.Errorf("expected sufficient stock, shortages: %+v", check.Shortages)
	}
	if len(check.Shortages) != 0 {
		t.Errorf("shortages = %d, want 0", len(check.Shortages))
	}
}

func TestCheckInventoryIsIdempotent(t *testing.T) {
	orders, recipes, ingredients := pizzeriaFixture()
	handler := NewCheckInventoryHandler(orders, recipes, ingredients)

	first, err := handler.Handle(context.Background(), CheckInventoryQuery{OrderID: 1})
	if err != nil {
		t.Fatalf("first Handle() error: %v", err)
	}
	second, err := handler.Handle(context.Background(), CheckInventoryQuery{OrderID: 1})
	if err != nil {
		t.Fatalf("second Handle() error: %v", err)
	}

	if first.Sufficient != second.Sufficient || len(first.Shortages) != len(second.Shortages) {
		t.Errorf("repeated checks differ: %+v vs %+v", first, second)
	}
	if ingredients.ingredients[100].Quantity != 5 {
		t.Errorf("check mutated stock: %v", ingredients.ingredients[100].Quantity)
	}
}

func TestCheckInventoryEmptyOrder(t *testing.T) {
	orders, recipes, ingredients := pizzeriaFixture()
	orders.items[1] = nil
	handler := NewCheckInventoryHandler(orders, recipes, ingredients)

	check, err := handler.Handle(context.Background(), CheckInventoryQuery{OrderID: 1})
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}
	if !check.Sufficient {
		t.Error("order with no items should be vacuously sufficient")
	}
}

func TestCheckInventoryNoRecipes(t *testing.T) {
	orders, recipes, ingredients := pizzeriaFixture()
	recipes.recipes = nil
	handler := NewCheckInventoryHandler(orders, recipes, ingredients)

	check, err := handler.Handle(context.Background(), CheckInventoryQuery{OrderID: 1})
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}
	if !check.Sufficient {
		t.Error("order whose items have no recipes should be sufficient")
	}
}

func TestCheckInventoryCustomRowsExcluded(t *testing.T) {
	orders, recipes, ingredients := pizzeriaFixture()
	// A custom row with an absurd quantity must not affect the result
	recipes.rows = append(recipes.rows, menudomain.RecipeIngredient{
		ID: 3, RecipeID: 70, IngredientID: nil, Name: "chef's touch", Quantity: 10000,
	})
	ingredients.ingredients[100].Quantity = 6
	handler := NewCheckInventoryHandler(orders, recipes, ingredients)

	check, err := handler.Handle(context.Background(), CheckInventoryQuery{OrderID: 1})
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}
	if !check.Sufficient {
		t.Errorf("custom rows should be excluded, shortages: %+v", check.Shortages)
	}
}

func TestCheckInventoryOrderNotFound(t *testing.T) {
	orders, recipes, ingredients := pizzeriaFixture()
	handler := NewCheckInventoryHandler(orders, recipes, ingredients)

	_, err := handler.Handle(context.Background(), CheckInventoryQuery{OrderID: 42})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestCheckInventoryZeroOrderID(t *testing.T) {
	orders, recipes, ingredients := pizzeriaFixture()
	handler := NewCheckInventoryHandler(orders, recipes, ingredients)

	_, err := handler.Handle(context.Background(), CheckInventoryQuery{})
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("err = %v, want ErrInvalidArgument", err)
	}
}
