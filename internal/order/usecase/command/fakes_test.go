package command

import (
	"context"
	"errors"
	"sync"

	"gorm.io/gorm"

	invdomain "github.com/platefork/kitchen/internal/inventory/domain"
	menudomain "github.com/platefork/kitchen/internal/menu/domain"
	"github.com/platefork/kitchen/internal/order/domain"
)

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[uint]*domain.Order
	items  map[uint][]domain.OrderItem
	nextID uint
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: make(map[uint]*domain.Order),
		items:  make(map[uint][]domain.OrderItem),
		nextID: 1,
	}
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	order.ID = f.nextID
	f.nextID++
	f.orders[order.ID] = order
	f.items[order.ID] = order.Items
	return nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return order, nil
}

func (f *fakeOrderRepo) FindItems(ctx context.Context, orderID uint) ([]domain.OrderItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.items[orderID], nil
}

func (f *fakeOrderRepo) FindAll(ctx context.Context, limit, offset int) ([]domain.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
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

func (f *fakeRecipeRepo) Create(recipe *menudomain.Recipe) error { return errors.New("not supported") }
func (f *fakeRecipeRepo) FindByID(id uint) (*menudomain.Recipe, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeRecipeRepo) Delete(id uint) error { return errors.New("not supported") }
func (f *fakeRecipeRepo) AddIngredient(row *menudomain.RecipeIngredient) error {
	return errors.New("not supported")
}
func (f *fakeRecipeRepo) RemoveIngredient(id uint) error { return errors.New("not supported") }

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

// fakeIngredientRepo applies deltas under a mutex with the same floor
// clamp the real store enforces in SQL, so concurrency tests observe
// the production semantics.
type fakeIngredientRepo struct {
	mu          sync.Mutex
	ingredients map[uint]*invdomain.Ingredient
	failConsume map[uint]error
}

func newFakeIngredientRepo() *fakeIngredientRepo {
	return &fakeIngredientRepo{
		ingredients: make(map[uint]*invdomain.Ingredient),
		failConsume: make(map[uint]error),
	}
}

func (f *fakeIngredientRepo) Create(ctx context.Context, ingredient *invdomain.Ingredient) error {
	return errors.New("not supported")
}
func (f *fakeIngredientRepo) Update(ctx context.Context, ingredient *invdomain.Ingredient) error {
	return errors.New("not supported")
}
func (f *fakeIngredientRepo) Delete(ctx context.Context, id uint) error                        { return errors.New("not supported") }
func (f *fakeIngredientRepo) SetQuantity(ctx context.Context, id uint, quantity float64) error { return errors.New("not supported") }
func (f *fakeIngredientRepo) FindAll(ctx context.Context, limit, offset int) ([]invdomain.Ingredient, error) {
	return nil, nil
}
func (f *fakeIngredientRepo) FindByLocation(ctx context.Context, locationID uint, limit, offset int) ([]invdomain.Ingredient, error) {
	return nil, nil
}

func (f *fakeIngredientRepo) FindByID(ctx context.Context, id uint) (*invdomain.Ingredient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ingredient, ok := f.ingredients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *ingredient
	return &copied, nil
}

func (f *fakeIngredientRepo) FindByIDs(ctx context.Context, ids []uint) ([]invdomain.Ingredient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []invdomain.Ingredient
	for _, id := range ids {
		if ingredient, ok := f.ingredients[id]; ok {
			out = append(out, *ingredient)
		}
	}
	return out, nil
}

func (f *fakeIngredientRepo) ConsumeQuantity(ctx context.Context, id uint, amount float64) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failConsume[id]; ok {
		return 0, err
	}
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
	f.mu.Lock()
	defer f.mu.Unlock()
	ingredient, ok := f.ingredients[id]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	ingredient.Quantity += amount
	return ingredient.Quantity, nil
}

func (f *fakeIngredientRepo) quantity(id uint) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ingredients[id].Quantity
}

type fakePublisher struct {
	mu            sync.Mutex
	placed        []uint
	statusChanges []string
}

func (f *fakePublisher) PublishOrderPlaced(ctx context.Context, orderID uint, customerName string, itemCount int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.placed = append(f.placed, orderID)
	return nil
}

func (f *fakePublisher) PublishOrderStatusChanged(ctx context.Context, orderID uint, status string, restoredStock bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statusChanges = append(f.statusChanges, status)
	return nil
}

func uintPtr(v uint) *uint { return &v }
