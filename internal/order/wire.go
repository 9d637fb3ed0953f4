//go:build wireinject
// +build wireinject

package order

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	invrepo "github.com/platefork/kitchen/internal/inventory/repository"
	invdomain "github.com/platefork/kitchen/internal/inventory/domain"
	menurepo "github.com/platefork/kitchen/internal/menu/repository"
	menudomain "github.com/platefork/kitchen/internal/menu/domain"
	"github.com/platefork/kitchen/internal/order/delivery/http"
	"github.com/platefork/kitchen/internal/order/domain"
	"github.com/platefork/kitchen/internal/order/repository"
)

// ProvideOrderRepository provides the traced order repository
func ProvideOrderRepository(db *gorm.DB) domain.OrderRepository {
	return repository.NewOrderRepositoryWithTracing(repository.NewGormOrderRepository(db))
}

// ProvideMenuRepository provides the menu repository
func ProvideMenuRepository(db *gorm.DB) menudomain.MenuRepository {
	return menurepo.NewGormMenuRepository(db)
}

// ProvideRecipeRepository provides the recipe repository
func ProvideRecipeRepository(db *gorm.DB) menudomain.RecipeRepository {
	return menurepo.NewGormRecipeRepository(db)
}

// ProvideIngredientRepository provides the traced ingredient repository
func ProvideIngredientRepository(db *gorm.DB) invdomain.IngredientRepository {
	return invrepo.NewIngredientRepositoryWithTracing(invrepo.NewGormIngredientRepository(db))
}

// ProvideTransitionPolicy provides the production role policy
func ProvideTransitionPolicy() domain.TransitionPolicy {
	return domain.DefaultTransitionPolicy()
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideOrderRepository,
	ProvideMenuRepository,
	ProvideRecipeRepository,
	ProvideIngredientRepository,
	ProvideTransitionPolicy,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, events domain.EventPublisher) (*http.OrderHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewOrderHandler,
	)
	return nil, nil
}
