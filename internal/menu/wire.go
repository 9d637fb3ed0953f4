//go:build wireinject
// +build wireinject

package menu

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/platefork/kitchen/internal/menu/delivery/http"
	"github.com/platefork/kitchen/internal/menu/domain"
	"github.com/platefork/kitchen/internal/menu/repository"
)

// ProvideMenuRepository provides the menu item repository
func ProvideMenuRepository(db *gorm.DB) domain.MenuRepository {
	return repository.NewGormMenuRepository(db)
}

// ProvideRecipeRepository provides the recipe repository
func ProvideRecipeRepository(db *gorm.DB) domain.RecipeRepository {
	return repository.NewGormRecipeRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideMenuRepository,
	ProvideRecipeRepository,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.MenuHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewMenuHandler,
	)
	return nil, nil
}
