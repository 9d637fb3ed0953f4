//go:build wireinject
// +build wireinject

package inventory

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/platefork/kitchen/internal/inventory/delivery/http"
	"github.com/platefork/kitchen/internal/inventory/domain"
	"github.com/platefork/kitchen/internal/inventory/repository"
)

// ProvideIngredientRepository provides the traced ingredient repository
func ProvideIngredientRepository(db *gorm.DB) domain.IngredientRepository {
	return repository.NewIngredientRepositoryWithTracing(repository.NewGormIngredientRepository(db))
}

// ProvideLocationRepository provides the location repository
func ProvideLocationRepository(db *gorm.DB) domain.LocationRepository {
	return repository.NewGormLocationRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideIngredientRepository,
	ProvideLocationRepository,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.IngredientHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewIngredientHandler,
	)
	return nil, nil
}
