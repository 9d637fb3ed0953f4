package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/platefork/kitchen/internal/inventory/domain"
)

type GormIngredientRepository struct {
	db *gorm.DB
}

func NewGormIngredientRepository(db *gorm.DB) *GormIngredientRepository {
	return &GormIngredientRepository{db: db}
}

func (r *GormIngredientRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Location{}, &domain.Ingredient{})
}

func (r *GormIngredientRepository) Create(ctx context.Context, ingredient *domain.Ingredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *GormIngredientRepository) FindByID(ctx context.Context, id uint) (*domain.Ingredient, error) {
	var ingredient domain.Ingredient
	err := r.db.WithContext(ctx).First(&ingredient, id).Error
	if err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *GormIngredientRepository) FindByIDs(ctx context.Context, ids []uint) ([]domain.Ingredient, error) {
	var ingredients []domain.Ingredient
	if len(ids) == 0 {
		return ingredients, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&ingredients).Error
	return ingredients, err
}

func (r *GormIngredientRepository) FindAll(ctx context.Context, limit, offset int) ([]domain.Ingredient, error) {
	var ingredients []domain.Ingredient
	err := r.db.WithContext(ctx).Limit(limit).Offset(offset).Find(&ingredients).Error
	return ingredients, err
}

func (r *GormIngredientRepository) FindByLocation(ctx context.Context, locationID uint, limit, offset int) ([]domain.Ingredient, error) {
	var ingredients []domain.Ingredient
	err := r.db.WithContext(ctx).Where("location_id = ?", locationID).
		Limit(limit).Offset(offset).
		Find(&ingredients).Error
	return ingredients, err
}

func (r *GormIngredientRepository) Update(ctx context.Context, ingredient *domain.Ingredient) error {
	return r.db.WithContext(ctx).Save(ingredient).Error
}

func (r *GormIngredientRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Ingredient{}, id).Error
}

func (r *GormIngredientRepository) SetQuantity(ctx context.Context, id uint, quantity float64) error {
	return r.db.WithContext(ctx).Model(&domain.Ingredient{}).
		Where("id = ?", id).
		Update("quantity", quantity).Error
}

// ConsumeQuantity decrements stock in a single round trip. The clamp at
// zero happens inside the statement, so two concurrent consumers can
// never drive the quantity negative or lose each other's writes.
func (r *GormIngredientRepository) ConsumeQuantity(ctx context.Context, id uint, amount float64) (float64, error) {
	var ingredient domain.Ingredient
	result := r.db.WithContext(ctx).Model(&ingredient).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "quantity"}}}).
		Where("id = ?", id).
		Update("quantity", gorm.Expr("GREATEST(quantity - ?, 0)", amount))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return ingredient.Quantity, nil
}

// RestoreQuantity increments stock in a single round trip
func (r *GormIngredientRepository) RestoreQuantity(ctx context.Context, id uint, amount float64) (float64, error) {
	var ingredient domain.Ingredient
	result := r.db.WithContext(ctx).Model(&ingredient).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "quantity"}}}).
		Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", amount))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return ingredient.Quantity, nil
}

type GormLocationRepository struct {
	db *gorm.DB
}

func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

func (r *GormLocationRepository) Create(location *domain.Location) error {
	return r.db.Create(location).Error
}

func (r *GormLocationRepository) FindByID(id uint) (*domain.Location, error) {
	var location domain.Location
	err := r.db.First(&location, id).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *GormLocationRepository) FindAll(limit, offset int) ([]domain.Location, error) {
	var locations []domain.Location
	err := r.db.Limit(limit).Offset(offset).Find(&locations).Error
	return locations, err
}

func (r *GormLocationRepository) Update(location *domain.Location) error {
	return r.db.Save(location).Error
}

func (r *GormLocationRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Location{}, id).Error
}
