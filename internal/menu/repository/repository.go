package repository

import (
	"gorm.io/gorm"

	"github.com/platefork/kitchen/internal/menu/domain"
)

type GormMenuRepository struct {
	db *gorm.DB
}

func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

func (r *GormMenuRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.MenuItem{}, &domain.Recipe{}, &domain.RecipeIngredient{})
}

func (r *GormMenuRepository) Create(item *domain.MenuItem) error {
	return r.db.Create(item).Error
}

func (r *GormMenuRepository) FindByID(id uint) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormMenuRepository) FindAll(limit, offset int) ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	err := r.db.Limit(limit).Offset(offset).Find(&items).Error
	return items, err
}

func (r *GormMenuRepository) Update(item *domain.MenuItem) error {
	return r.db.Save(item).Error
}

func (r *GormMenuRepository) Delete(id uint) error {
	return r.db.Delete(&domain.MenuItem{}, id).Error
}

type GormRecipeRepository struct {
	db *gorm.DB
}

func NewGormRecipeRepository(db *gorm.DB) *GormRecipeRepository {
	return &GormRecipeRepository{db: db}
}

func (r *GormRecipeRepository) Create(recipe *domain.Recipe) error {
	return r.db.Create(recipe).Error
}

func (r *GormRecipeRepository) FindByID(id uint) (*domain.Recipe, error) {
	var recipe domain.Recipe
	err := r.db.First(&recipe, id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *GormRecipeRepository) FindByMenuItemIDs(menuItemIDs []uint) ([]domain.Recipe, error) {
	var recipes []domain.Recipe
	if len(menuItemIDs) == 0 {
		return recipes, nil
	}
	err := r.db.Where("menu_item_id IN ?", menuItemIDs).Find(&recipes).Error
	return recipes, err
}

func (r *GormRecipeRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Recipe{}, id).Error
}

func (r *GormRecipeRepository) AddIngredient(row *domain.RecipeIngredient) error {
	return r.db.Create(row).Error
}

func (r *GormRecipeRepository) FindIngredientsByRecipeIDs(recipeIDs []uint) ([]domain.RecipeIngredient, error) {
	var rows []domain.RecipeIngredient
	if len(recipeIDs) == 0 {
		return rows, nil
	}
	err := r.db.Where("recipe_id IN ?", recipeIDs).Find(&rows).Error
	return rows, err
}

func (r *GormRecipeRepository) RemoveIngredient(id uint) error {
	return r.db.Delete(&domain.RecipeIngredient{}, id).Error
}
