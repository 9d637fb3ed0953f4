package domain

import (
	"time"

	"gorm.io/gorm"
)

// MenuItem represents a sellable dish
type MenuItem struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"not null;index"`
	Price     float64        `json:"price" gorm:"not null;default:0"`
	Category  string         `json:"category" gorm:"index"`
	Available bool           `json:"available" gorm:"default:true"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (MenuItem) TableName() string {
	return "menu_items"
}

// Recipe maps a menu item to its ingredient requirements. Each menu
// item has at most one recipe.
type Recipe struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	MenuItemID  uint           `json:"menu_item_id" gorm:"not null;uniqueIndex"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Recipe) TableName() string {
	return "recipes"
}

// RecipeIngredient is one requirement row of a recipe. IngredientID is
// nil for free-text custom ingredients that are not tracked in stock;
// those rows never participate in sufficiency checks or consumption.
type RecipeIngredient struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	RecipeID     uint           `json:"recipe_id" gorm:"not null;index"`
	IngredientID *uint          `json:"ingredient_id" gorm:"index"`
	Name         string         `json:"name"`
	Quantity     float64        `json:"quantity" gorm:"not null;default:0"`
	Unit         string         `json:"unit"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}

// MenuRepository defines the contract for menu item data access
type MenuRepository interface {
	Create(item *MenuItem) error
	FindByID(id uint) (*MenuItem, error)
	FindAll(limit, offset int) ([]MenuItem, error)
	Update(item *MenuItem) error
	Delete(id uint) error
}

// RecipeRepository defines the contract for recipe and requirement-row
// data access
type RecipeRepository interface {
	Create(recipe *Recipe) error
	FindByID(id uint) (*Recipe, error)
	FindByMenuItemIDs(menuItemIDs []uint) ([]Recipe, error)
	Delete(id uint) error

	AddIngredient(row *RecipeIngredient) error
	FindIngredientsByRecipeIDs(recipeIDs []uint) ([]RecipeIngredient, error)
	RemoveIngredient(id uint) error
}
