package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Location represents a physical site (kitchen, storefront, warehouse)
// whose stock is tracked independently
type Location struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"not null;uniqueIndex"`
	Address   string         `json:"address"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Location) TableName() string {
	return "locations"
}

// Ingredient represents a tracked stock item. Quantity is the current
// on-hand amount and never goes below zero: consumption is clamped at
// the database level.
type Ingredient struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	Name       string         `json:"name" gorm:"not null;index"`
	Quantity   float64        `json:"quantity" gorm:"not null;default:0"`
	Unit       string         `json:"unit" gorm:"not null;default:'unit'"`
	LocationID *uint          `json:"location_id" gorm:"index"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Ingredient) TableName() string {
	return "ingredients"
}

// IngredientRepository defines the contract for ingredient data access.
// ConsumeQuantity and RestoreQuantity apply the delta as a single
// conditional statement so concurrent callers cannot lose updates.
type IngredientRepository interface {
	Create(ctx context.Context, ingredient *Ingredient) error
	FindByID(ctx context.Context, id uint) (*Ingredient, error)
	FindByIDs(ctx context.Context, ids []uint) ([]Ingredient, error)
	FindAll(ctx context.Context, limit, offset int) ([]Ingredient, error)
	FindByLocation(ctx context.Context, locationID uint, limit, offset int) ([]Ingredient, error)
	Update(ctx context.Context, ingredient *Ingredient) error
	Delete(ctx context.Context, id uint) error
	SetQuantity(ctx context.Context, id uint, quantity float64) error
	ConsumeQuantity(ctx context.Context, id uint, amount float64) (float64, error)
	RestoreQuantity(ctx context.Context, id uint, amount float64) (float64, error)
}

// LocationRepository defines the contract for location data access
type LocationRepository interface {
	Create(location *Location) error
	FindByID(id uint) (*Location, error)
	FindAll(limit, offset int) ([]Location, error)
	Update(location *Location) error
	Delete(id uint) error
}
