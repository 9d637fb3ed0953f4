package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Order statuses. Membership in this set is the only transition rule
// enforced globally; role policy further restricts who may set what.
const (
	StatusPending    = "pending"
	StatusAccepted   = "accepted"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Inventory actions accepted by the consumption engine
const (
	ActionIncrement = "increment"
	ActionDecrement = "decrement"
)

// ValidStatus reports whether s is one of the five order statuses
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Order represents a customer order
type Order struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	CustomerName string         `json:"customer_name" gorm:"not null"`
	Status       string         `json:"status" gorm:"not null;default:'pending';index"`
	TotalAmount  float64        `json:"total_amount" gorm:"not null;default:0"`
	Items        []OrderItem    `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one requested menu item within an order
type OrderItem struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	OrderID      uint      `json:"order_id" gorm:"not null;index"`
	MenuItemID   uint      `json:"menu_item_id" gorm:"not null;index"`
	Quantity     int       `json:"quantity" gorm:"not null;default:1"`
	PriceAtOrder float64   `json:"price_at_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name
func (OrderItem) TableName() string {
	return "order_items"
}

// OrderRepository defines the contract for order data access
type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	FindByID(ctx context.Context, id uint) (*Order, error)
	FindItems(ctx context.Context, orderID uint) ([]OrderItem, error)
	FindAll(ctx context.Context, limit, offset int) ([]Order, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}
