package kafka

import "time"

// OrderPlacedEvent represents a newly placed order
type OrderPlacedEvent struct {
	EventID      string    `json:"event_id"`
	EventType    string    `json:"event_type"`
	OrderID      uint      `json:"order_id"`
	CustomerName string    `json:"customer_name"`
	ItemCount    int       `json:"item_count"`
	Timestamp    time.Time `json:"timestamp"`
}

// OrderStatusChangedEvent represents an order status transition
type OrderStatusChangedEvent struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	OrderID       uint      `json:"order_id"`
	Status        string    `json:"status"`
	RestoredStock bool      `json:"restored_stock"`
	Timestamp     time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeOrderPlaced        = "order.placed"
	EventTypeOrderStatusChanged = "order.status_changed"
)

// Kafka topics
const (
	TopicOrderPlaced        = "order-placed"
	TopicOrderStatusChanged = "order-status-changed"
)
