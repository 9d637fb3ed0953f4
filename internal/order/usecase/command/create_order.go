package command

import (
	"context"
	"fmt"

	menudomain "github.com/platefork/kitchen/internal/menu/domain"
	"github.com/platefork/kitchen/internal/order/domain"
	"github.com/platefork/kitchen/pkg/logger"
)

// CreateOrderItem is one requested line of a new order
type CreateOrderItem struct {
	MenuItemID uint
	Quantity   int
}

// CreateOrderCommand represents the command to place a new order
type CreateOrderCommand struct {
	CustomerName string
	Items        []CreateOrderItem
}

// CreateOrderHandler handles create order command
type CreateOrderHandler struct {
	orderRepo domain.OrderRepository
	menuRepo  menudomain.MenuRepository
	events    domain.EventPublisher
}

// NewCreateOrderHandler creates a new create order handler
func NewCreateOrderHandler(
	orderRepo domain.OrderRepository,
	menuRepo menudomain.MenuRepository,
	events domain.EventPublisher,
) *CreateOrderHandler {
	return &CreateOrderHandler{
		orderRepo: orderRepo,
		menuRepo:  menuRepo,
		events:    events,
	}
}

// Handle executes the create order command. New orders always start as
// pending; stock is only reserved once the order is accepted.
func (h *CreateOrderHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*domain.Order, error) {
	if cmd.CustomerName == "" {
		return nil, fmt.Errorf("customer_name is required: %w", domain.ErrInvalidArgument)
	}
	if len(cmd.Items) == 0 {
		return nil, fmt.Errorf("order needs at least one item: %w", domain.ErrInvalidArgument)
	}

	order := &domain.Order{
		CustomerName: cmd.CustomerName,
		Status:       domain.StatusPending,
		Items:        make([]domain.OrderItem, 0, len(cmd.Items)),
	}

	for _, item := range cmd.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("item quantity must be greater than 0: %w", domain.ErrInvalidArgument)
		}

		menuItem, err := h.menuRepo.FindByID(item.MenuItemID)
		if err != nil {
			return nil, fmt.Errorf("menu item %d: %w", item.MenuItemID, domain.ErrNotFound)
		}

		order.TotalAmount += menuItem.Price * float64(item.Quantity)
		order.Items = append(order.Items, domain.OrderItem{
			MenuItemID:   item.MenuItemID,
			Quantity:     item.Quantity,
			PriceAtOrder: menuItem.Price,
		})
	}

	if err := h.orderRepo.Create(ctx, order); err != nil {
		return nil, domain.WrapStoreError("create order", err)
	}

	if h.events != nil {
		if err := h.events.PublishOrderPlaced(ctx, order.ID, order.CustomerName, len(order.Items)); err != nil {
			logger.Warn(ctx).
				Err(err).
				Uint("order_id", order.ID).
				Msg("Failed to publish order placed event")
		}
	}

	return order, nil
}
