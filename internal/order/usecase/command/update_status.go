package command

import (
	"context"
	"fmt"

	"github.com/platefork/kitchen/internal/order/domain"
	"github.com/platefork/kitchen/internal/order/usecase/query"
	"github.com/platefork/kitchen/pkg/logger"
)

// UpdateStatusCommand represents a requested order status transition.
// Role is the caller's role; the injected policy decides whether it
// may set the target status.
type UpdateStatusCommand struct {
	OrderID          uint
	Status           string
	RestoreInventory bool
	Role             string
}

// UpdateStatusHandler orchestrates status transitions. Moving into
// "accepted" is gated on the sufficiency check and followed by a stock
// decrement; moving back to "pending" with RestoreInventory set
// re-credits previously consumed stock. Inventory failures after the
// status write are logged, not reverted.
type UpdateStatusHandler struct {
	orderRepo domain.OrderRepository
	checker   *query.CheckInventoryHandler
	engine    *UpdateInventoryHandler
	policy    domain.TransitionPolicy
	events    domain.EventPublisher
}

// NewUpdateStatusHandler creates a new update status handler
func NewUpdateStatusHandler(
	orderRepo domain.OrderRepository,
	checker *query.CheckInventoryHandler,
	engine *UpdateInventoryHandler,
	policy domain.TransitionPolicy,
	events domain.EventPublisher,
) *UpdateStatusHandler {
	return &UpdateStatusHandler{
		orderRepo: orderRepo,
		checker:   checker,
		engine:    engine,
		policy:    policy,
		events:    events,
	}
}

// Handle executes the status transition
func (h *UpdateStatusHandler) Handle(ctx context.Context, cmd UpdateStatusCommand) error {
	if cmd.OrderID == 0 {
		return fmt.Errorf("order id is required: %w", domain.ErrInvalidArgument)
	}
	if !domain.ValidStatus(cmd.Status) {
		return fmt.Errorf("unknown status %q: %w", cmd.Status, domain.ErrInvalidArgument)
	}
	if cmd.Role != "" && !h.policy.Allows(cmd.Role, cmd.Status) {
		return fmt.Errorf("role %q may not set status %q: %w", cmd.Role, cmd.Status, domain.ErrInvalidArgument)
	}

	if _, err := h.orderRepo.FindByID(ctx, cmd.OrderID); err != nil {
		return domain.WrapStoreError("load order", err)
	}

	// Stock is reserved at acceptance time, not at order placement,
	// so only the transition into "accepted" is gated.
	if cmd.Status == domain.StatusAccepted {
		check, err := h.checker.Handle(ctx, query.CheckInventoryQuery{OrderID: cmd.OrderID})
		if err != nil {
			return err
		}
		if !check.Sufficient {
			return &domain.InsufficientStockError{Shortages: check.Shortages}
		}
	}

	if err := h.orderRepo.UpdateStatus(ctx, cmd.OrderID, cmd.Status); err != nil {
		return domain.WrapStoreError("update order status", err)
	}

	switch {
	case cmd.Status == domain.StatusAccepted:
		h.applyInventory(ctx, cmd.OrderID, domain.ActionDecrement)
	case cmd.Status == domain.StatusPending && cmd.RestoreInventory:
		h.applyInventory(ctx, cmd.OrderID, domain.ActionIncrement)
	}

	if h.events != nil {
		if err := h.events.PublishOrderStatusChanged(ctx, cmd.OrderID, cmd.Status, cmd.RestoreInventory); err != nil {
			logger.Warn(ctx).
				Err(err).
				Uint("order_id", cmd.OrderID).
				Str("status", cmd.Status).
				Msg("Failed to publish status change event")
		}
	}

	return nil
}

// applyInventory runs the consumption engine after the status change
// has been committed. The status write is not reverted on failure;
// errors here are surfaced through logs only.
func (h *UpdateStatusHandler) applyInventory(ctx context.Context, orderID uint, action string) {
	update, err := h.engine.Handle(ctx, UpdateInventoryCommand{OrderID: orderID, Action: action})
	if err != nil {
		logger.Error(ctx).
			Err(err).
			Uint("order_id", orderID).
			Str("action", action).
			Msg("Inventory update failed after status change")
		return
	}

	for _, result := range update.Results {
		if !result.Success {
			logger.Warn(ctx).
				Uint("order_id", orderID).
				Uint("ingredient_id", result.IngredientID).
				Str("action", action).
				Str("error", result.Error).
				Msg("Ingredient update failed after status change")
		}
	}
}
