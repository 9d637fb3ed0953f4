package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/platefork/kitchen/internal/order/domain"
)

var tracer = otel.Tracer("order-repository")

// OrderRepositoryWithTracing decorates an OrderRepository with a span
// per call
type OrderRepositoryWithTracing struct {
	inner domain.OrderRepository
}

var _ domain.OrderRepository = (*OrderRepositoryWithTracing)(nil)

// NewOrderRepositoryWithTracing wraps the given repository with tracing
func NewOrderRepositoryWithTracing(inner domain.OrderRepository) *OrderRepositoryWithTracing {
	return &OrderRepositoryWithTracing{inner: inner}
}

func (r *OrderRepositoryWithTracing) Create(ctx context.Context, order *domain.Order) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.Int("order.item_count", len(order.Items)),
		),
	)
	defer span.End()

	if err := r.inner.Create(ctx, order); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("order.id", int(order.ID)))
	return nil
}

func (r *OrderRepositoryWithTracing) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.Int("order.id", int(id)),
		),
	)
	defer span.End()

	order, err := r.inner.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("order.status", order.Status),
		attribute.Int("order.item_count", len(order.Items)),
	)
	return order, nil
}

func (r *OrderRepositoryWithTracing) FindItems(ctx context.Context, orderID uint) ([]domain.OrderItem, error) {
	ctx, span := tracer.Start(ctx, "repository.FindItems",
		trace.WithAttributes(
			attribute.Int("order.id", int(orderID)),
		),
	)
	defer span.End()

	items, err := r.inner.FindItems(ctx, orderID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(items)))
	return items, nil
}

func (r *OrderRepositoryWithTracing) FindAll(ctx context.Context, limit, offset int) ([]domain.Order, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAll",
		trace.WithAttributes(
			attribute.Int("query.limit", limit),
			attribute.Int("query.offset", offset),
		),
	)
	defer span.End()

	orders, err := r.inner.FindAll(ctx, limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(orders)))
	return orders, nil
}

func (r *OrderRepositoryWithTracing) UpdateStatus(ctx context.Context, id uint, status string) error {
	ctx, span := tracer.Start(ctx, "repository.UpdateStatus",
		trace.WithAttributes(
			attribute.Int("order.id", int(id)),
			attribute.String("order.status", status),
		),
	)
	defer span.End()

	if err := r.inner.UpdateStatus(ctx, id, status); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
