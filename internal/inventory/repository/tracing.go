package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/platefork/kitchen/internal/inventory/domain"
)

var tracer = otel.Tracer("ingredient-repository")

// IngredientRepositoryWithTracing decorates an IngredientRepository
// with a span per call. The stock mutations carry the applied delta
// and the resulting quantity as span attributes.
type IngredientRepositoryWithTracing struct {
	inner domain.IngredientRepository
}

var _ domain.IngredientRepository = (*IngredientRepositoryWithTracing)(nil)

// NewIngredientRepositoryWithTracing wraps the given repository with tracing
func NewIngredientRepositoryWithTracing(inner domain.IngredientRepository) *IngredientRepositoryWithTracing {
	return &IngredientRepositoryWithTracing{inner: inner}
}

func (r *IngredientRepositoryWithTracing) Create(ctx context.Context, ingredient *domain.Ingredient) error {
	ctx, span := tracer.Start(ctx, "repository.Create")
	defer span.End()

	if err := r.inner.Create(ctx, ingredient); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("ingredient.id", int(ingredient.ID)))
	return nil
}

func (r *IngredientRepositoryWithTracing) FindByID(ctx context.Context, id uint) (*domain.Ingredient, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.Int("ingredient.id", int(id)),
		),
	)
	defer span.End()

	ingredient, err := r.inner.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("ingredient.name", ingredient.Name),
		attribute.Float64("ingredient.quantity", ingredient.Quantity),
	)
	return ingredient, nil
}

func (r *IngredientRepositoryWithTracing) FindByIDs(ctx context.Context, ids []uint) ([]domain.Ingredient, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByIDs",
		trace.WithAttributes(
			attribute.Int("query.id_count", len(ids)),
		),
	)
	defer span.End()

	ingredients, err := r.inner.FindByIDs(ctx, ids)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(ingredients)))
	return ingredients, nil
}

func (r *IngredientRepositoryWithTracing) FindAll(ctx context.Context, limit, offset int) ([]domain.Ingredient, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAll",
		trace.WithAttributes(
			attribute.Int("query.limit", limit),
			attribute.Int("query.offset", offset),
		),
	)
	defer span.End()

	ingredients, err := r.inner.FindAll(ctx, limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(ingredients)))
	return ingredients, nil
}

func (r *IngredientRepositoryWithTracing) FindByLocation(ctx context.Context, locationID uint, limit, offset int) ([]domain.Ingredient, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByLocation",
		trace.WithAttributes(
			attribute.Int("location.id", int(locationID)),
		),
	)
	defer span.End()

	ingredients, err := r.inner.FindByLocation(ctx, locationID, limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(ingredients)))
	return ingredients, nil
}

func (r *IngredientRepositoryWithTracing) Update(ctx context.Context, ingredient *domain.Ingredient) error {
	ctx, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(
			attribute.Int("ingredient.id", int(ingredient.ID)),
		),
	)
	defer span.End()

	if err := r.inner.Update(ctx, ingredient); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

func (r *IngredientRepositoryWithTracing) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(
			attribute.Int("ingredient.id", int(id)),
		),
	)
	defer span.End()

	if err := r.inner.Delete(ctx, id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

func (r *IngredientRepositoryWithTracing) SetQuantity(ctx context.Context, id uint, quantity float64) error {
	ctx, span := tracer.Start(ctx, "repository.SetQuantity",
		trace.WithAttributes(
			attribute.Int("ingredient.id", int(id)),
			attribute.Float64("quantity.new", quantity),
		),
	)
	defer span.End()

	if err := r.inner.SetQuantity(ctx, id, quantity); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

func (r *IngredientRepositoryWithTracing) ConsumeQuantity(ctx context.Context, id uint, amount float64) (float64, error) {
	ctx, span := tracer.Start(ctx, "repository.ConsumeQuantity",
		trace.WithAttributes(
			attribute.Int("ingredient.id", int(id)),
			attribute.Float64("quantity.delta", amount),
		),
	)
	defer span.End()

	remaining, err := r.inner.ConsumeQuantity(ctx, id, amount)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	span.SetAttributes(attribute.Float64("quantity.remaining", remaining))
	return remaining, nil
}

func (r *IngredientRepositoryWithTracing) RestoreQuantity(ctx context.Context, id uint, amount float64) (float64, error) {
	ctx, span := tracer.Start(ctx, "repository.RestoreQuantity",
		trace.WithAttributes(
			attribute.Int("ingredient.id", int(id)),
			attribute.Float64("quantity.delta", amount),
		),
	)
	defer span.End()

	remaining, err := r.inner.RestoreQuantity(ctx, id, amount)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	span.SetAttributes(attribute.Float64("quantity.remaining", remaining))
	return remaining, nil
}
