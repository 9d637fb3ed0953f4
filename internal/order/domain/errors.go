package domain

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Error taxonomy for the ordering workflow. ErrRateLimited is
// retryable by the caller; everything else is terminal for the
// current attempt.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrRateLimited     = errors.New("rate limited by data store")
	ErrUpstreamFailure = errors.New("data store failure")
)

// WrapStoreError classifies a data-access error into the taxonomy.
// Postgres class 53 SQLSTATEs (insufficient resources) surface as
// ErrRateLimited so callers can back off and retry.
func WrapStoreError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case isRateLimited(err):
		return fmt.Errorf("%s: %w", op, ErrRateLimited)
	default:
		return fmt.Errorf("%s: %v: %w", op, err, ErrUpstreamFailure)
	}
}

func isRateLimited(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Class() == "53"
	}
	return false
}

// InsufficientStockError rejects a status change into "accepted" when
// stock cannot cover the order. It carries the full shortage list so
// operators can see exactly what is missing.
type InsufficientStockError struct {
	Shortages []Shortage
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %d ingredient(s)", len(e.Shortages))
}
