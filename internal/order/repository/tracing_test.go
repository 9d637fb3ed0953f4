package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/platefork/kitchen/internal/order/domain"
)

type stubOrderRepo struct {
	calls  []string
	order  *domain.Order
	err    error
	status string
}

func (s *stubOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	s.calls = append(s.calls, "Create")
	return s.err
}

func (s *stubOrderRepo) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	s.calls = append(s.calls, "FindByID")
	if s.err != nil {
		return nil, s.err
	}
	return s.order, nil
}

func (s *stubOrderRepo) FindItems(ctx context.Context, orderID uint) ([]domain.OrderItem, error) {
	s.calls = append(s.calls, "FindItems")
	return nil, s.err
}

func (s *stubOrderRepo) FindAll(ctx context.Context, limit, offset int) ([]domain.Order, error) {
	s.calls = append(s.calls, "FindAll")
	return nil, s.err
}

func (s *stubOrderRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	s.calls = append(s.calls, "UpdateStatus")
	s.status = status
	return s.err
}

func TestOrderRepositoryWithTracingDelegates(t *testing.T) {
	inner := &stubOrderRepo{order: &domain.Order{ID: 7, Status: domain.StatusPending}}
	traced := NewOrderRepositoryWithTracing(inner)
	ctx := context.Background()

	order, err := traced.FindByID(ctx, 7)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if order.ID != 7 {
		t.Errorf("order ID = %d, want 7", order.ID)
	}

	if err := traced.UpdateStatus(ctx, 7, domain.StatusCompleted); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if inner.status != domain.StatusCompleted {
		t.Errorf("inner status = %q, want %q", inner.status, domain.StatusCompleted)
	}

	if _, err := traced.FindItems(ctx, 7); err != nil {
		t.Fatalf("FindItems: %v", err)
	}
	if _, err := traced.FindAll(ctx, 10, 0); err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if err := traced.Create(ctx, &domain.Order{}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	want := []string{"FindByID", "UpdateStatus", "FindItems", "FindAll", "Create"}
	if len(inner.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", inner.calls, want)
	}
	for i, name := range want {
		if inner.calls[i] != name {
			t.Errorf("call %d = %q, want %q", i, inner.calls[i], name)
		}
	}
}

func TestOrderRepositoryWithTracingPropagatesErrors(t *testing.T) {
	wantErr := errors.New("connection reset")
	traced := NewOrderRepositoryWithTracing(&stubOrderRepo{err: wantErr})

	if _, err := traced.FindByID(context.Background(), 1); !errors.Is(err, wantErr) {
		t.Errorf("FindByID error = %v, want %v", err, wantErr)
	}
	if err := traced.UpdateStatus(context.Background(), 1, domain.StatusAccepted); !errors.Is(err, wantErr) {
		t.Errorf("UpdateStatus error = %v, want %v", err, wantErr)
	}
}
