package domain

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

func TestWrapStoreError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"record not found", gorm.ErrRecordNotFound, ErrNotFound},
		{"too many connections", &pq.Error{Code: "53300"}, ErrRateLimited},
		{"disk full", &pq.Error{Code: "53100"}, ErrRateLimited},
		{"constraint violation", &pq.Error{Code: "23505"}, ErrUpstreamFailure},
		{"plain error", errors.New("connection reset"), ErrUpstreamFailure},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := WrapStoreError("op", tc.err)
			if tc.want == nil {
				if got != nil {
					t.Fatalf("got %v, want nil", got)
				}
				return
			}
			if !errors.Is(got, tc.want) {
				t.Errorf("got %v, want wrapped %v", got, tc.want)
			}
		})
	}
}

func TestInsufficientStockError(t *testing.T) {
	err := &InsufficientStockError{Shortages: []Shortage{
		{IngredientID: 1, Name: "Flour", Available: 5, Required: 6, Missing: 1, Unit: "kg"},
	}}

	if err.Error() != "insufficient stock for 1 ingredient(s)" {
		t.Errorf("unexpected message: %q", err.Error())
	}

	var target *InsufficientStockError
	if !errors.As(error(err), &target) {
		t.Error("errors.As should match InsufficientStockError")
	}
}
