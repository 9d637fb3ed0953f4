package middleware

import (
	"errors"
	"testing"
	"time"
)

func TestCircuitBreakerOpensAfterFailures(t *testing.T) {
	cb := NewCircuitBreaker("kitchen", 3, 50*time.Millisecond)
	failing := func() error { return errors.New("boom") }

	for i := 0; i < 3; i++ {
		if err := cb.Call(failing); err == nil {
			t.Fatal("expected failure to propagate")
		}
	}

	if got := cb.GetState(); got != StateOpen {
		t.Fatalf("state = %q, want open", got)
	}

	// Open circuit rejects without invoking the function
	invoked := false
	err := cb.Call(func() error {
		invoked = true
		return nil
	})
	if err == nil {
		t.Error("open circuit should reject the call")
	}
	if invoked {
		t.Error("open circuit must not invoke the function")
	}
}

func TestCircuitBreakerRecovery(t *testing.T) {
	cb := NewCircuitBreaker("kitchen", 1, 10*time.Millisecond)

	if err := cb.Call(func() error { return errors.New("boom") }); err == nil {
		t.Fatal("expected failure")
	}
	if cb.GetState() != StateOpen {
		t.Fatalf("state = %q, want open", cb.GetState())
	}

	time.Sleep(20 * time.Millisecond)

	// Three successes in half-open close the circuit
	for i := 0; i < 3; i++ {
		if err := cb.Call(func() error { return nil }); err != nil {
			t.Fatalf("success call #%d failed: %v", i, err)
		}
	}

	if got := cb.GetState(); got != StateClosed {
		t.Errorf("state = %q, want closed after recovery", got)
	}
}

func TestCircuitBreakerHalfOpenFailureReopens(t *testing.T) {
	cb := NewCircuitBreaker("kitchen", 1, 10*time.Millisecond)

	cb.Call(func() error { return errors.New("boom") })
	time.Sleep(20 * time.Millisecond)

	// First call after timeout runs in half-open; failure reopens
	cb.Call(func() error { return errors.New("still down") })

	if got := cb.GetState(); got != StateOpen {
		t.Errorf("state = %q, want open after half-open failure", got)
	}
}

func TestCircuitBreakerSuccessResetsFailures(t *testing.T) {
	cb := NewCircuitBreaker("kitchen", 2, time.Second)

	cb.Call(func() error { return errors.New("boom") })
	cb.Call(func() error { return nil })
	cb.Call(func() error { return errors.New("boom") })

	if got := cb.GetState(); got != StateClosed {
		t.Errorf("state = %q, want closed when failures are not consecutive", got)
	}
}

func TestDetermineServiceFromPath(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/api/orders/1/check-inventory", "kitchen"},
		{"/api/menu-items", "kitchen"},
		{"/health", "kitchen"},
		{"/gateway/health", ""},
		{"/", ""},
	}
	for _, tc := range cases {
		if got := determineServiceFromPath(tc.path); got != tc.want {
			t.Errorf("determineServiceFromPath(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}
