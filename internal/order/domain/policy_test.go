package domain

import "testing"

func TestDefaultTransitionPolicy(t *testing.T) {
	policy := DefaultTransitionPolicy()

	cases := []struct {
		role   string
		status string
		want   bool
	}{
		{RoleAdmin, StatusPending, true},
		{RoleAdmin, StatusCancelled, true},
		{RoleManager, StatusAccepted, true},
		{RoleManager, StatusCompleted, true},
		{RoleKitchen, StatusInProgress, true},
		{RoleKitchen, StatusCompleted, true},
		{RoleKitchen, StatusAccepted, false},
		{RoleKitchen, StatusCancelled, false},
		{RoleServer, StatusPending, true},
		{RoleServer, StatusAccepted, true},
		{RoleServer, StatusCancelled, true},
		{RoleServer, StatusInProgress, false},
		{RoleServer, StatusCompleted, false},
		{"dishwasher", StatusPending, false},
	}

	for _, tc := range cases {
		if got := policy.Allows(tc.role, tc.status); got != tc.want {
			t.Errorf("Allows(%q, %q) = %v, want %v", tc.role, tc.status, got, tc.want)
		}
	}
}

func TestTransitionPolicyInjection(t *testing.T) {
	policy := TransitionPolicy{
		"expeditor": {StatusInProgress},
	}

	if !policy.Allows("expeditor", StatusInProgress) {
		t.Error("custom role should be allowed its configured status")
	}
	if policy.Allows("expeditor", StatusCompleted) {
		t.Error("custom role should not be allowed other statuses")
	}
	if policy.Allows(RoleAdmin, StatusPending) {
		t.Error("roles absent from the policy should be denied")
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusAccepted, StatusInProgress, StatusCompleted, StatusCancelled} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "done", "PENDING", "in progress"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true, want false", s)
		}
	}
}
