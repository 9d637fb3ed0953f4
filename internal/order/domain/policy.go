package domain

// Roles known to the transition policy
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleKitchen = "kitchen"
	RoleServer  = "server"
)

// TransitionPolicy maps a role to the order statuses it is allowed to
// set. It is injected into the status handler rather than read from a
// package constant so tests can supply alternate role sets.
type TransitionPolicy map[string][]string

// Allows reports whether the given role may move an order into status
func (p TransitionPolicy) Allows(role, status string) bool {
	for _, allowed := range p[role] {
		if allowed == status {
			return true
		}
	}
	return false
}

// DefaultTransitionPolicy is the production role set: managers and
// admins control the full lifecycle, kitchen staff move accepted
// orders through preparation, servers take and cancel orders.
func DefaultTransitionPolicy() TransitionPolicy {
	all := []string{StatusPending, StatusAccepted, StatusInProgress, StatusCompleted, StatusCancelled}
	return TransitionPolicy{
		RoleAdmin:   all,
		RoleManager: all,
		RoleKitchen: {StatusInProgress, StatusCompleted},
		RoleServer:  {StatusPending, StatusAccepted, StatusCancelled},
	}
}
