package query

import (
	"fmt"

	"github.com/platefork/kitchen/internal/user/domain"
)

// ListUsersQuery represents the query to list users, optionally
// filtered by role
type ListUsersQuery struct {
	Role   string
	Limit  int
	Offset int
}

// ListUsersHandler handles list users query
type ListUsersHandler struct {
	repo domain.UserRepository
}

// NewListUsersHandler creates a new list users handler
func NewListUsersHandler(repo domain.UserRepository) *ListUsersHandler {
	return &ListUsersHandler{repo: repo}
}

// Handle executes the list users query
func (h *ListUsersHandler) Handle(query ListUsersQuery) ([]domain.User, error) {
	if query.Limit <= 0 {
		query.Limit = 10
	}
	if query.Limit > 100 {
		query.Limit = 100
	}
	if query.Offset < 0 {
		query.Offset = 0
	}

	var (
		users []domain.User
		err   error
	)
	if query.Role != "" {
		if !domain.ValidRole(query.Role) {
			return nil, fmt.Errorf("invalid role: %s", query.Role)
		}
		users, err = h.repo.FindByRole(query.Role, query.Limit, query.Offset)
	} else {
		users, err = h.repo.FindAll(query.Limit, query.Offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}
