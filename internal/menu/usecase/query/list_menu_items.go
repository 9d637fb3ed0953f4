package query

import (
	"fmt"

	"github.com/platefork/kitchen/internal/menu/domain"
)

// ListMenuItemsQuery represents the query to list menu items
type ListMenuItemsQuery struct {
	Limit  int
	Offset int
}

// ListMenuItemsHandler handles list menu items query
type ListMenuItemsHandler struct {
	repo domain.MenuRepository
}

// NewListMenuItemsHandler creates a new list menu items handler
func NewListMenuItemsHandler(repo domain.MenuRepository) *ListMenuItemsHandler {
	return &ListMenuItemsHandler{repo: repo}
}

// Handle executes the list menu items query
func (h *ListMenuItemsHandler) Handle(query ListMenuItemsQuery) ([]domain.MenuItem, error) {
	if query.Limit <= 0 {
		query.Limit = 10
	}
	if query.Limit > 100 {
		query.Limit = 100
	}
	if query.Offset < 0 {
		query.Offset = 0
	}

	items, err := h.repo.FindAll(query.Limit, query.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}

	return items, nil
}
