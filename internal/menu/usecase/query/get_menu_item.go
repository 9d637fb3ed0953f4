package query

import (
	"fmt"

	"github.com/platefork/kitchen/internal/menu/domain"
)

// GetMenuItemQuery represents the query to get a menu item
type GetMenuItemQuery struct {
	ID uint
}

// GetMenuItemHandler handles get menu item query
type GetMenuItemHandler struct {
	repo domain.MenuRepository
}

// NewGetMenuItemHandler creates a new get menu item handler
func NewGetMenuItemHandler(repo domain.MenuRepository) *GetMenuItemHandler {
	return &GetMenuItemHandler{repo: repo}
}

// Handle executes the get menu item query
func (h *GetMenuItemHandler) Handle(query GetMenuItemQuery) (*domain.MenuItem, error) {
	if query.ID == 0 {
		return nil, fmt.Errorf("id is required")
	}

	item, err := h.repo.FindByID(query.ID)
	if err != nil {
		return nil, fmt.Errorf("menu item not found: %w", err)
	}

	return item, nil
}
