package command

import (
	"fmt"

	"github.com/platefork/kitchen/internal/menu/domain"
)

// CreateMenuItemCommand represents the command to create a menu item
type CreateMenuItemCommand struct {
	Name     string
	Price    float64
	Category string
}

// CreateMenuItemHandler handles create menu item command
type CreateMenuItemHandler struct {
	repo domain.MenuRepository
}

// NewCreateMenuItemHandler creates a new create menu item handler
func NewCreateMenuItemHandler(repo domain.MenuRepository) *CreateMenuItemHandler {
	return &CreateMenuItemHandler{repo: repo}
}

// Handle executes the create menu item command
func (h *CreateMenuItemHandler) Handle(cmd CreateMenuItemCommand) (*domain.MenuItem, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	if cmd.Price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}

	item := &domain.MenuItem{
		Name:      cmd.Name,
		Price:     cmd.Price,
		Category:  cmd.Category,
		Available: true,
	}

	if err := h.repo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}

	return item, nil
}
