package command

import (
	"fmt"

	"github.com/platefork/kitchen/internal/user/domain"
)

// ToggleActiveCommand represents the command to enable or disable a user
type ToggleActiveCommand struct {
	UserID uint
}

// ToggleActiveHandler handles toggle active command
type ToggleActiveHandler struct {
	repo domain.UserRepository
}

// NewToggleActiveHandler creates a new toggle active handler
func NewToggleActiveHandler(repo domain.UserRepository) *ToggleActiveHandler {
	return &ToggleActiveHandler{repo: repo}
}

// Handle executes the toggle active command, returning the new state
func (h *ToggleActiveHandler) Handle(cmd ToggleActiveCommand) (bool, error) {
	if cmd.UserID == 0 {
		return false, fmt.Errorf("user_id is required")
	}

	user, err := h.repo.FindByID(cmd.UserID)
	if err != nil {
		return false, fmt.Errorf("user not found")
	}

	user.IsActive = !user.IsActive
	if err := h.repo.Update(user); err != nil {
		return false, fmt.Errorf("failed to toggle active state: %w", err)
	}

	return user.IsActive, nil
}
