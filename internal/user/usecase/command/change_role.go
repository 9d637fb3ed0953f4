package command

import (
	"fmt"

	"github.com/platefork/kitchen/internal/user/domain"
)

// ChangeRoleCommand represents the command to change a user's role
type ChangeRoleCommand struct {
	UserID uint
	Role   string
}

// ChangeRoleHandler handles change role command
type ChangeRoleHandler struct {
	repo domain.UserRepository
}

// NewChangeRoleHandler creates a new change role handler
func NewChangeRoleHandler(repo domain.UserRepository) *ChangeRoleHandler {
	return &ChangeRoleHandler{repo: repo}
}

// Handle executes the change role command
func (h *ChangeRoleHandler) Handle(cmd ChangeRoleCommand) error {
	if cmd.UserID == 0 {
		return fmt.Errorf("user_id is required")
	}
	if !domain.ValidRole(cmd.Role) {
		return fmt.Errorf("invalid role: %s", cmd.Role)
	}

	user, err := h.repo.FindByID(cmd.UserID)
	if err != nil {
		return fmt.Errorf("user not found")
	}

	user.Role = cmd.Role
	if err := h.repo.Update(user); err != nil {
		return fmt.Errorf("failed to change role: %w", err)
	}

	return nil
}
