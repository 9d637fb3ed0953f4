package command

import (
	"fmt"

	"github.com/platefork/kitchen/internal/user/domain"
	"github.com/platefork/kitchen/pkg/auth"
)

// LoginUserCommand represents the command to log in
type LoginUserCommand struct {
	Username string
	Password string
}

// LoginResult carries the authenticated user and their token
type LoginResult struct {
	User  *domain.User
	Token string
}

// LoginUserHandler handles login command
type LoginUserHandler struct {
	repo domain.UserRepository
}

// NewLoginUserHandler creates a new login handler
func NewLoginUserHandler(repo domain.UserRepository) *LoginUserHandler {
	return &LoginUserHandler{repo: repo}
}

// Handle executes the login command
func (h *LoginUserHandler) Handle(cmd LoginUserCommand) (*LoginResult, error) {
	if cmd.Username == "" || cmd.Password == "" {
		return nil, fmt.Errorf("username and password are required")
	}

	user, err := h.repo.FindByUsername(cmd.Username)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	if !user.IsActive {
		return nil, fmt.Errorf("account is disabled")
	}

	if !auth.CheckPassword(cmd.Password, user.Password) {
		return nil, fmt.Errorf("invalid credentials")
	}

	token, err := auth.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResult{User: user, Token: token}, nil
}
