package commands

import (
	"context"

	"orderboard/internal/core/domain/model/account"
	"orderboard/internal/core/ports"
)

// RegisterUserCommandHandler handles operator account registration.
// The single-row insert needs no transaction boundary beyond the repository's.
//
// Example:
//
//	handler := NewRegisterUserCommandHandler(userRepo)
//	cmd, _ := NewRegisterUserCommand("dispatcher", "s3cret")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("registration failed: %w", err)
//	}
type RegisterUserCommandHandler struct {
	users ports.UserRepository
}

// NewRegisterUserCommandHandler creates a handler for account registration.
// Requires a UserRepository for persistence.
func NewRegisterUserCommandHandler(users ports.UserRepository) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		users: users,
	}
}

// Handle processes the registration command.
// A duplicate username surfaces as the repository's uniqueness violation.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	user, err := account.NewUser(0, cmd.Username(), cmd.Password())
	if err != nil {
		return err
	}

	if _, err = h.users.Add(ctx, user); err != nil {
		return err
	}

	return nil
}
