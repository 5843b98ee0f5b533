// Package commands contains the write side of the application layer: command
// objects validated at construction time and handlers that mutate state
// through the outbound ports.
package commands

import (
	"errors"

	"orderboard/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrUsernameIsRequired = errors.New("username is required")
	ErrPasswordIsRequired = errors.New("password is required")
)

// RegisterUserCommand represents a request to create a new operator account.
// Accounts are provisioned from the command line, not through the HTTP
// surface.
//
// Example:
//
//	cmd, err := NewRegisterUserCommand("dispatcher", "s3cret")
//	if err != nil {
//	    return fmt.Errorf("invalid account data: %w", err)
//	}
//
//	handler := NewRegisterUserCommandHandler(userRepo)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register user: %w", err)
//	}
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	username string
	password string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register an operator account.
// Validates that both username and password are present.
func NewRegisterUserCommand(username, password string) (RegisterUserCommand, error) {
	userCommand := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		userCommand.setUsername(username),
		userCommand.setPassword(password),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return userCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterUserCommandIsNotConstructed if validation fails.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Username returns the login name for the new account.
func (c RegisterUserCommand) Username() string {
	return c.username
}

// Password returns the credential for the new account.
func (c RegisterUserCommand) Password() string {
	return c.password
}

func (c *RegisterUserCommand) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}

	c.username = username
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}
