// Package account holds the user model the dashboard authenticates against.
package account

import (
	"errors"

	"orderboard/internal/pkg/errs"
	"orderboard/internal/pkg/guard"
)

var (
	// ErrUserIsNotConstructed is returned when a User was not created via the
	// NewUser constructor.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
)

// User is an operator account stored in the users table. Credentials are kept
// exactly as the login form submits them, matching the upstream user table
// this service shares with the storefront back office.
type User struct {
	id       int64
	username string
	password string

	guard guard.ConstructorGuard
}

// NewUser creates a User with validation. ID may be zero for a user that has
// not been persisted yet (the database assigns it on insert).
func NewUser(id int64, username, password string) (User, error) {
	u := User{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setPassword(password),
	); err != nil {
		return User{}, err
	}

	return u, nil
}

// Validate ensures the User was created through NewUser.
func (u User) Validate() error {
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the database identifier, zero before the first insert.
func (u User) ID() int64 {
	return u.id
}

// Username returns the login name.
func (u User) Username() string {
	return u.username
}

// Password returns the stored credential. Only the persistence layer reads it.
func (u User) Password() string {
	return u.password
}

func (u *User) setID(id int64) error {
	if id < 0 {
		return errs.NewValueIsInvalidError("userID")
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.username = username
	return nil
}

func (u *User) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	u.password = password
	return nil
}
