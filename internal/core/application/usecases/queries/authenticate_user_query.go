package queries

import (
	"errors"

	"orderboard/internal/pkg/errs"
	"orderboard/internal/pkg/guard"
)

var (
	ErrAuthenticateUserQueryIsNotConstructed = errors.New(
		"AuthenticateUserQuery must be created via NewAuthenticateUserQuery constructor",
	)
)

// AuthenticateUserQuery checks submitted login credentials against the users
// table. Credentials are compared exactly as stored; the handler reports a
// not-found error for a wrong password as well as for an unknown username, so
// callers cannot distinguish the two.
type AuthenticateUserQuery struct {
	username string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateUserQuery creates an authentication query.
// Both username and password are required.
func NewAuthenticateUserQuery(username, password string) (AuthenticateUserQuery, error) {
	if username == "" {
		return AuthenticateUserQuery{}, errs.NewValueIsRequiredError("username")
	}
	if password == "" {
		return AuthenticateUserQuery{}, errs.NewValueIsRequiredError("password")
	}

	return AuthenticateUserQuery{
		username: username,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrAuthenticateUserQueryIsNotConstructed if validation fails.
func (q AuthenticateUserQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateUserQueryIsNotConstructed)
}

// Username returns the submitted login name.
func (q AuthenticateUserQuery) Username() string {
	return q.username
}

// Password returns the submitted credential.
func (q AuthenticateUserQuery) Password() string {
	return q.password
}

// AuthenticateUserQueryResponse identifies the authenticated operator.
type AuthenticateUserQueryResponse struct {
	ID       int64
	Username string
}
