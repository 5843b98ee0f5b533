package queries

import (
	"context"
	"errors"

	"orderboard/internal/pkg/errs"

	"gorm.io/gorm"
)

// AuthenticateUserQueryHandler verifies login credentials against the users
// table. Reads bypass the repository and query the table directly.
type AuthenticateUserQueryHandler struct {
	db *gorm.DB
}

// NewAuthenticateUserQueryHandler creates a handler for authentication queries.
// Requires a GORM database connection for query execution.
func NewAuthenticateUserQueryHandler(db *gorm.DB) AuthenticateUserQueryHandler {
	return AuthenticateUserQueryHandler{db: db}
}

// Handle executes the credential check.
// Returns errs.ObjectNotFoundError for an unknown username and for a wrong
// password alike.
func (h AuthenticateUserQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateUserQuery,
) (AuthenticateUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	var row struct {
		ID       int64
		Username string
		Password string
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			username,
			password
		FROM users
		WHERE username = ?
	`, query.Username()).Scan(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthenticateUserQueryResponse{}, errs.NewObjectNotFoundError("username", query.Username())
		}
		return AuthenticateUserQueryResponse{}, err
	}

	// Raw().Scan leaves the struct zeroed when no row matched.
	if row.ID == 0 || row.Password != query.Password() {
		return AuthenticateUserQueryResponse{}, errs.NewObjectNotFoundError("username", query.Username())
	}

	return AuthenticateUserQueryResponse{ID: row.ID, Username: row.Username}, nil
}
