package account_test

import (
	"testing"

	"orderboard/internal/core/domain/model/account"
	"orderboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		u, err := account.NewUser(1, "ops", "secret")
		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Equal(t, int64(1), u.ID())
		assert.Equal(t, "ops", u.Username())
		assert.Equal(t, "secret", u.Password())
	})

	t.Run("zero id is allowed for unsaved users", func(t *testing.T) {
		u, err := account.NewUser(0, "ops", "secret")
		require.NoError(t, err)
		assert.Zero(t, u.ID())
	})

	t.Run("negative id is invalid", func(t *testing.T) {
		_, err := account.NewUser(-1, "ops", "secret")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("username is required", func(t *testing.T) {
		_, err := account.NewUser(1, "", "secret")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("password is required", func(t *testing.T) {
		_, err := account.NewUser(1, "ops", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var u account.User
		require.ErrorIs(t, u.Validate(), account.ErrUserIsNotConstructed)
	})
}
