package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const strongPassword = "correct-Horse-battery-staple-42"

func TestNewUser(t *testing.T) {
	t.Run("Valid user", func(t *testing.T) {
		id := uuid.New()
		user, err := NewUser(UserConfig{ID: id, Username: "maze_runner", PlainPassword: strongPassword})
		require.NoError(t, err)

		assert.Equal(t, id, user.ID)
		assert.Equal(t, "maze_runner", user.Username)
		assert.NotEqual(t, strongPassword, user.PasswordHash)
		assert.False(t, user.CreatedAt.IsZero())
		assert.True(t, user.VerifyPassword(strongPassword))
		assert.False(t, user.VerifyPassword("wrong"))
	})

	t.Run("Invalid usernames", func(t *testing.T) {
		long := strings.Repeat("a", 21)
		cases := map[string]error{
			"ab":        ErrUsernameTooShort,
			long:        ErrUsernameTooLong,
			"bad name":  ErrUsernameFormat,
			"dash-name": ErrUsernameFormat,
		}
		for name, want := range cases {
			_, err := NewUser(UserConfig{ID: uuid.New(), Username: name, PlainPassword: strongPassword})
			assert.ErrorIs(t, err, want, name)
		}
	})

	t.Run("Weak password", func(t *testing.T) {
		_, err := NewUser(UserConfig{ID: uuid.New(), Username: "maze_runner", PlainPassword: "password"})
		assert.ErrorIs(t, err, ErrWeakPassword)
	})
}
