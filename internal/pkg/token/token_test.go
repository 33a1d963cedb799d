package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pingr-im/pingr-go/internal/model"
)

func TestManager_GenerateValidate(t *testing.T) {
	t.Parallel()

	manager := New("test-secret")
	user := model.User{ID: "user-1", Name: "Alice", Email: "alice@example.com"}

	tokenString, expiresAt, err := manager.Generate(user)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := manager.Validate(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestManager_ValidateWrongSecret(t *testing.T) {
	t.Parallel()

	tokenString, _, err := New("secret-a").Generate(model.User{ID: "user-1"})
	require.NoError(t, err)

	_, err = New("secret-b").Validate(tokenString)
	assert.Error(t, err)
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	t.Run("extracts_user_without_secret", func(t *testing.T) {
		user := model.User{ID: "user-7", Name: "Bob", Email: "bob@example.com"}
		tokenString, _, err := New("opaque-to-the-client").Generate(user)
		require.NoError(t, err)

		got, err := Identity(tokenString)
		require.NoError(t, err)
		assert.Equal(t, user, *got)
	})

	t.Run("garbage_token", func(t *testing.T) {
		_, err := Identity("not-a-token")
		assert.Error(t, err)
	})
}
