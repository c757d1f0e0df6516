//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"car-rental-api/internal/domain/user"
	"car-rental-api/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	t.Run("issued token round-trips user id and role", func(t *testing.T) {
		svc := jwt.NewService("secret", time.Hour)
		userID := uuid.New()

		token, err := svc.GenerateAccessToken(userID, user.RoleOperator)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "operator", claims.Role)
	})

	t.Run("token signed with another key is rejected", func(t *testing.T) {
		token, err := jwt.NewService("secret-a", time.Hour).GenerateAccessToken(uuid.New(), user.RoleViewer)
		require.NoError(t, err)

		_, err = jwt.NewService("secret-b", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired token is reported as expired", func(t *testing.T) {
		svc := jwt.NewService("secret", -time.Minute)
		token, err := svc.GenerateAccessToken(uuid.New(), user.RoleViewer)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := jwt.NewService("secret", time.Hour).ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
