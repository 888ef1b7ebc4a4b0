package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSignInAcceptsAnyPassword(t *testing.T) {
	s := NewLocalService()
	ctx := context.Background()

	creds, err := s.SignIn(ctx, "ana@example.cl", "whatever")
	require.NoError(t, err)
	assert.NotEmpty(t, creds.Token)
	assert.Equal(t, "ana@example.cl", creds.User.Email)
	assert.Empty(t, creds.User.Role)
}

func TestLocalAdminPasswordGrantsAdminRole(t *testing.T) {
	s := NewLocalService()

	creds, err := s.SignIn(context.Background(), "admin@cabracurado.cl", "admin123")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, creds.User.Role)
}

func TestLocalCurrentUserResolvesSession(t *testing.T) {
	s := NewLocalService()
	ctx := context.Background()

	creds, err := s.SignIn(ctx, "ana@example.cl", "pw")
	require.NoError(t, err)

	u, err := s.CurrentUser(ctx, creds.Token)
	require.NoError(t, err)
	assert.Equal(t, creds.User.ID, u.ID)
}

func TestLocalSignOutInvalidatesToken(t *testing.T) {
	s := NewLocalService()
	ctx := context.Background()

	creds, err := s.SignIn(ctx, "ana@example.cl", "pw")
	require.NoError(t, err)

	require.NoError(t, s.SignOut(ctx, creds.Token))
	_, err = s.CurrentUser(ctx, creds.Token)
	assert.ErrorIs(t, err, ErrNoSession)

	// Signing out an unknown token is not an error.
	require.NoError(t, s.SignOut(ctx, "bogus"))
}

func TestLocalSignUpDelegatesToSignIn(t *testing.T) {
	s := NewLocalService()

	creds, err := s.SignUp(context.Background(), "ana@example.cl", "pw", "Ana")
	require.NoError(t, err)
	assert.NotEmpty(t, creds.Token)
}
