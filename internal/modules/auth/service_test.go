package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	users    map[string]*User
	roles    map[string]string
	sessions map[string]bool
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		users:    map[string]*User{},
		roles:    map[string]string{},
		sessions: map[string]bool{},
	}
}

func (r *memoryRepo) CreateUser(ctx context.Context, u *User) error {
	if _, ok := r.users[u.Email]; ok {
		return ErrEmailTaken
	}
	r.users[u.Email] = u
	return nil
}

func (r *memoryRepo) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (r *memoryRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *memoryRepo) GetRole(ctx context.Context, email string) (string, error) {
	return r.roles[email], nil
}

func (r *memoryRepo) CreateSession(ctx context.Context, s *Session) error {
	r.sessions[s.Token] = true
	return nil
}

func (r *memoryRepo) DeleteSession(ctx context.Context, token string) error {
	delete(r.sessions, token)
	return nil
}

func (r *memoryRepo) SessionExists(ctx context.Context, token string) (bool, error) {
	return r.sessions[token], nil
}

func TestSignUpThenSignIn(t *testing.T) {
	repo := newMemoryRepo()
	s := NewService(repo, "test-secret")
	ctx := context.Background()

	creds, err := s.SignUp(ctx, "ana@example.cl", "secreto", "Ana")
	require.NoError(t, err)
	assert.NotEmpty(t, creds.Token)

	// Passwords are never stored in the clear.
	stored := repo.users["ana@example.cl"]
	assert.NotEqual(t, "secreto", stored.PasswordHash)

	creds, err = s.SignIn(ctx, "ana@example.cl", "secreto")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.cl", creds.User.Email)
}

func TestSignInWrongPassword(t *testing.T) {
	s := NewService(newMemoryRepo(), "test-secret")
	ctx := context.Background()

	_, err := s.SignUp(ctx, "ana@example.cl", "secreto", "Ana")
	require.NoError(t, err)

	_, err = s.SignIn(ctx, "ana@example.cl", "incorrecto")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.SignIn(ctx, "nadie@example.cl", "secreto")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	s := NewService(newMemoryRepo(), "test-secret")
	ctx := context.Background()

	_, err := s.SignUp(ctx, "ana@example.cl", "secreto", "Ana")
	require.NoError(t, err)

	_, err = s.SignUp(ctx, "ana@example.cl", "otro", "Ana")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestCurrentUserCarriesRole(t *testing.T) {
	repo := newMemoryRepo()
	repo.roles["admin@cabracurado.cl"] = RoleAdmin
	s := NewService(repo, "test-secret")
	ctx := context.Background()

	creds, err := s.SignUp(ctx, "admin@cabracurado.cl", "secreto", "Admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, creds.User.Role)

	u, err := s.CurrentUser(ctx, creds.Token)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, u.Role)
}

func TestSignOutRevokesToken(t *testing.T) {
	s := NewService(newMemoryRepo(), "test-secret")
	ctx := context.Background()

	creds, err := s.SignUp(ctx, "ana@example.cl", "secreto", "Ana")
	require.NoError(t, err)

	_, err = s.CurrentUser(ctx, creds.Token)
	require.NoError(t, err)

	require.NoError(t, s.SignOut(ctx, creds.Token))

	// The token still verifies cryptographically but its session is gone.
	_, err = s.CurrentUser(ctx, creds.Token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestCurrentUserRejectsForgedToken(t *testing.T) {
	repo := newMemoryRepo()
	s := NewService(repo, "test-secret")
	ctx := context.Background()

	creds, err := s.SignUp(ctx, "ana@example.cl", "secreto", "Ana")
	require.NoError(t, err)

	// A token signed with a different key is rejected outright.
	other := NewService(repo, "other-secret")
	_, err = other.CurrentUser(ctx, creds.Token)
	assert.ErrorIs(t, err, ErrNoSession)
}
