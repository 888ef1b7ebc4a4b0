package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// localService is the demo-mode auth service. It performs no real credential
// checks: any password signs in, and the literal "admin123" grants the admin
// role. Sessions live in memory only. Not for production use.
type localService struct {
	mu       sync.Mutex
	sessions map[string]*User
}

// NewLocalService creates the demo-mode auth service.
func NewLocalService() Service {
	return &localService{sessions: map[string]*User{}}
}

func (s *localService) SignUp(ctx context.Context, email, password, name string) (*Credentials, error) {
	return s.SignIn(ctx, email, password)
}

func (s *localService) SignIn(ctx context.Context, email, password string) (*Credentials, error) {
	u := &User{ID: uuid.New(), Email: email}
	if password == "admin123" {
		u.Role = RoleAdmin
	}

	token := uuid.New().String()
	s.mu.Lock()
	s.sessions[token] = u
	s.mu.Unlock()

	return &Credentials{Token: token, User: u}, nil
}

func (s *localService) SignOut(ctx context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}

func (s *localService) CurrentUser(ctx context.Context, token string) (*User, error) {
	s.mu.Lock()
	u, ok := s.sessions[token]
	s.mu.Unlock()
	if !ok {
		return nil, ErrNoSession
	}
	return u, nil
}
