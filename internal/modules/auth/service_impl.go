package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type service struct {
	repo   Repository
	jwtKey []byte
}

// NewService creates the production auth service: bcrypt-hashed passwords,
// HS256 tokens, sessions persisted so sign-out revokes them.
func NewService(repo Repository, secret string) Service {
	return &service{repo: repo, jwtKey: []byte(secret)}
}

func (s *service) SignUp(ctx context.Context, email, password, name string) (*Credentials, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hashed),
		Name:         name,
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	return s.issue(ctx, u)
}

func (s *service) SignIn(ctx context.Context, email, password string) (*Credentials, error) {
	u, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issue(ctx, u)
}

func (s *service) SignOut(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return nil
	}
	return s.repo.DeleteSession(ctx, claims.Id)
}

func (s *service) CurrentUser(ctx context.Context, token string) (*User, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, ErrNoSession
	}

	active, err := s.repo.SessionExists(ctx, claims.Id)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, ErrNoSession
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrNoSession
	}
	u, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrNoSession
		}
		return nil, err
	}

	role, err := s.repo.GetRole(ctx, u.Email)
	if err != nil {
		return nil, err
	}
	u.Role = role
	return u, nil
}

// issue signs a token for the user and records its session.
func (s *service) issue(ctx context.Context, u *User) (*Credentials, error) {
	jti := uuid.New().String()
	claims := &jwt.StandardClaims{
		Subject:   u.ID.String(),
		Id:        jti,
		ExpiresAt: time.Now().Add(tokenTTL).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtKey)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	if err := s.repo.CreateSession(ctx, &Session{Token: jti, UserID: u.ID}); err != nil {
		return nil, err
	}

	role, err := s.repo.GetRole(ctx, u.Email)
	if err != nil {
		return nil, err
	}
	u.Role = role

	return &Credentials{Token: token, User: u}, nil
}

func (s *service) parse(token string) (*jwt.StandardClaims, error) {
	claims := &jwt.StandardClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtKey, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrNoSession
	}
	return claims, nil
}
