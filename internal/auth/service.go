package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/vam-insurance/insurance-api/internal/user"
)

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserStore is the slice of the user repository the auth service needs.
type UserStore interface {
	Create(ctx context.Context, email, passwordHash string, fullName *string) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

// AuthResult carries a freshly issued token and the authenticated user.
type AuthResult struct {
	User        *user.User
	AccessToken string
}

// Service handles registration and login.
type Service struct {
	users  UserStore
	tokens *TokenService
}

func NewService(users UserStore, tokens *TokenService) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
	}
}

// Register creates a new user account and issues an access token. Duplicate
// emails surface as user.ErrDuplicateEmail straight from the insert; there is
// no separate existence check to race against.
func (s *Service) Register(ctx context.Context, email, password string, fullName *string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	passwordHash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := s.users.Create(ctx, email, passwordHash, fullName)
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			return nil, user.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.CreateToken(newUser.ID, newUser.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create token: %w", err)
	}

	return &AuthResult{User: newUser, AccessToken: token}, nil
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password return the same error so responses cannot be used to
// enumerate accounts.
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !VerifyPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.CreateToken(u.ID, u.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create token: %w", err)
	}

	return &AuthResult{User: u, AccessToken: token}, nil
}
