package service

import (
	"context"
	"errors"

	"siteapi/internal/auth"
	"siteapi/internal/model"
	"siteapi/internal/repository"
)

// ErrInvalidCredentials covers both an unknown username and a wrong password,
// so responses do not reveal which part failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles admin login.
type AuthService interface {
	// Login verifies the credentials and returns a signed bearer token along
	// with the authenticated user.
	Login(ctx context.Context, username, password string) (string, *model.User, error)
}

type authService struct {
	users  repository.UserRepository
	tokens *auth.TokenService
}

func NewAuthService(users repository.UserRepository, tokens *auth.TokenService) AuthService {
	return &authService{users: users, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	if username == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		// An unknown user and a storage failure both end the login, but only
		// the latter should surface as a 500; the repository returns
		// sql.ErrNoRows for the former.
		if isNoRows(err) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !auth.CheckPassword(u.PasswordHash, password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Sign(u)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}
