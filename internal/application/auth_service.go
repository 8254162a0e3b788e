package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/devaldi/portfolio-api/internal/domain/entity"
	"github.com/devaldi/portfolio-api/internal/domain/repository"
	"github.com/devaldi/portfolio-api/pkg/helpers"
)

// AuthService handles registration and login. Tokens are issued here and
// only here; verification lives in the middleware.
type AuthService struct {
	Users  repository.UserRepository
	Codec  *helpers.TokenCodec
	Logger *logrus.Logger
}

func NewAuthService(users repository.UserRepository, codec *helpers.TokenCodec, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Codec: codec, Logger: logger}
}

// AuthResult is what both register and login hand back to the client.
type AuthResult struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Token    string    `json:"token"`
	Expires  time.Time `json:"expiresAt"`
}

// Register creates an account and logs it straight in.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*AuthResult, error) {
	if _, err := s.Users.GetByEmail(ctx, email); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if _, err := s.Users.GetByUsername(ctx, username); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Username: username, Email: email, Password: hash}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "username": u.Username}).Info("user registered")
	return s.issue(u)
}

// Login authenticates by email and password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !helpers.CheckPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return s.issue(u)
}

func (s *AuthService) issue(u *entity.User) (*AuthResult, error) {
	token, exp, err := s.Codec.Issue(u.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("token issue failed")
		return nil, err
	}
	return &AuthResult{ID: u.ID, Username: u.Username, Email: u.Email, Token: token, Expires: exp}, nil
}
