package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/fstr-tourism/pereval-api/internal/config"
	"github.com/fstr-tourism/pereval-api/internal/domain"
)

var (
	ErrWrongCredentials = errors.New("wrong username or password")
)

type AuthService struct {
	conf *config.ModerationConfig
}

func NewAuthService(conf *config.ModerationConfig) *AuthService {
	return &AuthService{
		conf: conf,
	}
}

// Login checks moderator credentials against the configured bcrypt hash.
func (s *AuthService) Login(_ context.Context, username, password string) (domain.Moderator, error) {
	if s.conf.Username == "" || s.conf.PasswordHash == "" || username != s.conf.Username {
		return domain.Moderator{}, ErrWrongCredentials
	}

	err := bcrypt.CompareHashAndPassword([]byte(s.conf.PasswordHash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return domain.Moderator{}, ErrWrongCredentials
		}
		return domain.Moderator{}, err
	}

	return domain.Moderator{Username: username}, nil
}
