package usecase

import (
	"errors"
	"strings"

	"portfolio-api/internal/config"
	"portfolio-api/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthUsecase interface {
	Login(username, password string) (string, error)
}

// Auth checks the single admin account configured through the
// environment. There is no user table: the portfolio has one owner.
type Auth struct {
	cfg config.AdminConfig
	jwt jwt.Service
}

func NewAuthUsecase(cfg config.AdminConfig, jwtSvc jwt.Service) *Auth {
	return &Auth{cfg: cfg, jwt: jwtSvc}
}

func (u *Auth) Login(username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}
	if u.cfg.Username == "" || u.cfg.PasswordHash == "" {
		return "", ErrInvalidCredentials
	}
	if username != u.cfg.Username {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.cfg.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := u.jwt.GenerateToken(username)
	if err != nil {
		return "", ErrInternal
	}
	return token, nil
}

var _ AuthUsecase = (*Auth)(nil)
