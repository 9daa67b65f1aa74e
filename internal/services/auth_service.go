// internal/services/auth_service.go
package services

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/raphaelcleo/storefront/internal/config"
	"github.com/raphaelcleo/storefront/internal/utils"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService gates the admin surface. Credentials come from configuration;
// the password is bcrypt-hashed at startup so the plaintext never sticks
// around past Load.
type AuthService struct {
	cfg          *config.Config
	username     string
	passwordHash []byte
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func NewAuthService(cfg *config.Config) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	return &AuthService{
		cfg:          cfg,
		username:     cfg.Auth.AdminUsername,
		passwordHash: hash,
	}, nil
}

// Login verifies the configured admin credentials and issues an admin JWT.
func (s *AuthService) Login(req *LoginRequest) (string, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return "", fmt.Errorf("validation failed: %w", err)
	}

	usernameMatch := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.username)) == 1
	passwordErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password))

	if !usernameMatch || passwordErr != nil {
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(s.username, "admin", s.cfg.Auth.TokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return token, nil
}
