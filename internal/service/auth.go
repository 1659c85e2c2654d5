package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var ErrWrongPassword = errors.New("wrong password")

// AuthService checks the single shared admin password. The plaintext
// from config is hashed once at startup and dropped.
type AuthService struct {
	passwordHash []byte
}

func NewAuthService(adminPassword string) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}

	return &AuthService{
		passwordHash: hash,
	}, nil
}

func (s *AuthService) SignIn(password string) error {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return ErrWrongPassword
	}

	return nil
}
