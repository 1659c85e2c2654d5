package service

import (
	"errors"

	"github.com/baolive/camping-api/internal/repository"
)

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrFamilyNotFound) ||
		errors.Is(err, repository.ErrActivityNotFound) ||
		errors.Is(err, repository.ErrPaymentNotFound) ||
		errors.Is(err, repository.ErrSignupNotFound)
}
