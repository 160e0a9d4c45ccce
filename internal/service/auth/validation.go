package auth

import (
	"fmt"
	"strings"

	"github.com/m04kA/BarberBookingService/internal/domain"
	"github.com/m04kA/BarberBookingService/internal/service/auth/models"
)

// validateSignup проверяет входные данные регистрации
func validateSignup(req *models.SignupRequest) error {
	name := strings.TrimSpace(req.Name)
	if len(name) < domain.MinNameLength {
		return fmt.Errorf("%w: name must be at least %d characters", ErrInvalidInput, domain.MinNameLength)
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	if len(req.Password) < domain.MinPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLen)
	}

	return nil
}
