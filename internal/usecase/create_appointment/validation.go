package create_appointment

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/m04kA/BarberBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ServiceID) == "" {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if len(strings.TrimSpace(req.Name)) < domain.MinNameLength {
		return fmt.Errorf("%w: name must be at least %d characters", ErrInvalidInput, domain.MinNameLength)
	}

	if req.Email != nil && !strings.Contains(*req.Email, "@") {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if len(req.Intake) > 0 && !json.Valid(req.Intake) {
		return fmt.Errorf("%w: intake must be valid JSON", ErrInvalidInput)
	}

	return nil
}
