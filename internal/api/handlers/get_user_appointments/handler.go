package get_user_appointments

import (
	"net/http"

	"github.com/m04kA/BarberBookingService/internal/api/handlers"
	"github.com/m04kA/BarberBookingService/internal/api/middleware"
)

const msgUnauthorized = "требуется токен авторизации"

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/me/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.ListByCustomer(r.Context(), claims.UserID)
	if err != nil {
		h.logger.Error("GET /users/me/appointments - Failed to list appointments: user_id=%d, error=%v",
			claims.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/me/appointments - Returned %d appointments: user_id=%d",
		len(result.Appointments), claims.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
