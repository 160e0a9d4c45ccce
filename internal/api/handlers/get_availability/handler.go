package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/BarberBookingService/internal/api/handlers"
	getAvailability "github.com/m04kA/BarberBookingService/internal/usecase/get_availability"
)

const (
	msgMissingParams    = "требуются query-параметры serviceId и date"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgServiceNotFound  = "услуга не найдена"
	msgServiceMisconfig = "услуга настроена некорректно"
)

type Handler struct {
	useCase AvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase AvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?serviceId={id}&date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &getAvailability.Request{
		ServiceID: query.Get("serviceId"),
		Date:      query.Get("date"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Missing params: %v", err)
			handlers.RespondBadRequest(w, msgMissingParams)

		case errors.Is(err, getAvailability.ErrInvalidDate):
			h.logger.Warn("GET /availability - Invalid date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailability.ErrServiceNotFound):
			h.logger.Warn("GET /availability - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailability.ErrInvalidServiceConfig):
			h.logger.Error("GET /availability - Misconfigured service: service_id=%s", req.ServiceID)
			handlers.RespondError(w, http.StatusInternalServerError, msgServiceMisconfig)

		default:
			h.logger.Error("GET /availability - Failed to get availability: service_id=%s, date=%s, error=%v",
				req.ServiceID, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Returned %d slots: service_id=%s, date=%s",
		len(result.Slots), req.ServiceID, req.Date)
	handlers.RespondJSON(w, http.StatusOK, result)
}
