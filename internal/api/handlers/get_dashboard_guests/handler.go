package get_dashboard_guests

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FrontDeskService/internal/api/handlers"
	"github.com/m04kA/SMC-FrontDeskService/internal/service/dashboard"
)

const (
	msgUnknownMetric = "indicador desconhecido"
)

type Handler struct {
	service DashboardService
	logger  Logger
}

func NewHandler(service DashboardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/dashboard/guests
// Query params: metric (currentGuests, todayCheckIns, todayCheckOuts, upcomingCheckIns)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	metric := r.URL.Query().Get("metric")

	result, err := h.service.GuestsByMetric(r.Context(), metric)
	if err != nil {
		switch {
		case errors.Is(err, dashboard.ErrUnknownMetric):
			h.logger.Warn("GET /dashboard/guests - Unknown metric: %q", metric)
			handlers.RespondBadRequest(w, msgUnknownMetric)

		default:
			h.logger.Error("GET /dashboard/guests - Failed to list guests: metric=%s, error=%v", metric, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /dashboard/guests - metric=%s, count=%d", metric, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
