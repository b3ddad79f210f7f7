package get_dashboard_stats

import (
	"net/http"

	"github.com/m04kA/SMC-FrontDeskService/internal/api/handlers"
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

// Handle GET /api/v1/dashboard/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.logger.Error("GET /dashboard/stats - Failed to compute stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /dashboard/stats - Stats computed: date=%s, current_guests=%d", stats.Date, stats.CurrentGuests)
	handlers.RespondJSON(w, http.StatusOK, stats)
}
