package get_dashboard_charts

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

// Handle GET /api/v1/dashboard/charts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	charts, err := h.service.Charts(r.Context())
	if err != nil {
		h.logger.Error("GET /dashboard/charts - Failed to build charts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /dashboard/charts - Charts built: month=%s", charts.Month)
	handlers.RespondJSON(w, http.StatusOK, charts)
}
