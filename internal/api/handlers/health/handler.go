package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-FrontDeskService/internal/api/handlers"
)

const pingTimeout = 2 * time.Second

// Response состояние сервиса
type Response struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type Handler struct {
	checks map[string]PingFunc
	logger Logger
}

func NewHandler(checks map[string]PingFunc, logger Logger) *Handler {
	return &Handler{
		checks: checks,
		logger: logger,
	}
}

// Handle GET /api/v1/health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	resp := Response{Status: "ok", Checks: make(map[string]string, len(h.checks))}
	status := http.StatusOK

	for name, ping := range h.checks {
		if err := ping(ctx); err != nil {
			h.logger.Error("GET /health - %s check failed: %v", name, err)
			resp.Checks[name] = "down"
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "up"
	}

	handlers.RespondJSON(w, status, resp)
}
