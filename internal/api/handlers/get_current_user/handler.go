package get_current_user

import (
	"net/http"

	"github.com/m04kA/SMC-FrontDeskService/internal/api/handlers"
	"github.com/m04kA/SMC-FrontDeskService/internal/api/middleware"
	"github.com/m04kA/SMC-FrontDeskService/internal/service/auth/models"
)

const (
	msgMissingSession = "sessão não informada"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/auth/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Warn("GET /auth/me - Missing session")
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, models.UserResponse{
		ID:    session.UserID,
		Email: session.Email,
	})
}
