package sign_out

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FrontDeskService/internal/api/handlers"
	"github.com/m04kA/SMC-FrontDeskService/internal/api/middleware"
	"github.com/m04kA/SMC-FrontDeskService/internal/service/auth"
)

const (
	msgMissingToken = "sessão não informada"
	msgInvalidToken = "sessão inválida ou expirada"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/sign-out
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetToken(r.Context())
	if !ok {
		h.logger.Warn("POST /auth/sign-out - Missing session token")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	if err := h.service.SignOut(r.Context(), token); err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidToken):
			handlers.RespondUnauthorized(w, msgInvalidToken)

		default:
			h.logger.Error("POST /auth/sign-out - Failed to sign out: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	userID, _ := middleware.GetUserID(r.Context())
	h.logger.Info("POST /auth/sign-out - User signed out: user_id=%s", userID)
	handlers.RespondNoContent(w)
}
