package sign_up

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FrontDeskService/internal/api/handlers"
	"github.com/m04kA/SMC-FrontDeskService/internal/service/auth"
	"github.com/m04kA/SMC-FrontDeskService/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgMissingCredentials = "informe e-mail e senha"
	msgInvalidEmail       = "e-mail inválido"
	msgWeakPassword       = "a senha deve ter pelo menos 6 caracteres"
	msgEmailTaken         = "este e-mail já está cadastrado"
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

// Handle POST /api/v1/auth/sign-up
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/sign-up - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.SignUp(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingCredentials)

		case errors.Is(err, auth.ErrInvalidEmail):
			handlers.RespondBadRequest(w, msgInvalidEmail)

		case errors.Is(err, auth.ErrWeakPassword):
			handlers.RespondBadRequest(w, msgWeakPassword)

		case errors.Is(err, auth.ErrEmailTaken):
			h.logger.Warn("POST /auth/sign-up - Email already registered")
			handlers.RespondConflict(w, msgEmailTaken)

		default:
			h.logger.Error("POST /auth/sign-up - Failed to sign up: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/sign-up - User registered: user_id=%s", session.User.ID)
	handlers.RespondJSON(w, http.StatusCreated, session)
}
