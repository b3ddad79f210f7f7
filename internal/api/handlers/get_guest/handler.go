package get_guest

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FrontDeskService/internal/api/handlers"
	"github.com/m04kA/SMC-FrontDeskService/internal/service/guests"
)

const (
	msgNotFound = "hóspede não encontrado"
)

type Handler struct {
	service GuestService
	logger  Logger
}

func NewHandler(service GuestService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/guests/{guestId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	guestID := mux.Vars(r)["guestId"]

	guest, err := h.service.GetByID(r.Context(), guestID)
	if err != nil {
		switch {
		case errors.Is(err, guests.ErrGuestNotFound):
			h.logger.Warn("GET /guests/{id} - Guest not found: guest_id=%s", guestID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /guests/{id} - Failed to get guest: guest_id=%s, error=%v", guestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /guests/{id} - Guest retrieved successfully: guest_id=%s", guestID)
	handlers.RespondJSON(w, http.StatusOK, guest)
}
