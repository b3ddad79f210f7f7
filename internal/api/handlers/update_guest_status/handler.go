package update_guest_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FrontDeskService/internal/api/handlers"
	"github.com/m04kA/SMC-FrontDeskService/internal/service/guests"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidStatus      = "status inválido, use active ou completed"
	msgNotFound           = "hóspede não encontrado"
	msgDocumentTaken      = "já existe um hóspede ativo com este CPF"
	msgUnitNotAvailable   = "unidade ocupada no período desta hospedagem"
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

// Handle PATCH /api/v1/guests/{guestId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	guestID := mux.Vars(r)["guestId"]

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /guests/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	guest, err := h.service.UpdateStatus(r.Context(), guestID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, guests.ErrInvalidStatus):
			h.logger.Warn("PATCH /guests/{id}/status - Invalid status: %q", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, guests.ErrGuestNotFound):
			h.logger.Warn("PATCH /guests/{id}/status - Guest not found: guest_id=%s", guestID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, guests.ErrDocumentTaken):
			h.logger.Warn("PATCH /guests/{id}/status - Document taken: guest_id=%s", guestID)
			handlers.RespondConflict(w, msgDocumentTaken)

		case errors.Is(err, guests.ErrUnitNotAvailable):
			h.logger.Warn("PATCH /guests/{id}/status - Unit not available: guest_id=%s", guestID)
			handlers.RespondConflict(w, msgUnitNotAvailable)

		default:
			h.logger.Error("PATCH /guests/{id}/status - Failed to update status: guest_id=%s, error=%v", guestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /guests/{id}/status - Status updated: guest_id=%s, status=%s", guestID, guest.Status)
	handlers.RespondJSON(w, http.StatusOK, guest)
}
