package check_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FrontDeskService/internal/api/handlers"
	"github.com/m04kA/SMC-FrontDeskService/internal/service/availability"
	"github.com/m04kA/SMC-FrontDeskService/pkg/types"
)

const (
	msgUnknownUnit  = "unidade inexistente"
	msgInvalidDates  = "datas inválidas, use o formato AAAA-MM-DD"
	msgInvalidRange = "a data de saída deve ser posterior à data de entrada"
)

type Handler struct {
	service   AvailabilityService
	inventory UnitInventory
	logger    Logger
}

func NewHandler(service AvailabilityService, inventory UnitInventory, logger Logger) *Handler {
	return &Handler{
		service:   service,
		inventory: inventory,
		logger:    logger,
	}
}

// Handle GET /api/v1/units/{unitId}/availability
// Query params: checkIn, checkOut, excludeId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	unitID := mux.Vars(r)["unitId"]
	if !h.inventory.Contains(unitID) {
		h.logger.Warn("GET /units/{id}/availability - Unknown unit: %q", unitID)
		handlers.RespondNotFound(w, msgUnknownUnit)
		return
	}

	query := r.URL.Query()
	checkIn := types.DateString(query.Get("checkIn"))
	checkOut := types.DateString(query.Get("checkOut"))

	available, err := h.service.IsAvailable(r.Context(), unitID, checkIn, checkOut, query.Get("excludeId"))
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidRange):
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("GET /units/{id}/availability - Invalid dates: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDates)

		default:
			h.logger.Error("GET /units/{id}/availability - Failed to check availability: unit=%s, error=%v", unitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /units/{id}/availability - unit=%s [%s, %s) available=%t", unitID, checkIn, checkOut, available)
	handlers.RespondJSON(w, http.StatusOK, AvailabilityResponse{
		UnitID:    unitID,
		CheckIn:   checkIn.String(),
		CheckOut:  checkOut.String(),
		Available: available,
	})
}
