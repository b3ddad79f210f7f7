package list_units

import (
	"net/http"

	"github.com/m04kA/SMC-FrontDeskService/internal/api/handlers"
	"github.com/m04kA/SMC-FrontDeskService/internal/domain"
)

const (
	msgInvalidFilter = "filtro inválido, use all, rooms ou apartments"
)

type Handler struct {
	inventory UnitInventory
	logger    Logger
}

func NewHandler(inventory UnitInventory, logger Logger) *Handler {
	return &Handler{
		inventory: inventory,
		logger:    logger,
	}
}

// Handle GET /api/v1/units
// Query params: filter (all, rooms, apartments)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter := domain.UnitFilter(r.URL.Query().Get("filter"))
	if filter == "" {
		filter = domain.UnitFilterAll
	}
	if !filter.IsValid() {
		h.logger.Warn("GET /units - Invalid filter: %q", filter)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result := FromDomainUnits(h.inventory.Units(filter))

	h.logger.Info("GET /units - Units listed: filter=%s, count=%d", filter, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
