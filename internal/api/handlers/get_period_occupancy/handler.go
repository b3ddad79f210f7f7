package get_period_occupancy

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FrontDeskService/internal/api/handlers"
	getPeriodOccupancy "github.com/m04kA/SMC-FrontDeskService/internal/usecase/get_period_occupancy"
)

const (
	msgInvalidDate   = "checkIn e checkOut são obrigatórios no formato AAAA-MM-DD"
	msgInvalidRange  = "a data de saída deve ser posterior à data de entrada"
	msgInvalidFilter = "filtro inválido, use all, rooms ou apartments"
)

type Handler struct {
	useCase GetPeriodOccupancyUseCase
	logger  Logger
}

func NewHandler(useCase GetPeriodOccupancyUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/occupancy/period
// Query params: checkIn, checkOut (обязательные), filter (all, rooms, apartments)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := ToUseCaseRequest(query.Get("checkIn"), query.Get("checkOut"), query.Get("filter"))

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getPeriodOccupancy.ErrInvalidDate):
			h.logger.Warn("GET /occupancy/period - Invalid dates: checkIn=%q, checkOut=%q", req.CheckIn, req.CheckOut)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getPeriodOccupancy.ErrInvalidRange):
			h.logger.Warn("GET /occupancy/period - Invalid range: %s..%s", req.CheckIn, req.CheckOut)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getPeriodOccupancy.ErrInvalidFilter):
			h.logger.Warn("GET /occupancy/period - Invalid filter: %q", req.Filter)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /occupancy/period - Failed to resolve availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /occupancy/period - Availability resolved: %s..%s, available=%d, occupied=%d",
		result.CheckIn, result.CheckOut, result.Available, result.Occupied)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
