package get_daily_occupancy

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FrontDeskService/internal/api/handlers"
	getDailyOccupancy "github.com/m04kA/SMC-FrontDeskService/internal/usecase/get_daily_occupancy"
)

const (
	msgInvalidDate   = "data inválida, use o formato AAAA-MM-DD"
	msgInvalidFilter = "filtro inválido, use all, rooms ou apartments"
)

type Handler struct {
	useCase GetDailyOccupancyUseCase
	logger  Logger
}

func NewHandler(useCase GetDailyOccupancyUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/occupancy
// Query params: date (по умолчанию сегодня), filter (all, rooms, apartments)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := ToUseCaseRequest(query.Get("date"), query.Get("filter"))

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getDailyOccupancy.ErrInvalidDate):
			h.logger.Warn("GET /occupancy - Invalid date: %q", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getDailyOccupancy.ErrInvalidFilter):
			h.logger.Warn("GET /occupancy - Invalid filter: %q", req.Filter)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /occupancy - Failed to resolve occupancy: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /occupancy - Occupancy resolved: date=%s, units=%d", result.Date, len(result.Units))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
