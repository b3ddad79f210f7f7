package export_guests

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-FrontDeskService/internal/api/handlers"
	"github.com/m04kA/SMC-FrontDeskService/internal/api/handlers/list_guests"
	"github.com/m04kA/SMC-FrontDeskService/internal/service/guests"
)

const (
	msgInvalidParams = "parâmetros de consulta inválidos"

	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
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

// Handle GET /api/v1/guests/export
// Принимает те же query параметры, что и GET /api/v1/guests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := list_guests.ToServiceRequest(r.URL.Query())

	data, err := h.service.Export(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, guests.ErrInvalidInput):
			h.logger.Warn("GET /guests/export - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /guests/export - Failed to export guests: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	filename := fmt.Sprintf("hospedes_%s.xlsx", time.Now().Format("2006-01-02"))

	w.Header().Set("Content-Type", contentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("GET /guests/export - Failed to write response: %v", err)
		return
	}

	h.logger.Info("GET /guests/export - Export sent: %d bytes", len(data))
}
