package check_document

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-FrontDeskService/internal/api/handlers"
	"github.com/m04kA/SMC-FrontDeskService/pkg/validation"
)

const (
	msgInvalidDocument = "CPF inválido, use o formato XXX.XXX.XXX-XX"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/guests/document-check
// Query params: document, excludeId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	document := strings.TrimSpace(query.Get("document"))

	if !validation.IsCPF(document) {
		h.logger.Warn("GET /guests/document-check - Invalid document: %q", document)
		handlers.RespondBadRequest(w, msgInvalidDocument)
		return
	}

	taken, err := h.service.IsDocumentTaken(r.Context(), document, query.Get("excludeId"))
	if err != nil {
		h.logger.Error("GET /guests/document-check - Failed to check document: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /guests/document-check - taken=%t", taken)
	handlers.RespondJSON(w, http.StatusOK, DocumentCheckResponse{Document: document, Taken: taken})
}
