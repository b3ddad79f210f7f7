package register_guest

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FrontDeskService/internal/api/handlers"
	registerGuest "github.com/m04kA/SMC-FrontDeskService/internal/usecase/register_guest"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidFields      = "preencha corretamente os campos obrigatórios"
	msgInvalidDocument    = "CPF inválido, use o formato XXX.XXX.XXX-XX"
	msgInvalidPhone       = "telefone inválido, use o formato (XX) XXXXX-XXXX"
	msgUnknownUnit        = "unidade inexistente"
	msgInvalidRange       = "a data de saída deve ser posterior à data de entrada"
	msgDocumentTaken      = "já existe um hóspede ativo com este CPF"
	msgUnitNotAvailable   = "unidade ocupada no período selecionado"
)

type Handler struct {
	useCase RegisterGuestUseCase
	logger  Logger
}

func NewHandler(useCase RegisterGuestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/guests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterGuestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /guests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, registerGuest.ErrInvalidInput):
			h.logger.Warn("POST /guests - Invalid input: unit=%s, error=%v", req.UnitID, err)
			handlers.RespondBadRequest(w, handlers.FieldsMessage(msgInvalidFields, err))

		case errors.Is(err, registerGuest.ErrInvalidDocument):
			h.logger.Warn("POST /guests - Invalid document: unit=%s", req.UnitID)
			handlers.RespondBadRequest(w, msgInvalidDocument)

		case errors.Is(err, registerGuest.ErrInvalidPhone):
			h.logger.Warn("POST /guests - Invalid phone: unit=%s", req.UnitID)
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, registerGuest.ErrUnknownUnit):
			h.logger.Warn("POST /guests - Unknown unit: unit=%s", req.UnitID)
			handlers.RespondBadRequest(w, msgUnknownUnit)

		case errors.Is(err, registerGuest.ErrInvalidRange):
			h.logger.Warn("POST /guests - Invalid range: unit=%s, checkIn=%s, checkOut=%s", req.UnitID, req.CheckIn, req.CheckOut)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, registerGuest.ErrDocumentTaken):
			h.logger.Warn("POST /guests - Document taken: unit=%s", req.UnitID)
			handlers.RespondConflict(w, msgDocumentTaken)

		case errors.Is(err, registerGuest.ErrUnitNotAvailable):
			h.logger.Warn("POST /guests - Unit not available: unit=%s, checkIn=%s, checkOut=%s", req.UnitID, req.CheckIn, req.CheckOut)
			handlers.RespondConflict(w, msgUnitNotAvailable)

		default:
			h.logger.Error("POST /guests - Failed to register guest: unit=%s, error=%v", req.UnitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /guests - Guest registered successfully: guest_id=%s, unit=%s", result.Guest.ID, result.Guest.UnitID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

