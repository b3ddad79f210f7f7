package update_guest

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FrontDeskService/internal/api/handlers"
	updateGuest "github.com/m04kA/SMC-FrontDeskService/internal/usecase/update_guest"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgEmptyPatch         = "nenhum campo para atualizar"
	msgGuestNotFound      = "hóspede não encontrado"
	msgInvalidFields      = "preencha corretamente os campos obrigatórios"
	msgInvalidDocument    = "CPF inválido, use o formato XXX.XXX.XXX-XX"
	msgInvalidPhone       = "telefone inválido, use o formato (XX) XXXXX-XXXX"
	msgUnknownUnit        = "unidade inexistente"
	msgInvalidRange       = "a data de saída deve ser posterior à data de entrada"
	msgDocumentTaken      = "já existe um hóspede ativo com este CPF"
	msgUnitNotAvailable   = "unidade ocupada no período selecionado"
)

type Handler struct {
	useCase UpdateGuestUseCase
	logger  Logger
}

func NewHandler(useCase UpdateGuestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/guests/{guestId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	guestID := mux.Vars(r)["guestId"]

	var req UpdateGuestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /guests/%s - Invalid request body: %v", guestID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(guestID))
	if err != nil {
		switch {
		case errors.Is(err, updateGuest.ErrEmptyPatch):
			handlers.RespondBadRequest(w, msgEmptyPatch)

		case errors.Is(err, updateGuest.ErrGuestNotFound):
			h.logger.Warn("PATCH /guests/%s - Guest not found", guestID)
			handlers.RespondNotFound(w, msgGuestNotFound)

		case errors.Is(err, updateGuest.ErrInvalidInput):
			h.logger.Warn("PATCH /guests/%s - Invalid input: %v", guestID, err)
			handlers.RespondBadRequest(w, handlers.FieldsMessage(msgInvalidFields, err))

		case errors.Is(err, updateGuest.ErrInvalidDocument):
			handlers.RespondBadRequest(w, msgInvalidDocument)

		case errors.Is(err, updateGuest.ErrInvalidPhone):
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, updateGuest.ErrUnknownUnit):
			handlers.RespondBadRequest(w, msgUnknownUnit)

		case errors.Is(err, updateGuest.ErrInvalidRange):
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, updateGuest.ErrDocumentTaken):
			h.logger.Warn("PATCH /guests/%s - Document taken", guestID)
			handlers.RespondConflict(w, msgDocumentTaken)

		case errors.Is(err, updateGuest.ErrUnitNotAvailable):
			h.logger.Warn("PATCH /guests/%s - Unit not available", guestID)
			handlers.RespondConflict(w, msgUnitNotAvailable)

		default:
			h.logger.Error("PATCH /guests/%s - Failed to update guest: %v", guestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /guests/%s - Guest updated successfully", guestID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
