package register_guest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FrontDeskService/internal/api/handlers"
	"github.com/m04kA/SMC-FrontDeskService/internal/domain"
	guestModels "github.com/m04kA/SMC-FrontDeskService/internal/service/guests/models"
	registerGuest "github.com/m04kA/SMC-FrontDeskService/internal/usecase/register_guest"
	"github.com/m04kA/SMC-FrontDeskService/pkg/logger"
	"github.com/m04kA/SMC-FrontDeskService/pkg/validation"
)

type fakeUseCase struct {
	req *registerGuest.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *registerGuest.Request) (*registerGuest.Response, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &registerGuest.Response{Guest: &domain.Guest{
		ID: "g-1", UnitID: req.UnitID, Name: req.Name, CheckIn: req.CheckIn, CheckOut: req.CheckOut,
		Status: domain.GuestStatusActive,
	}}, nil
}

const validBody = `{"unitId":"05","bed":"2","name":"Ana, Bia","checkIn":"2025-09-10","checkOut":"2025-09-15",
"price":350,"accommodationType":"room","bedType":"double"}`

func serve(uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	h := NewHandler(uc, logger.NewNop())
	r := httptest.NewRequest(http.MethodPost, "/api/v1/guests", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}
	w := serve(uc, validBody)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp guestModels.GuestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "g-1", resp.ID)
	assert.Equal(t, "Ana (+1 hóspede)", resp.DisplayName)
	assert.Equal(t, "2025-09-15", resp.CheckOut)

	require.NotNil(t, uc.req.Price)
	assert.Equal(t, 350.0, *uc.req.Price)
	assert.Equal(t, domain.BedDouble, uc.req.BedType)
}

func TestHandle_RejectsUnknownFields(t *testing.T) {
	uc := &fakeUseCase{}
	w := serve(uc, `{"unitId":"05","createdAt":"2020-01-01T00:00:00Z"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, uc.req)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{registerGuest.ErrInvalidDocument, http.StatusBadRequest},
		{registerGuest.ErrInvalidPhone, http.StatusBadRequest},
		{registerGuest.ErrUnknownUnit, http.StatusBadRequest},
		{registerGuest.ErrInvalidRange, http.StatusBadRequest},
		{registerGuest.ErrDocumentTaken, http.StatusConflict},
		{registerGuest.ErrUnitNotAvailable, http.StatusConflict},
		{registerGuest.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := serve(&fakeUseCase{err: tt.err}, validBody)
			assert.Equal(t, tt.status, w.Code)

			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.status, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestHandle_InvalidInputListsFields(t *testing.T) {
	verrs := validation.Errors{{Field: "name", Tag: "required"}, {Field: "bed", Tag: "required"}}
	w := serve(&fakeUseCase{err: fmt.Errorf("%w: %w", registerGuest.ErrInvalidInput, verrs)}, validBody)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "bed, name")
}
