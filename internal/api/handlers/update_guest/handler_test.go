package update_guest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FrontDeskService/internal/domain"
	updateGuest "github.com/m04kA/SMC-FrontDeskService/internal/usecase/update_guest"
	"github.com/m04kA/SMC-FrontDeskService/pkg/logger"
)

type fakeUseCase struct {
	req *updateGuest.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *updateGuest.Request) (*updateGuest.Response, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &updateGuest.Response{Guest: &domain.Guest{ID: req.ID, UnitID: "05", Status: domain.GuestStatusActive}}, nil
}

func serve(uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/guests/{guestId}", NewHandler(uc, logger.NewNop()).Handle).Methods(http.MethodPatch)

	r := httptest.NewRequest(http.MethodPatch, "/api/v1/guests/g-1", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestHandle_PassesOnlyPresentFields(t *testing.T) {
	uc := &fakeUseCase{}
	w := serve(uc, `{"checkOut":"2025-09-20","paymentStatus":"paid"}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, uc.req)
	assert.Equal(t, "g-1", uc.req.ID)

	patch := uc.req.Patch
	require.NotNil(t, patch.CheckOut)
	assert.Equal(t, "2025-09-20", patch.CheckOut.String())
	require.NotNil(t, patch.PaymentStatus)
	assert.Equal(t, domain.PaymentPaid, *patch.PaymentStatus)
	assert.Nil(t, patch.CheckIn)
	assert.Nil(t, patch.UnitID)
	assert.Nil(t, patch.Status)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{updateGuest.ErrGuestNotFound, http.StatusNotFound},
		{updateGuest.ErrEmptyPatch, http.StatusBadRequest},
		{updateGuest.ErrInvalidRange, http.StatusBadRequest},
		{updateGuest.ErrUnitNotAvailable, http.StatusConflict},
		{updateGuest.ErrDocumentTaken, http.StatusConflict},
		{updateGuest.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := serve(&fakeUseCase{err: tt.err}, `{"bed":"3"}`)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestHandle_RejectsCreatedAt(t *testing.T) {
	uc := &fakeUseCase{}
	w := serve(uc, `{"createdAt":"2020-01-01T00:00:00Z"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, uc.req)
}
