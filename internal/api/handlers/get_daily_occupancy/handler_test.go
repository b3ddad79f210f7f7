package get_daily_occupancy

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FrontDeskService/internal/domain"
	getDailyOccupancy "github.com/m04kA/SMC-FrontDeskService/internal/usecase/get_daily_occupancy"
	"github.com/m04kA/SMC-FrontDeskService/pkg/logger"
)

type fakeUseCase struct {
	req  *getDailyOccupancy.Request
	resp *getDailyOccupancy.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getDailyOccupancy.Request) (*getDailyOccupancy.Response, error) {
	f.req = req
	return f.resp, f.err
}

func TestHandle_Turnaround(t *testing.T) {
	outgoing := &domain.Guest{ID: "g-1", UnitID: "05", Name: "Ana", CheckIn: "2025-09-10", CheckOut: "2025-09-15"}
	incoming := &domain.Guest{ID: "g-2", UnitID: "05", Name: "Bia", CheckIn: "2025-09-15", CheckOut: "2025-09-18"}
	state := domain.UnitState{
		UnitID: "05", Kind: domain.UnitKindRoom, Status: domain.UnitTurnaround,
		OutgoingGuest: outgoing, IncomingGuest: incoming,
	}
	uc := &fakeUseCase{resp: &getDailyOccupancy.Response{
		Date:      "2025-09-15",
		Units:     []domain.UnitState{state},
		Summary:   domain.OccupancySummary{Total: 1, Turnaround: 1},
		CheckIns:  []*domain.Guest{incoming},
		CheckOuts: []*domain.Guest{outgoing},
		InHouse:   []*domain.Guest{incoming},
	}}

	r := httptest.NewRequest(http.MethodGet, "/api/v1/occupancy?date=2025-09-15&filter=rooms", nil)
	w := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2025-09-15", uc.req.Date.String())
	assert.Equal(t, domain.UnitFilterRooms, uc.req.Filter)

	var resp OccupancyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Units, 1)
	u := resp.Units[0]
	assert.Equal(t, "turnaround", u.Status)
	assert.Nil(t, u.Guest)
	require.NotNil(t, u.OutgoingGuest)
	require.NotNil(t, u.IncomingGuest)
	assert.Equal(t, "g-1", u.OutgoingGuest.ID)
	assert.Equal(t, "g-2", u.IncomingGuest.ID)
	assert.Equal(t, 1, resp.Summary.Turnaround)
	assert.Len(t, resp.CheckIns, 1)
	assert.Len(t, resp.CheckOuts, 1)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{getDailyOccupancy.ErrInvalidDate, http.StatusBadRequest},
		{getDailyOccupancy.ErrInvalidFilter, http.StatusBadRequest},
		{getDailyOccupancy.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/occupancy", nil)
		w := httptest.NewRecorder()
		NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop()).Handle(w, r)
		assert.Equal(t, tt.status, w.Code, tt.err.Error())
	}
}
