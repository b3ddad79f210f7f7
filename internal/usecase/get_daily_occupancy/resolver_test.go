package get_daily_occupancy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FrontDeskService/internal/domain"
	"github.com/m04kA/SMC-FrontDeskService/pkg/types"
)

var testUnits = []domain.Unit{
	{ID: "05", Kind: domain.UnitKindRoom},
	{ID: "06", Kind: domain.UnitKindRoom},
	{ID: "09", Kind: domain.UnitKindApartment},
}

func stay(id, unit string, in, out types.DateString) *domain.Guest {
	return &domain.Guest{ID: id, UnitID: unit, CheckIn: in, CheckOut: out, Status: domain.GuestStatusActive}
}

func TestResolveDay_Turnaround(t *testing.T) {
	outgoing := stay("g-1", "05", "2025-09-10", "2025-09-15")
	incoming := stay("g-2", "05", "2025-09-15", "2025-09-18")

	states := ResolveDay([]*domain.Guest{outgoing, incoming}, "2025-09-15", testUnits, false)

	s := states["05"]
	assert.Equal(t, domain.UnitTurnaround, s.Status)
	assert.Same(t, outgoing, s.OutgoingGuest)
	assert.Same(t, incoming, s.IncomingGuest)
	assert.Nil(t, s.Guest)
}

func TestResolveDay_Occupied(t *testing.T) {
	g := stay("g-1", "05", "2025-09-10", "2025-09-15")

	states := ResolveDay([]*domain.Guest{g}, "2025-09-12", testUnits, false)

	s := states["05"]
	assert.Equal(t, domain.UnitOccupied, s.Status)
	assert.Same(t, g, s.Guest)
	assert.False(t, s.CheckingIn)
}

func TestResolveDay_CheckInOnlyIsOccupied(t *testing.T) {
	g := stay("g-1", "05", "2025-09-10", "2025-09-15")

	s := ResolveDay([]*domain.Guest{g}, "2025-09-10", testUnits, false)["05"]

	assert.Equal(t, domain.UnitOccupied, s.Status)
	assert.Same(t, g, s.Guest)
	assert.True(t, s.CheckingIn)
}

func TestResolveDay_CheckoutCutoff(t *testing.T) {
	g := stay("g-1", "05", "2025-09-10", "2025-09-15")
	records := []*domain.Guest{g}

	before := ResolveDay(records, "2025-09-15", testUnits, false)["05"]
	assert.Equal(t, domain.UnitCheckout, before.Status)
	assert.Same(t, g, before.Guest)

	after := ResolveDay(records, "2025-09-15", testUnits, true)["05"]
	assert.Equal(t, domain.UnitAvailable, after.Status)
	assert.Nil(t, after.Guest)
}

func TestResolveDay_TurnaroundAfterCutoffShowsIncomingOnly(t *testing.T) {
	outgoing := stay("g-1", "05", "2025-09-10", "2025-09-15")
	incoming := stay("g-2", "05", "2025-09-15", "2025-09-18")

	s := ResolveDay([]*domain.Guest{outgoing, incoming}, "2025-09-15", testUnits, true)["05"]

	assert.Equal(t, domain.UnitOccupied, s.Status)
	assert.Same(t, incoming, s.Guest)
	assert.True(t, s.CheckingIn)
	assert.Nil(t, s.OutgoingGuest)
}

func TestResolveDay_IgnoresCompletedAndUnknownUnits(t *testing.T) {
	completed := stay("g-1", "05", "2025-09-10", "2025-09-15")
	completed.Status = domain.GuestStatusCompleted
	unknown := stay("g-2", "99", "2025-09-10", "2025-09-15")

	states := ResolveDay([]*domain.Guest{completed, unknown, nil}, "2025-09-12", testUnits, false)

	require.Len(t, states, len(testUnits))
	for _, u := range testUnits {
		assert.Equal(t, domain.UnitAvailable, states[u.ID].Status, u.ID)
		assert.Equal(t, u.Kind, states[u.ID].Kind)
	}
	_, ok := states["99"]
	assert.False(t, ok)
}

func TestResolveDay_EmptyInputs(t *testing.T) {
	assert.Empty(t, ResolveDay(nil, "2025-09-12", nil, false))

	states := ResolveDay(nil, "2025-09-12", testUnits, false)
	assert.Len(t, states, len(testUnits))
}

func TestResolveDay_DeterministicAcrossInputOrder(t *testing.T) {
	base := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	a := stay("g-a", "06", "2025-09-10", "2025-09-20")
	a.CreatedAt = base
	b := stay("g-b", "06", "2025-09-11", "2025-09-20")
	b.CreatedAt = base.Add(time.Hour)
	c := stay("g-c", "05", "2025-09-12", "2025-09-14")

	first := ResolveDay([]*domain.Guest{a, b, c}, "2025-09-13", testUnits, false)
	second := ResolveDay([]*domain.Guest{c, b, a}, "2025-09-13", testUnits, false)
	again := ResolveDay([]*domain.Guest{a, b, c}, "2025-09-13", testUnits, false)

	assert.Equal(t, first, second)
	assert.Equal(t, first, again)
	assert.Same(t, a, first["06"].Guest)
}
