package update_guest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FrontDeskService/internal/domain"
	guestRepo "github.com/m04kA/SMC-FrontDeskService/internal/infra/storage/guest"
	"github.com/m04kA/SMC-FrontDeskService/pkg/logger"
	"github.com/m04kA/SMC-FrontDeskService/pkg/ptr"
	"github.com/m04kA/SMC-FrontDeskService/pkg/types"
	"github.com/m04kA/SMC-FrontDeskService/pkg/validation"
)

type fakeRepo struct {
	guests    map[string]*domain.Guest
	getErr    error
	updateErr error
	updated   []domain.GuestPatch
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*domain.Guest, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	g, ok := f.guests[id]
	if !ok {
		return nil, guestRepo.ErrGuestNotFound
	}
	copied := *g
	return &copied, nil
}

func (f *fakeRepo) Update(_ context.Context, id string, patch domain.GuestPatch) (*domain.Guest, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updated = append(f.updated, patch)
	merged := patch.Apply(*f.guests[id])
	return &merged, nil
}

type checkCall struct {
	unitID    string
	excludeID string
}

type fakeAvailability struct {
	unavailable bool
	taken       bool
	available   []checkCall
	documents   []checkCall
}

func (f *fakeAvailability) IsAvailable(_ context.Context, unitID string, _, _ types.DateString, excludeID string) (bool, error) {
	f.available = append(f.available, checkCall{unitID: unitID, excludeID: excludeID})
	return !f.unavailable, nil
}

func (f *fakeAvailability) IsDocumentTaken(_ context.Context, _ string, excludeID string) (bool, error) {
	f.documents = append(f.documents, checkCall{excludeID: excludeID})
	return f.taken, nil
}

type fakeTx struct{}

func (fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeMetrics struct{ conflicts []string }

func (m *fakeMetrics) IncConflict(reason string) { m.conflicts = append(m.conflicts, reason) }

func existing() *domain.Guest {
	return &domain.Guest{
		ID:                "g-1",
		UnitID:            "05",
		Bed:               "2",
		Name:              "Ana",
		Document:          "123.456.789-00",
		CheckIn:           "2025-09-10",
		CheckOut:          "2025-09-15",
		Price:             350,
		AccommodationType: domain.AccommodationRoom,
		BedType:           domain.BedDouble,
		Status:            domain.GuestStatusActive,
	}
}

func newUseCase(repo *fakeRepo, avail *fakeAvailability, m *fakeMetrics) *UseCase {
	inv := domain.NewInventory([]string{"05", "06"}, []string{"09"})
	return NewUseCase(repo, avail, inv, validation.New(), fakeTx{}, m, logger.NewNop())
}

func TestExecute_ExtendStayExcludesItself(t *testing.T) {
	repo := &fakeRepo{guests: map[string]*domain.Guest{"g-1": existing()}}
	avail := &fakeAvailability{}
	uc := newUseCase(repo, avail, &fakeMetrics{})

	resp, err := uc.Execute(context.Background(), &Request{
		ID:    "g-1",
		Patch: domain.GuestPatch{CheckOut: ptr.Ptr(types.DateString("2025-09-17"))},
	})
	require.NoError(t, err)

	assert.Equal(t, types.DateString("2025-09-17"), resp.Guest.CheckOut)
	require.Len(t, avail.available, 1)
	assert.Equal(t, checkCall{unitID: "05", excludeID: "g-1"}, avail.available[0])
	require.Len(t, avail.documents, 1)
	assert.Equal(t, "g-1", avail.documents[0].excludeID)
	require.Len(t, repo.updated, 1)
}

func TestExecute_CompletedRecordSkipsConflictChecks(t *testing.T) {
	g := existing()
	g.Status = domain.GuestStatusCompleted
	repo := &fakeRepo{guests: map[string]*domain.Guest{"g-1": g}}
	avail := &fakeAvailability{unavailable: true, taken: true}
	uc := newUseCase(repo, avail, &fakeMetrics{})

	_, err := uc.Execute(context.Background(), &Request{ID: "g-1", Patch: domain.GuestPatch{Notes: ptr.Ptr("pago")}})

	require.NoError(t, err)
	assert.Empty(t, avail.available)
	assert.Empty(t, avail.documents)
}

func TestExecute_MergedRecordIsValidated(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		patch   domain.GuestPatch
		wantErr error
	}{
		{"check-out before check-in", domain.GuestPatch{CheckOut: ptr.Ptr(types.DateString("2025-09-09"))}, ErrInvalidRange},
		{"blank name", domain.GuestPatch{Name: ptr.Ptr("   ")}, ErrInvalidInput},
		{"bad document", domain.GuestPatch{Document: ptr.Ptr("abc")}, ErrInvalidDocument},
		{"bad phone", domain.GuestPatch{Phone: ptr.Ptr("123")}, ErrInvalidPhone},
		{"unknown unit", domain.GuestPatch{UnitID: ptr.Ptr("77")}, ErrUnknownUnit},
		{"unknown status", domain.GuestPatch{Status: ptr.Ptr(domain.GuestStatus("gone"))}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{guests: map[string]*domain.Guest{"g-1": existing()}}
			uc := newUseCase(repo, &fakeAvailability{}, &fakeMetrics{})

			_, err := uc.Execute(ctx, &Request{ID: "g-1", Patch: tt.patch})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.updated)
		})
	}
}

func TestExecute_Conflicts(t *testing.T) {
	ctx := context.Background()
	patch := domain.GuestPatch{UnitID: ptr.Ptr("06")}

	m := &fakeMetrics{}
	repo := &fakeRepo{guests: map[string]*domain.Guest{"g-1": existing()}}
	_, err := newUseCase(repo, &fakeAvailability{unavailable: true}, m).Execute(ctx, &Request{ID: "g-1", Patch: patch})
	assert.ErrorIs(t, err, ErrUnitNotAvailable)
	assert.Equal(t, []string{"unit"}, m.conflicts)

	m = &fakeMetrics{}
	_, err = newUseCase(repo, &fakeAvailability{taken: true}, m).Execute(ctx, &Request{ID: "g-1", Patch: patch})
	assert.ErrorIs(t, err, ErrDocumentTaken)
	assert.Equal(t, []string{"document"}, m.conflicts)
	assert.Empty(t, repo.updated)
}

func TestExecute_Errors(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{guests: map[string]*domain.Guest{"g-1": existing()}}
	uc := newUseCase(repo, &fakeAvailability{}, &fakeMetrics{})

	_, err := uc.Execute(ctx, &Request{ID: "g-1"})
	assert.ErrorIs(t, err, ErrEmptyPatch)

	_, err = uc.Execute(ctx, &Request{ID: "missing", Patch: domain.GuestPatch{Notes: ptr.Ptr("x")}})
	assert.ErrorIs(t, err, ErrGuestNotFound)

	repo.getErr = errors.New("db down")
	_, err = uc.Execute(ctx, &Request{ID: "g-1", Patch: domain.GuestPatch{Notes: ptr.Ptr("x")}})
	assert.ErrorIs(t, err, ErrInternal)

	repo.getErr = nil
	repo.updateErr = errors.New("db down")
	_, err = uc.Execute(ctx, &Request{ID: "g-1", Patch: domain.GuestPatch{Notes: ptr.Ptr("x")}})
	assert.ErrorIs(t, err, ErrInternal)
}
