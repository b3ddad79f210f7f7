package register_guest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FrontDeskService/internal/domain"
	"github.com/m04kA/SMC-FrontDeskService/pkg/logger"
	"github.com/m04kA/SMC-FrontDeskService/pkg/ptr"
	"github.com/m04kA/SMC-FrontDeskService/pkg/types"
	"github.com/m04kA/SMC-FrontDeskService/pkg/validation"
)

type fakeRepo struct {
	created []*domain.Guest
	err     error
}

func (f *fakeRepo) Create(_ context.Context, g *domain.Guest) (*domain.Guest, error) {
	if f.err != nil {
		return nil, f.err
	}
	copied := *g
	copied.ID = "g-new"
	copied.SchemaVersion = domain.GuestSchemaVersion
	f.created = append(f.created, &copied)
	return &copied, nil
}

type fakeAvailability struct {
	unavailable bool
	taken       bool
	err         error
	calls       int
}

func (f *fakeAvailability) IsAvailable(_ context.Context, _ string, _, _ types.DateString, _ string) (bool, error) {
	f.calls++
	return !f.unavailable, f.err
}

func (f *fakeAvailability) IsDocumentTaken(_ context.Context, _ string, _ string) (bool, error) {
	f.calls++
	return f.taken, f.err
}

type fakeTx struct{ calls int }

func (f *fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeMetrics struct {
	registered []string
	conflicts  []string
}

func (m *fakeMetrics) IncGuestRegistered(t string) { m.registered = append(m.registered, t) }
func (m *fakeMetrics) IncConflict(reason string)   { m.conflicts = append(m.conflicts, reason) }

type fixture struct {
	uc      *UseCase
	repo    *fakeRepo
	avail   *fakeAvailability
	tx      *fakeTx
	metrics *fakeMetrics
}

func newFixture() *fixture {
	f := &fixture{
		repo:    &fakeRepo{},
		avail:   &fakeAvailability{},
		tx:      &fakeTx{},
		metrics: &fakeMetrics{},
	}
	inv := domain.NewInventory([]string{"05", "06"}, []string{"09"})
	f.uc = NewUseCase(f.repo, f.avail, inv, validation.New(), f.tx, f.metrics, logger.NewNop())
	return f
}

func validRequest() *Request {
	return &Request{
		UnitID:            "05",
		Bed:               "2",
		Name:              " Ana Souza, Bruno ",
		Document:          "123.456.789-00",
		Phone:             "(11) 98765-4321",
		CheckIn:           "2025-09-10",
		CheckOut:          "2025-09-15",
		Price:             ptr.Ptr(350.0),
		AccommodationType: domain.AccommodationRoom,
		BedType:           domain.BedDouble,
		PaymentMethod:     domain.PaymentPix,
		PaymentStatus:     domain.PaymentPaid,
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, f.repo.created, 1)
	assert.Equal(t, "g-new", resp.Guest.ID)
	assert.Equal(t, "Ana Souza, Bruno", resp.Guest.Name)
	assert.Equal(t, domain.GuestStatusActive, resp.Guest.Status)
	assert.Equal(t, 350.0, resp.Guest.Price)
	assert.Equal(t, 1, f.tx.calls)
	assert.Equal(t, []string{"room"}, f.metrics.registered)
}

func TestExecute_ZeroPriceAllowed(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.Price = ptr.Ptr(0.0)

	_, err := f.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_ValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{"missing name", func(r *Request) { r.Name = "  " }, ErrInvalidInput},
		{"missing price", func(r *Request) { r.Price = nil }, ErrInvalidInput},
		{"negative price", func(r *Request) { r.Price = ptr.Ptr(-1.0) }, ErrInvalidInput},
		{"unknown bed type", func(r *Request) { r.BedType = "king" }, ErrInvalidInput},
		{"bad date", func(r *Request) { r.CheckIn = "10/09/2025" }, ErrInvalidInput},
		{"required wins over document", func(r *Request) { r.Name = ""; r.Document = "123" }, ErrInvalidInput},
		{"bad document", func(r *Request) { r.Document = "12345678900" }, ErrInvalidDocument},
		{"document before phone", func(r *Request) { r.Document = "1"; r.Phone = "1" }, ErrInvalidDocument},
		{"bad phone", func(r *Request) { r.Phone = "11987654321" }, ErrInvalidPhone},
		{"unknown unit", func(r *Request) { r.UnitID = "99" }, ErrUnknownUnit},
		{"same day", func(r *Request) { r.CheckOut = r.CheckIn }, ErrInvalidRange},
		{"reversed", func(r *Request) { r.CheckIn, r.CheckOut = r.CheckOut, r.CheckIn }, ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, f.tx.calls, "no transaction on validation failure")
			assert.Zero(t, f.avail.calls)
			assert.Empty(t, f.repo.created)
		})
	}
}

func TestExecute_InvalidInputCarriesFields(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.Bed = ""

	_, err := f.uc.Execute(context.Background(), req)

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("bed", "required"))
}

func TestExecute_Conflicts(t *testing.T) {
	f := newFixture()
	f.avail.taken = true
	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDocumentTaken)
	assert.Equal(t, []string{"document"}, f.metrics.conflicts)

	f = newFixture()
	f.avail.unavailable = true
	_, err = f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrUnitNotAvailable)
	assert.Equal(t, []string{"unit"}, f.metrics.conflicts)
	assert.Empty(t, f.repo.created)
	assert.Empty(t, f.metrics.registered)
}

func TestExecute_InternalErrors(t *testing.T) {
	f := newFixture()
	f.avail.err = errors.New("db down")
	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)

	f = newFixture()
	f.repo.err = errors.New("db down")
	_, err = f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
