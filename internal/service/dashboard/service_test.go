package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FrontDeskService/internal/domain"
	"github.com/m04kA/SMC-FrontDeskService/internal/service/dashboard/models"
	"github.com/m04kA/SMC-FrontDeskService/pkg/logger"
	"github.com/m04kA/SMC-FrontDeskService/pkg/types"
)

type fakeRepo struct {
	guests []*domain.Guest
	filter domain.GuestFilter
	inTx   bool
	err    error
}

func (f *fakeRepo) List(ctx context.Context, filter domain.GuestFilter) ([]*domain.Guest, error) {
	f.filter = filter
	f.inTx = ctx.Value(txCtxKey{}) != nil
	if f.err != nil {
		return nil, f.err
	}
	result := make([]*domain.Guest, 0, len(f.guests))
	for _, g := range f.guests {
		if filter.CheckInFrom != nil && g.CheckIn < *filter.CheckInFrom {
			continue
		}
		if filter.CheckInTo != nil && g.CheckIn > *filter.CheckInTo {
			continue
		}
		result = append(result, g)
	}
	return result, nil
}

type txCtxKey struct{}

// fakeTx помечает контекст, чтобы проверить, что чтение шло внутри транзакции
type fakeTx struct {
	calls int
	err   error
}

func (f *fakeTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	return fn(context.WithValue(ctx, txCtxKey{}, true))
}

// utcClock считает сегодняшнюю дату в UTC
type utcClock struct{}

func (utcClock) Today(now time.Time) types.DateString {
	return types.NewDateString(now.UTC())
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func guest(id, unit, bed string, in, out types.DateString, price float64, status domain.GuestStatus, kind domain.AccommodationType) *domain.Guest {
	return &domain.Guest{
		ID: id, UnitID: unit, Bed: bed, CheckIn: in, CheckOut: out, Price: price,
		Status: status, AccommodationType: kind,
	}
}

func fixtureGuests() []*domain.Guest {
	active, done := domain.GuestStatusActive, domain.GuestStatusCompleted
	room, apt := domain.AccommodationRoom, domain.AccommodationApartment
	return []*domain.Guest{
		guest("staying", "05", "2", "2025-09-10", "2025-09-20", 500, active, room),
		guest("arriving", "09", "3", "2025-09-15", "2025-09-18", 300, active, apt),
		guest("leaving", "06", "1", "2025-09-12", "2025-09-15", 200, active, room),
		guest("left-early", "07", "4", "2025-09-12", "2025-09-16", 100, done, room),
		guest("bad-bed", "08", "dois", "2025-09-14", "2025-09-17", 50, active, room),
		guest("tomorrow", "11", "2", "2025-09-16", "2025-09-19", 80, active, apt),
		guest("next-week", "12", "2", "2025-09-22", "2025-09-25", 70, active, apt),
		guest("too-far", "13", "2", "2025-09-23", "2025-09-25", 60, active, apt),
		guest("last-month", "10", "1", "2025-08-31", "2025-09-02", 40, done, room),
	}
}

func newService(repo *fakeRepo) *Service {
	return newServiceWithTx(repo, &fakeTx{})
}

func newServiceWithTx(repo *fakeRepo, tx *fakeTx) *Service {
	svc := NewService(repo, tx, utcClock{}, logger.NewNop())
	svc.timeProvider = fixedTime{now: time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)}
	return svc
}

func TestStats(t *testing.T) {
	svc := newService(&fakeRepo{guests: fixtureGuests()})

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2025-09-15", stats.Date)
	// staying(2) + arriving(3) + bad-bed(0); left-early завершён, leaving выехал сегодня
	assert.Equal(t, 5, stats.CurrentGuests)
	assert.Equal(t, 1, stats.TodayCheckIns)
	assert.Equal(t, 1, stats.TodayCheckOuts)
	assert.Equal(t, 300.0, stats.DailyRevenue)
	// заезды с 2025-09-08 по 2025-09-15
	assert.Equal(t, 1150.0, stats.WeeklyRevenue)
	// заезды с 2025-09-16 по 2025-09-22
	assert.Equal(t, 2, stats.UpcomingCheckIns)
}

func TestGuestsByMetric(t *testing.T) {
	svc := newService(&fakeRepo{guests: fixtureGuests()})
	ctx := context.Background()

	ids := func(metric string) []string {
		resp, err := svc.GuestsByMetric(ctx, metric)
		require.NoError(t, err)
		out := make([]string, 0, len(resp.Guests))
		for _, g := range resp.Guests {
			out = append(out, g.ID)
		}
		return out
	}

	assert.Equal(t, []string{"staying", "bad-bed", "arriving"}, ids(models.MetricCurrentGuests))
	assert.Equal(t, []string{"arriving"}, ids(models.MetricTodayCheckIns))
	assert.Equal(t, []string{"leaving"}, ids(models.MetricTodayCheckOuts))
	assert.Equal(t, []string{"tomorrow", "next-week"}, ids(models.MetricUpcomingCheckIns))

	_, err := svc.GuestsByMetric(ctx, "revenue")
	assert.ErrorIs(t, err, ErrUnknownMetric)
}

func TestCharts(t *testing.T) {
	repo := &fakeRepo{guests: fixtureGuests()}
	svc := newService(repo)

	charts, err := svc.Charts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2025-09", charts.Month)
	require.Len(t, charts.CheckInsByDay, 30)
	assert.Equal(t, models.DayCount{Day: 12, Date: "2025-09-12", Count: 2}, charts.CheckInsByDay[11])
	assert.Equal(t, 0, charts.CheckInsByDay[0].Count)
	assert.Equal(t, models.AccommodationSplit{Rooms: 4, Apartments: 4}, charts.AccommodationSplit)

	require.NotNil(t, repo.filter.CheckInFrom)
	assert.Equal(t, types.DateString("2025-09-01"), *repo.filter.CheckInFrom)
	assert.Equal(t, types.DateString("2025-09-30"), *repo.filter.CheckInTo)
}

func TestRepositoryErrors(t *testing.T) {
	svc := newService(&fakeRepo{err: errors.New("db down")})
	ctx := context.Background()

	_, err := svc.Stats(ctx)
	assert.ErrorIs(t, err, ErrInternal)

	_, err = svc.GuestsByMetric(ctx, models.MetricTodayCheckIns)
	assert.ErrorIs(t, err, ErrInternal)

	_, err = svc.Charts(ctx)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestReadsRunInReadOnlyTransaction(t *testing.T) {
	repo := &fakeRepo{guests: fixtureGuests()}
	tx := &fakeTx{}
	svc := newServiceWithTx(repo, tx)
	ctx := context.Background()

	_, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.True(t, repo.inTx)

	repo.inTx = false
	_, err = svc.GuestsByMetric(ctx, models.MetricCurrentGuests)
	require.NoError(t, err)
	assert.True(t, repo.inTx)

	repo.inTx = false
	_, err = svc.Charts(ctx)
	require.NoError(t, err)
	assert.True(t, repo.inTx)

	assert.Equal(t, 3, tx.calls)
}

func TestTransactionBeginError(t *testing.T) {
	svc := newServiceWithTx(&fakeRepo{guests: fixtureGuests()}, &fakeTx{err: errors.New("begin failed")})

	_, err := svc.Stats(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
