package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-FrontDeskService/internal/domain"
	"github.com/m04kA/SMC-FrontDeskService/internal/service/dashboard/models"
	guestModels "github.com/m04kA/SMC-FrontDeskService/internal/service/guests/models"
	"github.com/m04kA/SMC-FrontDeskService/pkg/ptr"
	"github.com/m04kA/SMC-FrontDeskService/pkg/types"
)

// Service сервис панели ресепшена
// Все значения "сегодня" считаются в часовом поясе отеля
type Service struct {
	guestRepo    GuestRepository
	txManager    TransactionManager
	clock        Clock
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса панели
func NewService(guestRepo GuestRepository, txManager TransactionManager, clock Clock, logger Logger) *Service {
	return &Service{
		guestRepo:    guestRepo,
		txManager:    txManager,
		clock:        clock,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Stats считает карточки панели
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	today := s.today()

	guests, err := s.listGuests(ctx, domain.GuestFilter{})
	if err != nil {
		s.logger.Error("Stats: repository error: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	weekStart := today.AddDays(-domain.WeeklyRevenueWindowDays)
	resp := &models.StatsResponse{Date: today.String()}

	for _, g := range guests {
		if isCurrentGuest(g, today) {
			resp.CurrentGuests += g.BedCount()
		}
		if g.CheckIn == today {
			resp.TodayCheckIns++
			resp.DailyRevenue += g.Price
		}
		if g.CheckOut == today {
			resp.TodayCheckOuts++
		}
		if g.CheckIn.Between(weekStart, today) {
			resp.WeeklyRevenue += g.Price
		}
		if isUpcoming(g, today) {
			resp.UpcomingCheckIns++
		}
	}

	s.logger.Info("Stats: date=%s, currentGuests=%d, checkIns=%d, checkOuts=%d, upcoming=%d",
		today, resp.CurrentGuests, resp.TodayCheckIns, resp.TodayCheckOuts, resp.UpcomingCheckIns)

	return resp, nil
}

// GuestsByMetric возвращает гостей, из которых сложилась карточка панели
func (s *Service) GuestsByMetric(ctx context.Context, metric string) (*guestModels.GuestListResponse, error) {
	var match func(g *domain.Guest, today types.DateString) bool

	switch metric {
	case models.MetricCurrentGuests:
		match = isCurrentGuest
	case models.MetricTodayCheckIns:
		match = func(g *domain.Guest, today types.DateString) bool { return g.CheckIn == today }
	case models.MetricTodayCheckOuts:
		match = func(g *domain.Guest, today types.DateString) bool { return g.CheckOut == today }
	case models.MetricUpcomingCheckIns:
		match = isUpcoming
	default:
		s.logger.Warn("GuestsByMetric: unknown metric=%q", metric)
		return nil, fmt.Errorf("%w: %s", ErrUnknownMetric, metric)
	}

	today := s.today()

	guests, err := s.listGuests(ctx, domain.GuestFilter{})
	if err != nil {
		s.logger.Error("GuestsByMetric: repository error: %v", err)
		return nil, fmt.Errorf("%w: GuestsByMetric - repository error: %v", ErrInternal, err)
	}

	selected := make([]*domain.Guest, 0)
	for _, g := range guests {
		if match(g, today) {
			selected = append(selected, g)
		}
	}
	sort.SliceStable(selected, func(i, j int) bool {
		if selected[i].CheckIn != selected[j].CheckIn {
			return selected[i].CheckIn < selected[j].CheckIn
		}
		return domain.LessUnitID(selected[i].UnitID, selected[j].UnitID)
	})

	s.logger.Info("GuestsByMetric: metric=%s, date=%s, found=%d", metric, today, len(selected))
	return guestModels.FromDomainGuestList(selected), nil
}

// Charts строит заезды по дням и разбивку номер/апартамент за текущий месяц
func (s *Service) Charts(ctx context.Context) (*models.ChartsResponse, error) {
	today := s.today().Time()
	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	guests, err := s.listGuests(ctx, domain.GuestFilter{
		CheckInFrom: ptr.Ptr(types.NewDateString(first)),
		CheckInTo:   ptr.Ptr(types.NewDateString(last)),
	})
	if err != nil {
		s.logger.Error("Charts: repository error: %v", err)
		return nil, fmt.Errorf("%w: Charts - repository error: %v", ErrInternal, err)
	}

	resp := &models.ChartsResponse{
		Month:         first.Format("2006-01"),
		CheckInsByDay: make([]models.DayCount, last.Day()),
	}
	for i := range resp.CheckInsByDay {
		day := first.AddDate(0, 0, i)
		resp.CheckInsByDay[i] = models.DayCount{Day: i + 1, Date: day.Format(domain.DateFormat)}
	}

	for _, g := range guests {
		in := g.CheckIn.Time()
		if in.Year() != first.Year() || in.Month() != first.Month() {
			continue
		}
		resp.CheckInsByDay[in.Day()-1].Count++

		switch g.AccommodationType {
		case domain.AccommodationRoom:
			resp.AccommodationSplit.Rooms++
		case domain.AccommodationApartment:
			resp.AccommodationSplit.Apartments++
		}
	}

	s.logger.Info("Charts: month=%s, checkIns=%d", resp.Month, len(guests))
	return resp, nil
}

// listGuests читает гостей в read-only транзакции
func (s *Service) listGuests(ctx context.Context, filter domain.GuestFilter) ([]*domain.Guest, error) {
	var guests []*domain.Guest
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		guests, err = s.guestRepo.List(txCtx, filter)
		return err
	})
	return guests, err
}

func (s *Service) today() types.DateString {
	return s.clock.Today(s.timeProvider.Now())
}

// isCurrentGuest активное проживание, ночующее в отеле сегодня
func isCurrentGuest(g *domain.Guest, today types.DateString) bool {
	return g.IsActive() && g.IsInHouse(today)
}

// isUpcoming заезд в ближайшие дни, не считая сегодняшнего
func isUpcoming(g *domain.Guest, today types.DateString) bool {
	return g.CheckIn.Between(today.AddDays(1), today.AddDays(domain.UpcomingWindowDays))
}
