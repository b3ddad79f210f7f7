package get_daily_occupancy

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-FrontDeskService/internal/domain"
	"github.com/m04kA/SMC-FrontDeskService/pkg/ptr"
)

// UseCase use case карты занятости номеров на день
type UseCase struct {
	guestRepo    GuestRepository
	inventory    UnitInventory
	clock        Clock
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	guestRepo GuestRepository,
	inventory UnitInventory,
	clock Clock,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		guestRepo:    guestRepo,
		inventory:    inventory,
		clock:        clock,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute строит карту занятости на дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now()

	// 1. Валидация входных данных
	date := req.Date
	if date.IsZero() {
		date = uc.clock.Today(now)
	} else if err := date.Validate(); err != nil {
		uc.logger.Warn("GetDailyOccupancy: invalid date=%q", req.Date)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	filter := req.Filter
	if filter == "" {
		filter = domain.UnitFilterAll
	}
	if !filter.IsValid() {
		uc.logger.Warn("GetDailyOccupancy: invalid filter=%q", req.Filter)
		return nil, ErrInvalidFilter
	}

	uc.logger.Info("GetDailyOccupancy: date=%s, filter=%s", date, filter)

	// 2. Загружаем активные проживания
	guests, err := uc.guestRepo.List(ctx, domain.GuestFilter{Status: ptr.Ptr(domain.GuestStatusActive)})
	if err != nil {
		uc.logger.Error("GetDailyOccupancy: failed to list guests: %v", err)
		return nil, fmt.Errorf("%w: failed to list guests: %v", ErrInternal, err)
	}

	// 3. Применяем правило выезда и классифицируем номера
	pastCutoff := uc.clock.IsPastCutoff(date, now)
	units := uc.inventory.Units(filter)
	states := ResolveDay(guests, date, units, pastCutoff)

	resp := &Response{
		Date:       date,
		PastCutoff: pastCutoff,
		Units:      make([]domain.UnitState, 0, len(units)),
		CheckIns:   make([]*domain.Guest, 0),
		CheckOuts:  make([]*domain.Guest, 0),
		InHouse:    make([]*domain.Guest, 0),
	}
	for _, u := range units {
		state := states[u.ID]
		resp.Units = append(resp.Units, state)
		resp.Summary.Add(state)
	}

	// 4. Списки дня по номерам выбранного фильтра
	selected := make(map[string]struct{}, len(units))
	for _, u := range units {
		selected[u.ID] = struct{}{}
	}
	for _, g := range guests {
		if _, ok := selected[g.UnitID]; !ok {
			continue
		}
		if g.CheckIn == date {
			resp.CheckIns = append(resp.CheckIns, g)
		}
		if g.CheckOut == date {
			resp.CheckOuts = append(resp.CheckOuts, g)
		}
		if g.IsInHouse(date) {
			resp.InHouse = append(resp.InHouse, g)
		}
	}
	sortByUnit(resp.CheckIns)
	sortByUnit(resp.CheckOuts)
	sortByUnit(resp.InHouse)

	uc.metrics.IncOccupancyResolve(pastCutoff)

	uc.logger.Info("GetDailyOccupancy: date=%s, occupied=%d, checkout=%d, turnaround=%d, available=%d",
		date, resp.Summary.Occupied, resp.Summary.Checkout, resp.Summary.Turnaround, resp.Summary.Available)

	return resp, nil
}

func sortByUnit(guests []*domain.Guest) {
	sort.SliceStable(guests, func(i, j int) bool {
		return domain.LessUnitID(guests[i].UnitID, guests[j].UnitID)
	})
}
