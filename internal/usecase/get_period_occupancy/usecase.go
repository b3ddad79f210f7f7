package get_period_occupancy

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-FrontDeskService/internal/domain"
	"github.com/m04kA/SMC-FrontDeskService/pkg/ptr"
)

// UseCase use case доступности номеров за период
type UseCase struct {
	guestRepo GuestRepository
	inventory UnitInventory
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(guestRepo GuestRepository, inventory UnitInventory, logger Logger) *UseCase {
	return &UseCase{
		guestRepo: guestRepo,
		inventory: inventory,
		logger:    logger,
	}
}

// Execute строит карту доступности номеров за период
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		uc.logger.Warn("GetPeriodOccupancy: empty range checkIn=%q, checkOut=%q", req.CheckIn, req.CheckOut)
		return nil, ErrInvalidDate
	}
	if err := req.CheckIn.Validate(); err != nil {
		uc.logger.Warn("GetPeriodOccupancy: invalid checkIn=%q", req.CheckIn)
		return nil, fmt.Errorf("%w: checkIn: %v", ErrInvalidDate, err)
	}
	if err := req.CheckOut.Validate(); err != nil {
		uc.logger.Warn("GetPeriodOccupancy: invalid checkOut=%q", req.CheckOut)
		return nil, fmt.Errorf("%w: checkOut: %v", ErrInvalidDate, err)
	}
	if !req.CheckOut.IsAfter(req.CheckIn) {
		uc.logger.Warn("GetPeriodOccupancy: invalid range %s..%s", req.CheckIn, req.CheckOut)
		return nil, ErrInvalidRange
	}

	filter := req.Filter
	if filter == "" {
		filter = domain.UnitFilterAll
	}
	if !filter.IsValid() {
		uc.logger.Warn("GetPeriodOccupancy: invalid filter=%q", req.Filter)
		return nil, ErrInvalidFilter
	}

	uc.logger.Info("GetPeriodOccupancy: checkIn=%s, checkOut=%s, filter=%s", req.CheckIn, req.CheckOut, filter)

	// 2. Загружаем активные проживания, начавшиеся до конца периода
	guests, err := uc.guestRepo.List(ctx, domain.GuestFilter{
		Status:    ptr.Ptr(domain.GuestStatusActive),
		CheckInTo: ptr.Ptr(req.CheckOut.AddDays(-1)),
	})
	if err != nil {
		uc.logger.Error("GetPeriodOccupancy: failed to list guests: %v", err)
		return nil, fmt.Errorf("%w: failed to list guests: %v", ErrInternal, err)
	}

	// 3. Группируем пересекающиеся проживания по номерам
	byUnit := make(map[string][]*domain.Guest)
	for _, g := range guests {
		if g.Overlaps(req.CheckIn, req.CheckOut) {
			byUnit[g.UnitID] = append(byUnit[g.UnitID], g)
		}
	}

	// 4. Состояние каждого номера в порядке инвентаря
	units := uc.inventory.Units(filter)
	resp := &Response{
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Units:    make([]UnitPeriodState, 0, len(units)),
	}
	for _, u := range units {
		state := UnitPeriodState{UnitID: u.ID, Kind: u.Kind, Guests: make([]*domain.Guest, 0)}
		if overlapping := byUnit[u.ID]; len(overlapping) > 0 {
			sortByCheckIn(overlapping)
			state.Guests = overlapping
			state.Guest = overlapping[0]
			resp.Occupied++
		} else {
			resp.Available++
		}
		resp.Units = append(resp.Units, state)
	}

	uc.logger.Info("GetPeriodOccupancy: checkIn=%s, checkOut=%s, available=%d, occupied=%d",
		req.CheckIn, req.CheckOut, resp.Available, resp.Occupied)

	return resp, nil
}

func sortByCheckIn(guests []*domain.Guest) {
	sort.SliceStable(guests, func(i, j int) bool {
		if guests[i].CheckIn != guests[j].CheckIn {
			return guests[i].CheckIn < guests[j].CheckIn
		}
		if !guests[i].CreatedAt.Equal(guests[j].CreatedAt) {
			return guests[i].CreatedAt.Before(guests[j].CreatedAt)
		}
		return guests[i].ID < guests[j].ID
	})
}
