package get_daily_occupancy

import (
	"github.com/m04kA/SMC-FrontDeskService/internal/domain"
	"github.com/m04kA/SMC-FrontDeskService/pkg/types"
)

// unitDay события одного номера в один день
type unitDay struct {
	checkingOut *domain.Guest // checkOut == date
	checkingIn  *domain.Guest // checkIn == date
	staying     *domain.Guest // checkIn < date < checkOut
}

// ResolveDay классифицирует каждый номер из units на дату date.
//
// Учитываются только активные записи; записи на номера вне units игнорируются.
// При vacated=true (после часа выезда) записи с checkOut == date не учитываются:
// номер с заездом в этот день показывается просто занятым, без смены гостя.
// Функция чистая: результат зависит только от аргументов и не зависит от порядка records.
func ResolveDay(records []*domain.Guest, date types.DateString, units []domain.Unit, vacated bool) map[string]domain.UnitState {
	days := make(map[string]*unitDay, len(units))
	for _, u := range units {
		days[u.ID] = &unitDay{}
	}

	for _, g := range records {
		if g == nil || !g.IsActive() {
			continue
		}
		day, ok := days[g.UnitID]
		if !ok {
			continue
		}

		if g.CheckOut == date && !vacated {
			day.checkingOut = pick(day.checkingOut, g)
		}
		if g.CheckIn == date {
			day.checkingIn = pick(day.checkingIn, g)
		}
		if g.CheckIn < date && date < g.CheckOut {
			day.staying = pick(day.staying, g)
		}
	}

	result := make(map[string]domain.UnitState, len(units))
	for _, u := range units {
		result[u.ID] = classify(u, days[u.ID])
	}
	return result
}

func classify(u domain.Unit, day *unitDay) domain.UnitState {
	state := domain.UnitState{UnitID: u.ID, Kind: u.Kind, Status: domain.UnitAvailable}

	turnaround := day.checkingOut != nil && day.checkingIn != nil

	switch {
	case turnaround:
		state.Status = domain.UnitTurnaround
		state.OutgoingGuest = day.checkingOut
		state.IncomingGuest = day.checkingIn
	case day.checkingOut != nil:
		state.Status = domain.UnitCheckout
		state.Guest = day.checkingOut
	case day.checkingIn != nil:
		state.Status = domain.UnitOccupied
		state.Guest = day.checkingIn
		state.CheckingIn = true
	case day.staying != nil:
		state.Status = domain.UnitOccupied
		state.Guest = day.staying
	}

	return state
}

// pick детерминированно выбирает одну запись, если на номер пришлось несколько
// (возможно только при нарушенных данных): раньше созданная, затем меньший ID
func pick(current, candidate *domain.Guest) *domain.Guest {
	if current == nil {
		return candidate
	}
	if candidate.CreatedAt.Before(current.CreatedAt) {
		return candidate
	}
	if candidate.CreatedAt.Equal(current.CreatedAt) && candidate.ID < current.ID {
		return candidate
	}
	return current
}
