package get_period_occupancy

import (
	"github.com/m04kA/SMC-FrontDeskService/internal/domain"
	"github.com/m04kA/SMC-FrontDeskService/pkg/types"
)

// Request модель запроса доступности за период [CheckIn, CheckOut)
type Request struct {
	CheckIn  types.DateString
	CheckOut types.DateString
	Filter   domain.UnitFilter // all, rooms, apartments. Пустой фильтр означает all
}

// UnitPeriodState занятость номера за период
type UnitPeriodState struct {
	UnitID string
	Kind   domain.UnitKind
	Guest  *domain.Guest   // первое по дате заезда пересекающееся проживание, nil если номер свободен
	Guests []*domain.Guest // все пересекающиеся проживания по дате заезда
}

// Available номер свободен на весь период
func (s UnitPeriodState) Available() bool {
	return s.Guest == nil
}

// Response карта доступности за период
type Response struct {
	CheckIn   types.DateString
	CheckOut  types.DateString
	Units     []UnitPeriodState // в порядке номеров
	Available int
	Occupied  int
}
