package get_daily_occupancy

import (
	"github.com/m04kA/SMC-FrontDeskService/internal/domain"
	"github.com/m04kA/SMC-FrontDeskService/pkg/types"
)

// Request модель запроса карты занятости
type Request struct {
	Date   types.DateString  // Пустая дата означает сегодня в часовом поясе отеля
	Filter domain.UnitFilter // all, rooms, apartments. Пустой фильтр означает all
}

// Response карта занятости на дату
type Response struct {
	Date       types.DateString
	PastCutoff bool
	Units      []domain.UnitState // в порядке номеров
	Summary    domain.OccupancySummary
	CheckIns   []*domain.Guest // заезды дня
	CheckOuts  []*domain.Guest // выезды дня
	InHouse    []*domain.Guest // ночуют в номере в ночь на дату
}
