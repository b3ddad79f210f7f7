package get_daily_occupancy

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FrontDeskService/internal/domain"
	"github.com/m04kA/SMC-FrontDeskService/pkg/types"
)

// GuestRepository интерфейс репозитория гостей
type GuestRepository interface {
	List(ctx context.Context, filter domain.GuestFilter) ([]*domain.Guest, error)
}

// UnitInventory набор номеров отеля
type UnitInventory interface {
	Units(filter domain.UnitFilter) []domain.Unit
}

// Clock текущая дата и правило выезда в часовом поясе отеля
type Clock interface {
	CutoffPolicy
	Today(now time.Time) types.DateString
}

// Metrics бизнес-метрики
type Metrics interface {
	IncOccupancyResolve(pastCutoff bool)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
