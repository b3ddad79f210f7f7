package get_period_occupancy

import (
	"context"

	"github.com/m04kA/SMC-FrontDeskService/internal/domain"
)

// GuestRepository интерфейс репозитория гостей
type GuestRepository interface {
	List(ctx context.Context, filter domain.GuestFilter) ([]*domain.Guest, error)
}

// UnitInventory набор номеров отеля
type UnitInventory interface {
	Units(filter domain.UnitFilter) []domain.Unit
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
