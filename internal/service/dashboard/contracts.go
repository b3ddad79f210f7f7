package dashboard

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

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Clock текущая дата в часовом поясе отеля
type Clock interface {
	Today(now time.Time) types.DateString
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
