package availability

import (
	"context"

	"github.com/m04kA/SMC-FrontDeskService/internal/domain"
)

// GuestRepository интерфейс репозитория гостей
type GuestRepository interface {
	List(ctx context.Context, filter domain.GuestFilter) ([]*domain.Guest, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
