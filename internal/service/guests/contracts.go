package guests

import (
	"context"

	"github.com/m04kA/SMC-FrontDeskService/internal/domain"
	"github.com/m04kA/SMC-FrontDeskService/pkg/types"
)

// GuestRepository интерфейс репозитория гостей
type GuestRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Guest, error)
	List(ctx context.Context, filter domain.GuestFilter) ([]*domain.Guest, error)
	Update(ctx context.Context, id string, patch domain.GuestPatch) (*domain.Guest, error)
	Delete(ctx context.Context, id string) error
}

// AvailabilityChecker проверки пересечения проживаний и уникальности CPF
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context, unitID string, checkIn, checkOut types.DateString, excludeID string) (bool, error)
	IsDocumentTaken(ctx context.Context, document string, excludeID string) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
