package register_guest

import (
	"context"

	"github.com/m04kA/SMC-FrontDeskService/internal/domain"
	"github.com/m04kA/SMC-FrontDeskService/pkg/types"
)

// GuestRepository интерфейс репозитория гостей
type GuestRepository interface {
	Create(ctx context.Context, guest *domain.Guest) (*domain.Guest, error)
}

// AvailabilityChecker проверки пересечения проживаний и уникальности CPF
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context, unitID string, checkIn, checkOut types.DateString, excludeID string) (bool, error)
	IsDocumentTaken(ctx context.Context, document string, excludeID string) (bool, error)
}

// UnitInventory набор номеров отеля
type UnitInventory interface {
	Contains(unitID string) bool
}

// Validator валидатор полей формы
type Validator interface {
	Struct(s interface{}) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics бизнес-метрики
type Metrics interface {
	IncGuestRegistered(accommodationType string)
	IncConflict(reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
