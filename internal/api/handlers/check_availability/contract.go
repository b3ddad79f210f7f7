package check_availability

import (
	"context"

	"github.com/m04kA/SMC-FrontDeskService/pkg/types"
)

type AvailabilityService interface {
	IsAvailable(ctx context.Context, unitID string, checkIn, checkOut types.DateString, excludeID string) (bool, error)
}

type UnitInventory interface {
	Contains(unitID string) bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
