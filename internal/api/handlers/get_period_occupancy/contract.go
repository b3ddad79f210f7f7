package get_period_occupancy

import (
	"context"

	getPeriodOccupancy "github.com/m04kA/SMC-FrontDeskService/internal/usecase/get_period_occupancy"
)

type GetPeriodOccupancyUseCase interface {
	Execute(ctx context.Context, req *getPeriodOccupancy.Request) (*getPeriodOccupancy.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
