package update_guest

import (
	"context"

	updateGuest "github.com/m04kA/SMC-FrontDeskService/internal/usecase/update_guest"
)

type UpdateGuestUseCase interface {
	Execute(ctx context.Context, req *updateGuest.Request) (*updateGuest.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
