package register_guest

import (
	"context"

	registerGuest "github.com/m04kA/SMC-FrontDeskService/internal/usecase/register_guest"
)

type RegisterGuestUseCase interface {
	Execute(ctx context.Context, req *registerGuest.Request) (*registerGuest.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
