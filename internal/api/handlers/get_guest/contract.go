package get_guest

import (
	"context"

	"github.com/m04kA/SMC-FrontDeskService/internal/service/guests/models"
)

type GuestService interface {
	GetByID(ctx context.Context, id string) (*models.GuestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
