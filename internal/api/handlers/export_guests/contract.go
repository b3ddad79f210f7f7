package export_guests

import (
	"context"

	"github.com/m04kA/SMC-FrontDeskService/internal/service/guests/models"
)

type GuestService interface {
	Export(ctx context.Context, req *models.ListGuestsRequest) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
