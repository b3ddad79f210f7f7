package update_guest_status

import (
	"context"

	"github.com/m04kA/SMC-FrontDeskService/internal/service/guests/models"
)

type GuestService interface {
	UpdateStatus(ctx context.Context, id string, status string) (*models.GuestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
