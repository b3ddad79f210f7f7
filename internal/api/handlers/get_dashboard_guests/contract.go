package get_dashboard_guests

import (
	"context"

	guestModels "github.com/m04kA/SMC-FrontDeskService/internal/service/guests/models"
)

type DashboardService interface {
	GuestsByMetric(ctx context.Context, metric string) (*guestModels.GuestListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
