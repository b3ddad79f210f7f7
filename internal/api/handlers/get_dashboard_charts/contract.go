package get_dashboard_charts

import (
	"context"

	"github.com/m04kA/SMC-FrontDeskService/internal/service/dashboard/models"
)

type DashboardService interface {
	Charts(ctx context.Context) (*models.ChartsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
