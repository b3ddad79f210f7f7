package check_document

import "context"

type AvailabilityService interface {
	IsDocumentTaken(ctx context.Context, document string, excludeID string) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
