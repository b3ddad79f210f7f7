package health

import "context"

// PingFunc проверка доступности зависимости (база данных, Redis)
type PingFunc func(ctx context.Context) error

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
