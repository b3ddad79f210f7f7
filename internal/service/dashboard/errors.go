package dashboard

import "errors"

var (
	// ErrUnknownMetric возвращается при запросе списка по неизвестной карточке
	ErrUnknownMetric = errors.New("dashboard: unknown metric")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("dashboard: internal error")
)
