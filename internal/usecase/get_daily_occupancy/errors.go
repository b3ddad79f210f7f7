package get_daily_occupancy

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("get_daily_occupancy: invalid date")

	// ErrInvalidFilter возвращается при неизвестном фильтре номеров
	ErrInvalidFilter = errors.New("get_daily_occupancy: invalid unit filter")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_daily_occupancy: internal error")
)
