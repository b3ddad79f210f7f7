package get_period_occupancy

import "errors"

var (
	// ErrInvalidDate возвращается при пустой или некорректной дате
	ErrInvalidDate = errors.New("get_period_occupancy: invalid date")

	// ErrInvalidRange возвращается, если дата выезда не позже даты заезда
	ErrInvalidRange = errors.New("get_period_occupancy: checkOut must be after checkIn")

	// ErrInvalidFilter возвращается при неизвестном фильтре номеров
	ErrInvalidFilter = errors.New("get_period_occupancy: invalid unit filter")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_period_occupancy: internal error")
)
