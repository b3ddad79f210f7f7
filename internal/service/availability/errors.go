package availability

import "errors"

var (
	// ErrInvalidRange возвращается, если дата выезда не позже даты заезда
	ErrInvalidRange = errors.New("availability: check-out must be after check-in")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)
