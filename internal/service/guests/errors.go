package guests

import "errors"

var (
	// ErrGuestNotFound возвращается, когда запись о проживании не найдена
	ErrGuestNotFound = errors.New("guests: guest not found")

	// ErrInvalidInput возвращается при некорректных параметрах запроса
	ErrInvalidInput = errors.New("guests: invalid input data")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("guests: invalid guest status")

	// ErrDocumentTaken возвращается, если CPF уже привязан к другому активному проживанию
	ErrDocumentTaken = errors.New("guests: document already used by an active stay")

	// ErrUnitNotAvailable возвращается, если номер занят на даты возобновляемого проживания
	ErrUnitNotAvailable = errors.New("guests: unit is not available for the stay dates")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("guests: internal error")
)
