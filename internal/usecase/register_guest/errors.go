package register_guest

import "errors"

var (
	// ErrInvalidInput возвращается при отсутствии обязательных полей или недопустимых значениях
	ErrInvalidInput = errors.New("register_guest: invalid input data")

	// ErrInvalidDocument возвращается при неверном формате CPF
	ErrInvalidDocument = errors.New("register_guest: invalid document format")

	// ErrInvalidPhone возвращается при неверном формате телефона
	ErrInvalidPhone = errors.New("register_guest: invalid phone format")

	// ErrUnknownUnit возвращается, если номер не входит в фонд отеля
	ErrUnknownUnit = errors.New("register_guest: unit is not part of the inventory")

	// ErrInvalidRange возвращается, если дата выезда не позже даты заезда
	ErrInvalidRange = errors.New("register_guest: check-out must be after check-in")

	// ErrDocumentTaken возвращается, если CPF уже привязан к активному проживанию
	ErrDocumentTaken = errors.New("register_guest: document already used by an active stay")

	// ErrUnitNotAvailable возвращается, если номер занят на выбранные даты
	ErrUnitNotAvailable = errors.New("register_guest: unit is not available for the selected dates")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("register_guest: internal error")
)
