package update_guest

import "errors"

var (
	// ErrGuestNotFound возвращается, когда запись о проживании не найдена
	ErrGuestNotFound = errors.New("update_guest: guest not found")

	// ErrEmptyPatch возвращается, если запрос не меняет ни одного поля
	ErrEmptyPatch = errors.New("update_guest: nothing to update")

	// ErrInvalidInput возвращается при отсутствии обязательных полей или недопустимых значениях
	ErrInvalidInput = errors.New("update_guest: invalid input data")

	// ErrInvalidDocument возвращается при неверном формате CPF
	ErrInvalidDocument = errors.New("update_guest: invalid document format")

	// ErrInvalidPhone возвращается при неверном формате телефона
	ErrInvalidPhone = errors.New("update_guest: invalid phone format")

	// ErrUnknownUnit возвращается, если номер не входит в фонд отеля
	ErrUnknownUnit = errors.New("update_guest: unit is not part of the inventory")

	// ErrInvalidRange возвращается, если дата выезда не позже даты заезда
	ErrInvalidRange = errors.New("update_guest: check-out must be after check-in")

	// ErrDocumentTaken возвращается, если CPF уже привязан к другому активному проживанию
	ErrDocumentTaken = errors.New("update_guest: document already used by an active stay")

	// ErrUnitNotAvailable возвращается, если номер занят на выбранные даты
	ErrUnitNotAvailable = errors.New("update_guest: unit is not available for the selected dates")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_guest: internal error")
)
