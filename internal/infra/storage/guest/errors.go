package guest

import "errors"

var (
	// ErrGuestNotFound возвращается, когда запись о проживании не найдена
	ErrGuestNotFound = errors.New("guest.repository: guest not found")

	// ErrEmptyPatch возвращается, если в обновлении нет ни одного поля
	ErrEmptyPatch = errors.New("guest.repository: nothing to update")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("guest.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("guest.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("guest.repository: failed to scan row")
)
