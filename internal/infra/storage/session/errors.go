package session

import "errors"

var (
	// ErrStore возвращается при ошибках хранилища отозванных токенов
	ErrStore = errors.New("session.store: storage error")
)
