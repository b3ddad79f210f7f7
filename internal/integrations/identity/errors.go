package identity

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверной паре email/пароль или заблокированном пользователе
	ErrInvalidCredentials = errors.New("identity client: invalid credentials")

	// ErrEmailExists возвращается при регистрации на уже занятый email
	ErrEmailExists = errors.New("identity client: email already registered")

	// ErrWeakPassword возвращается, если провайдер отклонил пароль
	ErrWeakPassword = errors.New("identity client: weak password")

	// ErrInvalidEmail возвращается при некорректном email
	ErrInvalidEmail = errors.New("identity client: invalid email")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("identity client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от провайдера
	ErrInvalidResponse = errors.New("identity client: invalid response")
)
