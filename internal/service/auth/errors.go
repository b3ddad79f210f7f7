package auth

import "errors"

var (
	// ErrInvalidInput возвращается при пустом email или пароле
	ErrInvalidInput = errors.New("auth: invalid input data")

	// ErrInvalidCredentials возвращается при неверной паре email/пароль
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrEmailTaken возвращается при регистрации на уже занятый email
	ErrEmailTaken = errors.New("auth: email already registered")

	// ErrWeakPassword возвращается, если пароль отклонён провайдером
	ErrWeakPassword = errors.New("auth: weak password")

	// ErrInvalidEmail возвращается при некорректном email
	ErrInvalidEmail = errors.New("auth: invalid email")

	// ErrInvalidToken возвращается для неподписанного, просроченного или отозванного токена
	ErrInvalidToken = errors.New("auth: invalid session token")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
