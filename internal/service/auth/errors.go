package auth

import "errors"

var (
	// ErrInvalidPassword возвращается при неверном пароле администратора
	ErrInvalidPassword = errors.New("invalid password")

	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("session not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
