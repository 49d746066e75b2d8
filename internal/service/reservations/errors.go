package reservations

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reservations.service: invalid input data")

	// ErrNotFound возвращается, когда резервация на слот не существует
	ErrNotFound = errors.New("reservations.service: reservation not found")

	// ErrExpired возвращается, когда резервация уже истекла
	ErrExpired = errors.New("reservations.service: reservation has expired")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations.service: internal error")
)
