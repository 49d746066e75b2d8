package reservations

import "errors"

var (
	// ErrAlreadyReserved возвращается, когда на слот уже есть живая резервация
	ErrAlreadyReserved = errors.New("reservations: slot is already reserved")

	// ErrNotFound возвращается, когда резервация на слот не существует
	ErrNotFound = errors.New("reservations: reservation not found")

	// ErrExpired возвращается при попытке продлить уже истёкшую резервацию
	ErrExpired = errors.New("reservations: reservation has expired")
)
