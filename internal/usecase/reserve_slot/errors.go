package reserve_slot

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidSlotID возвращается, когда slotId не раскладывается на дату и время
	ErrInvalidSlotID = errors.New("invalid slot id")

	// ErrInvalidDate возвращается, когда дата слота в прошлом
	ErrInvalidDate = errors.New("invalid slot date")

	// ErrSlotUnavailable возвращается, когда слот недоступен по расписанию
	ErrSlotUnavailable = errors.New("slot is not available")

	// ErrAlreadyReserved возвращается, когда на слот уже есть живая резервация
	ErrAlreadyReserved = errors.New("slot is already reserved")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
