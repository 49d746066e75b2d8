package get_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrRepairTypeNotFound возвращается, когда тип ремонта отсутствует в справочнике
	ErrRepairTypeNotFound = errors.New("repair type not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
