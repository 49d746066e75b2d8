package catalog

import "errors"

var (
	// ErrRepairTypeNotFound возвращается, когда тип ремонта отсутствует в справочнике
	ErrRepairTypeNotFound = errors.New("catalog: repair type not found")
)
