package get_repair_types

import "github.com/revivatech/RT-AvailabilityService/internal/domain"

type RepairTypeCatalog interface {
	List() []*domain.RepairType
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
