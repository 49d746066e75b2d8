package bookings

import "github.com/revivatech/RT-AvailabilityService/pkg/dbmetrics"

// Переиспользуем интерфейс исполнителя запросов из dbmetrics
// Поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
