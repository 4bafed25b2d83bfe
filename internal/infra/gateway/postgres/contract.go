package postgres

import "github.com/m04kA/SMC-OfficeBooking/pkg/dbmetrics"

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
