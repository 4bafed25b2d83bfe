package holidays

import (
	"context"

	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
)

// HolidayRepository интерфейс репозитория праздников
type HolidayRepository interface {
	Create(ctx context.Context, h *domain.Holiday) (string, error)
	Update(ctx context.Context, id string, h *domain.Holiday) error
	Delete(ctx context.Context, id string) error
}

// OverviewProvider обзор праздников, хранимый сервисом отчётов
type OverviewProvider interface {
	Holidays(ctx context.Context) []domain.HolidayOverviewRow
	ReloadHolidays(ctx context.Context) []domain.HolidayOverviewRow
}

// DataSource сообщает, настроен ли источник данных
type DataSource interface {
	Configured() bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
