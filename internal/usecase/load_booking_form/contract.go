package load_booking_form

import (
	"context"

	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
}

// CalendarProvider строки календаря, используемые без настроенного источника данных
type CalendarProvider interface {
	CalendarRows(ctx context.Context) []domain.BookingHistoryRow
}

// LookupProvider источник снимка справочников
type LookupProvider interface {
	Snapshot() *domain.Lookup
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
