package update_booking

import (
	"context"

	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Update(ctx context.Context, id string, form *domain.BookingForm) error
}

// ReportRefresher обновление отчётов, зависящих от бронирований
type ReportRefresher interface {
	RefreshBookingReports(ctx context.Context)
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
