package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CreateBatch(ctx context.Context, bookings []*domain.Booking) ([]string, error)
}

// LookupProvider источник снимка справочников
type LookupProvider interface {
	Snapshot() *domain.Lookup
}

// ReportRefresher обновление отчётов, зависящих от бронирований
type ReportRefresher interface {
	RefreshBookingReports(ctx context.Context)
}

// DataSource сообщает, настроен ли источник данных
type DataSource interface {
	Configured() bool
}

// MetricsRecorder счётчик созданных бронирований
type MetricsRecorder interface {
	IncBookingsCreated(department string, count int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
