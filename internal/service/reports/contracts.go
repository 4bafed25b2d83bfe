package reports

import (
	"context"
	"time"

	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
)

// ReportRepository интерфейс чтения представлений отчётов
type ReportRepository interface {
	BookingHistory(ctx context.Context, limit int) ([]domain.BookingHistoryRow, error)
	CalendarBookings(ctx context.Context) ([]domain.BookingHistoryRow, error)
	DailyStatus(ctx context.Context) ([]domain.DailyStatusRow, error)
	CapacityUsage(ctx context.Context) ([]domain.CapacityUsageRow, error)
	DepartmentMonthly(ctx context.Context) ([]domain.DepartmentMonthlyRow, error)
	EmployeeYearly(ctx context.Context) ([]domain.EmployeeYearlyRow, error)
	HolidayOverview(ctx context.Context) ([]domain.HolidayOverviewRow, error)
}

// HolidayRepository интерфейс чтения таблицы праздников
type HolidayRepository interface {
	List(ctx context.Context) ([]domain.Holiday, error)
}

// LookupProvider источник снимка справочников
type LookupProvider interface {
	Snapshot() *domain.Lookup
}

// DataSource сообщает, настроен ли источник данных
type DataSource interface {
	Configured() bool
}

// MetricsRecorder счётчик загрузок отчётов
type MetricsRecorder interface {
	IncReportLoad(report string, ok bool)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
