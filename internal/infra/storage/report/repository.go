package report

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
	"github.com/m04kA/SMC-OfficeBooking/internal/infra/gateway"
)

// Repository чтение агрегирующих представлений отчётов.
// Агрегация выполняется источником данных, здесь только выборка.
type Repository struct {
	gw Gateway
}

// NewRepository создает новый экземпляр репозитория отчётов
func NewRepository(gw Gateway) *Repository {
	return &Repository{gw: gw}
}

// BookingHistory возвращает последние строки истории бронирований (limit 0 - без ограничения)
func (r *Repository) BookingHistory(ctx context.Context, limit int) ([]domain.BookingHistoryRow, error) {
	var rows []domain.BookingHistoryRow
	err := r.read(ctx, "BookingHistory", gateway.ViewEmployeeBookingHistory, gateway.Query{Limit: limit}, &rows)
	return rows, err
}

// CalendarBookings возвращает историю бронирований по дате для календаря
func (r *Repository) CalendarBookings(ctx context.Context) ([]domain.BookingHistoryRow, error) {
	var rows []domain.BookingHistoryRow
	err := r.read(ctx, "CalendarBookings", gateway.ViewEmployeeBookingHistory, gateway.Query{
		Order: []gateway.Order{gateway.Asc("booking_date")},
	}, &rows)
	return rows, err
}

// DailyStatus возвращает сводку статусов по дням
func (r *Repository) DailyStatus(ctx context.Context) ([]domain.DailyStatusRow, error) {
	var rows []domain.DailyStatusRow
	err := r.read(ctx, "DailyStatus", gateway.ViewBookingStatusDailySummary, gateway.Query{}, &rows)
	return rows, err
}

// CapacityUsage возвращает загрузку отделов по дням
func (r *Repository) CapacityUsage(ctx context.Context) ([]domain.CapacityUsageRow, error) {
	var rows []domain.CapacityUsageRow
	err := r.read(ctx, "CapacityUsage", gateway.ViewDepartmentDailyCapacity, gateway.Query{}, &rows)
	return rows, err
}

// DepartmentMonthly возвращает посещаемость отделов по месяцам
func (r *Repository) DepartmentMonthly(ctx context.Context) ([]domain.DepartmentMonthlyRow, error) {
	var rows []domain.DepartmentMonthlyRow
	err := r.read(ctx, "DepartmentMonthly", gateway.ViewDepartmentMonthlyAttendance, gateway.Query{}, &rows)
	return rows, err
}

// EmployeeYearly возвращает посещаемость сотрудников по годам
func (r *Repository) EmployeeYearly(ctx context.Context) ([]domain.EmployeeYearlyRow, error) {
	var rows []domain.EmployeeYearlyRow
	err := r.read(ctx, "EmployeeYearly", gateway.ViewEmployeeYearlyAttendance, gateway.Query{}, &rows)
	return rows, err
}

// HolidayOverview возвращает обзор праздников по офисам
func (r *Repository) HolidayOverview(ctx context.Context) ([]domain.HolidayOverviewRow, error) {
	var rows []domain.HolidayOverviewRow
	err := r.read(ctx, "HolidayOverview", gateway.ViewOfficeHolidayOverview, gateway.Query{}, &rows)
	return rows, err
}

func (r *Repository) read(ctx context.Context, op, view string, q gateway.Query, dest interface{}) error {
	rows, err := r.gw.Select(ctx, view, q)
	if err != nil {
		return fmt.Errorf("%w: %s - select %s: %w", ErrExecQuery, op, view, err)
	}
	if err := gateway.Decode(rows, dest); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDecode, op, err)
	}
	return nil
}
