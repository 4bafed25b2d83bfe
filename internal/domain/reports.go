package domain

import "github.com/m04kA/SMC-OfficeBooking/pkg/types"

// BookingHistoryRow строка представления employee_booking_history.
// Поля идентификаторов заполняются, если представление их отдаёт.
type BookingHistoryRow struct {
	BookingID      string        `json:"booking_id"`
	BookingDate    types.Date    `json:"booking_date"`
	DepartmentName string        `json:"department_name"`
	OfficeName     string        `json:"office_name"`
	Status         BookingStatus `json:"status"`
	PurposeName    *string       `json:"purpose_name"`
	SeatCode       *string       `json:"seat_code"`
	EmployeeCode   string        `json:"employee_code"`
	EmployeeName   string        `json:"employee_name"`

	DepartmentID *string `json:"department_id,omitempty"`
	SeatID       *string `json:"seat_id,omitempty"`
	PurposeID    *string `json:"purpose_id,omitempty"`
	UserID       *string `json:"user_id,omitempty"`
	Note         *string `json:"note,omitempty"`
}

// DailyStatusRow строка представления booking_status_daily_summary
type DailyStatusRow struct {
	BookingDate types.Date    `json:"booking_date"`
	PurposeName *string       `json:"purpose_name"`
	Status      BookingStatus `json:"status"`
	Total       int           `json:"total"`
}

// CapacityUsageRow строка представления department_daily_capacity_usage
type CapacityUsageRow struct {
	BookingDate       types.Date `json:"booking_date"`
	DepartmentName    string     `json:"department_name"`
	OfficeName        string     `json:"office_name"`
	ActiveBookings    int        `json:"active_bookings"`
	SeatCapacity      *int       `json:"seat_capacity"`
	RemainingCapacity *int       `json:"remaining_capacity"`
}

// Remaining возвращает остаток мест: значение представления,
// иначе вместимость минус активные бронирования. nil, если вместимость не ограничена.
func (r *CapacityUsageRow) Remaining() *int {
	if r.RemainingCapacity != nil {
		v := *r.RemainingCapacity
		return &v
	}
	if r.SeatCapacity == nil {
		return nil
	}
	v := *r.SeatCapacity - r.ActiveBookings
	return &v
}

// IsFull возвращает true, если свободных мест не осталось
func (r *CapacityUsageRow) IsFull() bool {
	remaining := r.Remaining()
	return remaining != nil && *remaining <= 0
}

// OccupancyRate процент занятости (0-100), 0 для неограниченных отделов
func (r *CapacityUsageRow) OccupancyRate() float64 {
	if r.SeatCapacity == nil || *r.SeatCapacity == 0 {
		return 0
	}
	return float64(r.ActiveBookings) / float64(*r.SeatCapacity) * 100
}

// DepartmentMonthlyRow строка представления department_monthly_attendance
type DepartmentMonthlyRow struct {
	DepartmentID   string     `json:"department_id"`
	DepartmentName string     `json:"department_name"`
	OfficeName     string     `json:"office_name"`
	MonthStart     types.Date `json:"month_start"`
	TotalBookings  int        `json:"total_bookings"`
}

// EmployeeYearlyRow строка представления employee_yearly_attendance
type EmployeeYearlyRow struct {
	UserID          string `json:"user_id"`
	EmployeeCode    string `json:"employee_code"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Year            int    `json:"year"`
	TotalBookedDays int    `json:"total_booked_days"`
}

// HolidayOverviewRow строка обзора праздников (office_holiday_overview или company_holidays
// с денормализованным названием офиса)
type HolidayOverviewRow struct {
	ID          string     `json:"id"`
	HolidayDate types.Date `json:"holiday_date"`
	OfficeID    *string    `json:"office_id"`
	OfficeName  string     `json:"office_name"`
	HolidayName string     `json:"holiday_name"`
	Description *string    `json:"description"`
}
