package gateway

import "fmt"

// Таблицы
const (
	TableOffices           = "offices"
	TableDepartments       = "departments"
	TableDepartmentSeats   = "department_seats"
	TableBookingPurposes   = "booking_purposes"
	TableEmployeeProfiles  = "employee_profiles"
	TableBookingStrategies = "department_booking_strategies"
	TableBookings          = "bookings"
	TableCompanyHolidays   = "company_holidays"
)

// Представления (только чтение)
const (
	ViewEmployeeBookingHistory      = "employee_booking_history"
	ViewBookingStatusDailySummary   = "booking_status_daily_summary"
	ViewDepartmentDailyCapacity     = "department_daily_capacity_usage"
	ViewDepartmentMonthlyAttendance = "department_monthly_attendance"
	ViewEmployeeYearlyAttendance    = "employee_yearly_attendance"
	ViewOfficeHolidayOverview       = "office_holiday_overview"
)

// primaryKeys первичный ключ каждой таблицы
var primaryKeys = map[string]string{
	TableOffices:           "id",
	TableDepartments:       "id",
	TableDepartmentSeats:   "id",
	TableBookingPurposes:   "id",
	TableEmployeeProfiles:  "user_id",
	TableBookingStrategies: "code",
	TableBookings:          "id",
	TableCompanyHolidays:   "id",
}

var views = map[string]struct{}{
	ViewEmployeeBookingHistory:      {},
	ViewBookingStatusDailySummary:   {},
	ViewDepartmentDailyCapacity:     {},
	ViewDepartmentMonthlyAttendance: {},
	ViewEmployeeYearlyAttendance:    {},
	ViewOfficeHolidayOverview:       {},
}

// IsView сообщает, является ли ресурс представлением
func IsView(resource string) bool {
	_, ok := views[resource]
	return ok
}

// IsKnown сообщает, входит ли ресурс в каталог
func IsKnown(resource string) bool {
	_, table := primaryKeys[resource]
	return table || IsView(resource)
}

// PrimaryKey возвращает первичный ключ таблицы
func PrimaryKey(table string) (string, error) {
	if IsView(table) {
		return "", fmt.Errorf("%w: %s", ErrReadOnlyResource, table)
	}
	key, ok := primaryKeys[table]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownResource, table)
	}
	return key, nil
}

// CheckReadable проверяет ресурс перед чтением
func CheckReadable(resource string) error {
	if !IsKnown(resource) {
		return fmt.Errorf("%w: %s", ErrUnknownResource, resource)
	}
	return nil
}

// CheckWritable проверяет ресурс перед записью и возвращает его первичный ключ
func CheckWritable(table string) (string, error) {
	return PrimaryKey(table)
}
