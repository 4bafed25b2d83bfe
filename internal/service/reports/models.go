package reports

import "time"

// Name имя отчёта в API
type Name string

const (
	ReportCalendar       Name = "calendar"
	ReportHistory        Name = "history"
	ReportDailyStatus    Name = "daily-status"
	ReportCapacity       Name = "capacity"
	ReportDeptMonthly    Name = "dept-monthly"
	ReportEmployeeYearly Name = "employee-yearly"
	ReportHolidays       Name = "holidays"
)

// AllReports все отчёты в порядке отображения
var AllReports = []Name{
	ReportCalendar,
	ReportHistory,
	ReportDailyStatus,
	ReportCapacity,
	ReportDeptMonthly,
	ReportEmployeeYearly,
	ReportHolidays,
}

// BookingReports отчёты, зависящие от бронирований и обновляемые после записи
var BookingReports = []Name{
	ReportCalendar,
	ReportHistory,
	ReportDailyStatus,
	ReportCapacity,
}

// ParseName проверяет имя отчёта
func ParseName(s string) (Name, error) {
	for _, name := range AllReports {
		if string(name) == s {
			return name, nil
		}
	}
	return "", ErrUnknownReport
}

// usesMonth сообщает, фильтруется ли отчёт по месяцу
func (n Name) usesMonth() bool {
	return n == ReportCalendar || n == ReportDeptMonthly
}

// Snapshot состояние отчёта: строки последней загрузки
type Snapshot struct {
	Report   Name        `json:"report"`
	Loading  bool        `json:"loading"`
	Month    string      `json:"month,omitempty"`
	Count    int         `json:"count"`
	Rows     interface{} `json:"rows"`
	LoadedAt *time.Time  `json:"loaded_at,omitempty"`
}
