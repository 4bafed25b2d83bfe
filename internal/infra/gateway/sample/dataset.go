package sample

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-OfficeBooking/internal/infra/gateway"
)

// buildDataset создает демонстрационный набор данных относительно текущей даты
func buildDataset(now time.Time) map[string][]gateway.Row {
	today := now.Format("2006-01-02")
	year := now.Year()
	monthStart := now.Format("2006-01") + "-01"

	return map[string][]gateway.Row{
		gateway.TableBookingStrategies: {
			{"code": "UNLIMITED", "display_name": "Unlimited", "description": "Employees may book without a seat or capacity limit"},
			{"code": "CAPACITY", "display_name": "Capacity Limited", "description": "Daily bookings are limited by the department seat capacity"},
			{"code": "ASSIGNED", "display_name": "Seat Assigned", "description": "Every booking must reference one of the department seats"},
		},
		gateway.TableOffices: {
			{"id": "office-1", "name": "Bangkok HQ"},
			{"id": "office-2", "name": "Remote Hub"},
		},
		gateway.TableDepartments: {
			{"id": "dept-1", "name": "Engineering", "office_id": "office-1", "booking_strategy": "ASSIGNED", "seat_capacity": nil, "is_active": true},
			{"id": "dept-2", "name": "HR", "office_id": "office-1", "booking_strategy": "UNLIMITED", "seat_capacity": nil, "is_active": true},
			{"id": "dept-3", "name": "Support", "office_id": "office-1", "booking_strategy": "CAPACITY", "seat_capacity": 20, "is_active": true},
			{"id": "dept-4", "name": "Sales", "office_id": "office-2", "booking_strategy": "CAPACITY", "seat_capacity": 15, "is_active": true},
		},
		gateway.TableDepartmentSeats: {
			{"id": "seat-1", "seat_code": "ENG-01", "department_id": "dept-1"},
			{"id": "seat-2", "seat_code": "ENG-02", "department_id": "dept-1"},
			{"id": "seat-3", "seat_code": "SALE-01", "department_id": "dept-4"},
			{"id": "seat-4", "seat_code": "SALE-02", "department_id": "dept-4"},
		},
		gateway.TableBookingPurposes: {
			{"id": "purpose-1", "name": "Team Sync-Up"},
			{"id": "purpose-2", "name": "Client Meeting"},
			{"id": "purpose-3", "name": "Training Session"},
		},
		gateway.TableEmployeeProfiles: {
			employee("user-1", "EMP001", "Arthit", "Prasert", "dept-1", fmt.Sprintf("%d-01-02", year)),
			employee("user-2", "EMP002", "Warin", "Somsri", "dept-3", fmt.Sprintf("%d-02-10", year)),
			employee("user-3", "EMP003", "Nicha", "Rattanakorn", "dept-2", fmt.Sprintf("%d-03-05", year)),
			employee("user-4", "EMP004", "Phuwan", "Chantarangkul", "dept-4", fmt.Sprintf("%d-04-18", year)),
		},
		gateway.TableBookings:        {},
		gateway.TableCompanyHolidays: {},
		gateway.ViewEmployeeBookingHistory: {
			{
				"booking_id": "b1", "booking_date": today, "department_name": "Engineering", "office_name": "Bangkok HQ",
				"status": "BOOKED", "purpose_name": "Team Sync-Up", "seat_code": "ENG-01",
				"employee_code": "EMP001", "employee_name": "Arthit Prasert",
				"department_id": "dept-1", "seat_id": "seat-1", "purpose_id": "purpose-1", "user_id": "user-1",
			},
			{
				"booking_id": "b2", "booking_date": today, "department_name": "Support", "office_name": "Bangkok HQ",
				"status": "BOOKED", "purpose_name": "Client Meeting", "seat_code": nil,
				"employee_code": "EMP002", "employee_name": "Warin Somsri",
				"department_id": "dept-3", "seat_id": nil, "purpose_id": "purpose-2", "user_id": "user-2",
			},
		},
		gateway.ViewBookingStatusDailySummary: {
			{"booking_date": today, "purpose_name": "Team Sync-Up", "status": "BOOKED", "total": 12},
			{"booking_date": today, "purpose_name": "Client Meeting", "status": "BOOKED", "total": 7},
			{"booking_date": today, "purpose_name": "Training Session", "status": "CANCELLED", "total": 1},
		},
		gateway.ViewDepartmentDailyCapacity: {
			{"booking_date": today, "department_name": "Support", "office_name": "Bangkok HQ", "active_bookings": 18, "seat_capacity": 20, "remaining_capacity": 2},
			{"booking_date": today, "department_name": "Engineering", "office_name": "Bangkok HQ", "active_bookings": 10, "seat_capacity": nil, "remaining_capacity": nil},
		},
		gateway.ViewDepartmentMonthlyAttendance: {
			{"department_id": "dept-1", "department_name": "Engineering", "office_name": "Bangkok HQ", "month_start": monthStart, "total_bookings": 42},
			{"department_id": "dept-2", "department_name": "HR", "office_name": "Bangkok HQ", "month_start": monthStart, "total_bookings": 25},
		},
		gateway.ViewEmployeeYearlyAttendance: {
			{"user_id": "user-1", "employee_code": "EMP001", "first_name": "Arthit", "last_name": "Prasert", "year": year, "total_booked_days": 56},
			{"user_id": "user-2", "employee_code": "EMP002", "first_name": "Warin", "last_name": "Somsri", "year": year, "total_booked_days": 48},
		},
		gateway.ViewOfficeHolidayOverview: {
			{"holiday_date": fmt.Sprintf("%d-01-01", year), "office_id": nil, "office_name": "All Offices", "holiday_name": "New Year's Day", "description": "Company closed"},
			{"holiday_date": fmt.Sprintf("%d-04-13", year), "office_id": "office-1", "office_name": "Bangkok HQ", "holiday_name": "Songkran", "description": "Head office only"},
		},
	}
}

func employee(userID, code, first, last, departmentID, startDate string) gateway.Row {
	return gateway.Row{
		"user_id":       userID,
		"employee_code": code,
		"first_name":    first,
		"last_name":     last,
		"email":         fmt.Sprintf("%s@example.com", lowerASCII(first)),
		"department_id": departmentID,
		"start_date":    startDate,
		"is_active":     true,
	}
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
