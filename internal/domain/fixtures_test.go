package domain

import (
	"github.com/m04kA/SMC-OfficeBooking/pkg/ptr"
	"github.com/m04kA/SMC-OfficeBooking/pkg/types"
)

var testToday = types.NewDate(2024, 6, 10)

func testLookup() *Lookup {
	return &Lookup{
		Offices: []Office{
			{ID: "office-1", Name: "Bangkok HQ"},
			{ID: "office-2", Name: "Remote Hub"},
		},
		Departments: []Department{
			{ID: "dept-1", OfficeID: "office-1", Name: "Engineering", BookingStrategy: StrategyAssigned, IsActive: true},
			{ID: "dept-2", OfficeID: "office-1", Name: "HR", BookingStrategy: StrategyUnlimited, IsActive: true},
			{ID: "dept-3", OfficeID: "office-1", Name: "Support", BookingStrategy: StrategyCapacity, SeatCapacity: ptr.Ptr(20), IsActive: true},
			{ID: "dept-4", OfficeID: "office-2", Name: "Sales", BookingStrategy: StrategyCapacity, SeatCapacity: ptr.Ptr(15), IsActive: true},
		},
		Seats: []Seat{
			{ID: "seat-1", SeatCode: "ENG-01", DepartmentID: "dept-1"},
			{ID: "seat-2", SeatCode: "ENG-02", DepartmentID: "dept-1"},
			{ID: "seat-3", SeatCode: "SALE-01", DepartmentID: "dept-4"},
		},
		Purposes: []Purpose{
			{ID: "purpose-1", Name: "Team Sync-Up"},
			{ID: "purpose-2", Name: "Client Meeting"},
		},
		Employees: []Employee{
			{UserID: "user-1", EmployeeCode: "EMP001", FirstName: "Arthit", LastName: "Prasert", DepartmentID: ptr.Ptr("dept-1"), IsActive: true},
			{UserID: "user-2", EmployeeCode: "EMP002", FirstName: "Warin", LastName: "Somsri", DepartmentID: ptr.Ptr("dept-3"), IsActive: true},
			{UserID: "user-3", EmployeeCode: "EMP003", FirstName: "Nicha", LastName: "Rattanakorn", DepartmentID: ptr.Ptr("dept-2"), IsActive: true},
			{UserID: "user-4", EmployeeCode: "EMP004", FirstName: "Phuwan", LastName: "Chantarangkul", DepartmentID: ptr.Ptr("dept-4"), IsActive: true},
			{UserID: "user-5", EmployeeCode: "EMP010", FirstName: "Somchai", LastName: "Dee", IsActive: true},
		},
		Strategies: DefaultStrategies,
	}
}
