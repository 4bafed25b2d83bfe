package domain

import (
	"strings"

	"github.com/m04kA/SMC-OfficeBooking/pkg/types"
)

// Employee профиль сотрудника, идентифицируется user_id
type Employee struct {
	UserID       string     `json:"user_id"`
	EmployeeCode string     `json:"employee_code"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Email        *string    `json:"email"`
	DepartmentID *string    `json:"department_id"`
	StartDate    types.Date `json:"start_date"`
	IsActive     bool       `json:"is_active"`
}

// FullName возвращает "имя фамилия"
func (e *Employee) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(e.FirstName) + " " + strings.TrimSpace(e.LastName))
}

// Department возвращает идентификатор отдела или пустую строку
func (e *Employee) Department() string {
	if e.DepartmentID == nil {
		return ""
	}
	return *e.DepartmentID
}

// FormatEmployeeOption форматирует сотрудника как "код - имя фамилия",
// пропуская пустые части
func FormatEmployeeOption(e Employee) string {
	parts := make([]string, 0, 2)
	if e.EmployeeCode != "" {
		parts = append(parts, e.EmployeeCode)
	}
	if name := e.FullName(); name != "" {
		parts = append(parts, name)
	}
	return strings.Join(parts, " - ")
}
