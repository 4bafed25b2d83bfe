package employees

// EmployeeInput данные формы сотрудника
type EmployeeInput struct {
	UserID       string `json:"user_id"`
	EmployeeCode string `json:"employee_code"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	DepartmentID string `json:"department_id"`
	StartDate    string `json:"start_date"`
	IsActive     *bool  `json:"is_active"`
}
