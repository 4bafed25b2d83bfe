package employees

import "github.com/m04kA/SMC-OfficeBooking/internal/domain"

// EmployeeListResponse HTTP response model
type EmployeeListResponse struct {
	Employees []domain.Employee `json:"employees"`
	Total     int               `json:"total"`
}

// CreatedResponse HTTP response model
type CreatedResponse struct {
	UserID string `json:"user_id"`
}
