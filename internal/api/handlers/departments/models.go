package departments

import "github.com/m04kA/SMC-OfficeBooking/internal/domain"

// DepartmentListResponse HTTP response model
type DepartmentListResponse struct {
	Departments []domain.Department `json:"departments"`
	Total       int                 `json:"total"`
}

// CreatedResponse HTTP response model
type CreatedResponse struct {
	ID string `json:"id"`
}
