package employees

import (
	"context"

	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
	employeesService "github.com/m04kA/SMC-OfficeBooking/internal/service/employees"
)

type EmployeeService interface {
	List() []domain.Employee
	Create(ctx context.Context, input *employeesService.EmployeeInput) (string, error)
	Update(ctx context.Context, userID string, input *employeesService.EmployeeInput) error
	Delete(ctx context.Context, userID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
