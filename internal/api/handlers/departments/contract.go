package departments

import (
	"context"

	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
	departmentsService "github.com/m04kA/SMC-OfficeBooking/internal/service/departments"
)

type DepartmentService interface {
	List() []domain.Department
	Create(ctx context.Context, input *departmentsService.DepartmentInput) (string, error)
	Update(ctx context.Context, id string, input *departmentsService.DepartmentInput) error
	Delete(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
