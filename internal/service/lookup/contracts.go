package lookup

import (
	"context"

	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
)

// ReferenceRepository интерфейс репозитория справочников
type ReferenceRepository interface {
	ListOffices(ctx context.Context) ([]domain.Office, error)
	ListSeats(ctx context.Context) ([]domain.Seat, error)
	ListPurposes(ctx context.Context) ([]domain.Purpose, error)
	ListStrategies(ctx context.Context) ([]domain.StrategyInfo, error)
}

// DepartmentRepository интерфейс репозитория отделов
type DepartmentRepository interface {
	List(ctx context.Context) ([]domain.Department, error)
}

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	List(ctx context.Context) ([]domain.Employee, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
