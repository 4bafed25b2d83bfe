package departments

import (
	"context"

	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
)

// DepartmentRepository интерфейс репозитория отделов
type DepartmentRepository interface {
	Create(ctx context.Context, dept *domain.Department) (string, error)
	Update(ctx context.Context, id string, dept *domain.Department) error
	Delete(ctx context.Context, id string) error
}

// LookupService снимок справочников и перечитывание отделов
type LookupService interface {
	Snapshot() *domain.Lookup
	ReloadDepartments(ctx context.Context) error
}

// DataSource сообщает, настроен ли источник данных
type DataSource interface {
	Configured() bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
