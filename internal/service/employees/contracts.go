package employees

import (
	"context"

	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
)

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) (string, error)
	Update(ctx context.Context, userID string, emp *domain.Employee) error
	Delete(ctx context.Context, userID string) error
}

// LookupService снимок справочников и перечитывание сотрудников
type LookupService interface {
	Snapshot() *domain.Lookup
	ReloadEmployees(ctx context.Context) error
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
