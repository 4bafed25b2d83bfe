package lookups

import (
	"context"

	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
)

type LookupService interface {
	Snapshot() *domain.Lookup
	Load(ctx context.Context) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
