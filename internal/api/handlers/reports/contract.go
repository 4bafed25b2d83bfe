package reports

import (
	"context"
	"io"

	reportsService "github.com/m04kA/SMC-OfficeBooking/internal/service/reports"
)

type ReportService interface {
	Get(ctx context.Context, name reportsService.Name) (*reportsService.Snapshot, error)
	Reload(ctx context.Context, name reportsService.Name, month *string) (*reportsService.Snapshot, error)
	Export(ctx context.Context, name reportsService.Name, w io.Writer) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
