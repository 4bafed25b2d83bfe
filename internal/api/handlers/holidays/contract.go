package holidays

import (
	"context"

	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
	holidaysService "github.com/m04kA/SMC-OfficeBooking/internal/service/holidays"
)

type HolidayService interface {
	List(ctx context.Context) []domain.HolidayOverviewRow
	Create(ctx context.Context, input *holidaysService.HolidayInput) (string, error)
	Update(ctx context.Context, id string, input *holidaysService.HolidayInput) error
	Delete(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
