package get_booking_form

import (
	"context"

	loadBookingForm "github.com/m04kA/SMC-OfficeBooking/internal/usecase/load_booking_form"
)

type LoadBookingFormUseCase interface {
	Execute(ctx context.Context, req *loadBookingForm.Request) (*loadBookingForm.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
