package get_booking_form

import (
	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
	loadBookingForm "github.com/m04kA/SMC-OfficeBooking/internal/usecase/load_booking_form"
)

// BookingFormResponse HTTP response model
type BookingFormResponse struct {
	Form   *domain.BookingForm `json:"form"`
	Source string              `json:"source"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *loadBookingForm.Response) *BookingFormResponse {
	return &BookingFormResponse{
		Form:   resp.Form,
		Source: string(resp.Source),
	}
}
