package create_booking

import (
	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-OfficeBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Draft domain.BookingDraft `json:"draft"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	IDs   []string            `json:"ids"`
	Dates []string            `json:"dates"`
	Count int                 `json:"count"`
	Draft domain.BookingDraft `json:"draft"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{Draft: r.Draft}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	ids := resp.IDs
	if ids == nil {
		ids = []string{}
	}
	return &CreateBookingResponse{
		IDs:   ids,
		Dates: resp.Dates,
		Count: len(resp.Dates),
		Draft: resp.Draft,
	}
}
