package update_booking

import (
	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
	updateBooking "github.com/m04kA/SMC-OfficeBooking/internal/usecase/update_booking"
	"github.com/m04kA/SMC-OfficeBooking/pkg/types"
)

// UpdateBookingRequest HTTP request model
type UpdateBookingRequest struct {
	ID           string               `json:"id"`
	BookingDate  types.Date           `json:"booking_date"`
	DepartmentID string               `json:"department_id"`
	SeatID       string               `json:"seat_id"`
	PurposeID    string               `json:"purpose_id"`
	Note         string               `json:"note"`
	Status       domain.BookingStatus `json:"status"`
	UserID       string               `json:"user_id"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID string) *updateBooking.Request {
	return &updateBooking.Request{
		BookingID: bookingID,
		Form: domain.BookingForm{
			ID:           r.ID,
			BookingDate:  r.BookingDate,
			DepartmentID: r.DepartmentID,
			SeatID:       r.SeatID,
			PurposeID:    r.PurposeID,
			Note:         r.Note,
			Status:       r.Status,
			UserID:       r.UserID,
		},
	}
}
