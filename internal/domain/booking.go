package domain

import "github.com/m04kA/SMC-OfficeBooking/pkg/types"

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusBooked    BookingStatus = "BOOKED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// IsValid проверяет, что статус известен
func (s BookingStatus) IsValid() bool {
	return s == StatusBooked || s == StatusCancelled
}

// Booking бронирование одного сотрудника на одну дату
type Booking struct {
	ID           string        `json:"id"`
	BookingDate  types.Date    `json:"booking_date"`
	DepartmentID string        `json:"department_id"`
	SeatID       *string       `json:"seat_id"`
	PurposeID    *string       `json:"purpose_id"`
	Note         *string       `json:"note"`
	Status       BookingStatus `json:"status"`
	UserID       *string       `json:"user_id"`
}

// BookingForm редактируемые поля бронирования.
// Пустые строки означают отсутствие значения.
type BookingForm struct {
	ID           string        `json:"id"`
	BookingDate  types.Date    `json:"booking_date"`
	DepartmentID string        `json:"department_id"`
	SeatID       string        `json:"seat_id"`
	PurposeID    string        `json:"purpose_id"`
	Note         string        `json:"note"`
	Status       BookingStatus `json:"status"`
	UserID       string        `json:"user_id"`
}

// FormFromBooking строит форму редактирования из строки бронирования
func FormFromBooking(b *Booking) *BookingForm {
	form := &BookingForm{
		ID:           b.ID,
		BookingDate:  b.BookingDate,
		DepartmentID: b.DepartmentID,
		Status:       b.Status,
	}
	if b.SeatID != nil {
		form.SeatID = *b.SeatID
	}
	if b.PurposeID != nil {
		form.PurposeID = *b.PurposeID
	}
	if b.Note != nil {
		form.Note = *b.Note
	}
	if b.UserID != nil {
		form.UserID = *b.UserID
	}
	if form.Status == "" {
		form.Status = StatusBooked
	}
	return form
}
