package update_booking

import "github.com/m04kA/SMC-OfficeBooking/internal/domain"

// Request модель запроса на изменение бронирования
type Request struct {
	BookingID string             // ID из пути запроса
	Form      domain.BookingForm // Новые значения полей
}

// Response модель ответа с сохранённой формой
type Response struct {
	Form domain.BookingForm
}
