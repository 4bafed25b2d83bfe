package load_booking_form

import "github.com/m04kA/SMC-OfficeBooking/internal/domain"

// Source откуда восстановлена форма
type Source string

const (
	// SourceDatabase форма прочитана из таблицы bookings
	SourceDatabase Source = "bookings"
	// SourceCalendar форма восстановлена из строки календаря
	SourceCalendar Source = "calendar"
)

// Request модель запроса формы редактирования
type Request struct {
	BookingID string // ID бронирования
}

// Response модель ответа с формой редактирования
type Response struct {
	Form   *domain.BookingForm // Редактируемые поля
	Source Source              // Источник данных формы
}
